package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ememar-console/internal/application/dto"
	"github.com/jhoicas/ememar-console/internal/application/fakeapi"
	"github.com/jhoicas/ememar-console/internal/domain"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func setup() (*DashboardUseCase, *fakeapi.API) {
	api := fakeapi.New()
	api.AccountData = entity.Account{Balance: d("150000"), AmountOwed: d("42000.5")}
	api.MovementList = []entity.Movement{
		{ID: 1, Type: entity.MovementTypeIngreso, Amount: d("20000"), Description: "Venta torta", Date: "2024-05-10 18:30:00"},
		{ID: 2, Type: entity.MovementTypeEgreso, Amount: d("5000"), Description: "Surtido de insumo"},
		{ID: 3, Type: entity.MovementTypeIngreso, Amount: d("8000"), Description: "Abono a crédito #4"},
	}
	api.InsumoList = []entity.Insumo{
		{ID: 1, Name: "Harina", Stock: d("1"), MinStock: d("3")},
		{ID: 2, Name: "Azúcar", Stock: d("9"), MinStock: d("3")},
	}
	return NewDashboardUseCase(api.Movements(), api.Insumos(), -5*time.Hour, zerolog.Nop()), api
}

func TestSummary(t *testing.T) {
	uc, _ := setup()

	s := uc.Summary(context.Background())
	require.NotNil(t, s.Account)
	assert.Equal(t, "$ 150.000", s.Account.BalanceDisplay)
	assert.Equal(t, "$ 42.000,50", s.Account.AmountOwedDisplay)
	assert.Len(t, s.Recent, 3)
	require.Len(t, s.LowStock, 1)
	assert.Equal(t, "Harina", s.LowStock[0].Name)
	assert.False(t, s.Degraded)
}

func TestSummary_CadaLecturaDegradaSola(t *testing.T) {
	uc, api := setup()
	api.Fail(fakeapi.OpMovesAccount, errors.New("timeout"))

	s := uc.Summary(context.Background())
	assert.Nil(t, s.Account)
	assert.Len(t, s.Recent, 3)
	assert.True(t, s.Degraded)
}

func TestMovements_BusquedaYTipo(t *testing.T) {
	uc, _ := setup()
	ctx := context.Background()

	res := uc.Movements(ctx, "VENTA", "")
	require.Len(t, res.Items, 1)
	assert.Equal(t, "2024-05-10 13:30", res.Items[0].DateDisplay)

	res = uc.Movements(ctx, "", entity.KindCreditPayment)
	require.Len(t, res.Items, 1)
	assert.Equal(t, int64(3), res.Items[0].ID)

	res = uc.Movements(ctx, "", entity.KindExpense)
	require.Len(t, res.Items, 1)
	assert.True(t, res.Items[0].SignedAmount.Equal(d("-5000")))
}

func TestAdjustBalance_CamposObligatorios(t *testing.T) {
	uc, api := setup()

	_, err := uc.AdjustBalance(context.Background(), dto.AdjustBalanceRequest{Amount: d("0"), Description: "x"})
	assert.Equal(t, MsgFieldsRequired, err.Error())
	_, err = uc.AdjustBalance(context.Background(), dto.AdjustBalanceRequest{Amount: d("100"), Description: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, api.Calls())
}

func TestAdjustBalance_RefrescaMovimientos(t *testing.T) {
	uc, api := setup()

	res, err := uc.AdjustBalance(context.Background(), dto.AdjustBalanceRequest{Amount: d("-2000"), Description: "Faltante de caja"})
	require.NoError(t, err)
	assert.Equal(t, MsgAdjustOK, res.Message)
	assert.Len(t, res.Movements.Items, 4)
	assert.Equal(t, []string{fakeapi.OpMovesAdjust, fakeapi.OpMovesList}, api.Calls())
	assert.True(t, api.LastAdjust.Amount.Equal(d("-2000")))
}

func TestAdjustBalance_MensajeDelServidor(t *testing.T) {
	uc, api := setup()
	api.Fail(fakeapi.OpMovesAdjust, &domain.APIError{Status: 400, Message: "Saldo insuficiente", FromServer: true})

	_, err := uc.AdjustBalance(context.Background(), dto.AdjustBalanceRequest{Amount: d("-1"), Description: "x"})
	assert.Equal(t, "Saldo insuficiente", domain.UserMessage(err, MsgAdjustFailed))
}
