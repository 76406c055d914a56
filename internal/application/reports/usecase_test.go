package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ememar-console/internal/application/fakeapi"
	"github.com/jhoicas/ememar-console/internal/domain"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
)

type captureRenderer struct {
	data   *StatementData
	moves  []entity.Movement
	offset time.Duration
}

func (c *captureRenderer) RenderStatement(_ context.Context, data *StatementData) ([]byte, error) {
	c.data = data
	return []byte("%PDF-fake"), nil
}

func (c *captureRenderer) RenderLedger(_ context.Context, moves []entity.Movement, offset time.Duration) ([]byte, error) {
	c.moves, c.offset = moves, offset
	return []byte("PK"), nil
}

func setup() (*ReportsUseCase, *fakeapi.API, *captureRenderer) {
	api := fakeapi.New()
	api.ClientList = []entity.Client{{ID: 1, Name: "Ana", Debt: decimal.NewFromInt(25000)}}
	api.CreditSales = []entity.CreditSale{
		{SaleID: 7, ClientID: 1, Total: decimal.NewFromInt(40000), TotalPaid: decimal.NewFromInt(15000)},
		{SaleID: 8, ClientID: 2, Total: decimal.NewFromInt(1000)},
	}
	api.PaymentList = []entity.Payment{
		{ID: 1, CreditSaleID: 7, Amount: decimal.NewFromInt(10000)},
		{ID: 2, CreditSaleID: 7, Amount: decimal.NewFromInt(5000)},
	}
	api.MovementList = []entity.Movement{{ID: 1, Type: entity.MovementTypeIngreso, Amount: decimal.NewFromInt(5)}}
	r := &captureRenderer{}
	uc := NewReportsUseCase(api.Clients(), api.Credit(), api.Movements(), r, r, -5*time.Hour, zerolog.Nop())
	uc.now = func() time.Time { return time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC) }
	return uc, api, r
}

func TestStatement_ReuneVentasYAbonos(t *testing.T) {
	uc, api, r := setup()

	pdf, err := uc.Statement(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))

	require.NotNil(t, r.data)
	assert.Equal(t, "Ana", r.data.Client.Name)
	require.Len(t, r.data.Sales, 1)
	assert.Len(t, r.data.Sales[0].Payments, 2)
	assert.Equal(t, -5*time.Hour, r.data.DisplayOffset)
	assert.Equal(t, 1, api.Count(fakeapi.OpCreditPayments))
}

func TestStatement_ClienteInexistente(t *testing.T) {
	uc, _, r := setup()

	_, err := uc.Statement(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, r.data)
}

func TestStatement_FalloDeLecturaNoDegrada(t *testing.T) {
	uc, api, r := setup()
	api.Fail(fakeapi.OpCreditPayments, errors.New("timeout"))

	_, err := uc.Statement(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, r.data)
}

func TestLedger(t *testing.T) {
	uc, _, r := setup()

	xlsx, err := uc.Ledger(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "PK", string(xlsx))
	assert.Len(t, r.moves, 1)
	assert.Equal(t, -5*time.Hour, r.offset)
}
