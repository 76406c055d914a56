package inventory

import (
	"context"
	"errors"
	"testing"

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
func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func setup() (*InsumoUseCase, *fakeapi.API) {
	api := fakeapi.New()
	api.InsumoList = []entity.Insumo{
		{ID: 1, Name: "Harina", UnitPrice: d("5"), UM: "kg", Stock: d("10"), MinStock: d("4")},
		{ID: 2, Name: "Azúcar", UnitPrice: d("3"), UM: "kg", Stock: d("2"), MinStock: d("5")},
		{ID: 3, Name: "Crema", UnitPrice: d("7"), UM: "lt", Stock: d("1"), MinStock: d("1")},
	}
	return NewInsumoUseCase(api.Insumos(), api.Movements(), zerolog.Nop()), api
}

// ── listado ───────────────────────────────────────────────────────────────────

func TestList_BusquedaSinTildes(t *testing.T) {
	uc, _ := setup()

	res := uc.List(context.Background(), "azucar")
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Azúcar", res.Items[0].Name)
	assert.False(t, res.Degraded)

	assert.Len(t, uc.List(context.Background(), "").Items, 3)
}

func TestList_Degradado(t *testing.T) {
	uc, api := setup()
	api.Fail(fakeapi.OpInsumosList, errors.New("connection refused"))

	res := uc.List(context.Background(), "")
	assert.True(t, res.Degraded)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}

// ── crear / editar / eliminar ─────────────────────────────────────────────────

func TestCreate_CamposObligatorios(t *testing.T) {
	uc, api := setup()

	_, err := uc.Create(context.Background(), dto.InsumoRequest{Name: "Sal", UM: "kg", UnitPrice: dp("1"), Stock: dp("1")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, MsgFieldsRequired, err.Error())
	assert.Zero(t, api.Count(fakeapi.OpInsumosCreate))
}

func TestCreate_RefrescaListado(t *testing.T) {
	uc, api := setup()

	res, err := uc.Create(context.Background(), dto.InsumoRequest{
		Name: " Sal ", UM: "kg", UnitPrice: dp("1.5"), Stock: dp("0"), MinStock: dp("2"),
	})
	require.NoError(t, err)
	assert.Equal(t, MsgInsumoCreated, res.Message)
	assert.Len(t, res.Insumos.Items, 4)
	assert.Equal(t, "Sal", res.Insumos.Items[3].Name)
	assert.Equal(t, []string{fakeapi.OpInsumosCreate, fakeapi.OpInsumosList}, api.Calls())
}

func TestUpdate(t *testing.T) {
	uc, _ := setup()

	res, err := uc.Update(context.Background(), 1, dto.InsumoRequest{
		Name: "Harina integral", UM: "kg", UnitPrice: dp("6"), Stock: dp("10"), MinStock: dp("4"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Harina integral", res.Insumos.Items[0].Name)
	assert.True(t, res.Insumos.Items[0].UnitPrice.Equal(d("6")))
}

func TestDelete_QuitaSoloTrasResolver(t *testing.T) {
	uc, api := setup()
	api.Fail(fakeapi.OpInsumosDelete, &domain.APIError{Status: 409, Message: "Insumo en uso", FromServer: true})

	_, err := uc.Delete(context.Background(), 2)
	require.Error(t, err)
	assert.Equal(t, "Insumo en uso", domain.UserMessage(err, MsgDeleteFailed))
	assert.Len(t, uc.List(context.Background(), "").Items, 3, "falla: el insumo sigue en el listado")

	api.Fail(fakeapi.OpInsumosDelete, nil)
	res, err := uc.Delete(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, res.Insumos.Items, 2)
	for _, i := range res.Insumos.Items {
		assert.NotEqual(t, int64(2), i.ID)
	}
}

// ── surtido ───────────────────────────────────────────────────────────────────

func TestPreview(t *testing.T) {
	uc, api := setup()

	p, err := uc.Preview(context.Background(), 1, d("3"))
	require.NoError(t, err)
	assert.True(t, p.TotalAmount.Equal(d("15")))
	assert.True(t, p.NewStock.Equal(d("13")))
	assert.Equal(t, "$ 15", p.TotalAmountDisplay)
	assert.Zero(t, api.Count(fakeapi.OpMovesRestock), "la vista previa no modifica nada")
}

func TestRestock_MontoInvalidoNoLlama(t *testing.T) {
	uc, api := setup()

	for _, amount := range []string{"0", "-2"} {
		_, err := uc.Restock(context.Background(), 1, dto.RestockRequest{Amount: d(amount)})
		require.Error(t, err)
		assert.Equal(t, MsgInvalidAmount, err.Error())
	}
	assert.Empty(t, api.Calls())
}

func TestRestock_EnviaTotalYRefresca(t *testing.T) {
	uc, api := setup()

	res, err := uc.Restock(context.Background(), 1, dto.RestockRequest{Amount: d("3")})
	require.NoError(t, err)

	require.NotNil(t, api.LastRestock)
	assert.Equal(t, int64(1), api.LastRestock.InsumoID)
	assert.True(t, api.LastRestock.Amount.Equal(d("3")))
	assert.True(t, api.LastRestock.TotalAmount.Equal(d("15")))

	assert.Equal(t, []string{fakeapi.OpInsumosList, fakeapi.OpMovesRestock, fakeapi.OpInsumosList}, api.Calls())
	assert.True(t, res.Insumos.Items[0].Stock.Equal(d("13")), "el stock viene del servidor")
}

func TestRestock_InsumoInexistente(t *testing.T) {
	uc, api := setup()

	_, err := uc.Restock(context.Background(), 99, dto.RestockRequest{Amount: d("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, api.Count(fakeapi.OpMovesRestock))
}

func TestRestock_FalloDelServidor(t *testing.T) {
	uc, api := setup()
	api.Fail(fakeapi.OpMovesRestock, &domain.APIError{Status: 500, Message: MsgRestockFailed})

	_, err := uc.Restock(context.Background(), 1, dto.RestockRequest{Amount: d("1")})
	require.Error(t, err)
	assert.Equal(t, MsgRestockFailed, domain.UserMessage(err, MsgRestockFailed))
	assert.True(t, api.InsumoList[0].Stock.Equal(d("10")))
}

// ── bajo mínimo ───────────────────────────────────────────────────────────────

func TestLowStock_OrdenPorFaltante(t *testing.T) {
	uc, _ := setup()

	res := uc.LowStock(context.Background())
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Azúcar", res.Items[0].Name)
	assert.True(t, res.Items[0].Shortfall.Equal(d("3")))
	assert.Equal(t, "Crema", res.Items[1].Name)
	assert.True(t, res.Items[1].Shortfall.IsZero())
}
