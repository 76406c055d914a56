package emeapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ememar-console/internal/domain"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
	"github.com/jhoicas/ememar-console/internal/infrastructure/emeapi"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

type recorded struct {
	Method  string
	Path    string
	Body    map[string]any
	Headers http.Header
}

type fakeAPI struct {
	mu    sync.Mutex
	calls []recorded
}

func (f *fakeAPI) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := recorded{Method: r.Method, Path: r.URL.Path, Headers: r.Header.Clone()}
	if b, _ := io.ReadAll(r.Body); len(b) > 0 {
		_ = json.Unmarshal(b, &rec.Body)
	}
	f.calls = append(f.calls, rec)
}

func (f *fakeAPI) last() recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func newServer(t *testing.T, routes map[string]http.HandlerFunc) (*emeapi.Client, *fakeAPI) {
	t.Helper()
	f := &fakeAPI{}
	mux := http.NewServeMux()
	for pattern, h := range routes {
		h := h
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			h(w, r)
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return emeapi.NewClient(srv.URL+"/", 2*time.Second, zerolog.Nop()), f
}

func jsonReply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ─────────────────────────────────────────────────────────────────────────────
// Lecturas
// ─────────────────────────────────────────────────────────────────────────────

func TestListProducts_DecodificaComposicion(t *testing.T) {
	c, _ := newServer(t, map[string]http.HandlerFunc{
		"GET /products": jsonReply(200, `[{"id":3,"name":"Arepa","price":2500,"foto":null,"costo_total":1200.5,
			"insumos":[{"id_insumo":1,"quantity":0.25},{"id_insumo":2,"quantity":1}]}]`),
	})

	list, err := emeapi.NewProductRepository(c).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	p := list[0]
	assert.Equal(t, int64(3), p.ID)
	assert.True(t, p.CostoTotal.Equal(d("1200.5")))
	assert.Empty(t, p.Foto)
	require.Len(t, p.Insumos, 2)
	assert.Equal(t, int64(1), p.Insumos[0].InsumoID)
	assert.True(t, p.Insumos[0].Quantity.Equal(d("0.25")))
}

func TestListCreditSalesYPayments(t *testing.T) {
	c, _ := newServer(t, map[string]http.HandlerFunc{
		"GET /moves/credit/sales": jsonReply(200, `[{"sale_id":9,"client_id":2,"client_name":"Ana","total":50000,
			"total_paid":20000,"description":"Venta a crédito","date":"2024-05-10 15:30:00"}]`),
		"GET /moves/credit/payments/9": jsonReply(200, `[{"id":1,"amount":20000,"date":"2024-05-11T10:00:00Z"}]`),
	})
	repo := emeapi.NewCreditRepository(c)

	sales, err := repo.ListSales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.True(t, sales[0].Remaining().Equal(d("30000")))
	assert.Equal(t, "Ana", sales[0].ClientName)

	pays, err := repo.Payments(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, pays, 1)
	assert.Equal(t, int64(9), pays[0].CreditSaleID)
}

func TestAccount(t *testing.T) {
	c, _ := newServer(t, map[string]http.HandlerFunc{
		"GET /moves/account": jsonReply(200, `{"balance":150000,"amount_owed":32000.5}`),
	})
	acc, err := emeapi.NewMovementRepository(c).Account(context.Background())
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(d("150000")))
	assert.True(t, acc.AmountOwed.Equal(d("32000.5")))
}

func TestList_JSONInvalidoDevuelveError(t *testing.T) {
	c, _ := newServer(t, map[string]http.HandlerFunc{
		"GET /clients": jsonReply(200, `{"no":"es lista"}`),
	})
	_, err := emeapi.NewClientRepository(c).List(context.Background())
	assert.Error(t, err)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutaciones
// ─────────────────────────────────────────────────────────────────────────────

func TestPay_EnviaCuerpoYCabecera(t *testing.T) {
	c, f := newServer(t, map[string]http.HandlerFunc{
		"POST /moves/pay/credit": jsonReply(200, `{"ok":true}`),
	})

	err := emeapi.NewCreditRepository(c).Pay(context.Background(), entity.PaymentRequest{
		CreditSaleID: 9, Amount: d("15000.5"), IdempotencyKey: "k-1",
	})
	require.NoError(t, err)

	call := f.last()
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, float64(9), call.Body["credit_sale_id"])
	assert.Equal(t, 15000.5, call.Body["amount"], "el monto viaja como número, no como string")
	assert.Equal(t, "k-1", call.Headers.Get("Idempotency-Key"))
	assert.Equal(t, "application/json", call.Headers.Get("Content-Type"))
}

func TestSell_UnaSolaLlamadaConTodasLasLineas(t *testing.T) {
	c, f := newServer(t, map[string]http.HandlerFunc{
		"POST /moves/sell": jsonReply(201, `{}`),
	})

	err := emeapi.NewMovementRepository(c).Sell(context.Background(), entity.Sale{
		ClientID: 4, IsCredit: true,
		Items:    []entity.SaleLine{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}},
	})
	require.NoError(t, err)
	require.Len(t, f.calls, 1)

	body := f.last().Body
	assert.Equal(t, true, body["is_credit"])
	assert.Equal(t, float64(4), body["client_id"])
	assert.Len(t, body["items"], 2)
}

func TestRestock_Cuerpo(t *testing.T) {
	c, f := newServer(t, map[string]http.HandlerFunc{
		"POST /moves": jsonReply(200, ``),
	})
	err := emeapi.NewMovementRepository(c).Restock(context.Background(), entity.Restock{
		InsumoID: 4, Amount: d("3"), TotalAmount: d("15"),
	})
	require.NoError(t, err)
	body := f.last().Body
	assert.Equal(t, float64(4), body["id_insumo"])
	assert.Equal(t, float64(3), body["amount"])
	assert.Equal(t, float64(15), body["total_amount"])
}

func TestUpdateProduct_SoloNombrePrecioFoto(t *testing.T) {
	c, f := newServer(t, map[string]http.HandlerFunc{
		"PUT /products/3": jsonReply(200, `{}`),
	})
	err := emeapi.NewProductRepository(c).Update(context.Background(), &entity.Product{
		ID: 3, Name: "Arepa", Price: d("2500"), Foto: "abc",
		Insumos: []entity.ProductInsumo{{InsumoID: 1, Quantity: d("1")}},
	})
	require.NoError(t, err)
	body := f.last().Body
	assert.Len(t, body, 3)
	assert.NotContains(t, body, "insumos")
}

func TestCompositionEndpoints(t *testing.T) {
	c, f := newServer(t, map[string]http.HandlerFunc{
		"/products/3/insumos/7": jsonReply(200, `{}`),
	})
	repo := emeapi.NewProductRepository(c)
	ctx := context.Background()

	require.NoError(t, repo.AddInsumo(ctx, 3, 7, d("2")))
	assert.Equal(t, http.MethodPost, f.last().Method)
	assert.Equal(t, float64(2), f.last().Body["quantity"])

	require.NoError(t, repo.UpdateInsumo(ctx, 3, 7, d("4")))
	assert.Equal(t, http.MethodPut, f.last().Method)

	require.NoError(t, repo.RemoveInsumo(ctx, 3, 7))
	assert.Equal(t, http.MethodDelete, f.last().Method)
	assert.Equal(t, "/products/3/insumos/7", f.last().Path)
}

// ─────────────────────────────────────────────────────────────────────────────
// Errores
// ─────────────────────────────────────────────────────────────────────────────

func TestError_MensajeDelServidorCampoError(t *testing.T) {
	c, _ := newServer(t, map[string]http.HandlerFunc{
		"POST /moves/pay/credit": jsonReply(400, `{"error":"El monto excede la deuda"}`),
	})
	err := emeapi.NewCreditRepository(c).Pay(context.Background(), entity.PaymentRequest{CreditSaleID: 1, Amount: d("1")})
	require.Error(t, err)

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.Status)
	assert.True(t, apiErr.FromServer)
	assert.Equal(t, "El monto excede la deuda", domain.UserMessage(err, "Error al procesar abono"))
}

func TestError_MensajeDelServidorCampoMessage(t *testing.T) {
	c, _ := newServer(t, map[string]http.HandlerFunc{
		"DELETE /clients/5": jsonReply(409, `{"message":"El cliente tiene deuda"}`),
	})
	err := emeapi.NewClientRepository(c).Delete(context.Background(), 5)
	assert.Equal(t, "El cliente tiene deuda", domain.UserMessage(err, "x"))
}

func TestError_SinMensajeUsaGenerico(t *testing.T) {
	c, _ := newServer(t, map[string]http.HandlerFunc{
		"POST /moves/sell": jsonReply(500, `<html>boom</html>`),
	})
	err := emeapi.NewMovementRepository(c).Sell(context.Background(), entity.Sale{ClientID: 1})

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.False(t, apiErr.FromServer)
	assert.Equal(t, "Error al crear venta", apiErr.Message)
	assert.Equal(t, "Error al crear venta", domain.UserMessage(err, "Error al crear venta"))
}

func TestError_404EsNotFound(t *testing.T) {
	c, _ := newServer(t, map[string]http.HandlerFunc{})
	err := emeapi.NewInsumoRepository(c).Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestError_ServidorCaidoEsUnavailable(t *testing.T) {
	c := emeapi.NewClient("http://127.0.0.1:1", time.Second, zerolog.Nop())
	_, err := emeapi.NewClientRepository(c).List(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestError_MensajeAnidado(t *testing.T) {
	c, _ := newServer(t, map[string]http.HandlerFunc{
		"POST /moves/adjust/balance": jsonReply(422, `{"error":{"code":"E1","message":"Saldo insuficiente"}}`),
	})
	err := emeapi.NewMovementRepository(c).AdjustBalance(context.Background(), entity.BalanceAdjustment{Amount: d("-5"), Description: "x"})
	assert.Equal(t, "Saldo insuficiente", domain.UserMessage(err, "Error al ajustar saldo"))
}
