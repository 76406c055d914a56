package credit

import (
	"context"
	"errors"
	"sync"
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

func setup() (*CreditUseCase, *fakeapi.API) {
	api := fakeapi.New()
	api.ClientList = []entity.Client{{ID: 2, Name: "Ana", Debt: d("30000")}}
	api.CreditSales = []entity.CreditSale{
		{SaleID: 9, ClientID: 2, ClientName: "Ana", Total: d("50000"), TotalPaid: d("20000"), Description: "Venta a crédito"},
		{SaleID: 10, ClientID: 2, ClientName: "Ana", Total: d("8000"), TotalPaid: d("8000"), Description: "Pan y café"},
	}
	uc := NewCreditUseCase(api.Credit(), api.Clients(), -5*time.Hour, zerolog.Nop())
	return uc, api
}

func validationCode(t *testing.T, err error) string {
	t.Helper()
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr), "se esperaba ValidationError, llegó %v", err)
	return vErr.Code
}

// ─────────────────────────────────────────────────────────────────────────────
// Validación previa
// ─────────────────────────────────────────────────────────────────────────────

func TestSubmitPayment_MontoNoPositivoSinLlamadas(t *testing.T) {
	uc, api := setup()

	for _, amount := range []string{"0", "-100"} {
		_, err := uc.SubmitPayment(context.Background(), dto.PaymentRequest{CreditSaleID: 9, Amount: d(amount)}, "")
		assert.Equal(t, domain.CodeValidation, validationCode(t, err))
	}
	assert.Empty(t, api.Calls(), "no debe haber ninguna llamada a la API")
}

func TestSubmitPayment_MontoMayorAlPendienteNoAbona(t *testing.T) {
	uc, api := setup()

	_, err := uc.SubmitPayment(context.Background(), dto.PaymentRequest{CreditSaleID: 9, Amount: d("30000.01")}, "")
	assert.Equal(t, domain.CodeAmountExceedsRemaining, validationCode(t, err))
	assert.Zero(t, api.Count(fakeapi.OpCreditPay), "POST /moves/pay/credit no se llama")
}

func TestSubmitPayment_VentaSaldadaYDesconocida(t *testing.T) {
	uc, api := setup()

	_, err := uc.SubmitPayment(context.Background(), dto.PaymentRequest{CreditSaleID: 10, Amount: d("1")}, "")
	assert.Equal(t, domain.CodeAlreadyPaid, validationCode(t, err))

	_, err = uc.SubmitPayment(context.Background(), dto.PaymentRequest{CreditSaleID: 77, Amount: d("1")}, "")
	assert.Equal(t, domain.CodeNotFound, validationCode(t, err))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Zero(t, api.Count(fakeapi.OpCreditPay))
}

// ─────────────────────────────────────────────────────────────────────────────
// Abono exitoso
// ─────────────────────────────────────────────────────────────────────────────

func TestSubmitPayment_OKRefrescaEnOrden(t *testing.T) {
	uc, api := setup()

	res, err := uc.SubmitPayment(context.Background(), dto.PaymentRequest{CreditSaleID: 9, Amount: d("30000")}, "k-1")
	require.NoError(t, err)

	assert.Equal(t, MsgPaymentOK, res.Message)
	assert.False(t, res.Replayed)
	require.Len(t, res.Payments.Items, 1)
	require.NotNil(t, res.Client)
	assert.True(t, res.Client.Debt.IsZero(), "la deuda viene del servidor, llegó %s", res.Client.Debt)
	require.Len(t, res.CreditSales.Items, 2)
	assert.True(t, res.CreditSales.Items[0].Paid)

	assert.Equal(t, []string{
		fakeapi.OpCreditSales,
		fakeapi.OpCreditPay,
		fakeapi.OpCreditPayments,
		fakeapi.OpClientsList,
		fakeapi.OpCreditSales,
	}, api.Calls())
	assert.Equal(t, "k-1", api.LastPay.IdempotencyKey, "la clave viaja a la API")
}

func TestSubmitPayment_ErrorDelServidorSeConserva(t *testing.T) {
	uc, api := setup()
	api.Fail(fakeapi.OpCreditPay, &domain.APIError{Status: 400, Message: "Caja cerrada", FromServer: true})

	_, err := uc.SubmitPayment(context.Background(), dto.PaymentRequest{CreditSaleID: 9, Amount: d("100")}, "")
	require.Error(t, err)
	assert.Equal(t, "Caja cerrada", domain.UserMessage(err, MsgPaymentFailed))
}

func TestSubmitPayment_RefrescoDegradadoNoFallaElAbono(t *testing.T) {
	uc, api := setup()
	api.Fail(fakeapi.OpCreditPayments, errors.New("timeout"))

	res, err := uc.SubmitPayment(context.Background(), dto.PaymentRequest{CreditSaleID: 9, Amount: d("100")}, "")
	require.NoError(t, err)
	assert.True(t, res.Payments.Degraded)
	assert.Empty(t, res.Payments.Items)
	assert.False(t, res.CreditSales.Degraded)
}

// ─────────────────────────────────────────────────────────────────────────────
// Idempotencia
// ─────────────────────────────────────────────────────────────────────────────

func TestSubmitPayment_ClaveRepetidaNoVuelveALlamar(t *testing.T) {
	uc, api := setup()
	in := dto.PaymentRequest{CreditSaleID: 9, Amount: d("5000")}

	_, err := uc.SubmitPayment(context.Background(), in, "k-2")
	require.NoError(t, err)

	res, err := uc.SubmitPayment(context.Background(), in, "k-2")
	require.NoError(t, err)
	assert.True(t, res.Replayed)
	assert.Equal(t, 1, api.Count(fakeapi.OpCreditPay), "un solo abono aplicado")
	assert.True(t, api.CreditSales[0].TotalPaid.Equal(d("25000")))
}

func TestSubmitPayment_ClaveReusadaConOtroMonto(t *testing.T) {
	uc, _ := setup()
	_, err := uc.SubmitPayment(context.Background(), dto.PaymentRequest{CreditSaleID: 9, Amount: d("5000")}, "k-3")
	require.NoError(t, err)

	_, err = uc.SubmitPayment(context.Background(), dto.PaymentRequest{CreditSaleID: 9, Amount: d("6000")}, "k-3")
	assert.Equal(t, domain.CodeIdempotencyKeyReused, validationCode(t, err))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSubmitPayment_ClaveVencida(t *testing.T) {
	uc, api := setup()
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }
	in := dto.PaymentRequest{CreditSaleID: 9, Amount: d("1000")}

	_, err := uc.SubmitPayment(context.Background(), in, "k-4")
	require.NoError(t, err)

	now = now.Add(IdempotencyTTL + time.Second)
	res, err := uc.SubmitPayment(context.Background(), in, "k-4")
	require.NoError(t, err)
	assert.False(t, res.Replayed)
	assert.Equal(t, 2, api.Count(fakeapi.OpCreditPay))
}

// ─────────────────────────────────────────────────────────────────────────────
// Abono en curso
// ─────────────────────────────────────────────────────────────────────────────

func TestSubmitPayment_SegundoConcurrenteRechazado(t *testing.T) {
	uc, api := setup()

	entered := make(chan struct{})
	unblock := make(chan struct{})
	var once sync.Once
	api.PayHook = func() {
		once.Do(func() { close(entered) })
		<-unblock
	}

	in := dto.PaymentRequest{CreditSaleID: 9, Amount: d("1000")}
	done := make(chan error, 1)
	go func() {
		_, err := uc.SubmitPayment(context.Background(), in, "")
		done <- err
	}()

	<-entered
	_, err := uc.SubmitPayment(context.Background(), in, "")
	assert.Equal(t, domain.CodePaymentInFlight, validationCode(t, err))
	assert.ErrorIs(t, err, domain.ErrConflict)

	close(unblock)
	require.NoError(t, <-done)
	assert.Equal(t, 1, api.Count(fakeapi.OpCreditPay))

	_, err = uc.SubmitPayment(context.Background(), in, "")
	assert.NoError(t, err, "liberado el primero, se puede volver a abonar")
}

// ─────────────────────────────────────────────────────────────────────────────
// Listados
// ─────────────────────────────────────────────────────────────────────────────

func TestListSales_BusquedaYPendientes(t *testing.T) {
	uc, _ := setup()

	res := uc.ListSales(context.Background(), "CAFE", false)
	require.Len(t, res.Items, 1)
	assert.Equal(t, int64(10), res.Items[0].SaleID)

	res = uc.ListSales(context.Background(), "", true)
	require.Len(t, res.Items, 1)
	assert.Equal(t, int64(9), res.Items[0].SaleID)
	assert.True(t, res.Items[0].SuggestedAmount.Equal(d("30000")))
}

func TestListSales_Degradado(t *testing.T) {
	uc, api := setup()
	api.Fail(fakeapi.OpCreditSales, errors.New("dial tcp"))

	res := uc.ListSales(context.Background(), "", false)
	assert.True(t, res.Degraded)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}
