package credit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ememar-console/internal/application/degrade"
	"github.com/jhoicas/ememar-console/internal/application/dto"
	"github.com/jhoicas/ememar-console/internal/domain"
	domcredit "github.com/jhoicas/ememar-console/internal/domain/credit"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
	"github.com/jhoicas/ememar-console/internal/domain/repository"
	"github.com/jhoicas/ememar-console/pkg/textsearch"
)

// Mensajes al operador.
const (
	MsgPaymentOK       = "Abono registrado exitosamente"
	MsgPaymentFailed   = "Error al procesar abono"
	MsgPaymentInFlight = "Ya hay un abono en curso para esta venta"
	MsgKeyReused       = "La clave de idempotencia ya se usó con otro abono"
)

// IdempotencyTTL tiempo que se recuerda un abono exitoso por clave.
const IdempotencyTTL = 10 * time.Minute

type idemRecord struct {
	saleID int64
	amount decimal.Decimal
	result dto.PaymentResultResponse
	at     time.Time
}

// CreditUseCase ventas a crédito y abonos.
// Un abono por venta a la vez; una clave de idempotencia exitosa se reproduce sin volver a llamar a la API.
type CreditUseCase struct {
	creditRepo repository.CreditRepository
	clientRepo repository.ClientRepository
	offset     time.Duration
	log        zerolog.Logger
	now        func() time.Time

	mu       sync.Mutex
	inFlight map[int64]struct{}
	idem     map[string]idemRecord
}

// NewCreditUseCase construye el caso de uso. offset es el corrimiento horario de las fechas mostradas.
func NewCreditUseCase(
	creditRepo repository.CreditRepository,
	clientRepo repository.ClientRepository,
	offset time.Duration,
	log zerolog.Logger,
) *CreditUseCase {
	return &CreditUseCase{
		creditRepo: creditRepo,
		clientRepo: clientRepo,
		offset:     offset,
		log:        log.With().Str("usecase", "credit").Logger(),
		now:        time.Now,
		inFlight:   make(map[int64]struct{}),
		idem:       make(map[string]idemRecord),
	}
}

// ListSales ventas a crédito con búsqueda por descripción o cliente. onlyOutstanding oculta las saldadas.
func (uc *CreditUseCase) ListSales(ctx context.Context, query string, onlyOutstanding bool) dto.ListResponse[dto.CreditSaleResponse] {
	sales, err := uc.creditRepo.ListSales(ctx)
	sales, degraded := degrade.List(uc.log, "credit_sales", sales, err)
	if onlyOutstanding {
		sales = domcredit.Outstanding(sales)
	}
	filtered := make([]entity.CreditSale, 0, len(sales))
	for _, s := range sales {
		if textsearch.Contains(query, s.Description, s.ClientName) {
			filtered = append(filtered, s)
		}
	}
	return dto.NewList(dto.FromCreditSales(filtered, uc.offset), degraded)
}

// SalesByClient ventas a crédito de un cliente.
func (uc *CreditUseCase) SalesByClient(ctx context.Context, clientID int64) dto.ListResponse[dto.CreditSaleResponse] {
	sales, err := uc.creditRepo.SalesByClient(ctx, clientID)
	sales, degraded := degrade.List(uc.log, "client_credit_sales", sales, err)
	return dto.NewList(dto.FromCreditSales(sales, uc.offset), degraded)
}

// Payments historial de abonos de una venta.
func (uc *CreditUseCase) Payments(ctx context.Context, saleID int64) dto.ListResponse[dto.PaymentResponse] {
	pays, err := uc.creditRepo.Payments(ctx, saleID)
	pays, degraded := degrade.List(uc.log, "credit_payments", pays, err)
	return dto.NewList(dto.FromPayments(pays, uc.offset), degraded)
}

// SubmitPayment aplica un abono.
//  1. monto > 0 sin tocar la red.
//  2. una clave ya exitosa devuelve el resultado guardado.
//  3. un solo abono en curso por venta.
//  4. 0 < monto <= pendiente contra el listado actual; recién ahí POST /moves/pay/credit.
//  5. re-consulta historial, cliente y ventas, en ese orden.
func (uc *CreditUseCase) SubmitPayment(ctx context.Context, in dto.PaymentRequest, idempotencyKey string) (*dto.PaymentResultResponse, error) {
	if in.CreditSaleID <= 0 || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.NewValidation(domain.CodeValidation, domcredit.MsgInvalidAmount)
	}

	if res, ok, err := uc.replay(idempotencyKey, in); err != nil || ok {
		return res, err
	}

	if !uc.acquire(in.CreditSaleID) {
		return nil, domain.NewValidation(domain.CodePaymentInFlight, MsgPaymentInFlight)
	}
	defer uc.release(in.CreditSaleID)

	sales, err := uc.creditRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("credit: consultar ventas: %w", err)
	}
	sale := domcredit.Find(sales, in.CreditSaleID)
	if err := domcredit.ValidatePayment(sale, in.Amount); err != nil {
		return nil, err
	}

	err = uc.creditRepo.Pay(ctx, entity.PaymentRequest{
		CreditSaleID:   in.CreditSaleID,
		Amount:         in.Amount,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		uc.log.Warn().Err(err).Int64("sale_id", in.CreditSaleID).Msg("abono rechazado")
		return nil, fmt.Errorf("credit: abonar: %w", err)
	}

	uc.log.Info().
		Int64("sale_id", in.CreditSaleID).
		Int64("client_id", sale.ClientID).
		Str("amount", in.Amount.String()).
		Msg("abono registrado")

	res := uc.refreshAfterPayment(ctx, sale.ClientID, in.CreditSaleID)
	uc.remember(idempotencyKey, in, *res)
	return res, nil
}

func (uc *CreditUseCase) refreshAfterPayment(ctx context.Context, clientID, saleID int64) *dto.PaymentResultResponse {
	res := &dto.PaymentResultResponse{Message: MsgPaymentOK}

	res.Payments = uc.Payments(ctx, saleID)

	clients, err := uc.clientRepo.List(ctx)
	clients, _ = degrade.List(uc.log, "clients", clients, err)
	for _, c := range clients {
		if c.ID == clientID {
			cr := dto.FromClient(c)
			res.Client = &cr
			break
		}
	}

	res.CreditSales = uc.ListSales(ctx, "", false)
	return res
}

func (uc *CreditUseCase) acquire(saleID int64) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, busy := uc.inFlight[saleID]; busy {
		return false
	}
	uc.inFlight[saleID] = struct{}{}
	return true
}

func (uc *CreditUseCase) release(saleID int64) {
	uc.mu.Lock()
	delete(uc.inFlight, saleID)
	uc.mu.Unlock()
}

// replay busca un abono previo con la misma clave. Misma clave con otro abono es conflicto.
func (uc *CreditUseCase) replay(key string, in dto.PaymentRequest) (*dto.PaymentResultResponse, bool, error) {
	if key == "" {
		return nil, false, nil
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	for k, r := range uc.idem {
		if now.Sub(r.at) > IdempotencyTTL {
			delete(uc.idem, k)
		}
	}
	rec, ok := uc.idem[key]
	if !ok {
		return nil, false, nil
	}
	if rec.saleID != in.CreditSaleID || !rec.amount.Equal(in.Amount) {
		return nil, false, domain.NewValidation(domain.CodeIdempotencyKeyReused, MsgKeyReused)
	}
	res := rec.result
	res.Replayed = true
	return &res, true, nil
}

func (uc *CreditUseCase) remember(key string, in dto.PaymentRequest, res dto.PaymentResultResponse) {
	if key == "" {
		return
	}
	uc.mu.Lock()
	uc.idem[key] = idemRecord{saleID: in.CreditSaleID, amount: in.Amount, result: res, at: uc.now()}
	uc.mu.Unlock()
}
