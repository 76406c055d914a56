package emeapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/ememar-console/internal/domain/entity"
	"github.com/jhoicas/ememar-console/internal/domain/repository"
)

var _ repository.CreditRepository = (*CreditRepo)(nil)

// CreditRepo implementación de CreditRepository sobre /moves/credit y /moves/pay/credit.
type CreditRepo struct {
	c *Client
}

// NewCreditRepository construye el adaptador.
func NewCreditRepository(c *Client) *CreditRepo {
	return &CreditRepo{c: c}
}

// ListSales GET /moves/credit/sales.
func (r *CreditRepo) ListSales(ctx context.Context) ([]entity.CreditSale, error) {
	return r.sales(ctx, "/moves/credit/sales")
}

// SalesByClient GET /moves/credit/client/{clientId}.
func (r *CreditRepo) SalesByClient(ctx context.Context, clientID int64) ([]entity.CreditSale, error) {
	return r.sales(ctx, fmt.Sprintf("/moves/credit/client/%d", clientID))
}

func (r *CreditRepo) sales(ctx context.Context, path string) ([]entity.CreditSale, error) {
	var wire []wireCreditSale
	if err := r.c.get(ctx, path, &wire); err != nil {
		return nil, err
	}
	out := make([]entity.CreditSale, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// Payments GET /moves/credit/payments/{saleId}.
func (r *CreditRepo) Payments(ctx context.Context, saleID int64) ([]entity.Payment, error) {
	var wire []wirePayment
	if err := r.c.get(ctx, fmt.Sprintf("/moves/credit/payments/%d", saleID), &wire); err != nil {
		return nil, err
	}
	out := make([]entity.Payment, 0, len(wire))
	for _, w := range wire {
		out = append(out, entity.Payment{ID: w.ID, CreditSaleID: saleID, Amount: w.Amount, Date: w.Date})
	}
	return out, nil
}

// Pay POST /moves/pay/credit. La clave de idempotencia viaja como cabecera.
func (r *CreditRepo) Pay(ctx context.Context, req entity.PaymentRequest) error {
	body := payBody{CreditSaleID: req.CreditSaleID, Amount: req.Amount.InexactFloat64()}
	return r.c.do(ctx, http.MethodPost, "/moves/pay/credit", body, nil, "Error al procesar abono",
		withHeader("Idempotency-Key", req.IdempotencyKey))
}
