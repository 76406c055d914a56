package repository

import (
	"context"

	"github.com/jhoicas/ememar-console/internal/domain/entity"
)

// CreditRepository define el puerto hacia la API remota para ventas a crédito y abonos.
type CreditRepository interface {
	ListSales(ctx context.Context) ([]entity.CreditSale, error)
	SalesByClient(ctx context.Context, clientID int64) ([]entity.CreditSale, error)
	Payments(ctx context.Context, saleID int64) ([]entity.Payment, error)
	Pay(ctx context.Context, req entity.PaymentRequest) error
}
