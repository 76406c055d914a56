package repository

import (
	"context"

	"github.com/jhoicas/ememar-console/internal/domain/entity"
)

// MovementRepository define el puerto hacia la API remota para movimientos de caja.
type MovementRepository interface {
	List(ctx context.Context) ([]entity.Movement, error)
	Recent(ctx context.Context) ([]entity.Movement, error)
	ByClient(ctx context.Context, clientID int64) ([]entity.Movement, error)
	Account(ctx context.Context) (*entity.Account, error)

	Restock(ctx context.Context, r entity.Restock) error
	Sell(ctx context.Context, sale entity.Sale) error
	AdjustBalance(ctx context.Context, adj entity.BalanceAdjustment) error
}
