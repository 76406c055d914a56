package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ememar-console/internal/domain/entity"
)

// ProductRepository define el puerto hacia la API remota para Product y su composición.
// Update envía solo nombre, precio y foto; la composición se edita con los métodos *Insumo.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error

	AddInsumo(ctx context.Context, productID, insumoID int64, quantity decimal.Decimal) error
	UpdateInsumo(ctx context.Context, productID, insumoID int64, quantity decimal.Decimal) error
	RemoveInsumo(ctx context.Context, productID, insumoID int64) error
}
