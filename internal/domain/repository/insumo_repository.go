package repository

import (
	"context"

	"github.com/jhoicas/ememar-console/internal/domain/entity"
)

// InsumoRepository define el puerto hacia la API remota para Insumo.
type InsumoRepository interface {
	List(ctx context.Context) ([]entity.Insumo, error)
	Create(ctx context.Context, insumo *entity.Insumo) error
	Update(ctx context.Context, insumo *entity.Insumo) error
	Delete(ctx context.Context, id int64) error
}
