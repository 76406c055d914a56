package emeapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/ememar-console/internal/domain/entity"
	"github.com/jhoicas/ememar-console/internal/domain/repository"
)

var _ repository.InsumoRepository = (*InsumoRepo)(nil)

// InsumoRepo implementación de InsumoRepository sobre /insumos.
type InsumoRepo struct {
	c *Client
}

// NewInsumoRepository construye el adaptador.
func NewInsumoRepository(c *Client) *InsumoRepo {
	return &InsumoRepo{c: c}
}

// List GET /insumos.
func (r *InsumoRepo) List(ctx context.Context) ([]entity.Insumo, error) {
	var wire []wireInsumo
	if err := r.c.get(ctx, "/insumos", &wire); err != nil {
		return nil, err
	}
	out := make([]entity.Insumo, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// Create POST /insumos.
func (r *InsumoRepo) Create(ctx context.Context, insumo *entity.Insumo) error {
	return r.c.do(ctx, http.MethodPost, "/insumos", toInsumoBody(insumo), nil, "Error al crear insumo")
}

// Update PUT /insumos/{id}.
func (r *InsumoRepo) Update(ctx context.Context, insumo *entity.Insumo) error {
	path := fmt.Sprintf("/insumos/%d", insumo.ID)
	return r.c.do(ctx, http.MethodPut, path, toInsumoBody(insumo), nil, "Error al actualizar insumo")
}

// Delete DELETE /insumos/{id}.
func (r *InsumoRepo) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/insumos/%d", id), nil, nil, "Error al eliminar insumo")
}

func toInsumoBody(i *entity.Insumo) insumoBody {
	return insumoBody{
		Name:      i.Name,
		UnitPrice: i.UnitPrice.InexactFloat64(),
		UM:        i.UM,
		Stock:     i.Stock.InexactFloat64(),
		MinStock:  i.MinStock.InexactFloat64(),
	}
}
