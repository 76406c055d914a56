package emeapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ememar-console/internal/domain/entity"
	"github.com/jhoicas/ememar-console/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre /products.
type ProductRepo struct {
	c *Client
}

// NewProductRepository construye el adaptador.
func NewProductRepository(c *Client) *ProductRepo {
	return &ProductRepo{c: c}
}

// List GET /products.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	var wire []wireProduct
	if err := r.c.get(ctx, "/products", &wire); err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// Create POST /products con la composición completa.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	body := productCreateBody{
		Name:    p.Name,
		Price:   p.Price.InexactFloat64(),
		Foto:    p.Foto,
		Insumos: make([]productInsumoBody, 0, len(p.Insumos)),
	}
	for _, pi := range p.Insumos {
		body.Insumos = append(body.Insumos, productInsumoBody{InsumoID: pi.InsumoID, Quantity: pi.Quantity.InexactFloat64()})
	}
	return r.c.do(ctx, http.MethodPost, "/products", body, nil, "Error al crear producto")
}

// Update PUT /products/{id}. Solo nombre, precio y foto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	body := productUpdateBody{Name: p.Name, Price: p.Price.InexactFloat64(), Foto: p.Foto}
	return r.c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", p.ID), body, nil, "Error al actualizar producto")
}

// Delete DELETE /products/{id}.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil, "Error al eliminar producto")
}

// AddInsumo POST /products/{id}/insumos/{insumoId}.
func (r *ProductRepo) AddInsumo(ctx context.Context, productID, insumoID int64, qty decimal.Decimal) error {
	return r.c.do(ctx, http.MethodPost, insumoPath(productID, insumoID),
		quantityBody{Quantity: qty.InexactFloat64()}, nil, "Error al agregar insumo")
}

// UpdateInsumo PUT /products/{id}/insumos/{insumoId}.
func (r *ProductRepo) UpdateInsumo(ctx context.Context, productID, insumoID int64, qty decimal.Decimal) error {
	return r.c.do(ctx, http.MethodPut, insumoPath(productID, insumoID),
		quantityBody{Quantity: qty.InexactFloat64()}, nil, "Error al actualizar cantidad")
}

// RemoveInsumo DELETE /products/{id}/insumos/{insumoId}.
func (r *ProductRepo) RemoveInsumo(ctx context.Context, productID, insumoID int64) error {
	return r.c.do(ctx, http.MethodDelete, insumoPath(productID, insumoID), nil, nil, "Error al eliminar insumo")
}

func insumoPath(productID, insumoID int64) string {
	return fmt.Sprintf("/products/%d/insumos/%d", productID, insumoID)
}
