package emeapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/ememar-console/internal/domain/entity"
	"github.com/jhoicas/ememar-console/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre /clients.
type ClientRepo struct {
	c *Client
}

// NewClientRepository construye el adaptador.
func NewClientRepository(c *Client) *ClientRepo {
	return &ClientRepo{c: c}
}

// List GET /clients.
func (r *ClientRepo) List(ctx context.Context) ([]entity.Client, error) {
	var wire []wireClient
	if err := r.c.get(ctx, "/clients", &wire); err != nil {
		return nil, err
	}
	out := make([]entity.Client, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// Create POST /clients.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	return r.c.do(ctx, http.MethodPost, "/clients", toClientBody(client), nil, "Error al crear cliente")
}

// Update PUT /clients/{id}.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	path := fmt.Sprintf("/clients/%d", client.ID)
	return r.c.do(ctx, http.MethodPut, path, toClientBody(client), nil, "Error al actualizar cliente")
}

// Delete DELETE /clients/{id}.
func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/clients/%d", id), nil, nil, "Error al eliminar cliente")
}

func toClientBody(c *entity.Client) clientBody {
	return clientBody{Name: c.Name, Phone: c.Phone, Debt: c.Debt.InexactFloat64()}
}
