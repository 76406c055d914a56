package repository

import (
	"context"

	"github.com/jhoicas/ememar-console/internal/domain/entity"
)

// ClientRepository define el puerto hacia la API remota para Client.
type ClientRepository interface {
	List(ctx context.Context) ([]entity.Client, error)
	Create(ctx context.Context, client *entity.Client) error
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id int64) error
}
