package emeapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/ememar-console/internal/domain/entity"
	"github.com/jhoicas/ememar-console/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre /moves.
type MovementRepo struct {
	c *Client
}

// NewMovementRepository construye el adaptador.
func NewMovementRepository(c *Client) *MovementRepo {
	return &MovementRepo{c: c}
}

// List GET /moves.
func (r *MovementRepo) List(ctx context.Context) ([]entity.Movement, error) {
	return r.list(ctx, "/moves")
}

// Recent GET /moves/recent.
func (r *MovementRepo) Recent(ctx context.Context) ([]entity.Movement, error) {
	return r.list(ctx, "/moves/recent")
}

// ByClient GET /moves/client/{clientId}.
func (r *MovementRepo) ByClient(ctx context.Context, clientID int64) ([]entity.Movement, error) {
	return r.list(ctx, fmt.Sprintf("/moves/client/%d", clientID))
}

func (r *MovementRepo) list(ctx context.Context, path string) ([]entity.Movement, error) {
	var wire []wireMovement
	if err := r.c.get(ctx, path, &wire); err != nil {
		return nil, err
	}
	out := make([]entity.Movement, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// Account GET /moves/account.
func (r *MovementRepo) Account(ctx context.Context) (*entity.Account, error) {
	var w wireAccount
	if err := r.c.get(ctx, "/moves/account", &w); err != nil {
		return nil, err
	}
	return &entity.Account{Balance: w.Balance, AmountOwed: w.AmountOwed}, nil
}

// Restock POST /moves {id_insumo, amount, total_amount}.
func (r *MovementRepo) Restock(ctx context.Context, rs entity.Restock) error {
	body := restockBody{
		InsumoID:    rs.InsumoID,
		Amount:      rs.Amount.InexactFloat64(),
		TotalAmount: rs.TotalAmount.InexactFloat64(),
	}
	return r.c.do(ctx, http.MethodPost, "/moves", body, nil, "Error al surtir insumo")
}

// Sell POST /moves/sell con todas las líneas en una sola llamada.
func (r *MovementRepo) Sell(ctx context.Context, sale entity.Sale) error {
	body := sellBody{ClientID: sale.ClientID, IsCredit: sale.IsCredit, Items: make([]saleItemBody, 0, len(sale.Items))}
	for _, it := range sale.Items {
		body.Items = append(body.Items, saleItemBody{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return r.c.do(ctx, http.MethodPost, "/moves/sell", body, nil, "Error al crear venta")
}

// AdjustBalance POST /moves/adjust/balance.
func (r *MovementRepo) AdjustBalance(ctx context.Context, adj entity.BalanceAdjustment) error {
	body := adjustBody{Amount: adj.Amount.InexactFloat64(), Description: adj.Description}
	return r.c.do(ctx, http.MethodPost, "/moves/adjust/balance", body, nil, "Error al ajustar saldo")
}
