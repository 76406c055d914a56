package entity

import "github.com/shopspring/decimal"

// Client cliente de la tienda. Debt es el saldo que mantiene el servidor; la consola nunca lo recalcula.
type Client struct {
	ID    int64
	Name  string
	Phone string
	Debt  decimal.Decimal
}

// HasDebt indica si el cliente debe algo.
func (c *Client) HasDebt() bool {
	return c.Debt.GreaterThan(decimal.Zero)
}
