package dto

import "github.com/shopspring/decimal"

// MovementResponse movimiento de caja con fecha corrida y clasificación.
type MovementResponse struct {
	ID            int64           `json:"id"`
	Type          string          `json:"type"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	SignedAmount  decimal.Decimal `json:"signed_amount"`
	AmountDisplay string          `json:"amount_display"`
	Description   string          `json:"descripcion"`
	Date          string          `json:"date"`
	DateDisplay   string          `json:"date_display"`
}

// AccountResponse saldo de caja y total adeudado.
type AccountResponse struct {
	Balance           decimal.Decimal `json:"balance"`
	BalanceDisplay    string          `json:"balance_display"`
	AmountOwed        decimal.Decimal `json:"amount_owed"`
	AmountOwedDisplay string          `json:"amount_owed_display"`
}

// DashboardSummaryResponse respuesta de GET /api/dashboard.
type DashboardSummaryResponse struct {
	Account  *AccountResponse   `json:"account"`
	Recent   []MovementResponse `json:"recent"`
	LowStock []InsumoResponse   `json:"low_stock"`
	Degraded bool               `json:"degraded"`
}

// AdjustBalanceRequest entrada para ajustar el saldo de caja.
type AdjustBalanceRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// AdjustBalanceResponse resultado del ajuste con movimientos re-consultados.
type AdjustBalanceResponse struct {
	Message   string                         `json:"message"`
	Movements ListResponse[MovementResponse] `json:"movements"`
}
