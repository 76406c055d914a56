package dto

import "github.com/shopspring/decimal"

// ClientRequest entrada para crear o editar un cliente.
type ClientRequest struct {
	Name  string          `json:"name"`
	Phone string          `json:"phone"`
	Debt  decimal.Decimal `json:"debt"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Debt        decimal.Decimal `json:"debt"`
	DebtDisplay string          `json:"debt_display"`
	HasDebt     bool            `json:"has_debt"`
}

// ClientHistoryResponse movimientos y ventas a crédito de un cliente.
type ClientHistoryResponse struct {
	ClientID    int64                `json:"client_id"`
	Movements   []MovementResponse   `json:"movements"`
	CreditSales []CreditSaleResponse `json:"credit_sales"`
	Degraded    bool                 `json:"degraded"`
}

// ClientMutationResponse resultado de una mutación con el listado re-consultado.
type ClientMutationResponse struct {
	Message string                       `json:"message"`
	Clients ListResponse[ClientResponse] `json:"clients"`
}
