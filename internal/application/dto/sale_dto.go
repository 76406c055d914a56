package dto

import "time"

// SaleLineDTO línea de venta.
type SaleLineDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// SaleDraftRequest actualización parcial del borrador de venta.
type SaleDraftRequest struct {
	ClientID *int64 `json:"client_id"`
	IsCredit *bool  `json:"is_credit"`
}

// SaleDraftResponse borrador de venta.
type SaleDraftResponse struct {
	DraftID   string        `json:"draft_id"`
	ClientID  int64         `json:"client_id"`
	IsCredit  bool          `json:"is_credit"`
	Items     []SaleLineDTO `json:"items"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// SaleResultResponse resultado de la venta con movimientos y ventas a crédito re-consultados.
type SaleResultResponse struct {
	Message     string                           `json:"message"`
	Movements   ListResponse[MovementResponse]   `json:"movements"`
	CreditSales ListResponse[CreditSaleResponse] `json:"credit_sales"`
}
