package dto

import "github.com/shopspring/decimal"

// CreditSaleResponse venta a crédito con pendiente calculado.
type CreditSaleResponse struct {
	SaleID           int64           `json:"sale_id"`
	ClientID         int64           `json:"client_id"`
	ClientName       string          `json:"client_name"`
	Total            decimal.Decimal `json:"total"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	Remaining        decimal.Decimal `json:"remaining"`
	RemainingDisplay string          `json:"remaining_display"`
	Paid             bool            `json:"paid"`
	SuggestedAmount  decimal.Decimal `json:"suggested_amount"`
	Description      string          `json:"description"`
	Date             string          `json:"date"`
	DateDisplay      string          `json:"date_display"`
}

// PaymentResponse abono aplicado.
type PaymentResponse struct {
	ID            int64           `json:"id"`
	CreditSaleID  int64           `json:"credit_sale_id"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amount_display"`
	Date          string          `json:"date"`
	DateDisplay   string          `json:"date_display"`
}

// PaymentRequest entrada para abonar a una venta a crédito.
type PaymentRequest struct {
	CreditSaleID int64           `json:"credit_sale_id"`
	Amount       decimal.Decimal `json:"amount"`
}

// PaymentResultResponse resultado del abono: historial, cliente y ventas re-consultados.
type PaymentResultResponse struct {
	Message     string                           `json:"message"`
	Payments    ListResponse[PaymentResponse]    `json:"payments"`
	Client      *ClientResponse                  `json:"client,omitempty"`
	CreditSales ListResponse[CreditSaleResponse] `json:"credit_sales"`
	Replayed    bool                             `json:"replayed"`
}
