package entity

import (
	"github.com/shopspring/decimal"
)

// PaidEpsilon tolerancia para considerar saldada una venta a crédito.
var PaidEpsilon = decimal.RequireFromString("0.01")

// CreditSale venta a crédito pendiente o saldada. TotalPaid lo mantiene el servidor.
type CreditSale struct {
	SaleID      int64
	ClientID    int64
	ClientName  string
	Total       decimal.Decimal
	TotalPaid   decimal.Decimal
	Description string
	Date        string
}

// Remaining lo que falta por pagar.
func (s *CreditSale) Remaining() decimal.Decimal {
	return s.Total.Sub(s.TotalPaid)
}

// IsPaid saldada cuando lo pendiente es <= 0.01.
func (s *CreditSale) IsPaid() bool {
	return s.Remaining().LessThanOrEqual(PaidEpsilon)
}

// Payment abono aplicado a una venta a crédito.
type Payment struct {
	ID           int64
	CreditSaleID int64
	Amount       decimal.Decimal
	Date         string
}

// PaymentRequest abono a enviar. IdempotencyKey se reenvía a la API si viene.
type PaymentRequest struct {
	CreditSaleID   int64
	Amount         decimal.Decimal
	IdempotencyKey string
}
