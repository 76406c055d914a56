package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja que maneja la API.
const (
	MovementTypeIngreso = "ingreso"
	MovementTypeEgreso  = "egreso"
)

// MovementKind clasificación para mostrar.
type MovementKind string

const (
	KindIncome        MovementKind = "income"
	KindExpense       MovementKind = "expense"
	KindCreditPayment MovementKind = "credit_payment"
)

// creditPaymentMarker texto que el servidor pone en la descripción de los abonos.
const creditPaymentMarker = "Abono a crédito"

// Movement movimiento de caja (solo se agrega, nunca se edita).
type Movement struct {
	ID          int64
	Type        string
	Amount      decimal.Decimal
	Description string
	Date        string // tal cual llega del servidor
}

// Kind abono a crédito si la descripción lo dice; si no, ingreso o egreso.
func (m *Movement) Kind() MovementKind {
	if strings.Contains(m.Description, creditPaymentMarker) {
		return KindCreditPayment
	}
	if m.Type == MovementTypeIngreso {
		return KindIncome
	}
	return KindExpense
}

// SignedAmount positivo para ingresos, negativo para egresos.
func (m *Movement) SignedAmount() decimal.Decimal {
	if m.Type == MovementTypeIngreso {
		return m.Amount
	}
	return m.Amount.Neg()
}

// BalanceAdjustment ajuste manual del saldo de caja.
type BalanceAdjustment struct {
	Amount      decimal.Decimal
	Description string
}
