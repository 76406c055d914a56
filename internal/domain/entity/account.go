package entity

import "github.com/shopspring/decimal"

// Account saldo de caja y total adeudado por los clientes.
type Account struct {
	Balance    decimal.Decimal
	AmountOwed decimal.Decimal
}
