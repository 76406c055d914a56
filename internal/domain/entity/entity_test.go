package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCreditSale_RemainingYPagada(t *testing.T) {
	s := CreditSale{Total: d("50000"), TotalPaid: d("20000")}
	assert.True(t, s.Remaining().Equal(d("30000")))
	assert.False(t, s.IsPaid())

	s.TotalPaid = d("49999.99")
	assert.True(t, s.IsPaid(), "0.01 pendiente cuenta como saldada")

	s.TotalPaid = d("49999.98")
	assert.False(t, s.IsPaid())

	s.TotalPaid = d("50000")
	assert.True(t, s.IsPaid())
}

func TestProduct_Profit(t *testing.T) {
	p := Product{Price: d("12000"), CostoTotal: d("7500")}
	assert.True(t, p.Profit().Equal(d("4500")))
	assert.True(t, p.IsProfitable())

	p.CostoTotal = d("12000")
	assert.False(t, p.IsProfitable(), "ganancia cero no es rentable")

	p.CostoTotal = d("13000")
	assert.False(t, p.IsProfitable())
	assert.True(t, p.Profit().Equal(d("-1000")))
}

func TestProduct_HasInsumo(t *testing.T) {
	p := Product{Insumos: []ProductInsumo{{InsumoID: 3, Quantity: d("1")}}}
	assert.True(t, p.HasInsumo(3))
	assert.False(t, p.HasInsumo(4))
}

func TestMovement_Kind(t *testing.T) {
	abono := Movement{Type: MovementTypeIngreso, Description: "Abono a crédito venta #12"}
	assert.Equal(t, KindCreditPayment, abono.Kind())

	venta := Movement{Type: MovementTypeIngreso, Description: "Venta de contado"}
	assert.Equal(t, KindIncome, venta.Kind())

	compra := Movement{Type: MovementTypeEgreso, Amount: d("15"), Description: "Surtido harina"}
	assert.Equal(t, KindExpense, compra.Kind())
	assert.True(t, compra.SignedAmount().Equal(d("-15")))
}

func TestInsumo_LowStock(t *testing.T) {
	i := Insumo{Stock: d("5"), MinStock: d("5")}
	assert.True(t, i.LowStock())
	i.Stock = d("5.5")
	assert.False(t, i.LowStock())
}
