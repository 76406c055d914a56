package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ememar-console/internal/domain/entity"
)

// RestockPreview vista previa de un surtido. Solo para mostrar: el servidor aplica el stock real.
type RestockPreview struct {
	InsumoID    int64
	Amount      decimal.Decimal
	TotalAmount decimal.Decimal // amount * unit_price
	NewStock    decimal.Decimal // stock + amount
}

// PreviewRestock calcula TotalAmount = Amount * UnitPrice y NewStock = Stock + Amount.
func PreviewRestock(insumo *entity.Insumo, amount decimal.Decimal) RestockPreview {
	return RestockPreview{
		InsumoID:    insumo.ID,
		Amount:      amount,
		TotalAmount: amount.Mul(insumo.UnitPrice),
		NewStock:    insumo.Stock.Add(amount),
	}
}

// LowStock filtra los insumos en o por debajo del mínimo.
func LowStock(insumos []entity.Insumo) []entity.Insumo {
	out := make([]entity.Insumo, 0)
	for i := range insumos {
		if insumos[i].LowStock() {
			out = append(out, insumos[i])
		}
	}
	return out
}

// CompositionCost costo estimado de una composición con los precios actuales.
// Solo vista previa: costo_total lo calcula el servidor.
func CompositionCost(lines []entity.ProductInsumo, insumos []entity.Insumo) decimal.Decimal {
	prices := make(map[int64]decimal.Decimal, len(insumos))
	for _, i := range insumos {
		prices[i.ID] = i.UnitPrice
	}
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Quantity.Mul(prices[l.InsumoID]))
	}
	return total
}
