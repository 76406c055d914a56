package entity

import "github.com/shopspring/decimal"

// Insumo materia prima con precio unitario y unidad de medida (kg, un, lt...).
type Insumo struct {
	ID        int64
	Name      string
	UnitPrice decimal.Decimal
	UM        string
	Stock     decimal.Decimal
	MinStock  decimal.Decimal
}

// LowStock indica stock en o por debajo del mínimo.
func (i *Insumo) LowStock() bool {
	return i.Stock.LessThanOrEqual(i.MinStock)
}

// Restock surtido de un insumo: cantidad comprada y lo que costó.
type Restock struct {
	InsumoID    int64
	Amount      decimal.Decimal
	TotalAmount decimal.Decimal
}
