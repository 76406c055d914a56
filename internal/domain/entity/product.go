package entity

import "github.com/shopspring/decimal"

// Product producto de venta compuesto por insumos.
// CostoTotal lo calcula el servidor a partir de la composición.
type Product struct {
	ID         int64
	Name       string
	Price      decimal.Decimal
	Foto       string // base64 sin prefijo data:
	CostoTotal decimal.Decimal
	Insumos    []ProductInsumo
}

// ProductInsumo línea de la composición: cuánto de un insumo lleva el producto.
type ProductInsumo struct {
	InsumoID int64
	Quantity decimal.Decimal
}

// Profit precio menos costo total.
func (p *Product) Profit() decimal.Decimal {
	return p.Price.Sub(p.CostoTotal)
}

// IsProfitable ganancia estrictamente positiva.
func (p *Product) IsProfitable() bool {
	return p.Profit().GreaterThan(decimal.Zero)
}

// HasInsumo indica si la composición ya contiene el insumo.
func (p *Product) HasInsumo(insumoID int64) bool {
	for _, pi := range p.Insumos {
		if pi.InsumoID == insumoID {
			return true
		}
	}
	return false
}
