package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ememar-console/internal/domain"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
)

// Mensajes al operador.
const (
	MsgDuplicateInsumo = "Este insumo ya fue agregado"
	MsgInsumoRequired  = "Selecciona un insumo y cantidad"
	MsgNameAndPrice    = "Nombre y precio son obligatorios"
	MsgInsumoMissing   = "El insumo no está en la composición"
)

// Composition composición en borrador de un producto aún no creado. Todo es local.
type Composition struct {
	lines []entity.ProductInsumo
}

// NewComposition crea una composición a partir de líneas existentes (copia).
func NewComposition(lines []entity.ProductInsumo) *Composition {
	c := &Composition{}
	c.lines = append(c.lines, lines...)
	return c
}

// Add agrega un insumo. Rechaza un insumo repetido y cantidades no positivas.
func (c *Composition) Add(insumoID int64, qty decimal.Decimal) error {
	if err := ValidateLine(insumoID, qty); err != nil {
		return err
	}
	if c.indexOf(insumoID) >= 0 {
		return domain.NewValidation(domain.CodeDuplicateInsumo, MsgDuplicateInsumo)
	}
	c.lines = append(c.lines, entity.ProductInsumo{InsumoID: insumoID, Quantity: qty})
	return nil
}

// Remove quita un insumo; no falla si no estaba.
func (c *Composition) Remove(insumoID int64) {
	if i := c.indexOf(insumoID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// SetQuantity cambia la cantidad de un insumo presente.
func (c *Composition) SetQuantity(insumoID int64, qty decimal.Decimal) error {
	if err := ValidateLine(insumoID, qty); err != nil {
		return err
	}
	i := c.indexOf(insumoID)
	if i < 0 {
		return domain.NewValidation(domain.CodeNotFound, MsgInsumoMissing)
	}
	c.lines[i].Quantity = qty
	return nil
}

// Lines devuelve una copia de las líneas.
func (c *Composition) Lines() []entity.ProductInsumo {
	out := make([]entity.ProductInsumo, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len cantidad de líneas.
func (c *Composition) Len() int { return len(c.lines) }

func (c *Composition) indexOf(insumoID int64) int {
	for i, l := range c.lines {
		if l.InsumoID == insumoID {
			return i
		}
	}
	return -1
}

// ValidateLine insumo seleccionado y cantidad positiva.
func ValidateLine(insumoID int64, qty decimal.Decimal) error {
	if insumoID <= 0 || !qty.GreaterThan(decimal.Zero) {
		return domain.NewValidation(domain.CodeValidation, MsgInsumoRequired)
	}
	return nil
}

// ValidateProduct nombre y precio obligatorios.
func ValidateProduct(name string, price decimal.Decimal) error {
	if name == "" || !price.GreaterThan(decimal.Zero) {
		return domain.NewValidation(domain.CodeValidation, MsgNameAndPrice)
	}
	return nil
}
