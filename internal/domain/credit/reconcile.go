package credit

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ememar-console/internal/domain"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
)

// Mensajes al operador.
const (
	MsgInvalidAmount    = "Ingresa un monto válido"
	MsgExceedsRemaining = "El abono no puede ser mayor al saldo pendiente"
	MsgAlreadyPaid      = "Esta venta a crédito ya está saldada"
	MsgSaleNotFound     = "Venta a crédito no encontrada"
)

// ValidatePayment verifica 0 < amount <= pendiente antes de llamar a la API.
// El pendiente se toma de la venta tal cual la devolvió el servidor.
func ValidatePayment(sale *entity.CreditSale, amount decimal.Decimal) error {
	if sale == nil {
		return domain.NewValidation(domain.CodeNotFound, MsgSaleNotFound)
	}
	if !amount.GreaterThan(decimal.Zero) {
		return domain.NewValidation(domain.CodeValidation, MsgInvalidAmount)
	}
	if sale.IsPaid() {
		return domain.NewValidation(domain.CodeAlreadyPaid, MsgAlreadyPaid)
	}
	if amount.GreaterThan(sale.Remaining()) {
		return domain.NewValidation(domain.CodeAmountExceedsRemaining, MsgExceedsRemaining)
	}
	return nil
}

// SuggestedAmount valor por defecto del abono: el pendiente a 2 decimales, cero si ya está saldada.
func SuggestedAmount(sale *entity.CreditSale) decimal.Decimal {
	r := sale.Remaining()
	if !r.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return r.Round(2)
}

// Find busca una venta por id en un listado.
func Find(sales []entity.CreditSale, saleID int64) *entity.CreditSale {
	for i := range sales {
		if sales[i].SaleID == saleID {
			return &sales[i]
		}
	}
	return nil
}

// Outstanding filtra las ventas con saldo pendiente.
func Outstanding(sales []entity.CreditSale) []entity.CreditSale {
	out := make([]entity.CreditSale, 0, len(sales))
	for _, s := range sales {
		if !s.IsPaid() {
			out = append(out, s)
		}
	}
	return out
}

// TotalRemaining suma lo pendiente de las ventas no saldadas.
func TotalRemaining(sales []entity.CreditSale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		if !s.IsPaid() {
			total = total.Add(s.Remaining())
		}
	}
	return total
}
