package dto

import (
	"time"

	"github.com/jhoicas/ememar-console/internal/domain/credit"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
	"github.com/jhoicas/ememar-console/pkg/money"
	"github.com/jhoicas/ememar-console/pkg/timefmt"
)

// FromClient convierte entity.Client.
func FromClient(c entity.Client) ClientResponse {
	return ClientResponse{
		ID: c.ID, Name: c.Name, Phone: c.Phone,
		Debt: c.Debt, DebtDisplay: money.FormatCOP(c.Debt), HasDebt: c.HasDebt(),
	}
}

// FromClients convierte un listado.
func FromClients(list []entity.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromClient(c))
	}
	return out
}

// FromInsumo convierte entity.Insumo.
func FromInsumo(i entity.Insumo) InsumoResponse {
	return InsumoResponse{
		ID: i.ID, Name: i.Name, UnitPrice: i.UnitPrice, UnitPriceDisplay: money.FormatCOP(i.UnitPrice),
		UM: i.UM, Stock: i.Stock, MinStock: i.MinStock, LowStock: i.LowStock(),
	}
}

// FromInsumos convierte un listado.
func FromInsumos(list []entity.Insumo) []InsumoResponse {
	out := make([]InsumoResponse, 0, len(list))
	for _, i := range list {
		out = append(out, FromInsumo(i))
	}
	return out
}

// FromProductInsumos convierte líneas de composición.
func FromProductInsumos(lines []entity.ProductInsumo) []ProductInsumoDTO {
	out := make([]ProductInsumoDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, ProductInsumoDTO{InsumoID: l.InsumoID, Quantity: l.Quantity})
	}
	return out
}

// ToProductInsumos convierte líneas de entrada.
func ToProductInsumos(lines []ProductInsumoDTO) []entity.ProductInsumo {
	out := make([]entity.ProductInsumo, 0, len(lines))
	for _, l := range lines {
		out = append(out, entity.ProductInsumo{InsumoID: l.InsumoID, Quantity: l.Quantity})
	}
	return out
}

// FromProduct convierte entity.Product con su ganancia.
func FromProduct(p entity.Product) ProductResponse {
	profit := p.Profit()
	return ProductResponse{
		ID: p.ID, Name: p.Name,
		Price: p.Price, PriceDisplay: money.FormatCOP(p.Price),
		Foto:       p.Foto,
		CostoTotal: p.CostoTotal, CostoTotalDisplay: money.FormatCOP(p.CostoTotal),
		Profit: profit, ProfitDisplay: money.FormatCOP(profit), Profitable: p.IsProfitable(),
		Insumos: FromProductInsumos(p.Insumos),
	}
}

// FromProducts convierte un listado.
func FromProducts(list []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProduct(p))
	}
	return out
}

// FromMovement convierte entity.Movement aplicando el corrimiento horario a la fecha.
func FromMovement(m entity.Movement, offset time.Duration) MovementResponse {
	return MovementResponse{
		ID: m.ID, Type: m.Type, Kind: string(m.Kind()),
		Amount: m.Amount, SignedAmount: m.SignedAmount(), AmountDisplay: money.FormatCOP(m.Amount),
		Description: m.Description,
		Date:        m.Date, DateDisplay: timefmt.Display(m.Date, offset),
	}
}

// FromMovements convierte un listado.
func FromMovements(list []entity.Movement, offset time.Duration) []MovementResponse {
	out := make([]MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromMovement(m, offset))
	}
	return out
}

// FromCreditSale convierte entity.CreditSale con pendiente y abono sugerido.
func FromCreditSale(s entity.CreditSale, offset time.Duration) CreditSaleResponse {
	remaining := s.Remaining()
	return CreditSaleResponse{
		SaleID: s.SaleID, ClientID: s.ClientID, ClientName: s.ClientName,
		Total: s.Total, TotalPaid: s.TotalPaid,
		Remaining: remaining, RemainingDisplay: money.FormatCOP(remaining),
		Paid: s.IsPaid(), SuggestedAmount: credit.SuggestedAmount(&s),
		Description: s.Description,
		Date:        s.Date, DateDisplay: timefmt.Display(s.Date, offset),
	}
}

// FromCreditSales convierte un listado.
func FromCreditSales(list []entity.CreditSale, offset time.Duration) []CreditSaleResponse {
	out := make([]CreditSaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromCreditSale(s, offset))
	}
	return out
}

// FromPayments convierte abonos.
func FromPayments(list []entity.Payment, offset time.Duration) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, PaymentResponse{
			ID: p.ID, CreditSaleID: p.CreditSaleID,
			Amount: p.Amount, AmountDisplay: money.FormatCOP(p.Amount),
			Date: p.Date, DateDisplay: timefmt.Display(p.Date, offset),
		})
	}
	return out
}

// FromAccount convierte entity.Account.
func FromAccount(a *entity.Account) *AccountResponse {
	if a == nil {
		return nil
	}
	return &AccountResponse{
		Balance: a.Balance, BalanceDisplay: money.FormatCOP(a.Balance),
		AmountOwed: a.AmountOwed, AmountOwedDisplay: money.FormatCOP(a.AmountOwed),
	}
}
