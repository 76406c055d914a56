// Package fakeapi implementación en memoria de los puertos de la API remota, para tests.
// Registra cada llamada y permite inyectar errores por operación.
package fakeapi

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ememar-console/internal/domain"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
	"github.com/jhoicas/ememar-console/internal/domain/repository"
)

// Operaciones registradas.
const (
	OpClientsList    = "clients.list"
	OpClientsCreate  = "clients.create"
	OpClientsUpdate  = "clients.update"
	OpClientsDelete  = "clients.delete"
	OpInsumosList    = "insumos.list"
	OpInsumosCreate  = "insumos.create"
	OpInsumosUpdate  = "insumos.update"
	OpInsumosDelete  = "insumos.delete"
	OpProductsList   = "products.list"
	OpProductsCreate = "products.create"
	OpProductsUpdate = "products.update"
	OpProductsDelete = "products.delete"
	OpProductAdd     = "products.insumo.add"
	OpProductUpdate  = "products.insumo.update"
	OpProductRemove  = "products.insumo.remove"
	OpMovesList      = "moves.list"
	OpMovesRecent    = "moves.recent"
	OpMovesByClient  = "moves.client"
	OpMovesAccount   = "moves.account"
	OpMovesRestock   = "moves.restock"
	OpMovesSell      = "moves.sell"
	OpMovesAdjust    = "moves.adjust"
	OpCreditSales    = "credit.sales"
	OpCreditByClient = "credit.client"
	OpCreditPayments = "credit.payments"
	OpCreditPay      = "credit.pay"
)

// API estado en memoria.
type API struct {
	mu sync.Mutex

	ClientList   []entity.Client
	InsumoList   []entity.Insumo
	ProductList  []entity.Product
	MovementList []entity.Movement
	AccountData  entity.Account
	CreditSales  []entity.CreditSale
	PaymentList  []entity.Payment

	LastSale    *entity.Sale
	LastRestock *entity.Restock
	LastPay     *entity.PaymentRequest
	LastAdjust  *entity.BalanceAdjustment

	// PayHook se ejecuta dentro de Pay antes de aplicar el abono (sin el lock tomado).
	PayHook func()

	calls  []string
	errors map[string]error
	nextID int64
}

// New crea una API vacía.
func New() *API {
	return &API{errors: map[string]error{}, nextID: 100}
}

// Fail hace que op devuelva err hasta que se limpie con Fail(op, nil).
func (a *API) Fail(op string, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err == nil {
		delete(a.errors, op)
		return
	}
	a.errors[op] = err
}

// Calls copia de las operaciones registradas.
func (a *API) Calls() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.calls))
	copy(out, a.calls)
	return out
}

// Count veces que se llamó op.
func (a *API) Count(op string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, c := range a.calls {
		if c == op {
			n++
		}
	}
	return n
}

func (a *API) enter(op string) error {
	a.calls = append(a.calls, op)
	return a.errors[op]
}

func (a *API) id() int64 {
	a.nextID++
	return a.nextID
}

// Clients puerto de clientes.
func (a *API) Clients() repository.ClientRepository { return clients{a} }

// Insumos puerto de insumos.
func (a *API) Insumos() repository.InsumoRepository { return insumos{a} }

// Products puerto de productos.
func (a *API) Products() repository.ProductRepository { return products{a} }

// Movements puerto de movimientos.
func (a *API) Movements() repository.MovementRepository { return movements{a} }

// Credit puerto de crédito.
func (a *API) Credit() repository.CreditRepository { return credits{a} }

// ── clientes ──────────────────────────────────────────────────────────────────

type clients struct{ a *API }

func (r clients) List(_ context.Context) ([]entity.Client, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpClientsList); err != nil {
		return nil, err
	}
	return append([]entity.Client(nil), r.a.ClientList...), nil
}

func (r clients) Create(_ context.Context, c *entity.Client) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpClientsCreate); err != nil {
		return err
	}
	cp := *c
	cp.ID = r.a.id()
	r.a.ClientList = append(r.a.ClientList, cp)
	return nil
}

func (r clients) Update(_ context.Context, c *entity.Client) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpClientsUpdate); err != nil {
		return err
	}
	for i := range r.a.ClientList {
		if r.a.ClientList[i].ID == c.ID {
			r.a.ClientList[i] = *c
			return nil
		}
	}
	return &domain.APIError{Status: 404, Message: "Cliente no encontrado", FromServer: true}
}

func (r clients) Delete(_ context.Context, id int64) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpClientsDelete); err != nil {
		return err
	}
	for i := range r.a.ClientList {
		if r.a.ClientList[i].ID == id {
			r.a.ClientList = append(r.a.ClientList[:i], r.a.ClientList[i+1:]...)
			return nil
		}
	}
	return &domain.APIError{Status: 404, Message: "Cliente no encontrado", FromServer: true}
}

// ── insumos ───────────────────────────────────────────────────────────────────

type insumos struct{ a *API }

func (r insumos) List(_ context.Context) ([]entity.Insumo, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpInsumosList); err != nil {
		return nil, err
	}
	return append([]entity.Insumo(nil), r.a.InsumoList...), nil
}

func (r insumos) Create(_ context.Context, i *entity.Insumo) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpInsumosCreate); err != nil {
		return err
	}
	cp := *i
	cp.ID = r.a.id()
	r.a.InsumoList = append(r.a.InsumoList, cp)
	return nil
}

func (r insumos) Update(_ context.Context, in *entity.Insumo) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpInsumosUpdate); err != nil {
		return err
	}
	for i := range r.a.InsumoList {
		if r.a.InsumoList[i].ID == in.ID {
			r.a.InsumoList[i] = *in
			return nil
		}
	}
	return &domain.APIError{Status: 404, Message: "Insumo no encontrado", FromServer: true}
}

func (r insumos) Delete(_ context.Context, id int64) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpInsumosDelete); err != nil {
		return err
	}
	for i := range r.a.InsumoList {
		if r.a.InsumoList[i].ID == id {
			r.a.InsumoList = append(r.a.InsumoList[:i], r.a.InsumoList[i+1:]...)
			return nil
		}
	}
	return &domain.APIError{Status: 404, Message: "Insumo no encontrado", FromServer: true}
}

// ── productos ─────────────────────────────────────────────────────────────────

type products struct{ a *API }

func (r products) List(_ context.Context) ([]entity.Product, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpProductsList); err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(r.a.ProductList))
	for _, p := range r.a.ProductList {
		p.Insumos = append([]entity.ProductInsumo(nil), p.Insumos...)
		out = append(out, p)
	}
	return out, nil
}

// costOf simula el costo_total que calcula el servidor.
func (a *API) costOf(lines []entity.ProductInsumo) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		for _, i := range a.InsumoList {
			if i.ID == l.InsumoID {
				total = total.Add(l.Quantity.Mul(i.UnitPrice))
			}
		}
	}
	return total
}

func (r products) Create(_ context.Context, p *entity.Product) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpProductsCreate); err != nil {
		return err
	}
	cp := *p
	cp.ID = r.a.id()
	cp.Insumos = append([]entity.ProductInsumo(nil), p.Insumos...)
	cp.CostoTotal = r.a.costOf(cp.Insumos)
	r.a.ProductList = append(r.a.ProductList, cp)
	return nil
}

func (r products) find(id int64) (*entity.Product, error) {
	for i := range r.a.ProductList {
		if r.a.ProductList[i].ID == id {
			return &r.a.ProductList[i], nil
		}
	}
	return nil, &domain.APIError{Status: 404, Message: "Producto no encontrado", FromServer: true}
}

func (r products) Update(_ context.Context, p *entity.Product) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpProductsUpdate); err != nil {
		return err
	}
	cur, err := r.find(p.ID)
	if err != nil {
		return err
	}
	cur.Name, cur.Price, cur.Foto = p.Name, p.Price, p.Foto
	return nil
}

func (r products) Delete(_ context.Context, id int64) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpProductsDelete); err != nil {
		return err
	}
	for i := range r.a.ProductList {
		if r.a.ProductList[i].ID == id {
			r.a.ProductList = append(r.a.ProductList[:i], r.a.ProductList[i+1:]...)
			return nil
		}
	}
	return &domain.APIError{Status: 404, Message: "Producto no encontrado", FromServer: true}
}

func (r products) AddInsumo(_ context.Context, productID, insumoID int64, qty decimal.Decimal) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpProductAdd); err != nil {
		return err
	}
	p, err := r.find(productID)
	if err != nil {
		return err
	}
	if p.HasInsumo(insumoID) {
		return &domain.APIError{Status: 400, Message: "El insumo ya está en el producto", FromServer: true}
	}
	p.Insumos = append(p.Insumos, entity.ProductInsumo{InsumoID: insumoID, Quantity: qty})
	p.CostoTotal = r.a.costOf(p.Insumos)
	return nil
}

func (r products) UpdateInsumo(_ context.Context, productID, insumoID int64, qty decimal.Decimal) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpProductUpdate); err != nil {
		return err
	}
	p, err := r.find(productID)
	if err != nil {
		return err
	}
	for i := range p.Insumos {
		if p.Insumos[i].InsumoID == insumoID {
			p.Insumos[i].Quantity = qty
			p.CostoTotal = r.a.costOf(p.Insumos)
			return nil
		}
	}
	return &domain.APIError{Status: 404, Message: "Insumo no encontrado en el producto", FromServer: true}
}

func (r products) RemoveInsumo(_ context.Context, productID, insumoID int64) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpProductRemove); err != nil {
		return err
	}
	p, err := r.find(productID)
	if err != nil {
		return err
	}
	for i := range p.Insumos {
		if p.Insumos[i].InsumoID == insumoID {
			p.Insumos = append(p.Insumos[:i], p.Insumos[i+1:]...)
			p.CostoTotal = r.a.costOf(p.Insumos)
			return nil
		}
	}
	return &domain.APIError{Status: 404, Message: "Insumo no encontrado en el producto", FromServer: true}
}

// ── movimientos ───────────────────────────────────────────────────────────────

type movements struct{ a *API }

func (r movements) List(_ context.Context) ([]entity.Movement, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpMovesList); err != nil {
		return nil, err
	}
	return append([]entity.Movement(nil), r.a.MovementList...), nil
}

func (r movements) Recent(_ context.Context) ([]entity.Movement, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpMovesRecent); err != nil {
		return nil, err
	}
	list := r.a.MovementList
	if len(list) > 5 {
		list = list[len(list)-5:]
	}
	return append([]entity.Movement(nil), list...), nil
}

func (r movements) ByClient(_ context.Context, _ int64) ([]entity.Movement, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpMovesByClient); err != nil {
		return nil, err
	}
	return append([]entity.Movement(nil), r.a.MovementList...), nil
}

func (r movements) Account(_ context.Context) (*entity.Account, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpMovesAccount); err != nil {
		return nil, err
	}
	acc := r.a.AccountData
	return &acc, nil
}

func (r movements) Restock(_ context.Context, rs entity.Restock) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpMovesRestock); err != nil {
		return err
	}
	r.a.LastRestock = &rs
	for i := range r.a.InsumoList {
		if r.a.InsumoList[i].ID == rs.InsumoID {
			r.a.InsumoList[i].Stock = r.a.InsumoList[i].Stock.Add(rs.Amount)
		}
	}
	r.a.MovementList = append(r.a.MovementList, entity.Movement{
		ID: r.a.id(), Type: entity.MovementTypeEgreso, Amount: rs.TotalAmount, Description: "Surtido de insumo",
	})
	return nil
}

func (r movements) Sell(_ context.Context, sale entity.Sale) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpMovesSell); err != nil {
		return err
	}
	r.a.LastSale = &sale
	if sale.IsCredit {
		r.a.CreditSales = append(r.a.CreditSales, entity.CreditSale{
			SaleID: r.a.id(), ClientID: sale.ClientID, Total: decimal.NewFromInt(int64(len(sale.Items))),
			Description: "Venta a crédito",
		})
		return nil
	}
	r.a.MovementList = append(r.a.MovementList, entity.Movement{
		ID: r.a.id(), Type: entity.MovementTypeIngreso, Amount: decimal.NewFromInt(1), Description: "Venta",
	})
	return nil
}

func (r movements) AdjustBalance(_ context.Context, adj entity.BalanceAdjustment) error {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpMovesAdjust); err != nil {
		return err
	}
	r.a.LastAdjust = &adj
	r.a.AccountData.Balance = r.a.AccountData.Balance.Add(adj.Amount)
	typ := entity.MovementTypeIngreso
	if adj.Amount.IsNegative() {
		typ = entity.MovementTypeEgreso
	}
	r.a.MovementList = append(r.a.MovementList, entity.Movement{
		ID: r.a.id(), Type: typ, Amount: adj.Amount.Abs(), Description: adj.Description,
	})
	return nil
}

// ── crédito ───────────────────────────────────────────────────────────────────

type credits struct{ a *API }

func (r credits) ListSales(_ context.Context) ([]entity.CreditSale, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpCreditSales); err != nil {
		return nil, err
	}
	return append([]entity.CreditSale(nil), r.a.CreditSales...), nil
}

func (r credits) SalesByClient(_ context.Context, clientID int64) ([]entity.CreditSale, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpCreditByClient); err != nil {
		return nil, err
	}
	out := []entity.CreditSale{}
	for _, s := range r.a.CreditSales {
		if s.ClientID == clientID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r credits) Payments(_ context.Context, saleID int64) ([]entity.Payment, error) {
	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	if err := r.a.enter(OpCreditPayments); err != nil {
		return nil, err
	}
	out := []entity.Payment{}
	for _, p := range r.a.PaymentList {
		if p.CreditSaleID == saleID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Pay aplica el abono como lo haría el servidor: suma a total_paid y descuenta la deuda del cliente.
func (r credits) Pay(_ context.Context, req entity.PaymentRequest) error {
	r.a.mu.Lock()
	err := r.a.enter(OpCreditPay)
	hook := r.a.PayHook
	r.a.mu.Unlock()
	if err != nil {
		return err
	}
	if hook != nil {
		hook()
	}

	r.a.mu.Lock()
	defer r.a.mu.Unlock()
	r.a.LastPay = &req
	for i := range r.a.CreditSales {
		s := &r.a.CreditSales[i]
		if s.SaleID != req.CreditSaleID {
			continue
		}
		s.TotalPaid = s.TotalPaid.Add(req.Amount)
		for j := range r.a.ClientList {
			if r.a.ClientList[j].ID == s.ClientID {
				r.a.ClientList[j].Debt = r.a.ClientList[j].Debt.Sub(req.Amount)
			}
		}
		r.a.PaymentList = append(r.a.PaymentList, entity.Payment{
			ID: r.a.id(), CreditSaleID: req.CreditSaleID, Amount: req.Amount,
		})
		return nil
	}
	return &domain.APIError{Status: 404, Message: "Venta no encontrada", FromServer: true}
}
