package emeapi

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ememar-console/internal/domain/entity"
)

// Formas JSON de la API. Los montos llegan como número; se envían como número (float64)
// porque decimal serializa con comillas.

type wireClient struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Phone string          `json:"phone"`
	Debt  decimal.Decimal `json:"debt"`
}

func (w wireClient) toEntity() entity.Client {
	return entity.Client{ID: w.ID, Name: w.Name, Phone: w.Phone, Debt: w.Debt}
}

type clientBody struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Debt  float64 `json:"debt"`
}

type wireInsumo struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UM        string          `json:"um"`
	Stock     decimal.Decimal `json:"stock"`
	MinStock  decimal.Decimal `json:"min_stock"`
}

func (w wireInsumo) toEntity() entity.Insumo {
	return entity.Insumo{
		ID: w.ID, Name: w.Name, UnitPrice: w.UnitPrice, UM: w.UM,
		Stock: w.Stock, MinStock: w.MinStock,
	}
}

type insumoBody struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	UM        string  `json:"um"`
	Stock     float64 `json:"stock"`
	MinStock  float64 `json:"min_stock"`
}

type wireProductInsumo struct {
	InsumoID int64           `json:"id_insumo"`
	Quantity decimal.Decimal `json:"quantity"`
}

type wireProduct struct {
	ID         int64               `json:"id"`
	Name       string              `json:"name"`
	Price      decimal.Decimal     `json:"price"`
	Foto       string              `json:"foto"`
	CostoTotal decimal.Decimal     `json:"costo_total"`
	Insumos    []wireProductInsumo `json:"insumos"`
}

func (w wireProduct) toEntity() entity.Product {
	p := entity.Product{
		ID: w.ID, Name: w.Name, Price: w.Price, Foto: w.Foto, CostoTotal: w.CostoTotal,
		Insumos: make([]entity.ProductInsumo, 0, len(w.Insumos)),
	}
	for _, pi := range w.Insumos {
		p.Insumos = append(p.Insumos, entity.ProductInsumo{InsumoID: pi.InsumoID, Quantity: pi.Quantity})
	}
	return p
}

type productInsumoBody struct {
	InsumoID int64   `json:"id_insumo"`
	Quantity float64 `json:"quantity"`
}

type productCreateBody struct {
	Name    string              `json:"name"`
	Price   float64             `json:"price"`
	Foto    string              `json:"foto"`
	Insumos []productInsumoBody `json:"insumos"`
}

type productUpdateBody struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Foto  string  `json:"foto"`
}

type quantityBody struct {
	Quantity float64 `json:"quantity"`
}

type wireMovement struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"descripcion"`
	Date        string          `json:"date"`
}

func (w wireMovement) toEntity() entity.Movement {
	return entity.Movement{ID: w.ID, Type: w.Type, Amount: w.Amount, Description: w.Description, Date: w.Date}
}

type wireAccount struct {
	Balance    decimal.Decimal `json:"balance"`
	AmountOwed decimal.Decimal `json:"amount_owed"`
}

type restockBody struct {
	InsumoID    int64   `json:"id_insumo"`
	Amount      float64 `json:"amount"`
	TotalAmount float64 `json:"total_amount"`
}

type saleItemBody struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type sellBody struct {
	ClientID int64          `json:"client_id"`
	Items    []saleItemBody `json:"items"`
	IsCredit bool           `json:"is_credit"`
}

type adjustBody struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type wireCreditSale struct {
	SaleID      int64           `json:"sale_id"`
	ClientID    int64           `json:"client_id"`
	ClientName  string          `json:"client_name"`
	Total       decimal.Decimal `json:"total"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

func (w wireCreditSale) toEntity() entity.CreditSale {
	return entity.CreditSale{
		SaleID: w.SaleID, ClientID: w.ClientID, ClientName: w.ClientName,
		Total: w.Total, TotalPaid: w.TotalPaid, Description: w.Description, Date: w.Date,
	}
}

type wirePayment struct {
	ID     int64           `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

type payBody struct {
	CreditSaleID int64   `json:"credit_sale_id"`
	Amount       float64 `json:"amount"`
}
