package dto

import "github.com/shopspring/decimal"

// InsumoRequest entrada para crear o editar un insumo. Todos los campos son obligatorios.
type InsumoRequest struct {
	Name      string           `json:"name"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	UM        string           `json:"um"`
	Stock     *decimal.Decimal `json:"stock"`
	MinStock  *decimal.Decimal `json:"min_stock"`
}

// InsumoResponse salida de un insumo.
type InsumoResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	UnitPriceDisplay string          `json:"unit_price_display"`
	UM               string          `json:"um"`
	Stock            decimal.Decimal `json:"stock"`
	MinStock         decimal.Decimal `json:"min_stock"`
	LowStock         bool            `json:"low_stock"`
}

// RestockRequest entrada para surtir un insumo.
type RestockRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// RestockPreviewResponse vista previa del surtido (no modifica nada).
type RestockPreviewResponse struct {
	InsumoID           int64           `json:"insumo_id"`
	Amount             decimal.Decimal `json:"amount"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	TotalAmountDisplay string          `json:"total_amount_display"`
	NewStock           decimal.Decimal `json:"new_stock"`
	UM                 string          `json:"um"`
}

// RestockResponse resultado del surtido con el listado re-consultado.
type RestockResponse struct {
	Message string                       `json:"message"`
	Insumos ListResponse[InsumoResponse] `json:"insumos"`
}

// InsumoMutationResponse resultado de crear, editar o eliminar con el listado re-consultado.
type InsumoMutationResponse struct {
	Message string                       `json:"message"`
	Insumos ListResponse[InsumoResponse] `json:"insumos"`
}

// ReplenishmentItemResponse insumo bajo mínimo con la cantidad que falta para alcanzarlo.
type ReplenishmentItemResponse struct {
	InsumoResponse
	Shortfall decimal.Decimal `json:"shortfall"`
}
