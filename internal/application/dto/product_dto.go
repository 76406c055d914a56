package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o editar un producto. Foto en base64 (con o sin prefijo data:).
type ProductRequest struct {
	Name    string             `json:"name"`
	Price   decimal.Decimal    `json:"price"`
	Foto    string             `json:"foto"`
	Insumos []ProductInsumoDTO `json:"insumos,omitempty"`
}

// ProductInsumoDTO línea de composición.
type ProductInsumoDTO struct {
	InsumoID int64           `json:"id_insumo"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ProductResponse salida de un producto con la ganancia calculada.
type ProductResponse struct {
	ID                int64              `json:"id"`
	Name              string             `json:"name"`
	Price             decimal.Decimal    `json:"price"`
	PriceDisplay      string             `json:"price_display"`
	Foto              string             `json:"foto"`
	CostoTotal        decimal.Decimal    `json:"costo_total"`
	CostoTotalDisplay string             `json:"costo_total_display"`
	Profit            decimal.Decimal    `json:"profit"`
	ProfitDisplay     string             `json:"profit_display"`
	Profitable        bool               `json:"profitable"`
	Insumos           []ProductInsumoDTO `json:"insumos"`
}

// CompositionLineRequest entrada para agregar un insumo a una composición.
type CompositionLineRequest struct {
	InsumoID int64           `json:"id_insumo"`
	Quantity decimal.Decimal `json:"quantity"`
}

// QuantityRequest entrada para cambiar la cantidad de un insumo.
type QuantityRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// ProductDraftResponse borrador de producto con su composición local.
type ProductDraftResponse struct {
	DraftID       string             `json:"draft_id"`
	Name          string             `json:"name"`
	Price         decimal.Decimal    `json:"price"`
	HasFoto       bool               `json:"has_foto"`
	Insumos       []ProductInsumoDTO `json:"insumos"`
	EstimatedCost decimal.Decimal    `json:"estimated_cost"`
	ExpiresAt     time.Time          `json:"expires_at"`
}

// StagedEditsResponse cantidades en edición (sin enviar) de un producto.
type StagedEditsResponse struct {
	ProductID int64              `json:"product_id"`
	Staged    []ProductInsumoDTO `json:"staged"`
}

// ProductMutationResponse resultado de una mutación con el listado re-consultado.
type ProductMutationResponse struct {
	Message  string                        `json:"message"`
	Products ListResponse[ProductResponse] `json:"products"`
}

// ProductDraftRequest actualización parcial de un borrador de producto.
type ProductDraftRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
	Foto  *string          `json:"foto"`
}

// ProfitabilityResponse productos ordenados de menor a mayor ganancia.
type ProfitabilityResponse struct {
	Products     []ProductResponse `json:"products"`
	Unprofitable int               `json:"unprofitable"`
	Degraded     bool              `json:"degraded"`
}
