package entity

// SaleLine línea de una venta: producto y unidades.
type SaleLine struct {
	ProductID int64
	Quantity  int
}

// Sale venta de contado o a crédito enviada en una sola llamada.
type Sale struct {
	ClientID int64
	Items    []SaleLine
	IsCredit bool
}
