package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación de una acción con el mensaje para el operador.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListResponse listado con marca de degradado: la API remota no respondió y se devuelve vacío.
type ListResponse[T any] struct {
	Items    []T  `json:"items"`
	Degraded bool `json:"degraded"`
}

// NewList construye un ListResponse garantizando items no nulo.
func NewList[T any](items []T, degraded bool) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Degraded: degraded}
}
