package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrUnavailable  = errors.New("api remota no disponible")
)

// Códigos de rechazo locales (antes de cualquier llamada remota).
const (
	CodeValidation             = "VALIDATION"
	CodeAmountExceedsRemaining = "AMOUNT_EXCEEDS_REMAINING"
	CodeAlreadyPaid            = "ALREADY_PAID"
	CodePaymentInFlight        = "PAYMENT_IN_FLIGHT"
	CodeIdempotencyKeyReused   = "IDEMPOTENCY_KEY_REUSED"
	CodeDuplicateInsumo        = "DUPLICATE_INSUMO"
	CodeNotFound               = "NOT_FOUND"
)

// ValidationError rechazo local con código estable y mensaje para el operador.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap permite errors.Is(err, ErrInvalidInput); los duplicados y el abono en curso mapean a su sentinel.
func (e *ValidationError) Unwrap() error {
	switch e.Code {
	case CodeDuplicateInsumo:
		return ErrDuplicate
	case CodePaymentInFlight, CodeIdempotencyKeyReused:
		return ErrConflict
	case CodeNotFound:
		return ErrNotFound
	default:
		return ErrInvalidInput
	}
}

// NewValidation atajo para construir un ValidationError.
func NewValidation(code, msg string) *ValidationError {
	return &ValidationError{Code: code, Message: msg}
}

// APIError error devuelto por la API remota. Message es el texto del servidor (campo error o message)
// o, si no vino ninguno, el mensaje genérico de la operación.
type APIError struct {
	Status     int
	Message    string
	FromServer bool
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api %d: %s", e.Status, e.Message)
}

// Unwrap mapea 404 a ErrNotFound para que los handlers respondan coherente.
func (e *APIError) Unwrap() error {
	if e.Status == 404 {
		return ErrNotFound
	}
	return nil
}

// UserMessage devuelve el texto a mostrar al operador.
// Si el error no viene de la API se usa fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.FromServer && apiErr.Message != "" {
		return apiErr.Message
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	return fallback
}
