package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ememar-console/internal/application/dto"
	"github.com/jhoicas/ememar-console/internal/domain"
)

// statusFor traduce un error de dominio a status HTTP y código estable.
func statusFor(err error) (int, string) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		switch {
		case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
			return fiber.StatusConflict, vErr.Code
		case errors.Is(err, domain.ErrNotFound):
			return fiber.StatusNotFound, vErr.Code
		default:
			return fiber.StatusBadRequest, vErr.Code
		}
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status == fiber.StatusNotFound:
			return fiber.StatusNotFound, "NOT_FOUND"
		case apiErr.Status >= 400 && apiErr.Status < 500:
			return apiErr.Status, "API_REJECTED"
		default:
			return fiber.StatusBadGateway, "API_ERROR"
		}
	}

	switch {
	case errors.Is(err, domain.ErrUnavailable):
		return fiber.StatusBadGateway, "API_UNAVAILABLE"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, domain.CodeValidation
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, domain.CodeNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// writeError responde dto.ErrorResponse. El mensaje es el del servidor remoto o de la validación; si no, fallback.
func writeError(c *fiber.Ctx, err error, fallback string) error {
	status, code := statusFor(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: domain.UserMessage(err, fallback)})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// paramID lee un id numérico positivo de la ruta.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx, name string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: name + " inválido"})
}
