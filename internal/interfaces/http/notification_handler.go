package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ememar-console/internal/application/dto"
	"github.com/jhoicas/ememar-console/internal/application/notify"
	"github.com/jhoicas/ememar-console/internal/domain"
)

// notifier publica en la cola del operador el resultado de cada mutación.
type notifier struct {
	hub *notify.Hub
}

func (n notifier) ok(c *fiber.Ctx, msg string) {
	if n.hub != nil {
		n.hub.Success(GetOperatorID(c), msg)
	}
}

// fail avisa y responde el error. Los rechazos locales van como advertencia.
func (n notifier) fail(c *fiber.Ctx, err error, fallback string) error {
	if n.hub != nil {
		kind := notify.TypeError
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			kind = notify.TypeWarning
		}
		n.hub.Push(GetOperatorID(c), kind, domain.UserMessage(err, fallback))
	}
	return writeError(c, err, fallback)
}

// NotificationHandler expone la cola de avisos del operador.
type NotificationHandler struct {
	hub *notify.Hub
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(hub *notify.Hub) *NotificationHandler {
	return &NotificationHandler{hub: hub}
}

// List godoc
// @Summary      Avisos vigentes del operador
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.hub.List(GetOperatorID(c)))
}

// Dismiss godoc
// @Summary      Descartar un aviso
// @Tags         notifications
// @Security     Bearer
// @Param        id   path  string  true  "ID del aviso"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id} [delete]
func (h *NotificationHandler) Dismiss(c *fiber.Ctx) error {
	if !h.hub.Dismiss(GetOperatorID(c), c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "aviso no encontrado"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
