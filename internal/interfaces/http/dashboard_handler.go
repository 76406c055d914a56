package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ememar-console/internal/application/dashboard"
	"github.com/jhoicas/ememar-console/internal/application/dto"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
)

// DashboardHandler resumen de caja y movimientos (protegido).
type DashboardHandler struct {
	uc *dashboard.DashboardUseCase
	notifier
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.DashboardUseCase, n notifier) *DashboardHandler {
	return &DashboardHandler{uc: uc, notifier: n}
}

// Summary godoc
// @Summary      Saldo, adeudado, movimientos recientes e insumos bajo mínimo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary(c.UserContext()))
}

// Movements godoc
// @Summary      Listar movimientos
// @Tags         moves
// @Security     Bearer
// @Produce      json
// @Param        q     query  string  false  "Búsqueda por descripción"
// @Param        kind  query  string  false  "income | expense | credit_payment"
// @Success      200  {object}  dto.ListResponse[dto.MovementResponse]
// @Router       /api/moves [get]
func (h *DashboardHandler) Movements(c *fiber.Ctx) error {
	kind := entity.MovementKind(c.Query("kind"))
	switch kind {
	case "", entity.KindIncome, entity.KindExpense, entity.KindCreditPayment:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind inválido"})
	}
	return c.JSON(h.uc.Movements(c.UserContext(), c.Query("q"), kind))
}

// AdjustBalance godoc
// @Summary      Ajustar saldo de caja
// @Tags         moves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustBalanceRequest  true  "amount, description"
// @Success      200  {object}  dto.AdjustBalanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/moves/adjust [post]
func (h *DashboardHandler) AdjustBalance(c *fiber.Ctx) error {
	var in dto.AdjustBalanceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AdjustBalance(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err, dashboard.MsgAdjustFailed)
	}
	h.ok(c, out.Message)
	return c.JSON(out)
}
