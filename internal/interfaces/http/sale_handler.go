package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ememar-console/internal/application/dto"
	"github.com/jhoicas/ememar-console/internal/application/sales"
)

// SaleHandler borradores de venta y su envío (protegido).
type SaleHandler struct {
	uc *sales.SalesUseCase
	notifier
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SalesUseCase, n notifier) *SaleHandler {
	return &SaleHandler{uc: uc, notifier: n}
}

// NewDraft godoc
// @Summary      Crear borrador de venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.SaleDraftResponse
// @Router       /api/sales/drafts [post]
func (h *SaleHandler) NewDraft(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.uc.NewDraft(GetOperatorID(c)))
}

// GetDraft godoc
// @Summary      Obtener borrador de venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        draftId  path  string  true  "ID del borrador"
// @Success      200  {object}  dto.SaleDraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/drafts/{draftId} [get]
func (h *SaleHandler) GetDraft(c *fiber.Ctx) error {
	out, err := h.uc.GetDraft(GetOperatorID(c), c.Params("draftId"))
	if err != nil {
		return writeError(c, err, sales.MsgSaleFailed)
	}
	return c.JSON(out)
}

// UpdateDraft godoc
// @Summary      Cambiar cliente o tipo de venta
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        draftId  path  string  true  "ID del borrador"
// @Param        body     body  dto.SaleDraftRequest  true  "client_id, is_credit"
// @Success      200  {object}  dto.SaleDraftResponse
// @Router       /api/sales/drafts/{draftId} [patch]
func (h *SaleHandler) UpdateDraft(c *fiber.Ctx) error {
	var in dto.SaleDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateDraft(GetOperatorID(c), c.Params("draftId"), in)
	if err != nil {
		return writeError(c, err, sales.MsgSaleFailed)
	}
	return c.JSON(out)
}

// AddLine godoc
// @Summary      Agregar línea al borrador
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        draftId  path  string  true  "ID del borrador"
// @Param        body     body  dto.SaleLineDTO  true  "product_id, quantity"
// @Success      200  {object}  dto.SaleDraftResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/drafts/{draftId}/lines [post]
func (h *SaleHandler) AddLine(c *fiber.Ctx) error {
	var in dto.SaleLineDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddLine(GetOperatorID(c), c.Params("draftId"), in)
	if err != nil {
		return h.fail(c, err, sales.MsgSaleFailed)
	}
	return c.JSON(out)
}

// RemoveLine godoc
// @Summary      Quitar línea por posición
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        draftId  path  string  true  "ID del borrador"
// @Param        index    path  int     true  "Posición (desde 0)"
// @Success      200  {object}  dto.SaleDraftResponse
// @Router       /api/sales/drafts/{draftId}/lines/{index} [delete]
func (h *SaleHandler) RemoveLine(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return invalidID(c, "index")
	}
	out, err := h.uc.RemoveLine(GetOperatorID(c), c.Params("draftId"), index)
	if err != nil {
		return writeError(c, err, sales.MsgSaleFailed)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Registrar la venta del borrador
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        draftId  path  string  true  "ID del borrador"
// @Success      201  {object}  dto.SaleResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/drafts/{draftId}/submit [post]
func (h *SaleHandler) Submit(c *fiber.Ctx) error {
	out, err := h.uc.Submit(c.UserContext(), GetOperatorID(c), c.Params("draftId"))
	if err != nil {
		return h.fail(c, err, sales.MsgSaleFailed)
	}
	h.ok(c, out.Message)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DiscardDraft godoc
// @Summary      Descartar borrador de venta
// @Tags         sales
// @Security     Bearer
// @Param        draftId  path  string  true  "ID del borrador"
// @Success      204
// @Router       /api/sales/drafts/{draftId} [delete]
func (h *SaleHandler) DiscardDraft(c *fiber.Ctx) error {
	if err := h.uc.DiscardDraft(GetOperatorID(c), c.Params("draftId")); err != nil {
		return writeError(c, err, sales.MsgSaleFailed)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
