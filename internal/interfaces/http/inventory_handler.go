package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ememar-console/internal/application/dto"
	"github.com/jhoicas/ememar-console/internal/application/inventory"
	"github.com/jhoicas/ememar-console/internal/domain"
)

// InventoryHandler maneja insumos y su surtido (protegido).
type InventoryHandler struct {
	uc *inventory.InsumoUseCase
	notifier
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InsumoUseCase, n notifier) *InventoryHandler {
	return &InventoryHandler{uc: uc, notifier: n}
}

// List godoc
// @Summary      Listar insumos
// @Tags         insumos
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Búsqueda por nombre o unidad"
// @Success      200  {object}  dto.ListResponse[dto.InsumoResponse]
// @Router       /api/insumos [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.UserContext(), c.Query("q")))
}

// LowStock godoc
// @Summary      Insumos en o bajo su mínimo
// @Tags         insumos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.ReplenishmentItemResponse]
// @Router       /api/insumos/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	return c.JSON(h.uc.LowStock(c.UserContext()))
}

// Create godoc
// @Summary      Crear insumo
// @Tags         insumos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InsumoRequest  true  "name, unit_price, um, stock, min_stock"
// @Success      201   {object}  dto.InsumoMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/insumos [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.InsumoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err, inventory.MsgSaveFailed)
	}
	h.ok(c, out.Message)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar insumo
// @Tags         insumos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del insumo"
// @Param        body  body  dto.InsumoRequest  true  "name, unit_price, um, stock, min_stock"
// @Success      200   {object}  dto.InsumoMutationResponse
// @Router       /api/insumos/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	var in dto.InsumoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.fail(c, err, inventory.MsgSaveFailed)
	}
	h.ok(c, out.Message)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar insumo
// @Tags         insumos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del insumo"
// @Success      200  {object}  dto.InsumoMutationResponse
// @Router       /api/insumos/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, inventory.MsgDeleteFailed)
	}
	h.ok(c, out.Message)
	return c.JSON(out)
}

// RestockPreview godoc
// @Summary      Vista previa del surtido (no modifica nada)
// @Tags         insumos
// @Security     Bearer
// @Produce      json
// @Param        id      path   int     true  "ID del insumo"
// @Param        amount  query  string  true  "Cantidad a surtir"
// @Success      200  {object}  dto.RestockPreviewResponse
// @Router       /api/insumos/{id}/restock-preview [get]
func (h *InventoryHandler) RestockPreview(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	amount, err := decimal.NewFromString(c.Query("amount", "0"))
	if err != nil {
		return writeError(c, domain.NewValidation(domain.CodeValidation, inventory.MsgInvalidAmount), inventory.MsgInvalidAmount)
	}
	out, err := h.uc.Preview(c.UserContext(), id, amount)
	if err != nil {
		return writeError(c, err, inventory.MsgRestockFailed)
	}
	return c.JSON(out)
}

// Restock godoc
// @Summary      Surtir insumo
// @Tags         insumos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del insumo"
// @Param        body  body  dto.RestockRequest  true  "amount"
// @Success      200   {object}  dto.RestockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/insumos/{id}/restock [post]
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Restock(c.UserContext(), id, in)
	if err != nil {
		return h.fail(c, err, inventory.MsgRestockFailed)
	}
	h.ok(c, out.Message)
	return c.JSON(out)
}
