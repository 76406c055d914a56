package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ememar-console/internal/application/catalog"
	"github.com/jhoicas/ememar-console/internal/application/dto"
)

// Borradores de producto: la composición es local hasta el envío.

// NewDraft godoc
// @Summary      Crear borrador de producto
// @Tags         product-drafts
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.ProductDraftResponse
// @Router       /api/product-drafts [post]
func (h *ProductHandler) NewDraft(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.uc.NewDraft(c.UserContext(), GetOperatorID(c)))
}

// GetDraft godoc
// @Summary      Obtener borrador de producto
// @Tags         product-drafts
// @Security     Bearer
// @Produce      json
// @Param        draftId  path  string  true  "ID del borrador"
// @Success      200  {object}  dto.ProductDraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-drafts/{draftId} [get]
func (h *ProductHandler) GetDraft(c *fiber.Ctx) error {
	out, err := h.uc.GetDraft(c.UserContext(), GetOperatorID(c), c.Params("draftId"))
	if err != nil {
		return writeError(c, err, catalog.MsgCreateFailed)
	}
	return c.JSON(out)
}

// UpdateDraft godoc
// @Summary      Cambiar nombre, precio o foto del borrador
// @Tags         product-drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        draftId  path  string  true  "ID del borrador"
// @Param        body     body  dto.ProductDraftRequest  true  "name, price, foto"
// @Success      200  {object}  dto.ProductDraftResponse
// @Router       /api/product-drafts/{draftId} [patch]
func (h *ProductHandler) UpdateDraft(c *fiber.Ctx) error {
	var in dto.ProductDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateDraft(c.UserContext(), GetOperatorID(c), c.Params("draftId"), in)
	if err != nil {
		return writeError(c, err, catalog.MsgCreateFailed)
	}
	return c.JSON(out)
}

// DraftAddInsumo godoc
// @Summary      Agregar insumo al borrador
// @Tags         product-drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        draftId  path  string  true  "ID del borrador"
// @Param        body     body  dto.CompositionLineRequest  true  "id_insumo, quantity"
// @Success      200  {object}  dto.ProductDraftResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/product-drafts/{draftId}/insumos [post]
func (h *ProductHandler) DraftAddInsumo(c *fiber.Ctx) error {
	var in dto.CompositionLineRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.DraftAddInsumo(c.UserContext(), GetOperatorID(c), c.Params("draftId"), in)
	if err != nil {
		return h.fail(c, err, catalog.MsgAddFailed)
	}
	return c.JSON(out)
}

// DraftSetQuantity godoc
// @Summary      Cambiar cantidad de un insumo del borrador
// @Tags         product-drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        draftId   path  string  true  "ID del borrador"
// @Param        insumoId  path  int     true  "ID del insumo"
// @Param        body      body  dto.QuantityRequest  true  "quantity"
// @Success      200  {object}  dto.ProductDraftResponse
// @Router       /api/product-drafts/{draftId}/insumos/{insumoId} [put]
func (h *ProductHandler) DraftSetQuantity(c *fiber.Ctx) error {
	insumoID, ok := paramID(c, "insumoId")
	if !ok {
		return invalidID(c, "insumoId")
	}
	var in dto.QuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.DraftSetQuantity(c.UserContext(), GetOperatorID(c), c.Params("draftId"), insumoID, in)
	if err != nil {
		return writeError(c, err, catalog.MsgQuantityFailed)
	}
	return c.JSON(out)
}

// DraftRemoveInsumo godoc
// @Summary      Quitar insumo del borrador
// @Tags         product-drafts
// @Security     Bearer
// @Produce      json
// @Param        draftId   path  string  true  "ID del borrador"
// @Param        insumoId  path  int     true  "ID del insumo"
// @Success      200  {object}  dto.ProductDraftResponse
// @Router       /api/product-drafts/{draftId}/insumos/{insumoId} [delete]
func (h *ProductHandler) DraftRemoveInsumo(c *fiber.Ctx) error {
	insumoID, ok := paramID(c, "insumoId")
	if !ok {
		return invalidID(c, "insumoId")
	}
	out, err := h.uc.DraftRemoveInsumo(c.UserContext(), GetOperatorID(c), c.Params("draftId"), insumoID)
	if err != nil {
		return writeError(c, err, catalog.MsgRemoveFailed)
	}
	return c.JSON(out)
}

// SubmitDraft godoc
// @Summary      Crear el producto del borrador
// @Tags         product-drafts
// @Security     Bearer
// @Produce      json
// @Param        draftId  path  string  true  "ID del borrador"
// @Success      201  {object}  dto.ProductMutationResponse
// @Router       /api/product-drafts/{draftId}/submit [post]
func (h *ProductHandler) SubmitDraft(c *fiber.Ctx) error {
	out, err := h.uc.SubmitDraft(c.UserContext(), GetOperatorID(c), c.Params("draftId"))
	if err != nil {
		return h.fail(c, err, catalog.MsgCreateFailed)
	}
	h.ok(c, out.Message)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DiscardDraft godoc
// @Summary      Descartar borrador de producto
// @Tags         product-drafts
// @Security     Bearer
// @Param        draftId  path  string  true  "ID del borrador"
// @Success      204
// @Router       /api/product-drafts/{draftId} [delete]
func (h *ProductHandler) DiscardDraft(c *fiber.Ctx) error {
	if err := h.uc.DiscardDraft(GetOperatorID(c), c.Params("draftId")); err != nil {
		return writeError(c, err, catalog.MsgCreateFailed)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
