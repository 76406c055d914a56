package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ememar-console/internal/application/catalog"
	"github.com/jhoicas/ememar-console/internal/application/dto"
)

// ProductHandler maneja productos, su composición y las ediciones pendientes (protegido).
type ProductHandler struct {
	uc *catalog.CatalogUseCase
	notifier
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *catalog.CatalogUseCase, n notifier) *ProductHandler {
	return &ProductHandler{uc: uc, notifier: n}
}

// List godoc
// @Summary      Listar productos con ganancia
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Búsqueda por nombre"
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.UserContext(), c.Query("q")))
}

// Profitability godoc
// @Summary      Productos de menor a mayor ganancia
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfitabilityResponse
// @Router       /api/products/profitability [get]
func (h *ProductHandler) Profitability(c *fiber.Ctx) error {
	return c.JSON(h.uc.Profitability(c.UserContext()))
}

// Create godoc
// @Summary      Crear producto con su composición
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "name, price, foto, insumos"
// @Success      201   {object}  dto.ProductMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err, catalog.MsgCreateFailed)
	}
	h.ok(c, out.Message)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar nombre, precio y foto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "name, price, foto"
// @Success      200   {object}  dto.ProductMutationResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.fail(c, err, catalog.MsgUpdateFailed)
	}
	h.ok(c, out.Message)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductMutationResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, catalog.MsgDeleteFailed)
	}
	h.ok(c, out.Message)
	return c.JSON(out)
}

// ── composición en vivo ───────────────────────────────────────────────────────

// AddInsumo godoc
// @Summary      Agregar insumo a un producto existente
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.CompositionLineRequest  true  "id_insumo, quantity"
// @Success      200   {object}  dto.ProductMutationResponse
// @Router       /api/products/{id}/insumos [post]
func (h *ProductHandler) AddInsumo(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	var in dto.CompositionLineRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddInsumo(c.UserContext(), id, in)
	if err != nil {
		return h.fail(c, err, catalog.MsgAddFailed)
	}
	h.ok(c, out.Message)
	return c.JSON(out)
}

// UpdateInsumo godoc
// @Summary      Cambiar la cantidad de un insumo del producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id        path  int  true  "ID del producto"
// @Param        insumoId  path  int  true  "ID del insumo"
// @Param        body      body  dto.QuantityRequest  true  "quantity"
// @Success      200   {object}  dto.ProductMutationResponse
// @Router       /api/products/{id}/insumos/{insumoId} [put]
func (h *ProductHandler) UpdateInsumo(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	insumoID, ok := paramID(c, "insumoId")
	if !ok {
		return invalidID(c, "insumoId")
	}
	var in dto.QuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateInsumo(c.UserContext(), id, insumoID, in)
	if err != nil {
		return h.fail(c, err, catalog.MsgQuantityFailed)
	}
	h.ok(c, out.Message)
	return c.JSON(out)
}

// RemoveInsumo godoc
// @Summary      Quitar insumo del producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id        path  int  true  "ID del producto"
// @Param        insumoId  path  int  true  "ID del insumo"
// @Success      200   {object}  dto.ProductMutationResponse
// @Router       /api/products/{id}/insumos/{insumoId} [delete]
func (h *ProductHandler) RemoveInsumo(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	insumoID, ok := paramID(c, "insumoId")
	if !ok {
		return invalidID(c, "insumoId")
	}
	out, err := h.uc.RemoveInsumo(c.UserContext(), id, insumoID)
	if err != nil {
		return h.fail(c, err, catalog.MsgRemoveFailed)
	}
	h.ok(c, out.Message)
	return c.JSON(out)
}

// ── ediciones pendientes ──────────────────────────────────────────────────────

// Staged godoc
// @Summary      Cantidades en edición sin enviar
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.StagedEditsResponse
// @Router       /api/products/{id}/staged [get]
func (h *ProductHandler) Staged(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	return c.JSON(h.uc.Staged(GetOperatorID(c), id))
}

// Stage godoc
// @Summary      Guardar una cantidad sin enviarla
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id        path  int  true  "ID del producto"
// @Param        insumoId  path  int  true  "ID del insumo"
// @Param        body      body  dto.QuantityRequest  true  "quantity"
// @Success      200  {object}  dto.StagedEditsResponse
// @Router       /api/products/{id}/staged/{insumoId} [put]
func (h *ProductHandler) Stage(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	insumoID, ok := paramID(c, "insumoId")
	if !ok {
		return invalidID(c, "insumoId")
	}
	var in dto.QuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.StageQuantity(GetOperatorID(c), id, insumoID, in)
	if err != nil {
		return writeError(c, err, catalog.MsgQuantityFailed)
	}
	return c.JSON(out)
}

// CommitStaged godoc
// @Summary      Enviar la cantidad pendiente
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id        path  int  true  "ID del producto"
// @Param        insumoId  path  int  true  "ID del insumo"
// @Success      200  {object}  dto.ProductMutationResponse
// @Router       /api/products/{id}/staged/{insumoId}/commit [post]
func (h *ProductHandler) CommitStaged(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	insumoID, ok := paramID(c, "insumoId")
	if !ok {
		return invalidID(c, "insumoId")
	}
	out, err := h.uc.CommitStaged(c.UserContext(), GetOperatorID(c), id, insumoID)
	if err != nil {
		return h.fail(c, err, catalog.MsgQuantityFailed)
	}
	h.ok(c, out.Message)
	return c.JSON(out)
}

// CancelStaged godoc
// @Summary      Descartar la cantidad pendiente
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id        path  int  true  "ID del producto"
// @Param        insumoId  path  int  true  "ID del insumo"
// @Success      200  {object}  dto.StagedEditsResponse
// @Router       /api/products/{id}/staged/{insumoId} [delete]
func (h *ProductHandler) CancelStaged(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	insumoID, ok := paramID(c, "insumoId")
	if !ok {
		return invalidID(c, "insumoId")
	}
	out, err := h.uc.CancelStaged(GetOperatorID(c), id, insumoID)
	if err != nil {
		return writeError(c, err, catalog.MsgQuantityFailed)
	}
	return c.JSON(out)
}
