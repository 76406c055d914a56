package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ememar-console/internal/application/clients"
	"github.com/jhoicas/ememar-console/internal/application/credit"
	"github.com/jhoicas/ememar-console/internal/application/dto"
)

// ClientHandler maneja las peticiones HTTP para clientes (protegido).
type ClientHandler struct {
	uc       *clients.ClientUseCase
	creditUC *credit.CreditUseCase
	notifier
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *clients.ClientUseCase, creditUC *credit.CreditUseCase, n notifier) *ClientHandler {
	return &ClientHandler{uc: uc, creditUC: creditUC, notifier: n}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        q        query  string  false  "Búsqueda por nombre o teléfono"
// @Param        debtors  query  bool    false  "Solo clientes con deuda"
// @Success      200  {object}  dto.ListResponse[dto.ClientResponse]
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.UserContext(), c.Query("q"), c.QueryBool("debtors", false)))
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClientRequest  true  "name, phone, debt"
// @Success      201   {object}  dto.ClientMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.ClientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err, clients.MsgCreateFailed)
	}
	h.ok(c, out.Message)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del cliente"
// @Param        body  body  dto.ClientRequest  true  "name, phone, debt"
// @Success      200   {object}  dto.ClientMutationResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	var in dto.ClientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.fail(c, err, clients.MsgUpdateFailed)
	}
	h.ok(c, out.Message)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.ClientMutationResponse
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, clients.MsgDeleteFailed)
	}
	h.ok(c, out.Message)
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener cliente
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	client, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, "Cliente no encontrado")
	}
	return c.JSON(dto.FromClient(*client))
}

// History godoc
// @Summary      Historial del cliente (movimientos y ventas a crédito)
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.ClientHistoryResponse
// @Router       /api/clients/{id}/history [get]
func (h *ClientHandler) History(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	out, err := h.uc.History(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, "Error al cargar historial")
	}
	return c.JSON(out)
}

// CreditSales godoc
// @Summary      Ventas a crédito del cliente
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.ListResponse[dto.CreditSaleResponse]
// @Router       /api/clients/{id}/credit-sales [get]
func (h *ClientHandler) CreditSales(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	return c.JSON(h.creditUC.SalesByClient(c.UserContext(), id))
}
