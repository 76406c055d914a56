package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ememar-console/internal/application/credit"
	"github.com/jhoicas/ememar-console/internal/application/dto"
)

// HeaderIdempotencyKey cabecera opcional para reintentar un abono sin duplicarlo.
const HeaderIdempotencyKey = "Idempotency-Key"

// CreditHandler ventas a crédito y abonos (protegido).
type CreditHandler struct {
	uc *credit.CreditUseCase
	notifier
}

// NewCreditHandler construye el handler.
func NewCreditHandler(uc *credit.CreditUseCase, n notifier) *CreditHandler {
	return &CreditHandler{uc: uc, notifier: n}
}

// ListSales godoc
// @Summary      Listar ventas a crédito
// @Tags         credit
// @Security     Bearer
// @Produce      json
// @Param        q            query  string  false  "Búsqueda por descripción o cliente"
// @Param        outstanding  query  bool    false  "Ocultar las saldadas"
// @Success      200  {object}  dto.ListResponse[dto.CreditSaleResponse]
// @Router       /api/credit/sales [get]
func (h *CreditHandler) ListSales(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListSales(c.UserContext(), c.Query("q"), c.QueryBool("outstanding", false)))
}

// Payments godoc
// @Summary      Historial de abonos de una venta
// @Tags         credit
// @Security     Bearer
// @Produce      json
// @Param        saleId  path  int  true  "ID de la venta a crédito"
// @Success      200  {object}  dto.ListResponse[dto.PaymentResponse]
// @Router       /api/credit/sales/{saleId}/payments [get]
func (h *CreditHandler) Payments(c *fiber.Ctx) error {
	saleID, ok := paramID(c, "saleId")
	if !ok {
		return invalidID(c, "saleId")
	}
	return c.JSON(h.uc.Payments(c.UserContext(), saleID))
}

// Pay godoc
// @Summary      Registrar abono
// @Description  El monto se valida contra el pendiente vigente antes de llamar a la API. Con Idempotency-Key un reintento devuelve el mismo resultado.
// @Tags         credit
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string  false  "Clave de idempotencia"
// @Param        body  body  dto.PaymentRequest  true  "credit_sale_id, amount"
// @Success      200  {object}  dto.PaymentResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/credit/payments [post]
func (h *CreditHandler) Pay(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SubmitPayment(c.UserContext(), in, c.Get(HeaderIdempotencyKey))
	if err != nil {
		return h.fail(c, err, credit.MsgPaymentFailed)
	}
	if !out.Replayed {
		h.ok(c, out.Message)
	}
	return c.JSON(out)
}
