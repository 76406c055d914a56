package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ememar-console/internal/application/reports"
)

const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportHandler descargas de reportes (protegido).
type ReportHandler struct {
	uc *reports.ReportsUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportsUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Statement godoc
// @Summary      Estado de cuenta del cliente en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/statement.pdf [get]
func (h *ReportHandler) Statement(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	pdf, err := h.uc.Statement(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, "Error al generar estado de cuenta")
	}
	c.Set(fiber.HeaderContentType, mimePDF)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="estado-cuenta-%d.pdf"`, id))
	return c.Send(pdf)
}

// Ledger godoc
// @Summary      Movimientos en XLSX
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/moves/export.xlsx [get]
func (h *ReportHandler) Ledger(c *fiber.Ctx) error {
	xlsx, err := h.uc.Ledger(c.UserContext())
	if err != nil {
		return writeError(c, err, "Error al exportar movimientos")
	}
	c.Set(fiber.HeaderContentType, mimeXLSX)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.xlsx"`)
	return c.Send(xlsx)
}
