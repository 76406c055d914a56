// Package export genera la hoja de cálculo de movimientos de caja.
package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/ememar-console/internal/application/reports"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
	"github.com/jhoicas/ememar-console/pkg/timefmt"
)

const sheetName = "Movimientos"

var headers = []string{"Fecha", "Tipo", "Descripción", "Monto"}

var _ reports.LedgerRenderer = (*ExcelLedger)(nil)

// ExcelLedger implementa reports.LedgerRenderer con excelize.
type ExcelLedger struct{}

// NewExcelLedger construye el generador.
func NewExcelLedger() *ExcelLedger { return &ExcelLedger{} }

// RenderLedger una fila por movimiento (monto con signo) y una fila final de totales.
func (g *ExcelLedger) RenderLedger(_ context.Context, movements []entity.Movement, offset time.Duration) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("export: renombrar hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("export: estilo: %w", err)
	}
	moneyFmt := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("export: estilo: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("export: cabecera: %w", err)
	}
	_ = f.SetCellStyle(sheetName, "A1", "D1", bold)

	total := decimal.Zero
	for i, m := range movements {
		r := i + 2
		row := []interface{}{
			timefmt.Display(m.Date, offset),
			kindLabel(m.Kind()),
			m.Description,
			m.SignedAmount().InexactFloat64(),
		}
		cell, _ := excelize.CoordinatesToCellName(1, r)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("export: fila %d: %w", r, err)
		}
		total = total.Add(m.SignedAmount())
	}

	last := len(movements) + 2
	totalLabel, _ := excelize.CoordinatesToCellName(3, last)
	totalCell, _ := excelize.CoordinatesToCellName(4, last)
	_ = f.SetCellValue(sheetName, totalLabel, "Total")
	_ = f.SetCellValue(sheetName, totalCell, total.InexactFloat64())
	_ = f.SetCellStyle(sheetName, totalLabel, totalLabel, bold)
	_ = f.SetCellStyle(sheetName, "D2", totalCell, moneyStyle)

	_ = f.SetColWidth(sheetName, "A", "A", 18)
	_ = f.SetColWidth(sheetName, "B", "B", 16)
	_ = f.SetColWidth(sheetName, "C", "C", 48)
	_ = f.SetColWidth(sheetName, "D", "D", 16)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export: escribir xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func kindLabel(k entity.MovementKind) string {
	switch k {
	case entity.KindCreditPayment:
		return "Abono a crédito"
	case entity.KindIncome:
		return "Ingreso"
	default:
		return "Egreso"
	}
}
