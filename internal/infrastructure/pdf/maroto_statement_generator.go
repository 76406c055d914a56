// Package pdf genera el estado de cuenta de un cliente en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Eme Mar + título       │  Fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + teléfono     │  Deuda actual              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR VENTA: Fecha | Descripción | Total | Pagado | Pendiente │
//	│     abonos: Fecha | Monto                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Vendido / Pagado / Pendiente                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ememar-console/internal/application/reports"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
	"github.com/jhoicas/ememar-console/pkg/money"
	"github.com/jhoicas/ememar-console/pkg/textsearch"
	"github.com/jhoicas/ememar-console/pkg/timefmt"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorOK      = &props.Color{Red: 20, Green: 120, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reports.StatementRenderer = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implementa reports.StatementRenderer usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// RenderStatement genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) RenderStatement(_ context.Context, data *reports.StatementData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta - "+data.Client.Name, true).
		WithAuthor("Eme Mar", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(&data.Client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(data.Sales) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("El cliente no tiene ventas a crédito.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	m.AddRows(saleHeaderRow())
	for _, s := range data.Sales {
		m.AddRows(saleRow(&s.Sale, data))
		for _, r := range paymentRows(s.Payments, data) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data.Sales))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda + título (izq) y fecha de generación (der).
func headerRow(data *reports.StatementData) core.Row {
	fecha := data.GeneratedAt.Add(data.DisplayOffset).Format(timefmt.DisplayLayout)

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Eme Mar", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(textsearch.Title("estado de cuenta de cliente"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(fecha, props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

// clientRow: datos del cliente y su deuda según el servidor.
func clientRow(c *entity.Client) core.Row {
	debtColor := colorOK
	if c.HasDebt() {
		debtColor = colorDanger
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("Tel: "+nonEmpty(c.Phone, "—"), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("DEUDA ACTUAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(money.FormatCOP(c.Debt), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: debtColor, Top: 7,
			}),
		),
	)
}

// saleHeaderRow: cabecera de la tabla de ventas.
func saleHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Total", 2, align.Right),
		h("Pagado", 2, align.Right),
		h("Pendiente", 2, align.Right),
	)
}

// saleRow: una fila por venta a crédito.
func saleRow(s *entity.CreditSale, data *reports.StatementData) core.Row {
	pending := colorDanger
	if s.IsPaid() {
		pending = colorOK
	}
	cell := func(v string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(v, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	return row.New(7).Add(
		cell(timefmt.Display(s.Date, data.DisplayOffset), 2, align.Left),
		cell(fmt.Sprintf("#%d %s", s.SaleID, s.Description), 4, align.Left),
		cell(money.FormatCOP(s.Total), 2, align.Right),
		cell(money.FormatCOP(s.TotalPaid), 2, align.Right),
		col.New(2).Add(text.New(money.FormatCOP(s.Remaining()), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: pending, Top: 1, Right: 1,
		})),
	)
}

// paymentRows: abonos de la venta, sangrados bajo la fila de la venta.
func paymentRows(payments []entity.Payment, data *reports.StatementData) []core.Row {
	result := make([]core.Row, 0, len(payments))
	for _, p := range payments {
		result = append(result, row.New(5).Add(
			col.New(2),
			col.New(4).Add(text.New(
				"Abono "+timefmt.Display(p.Date, data.DisplayOffset),
				props.Text{Size: 7, Color: colorGray, Left: 3},
			)),
			col.New(4).Add(text.New(
				money.FormatCOP(p.Amount),
				props.Text{Size: 7, Align: align.Right, Color: colorGray, Right: 1},
			)),
			col.New(2),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(sales []reports.StatementSale) core.Row {
	total, paid := decimal.Zero, decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Sale.Total)
		paid = paid.Add(s.Sale.TotalPaid)
	}
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Total vendido:", 1),
			label("Total pagado:", 7),
			label("Pendiente:", 13),
		),
		col.New(3).Add(
			value(money.FormatCOP(total), 1),
			value(money.FormatCOP(paid), 7),
			text.New(money.FormatCOP(total.Sub(paid)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 13,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
