// Package pdf genera el reporte de reposición de un SKU en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Código + nombre del SKU  │  Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PARÁMETROS: D, costo unitario, S, tasa capital, almacén, H  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESULTADO: EOQ vs búsqueda numérica (estado, evaluaciones) │
//	│  DESGLOSE: transporte / capital / almacenamiento / total    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Q | Costo total | Pedidos/año | Días de cobertura   │
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

	"github.com/jhoicas/replenishment-api/internal/application/replenishment"
	"github.com/jhoicas/replenishment-api/internal/domain/inventory"
	"github.com/jhoicas/replenishment-api/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorWarn    = &props.Color{Red: 170, Green: 60, Blue: 0}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

var _ replenishment.ReportRenderer = (*MarotoReportRenderer)(nil)

// MarotoReportRenderer implementa replenishment.ReportRenderer usando Maroto v2.
type MarotoReportRenderer struct {
	f *format.Formatter
}

// NewMarotoReportRenderer construye el renderer; locale vacío usa inglés.
func NewMarotoReportRenderer(locale string) *MarotoReportRenderer {
	return &MarotoReportRenderer{f: format.New(locale)}
}

// ContentType del documento producido.
func (g *MarotoReportRenderer) ContentType() string { return "application/pdf" }

// Extension del documento producido.
func (g *MarotoReportRenderer) Extension() string { return "pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoReportRenderer) Render(_ context.Context, r *replenishment.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de reposición "+r.SKU.Code, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.parameterRows(r)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.resultRows(r.Analysis)...)
	m.AddRows(g.breakdownRow(r.Analysis.AtOptimum))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("COMPARACIÓN DE CANTIDADES"))
	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(r.Comparison, r.Analysis.Numeric.Quantity)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportRenderer) headerRow(r *replenishment.Report) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(r.SKU.Code, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(r.SKU.Name, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("REPORTE DE REPOSICIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func (g *MarotoReportRenderer) parameterRows(r *replenishment.Report) []core.Row {
	p := r.Analysis.Params
	return []core.Row{
		sectionTitle("PARÁMETROS"),
		keyValueRow(
			"Demanda anual", g.f.Units(p.AnnualDemand)+" u",
			"Costo unitario", g.f.Money(p.UnitCost),
		),
		keyValueRow(
			"Costo por pedido", g.f.Money(p.OrderCost),
			"Tasa de capital", g.f.Percent(p.CapitalRate),
		),
		keyValueRow(
			"Almacenamiento", g.f.Money(p.StorageRate)+" /u/año",
			"Costo de mantener (H)", g.f.Money(r.Analysis.HoldingCostRate)+" /u/año",
		),
	}
}

func (g *MarotoReportRenderer) resultRows(a inventory.SkuAnalysis) []core.Row {
	rows := []core.Row{
		sectionTitle("CANTIDAD ÓPTIMA"),
		keyValueRow(
			"EOQ (fórmula)", g.f.Units(a.ClosedForm.Quantity)+" u",
			"Costo en EOQ", g.f.Money(a.ClosedForm.TotalCost),
		),
		keyValueRow(
			"Búsqueda numérica", g.f.Units(a.Numeric.Quantity)+" u",
			"Costo mínimo", g.f.Money(a.Numeric.TotalCost),
		),
		keyValueRow(
			"Estado", string(a.Numeric.Status),
			"Evaluaciones", fmt.Sprintf("%d", a.Numeric.Evaluations),
		),
		keyValueRow(
			"Diferencia relativa", g.f.Decimal(a.RelativeDifference*100, 4)+"%",
			"Pedidos/año", g.f.Decimal(a.AtOptimum.OrdersPerYear, 2),
		),
	}
	if !a.Agrees || !a.Numeric.Converged() {
		rows = append(rows, row.New(7).Add(col.New(12).Add(
			text.New("Atención: la búsqueda numérica no coincide con EOQ o no convergió.", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorWarn, Top: 1,
			}),
		)))
	}
	return rows
}

// breakdownRow desglose del costo anual en el óptimo.
func (g *MarotoReportRenderer) breakdownRow(ev inventory.CostEvaluation) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Transporte:"),
			label("Capital inmovilizado:"),
			label("Almacenamiento:"),
			text.New("COSTO TOTAL ANUAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2,
			}),
		),
		col.New(4).Add(
			value(g.f.Money(ev.TransportCost)),
			value(g.f.Money(ev.CapitalCost)),
			value(g.f.Money(ev.StorageCost)),
			text.New(g.f.Money(ev.TotalCost), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Q (u)", 2, align.Right),
		h("Costo total", 3, align.Right),
		h("Transporte", 2, align.Right),
		h("Mantener", 2, align.Right),
		h("Pedidos/año", 1, align.Right),
		h("Días", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows una fila por cantidad; la más cercana al óptimo va en negrita.
func (g *MarotoReportRenderer) tableRows(evals []inventory.CostEvaluation, optimum float64) []core.Row {
	out := make([]core.Row, 0, len(evals))
	for _, e := range evals {
		style := fontstyle.Normal
		if e.Quantity == optimum {
			style = fontstyle.Bold
		}
		cell := func(s string, size int) core.Col {
			return col.New(size).Add(text.New(s, props.Text{
				Style: style, Size: 8, Align: align.Right, Top: 1, Right: 1,
			}))
		}
		out = append(out, row.New(6).Add(
			cell(g.f.Units(e.Quantity), 2),
			cell(g.f.Money(e.TotalCost), 3),
			cell(g.f.Money(e.TransportCost), 2),
			cell(g.f.Money(e.HoldingCost()), 2),
			cell(g.f.Decimal(e.OrdersPerYear, 1), 1),
			cell(g.f.Decimal(e.DaysOfSupply, 1), 2),
		))
	}
	return out
}

// ── helpers ───────────────────────────────────────────────────────────────────

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func keyValueRow(k1, v1, k2, v2 string) core.Row {
	key := func(s string) core.Col {
		return col.New(3).Add(text.New(s+":", props.Text{Size: 8, Color: colorGray, Top: 1}))
	}
	val := func(s string) core.Col {
		return col.New(3).Add(text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}))
	}
	return row.New(6).Add(key(k1), val(v1), key(k2), val(v2))
}
