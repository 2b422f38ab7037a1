// Package cli contiene la salida de texto de las herramientas de línea de comandos.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/replenishment-api/internal/domain/inventory"
	"github.com/jhoicas/replenishment-api/pkg/format"
)

// SampleSKU SKU de ejemplo para el reporte por lotes y el seed.
type SampleSKU struct {
	Code         string
	Name         string
	AnnualDemand float64
	UnitCost     float64
	OrderCost    float64
}

// SampleSKUs portafolio de referencia: tres perfiles de demanda y costo.
var SampleSKUs = []SampleSKU{
	{Code: "SKU-A", Name: "Alta rotación, bajo costo", AnnualDemand: 12000, UnitCost: 25, OrderCost: 150},
	{Code: "SKU-B", Name: "Baja rotación, alto costo", AnnualDemand: 5000, UnitCost: 100, OrderCost: 200},
	{Code: "SKU-C", Name: "Volumen masivo, costo mínimo", AnnualDemand: 50000, UnitCost: 5, OrderCost: 100},
}

// Sample tasas del portafolio de referencia.
const (
	SampleCapitalRate = 0.10
	SampleStorageRate = 2.0
)

// Params arma los parámetros del SKU con las tasas dadas.
func (s SampleSKU) Params(capitalRate, storageRate float64) (inventory.ReplenishmentParameters, error) {
	return inventory.NewParameters(s.AnnualDemand, s.UnitCost, s.OrderCost, capitalRate, storageRate)
}

// Reporter escribe análisis y comparaciones en texto plano.
type Reporter struct {
	w        io.Writer
	f        *format.Formatter
	analyzer *inventory.Analyzer
}

// NewReporter construye el reporter; analyzer nil usa la configuración por defecto.
func NewReporter(w io.Writer, f *format.Formatter, analyzer *inventory.Analyzer) *Reporter {
	if analyzer == nil {
		analyzer = inventory.NewAnalyzer(nil, 0)
	}
	return &Reporter{w: w, f: f, analyzer: analyzer}
}

// Batch analiza cada SKU y termina con la tabla comparativa del primero.
// Un SKU rechazado se informa y no detiene al resto; el error devuelto es el primero encontrado.
func (r *Reporter) Batch(skus []SampleSKU, capitalRate, storageRate float64, quantities []float64) error {
	r.rule("=")
	r.println("PROCUREMENT PROCESS OPTIMIZATION")
	r.rule("=")

	var first error
	for _, s := range skus {
		p, err := s.Params(capitalRate, storageRate)
		if err == nil {
			err = r.SKU(s.Code, p)
		}
		if err != nil {
			r.printf("\n--- SKU: %s ---\nerror: %v\n", s.Code, err)
			if first == nil {
				first = err
			}
		}
	}
	if len(skus) == 0 {
		return first
	}

	p, err := skus[0].Params(capitalRate, storageRate)
	if err != nil {
		return first
	}
	r.println("")
	r.rule("=")
	if err := r.Comparison(p, quantities); err != nil && first == nil {
		first = err
	}
	return first
}

// SKU imprime parámetros, EOQ, óptimo numérico y diagnósticos de un SKU.
func (r *Reporter) SKU(name string, p inventory.ReplenishmentParameters) error {
	a, err := r.analyzer.Analyze(name, p)
	if err != nil {
		return err
	}
	f := r.f
	r.printf("\n--- SKU: %s ---\n", name)
	r.printf("Annual demand: %s units\n", f.Units(p.AnnualDemand))
	r.printf("Unit cost: %s\n", f.Money(p.UnitCost))
	r.printf("Transport cost per order: %s\n", f.Money(p.OrderCost))
	r.printf("Capital rate: %s\n", f.Percent(p.CapitalRate))
	r.printf("Storage cost: %s/unit/year\n", f.Money(p.StorageRate))

	r.printf("\nEOQ (classic formula): %s units\n", f.Units(a.ClosedForm.Quantity))
	r.printf("Optimized Q: %s units\n", f.Units(a.Numeric.Quantity))
	r.printf("Minimum total cost: %s/year\n", f.Money(a.Numeric.TotalCost))
	if !a.Numeric.Converged() {
		r.printf("Search status: %s after %d evaluations\n", a.Numeric.Status, a.Numeric.Evaluations)
	}
	if !a.Agrees {
		r.printf("Warning: numeric optimum differs from EOQ by %s\n", f.Percent(a.RelativeDifference))
	}

	ev := a.AtOptimum
	r.println("\nAt optimal Q:")
	r.printf("  Orders per year: %s\n", f.Decimal(ev.OrdersPerYear, 1))
	r.printf("  Average inventory: %s units\n", f.Units(ev.AverageInventory))
	r.printf("  Days of supply: %s days\n", f.Decimal(ev.DaysOfSupply, 1))
	return nil
}

// Comparison imprime la tabla de costos para las cantidades dadas (o las por defecto).
func (r *Reporter) Comparison(p inventory.ReplenishmentParameters, quantities []float64) error {
	rows, err := inventory.Compare(p, quantities)
	if err != nil {
		return err
	}
	r.println("")
	r.rule("-")
	r.println("ORDER QUANTITY COMPARISON")
	r.rule("-")
	r.printf("%-10s %-12s %-15s %-12s\n", "Q", "Orders/Yr", "Total Cost", "Days Supply")
	r.println(strings.Repeat("-", 50))
	for _, e := range rows {
		r.printf("%-10s %-12s %-15s %-12s\n",
			r.f.Units(e.Quantity),
			r.f.Decimal(e.OrdersPerYear, 1),
			r.f.Money(e.TotalCost),
			r.f.Decimal(e.DaysOfSupply, 1),
		)
	}
	return nil
}

func (r *Reporter) rule(ch string) { r.println(strings.Repeat(ch, 60)) }

func (r *Reporter) println(s string) { fmt.Fprintln(r.w, s) }

func (r *Reporter) printf(format string, args ...any) { fmt.Fprintf(r.w, format, args...) }
