// report imprime el análisis de reposición en texto plano.
//
// Sin flags de SKU reproduce el reporte de referencia (SKU-A, SKU-B, SKU-C y la tabla
// comparativa del primero). Con --demand analiza un único SKU.
//
// Uso:
//
//	go run ./cmd/report
//	go run ./cmd/report --name SKU-X --demand 8000 --unit-cost 40 --order-cost 120 --compare 100,400,800
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/jhoicas/replenishment-api/internal/domain/inventory"
	"github.com/jhoicas/replenishment-api/internal/interfaces/cli"
	"github.com/jhoicas/replenishment-api/pkg/format"
)

func main() {
	var (
		name        = pflag.String("name", "SKU", "nombre del SKU (modo individual)")
		demand      = pflag.Float64("demand", 0, "demanda anual en unidades; activa el modo individual")
		unitCost    = pflag.Float64("unit-cost", 0, "costo unitario")
		orderCost   = pflag.Float64("order-cost", 0, "costo por pedido")
		capitalRate = pflag.Float64("capital-rate", cli.SampleCapitalRate, "tasa anual de capital (fracción)")
		storageRate = pflag.Float64("storage-rate", cli.SampleStorageRate, "costo de almacenamiento por unidad por año")
		quantities  = pflag.Float64Slice("compare", nil, "cantidades para la tabla comparativa (por defecto 50,100,200,500,1000,2000)")
		locale      = pflag.String("locale", "en", "idioma para formatear números (en, es-CO, ...)")
		lowerBound  = pflag.Float64("lower-bound", inventory.DefaultLowerBound, "cota inferior de la búsqueda")
		xtol        = pflag.Float64("xtol", inventory.DefaultSearchOptions().XTolerance, "tolerancia absoluta sobre Q")
		maxEvals    = pflag.Int("max-evals", inventory.DefaultSearchOptions().MaxEvaluations, "tope de evaluaciones de la función de costo")
		tolerance   = pflag.Float64("agreement", inventory.DefaultAgreementTolerance, "error relativo aceptado entre EOQ y búsqueda")
	)
	pflag.Parse()

	optimizer := inventory.NewOptimizer(*lowerBound, inventory.SearchOptions{XTolerance: *xtol, MaxEvaluations: *maxEvals})
	r := cli.NewReporter(os.Stdout, format.New(*locale), inventory.NewAnalyzer(optimizer, *tolerance))

	if !pflag.CommandLine.Changed("demand") {
		if err := r.Batch(cli.SampleSKUs, *capitalRate, *storageRate, *quantities); err != nil {
			os.Exit(1)
		}
		return
	}

	p, err := inventory.NewParameters(*demand, *unitCost, *orderCost, *capitalRate, *storageRate)
	if err == nil {
		err = r.SKU(*name, p)
	}
	if err == nil && pflag.CommandLine.Changed("compare") {
		err = r.Comparison(p, *quantities)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
