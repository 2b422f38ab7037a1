package inventory

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/jhoicas/replenishment-api/internal/domain"
)

// DefaultAgreementTolerance error relativo máximo aceptado entre EOQ y la búsqueda numérica.
const DefaultAgreementTolerance = 0.001

// SkuAnalysis resultado completo para un SKU: ambos métodos, su contraste y diagnósticos.
type SkuAnalysis struct {
	Name               string
	Params             ReplenishmentParameters
	HoldingCostRate    float64
	ClosedForm         OptimizationResult
	Numeric            OptimizationResult
	RelativeDifference float64 // |Q_num - Q_eoq| / Q_eoq
	Agrees             bool
	AtOptimum          CostEvaluation // diagnósticos en el óptimo numérico
	AtEOQ              CostEvaluation
}

// Analyzer compone el estimador cerrado y el optimizador numérico para un SKU.
type Analyzer struct {
	optimizer          *Optimizer
	agreementTolerance float64
}

// NewAnalyzer construye el analizador. tolerance <= 0 usa DefaultAgreementTolerance.
func NewAnalyzer(optimizer *Optimizer, tolerance float64) *Analyzer {
	if optimizer == nil {
		optimizer = NewOptimizer(DefaultLowerBound, DefaultSearchOptions())
	}
	if tolerance <= 0 {
		tolerance = DefaultAgreementTolerance
	}
	return &Analyzer{optimizer: optimizer, agreementTolerance: tolerance}
}

// Analyze rechaza SKUs degenerados antes de estimar y luego calcula EOQ, búsqueda numérica y diagnósticos.
// name solo acompaña al resultado para reportes.
func (a *Analyzer) Analyze(name string, p ReplenishmentParameters) (SkuAnalysis, error) {
	if err := p.Validate(); err != nil {
		return SkuAnalysis{}, err
	}
	h := p.HoldingCostRate()
	if h <= 0 {
		return SkuAnalysis{}, domain.NewDomainError("holding_cost_rate", h,
			"capital y almacenamiento en cero: el costo decrece sin límite con Q")
	}
	if p.OrderCost <= 0 {
		return SkuAnalysis{}, domain.NewDomainError("order_cost", p.OrderCost,
			"sin costo por pedido el óptimo tiende a Q=0")
	}

	closed, err := ClosedForm(p)
	if err != nil {
		return SkuAnalysis{}, err
	}
	numeric, err := a.optimizer.Minimize(p)
	if err != nil {
		return SkuAnalysis{}, err
	}

	return SkuAnalysis{
		Name:               name,
		Params:             p,
		HoldingCostRate:    h,
		ClosedForm:         closed,
		Numeric:            numeric,
		RelativeDifference: math.Abs(numeric.Quantity-closed.Quantity) / closed.Quantity,
		Agrees:             scalar.EqualWithinRel(numeric.Quantity, closed.Quantity, a.agreementTolerance),
		AtOptimum:          Evaluate(numeric.Quantity, p),
		AtEOQ:              Evaluate(closed.Quantity, p),
	}, nil
}

// DefaultComparisonQuantities cantidades ilustrativas cuando no se indican otras.
var DefaultComparisonQuantities = []float64{50, 100, 200, 500, 1000, 2000}

// Compare evalúa una secuencia explícita de cantidades candidatas, en el mismo orden.
// No optimiza: sirve para tabular cómo cambia el costo alrededor del óptimo.
func Compare(p ReplenishmentParameters, quantities []float64) ([]CostEvaluation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(quantities) == 0 {
		quantities = DefaultComparisonQuantities
	}
	out := make([]CostEvaluation, 0, len(quantities))
	for _, q := range quantities {
		out = append(out, Evaluate(q, p))
	}
	return out, nil
}
