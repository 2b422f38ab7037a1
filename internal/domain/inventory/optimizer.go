package inventory

import (
	"github.com/jhoicas/replenishment-api/internal/domain"
)

// Method identifica qué procedimiento produjo un OptimizationResult.
type Method string

const (
	MethodClosedForm    Method = "closed_form"
	MethodNumericSearch Method = "numeric_search"
)

// OptimizationResult cantidad óptima y su costo, etiquetada con el método que la produjo.
type OptimizationResult struct {
	Quantity    float64
	TotalCost   float64
	Method      Method
	Status      SearchStatus
	Evaluations int
}

// Converged atajo sobre Status.
func (r OptimizationResult) Converged() bool { return r.Status.Converged() }

// DefaultLowerBound cota inferior de búsqueda: en 0 el costo es infinito.
const DefaultLowerBound = 1.0

// Optimizer busca la cantidad que minimiza un CostModel en [LowerBound, demanda anual].
// No guarda estado entre llamadas; es seguro compartirlo entre goroutines.
type Optimizer struct {
	LowerBound float64
	Options    SearchOptions
}

// NewOptimizer construye el optimizador; valores no positivos toman los defaults.
func NewOptimizer(lowerBound float64, opts SearchOptions) *Optimizer {
	if lowerBound <= 0 {
		lowerBound = DefaultLowerBound
	}
	def := DefaultSearchOptions()
	if opts.XTolerance <= 0 {
		opts.XTolerance = def.XTolerance
	}
	if opts.MaxEvaluations <= 0 {
		opts.MaxEvaluations = def.MaxEvaluations
	}
	return &Optimizer{LowerBound: lowerBound, Options: opts}
}

// Minimize optimiza el modelo estándar de un SKU.
// Con costo de mantener nulo no falla: devuelve la cota superior con StatusBoundary.
func (o *Optimizer) Minimize(p ReplenishmentParameters) (OptimizationResult, error) {
	if err := p.Validate(); err != nil {
		return OptimizationResult{}, err
	}
	return o.MinimizeModel(NewStandardCostModel(p), p.AnnualDemand)
}

// MinimizeModel minimiza cualquier CostModel en [LowerBound, upper].
func (o *Optimizer) MinimizeModel(model CostModel, upper float64) (OptimizationResult, error) {
	if upper <= o.LowerBound {
		return OptimizationResult{}, domain.NewDomainError("annual_demand", upper,
			"la demanda anual no supera la cota inferior de búsqueda")
	}
	res, err := MinimizeBounded(model.TotalCost, o.LowerBound, upper, o.Options)
	if err != nil {
		return OptimizationResult{}, err
	}
	return OptimizationResult{
		Quantity:    res.X,
		TotalCost:   res.Fx,
		Method:      MethodNumericSearch,
		Status:      res.Status,
		Evaluations: res.Evaluations,
	}, nil
}

// ClosedForm resultado EOQ analítico para los parámetros, con su costo.
func ClosedForm(p ReplenishmentParameters) (OptimizationResult, error) {
	q, err := EconomicOrderQuantity(p.AnnualDemand, p.OrderCost, p.HoldingCostRate())
	if err != nil {
		return OptimizationResult{}, err
	}
	return OptimizationResult{
		Quantity:  q,
		TotalCost: TotalCost(q, p),
		Method:    MethodClosedForm,
		Status:    StatusConverged,
	}, nil
}
