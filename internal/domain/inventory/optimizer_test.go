package inventory_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/replenishment-api/internal/domain"
	"github.com/jhoicas/replenishment-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// EconomicOrderQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestEOQ_SKUAConocido(t *testing.T) {
	q, err := inventory.EconomicOrderQuantity(12000, 150, 4.5)
	require.NoError(t, err)
	assert.InDelta(t, 894.43, q, 0.01)
}

// H = 0 se rechaza con error de dominio, nunca NaN ni Inf.
func TestEOQ_MantenerNuloEsErrorDeDominio(t *testing.T) {
	for _, h := range []float64{0, -1} {
		q, err := inventory.EconomicOrderQuantity(12000, 150, h)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDomain))
		assert.Zero(t, q)
	}
}

func TestEOQ_EntradasInvalidas(t *testing.T) {
	_, err := inventory.EconomicOrderQuantity(-1, 150, 4.5)
	assert.True(t, errors.Is(err, domain.ErrDomain))

	_, err = inventory.EconomicOrderQuantity(100, math.NaN(), 4.5)
	assert.True(t, errors.Is(err, domain.ErrDomain))

	q, err := inventory.EconomicOrderQuantity(0, 150, 4.5)
	require.NoError(t, err)
	assert.Zero(t, q)
}

// Duplicar S multiplica Q* por √2.
func TestEOQ_EscalaConRaizDeS(t *testing.T) {
	q1, err := inventory.EconomicOrderQuantity(12000, 150, 4.5)
	require.NoError(t, err)
	q2, err := inventory.EconomicOrderQuantity(12000, 300, 4.5)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, q2/q1, 1e-12)
}

// ──────────────────────────────────────────────────────────────────────────────
// Optimizer
// ──────────────────────────────────────────────────────────────────────────────

func newOptimizer() *inventory.Optimizer {
	return inventory.NewOptimizer(inventory.DefaultLowerBound, inventory.DefaultSearchOptions())
}

// La búsqueda numérica coincide con EOQ dentro de 0.1 %, con los costos balanceados.
func TestOptimizer_CoincideConEOQ(t *testing.T) {
	p := skuA(t)
	res, err := newOptimizer().Minimize(p)
	require.NoError(t, err)

	eoq, err := inventory.EconomicOrderQuantity(p.AnnualDemand, p.OrderCost, p.HoldingCostRate())
	require.NoError(t, err)

	assert.Equal(t, inventory.MethodNumericSearch, res.Method)
	assert.True(t, res.Converged())
	assert.InEpsilon(t, eoq, res.Quantity, 0.001)
	assert.InDelta(t, 894.4, res.Quantity, 0.1)
	assert.InDelta(t, 4024.9, res.TotalCost, 0.1)
	assert.LessOrEqual(t, res.Evaluations, inventory.DefaultSearchOptions().MaxEvaluations)

	ev := inventory.Evaluate(res.Quantity, p)
	assert.InDelta(t, 2012.5, ev.TransportCost, 0.1)
	assert.InDelta(t, 2012.5, ev.HoldingCost(), 0.1)
}

func TestOptimizer_EscenarioSKUB(t *testing.T) {
	p := skuB(t)
	assert.Equal(t, 12.0, p.HoldingCostRate())

	res, err := newOptimizer().Minimize(p)
	require.NoError(t, err)
	assert.InDelta(t, 408.2, res.Quantity, 0.1)
	assert.InDelta(t, 4898.98, res.TotalCost, 0.01)

	ev := inventory.Evaluate(res.Quantity, p)
	assert.InDelta(t, 12.25, ev.OrdersPerYear, 0.01)
	assert.InDelta(t, 29.8, ev.DaysOfSupply, 0.05)
}

// Escala con √S también en la búsqueda numérica.
func TestOptimizer_EscalaConRaizDeS(t *testing.T) {
	p := skuA(t)
	r1, err := newOptimizer().Minimize(p)
	require.NoError(t, err)
	r2, err := newOptimizer().Minimize(p.WithOrderCost(2 * p.OrderCost))
	require.NoError(t, err)
	assert.InEpsilon(t, math.Sqrt2, r2.Quantity/r1.Quantity, 0.002)
}

// Sin costo de mantener devuelve la cota superior, marcado como no convergido.
func TestOptimizer_MantenerNuloDevuelveCotaSuperior(t *testing.T) {
	p, err := inventory.NewParameters(12000, 25, 150, 0, 0)
	require.NoError(t, err)

	res, err := newOptimizer().Minimize(p)
	require.NoError(t, err)
	assert.Equal(t, inventory.StatusBoundary, res.Status)
	assert.False(t, res.Converged())
	assert.Equal(t, p.AnnualDemand, res.Quantity)
	assert.InDelta(t, 150.0, res.TotalCost, 1e-9) // un solo pedido al año
}

func TestOptimizer_SinCostoPorPedidoDevuelveCotaInferior(t *testing.T) {
	p, err := inventory.NewParameters(12000, 25, 0, 0.10, 2.0)
	require.NoError(t, err)

	res, err := newOptimizer().Minimize(p)
	require.NoError(t, err)
	assert.Equal(t, inventory.StatusBoundary, res.Status)
	assert.Equal(t, inventory.DefaultLowerBound, res.Quantity)
}

func TestOptimizer_DemandaNoSuperaCotaInferior(t *testing.T) {
	p, err := inventory.NewParameters(0.5, 25, 150, 0.10, 2.0)
	require.NoError(t, err)

	_, err = newOptimizer().Minimize(p)
	assert.True(t, errors.Is(err, domain.ErrDomain))
}

func TestOptimizer_ParametrosInvalidos(t *testing.T) {
	_, err := newOptimizer().Minimize(inventory.ReplenishmentParameters{AnnualDemand: -1, UnitCost: 1})
	assert.True(t, errors.Is(err, domain.ErrDomain))
}

func TestOptimizer_PresupuestoAgotado(t *testing.T) {
	opt := inventory.NewOptimizer(1, inventory.SearchOptions{XTolerance: 1e-12, MaxEvaluations: 6})
	res, err := opt.Minimize(skuA(t))
	require.NoError(t, err)
	assert.Equal(t, inventory.StatusMaxEvaluations, res.Status)
	assert.LessOrEqual(t, res.Evaluations, 6)
	assert.False(t, math.IsInf(res.TotalCost, 0))
}

func TestClosedForm(t *testing.T) {
	res, err := inventory.ClosedForm(skuB(t))
	require.NoError(t, err)
	assert.Equal(t, inventory.MethodClosedForm, res.Method)
	assert.InDelta(t, math.Sqrt(2*5000*200/12.0), res.Quantity, 1e-9)
	assert.InDelta(t, 4898.98, res.TotalCost, 0.01)
	assert.Zero(t, res.Evaluations)
}
