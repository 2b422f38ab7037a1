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

// skuA: D=12000, costo 25, S=150, capital 10 %, almacenamiento 2 → H = 2.5 + 2.0 = 4.5
func skuA(t *testing.T) inventory.ReplenishmentParameters {
	t.Helper()
	p, err := inventory.NewParameters(12000, 25, 150, 0.10, 2.0)
	require.NoError(t, err)
	return p
}

// skuB: D=5000, costo 100, S=200, capital 10 %, almacenamiento 2 → H = 12
func skuB(t *testing.T) inventory.ReplenishmentParameters {
	t.Helper()
	p, err := inventory.NewParameters(5000, 100, 200, 0.10, 2.0)
	require.NoError(t, err)
	return p
}

func TestNewParameters_Validaciones(t *testing.T) {
	cases := []struct {
		name  string
		args  [5]float64
		field string
	}{
		{"demanda cero", [5]float64{0, 25, 150, 0.1, 2}, "annual_demand"},
		{"demanda negativa", [5]float64{-10, 25, 150, 0.1, 2}, "annual_demand"},
		{"costo unitario cero", [5]float64{100, 0, 150, 0.1, 2}, "unit_cost"},
		{"costo por pedido negativo", [5]float64{100, 25, -1, 0.1, 2}, "order_cost"},
		{"tasa de capital igual a 1", [5]float64{100, 25, 150, 1, 2}, "capital_rate"},
		{"tasa de capital negativa", [5]float64{100, 25, 150, -0.01, 2}, "capital_rate"},
		{"almacenamiento negativo", [5]float64{100, 25, 150, 0.1, -2}, "storage_rate"},
		{"demanda NaN", [5]float64{math.NaN(), 25, 150, 0.1, 2}, "annual_demand"},
		{"almacenamiento infinito", [5]float64{100, 25, 150, 0.1, math.Inf(1)}, "storage_rate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := inventory.NewParameters(tc.args[0], tc.args[1], tc.args[2], tc.args[3], tc.args[4])
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrDomain))

			var de *domain.DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.field, de.Field)
		})
	}
}

func TestNewParameters_MantenerNuloEsValido(t *testing.T) {
	p, err := inventory.NewParameters(1000, 10, 50, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.HoldingCostRate())
}

// Q <= 0 es +Inf, nunca un error ni una división por cero.
func TestTotalCost_CantidadNoPositivaEsInfinita(t *testing.T) {
	p := skuA(t)
	assert.True(t, math.IsInf(inventory.TotalCost(0, p), 1))
	assert.True(t, math.IsInf(inventory.TotalCost(-5, p), 1))

	ev := inventory.Evaluate(0, p)
	assert.True(t, math.IsInf(ev.TotalCost, 1))
	assert.Zero(t, ev.OrdersPerYear)
}

func TestTotalCost_Desglose(t *testing.T) {
	p := skuA(t)
	// Q=1000: 12 pedidos × 150 = 1800; inventario medio 500 × (2.5 + 2.0) = 2250
	assert.InDelta(t, 4050.0, inventory.TotalCost(1000, p), 1e-9)

	ev := inventory.Evaluate(1000, p)
	assert.InDelta(t, 12.0, ev.OrdersPerYear, 1e-12)
	assert.InDelta(t, 1800.0, ev.TransportCost, 1e-9)
	assert.InDelta(t, 1250.0, ev.CapitalCost, 1e-9)
	assert.InDelta(t, 1000.0, ev.StorageCost, 1e-9)
	assert.InDelta(t, 2250.0, ev.HoldingCost(), 1e-9)
	assert.InDelta(t, 500.0, ev.AverageInventory, 1e-12)
	assert.InDelta(t, 1000.0/12000.0*365, ev.DaysOfSupply, 1e-9)
	assert.InDelta(t, inventory.TotalCost(1000, p), ev.TotalCost, 1e-9)
}

// Estrictamente decreciente y luego estrictamente creciente, con un único mínimo.
func TestTotalCost_Convexidad(t *testing.T) {
	p := skuA(t)
	eoq := math.Sqrt(2 * p.AnnualDemand * p.OrderCost / p.HoldingCostRate())

	prev := inventory.TotalCost(1, p)
	for q := 2.0; q < eoq-1; q++ {
		c := inventory.TotalCost(q, p)
		require.Less(t, c, prev, "debe decrecer antes del óptimo (q=%v)", q)
		prev = c
	}
	prev = inventory.TotalCost(math.Ceil(eoq)+1, p)
	for q := math.Ceil(eoq) + 2; q < 5000; q += 7 {
		c := inventory.TotalCost(q, p)
		require.Greater(t, c, prev, "debe crecer después del óptimo (q=%v)", q)
		prev = c
	}

	// Ningún punto de la malla mejora el mínimo analítico.
	best := inventory.TotalCost(eoq, p)
	for q := 1.0; q <= p.AnnualDemand; q += 0.5 {
		require.GreaterOrEqual(t, inventory.TotalCost(q, p), best-1e-9)
	}
}

func TestCostFunc_ImplementaCostModel(t *testing.T) {
	var m inventory.CostModel = inventory.CostFunc(func(q float64) float64 { return (q - 3) * (q - 3) })
	assert.Equal(t, 0.0, m.TotalCost(3))

	std := inventory.NewStandardCostModel(skuA(t))
	assert.Equal(t, inventory.TotalCost(700, skuA(t)), std.TotalCost(700))
}
