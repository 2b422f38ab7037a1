package inventory

import (
	"math"

	"github.com/jhoicas/replenishment-api/internal/domain"
)

// DaysPerYear base de conversión para días de cobertura.
const DaysPerYear = 365.0

// ReplenishmentParameters agrupa los parámetros de costo de un SKU (inmutable una vez construido).
type ReplenishmentParameters struct {
	AnnualDemand float64 // unidades/año, > 0
	UnitCost     float64 // costo de adquisición por unidad, > 0
	OrderCost    float64 // costo fijo por pedido (transporte), >= 0
	CapitalRate  float64 // tasa anual de costo de capital, [0,1)
	StorageRate  float64 // costo de almacenamiento por unidad por año, >= 0
}

// NewParameters valida y construye los parámetros.
// Un costo de mantener nulo (CapitalRate y StorageRate en cero) es válido aquí:
// el modelo degenera y quien analiza debe rechazarlo antes de estimar EOQ.
func NewParameters(annualDemand, unitCost, orderCost, capitalRate, storageRate float64) (ReplenishmentParameters, error) {
	p := ReplenishmentParameters{
		AnnualDemand: annualDemand,
		UnitCost:     unitCost,
		OrderCost:    orderCost,
		CapitalRate:  capitalRate,
		StorageRate:  storageRate,
	}
	if err := p.Validate(); err != nil {
		return ReplenishmentParameters{}, err
	}
	return p, nil
}

// Validate verifica los rangos de cada parámetro.
func (p ReplenishmentParameters) Validate() error {
	checks := []struct {
		field string
		value float64
		ok    bool
		msg   string
	}{
		{"annual_demand", p.AnnualDemand, p.AnnualDemand > 0, "la demanda anual debe ser positiva"},
		{"unit_cost", p.UnitCost, p.UnitCost > 0, "el costo unitario debe ser positivo"},
		{"order_cost", p.OrderCost, p.OrderCost >= 0, "el costo por pedido no puede ser negativo"},
		{"capital_rate", p.CapitalRate, p.CapitalRate >= 0 && p.CapitalRate < 1, "la tasa de capital debe estar en [0,1)"},
		{"storage_rate", p.StorageRate, p.StorageRate >= 0, "el costo de almacenamiento no puede ser negativo"},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return domain.NewDomainError(c.field, c.value, "valor no finito")
		}
		if !c.ok {
			return domain.NewDomainError(c.field, c.value, c.msg)
		}
	}
	return nil
}

// HoldingCostRate costo combinado de mantener una unidad un año: capital + almacenamiento.
func (p ReplenishmentParameters) HoldingCostRate() float64 {
	return p.UnitCost*p.CapitalRate + p.StorageRate
}

// WithOrderCost devuelve una copia con otro costo por pedido.
func (p ReplenishmentParameters) WithOrderCost(orderCost float64) ReplenishmentParameters {
	p.OrderCost = orderCost
	return p
}
