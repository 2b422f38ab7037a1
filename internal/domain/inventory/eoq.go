package inventory

import (
	"math"

	"github.com/jhoicas/replenishment-api/internal/domain"
)

// EconomicOrderQuantity fórmula clásica Q* = sqrt(2·D·S / H).
// H es el costo combinado de mantener (capital + almacenamiento); el estimador no conoce la separación.
// Es el minimizador analítico de TotalCost y sirve de oráculo para la búsqueda numérica.
func EconomicOrderQuantity(annualDemand, orderCost, holdingCostRate float64) (float64, error) {
	for _, v := range []struct {
		field string
		value float64
	}{
		{"annual_demand", annualDemand},
		{"order_cost", orderCost},
		{"holding_cost_rate", holdingCostRate},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return 0, domain.NewDomainError(v.field, v.value, "valor no finito")
		}
	}
	if holdingCostRate <= 0 {
		return 0, domain.NewDomainError("holding_cost_rate", holdingCostRate,
			"costo de mantener nulo o negativo: el óptimo no está acotado")
	}
	if annualDemand < 0 {
		return 0, domain.NewDomainError("annual_demand", annualDemand, "la demanda anual no puede ser negativa")
	}
	if orderCost < 0 {
		return 0, domain.NewDomainError("order_cost", orderCost, "el costo por pedido no puede ser negativo")
	}
	return math.Sqrt(2 * annualDemand * orderCost / holdingCostRate), nil
}
