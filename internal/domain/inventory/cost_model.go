package inventory

import "math"

// CostModel es cualquier función de costo anual sobre la cantidad de pedido.
// El optimizador solo conoce esta interfaz, así que otras formas de costo
// (sin mínimo en forma cerrada) pueden enchufarse sin cambiarlo.
type CostModel interface {
	TotalCost(q float64) float64
}

// CostFunc adapta una función simple a CostModel.
type CostFunc func(q float64) float64

// TotalCost implementa CostModel.
func (f CostFunc) TotalCost(q float64) float64 { return f(q) }

// StandardCostModel modelo transporte + capital + almacenamiento con revisión continua
// (el inventario cae linealmente de Q a 0 entre pedidos).
type StandardCostModel struct {
	Params ReplenishmentParameters
}

// NewStandardCostModel ata el modelo a los parámetros de un SKU.
func NewStandardCostModel(p ReplenishmentParameters) StandardCostModel {
	return StandardCostModel{Params: p}
}

// TotalCost implementa CostModel.
func (m StandardCostModel) TotalCost(q float64) float64 {
	return TotalCost(q, m.Params)
}

// TotalCost costo anual total para una cantidad de pedido q.
// q <= 0 devuelve +Inf: nunca se divide por q y cualquier minimizador lo descarta solo.
func TotalCost(q float64, p ReplenishmentParameters) float64 {
	if q <= 0 {
		return math.Inf(1)
	}
	ordersPerYear := p.AnnualDemand / q
	averageInventory := q / 2
	transport := ordersPerYear * p.OrderCost
	capital := averageInventory * p.UnitCost * p.CapitalRate
	storage := averageInventory * p.StorageRate
	return transport + capital + storage
}

// CostEvaluation costo y diagnósticos para una cantidad concreta. Valor derivado, no se persiste.
type CostEvaluation struct {
	Quantity         float64
	TotalCost        float64
	TransportCost    float64
	CapitalCost      float64
	StorageCost      float64
	OrdersPerYear    float64
	AverageInventory float64
	DaysOfSupply     float64
}

// HoldingCost suma capital + almacenamiento.
func (e CostEvaluation) HoldingCost() float64 {
	return e.CapitalCost + e.StorageCost
}

// Evaluate desglosa el costo en q. Para q <= 0 el total es +Inf y los diagnósticos quedan en cero.
func Evaluate(q float64, p ReplenishmentParameters) CostEvaluation {
	if q <= 0 {
		return CostEvaluation{Quantity: q, TotalCost: math.Inf(1)}
	}
	averageInventory := q / 2
	ev := CostEvaluation{
		Quantity:         q,
		OrdersPerYear:    p.AnnualDemand / q,
		AverageInventory: averageInventory,
		CapitalCost:      averageInventory * p.UnitCost * p.CapitalRate,
		StorageCost:      averageInventory * p.StorageRate,
		DaysOfSupply:     q / p.AnnualDemand * DaysPerYear,
	}
	ev.TransportCost = ev.OrdersPerYear * p.OrderCost
	ev.TotalCost = ev.TransportCost + ev.CapitalCost + ev.StorageCost
	return ev
}
