package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReplenishmentParamsRequest parámetros de costo de un SKU tal como llegan por HTTP.
// CapitalRate y StorageRate son opcionales: si faltan se aplican los defaults de configuración.
type ReplenishmentParamsRequest struct {
	Name         string           `json:"name"`
	AnnualDemand decimal.Decimal  `json:"annual_demand"`
	UnitCost     decimal.Decimal  `json:"unit_cost"`
	OrderCost    decimal.Decimal  `json:"order_cost"`
	CapitalRate  *decimal.Decimal `json:"capital_rate,omitempty"`
	StorageRate  *decimal.Decimal `json:"storage_rate,omitempty"`
}

// CompareRequest body para POST /api/replenishment/compare.
// Quantities vacío usa la lista ilustrativa por defecto (50, 100, 200, 500, 1000, 2000).
type CompareRequest struct {
	ReplenishmentParamsRequest
	Quantities []decimal.Decimal `json:"quantities,omitempty"`
}

// PortfolioRequest body para POST /api/replenishment/portfolio.
type PortfolioRequest struct {
	Items []ReplenishmentParamsRequest `json:"items"`
}

// ParametersDTO parámetros efectivamente usados en el cálculo.
type ParametersDTO struct {
	AnnualDemand decimal.Decimal `json:"annual_demand"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	OrderCost    decimal.Decimal `json:"order_cost"`
	CapitalRate  decimal.Decimal `json:"capital_rate"`
	StorageRate  decimal.Decimal `json:"storage_rate"`
}

// OptimizationResultDTO resultado de uno de los dos métodos.
type OptimizationResultDTO struct {
	Method      string          `json:"method"`       // closed_form | numeric_search
	Quantity    decimal.Decimal `json:"quantity"`     // unidades, 4 decimales
	TotalCost   decimal.Decimal `json:"total_cost"`   // costo anual, 2 decimales
	Status      string          `json:"status"`       // converged | boundary | max_evaluations
	Converged   bool            `json:"converged"`
	Evaluations int             `json:"evaluations"`
}

// CostEvaluationDTO costo y diagnósticos para una cantidad.
// TotalCost es null cuando la cantidad no es positiva (costo infinito).
type CostEvaluationDTO struct {
	Quantity         decimal.Decimal  `json:"quantity"`
	TotalCost        *decimal.Decimal `json:"total_cost"`
	TransportCost    decimal.Decimal  `json:"transport_cost"`
	CapitalCost      decimal.Decimal  `json:"capital_cost"`
	StorageCost      decimal.Decimal  `json:"storage_cost"`
	OrdersPerYear    decimal.Decimal  `json:"orders_per_year"`
	AverageInventory decimal.Decimal  `json:"average_inventory"`
	DaysOfSupply     decimal.Decimal  `json:"days_of_supply"`
}

// SKUAnalysisResponse análisis completo de un SKU.
type SKUAnalysisResponse struct {
	SKUID              string                `json:"sku_id,omitempty"`
	RunID              string                `json:"run_id,omitempty"`
	Name               string                `json:"name"`
	Parameters         ParametersDTO         `json:"parameters"`
	HoldingCostRate    decimal.Decimal       `json:"holding_cost_rate"`
	ClosedForm         OptimizationResultDTO `json:"closed_form"`
	Numeric            OptimizationResultDTO `json:"numeric"`
	RelativeDifference decimal.Decimal       `json:"relative_difference"`
	Agrees             bool                  `json:"agrees"`
	Diagnostics        CostEvaluationDTO     `json:"diagnostics"` // en el óptimo numérico
}

// ComparisonResponse tabla de costos para cantidades candidatas.
type ComparisonResponse struct {
	Name string              `json:"name"`
	Rows []CostEvaluationDTO `json:"rows"`
}

// PortfolioItemDTO resultado por SKU; exactamente uno de Analysis o Error está presente.
type PortfolioItemDTO struct {
	Index    int                  `json:"index"`
	Name     string               `json:"name"`
	Analysis *SKUAnalysisResponse `json:"analysis,omitempty"`
	Error    *ErrorResponse       `json:"error,omitempty"`
}

// PortfolioResponse resultados en el mismo orden de la petición.
type PortfolioResponse struct {
	Total     int                `json:"total"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
	Items     []PortfolioItemDTO `json:"items"`
}

// AnalysisRunDTO corrida persistida del histórico.
type AnalysisRunDTO struct {
	ID              string          `json:"id"`
	SKUID           string          `json:"sku_id"`
	AnnualDemand    decimal.Decimal `json:"annual_demand"`
	OrderCost       decimal.Decimal `json:"order_cost"`
	HoldingCostRate decimal.Decimal `json:"holding_cost_rate"`
	EOQ             decimal.Decimal `json:"eoq"`
	OptimalQuantity decimal.Decimal `json:"optimal_quantity"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	Status          string          `json:"status"`
	Evaluations     int             `json:"evaluations"`
	Agrees          bool            `json:"agrees"`
	CreatedBy       string          `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
}
