package replenishment

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/replenishment-api/internal/application/dto"
	"github.com/jhoicas/replenishment-api/internal/domain/entity"
	"github.com/jhoicas/replenishment-api/internal/domain/inventory"
)

// Defaults tasas aplicadas cuando la petición no las trae.
type Defaults struct {
	CapitalRate float64
	StorageRate float64
}

// ParamsFromRequest convierte la petición HTTP en parámetros validados del modelo.
func ParamsFromRequest(in dto.ReplenishmentParamsRequest, def Defaults) (inventory.ReplenishmentParameters, error) {
	capital := def.CapitalRate
	if in.CapitalRate != nil {
		capital = in.CapitalRate.InexactFloat64()
	}
	storage := def.StorageRate
	if in.StorageRate != nil {
		storage = in.StorageRate.InexactFloat64()
	}
	return inventory.NewParameters(
		in.AnnualDemand.InexactFloat64(),
		in.UnitCost.InexactFloat64(),
		in.OrderCost.InexactFloat64(),
		capital,
		storage,
	)
}

// ParamsFromSKU convierte un SKU del catálogo en parámetros del modelo.
func ParamsFromSKU(s *entity.SKU) (inventory.ReplenishmentParameters, error) {
	return inventory.NewParameters(
		s.AnnualDemand.InexactFloat64(),
		s.UnitCost.InexactFloat64(),
		s.OrderCost.InexactFloat64(),
		s.CapitalRate.InexactFloat64(),
		s.StorageRate.InexactFloat64(),
	)
}

// decimalOf redondea v; valores no finitos se reportan como cero (decimal no representa Inf ni NaN).
func decimalOf(v float64, places int32) decimal.Decimal {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(places)
}

func decimalPtrOf(v float64, places int32) *decimal.Decimal {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	d := decimal.NewFromFloat(v).Round(places)
	return &d
}

func toParametersDTO(p inventory.ReplenishmentParameters) dto.ParametersDTO {
	return dto.ParametersDTO{
		AnnualDemand: decimalOf(p.AnnualDemand, 4),
		UnitCost:     decimalOf(p.UnitCost, 4),
		OrderCost:    decimalOf(p.OrderCost, 4),
		CapitalRate:  decimalOf(p.CapitalRate, 6),
		StorageRate:  decimalOf(p.StorageRate, 4),
	}
}

func toResultDTO(r inventory.OptimizationResult) dto.OptimizationResultDTO {
	return dto.OptimizationResultDTO{
		Method:      string(r.Method),
		Quantity:    decimalOf(r.Quantity, 4),
		TotalCost:   decimalOf(r.TotalCost, 2),
		Status:      string(r.Status),
		Converged:   r.Converged(),
		Evaluations: r.Evaluations,
	}
}

// ToCostEvaluationDTO convierte una evaluación; el total queda en null si es infinito.
func ToCostEvaluationDTO(e inventory.CostEvaluation) dto.CostEvaluationDTO {
	return dto.CostEvaluationDTO{
		Quantity:         decimalOf(e.Quantity, 4),
		TotalCost:        decimalPtrOf(e.TotalCost, 2),
		TransportCost:    decimalOf(e.TransportCost, 2),
		CapitalCost:      decimalOf(e.CapitalCost, 2),
		StorageCost:      decimalOf(e.StorageCost, 2),
		OrdersPerYear:    decimalOf(e.OrdersPerYear, 2),
		AverageInventory: decimalOf(e.AverageInventory, 2),
		DaysOfSupply:     decimalOf(e.DaysOfSupply, 1),
	}
}

// ToAnalysisResponse convierte el análisis de dominio en la respuesta HTTP.
func ToAnalysisResponse(a inventory.SkuAnalysis) *dto.SKUAnalysisResponse {
	return &dto.SKUAnalysisResponse{
		Name:               a.Name,
		Parameters:         toParametersDTO(a.Params),
		HoldingCostRate:    decimalOf(a.HoldingCostRate, 4),
		ClosedForm:         toResultDTO(a.ClosedForm),
		Numeric:            toResultDTO(a.Numeric),
		RelativeDifference: decimalOf(a.RelativeDifference, 8),
		Agrees:             a.Agrees,
		Diagnostics:        ToCostEvaluationDTO(a.AtOptimum),
	}
}

func toRunDTO(r *entity.AnalysisRun) dto.AnalysisRunDTO {
	return dto.AnalysisRunDTO{
		ID:              r.ID,
		SKUID:           r.SKUID,
		AnnualDemand:    r.AnnualDemand,
		OrderCost:       r.OrderCost,
		HoldingCostRate: r.HoldingCostRate,
		EOQ:             r.EOQ,
		OptimalQuantity: r.OptimalQuantity,
		TotalCost:       r.TotalCost,
		Status:          r.Status,
		Evaluations:     r.Evaluations,
		Agrees:          r.Agrees,
		CreatedBy:       r.CreatedBy,
		CreatedAt:       r.CreatedAt,
	}
}
