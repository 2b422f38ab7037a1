package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalysisRun instantánea persistida de un análisis de reposición sobre un SKU del catálogo.
// Guarda los parámetros usados para que el histórico siga siendo legible si el SKU cambia.
type AnalysisRun struct {
	ID              string
	CompanyID       string
	SKUID           string
	AnnualDemand    decimal.Decimal
	OrderCost       decimal.Decimal
	HoldingCostRate decimal.Decimal
	EOQ             decimal.Decimal
	OptimalQuantity decimal.Decimal
	TotalCost       decimal.Decimal
	Status          string // converged, boundary, max_evaluations
	Evaluations     int
	Agrees          bool
	CreatedBy       string
	CreatedAt       time.Time
}
