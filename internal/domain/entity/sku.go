package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SKU ítem del catálogo con los parámetros de costo que alimentan el análisis de reposición.
// Los montos viajan como decimal hasta el borde del dominio; el optimizador trabaja en float64.
type SKU struct {
	ID           string
	CompanyID    string
	Code         string // código único por empresa
	Name         string
	AnnualDemand decimal.Decimal // unidades/año
	UnitCost     decimal.Decimal // costo de adquisición por unidad
	OrderCost    decimal.Decimal // costo fijo por pedido (transporte)
	CapitalRate  decimal.Decimal // fracción anual, ej. 0.10
	StorageRate  decimal.Decimal // costo de almacenamiento por unidad por año
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
