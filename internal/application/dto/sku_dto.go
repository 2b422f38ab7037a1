package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSKURequest body para POST /api/skus.
type CreateSKURequest struct {
	Code         string           `json:"code" validate:"required"`
	Name         string           `json:"name" validate:"required"`
	AnnualDemand decimal.Decimal  `json:"annual_demand"`
	UnitCost     decimal.Decimal  `json:"unit_cost"`
	OrderCost    decimal.Decimal  `json:"order_cost"`
	CapitalRate  *decimal.Decimal `json:"capital_rate,omitempty"`
	StorageRate  *decimal.Decimal `json:"storage_rate,omitempty"`
}

// UpdateSKURequest body para PUT /api/skus/:id (campos opcionales).
type UpdateSKURequest struct {
	Name         *string          `json:"name,omitempty"`
	AnnualDemand *decimal.Decimal `json:"annual_demand,omitempty"`
	UnitCost     *decimal.Decimal `json:"unit_cost,omitempty"`
	OrderCost    *decimal.Decimal `json:"order_cost,omitempty"`
	CapitalRate  *decimal.Decimal `json:"capital_rate,omitempty"`
	StorageRate  *decimal.Decimal `json:"storage_rate,omitempty"`
}

// SKUResponse salida de un SKU del catálogo.
type SKUResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	AnnualDemand decimal.Decimal `json:"annual_demand"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	OrderCost    decimal.Decimal `json:"order_cost"`
	CapitalRate  decimal.Decimal `json:"capital_rate"`
	StorageRate  decimal.Decimal `json:"storage_rate"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// SKUListResponse listado paginado.
type SKUListResponse struct {
	Items []SKUResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
