package repository

import (
	"context"

	"github.com/jhoicas/replenishment-api/internal/domain/entity"
)

// SKURepository define el puerto de persistencia para el catálogo de SKUs (DIP).
// GetByID y GetByCompanyAndCode devuelven (nil, nil) si no existe.
type SKURepository interface {
	Create(ctx context.Context, sku *entity.SKU) error
	GetByID(ctx context.Context, id string) (*entity.SKU, error)
	GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.SKU, error)
	Update(ctx context.Context, sku *entity.SKU) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.SKU, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	Delete(ctx context.Context, id string) error
}
