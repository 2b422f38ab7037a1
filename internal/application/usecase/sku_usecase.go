package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/replenishment-api/internal/application/dto"
	"github.com/jhoicas/replenishment-api/internal/application/replenishment"
	"github.com/jhoicas/replenishment-api/internal/domain"
	"github.com/jhoicas/replenishment-api/internal/domain/entity"
	"github.com/jhoicas/replenishment-api/internal/domain/repository"
)

// SKUUseCase casos de uso CRUD del catálogo de SKUs. Los parámetros se validan
// con las mismas reglas del modelo de costos antes de persistir.
type SKUUseCase struct {
	repo     repository.SKURepository
	defaults replenishment.Defaults
}

// NewSKUUseCase construye el caso de uso.
func NewSKUUseCase(repo repository.SKURepository, defaults replenishment.Defaults) *SKUUseCase {
	return &SKUUseCase{repo: repo, defaults: defaults}
}

// Create registra un SKU. Código duplicado en la empresa → ErrDuplicate.
func (uc *SKUUseCase) Create(ctx context.Context, companyID string, in dto.CreateSKURequest) (*dto.SKUResponse, error) {
	in.Code = strings.TrimSpace(in.Code)
	in.Name = strings.TrimSpace(in.Name)
	if in.Code == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: code y name son requeridos", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByCompanyAndCode(ctx, companyID, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	capital := decimal.NewFromFloat(uc.defaults.CapitalRate)
	if in.CapitalRate != nil {
		capital = *in.CapitalRate
	}
	storage := decimal.NewFromFloat(uc.defaults.StorageRate)
	if in.StorageRate != nil {
		storage = *in.StorageRate
	}
	now := time.Now()
	sku := &entity.SKU{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Code:         in.Code,
		Name:         in.Name,
		AnnualDemand: in.AnnualDemand,
		UnitCost:     in.UnitCost,
		OrderCost:    in.OrderCost,
		CapitalRate:  capital,
		StorageRate:  storage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := replenishment.ParamsFromSKU(sku); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, sku); err != nil {
		return nil, err
	}
	return toSKUResponse(sku), nil
}

// GetByID obtiene un SKU verificando que pertenezca a la empresa.
func (uc *SKUUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.SKUResponse, error) {
	sku, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toSKUResponse(sku), nil
}

// Update actualiza los campos presentes y revalida los parámetros resultantes.
func (uc *SKUUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateSKURequest) (*dto.SKUResponse, error) {
	sku, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		sku.Name = strings.TrimSpace(*in.Name)
	}
	if in.AnnualDemand != nil {
		sku.AnnualDemand = *in.AnnualDemand
	}
	if in.UnitCost != nil {
		sku.UnitCost = *in.UnitCost
	}
	if in.OrderCost != nil {
		sku.OrderCost = *in.OrderCost
	}
	if in.CapitalRate != nil {
		sku.CapitalRate = *in.CapitalRate
	}
	if in.StorageRate != nil {
		sku.StorageRate = *in.StorageRate
	}
	if _, err := replenishment.ParamsFromSKU(sku); err != nil {
		return nil, err
	}
	sku.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, sku); err != nil {
		return nil, err
	}
	return toSKUResponse(sku), nil
}

// List lista SKUs por empresa con paginación.
func (uc *SKUUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.SKUListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SKUResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSKUResponse(s))
	}
	return &dto.SKUListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Delete elimina un SKU de la empresa.
func (uc *SKUUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uc.get(ctx, companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// get resuelve un SKU de la empresa. ID mal formado o de otra empresa → ErrNotFound.
func (uc *SKUUseCase) get(ctx context.Context, companyID, id string) (*entity.SKU, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	sku, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sku == nil || sku.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return sku, nil
}

func toSKUResponse(s *entity.SKU) *dto.SKUResponse {
	return &dto.SKUResponse{
		ID:           s.ID,
		CompanyID:    s.CompanyID,
		Code:         s.Code,
		Name:         s.Name,
		AnnualDemand: s.AnnualDemand,
		UnitCost:     s.UnitCost,
		OrderCost:    s.OrderCost,
		CapitalRate:  s.CapitalRate,
		StorageRate:  s.StorageRate,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
