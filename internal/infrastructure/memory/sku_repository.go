// Package memory implementa los puertos de persistencia en memoria.
// Se usa con STORAGE_DRIVER=memory (demos, desarrollo local) y en los tests de casos de uso.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/replenishment-api/internal/domain"
	"github.com/jhoicas/replenishment-api/internal/domain/entity"
	"github.com/jhoicas/replenishment-api/internal/domain/repository"
)

var _ repository.SKURepository = (*SKURepository)(nil)

// SKURepository catálogo de SKUs en memoria, seguro para uso concurrente.
type SKURepository struct {
	mu   sync.RWMutex
	byID map[string]entity.SKU
}

// NewSKURepository crea el repositorio vacío.
func NewSKURepository() *SKURepository {
	return &SKURepository{byID: make(map[string]entity.SKU)}
}

// Create guarda una copia del SKU. Código repetido en la empresa → ErrDuplicate.
func (r *SKURepository) Create(_ context.Context, sku *entity.SKU) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.byID {
		if s.CompanyID == sku.CompanyID && s.Code == sku.Code {
			return domain.ErrDuplicate
		}
	}
	r.byID[sku.ID] = *sku
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *SKURepository) GetByID(_ context.Context, id string) (*entity.SKU, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// GetByCompanyAndCode devuelve (nil, nil) si no existe.
func (r *SKURepository) GetByCompanyAndCode(_ context.Context, companyID, code string) (*entity.SKU, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.byID {
		if s.CompanyID == companyID && s.Code == code {
			return &s, nil
		}
	}
	return nil, nil
}

// Update reemplaza el SKU; si no existe no hace nada (igual que el adaptador SQL).
func (r *SKURepository) Update(_ context.Context, sku *entity.SKU) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[sku.ID]; ok {
		r.byID[sku.ID] = *sku
	}
	return nil
}

// ListByCompany ordena por fecha de creación descendente, como el adaptador SQL.
func (r *SKURepository) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.SKU, error) {
	r.mu.RLock()
	all := make([]entity.SKU, 0, len(r.byID))
	for _, s := range r.byID {
		if s.CompanyID == companyID {
			all = append(all, s)
		}
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].Code < all[j].Code
	})
	if offset >= len(all) {
		return []*entity.SKU{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	out := make([]*entity.SKU, 0, end-offset)
	for i := offset; i < end; i++ {
		s := all[i]
		out = append(out, &s)
	}
	return out, nil
}

// CountByCompany total de SKUs de la empresa.
func (r *SKURepository) CountByCompany(_ context.Context, companyID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, s := range r.byID {
		if s.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

// Delete elimina por ID.
func (r *SKURepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}
