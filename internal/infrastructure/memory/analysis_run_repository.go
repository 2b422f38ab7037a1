package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/replenishment-api/internal/domain/entity"
	"github.com/jhoicas/replenishment-api/internal/domain/repository"
)

var _ repository.AnalysisRunRepository = (*AnalysisRunRepository)(nil)

// AnalysisRunRepository histórico de corridas en memoria.
type AnalysisRunRepository struct {
	mu   sync.RWMutex
	runs []entity.AnalysisRun
}

// NewAnalysisRunRepository crea el repositorio vacío.
func NewAnalysisRunRepository() *AnalysisRunRepository {
	return &AnalysisRunRepository{}
}

// Create agrega la corrida al final.
func (r *AnalysisRunRepository) Create(_ context.Context, run *entity.AnalysisRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, *run)
	return nil
}

// ListBySKU recorre de la más nueva a la más vieja.
func (r *AnalysisRunRepository) ListBySKU(_ context.Context, skuID string, limit int) ([]*entity.AnalysisRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.AnalysisRun, 0)
	for i := len(r.runs) - 1; i >= 0 && len(out) < limit; i-- {
		if r.runs[i].SKUID == skuID {
			run := r.runs[i]
			out = append(out, &run)
		}
	}
	return out, nil
}
