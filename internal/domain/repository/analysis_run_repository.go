package repository

import (
	"context"

	"github.com/jhoicas/replenishment-api/internal/domain/entity"
)

// AnalysisRunRepository persiste el histórico de análisis por SKU.
type AnalysisRunRepository interface {
	Create(ctx context.Context, run *entity.AnalysisRun) error
	// ListBySKU devuelve las corridas más recientes primero.
	ListBySKU(ctx context.Context, skuID string, limit int) ([]*entity.AnalysisRun, error)
}
