package replenishment

import (
	"context"
	"time"

	"github.com/jhoicas/replenishment-api/internal/domain/entity"
	"github.com/jhoicas/replenishment-api/internal/domain/inventory"
)

// Report contenido de un reporte de reposición para un SKU del catálogo.
type Report struct {
	SKU         *entity.SKU
	Analysis    inventory.SkuAnalysis
	Comparison  []inventory.CostEvaluation
	GeneratedAt time.Time
}

// ReportRenderer puerto para producir un documento (PDF, XML) a partir de un Report.
type ReportRenderer interface {
	Render(ctx context.Context, r *Report) ([]byte, error)
	// ContentType y Extension describen el documento producido.
	ContentType() string
	Extension() string
}
