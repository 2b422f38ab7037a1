package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/replenishment-api/internal/domain/entity"
	"github.com/jhoicas/replenishment-api/internal/domain/repository"
)

var _ repository.AnalysisRunRepository = (*AnalysisRunRepo)(nil)

// AnalysisRunRepo histórico de análisis sobre PostgreSQL.
type AnalysisRunRepo struct {
	q Querier
}

// NewAnalysisRunRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalysisRunRepository(q Querier) *AnalysisRunRepo {
	return &AnalysisRunRepo{q: q}
}

// Create persiste una corrida.
func (r *AnalysisRunRepo) Create(ctx context.Context, run *entity.AnalysisRun) error {
	query := `
		INSERT INTO analysis_runs (id, company_id, sku_id, annual_demand, order_cost, holding_cost_rate,
			eoq, optimal_quantity, total_cost, status, evaluations, agrees, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		run.ID, run.CompanyID, run.SKUID, run.AnnualDemand, run.OrderCost, run.HoldingCostRate,
		run.EOQ, run.OptimalQuantity, run.TotalCost, run.Status, run.Evaluations, run.Agrees,
		run.CreatedBy, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert analysis run: %w", err)
	}
	return nil
}

// ListBySKU últimas corridas de un SKU, más reciente primero.
func (r *AnalysisRunRepo) ListBySKU(ctx context.Context, skuID string, limit int) ([]*entity.AnalysisRun, error) {
	query := `
		SELECT id, company_id, sku_id, annual_demand, order_cost, holding_cost_rate,
			eoq, optimal_quantity, total_cost, status, evaluations, agrees, created_by, created_at
		FROM analysis_runs WHERE sku_id = $1
		ORDER BY created_at DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, skuID, limit)
	if err != nil {
		return nil, fmt.Errorf("list analysis runs: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.AnalysisRun, 0)
	for rows.Next() {
		var a entity.AnalysisRun
		if err := rows.Scan(
			&a.ID, &a.CompanyID, &a.SKUID, &a.AnnualDemand, &a.OrderCost, &a.HoldingCostRate,
			&a.EOQ, &a.OptimalQuantity, &a.TotalCost, &a.Status, &a.Evaluations, &a.Agrees,
			&a.CreatedBy, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan analysis run: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
