package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/replenishment-api/internal/domain"
	"github.com/jhoicas/replenishment-api/internal/domain/entity"
	"github.com/jhoicas/replenishment-api/internal/domain/repository"
)

var _ repository.SKURepository = (*SKURepo)(nil)

const skuColumns = `id, company_id, code, name, annual_demand, unit_cost, order_cost, capital_rate, storage_rate, created_at, updated_at`

// SKURepo implementación del puerto SKURepository sobre PostgreSQL (usable con pool o tx).
type SKURepo struct {
	q Querier
}

// NewSKURepository construye el adaptador. Pasar pool o tx (Querier).
func NewSKURepository(q Querier) *SKURepo {
	return &SKURepo{q: q}
}

// Create persiste un SKU. Código repetido en la empresa → ErrDuplicate.
func (r *SKURepo) Create(ctx context.Context, s *entity.SKU) error {
	query := `INSERT INTO skus (` + skuColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.CompanyID, s.Code, s.Name, s.AnnualDemand, s.UnitCost, s.OrderCost,
		s.CapitalRate, s.StorageRate, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sku: %w", err)
	}
	return nil
}

// GetByID obtiene un SKU por ID.
func (r *SKURepo) GetByID(ctx context.Context, id string) (*entity.SKU, error) {
	row := r.q.QueryRow(ctx, `SELECT `+skuColumns+` FROM skus WHERE id = $1`, id)
	s, err := scanSKU(row)
	if err != nil {
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return s, nil
}

// GetByCompanyAndCode obtiene un SKU por empresa y código.
func (r *SKURepo) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.SKU, error) {
	row := r.q.QueryRow(ctx, `SELECT `+skuColumns+` FROM skus WHERE company_id = $1 AND code = $2`, companyID, code)
	s, err := scanSKU(row)
	if err != nil {
		return nil, fmt.Errorf("get sku by code: %w", err)
	}
	return s, nil
}

// Update actualiza nombre y parámetros de costo.
func (r *SKURepo) Update(ctx context.Context, s *entity.SKU) error {
	query := `
		UPDATE skus SET name = $2, annual_demand = $3, unit_cost = $4, order_cost = $5,
			capital_rate = $6, storage_rate = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.AnnualDemand, s.UnitCost, s.OrderCost, s.CapitalRate, s.StorageRate, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sku: %w", err)
	}
	return nil
}

// ListByCompany lista SKUs de una empresa, más recientes primero.
func (r *SKURepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.SKU, error) {
	query := `SELECT ` + skuColumns + ` FROM skus WHERE company_id = $1 ORDER BY created_at DESC, code LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.SKU, 0)
	for rows.Next() {
		s, err := scanSKU(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// CountByCompany total de SKUs de la empresa (para paginación).
func (r *SKURepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM skus WHERE company_id = $1`, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count skus: %w", err)
	}
	return n, nil
}

// Delete elimina el SKU; el histórico cae por ON DELETE CASCADE.
func (r *SKURepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM skus WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete sku: %w", err)
	}
	return nil
}

func scanSKU(row pgx.Row) (*entity.SKU, error) {
	var s entity.SKU
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.Code, &s.Name, &s.AnnualDemand, &s.UnitCost, &s.OrderCost,
		&s.CapitalRate, &s.StorageRate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
