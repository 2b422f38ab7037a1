package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/replenishment-api/internal/domain"
	"github.com/jhoicas/replenishment-api/internal/domain/entity"
)

func newSKU(id, company, code string, created time.Time) *entity.SKU {
	return &entity.SKU{
		ID: id, CompanyID: company, Code: code, Name: code,
		AnnualDemand: decimal.NewFromInt(1000), UnitCost: decimal.NewFromInt(10),
		OrderCost: decimal.NewFromInt(50), CapitalRate: decimal.NewFromFloat(0.1),
		StorageRate: decimal.NewFromInt(2), CreatedAt: created,
	}
}

func TestSKURepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewSKURepository()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, newSKU("1", "c1", "A", base)))
	require.NoError(t, repo.Create(ctx, newSKU("2", "c1", "B", base.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, newSKU("3", "c2", "A", base)))

	assert.ErrorIs(t, repo.Create(ctx, newSKU("4", "c1", "A", base)), domain.ErrDuplicate)

	got, err := repo.GetByCompanyAndCode(ctx, "c2", "A")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "3", got.ID)

	list, err := repo.ListByCompany(ctx, "c1", 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "B", list[0].Code, "más reciente primero")

	page, err := repo.ListByCompany(ctx, "c1", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "A", page[0].Code)

	n, err := repo.CountByCompany(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Las copias devueltas no alteran el almacenamiento.
	got.Name = "cambiado"
	again, _ := repo.GetByID(ctx, "3")
	assert.Equal(t, "A", again.Name)

	require.NoError(t, repo.Delete(ctx, "1"))
	missing, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAnalysisRunRepository_MasRecientePrimero(t *testing.T) {
	ctx := context.Background()
	repo := NewAnalysisRunRepository()
	for _, id := range []string{"r1", "r2", "r3"} {
		require.NoError(t, repo.Create(ctx, &entity.AnalysisRun{ID: id, SKUID: "s"}))
	}
	require.NoError(t, repo.Create(ctx, &entity.AnalysisRun{ID: "otro", SKUID: "x"}))

	runs, err := repo.ListBySKU(ctx, "s", 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "r3", runs[0].ID)
	assert.Equal(t, "r2", runs[1].ID)
}
