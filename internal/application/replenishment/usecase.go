package replenishment

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/replenishment-api/internal/application/dto"
	"github.com/jhoicas/replenishment-api/internal/domain"
	"github.com/jhoicas/replenishment-api/internal/domain/entity"
	"github.com/jhoicas/replenishment-api/internal/domain/inventory"
	"github.com/jhoicas/replenishment-api/internal/domain/repository"
	"github.com/jhoicas/replenishment-api/pkg/logger"
)

// MaxPortfolioItems tope de SKUs por petición de portafolio.
const MaxPortfolioItems = 500

// ReplenishmentUseCase calcula la cantidad óptima de pedido por SKU.
// Cada SKU se optimiza de forma independiente; el portafolio los reparte entre workers.
type ReplenishmentUseCase struct {
	analyzer *inventory.Analyzer
	skuRepo  repository.SKURepository
	runRepo  repository.AnalysisRunRepository
	defaults Defaults
	workers  int
	log      *logger.Logger
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(
	analyzer *inventory.Analyzer,
	skuRepo repository.SKURepository,
	runRepo repository.AnalysisRunRepository,
	defaults Defaults,
	workers int,
	log *logger.Logger,
) *ReplenishmentUseCase {
	if workers <= 0 {
		workers = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ReplenishmentUseCase{
		analyzer: analyzer,
		skuRepo:  skuRepo,
		runRepo:  runRepo,
		defaults: defaults,
		workers:  workers,
		log:      log.Component("replenishment"),
	}
}

// Analyze calcula EOQ y el óptimo numérico para parámetros recibidos en la petición.
func (uc *ReplenishmentUseCase) Analyze(ctx context.Context, in dto.ReplenishmentParamsRequest) (*dto.SKUAnalysisResponse, error) {
	p, err := ParamsFromRequest(in, uc.defaults)
	if err != nil {
		return nil, err
	}
	a, err := uc.analyze(in.Name, p)
	if err != nil {
		return nil, err
	}
	return ToAnalysisResponse(a), nil
}

// Compare tabula costo y diagnósticos para una secuencia explícita de cantidades.
func (uc *ReplenishmentUseCase) Compare(ctx context.Context, in dto.CompareRequest) (*dto.ComparisonResponse, error) {
	p, err := ParamsFromRequest(in.ReplenishmentParamsRequest, uc.defaults)
	if err != nil {
		return nil, err
	}
	quantities := make([]float64, 0, len(in.Quantities))
	for _, q := range in.Quantities {
		quantities = append(quantities, q.InexactFloat64())
	}
	evals, err := inventory.Compare(p, quantities)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.CostEvaluationDTO, 0, len(evals))
	for _, e := range evals {
		rows = append(rows, ToCostEvaluationDTO(e))
	}
	return &dto.ComparisonResponse{Name: in.Name, Rows: rows}, nil
}

// AnalyzePortfolio analiza varios SKUs en paralelo. Un error de dominio en un SKU
// se reporta en su ítem y no detiene a los demás; la cancelación del contexto sí.
func (uc *ReplenishmentUseCase) AnalyzePortfolio(ctx context.Context, in dto.PortfolioRequest) (*dto.PortfolioResponse, error) {
	if len(in.Items) == 0 || len(in.Items) > MaxPortfolioItems {
		return nil, fmt.Errorf("%w: el portafolio debe tener entre 1 y %d SKUs", domain.ErrInvalidInput, MaxPortfolioItems)
	}

	items := make([]dto.PortfolioItemDTO, len(in.Items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)

	for i, req := range in.Items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			item := dto.PortfolioItemDTO{Index: i, Name: req.Name}
			res, err := uc.Analyze(gctx, req)
			if err != nil {
				item.Error = &dto.ErrorResponse{Code: ErrorCode(err), Message: err.Error()}
			} else {
				item.Analysis = res
			}
			items[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.PortfolioResponse{Total: len(items), Items: items}
	for _, it := range items {
		if it.Error != nil {
			out.Failed++
		} else {
			out.Succeeded++
		}
	}
	uc.log.Info().
		Int("total", out.Total).
		Int("failed", out.Failed).
		Msg("portafolio analizado")
	return out, nil
}

// AnalyzeStoredSKU analiza un SKU del catálogo y persiste la corrida en el histórico.
func (uc *ReplenishmentUseCase) AnalyzeStoredSKU(ctx context.Context, companyID, userID, skuID string) (*dto.SKUAnalysisResponse, error) {
	sku, err := uc.loadSKU(ctx, companyID, skuID)
	if err != nil {
		return nil, err
	}
	p, err := ParamsFromSKU(sku)
	if err != nil {
		return nil, err
	}
	a, err := uc.analyze(sku.Code, p)
	if err != nil {
		return nil, err
	}

	run := &entity.AnalysisRun{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		SKUID:           sku.ID,
		AnnualDemand:    sku.AnnualDemand,
		OrderCost:       sku.OrderCost,
		HoldingCostRate: decimalOf(a.HoldingCostRate, 4),
		EOQ:             decimalOf(a.ClosedForm.Quantity, 4),
		OptimalQuantity: decimalOf(a.Numeric.Quantity, 4),
		TotalCost:       decimalOf(a.Numeric.TotalCost, 2),
		Status:          string(a.Numeric.Status),
		Evaluations:     a.Numeric.Evaluations,
		Agrees:          a.Agrees,
		CreatedBy:       userID,
		CreatedAt:       time.Now(),
	}
	if err := uc.runRepo.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("guardar corrida de análisis: %w", err)
	}

	out := ToAnalysisResponse(a)
	out.SKUID = sku.ID
	out.RunID = run.ID
	return out, nil
}

// ListRuns devuelve el histórico de análisis de un SKU, más reciente primero.
func (uc *ReplenishmentUseCase) ListRuns(ctx context.Context, companyID, skuID string, limit int) ([]dto.AnalysisRunDTO, error) {
	if _, err := uc.loadSKU(ctx, companyID, skuID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	runs, err := uc.runRepo.ListBySKU(ctx, skuID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AnalysisRunDTO, 0, len(runs))
	for _, r := range runs {
		out = append(out, toRunDTO(r))
	}
	return out, nil
}

// BuildReport arma el contenido de los reportes PDF/XML de un SKU del catálogo.
func (uc *ReplenishmentUseCase) BuildReport(ctx context.Context, companyID, skuID string) (*Report, error) {
	sku, err := uc.loadSKU(ctx, companyID, skuID)
	if err != nil {
		return nil, err
	}
	p, err := ParamsFromSKU(sku)
	if err != nil {
		return nil, err
	}
	a, err := uc.analyze(sku.Code, p)
	if err != nil {
		return nil, err
	}
	cmp, err := inventory.Compare(p, comparisonAround(a.Numeric.Quantity))
	if err != nil {
		return nil, err
	}
	return &Report{SKU: sku, Analysis: a, Comparison: cmp, GeneratedAt: time.Now()}, nil
}

// loadSKU no distingue entre SKU inexistente, ID mal formado y SKU de otra empresa.
func (uc *ReplenishmentUseCase) loadSKU(ctx context.Context, companyID, skuID string) (*entity.SKU, error) {
	if _, err := uuid.Parse(skuID); err != nil {
		return nil, domain.ErrNotFound
	}
	sku, err := uc.skuRepo.GetByID(ctx, skuID)
	if err != nil {
		return nil, fmt.Errorf("obtener sku: %w", err)
	}
	if sku == nil || sku.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return sku, nil
}

func (uc *ReplenishmentUseCase) analyze(name string, p inventory.ReplenishmentParameters) (inventory.SkuAnalysis, error) {
	a, err := uc.analyzer.Analyze(name, p)
	if err != nil {
		uc.log.Debug().Str("sku", name).Err(err).Msg("análisis rechazado")
		return inventory.SkuAnalysis{}, err
	}
	ev := uc.log.Info()
	if !a.Numeric.Converged() || !a.Agrees {
		ev = uc.log.Warn()
	}
	ev.Str("sku", name).
		Float64("eoq", a.ClosedForm.Quantity).
		Float64("q_opt", a.Numeric.Quantity).
		Float64("total_cost", a.Numeric.TotalCost).
		Str("status", string(a.Numeric.Status)).
		Int("evaluations", a.Numeric.Evaluations).
		Bool("agrees", a.Agrees).
		Msg("sku analizado")
	return a, nil
}

// comparisonAround cantidades ilustrativas: las por defecto más fracciones y múltiplos del óptimo.
func comparisonAround(q float64) []float64 {
	out := append([]float64{}, inventory.DefaultComparisonQuantities...)
	for _, f := range []float64{0.5, 1, 2} {
		out = append(out, q*f)
	}
	sort.Float64s(out)
	return out
}

// ErrorCode traduce errores conocidos a los códigos usados en ErrorResponse.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrDomain):
		return "DOMAIN_ERROR"
	case errors.Is(err, domain.ErrInvalidInput):
		return "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, domain.ErrForbidden):
		return "FORBIDDEN"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "CANCELED"
	default:
		return "INTERNAL"
	}
}
