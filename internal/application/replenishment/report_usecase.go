package replenishment

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/replenishment-api/internal/domain"
)

// ReportUseCase genera documentos descargables del análisis de un SKU.
type ReportUseCase struct {
	replenishment *ReplenishmentUseCase
	renderers     map[string]ReportRenderer
}

// NewReportUseCase registra los renderers disponibles por extensión ("pdf", "xml").
func NewReportUseCase(replenishment *ReplenishmentUseCase, renderers ...ReportRenderer) *ReportUseCase {
	m := make(map[string]ReportRenderer, len(renderers))
	for _, r := range renderers {
		m[r.Extension()] = r
	}
	return &ReportUseCase{replenishment: replenishment, renderers: m}
}

// Download devuelve los bytes, el content type y el nombre de archivo sugerido.
//
// Retorna:
//   - domain.ErrNotFound     si el SKU no existe, el ID es inválido o pertenece a otra empresa.
//   - domain.ErrDomain       si los parámetros del SKU son degenerados.
//   - domain.ErrInvalidInput si el formato no está registrado.
func (uc *ReportUseCase) Download(ctx context.Context, companyID, skuID, ext string) ([]byte, string, string, error) {
	renderer, ok := uc.renderers[strings.ToLower(ext)]
	if !ok {
		return nil, "", "", fmt.Errorf("%w: formato de reporte %q no soportado", domain.ErrInvalidInput, ext)
	}
	report, err := uc.replenishment.BuildReport(ctx, companyID, skuID)
	if err != nil {
		return nil, "", "", err
	}
	doc, err := renderer.Render(ctx, report)
	if err != nil {
		return nil, "", "", fmt.Errorf("generar reporte %s: %w", ext, err)
	}
	filename := fmt.Sprintf("reposicion_%s.%s", sanitize(report.SKU.Code), renderer.Extension())
	return doc, renderer.ContentType(), filename, nil
}

// sanitize deja solo caracteres seguros para un nombre de archivo.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
