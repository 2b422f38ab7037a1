package xmlexport_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/replenishment-api/internal/application/replenishment"
	"github.com/jhoicas/replenishment-api/internal/domain/entity"
	"github.com/jhoicas/replenishment-api/internal/domain/inventory"
	"github.com/jhoicas/replenishment-api/internal/infrastructure/xmlexport"
)

func TestReportRenderer_Render(t *testing.T) {
	p, err := inventory.NewParameters(5000, 100, 200, 0.10, 2.0)
	require.NoError(t, err)
	a, err := inventory.NewAnalyzer(nil, 0).Analyze("SKU-B", p)
	require.NoError(t, err)
	cmp, err := inventory.Compare(p, []float64{0, 400})
	require.NoError(t, err)

	r := xmlexport.NewReportRenderer()
	assert.Equal(t, "xml", r.Extension())
	assert.Equal(t, "application/xml", r.ContentType())

	out, err := r.Render(context.Background(), &replenishment.Report{
		SKU:         &entity.SKU{ID: "s1", Code: "SKU-B", Name: "Válvula"},
		Analysis:    a,
		Comparison:  cmp,
		GeneratedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "ReplenishmentReport", root.Tag)
	assert.Equal(t, "2026-03-01T10:00:00Z", root.SelectAttrValue("generatedAt", ""))

	assert.Equal(t, "SKU-B", root.FindElement("SKU").SelectAttrValue("code", ""))
	assert.Equal(t, "12", root.FindElement("Parameters/HoldingCostRate").Text())

	results := root.FindElements("Results/Result")
	require.Len(t, results, 2)
	assert.Equal(t, "closed_form", results[0].SelectAttrValue("method", ""))
	assert.Equal(t, "numeric_search", results[1].SelectAttrValue("method", ""))
	assert.Equal(t, "converged", results[1].SelectAttrValue("status", ""))

	q, err := strconv.ParseFloat(results[0].FindElement("Quantity").Text(), 64)
	require.NoError(t, err)
	assert.InDelta(t, 408.25, q, 0.01)

	rows := root.FindElements("Comparison/Row")
	require.Len(t, rows, 2)
	assert.Equal(t, "INF", rows[0].FindElement("TotalCost").Text())
}

func TestReportRenderer_SinSKU(t *testing.T) {
	_, err := xmlexport.NewReportRenderer().Render(context.Background(), &replenishment.Report{})
	assert.Error(t, err)
}
