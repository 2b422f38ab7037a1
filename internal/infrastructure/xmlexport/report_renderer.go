// Package xmlexport serializa el reporte de reposición como XML para integraciones (ERP, hojas de cálculo).
package xmlexport

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/replenishment-api/internal/application/replenishment"
	"github.com/jhoicas/replenishment-api/internal/domain/inventory"
)

// Namespace del documento.
const Namespace = "urn:replenishment-api:report:1"

var _ replenishment.ReportRenderer = (*ReportRenderer)(nil)

// ReportRenderer implementa replenishment.ReportRenderer con etree.
type ReportRenderer struct{}

// NewReportRenderer construye el renderer.
func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

// ContentType del documento producido.
func (ReportRenderer) ContentType() string { return "application/xml" }

// Extension del documento producido.
func (ReportRenderer) Extension() string { return "xml" }

// Render arma el árbol completo y lo serializa con sangría de dos espacios.
func (ReportRenderer) Render(_ context.Context, r *replenishment.Report) ([]byte, error) {
	if r == nil || r.SKU == nil {
		return nil, fmt.Errorf("xmlexport: reporte sin SKU")
	}
	a := r.Analysis

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("ReplenishmentReport")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("generatedAt", r.GeneratedAt.UTC().Format(time.RFC3339))

	sku := root.CreateElement("SKU")
	sku.CreateAttr("id", r.SKU.ID)
	sku.CreateAttr("code", r.SKU.Code)
	sku.CreateElement("Name").SetText(r.SKU.Name)

	params := root.CreateElement("Parameters")
	addNumber(params, "AnnualDemand", a.Params.AnnualDemand)
	addNumber(params, "UnitCost", a.Params.UnitCost)
	addNumber(params, "OrderCost", a.Params.OrderCost)
	addNumber(params, "CapitalRate", a.Params.CapitalRate)
	addNumber(params, "StorageRate", a.Params.StorageRate)
	addNumber(params, "HoldingCostRate", a.HoldingCostRate)

	results := root.CreateElement("Results")
	addResult(results, a.ClosedForm)
	addResult(results, a.Numeric)
	agreement := results.CreateElement("Agreement")
	agreement.CreateAttr("agrees", strconv.FormatBool(a.Agrees))
	agreement.SetText(number(a.RelativeDifference))

	addEvaluation(root.CreateElement("AtOptimum"), a.AtOptimum)

	cmp := root.CreateElement("Comparison")
	for _, e := range r.Comparison {
		addEvaluation(cmp.CreateElement("Row"), e)
	}

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xmlexport: serializar: %w", err)
	}
	return out.Bytes(), nil
}

func addResult(parent *etree.Element, res inventory.OptimizationResult) {
	el := parent.CreateElement("Result")
	el.CreateAttr("method", string(res.Method))
	if res.Status != "" {
		el.CreateAttr("status", string(res.Status))
		el.CreateAttr("evaluations", strconv.Itoa(res.Evaluations))
	}
	addNumber(el, "Quantity", res.Quantity)
	addNumber(el, "TotalCost", res.TotalCost)
}

func addEvaluation(el *etree.Element, e inventory.CostEvaluation) {
	addNumber(el, "Quantity", e.Quantity)
	addNumber(el, "TotalCost", e.TotalCost)
	addNumber(el, "TransportCost", e.TransportCost)
	addNumber(el, "CapitalCost", e.CapitalCost)
	addNumber(el, "StorageCost", e.StorageCost)
	addNumber(el, "OrdersPerYear", e.OrdersPerYear)
	addNumber(el, "AverageInventory", e.AverageInventory)
	addNumber(el, "DaysOfSupply", e.DaysOfSupply)
}

func addNumber(parent *etree.Element, tag string, v float64) {
	parent.CreateElement(tag).SetText(number(v))
}

// number usa la notación de xsd:double para los infinitos.
func number(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "INF"
	case math.IsInf(v, -1):
		return "-INF"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
