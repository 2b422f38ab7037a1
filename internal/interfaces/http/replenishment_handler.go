package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/replenishment-api/internal/application/dto"
	"github.com/jhoicas/replenishment-api/internal/application/replenishment"
)

// ReplenishmentHandler expone el análisis de cantidad óptima de pedido.
type ReplenishmentHandler struct {
	uc      *replenishment.ReplenishmentUseCase
	reports *replenishment.ReportUseCase
}

// NewReplenishmentHandler construye el handler.
func NewReplenishmentHandler(uc *replenishment.ReplenishmentUseCase, reports *replenishment.ReportUseCase) *ReplenishmentHandler {
	return &ReplenishmentHandler{uc: uc, reports: reports}
}

// Analyze godoc
// @Summary      Analizar un SKU
// @Description  EOQ por fórmula cerrada y óptimo por búsqueda numérica acotada, con diagnósticos.
// @Tags         replenishment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReplenishmentParamsRequest  true  "Parámetros de costo"
// @Success      200   {object}  dto.SKUAnalysisResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/replenishment/analyze [post]
func (h *ReplenishmentHandler) Analyze(c *fiber.Ctx) error {
	var in dto.ReplenishmentParamsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Analyze(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Compare godoc
// @Summary      Comparar cantidades
// @Description  Costo total y diagnósticos para cada cantidad, en el orden recibido.
// @Tags         replenishment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompareRequest  true  "Parámetros y cantidades"
// @Success      200   {object}  dto.ComparisonResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/replenishment/compare [post]
func (h *ReplenishmentHandler) Compare(c *fiber.Ctx) error {
	var in dto.CompareRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Compare(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Portfolio godoc
// @Summary      Analizar un portafolio
// @Description  Analiza cada SKU de forma independiente; los errores se reportan por ítem.
// @Tags         replenishment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PortfolioRequest  true  "SKUs"
// @Success      200   {object}  dto.PortfolioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/replenishment/portfolio [post]
func (h *ReplenishmentHandler) Portfolio(c *fiber.Ctx) error {
	var in dto.PortfolioRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AnalyzePortfolio(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AnalyzeStored godoc
// @Summary      Analizar un SKU del catálogo
// @Description  Ejecuta el análisis con los parámetros guardados y registra la corrida en el histórico.
// @Tags         replenishment
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del SKU"
// @Success      201  {object}  dto.SKUAnalysisResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/skus/{id}/analysis [post]
func (h *ReplenishmentHandler) AnalyzeStored(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if companyID == "" {
		return err
	}
	out, err := h.uc.AnalyzeStoredSKU(c.UserContext(), companyID, GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Histórico de análisis de un SKU
// @Tags         replenishment
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del SKU"
// @Param        limit  query  int     false  "Límite"  default(20)
// @Success      200    {array}   dto.AnalysisRunDTO
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/skus/{id}/analysis/history [get]
func (h *ReplenishmentHandler) History(c *fiber.Ctx) error {
	companyID, err := requireCompany(c)
	if companyID == "" {
		return err
	}
	out, err := h.uc.ListRuns(c.UserContext(), companyID, c.Params("id"), c.QueryInt("limit", 20))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Descargar reporte de reposición
// @Tags         replenishment
// @Security     Bearer
// @Produce      application/pdf
// @Produce      application/xml
// @Param        id   path  string  true  "ID del SKU"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/skus/{id}/report.pdf [get]
// @Router       /api/skus/{id}/report.xml [get]
func (h *ReplenishmentHandler) Report(ext string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyID, err := requireCompany(c)
		if companyID == "" {
			return err
		}
		doc, contentType, filename, err := h.reports.Download(c.UserContext(), companyID, c.Params("id"), ext)
		if err != nil {
			return writeError(c, err)
		}
		c.Set(fiber.HeaderContentType, contentType)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(doc)
	}
}
