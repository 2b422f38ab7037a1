package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/replenishment-api/internal/application/auth"
	"github.com/jhoicas/replenishment-api/internal/application/replenishment"
	"github.com/jhoicas/replenishment-api/internal/application/usecase"
	"github.com/jhoicas/replenishment-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	SKUUC         *usecase.SKUUseCase
	Replenishment *replenishment.ReplenishmentUseCase
	Reports       *replenishment.ReportUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	writers := RequireRole(entity.RoleAdmin, entity.RoleAnalyst)

	// Usuarios: solo admin asigna roles
	users := protected.Group("/users")
	users.Put("/:id/role", RequireRole(entity.RoleAdmin), authHandler.ChangeRole)

	// Análisis sin persistencia: cualquier rol autenticado
	repHandler := NewReplenishmentHandler(deps.Replenishment, deps.Reports)
	rep := protected.Group("/replenishment")
	rep.Post("/analyze", repHandler.Analyze)
	rep.Post("/compare", repHandler.Compare)
	rep.Post("/portfolio", repHandler.Portfolio)

	// Catálogo de SKUs
	skuHandler := NewSKUHandler(deps.SKUUC)
	skus := protected.Group("/skus")
	skus.Get("/", skuHandler.List)
	skus.Post("/", writers, skuHandler.Create)
	skus.Get("/:id", skuHandler.GetByID)
	skus.Put("/:id", writers, skuHandler.Update)
	skus.Delete("/:id", writers, skuHandler.Delete)

	// Análisis persistido y reportes por SKU
	skus.Post("/:id/analysis", writers, repHandler.AnalyzeStored)
	skus.Get("/:id/analysis/history", repHandler.History)
	skus.Get("/:id/report.pdf", repHandler.Report("pdf"))
	skus.Get("/:id/report.xml", repHandler.Report("xml"))
}
