// @title                       Replenishment API
// @version                     1.0
// @description                 Cantidad óptima de pedido por SKU: EOQ de fórmula cerrada contrastado con búsqueda numérica acotada.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/replenishment-api/docs"
	"github.com/jhoicas/replenishment-api/internal/application/auth"
	"github.com/jhoicas/replenishment-api/internal/application/replenishment"
	"github.com/jhoicas/replenishment-api/internal/application/usecase"
	"github.com/jhoicas/replenishment-api/internal/domain/inventory"
	"github.com/jhoicas/replenishment-api/internal/domain/repository"
	"github.com/jhoicas/replenishment-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/replenishment-api/internal/infrastructure/pdf"
	"github.com/jhoicas/replenishment-api/internal/infrastructure/postgres"
	"github.com/jhoicas/replenishment-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/replenishment-api/internal/interfaces/http"
	"github.com/jhoicas/replenishment-api/pkg/config"
	"github.com/jhoicas/replenishment-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		skuRepo  repository.SKURepository
		runRepo  repository.AnalysisRunRepository
		userRepo repository.UserRepository
	)
	switch cfg.App.Storage {
	case "memory":
		skuRepo = memory.NewSKURepository()
		runRepo = memory.NewAnalysisRunRepository()
		userRepo = memory.NewUserRepository()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		skuRepo = postgres.NewSKURepository(pool)
		runRepo = postgres.NewAnalysisRunRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
	}

	optimizer := inventory.NewOptimizer(cfg.Optimizer.LowerBound, inventory.SearchOptions{
		XTolerance:     cfg.Optimizer.XTolerance,
		MaxEvaluations: cfg.Optimizer.MaxEvaluations,
	})
	analyzer := inventory.NewAnalyzer(optimizer, cfg.Optimizer.AgreementTolerance)
	defaults := replenishment.Defaults{
		CapitalRate: cfg.Analysis.DefaultCapitalRate,
		StorageRate: cfg.Analysis.DefaultStorageRate,
	}

	replenishmentUC := replenishment.NewReplenishmentUseCase(
		analyzer, skuRepo, runRepo, defaults, cfg.Analysis.PortfolioWorkers, log,
	)
	reportUC := replenishment.NewReportUseCase(replenishmentUC,
		infrapdf.NewMarotoReportRenderer("es"),
		xmlexport.NewReportRenderer(),
	)
	skuUC := usecase.NewSKUUseCase(skuRepo, defaults)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Title = cfg.App.Name
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.App.Storage})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		SKUUC:         skuUC,
		Replenishment: replenishmentUC,
		Reports:       reportUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
