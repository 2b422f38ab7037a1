// seed carga el portafolio de referencia (SKU-A, SKU-B, SKU-C) en el catálogo de una empresa.
// Es idempotente: los códigos que ya existen se omiten.
// Con --admin-email y --admin-password crea además el primer admin de la empresa,
// único camino para obtener ese rol fuera de la API.
//
// Uso: go run ./cmd/seed --company <uuid> [--admin-email a@b.co --admin-password ********]
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/jhoicas/replenishment-api/internal/application/auth"
	"github.com/jhoicas/replenishment-api/internal/application/dto"
	"github.com/jhoicas/replenishment-api/internal/domain"
	"github.com/jhoicas/replenishment-api/internal/domain/entity"
	"github.com/jhoicas/replenishment-api/internal/domain/repository"
	"github.com/jhoicas/replenishment-api/internal/infrastructure/postgres"
	"github.com/jhoicas/replenishment-api/internal/interfaces/cli"
	"github.com/jhoicas/replenishment-api/pkg/config"
	"github.com/jhoicas/replenishment-api/pkg/logger"
)

func main() {
	companyID := pflag.String("company", "", "UUID de la empresa dueña de los SKUs")
	adminEmail := pflag.String("admin-email", "", "email del admin inicial (opcional)")
	adminPassword := pflag.String("admin-password", "", "password del admin inicial")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	if _, err := uuid.Parse(*companyID); err != nil {
		log.Error().Str("company", *companyID).Msg("--company debe ser un UUID")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	inserted := 0
	err = postgres.NewTxRunner(pool).Run(ctx, func(skus repository.SKURepository, _ repository.AnalysisRunRepository) error {
		for _, s := range cli.SampleSKUs {
			existing, err := skus.GetByCompanyAndCode(ctx, *companyID, s.Code)
			if err != nil {
				return err
			}
			if existing != nil {
				log.Info().Str("code", s.Code).Msg("ya existe, se omite")
				continue
			}
			now := time.Now()
			if err := skus.Create(ctx, &entity.SKU{
				ID:           uuid.New().String(),
				CompanyID:    *companyID,
				Code:         s.Code,
				Name:         s.Name,
				AnnualDemand: decimal.NewFromFloat(s.AnnualDemand),
				UnitCost:     decimal.NewFromFloat(s.UnitCost),
				OrderCost:    decimal.NewFromFloat(s.OrderCost),
				CapitalRate:  decimal.NewFromFloat(cli.SampleCapitalRate),
				StorageRate:  decimal.NewFromFloat(cli.SampleStorageRate),
				CreatedAt:    now,
				UpdatedAt:    now,
			}); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().Int("inserted", inserted).Msg("seed completado")

	if *adminEmail == "" {
		return
	}
	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer})
	admin, err := authUC.ProvisionUser(ctx, dto.RegisterRequest{
		Email:     *adminEmail,
		Password:  *adminPassword,
		CompanyID: *companyID,
		Name:      "Administrador",
	}, entity.RoleAdmin)
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		log.Info().Str("email", *adminEmail).Msg("admin ya existe, se omite")
	case err != nil:
		log.Fatal().Err(err).Msg("crear admin")
	default:
		log.Info().Str("user_id", admin.ID).Msg("admin creado")
	}
}
