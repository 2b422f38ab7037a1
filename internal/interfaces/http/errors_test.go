package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/replenishment-api/internal/application/dto"
	"github.com/jhoicas/replenishment-api/internal/application/replenishment"
	"github.com/jhoicas/replenishment-api/internal/domain"
	"github.com/jhoicas/replenishment-api/internal/domain/inventory"
	"github.com/jhoicas/replenishment-api/internal/infrastructure/memory"
)

func TestWriteError_Mapeo(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"dominio", domain.NewDomainError("annual_demand", -1, "debe ser positiva"), 400, "DOMAIN_ERROR"},
		{"validación", fmt.Errorf("%w: x", domain.ErrInvalidInput), 400, "VALIDATION"},
		{"no encontrado", domain.ErrNotFound, 404, "NOT_FOUND"},
		{"prohibido", domain.ErrForbidden, 403, "FORBIDDEN"},
		{"email repetido", domain.ErrEmailAlreadyExists, 409, "EMAIL_EXISTS"},
		{"duplicado", domain.ErrDuplicate, 409, "DUPLICATE"},
		{"credenciales", domain.ErrUnauthorized, 401, "UNAUTHORIZED"},
		{"cancelado", fmt.Errorf("portafolio: %w", context.Canceled), 503, "CANCELED"},
		{"plazo vencido", context.DeadlineExceeded, 503, "CANCELED"},
		{"desconocido", errors.New("boom"), 500, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return writeError(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestPortfolio_ContextoCanceladoRetorna503(t *testing.T) {
	uc := replenishment.NewReplenishmentUseCase(inventory.NewAnalyzer(nil, 0),
		memory.NewSKURepository(), memory.NewAnalysisRunRepository(),
		replenishment.Defaults{CapitalRate: 0.10, StorageRate: 2.0}, 2, nil)
	h := NewReplenishmentHandler(uc, nil)

	app := fiber.New()
	app.Post("/portfolio", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}, h.Portfolio)

	raw := []byte(`{"items":[{"name":"SKU-A","annual_demand":12000,"unit_cost":25,"order_cost":150}]}`)
	req := httptest.NewRequest(http.MethodPost, "/portfolio", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "CANCELED", body.Code)
}
