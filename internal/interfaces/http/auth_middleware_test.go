package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/replenishment-api/internal/application/dto"
	"github.com/jhoicas/replenishment-api/internal/domain/entity"
	apphttp "github.com/jhoicas/replenishment-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/replenishment-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "replenishment-api-test"
	testExpMin    = 60
)

// policyApp monta las mismas políticas que el router: lectura (cualquier rol),
// escritura (admin, analyst) y administración (admin).
func policyApp() *fiber.App {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"role": apphttp.GetRole(c), "company_id": apphttp.GetCompanyID(c)})
	}
	g := app.Group("/p", apphttp.AuthMiddleware(testJWTSecret))
	g.Get("/read", ok)
	g.Post("/write", apphttp.RequireRole(entity.RoleAdmin, entity.RoleAnalyst), ok)
	g.Put("/admin", apphttp.RequireRole(entity.RoleAdmin), ok)
	return app
}

func bearer(t *testing.T, secret, role string, expMin int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, testIssuer, pkgjwt.Identity{UserID: testUserID, CompanyID: testCompanyID, Role: role}, expMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func send(t *testing.T, app *fiber.App, method, path, auth string) (int, dto.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var body dto.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

// ──────────────────────────────────────────────────────────────────────────────
// Matriz rol × política
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_MatrizDePoliticas(t *testing.T) {
	app := policyApp()
	routes := []struct {
		method, path string
	}{
		{http.MethodGet, "/p/read"},
		{http.MethodPost, "/p/write"},
		{http.MethodPut, "/p/admin"},
	}
	// Estado esperado por rol para read, write, admin.
	want := map[string][3]int{
		entity.RoleAdmin:   {200, 200, 200},
		entity.RoleAnalyst: {200, 200, 403},
		entity.RoleViewer:  {200, 403, 403},
		"auditor":          {200, 403, 403},
	}
	for role, statuses := range want {
		auth := bearer(t, testJWTSecret, role, testExpMin)
		for i, r := range routes {
			t.Run(role+" "+r.path, func(t *testing.T) {
				status, body := send(t, app, r.method, r.path, auth)
				assert.Equal(t, statuses[i], status)
				if status == http.StatusForbidden {
					assert.Equal(t, "FORBIDDEN", body.Code)
				}
			})
		}
	}
}

func TestRequireRole_TokenSinRolRetorna401(t *testing.T) {
	app := policyApp()
	auth := bearer(t, testJWTSecret, "", testExpMin)

	status, body := send(t, app, http.MethodPost, "/p/write", auth)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_ROLE", body.Code)

	// La lectura no exige rol.
	status, _ = send(t, app, http.MethodGet, "/p/read", auth)
	assert.Equal(t, http.StatusOK, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware: tokens rechazados
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokensRechazados(t *testing.T) {
	app := policyApp()
	cases := []struct {
		name string
		auth string
		code string
	}{
		{"sin header", "", "MISSING_TOKEN"},
		{"esquema distinto", "Basic dXNlcjpwYXNz", "INVALID_TOKEN"},
		{"sin esquema", "solo-un-token", "INVALID_TOKEN"},
		{"malformado", "Bearer token.invalido.aqui", "INVALID_TOKEN"},
		{"expirado", bearer(t, testJWTSecret, "admin", -1), "INVALID_TOKEN"},
		{"otro secret", bearer(t, "otro-secret-completamente-distinto", "admin", testExpMin), "INVALID_TOKEN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := send(t, app, http.MethodGet, "/p/read", tc.auth)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestAuthMiddleware_EsquemaSinDistinguirMayusculas(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, pkgjwt.Identity{UserID: testUserID, CompanyID: testCompanyID, Role: "viewer"}, testExpMin)
	require.NoError(t, err)

	status, _ := send(t, policyApp(), http.MethodGet, "/p/read", "bearer "+tok)
	assert.Equal(t, http.StatusOK, status)
}

func TestAuthMiddleware_CargaIdentidadEnLocals(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    apphttp.GetUserID(c),
			"company_id": apphttp.GetCompanyID(c),
			"role":       apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", bearer(t, testJWTSecret, "analyst", testExpMin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]string{"user_id": testUserID, "company_id": testCompanyID, "role": "analyst"}, body)
}

func TestGetters_SinMiddlewareDevuelvenVacio(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(apphttp.GetUserID(c) + "|" + apphttp.GetCompanyID(c) + "|" + apphttp.GetRole(c))
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "||", string(raw))
}
