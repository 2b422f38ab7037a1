package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/replenishment-api/internal/application/auth"
	"github.com/jhoicas/replenishment-api/internal/application/dto"
	"github.com/jhoicas/replenishment-api/internal/domain"
	"github.com/jhoicas/replenishment-api/internal/infrastructure/memory"
	"github.com/jhoicas/replenishment-api/pkg/jwt"
)

const (
	secret    = "secreto-de-prueba"
	companyID = "7b0f3f39-3c4a-4c1e-9d8e-2f4b1a7e9c10"
)

func newAuth() (*auth.AuthUseCase, *memory.UserRepository) {
	repo := memory.NewUserRepository()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "test"}).
		WithHashCost(bcrypt.MinCost)
	return uc, repo
}

func TestRegisterUser(t *testing.T) {
	uc, repo := newAuth()
	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "  Luis@Empresa.co ", Password: "12345678", CompanyID: companyID,
	})
	require.NoError(t, err)
	assert.Equal(t, "luis@empresa.co", out.Email)
	assert.Equal(t, "viewer", out.Role)
	assert.Equal(t, "active", out.Status)

	stored, err := repo.GetByEmail(context.Background(), "luis@empresa.co")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "12345678", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("12345678")))
}

func TestRegisterUser_Validaciones(t *testing.T) {
	uc, _ := newAuth()
	cases := []struct {
		name string
		in   dto.RegisterRequest
	}{
		{"password corto", dto.RegisterRequest{Email: "a@b.co", Password: "123", CompanyID: companyID}},
		{"company no uuid", dto.RegisterRequest{Email: "a@b.co", Password: "12345678", CompanyID: "acme"}},
		{"sin email", dto.RegisterRequest{Password: "12345678", CompanyID: companyID}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterUser(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newAuth()
	in := dto.RegisterRequest{Email: "a@b.co", Password: "12345678", CompanyID: companyID}
	_, err := uc.RegisterUser(context.Background(), in)
	require.NoError(t, err)
	_, err = uc.RegisterUser(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	uc, repo := newAuth()
	_, err := uc.ProvisionUser(context.Background(), dto.RegisterRequest{
		Email: "a@b.co", Password: "12345678", CompanyID: companyID,
	}, "analyst")
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "A@B.co", Password: "12345678"})
	require.NoError(t, err)
	id, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, id.UserID)
	assert.Equal(t, companyID, id.CompanyID)
	assert.Equal(t, "analyst", id.Role)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.co", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@b.co", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	// Usuario inactivo
	u, _ := repo.GetByEmail(context.Background(), "a@b.co")
	u.Status = "inactive"
	repo2 := memory.NewUserRepository()
	require.NoError(t, repo2.Create(context.Background(), u))
	uc2 := auth.NewAuthUseCase(repo2, auth.JWTConfig{Secret: secret, ExpMinutes: 5})
	_, err = uc2.Login(context.Background(), dto.LoginRequest{Email: "a@b.co", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Roles
// ──────────────────────────────────────────────────────────────────────────────

func TestProvisionUser_RolDesconocido(t *testing.T) {
	uc, _ := newAuth()
	_, err := uc.ProvisionUser(context.Background(), dto.RegisterRequest{
		Email: "a@b.co", Password: "12345678", CompanyID: companyID,
	}, "root")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChangeRole(t *testing.T) {
	uc, repo := newAuth()
	ctx := context.Background()
	admin, err := uc.ProvisionUser(ctx, dto.RegisterRequest{Email: "admin@b.co", Password: "12345678", CompanyID: companyID}, "admin")
	require.NoError(t, err)
	luis, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "luis@b.co", Password: "12345678", CompanyID: companyID})
	require.NoError(t, err)
	require.Equal(t, "viewer", luis.Role)

	out, err := uc.ChangeRole(ctx, companyID, admin.ID, luis.ID, "analyst")
	require.NoError(t, err)
	assert.Equal(t, "analyst", out.Role)
	stored, err := repo.GetByID(ctx, luis.ID)
	require.NoError(t, err)
	assert.Equal(t, "analyst", stored.Role)

	// El nuevo rol viaja en el próximo token.
	login, err := uc.Login(ctx, dto.LoginRequest{Email: "luis@b.co", Password: "12345678"})
	require.NoError(t, err)
	id, err := jwt.Parse(secret, login.Token)
	require.NoError(t, err)
	assert.Equal(t, "analyst", id.Role)
}

func TestChangeRole_Errores(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()
	admin, err := uc.ProvisionUser(ctx, dto.RegisterRequest{Email: "admin@b.co", Password: "12345678", CompanyID: companyID}, "admin")
	require.NoError(t, err)
	luis, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "luis@b.co", Password: "12345678", CompanyID: companyID})
	require.NoError(t, err)

	const otherCompany = "0b8e1c6a-5d2f-4e7b-8a9c-1f2e3d4c5b6a"
	cases := []struct {
		name      string
		companyID string
		userID    string
		role      string
		want      error
	}{
		{"rol desconocido", companyID, luis.ID, "root", domain.ErrInvalidInput},
		{"id mal formado", companyID, "abc", "analyst", domain.ErrNotFound},
		{"usuario inexistente", companyID, "3f9a1c2e-7b6d-4e5f-a1b2-c3d4e5f6a7b8", "analyst", domain.ErrNotFound},
		{"usuario de otra empresa", otherCompany, luis.ID, "analyst", domain.ErrNotFound},
		{"admin se quita su rol", companyID, admin.ID, "viewer", domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.ChangeRole(ctx, tc.companyID, admin.ID, tc.userID, tc.role)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
