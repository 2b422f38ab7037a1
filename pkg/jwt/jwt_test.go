package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/replenishment-api/pkg/jwt"
)

const secret = "secreto-de-prueba"

var ana = jwt.Identity{
	UserID:    "00000000-0000-0000-0000-000000000001",
	CompanyID: "00000000-0000-0000-0000-000000000002",
	Role:      "analyst",
}

func TestGenerateYParse(t *testing.T) {
	tok, err := jwt.Generate(secret, "replenishment-api", ana, 5)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, ana, id)
}

func TestParse_Rechazos(t *testing.T) {
	vigente, err := jwt.Generate(secret, "replenishment-api", ana, 5)
	require.NoError(t, err)
	expirado, err := jwt.Generate(secret, "replenishment-api", ana, -1)
	require.NoError(t, err)

	cases := []struct {
		name, secret, token string
	}{
		{"expirado", secret, expirado},
		{"otro secret", "otro-secret", vigente},
		{"secret vacío", "", vigente},
		{"basura", secret, "no.es.jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := jwt.Parse(tc.secret, tc.token)
			assert.Error(t, err)
		})
	}
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "x", ana, 5)
	assert.Error(t, err)
}
