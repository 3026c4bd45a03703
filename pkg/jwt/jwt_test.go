package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paymojammn/taxmoja-app/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	tok, err := jwt.Generate(secret, "op-1", "operator", "taxmoja-app", 60)
	require.NoError(t, err)

	userID, role, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "op-1", userID)
	assert.Equal(t, "operator", role)
}

func TestParse_Rejects(t *testing.T) {
	valid, err := jwt.Generate(secret, "op-1", "admin", "taxmoja-app", 60)
	require.NoError(t, err)
	expired, err := jwt.Generate(secret, "op-1", "admin", "taxmoja-app", -1)
	require.NoError(t, err)

	// HS512 con el mismo secreto: firma válida pero algoritmo no permitido.
	hs512, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           "op-1",
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	noExpiry, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{UserID: "op-1"}).SignedString([]byte(secret))
	require.NoError(t, err)

	noUser, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour))},
		Role:             "admin",
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	cases := map[string]struct {
		secret string
		token  string
	}{
		"vencido":          {secret, expired},
		"secreto distinto": {"otro-secret-completamente-distinto", valid},
		"algoritmo HS512":  {secret, hs512},
		"sin vencimiento":  {secret, noExpiry},
		"sin operador":     {secret, noUser},
		"basura":           {secret, "token.invalido.aqui"},
		"secreto vacío":    {"", valid},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := jwt.Parse(tc.secret, tc.token)
			assert.Error(t, err)
		})
	}
}

func TestParse_SubjectFallback(t *testing.T) {
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "op-7",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: "operator",
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	userID, role, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "op-7", userID)
	assert.Equal(t, "operator", role)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := jwt.Generate("", "op-1", "admin", "", 60)
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)
}
