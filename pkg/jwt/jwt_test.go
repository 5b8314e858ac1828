package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "tienda-api-test"
)

func TestGenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 7, "bodegero", "Rosa Pérez", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, testIssuer, tok)
	require.NoError(t, err)

	assert.Equal(t, int64(7), claims.SessionID)
	assert.Equal(t, "bodegero", claims.Role)
	assert.Equal(t, "Rosa Pérez", claims.Name)
	assert.Equal(t, "bodegero:7", claims.Subject)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 1, "admin", "Ana", -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 1, "admin", "Ana", time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", testIssuer, tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_EmisorDistinto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "otro-emisor", 1, "admin", "Ana", time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err)
}

func TestGenerate_SinSecret(t *testing.T) {
	_, err := pkgjwt.Generate("", testIssuer, 1, "admin", "Ana", time.Hour)
	assert.Error(t, err)
}
