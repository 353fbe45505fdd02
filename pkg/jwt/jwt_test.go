package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/bwcsoft/zapateria-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "zapateria-api-test"
	testExpMin = 60
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "ALMACENISTA", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "ALMACENISTA", role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, testUserID, "ADMINISTRADOR", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "ADMINISTRADOR", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "ADMINISTRADOR", testIssuer, testExpMin)
	assert.Error(t, err)

	_, _, err = pkgjwt.Parse("", "cualquier.token.aqui")
	assert.Error(t, err)
}

func TestJWT_TokenMalformado_RetornaError(t *testing.T) {
	_, _, err := pkgjwt.Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}
