package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Comercio-api/pkg/jwt"
)

func testOpts() pkgjwt.Options {
	return pkgjwt.Options{
		Secret:     "test-secret-key-for-unit-tests",
		Issuer:     "comercio-api-test",
		Audience:   "comercio-clients",
		ExpMinutes: 60,
	}
}

func TestJWT_GenerateAndParse(t *testing.T) {
	opts := testOpts()
	tok, exp, err := pkgjwt.Generate(opts, "user-1", "company-1", "Admin")
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), exp, 5*time.Second)

	claims, err := pkgjwt.Parse(opts, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "company-1", claims.CompanyID)
	assert.Equal(t, "Admin", claims.Role)
}

func TestJWT_SinCompany(t *testing.T) {
	opts := testOpts()
	tok, _, err := pkgjwt.Generate(opts, "user-2", "", "User")
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(opts, tok)
	require.NoError(t, err)
	assert.Empty(t, claims.CompanyID, "cliente final no lleva company_id en el token")
	assert.Equal(t, "User", claims.Role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	opts := testOpts()
	opts.ExpMinutes = -1 // ya expirado
	tok, _, err := pkgjwt.Generate(opts, "user-1", "", "User")
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testOpts(), tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testOpts(), "user-1", "", "User")
	require.NoError(t, err)

	bad := testOpts()
	bad.Secret = "otro-secret-completamente-distinto"
	_, err = pkgjwt.Parse(bad, tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_IssuerIncorrecto_RetornaError(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testOpts(), "user-1", "", "User")
	require.NoError(t, err)

	bad := testOpts()
	bad.Issuer = "otro-emisor"
	_, err = pkgjwt.Parse(bad, tok)
	assert.Error(t, err, "issuer distinto debe invalidar el token")
}

func TestJWT_AudienceIncorrecta_RetornaError(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testOpts(), "user-1", "", "User")
	require.NoError(t, err)

	bad := testOpts()
	bad.Audience = "otra-audiencia"
	_, err = pkgjwt.Parse(bad, tok)
	assert.Error(t, err, "audience distinta debe invalidar el token")
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	opts := testOpts()
	opts.Secret = ""
	_, _, err := pkgjwt.Generate(opts, "user-1", "", "User")
	assert.Error(t, err)
}
