package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/application/auth"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Comercio-api/pkg/jwt"
	"github.com/jhoicas/Comercio-api/pkg/password"
)

// fakeUserRepo repositorio de usuarios en memoria para tests (clave: email normalizado).
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[strings.ToLower(u.Email)]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[strings.ToLower(u.Email)] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error { return nil }
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Count() (int, error) { return len(r.byEmail), nil }
func (r *fakeUserRepo) Delete(id string) error {
	for k, u := range r.byEmail {
		if u.ID == id {
			delete(r.byEmail, k)
		}
	}
	return nil
}

// fakeCompanyRepo siempre vacío: el registro público no toca empresas.
type fakeCompanyRepo struct{}

func (r *fakeCompanyRepo) Create(c *entity.Company) error          { return nil }
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) { return nil, nil }
func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	return nil, nil
}
func (r *fakeCompanyRepo) Update(c *entity.Company) error { return nil }
func (r *fakeCompanyRepo) Delete(id string) error         { return nil }

func jwtOpts() pkgjwt.Options {
	return pkgjwt.Options{
		Secret:     "test-secret-key-for-unit-tests",
		Issuer:     "comercio-api-test",
		Audience:   "comercio-clients",
		ExpMinutes: 60,
	}
}

func newUseCase() (*auth.AuthUseCase, *fakeUserRepo) {
	users := newFakeUserRepo()
	return auth.NewAuthUseCase(users, &fakeCompanyRepo{}, jwtOpts()), users
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName: "Ana",
		LastName:  "Gómez",
		Email:     "ana@example.com",
		Password:  "S3creta!123",
	}
}

func TestRegister_CreaUsuarioConTokenValido(t *testing.T) {
	uc, users := newUseCase()

	resp, err := uc.Register(registerReq())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleUser, resp.Role)
	assert.Equal(t, "Ana Gómez", resp.FullName)
	assert.False(t, resp.Expiration.IsZero())

	claims, err := pkgjwt.Parse(jwtOpts(), resp.Token)
	require.NoError(t, err, "el token emitido en el registro debe validar")
	assert.Equal(t, resp.UserID, claims.UserID)
	assert.Equal(t, entity.RoleUser, claims.Role)
	assert.Empty(t, claims.CompanyID)

	// El password nunca se guarda en claro: hash+salt verifican la clave original.
	stored, err := users.FindByEmail("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "S3creta!123", stored.PasswordHash)
	assert.True(t, password.Verify("S3creta!123", stored.PasswordHash, stored.PasswordSalt))
	assert.True(t, stored.IsActive)
}

func TestRegister_RolForzadoAUser(t *testing.T) {
	uc, _ := newUseCase()

	in := registerReq()
	in.Role = "Admin" // el caller intenta escalar privilegios

	resp, err := uc.Register(in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, resp.Role,
		"el registro público jamás puede crear un Admin")

	claims, err := pkgjwt.Parse(jwtOpts(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, claims.Role)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	_, err = uc.Register(registerReq())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_EmailDuplicadoCaseInsensitive(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	in := registerReq()
	in.Email = "ANA@Example.COM"
	_, err = uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists,
		"el email es único sin distinguir mayúsculas")
}

func TestRegister_EmailInvalido(t *testing.T) {
	uc, _ := newUseCase()

	in := registerReq()
	in.Email = "esto-no-es-un-email"
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_Correcto(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "S3creta!123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ana@example.com", resp.Email)
}

func TestLogin_EmailConOtraCapitalizacion(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "Ana@EXAMPLE.com", Password: "S3creta!123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

// Usuario inexistente y password incorrecto devuelven el MISMO error:
// el caller no puede distinguir si la cuenta existe (anti-enumeración).
func TestLogin_ErroresIndistinguibles(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	_, errNoExiste := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "S3creta!123"})
	_, errMalaClave := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})

	assert.ErrorIs(t, errNoExiste, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errMalaClave, domain.ErrInvalidCredentials)
	assert.Equal(t, errNoExiste, errMalaClave)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, users := newUseCase()
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	stored, _ := users.FindByEmail("ana@example.com")
	stored.IsActive = false

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "S3creta!123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"cuenta inactiva también se colapsa en credenciales inválidas")
}

func TestEnsureSuperAdmin_SoloConTablaVacia(t *testing.T) {
	uc, users := newUseCase()

	require.NoError(t, uc.EnsureSuperAdmin("superadmin@ecommerce.com", "SuperAdmin@123"))

	seeded, err := users.FindByEmail("superadmin@ecommerce.com")
	require.NoError(t, err)
	require.NotNil(t, seeded)
	assert.Equal(t, entity.RoleSuperAdmin, seeded.Role)
	assert.Nil(t, seeded.CompanyID, "el SuperAdmin global no pertenece a ninguna empresa")

	// Segunda llamada: ya hay usuarios, no crea nada nuevo.
	require.NoError(t, uc.EnsureSuperAdmin("otro@ecommerce.com", "Otra@123"))
	dup, err := users.FindByEmail("otro@ecommerce.com")
	require.NoError(t, err)
	assert.Nil(t, dup)
}

func TestEnsureSuperAdmin_SinPasswordConfigurado(t *testing.T) {
	uc, _ := newUseCase()
	err := uc.EnsureSuperAdmin("superadmin@ecommerce.com", "")
	assert.Error(t, err, "sin password de seed y sin usuarios debe fallar el arranque")
}
