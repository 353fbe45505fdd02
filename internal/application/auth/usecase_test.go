package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwcsoft/zapateria-api/internal/application/auth"
	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/testutil"
	pkgjwt "github.com/bwcsoft/zapateria-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "zapateria-api-test"
)

func newAuthUC(store *testutil.MemStore) *auth.UseCase {
	return auth.NewUseCase(store.UserRepo(), testSecret, testIssuer, 60)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConHashYRolPorDefecto(t *testing.T) {
	store := testutil.NewMemStore()
	uc := newAuthUC(store)

	resp, err := uc.Register(&dto.RegisterRequest{
		Username: "  vendedor1  ",
		Password: "secreta123",
	})
	require.NoError(t, err)

	assert.Equal(t, "vendedor1", resp.Username, "el username debe guardarse sin espacios")
	assert.Equal(t, entity.RoleVendedor, resp.Role, "sin rol explícito se asigna VENDEDOR")
	assert.Equal(t, "active", resp.Status)

	// El password nunca se guarda en claro
	user, _ := store.UserRepo().FindByUsername("vendedor1")
	require.NotNil(t, user)
	assert.NotEqual(t, "secreta123", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestRegister_RolInvalido(t *testing.T) {
	store := testutil.NewMemStore()
	uc := newAuthUC(store)

	_, err := uc.Register(&dto.RegisterRequest{
		Username: "intruso",
		Password: "secreta123",
		Role:     "SUPERUSUARIO",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	store := testutil.NewMemStore()
	uc := newAuthUC(store)

	_, err := uc.Register(&dto.RegisterRequest{Username: "repetido", Password: "secreta123"})
	require.NoError(t, err)
	_, err = uc.Register(&dto.RegisterRequest{Username: "repetido", Password: "otraclave456"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_EmiteTokenConRol(t *testing.T) {
	store := testutil.NewMemStore()
	uc := newAuthUC(store)

	reg, err := uc.Register(&dto.RegisterRequest{
		Username: "almacenista1",
		Password: "secreta123",
		Role:     entity.RoleAlmacenista,
	})
	require.NoError(t, err)

	resp, err := uc.Login(&dto.LoginRequest{Username: "almacenista1", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, reg.ID, resp.User.ID)

	// El token lleva el usuario y el rol que el middleware RBAC necesita
	userID, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, entity.RoleAlmacenista, role)
}

func TestLogin_PasswordIncorrecto_NoAutorizado(t *testing.T) {
	store := testutil.NewMemStore()
	uc := newAuthUC(store)

	_, err := uc.Register(&dto.RegisterRequest{Username: "vendedor1", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(&dto.LoginRequest{Username: "vendedor1", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_NoAutorizado(t *testing.T) {
	store := testutil.NewMemStore()
	uc := newAuthUC(store)

	// Mismo error que password incorrecto: no se filtra cuál de los dos falló
	_, err := uc.Login(&dto.LoginRequest{Username: "fantasma", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioDeshabilitado_NoAutorizado(t *testing.T) {
	store := testutil.NewMemStore()
	uc := newAuthUC(store)

	user := store.SeedUser("user-1", "baja1", entity.RoleVendedor)
	user.Status = "disabled"

	_, err := uc.Login(&dto.LoginRequest{Username: "baja1", Password: "cualquiera"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ── GetByID ───────────────────────────────────────────────────────────────────

func TestGetByID_Inexistente(t *testing.T) {
	store := testutil.NewMemStore()
	uc := newAuthUC(store)

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
