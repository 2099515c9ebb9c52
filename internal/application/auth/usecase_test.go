package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Libreria-api/internal/application/auth"
	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
	"github.com/jhoicas/Libreria-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in-memory del puerto UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range f.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.NewDuplicateError("email")
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

const testSecret = "secreto-de-prueba"

func newTestAuth(repo repository.UserRepository, adminEmail string) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "libreria-api-test",
	}, adminEmail)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_RolSegunEmailAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestAuth(repo, "admin@libreria.com")

	// El email configurado recibe ADMIN (comparación case-insensitive)
	admin, err := uc.Register(dto.RegisterRequest{
		Email: "Admin@Libreria.com", Name: "Admin", Password: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)

	// Cualquier otro email recibe USER
	user, err := uc.Register(dto.RegisterRequest{
		Email: "ana@libreria.com", Name: "Ana", Password: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestRegister_SinEmailAdminConfigurado_NadieEsAdmin(t *testing.T) {
	uc := newTestAuth(newFakeUserRepo(), "")

	out, err := uc.Register(dto.RegisterRequest{
		Email: "ana@libreria.com", Name: "Ana", Password: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role)
}

func TestRegister_EmailDuplicado_Conflicto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestAuth(repo, "")

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@libreria.com", Name: "Ana", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ANA@libreria.com", Name: "Otra", Password: "secreta123"})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	var dup *domain.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "email", dup.Field)
}

func TestRegister_PersisteHashNoElPasswordPlano(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestAuth(repo, "")

	out, err := uc.Register(dto.RegisterRequest{Email: "ana@libreria.com", Name: "Ana", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso_EmiteTokenConClaims(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestAuth(repo, "admin@libreria.com")
	_, err := uc.Register(dto.RegisterRequest{Email: "admin@libreria.com", Name: "Admin", Password: "secreta123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@libreria.com", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, "admin@libreria.com", claims.Email)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_FallosIndistinguibles(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestAuth(repo, "")
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@libreria.com", Name: "Ana", Password: "secreta123"})
	require.NoError(t, err)

	// Email inexistente y password incorrecto deben producir exactamente el
	// mismo error: nada debe revelar cuál de los dos factores falló.
	_, errNoUser := uc.Login(dto.LoginRequest{Email: "nadie@libreria.com", Password: "secreta123"})
	_, errBadPass := uc.Login(dto.LoginRequest{Email: "ana@libreria.com", Password: "incorrecta"})

	require.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	require.ErrorIs(t, errBadPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errNoUser.Error(), errBadPass.Error())
}

func TestLogin_UsuarioSinHash_Rechaza(t *testing.T) {
	repo := newFakeUserRepo()
	// Cuenta creada por fuera del registro, sin credencial de password
	require.NoError(t, repo.Create(&entity.User{
		ID:    "u-1",
		Email: "oauth@libreria.com",
		Role:  entity.RoleUser,
	}))
	uc := newTestAuth(repo, "")

	_, err := uc.Login(dto.LoginRequest{Email: "oauth@libreria.com", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_ReflejaEstadoActualDelUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestAuth(repo, "")
	out, err := uc.Register(dto.RegisterRequest{Email: "ana@libreria.com", Name: "Ana", Password: "secreta123"})
	require.NoError(t, err)

	// Promoción de rol por fuera de la sesión
	u, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	u.Role = entity.RoleAdmin
	require.NoError(t, repo.Update(u))

	refreshed, err := uc.Refresh(out.ID)
	require.NoError(t, err)

	claims, err := jwt.Parse(testSecret, refreshed.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, claims.Role, "el token reemitido debe traer el rol vigente")
}

func TestRefresh_UsuarioInexistente(t *testing.T) {
	uc := newTestAuth(newFakeUserRepo(), "")

	_, err := uc.Refresh("no-existe")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
