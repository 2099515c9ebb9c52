package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
	"github.com/jhoicas/Libreria-api/pkg/jwt"
	"github.com/jhoicas/Libreria-api/pkg/password"
)

// JWTConfig configuración para emisión de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y refresh de sesión.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	jwtCfg     JWTConfig
	adminEmail string
}

// NewAuthUseCase construye el caso de uso de auth. adminEmail es el email que
// al registrarse recibe rol ADMIN (vacío = nadie).
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, adminEmail string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, adminEmail: adminEmail}
}

// Register crea un usuario: hashea el password y persiste. Un email ya registrado
// produce DuplicateError("email").
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewDuplicateError("email")
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	role := entity.RoleUser
	if uc.adminEmail != "" && strings.EqualFold(in.Email, uc.adminEmail) {
		role = entity.RoleAdmin
	}
	now := time.Now()
	name := in.Name
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		Name:         &name,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password y emite un token de sesión.
// Usuario inexistente, hash ausente y password incorrecto producen exactamente
// el mismo ErrInvalidCredentials: el caller no puede distinguir qué factor falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.issueSession(user)
}

// Refresh reemite el token de sesión con los claims actuales del usuario
// (el role en particular) sin volver a pedir el password. Se usa después de
// editar el perfil o cambiar el rol.
func (uc *AuthUseCase) Refresh(userID string) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.issueSession(user)
}

func (uc *AuthUseCase) issueSession(user *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse proyecta la entidad al DTO público (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Image:     u.Image,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
