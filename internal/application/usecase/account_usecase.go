package usecase

import (
	"time"

	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

// AccountUseCase configuración de perfil del usuario autenticado.
type AccountUseCase struct {
	userRepo repository.UserRepository
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(userRepo repository.UserRepository) *AccountUseCase {
	return &AccountUseCase{userRepo: userRepo}
}

// UpdateProfile aplica una actualización parcial de name/image sobre el usuario
// de la sesión. Un body sin campos produce ErrInvalidInput; el token vigente
// puede reemitirse después vía auth.Refresh para reflejar los cambios.
func (uc *AccountUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if in.Name == nil && in.Image == nil {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		user.Name = in.Name
	}
	if in.Image != nil {
		user.Image = in.Image
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
