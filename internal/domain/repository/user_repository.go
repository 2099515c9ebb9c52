package repository

import "github.com/jhoicas/Libreria-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}
