package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User representa una cuenta de la tienda. El email identifica de forma única al usuario
// y Role decide el acceso al área administrativa.
type User struct {
	ID           string
	Email        string
	Name         *string // nombre visible, opcional
	PasswordHash string  // bcrypt hash, nunca en claro después de persistir
	Image        *string // URL de avatar, opcional
	Role         string  // USER o ADMIN
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario puede acceder al área administrativa.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
