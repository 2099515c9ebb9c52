package dto

import "time"

// RegisterRequest entrada para registro: email, name y password obligatorios.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest actualización parcial del perfil (página de configuración).
type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`
	Image *string `json:"image" validate:"omitempty,url,max=2048"`
}

// UserResponse salida de un usuario (nunca incluye el hash del password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	Image     *string   `json:"image"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse salida con el token de sesión firmado y el usuario público.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
