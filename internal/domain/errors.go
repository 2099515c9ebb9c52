package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrDuplicate          = errors.New("recurso duplicado")
)

// DuplicateError violación de constraint único que identifica el campo en conflicto.
// Satisface errors.Is(err, ErrDuplicate) para que los handlers lo mapeen a 409.
type DuplicateError struct {
	Field string // ej. "code", "email"
}

func (e *DuplicateError) Error() string {
	if e.Field == "" {
		return ErrDuplicate.Error()
	}
	return fmt.Sprintf("ya existe un registro con este %s", e.Field)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// NewDuplicateError construye un DuplicateError para el campo dado.
func NewDuplicateError(field string) error {
	return &DuplicateError{Field: field}
}
