package dto

import "time"

// CreateBookRequest entrada para crear un libro. Solo title es obligatorio.
type CreateBookRequest struct {
	Code     *string `json:"code" validate:"omitempty,max=50"`
	Title    string  `json:"title" validate:"required,max=255"`
	Author   *string `json:"author" validate:"omitempty,max=255"`
	Price    *string `json:"price" validate:"omitempty,max=50"`
	Category *string `json:"category" validate:"omitempty,max=100"`
}

// UpdateBookRequest entrada para actualización parcial.
// Puntero nil = campo sin tocar; puntero a "" = limpiar a NULL (excepto title,
// que si viene debe ser no vacío).
type UpdateBookRequest struct {
	Code     *string `json:"code" validate:"omitempty,max=50"`
	Title    *string `json:"title" validate:"omitempty,max=255"`
	Author   *string `json:"author" validate:"omitempty,max=255"`
	Price    *string `json:"price" validate:"omitempty,max=50"`
	Category *string `json:"category" validate:"omitempty,max=100"`
}

// BookResponse salida de un libro. Los campos opcionales serializan null cuando no existen.
type BookResponse struct {
	ID        string    `json:"id"`
	Code      *string   `json:"code"`
	Title     string    `json:"title"`
	Author    *string   `json:"author"`
	Price     *string   `json:"price"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookListResponse página del catálogo con los metadatos de paginación del contrato público.
type BookListResponse struct {
	Items      []BookResponse `json:"items"`
	TotalCount int            `json:"totalCount"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
}
