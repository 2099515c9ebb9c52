package entity

import "time"

// Book representa un libro del catálogo. Solo Title es obligatorio; los campos
// opcionales son punteros para distinguir NULL de cadena vacía en la persistencia.
// Price se guarda como string de presentación: este sistema no interpreta moneda.
type Book struct {
	ID        string
	Code      *string // identificador externo (ISBN, SKU), opcional y único si existe
	Title     string
	Author    *string
	Price     *string
	Category  *string // texto libre; las rutas por categoría lo resuelven vía slug
	CreatedAt time.Time
	UpdatedAt time.Time
}
