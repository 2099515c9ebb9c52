package repository

import "github.com/jhoicas/Libreria-api/internal/domain/entity"

// BookFilter criterios de filtrado para listados del catálogo.
// Search aplica substring case-insensitive sobre title, author, code y category (OR).
// Category aplica igualdad exacta (rutas por slug de categoría). Ambos componen con AND.
type BookFilter struct {
	Search   string
	Category string
}

// BookRepository define el puerto de persistencia para Book (DIP).
type BookRepository interface {
	Create(book *entity.Book) error
	GetByID(id string) (*entity.Book, error)
	// List devuelve la página y el total filtrado leídos en un mismo snapshot,
	// ordenados por title asc con desempate por id asc.
	List(filter BookFilter, limit, offset int) ([]*entity.Book, int, error)
	Update(book *entity.Book) error
	Delete(id string) error
	// Categories devuelve las categorías distintas no vacías en orden ascendente.
	Categories() ([]string, error)
	Count() (int, error)
}
