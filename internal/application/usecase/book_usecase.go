package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

// Límites de página por tipo de listado. El máximo acota el costo de la peor consulta.
const (
	PublicPageLimit = 10 // listado público
	AdminPageLimit  = 15 // consola admin
	GridPageLimit   = 24 // vistas en cuadrícula (categoría, búsqueda)
	MaxPageLimit    = 100
)

// ListBooksParams parámetros de listado ya extraídos del request.
type ListBooksParams struct {
	Page     int
	Limit    int
	Search   string
	Category string // nombre exacto de categoría (resuelto desde slug), "" = sin filtro
}

// BookUseCase casos de uso CRUD y consulta paginada del catálogo.
type BookUseCase struct {
	repo repository.BookRepository
}

// NewBookUseCase construye el caso de uso.
func NewBookUseCase(repo repository.BookRepository) *BookUseCase {
	return &BookUseCase{repo: repo}
}

// List devuelve una página del catálogo con el total filtrado del mismo snapshot.
// page se normaliza a mínimo 1; limit se acota a [1, MaxPageLimit] — el default
// por tipo de listado lo aplica el handler solo cuando el parámetro no viene.
// Un término de búsqueda en blanco no filtra nada.
func (uc *BookUseCase) List(p ListBooksParams) (*dto.BookListResponse, error) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	skip := (page - 1) * limit

	filter := repository.BookFilter{
		Search:   strings.TrimSpace(p.Search),
		Category: p.Category,
	}
	items, total, err := uc.repo.List(filter, limit, skip)
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	out := make([]dto.BookResponse, 0, len(items))
	for _, b := range items {
		out = append(out, *toBookResponse(b))
	}
	return &dto.BookListResponse{
		Items:      out,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// GetByID obtiene un libro por ID. Devuelve (nil, nil) si no existe.
func (uc *BookUseCase) GetByID(id string) (*dto.BookResponse, error) {
	book, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, nil
	}
	return toBookResponse(book), nil
}

// Create crea un libro. El title se recorta y no puede quedar vacío; los campos
// opcionales vacíos se guardan como NULL.
func (uc *BookUseCase) Create(in dto.CreateBookRequest) (*dto.BookResponse, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	book := &entity.Book{
		ID:        uuid.New().String(),
		Code:      normalizeOptional(in.Code),
		Title:     title,
		Author:    normalizeOptional(in.Author),
		Price:     normalizeOptional(in.Price),
		Category:  normalizeOptional(in.Category),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(book); err != nil {
		return nil, err
	}
	return toBookResponse(book), nil
}

// Update aplica una actualización parcial. Puntero nil = sin tocar; puntero a
// cadena vacía = limpiar a NULL. title es la excepción: si viene, debe ser no
// vacío después de recortar (misma regla que en Create).
func (uc *BookUseCase) Update(id string, in dto.UpdateBookRequest) (*dto.BookResponse, error) {
	book, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, domain.ErrInvalidInput
		}
		book.Title = title
	}
	if in.Code != nil {
		book.Code = clearOrSet(*in.Code)
	}
	if in.Author != nil {
		book.Author = clearOrSet(*in.Author)
	}
	if in.Price != nil {
		book.Price = clearOrSet(*in.Price)
	}
	if in.Category != nil {
		book.Category = clearOrSet(*in.Category)
	}
	book.UpdatedAt = time.Now()
	if err := uc.repo.Update(book); err != nil {
		return nil, err
	}
	return toBookResponse(book), nil
}

// Delete elimina un libro. Un id inexistente (o un segundo delete) produce ErrNotFound.
func (uc *BookUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// normalizeOptional convierte nil o cadena vacía en NULL al crear.
func normalizeOptional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// clearOrSet implementa la convención de actualización: "" limpia a NULL,
// cualquier otro valor se asigna.
func clearOrSet(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func toBookResponse(b *entity.Book) *dto.BookResponse {
	if b == nil {
		return nil
	}
	return &dto.BookResponse{
		ID:        b.ID,
		Code:      b.Code,
		Title:     b.Title,
		Author:    b.Author,
		Price:     b.Price,
		Category:  b.Category,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
