package usecase

import (
	"github.com/gosimple/slug"
	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

// CategoryUseCase categorías del catálogo y resolución de slugs.
// Los slugs no se persisten: se derivan del nombre y se resuelven contra la
// lista de categorías distintas (el slug no puede calcularse en SQL).
type CategoryUseCase struct {
	repo repository.BookRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.BookRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve las categorías distintas no vacías en orden ascendente, con su slug.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	names, err := uc.repo.Categories()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(names))
	for _, name := range names {
		out = append(out, dto.CategoryResponse{Name: name, Slug: slug.Make(name)})
	}
	return out, nil
}

// ResolveSlug devuelve el nombre de categoría almacenado cuyo slug coincide.
// Un slug desconocido produce ErrNotFound.
func (uc *CategoryUseCase) ResolveSlug(s string) (string, error) {
	names, err := uc.repo.Categories()
	if err != nil {
		return "", err
	}
	for _, name := range names {
		if slug.Make(name) == s {
			return name, nil
		}
	}
	return "", domain.ErrNotFound
}
