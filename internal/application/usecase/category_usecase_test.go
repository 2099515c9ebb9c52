package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/application/usecase"
	"github.com/jhoicas/Libreria-api/internal/domain"
)

func TestCategoriasList_DistintasOrdenadasConSlug(t *testing.T) {
	repo := newFakeBookRepo()
	bookUC := usecase.NewBookUseCase(repo)
	seedBooks(t, bookUC,
		dto.CreateBookRequest{Title: "Uno", Category: strPtr("Ciencia Ficción")},
		dto.CreateBookRequest{Title: "Dos", Category: strPtr("Ciencia Ficción")},
		dto.CreateBookRequest{Title: "Tres", Category: strPtr("Arte")},
		dto.CreateBookRequest{Title: "Sin categoría"},
	)
	uc := usecase.NewCategoryUseCase(repo)

	cats, err := uc.List()
	require.NoError(t, err)

	// Distintas, orden ascendente, slug derivado del nombre
	require.Len(t, cats, 2)
	assert.Equal(t, "Arte", cats[0].Name)
	assert.Equal(t, "arte", cats[0].Slug)
	assert.Equal(t, "Ciencia Ficción", cats[1].Name)
	assert.Equal(t, "ciencia-ficcion", cats[1].Slug)
}

func TestResolveSlug(t *testing.T) {
	repo := newFakeBookRepo()
	bookUC := usecase.NewBookUseCase(repo)
	seedBooks(t, bookUC, dto.CreateBookRequest{Title: "Uno", Category: strPtr("Ciencia Ficción")})
	uc := usecase.NewCategoryUseCase(repo)

	name, err := uc.ResolveSlug("ciencia-ficcion")
	require.NoError(t, err)
	assert.Equal(t, "Ciencia Ficción", name, "debe devolver el nombre almacenado, no el slug")

	_, err = uc.ResolveSlug("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdminStats(t *testing.T) {
	repo := newFakeBookRepo()
	bookUC := usecase.NewBookUseCase(repo)
	seedBooks(t, bookUC,
		dto.CreateBookRequest{Title: "Uno", Category: strPtr("Arte")},
		dto.CreateBookRequest{Title: "Dos", Category: strPtr("Arte")},
		dto.CreateBookRequest{Title: "Tres", Category: strPtr("Historia")},
	)
	uc := usecase.NewStatsUseCase(repo)

	stats, err := uc.AdminStats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalBooks)
	assert.Equal(t, 2, stats.TotalCategories)
}
