package usecase_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/application/usecase"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in-memory del puerto BookRepository (mismas semánticas que el adaptador
// de Postgres: filtro OR case-insensitive, orden title asc / id asc, snapshot
// único para página y total).
// ──────────────────────────────────────────────────────────────────────────────

type fakeBookRepo struct {
	books map[string]*entity.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[string]*entity.Book)}
}

func (f *fakeBookRepo) Create(book *entity.Book) error {
	if book.Code != nil {
		for _, b := range f.books {
			if b.Code != nil && *b.Code == *book.Code {
				return domain.NewDuplicateError("code")
			}
		}
	}
	cp := *book
	f.books[book.ID] = &cp
	return nil
}

func (f *fakeBookRepo) GetByID(id string) (*entity.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func matchesSearch(b *entity.Book, term string) bool {
	term = strings.ToLower(term)
	fields := []string{b.Title}
	for _, p := range []*string{b.Author, b.Code, b.Category} {
		if p != nil {
			fields = append(fields, *p)
		}
	}
	for _, fld := range fields {
		if strings.Contains(strings.ToLower(fld), term) {
			return true
		}
	}
	return false
}

func (f *fakeBookRepo) List(filter repository.BookFilter, limit, offset int) ([]*entity.Book, int, error) {
	var all []*entity.Book
	for _, b := range f.books {
		if filter.Search != "" && !matchesSearch(b, filter.Search) {
			continue
		}
		if filter.Category != "" && (b.Category == nil || *b.Category != filter.Category) {
			continue
		}
		cp := *b
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Title != all[j].Title {
			return all[i].Title < all[j].Title
		}
		return all[i].ID < all[j].ID
	})
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (f *fakeBookRepo) Update(book *entity.Book) error {
	if _, ok := f.books[book.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *book
	f.books[book.ID] = &cp
	return nil
}

func (f *fakeBookRepo) Delete(id string) error {
	if _, ok := f.books[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.books, id)
	return nil
}

func (f *fakeBookRepo) Categories() ([]string, error) {
	seen := make(map[string]bool)
	for _, b := range f.books {
		if b.Category != nil && *b.Category != "" {
			seen[*b.Category] = true
		}
	}
	var out []string
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeBookRepo) Count() (int, error) {
	return len(f.books), nil
}

var _ repository.BookRepository = (*fakeBookRepo)(nil)

func strPtr(s string) *string { return &s }

// seedBooks crea libros de prueba vía el use case (pasa por trim/normalización).
func seedBooks(t *testing.T, uc *usecase.BookUseCase, reqs ...dto.CreateBookRequest) []dto.BookResponse {
	t.Helper()
	out := make([]dto.BookResponse, 0, len(reqs))
	for _, req := range reqs {
		b, err := uc.Create(req)
		require.NoError(t, err)
		out = append(out, *b)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestList_PaginacionYTotalPages(t *testing.T) {
	repo := newFakeBookRepo()
	uc := usecase.NewBookUseCase(repo)
	for _, title := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		seedBooks(t, uc, dto.CreateBookRequest{Title: title})
	}

	out, err := uc.List(usecase.ListBooksParams{Page: 1, Limit: 3})
	require.NoError(t, err)

	assert.Equal(t, 7, out.TotalCount)
	assert.Equal(t, 3, out.TotalPages, "ceil(7/3) = 3")
	assert.Len(t, out.Items, 3)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 3, out.Limit)

	// Última página: parcial
	out, err = uc.List(usecase.ListBooksParams{Page: 3, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
}

func TestList_CatalogoVacio_TotalPagesCero(t *testing.T) {
	uc := usecase.NewBookUseCase(newFakeBookRepo())

	out, err := uc.List(usecase.ListBooksParams{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, 0, out.TotalCount)
	assert.Equal(t, 0, out.TotalPages, "totalPages debe ser 0 con catálogo vacío")
	assert.Empty(t, out.Items)
}

func TestList_NormalizaPageYLimit(t *testing.T) {
	repo := newFakeBookRepo()
	uc := usecase.NewBookUseCase(repo)
	seedBooks(t, uc, dto.CreateBookRequest{Title: "Único"})

	// page <= 0 se normaliza a 1
	out, err := uc.List(usecase.ListBooksParams{Page: -5, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page)

	// limit > 100 se acota a 100
	out, err = uc.List(usecase.ListBooksParams{Page: 1, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, usecase.MaxPageLimit, out.Limit)

	// limit <= 0 se acota a 1; el default por tipo de listado lo aplica el
	// handler solo cuando el parámetro no viene en el request
	for _, lim := range []int{0, -4} {
		out, err = uc.List(usecase.ListBooksParams{Page: 1, Limit: lim})
		require.NoError(t, err)
		assert.Equal(t, 1, out.Limit, "limit %d debe acotarse a 1", lim)
	}
}

func TestList_OrdenEstablePorTituloEId(t *testing.T) {
	repo := newFakeBookRepo()
	uc := usecase.NewBookUseCase(repo)
	// Títulos repetidos: el desempate por id evita filas duplicadas o perdidas entre páginas
	seedBooks(t, uc,
		dto.CreateBookRequest{Title: "Duna"},
		dto.CreateBookRequest{Title: "Duna"},
		dto.CreateBookRequest{Title: "Duna"},
		dto.CreateBookRequest{Title: "Anna Karenina"},
	)

	var seen []string
	for page := 1; ; page++ {
		out, err := uc.List(usecase.ListBooksParams{Page: page, Limit: 2})
		require.NoError(t, err)
		for _, it := range out.Items {
			seen = append(seen, it.ID)
		}
		if page >= out.TotalPages {
			break
		}
	}
	assert.Len(t, seen, 4)
	unique := make(map[string]bool)
	for _, id := range seen {
		unique[id] = true
	}
	assert.Len(t, unique, 4, "ningún id debe repetirse entre páginas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func TestList_BusquedaCaseInsensitiveEnCuatroCampos(t *testing.T) {
	repo := newFakeBookRepo()
	uc := usecase.NewBookUseCase(repo)
	seedBooks(t, uc,
		dto.CreateBookRequest{Title: "Dune", Author: strPtr("Herbert")},
		dto.CreateBookRequest{Title: "Otro", Author: strPtr("Frank HERBERT")},
		dto.CreateBookRequest{Title: "Tercero", Code: strPtr("HERB-001")},
		dto.CreateBookRequest{Title: "Cuarto", Category: strPtr("herbolaria")},
		dto.CreateBookRequest{Title: "Sin relación"},
	)

	out, err := uc.List(usecase.ListBooksParams{Page: 1, Limit: 10, Search: "herb"})
	require.NoError(t, err)

	assert.Equal(t, 4, out.TotalCount)
	for _, it := range out.Items {
		// todo resultado debe coincidir en al menos uno de los cuatro campos
		match := strings.Contains(strings.ToLower(it.Title), "herb")
		for _, p := range []*string{it.Author, it.Code, it.Category} {
			if p != nil && strings.Contains(strings.ToLower(*p), "herb") {
				match = true
			}
		}
		assert.True(t, match, "el resultado %q no coincide con el término", it.Title)
	}
}

func TestList_BusquedaEnBlanco_NoFiltra(t *testing.T) {
	repo := newFakeBookRepo()
	uc := usecase.NewBookUseCase(repo)
	seedBooks(t, uc,
		dto.CreateBookRequest{Title: "Uno"},
		dto.CreateBookRequest{Title: "Dos"},
	)

	for _, term := range []string{"", "   ", "\t"} {
		out, err := uc.List(usecase.ListBooksParams{Page: 1, Limit: 10, Search: term})
		require.NoError(t, err)
		assert.Equal(t, 2, out.TotalCount, "término en blanco %q no debe filtrar", term)
	}
}

func TestList_EscenarioDune(t *testing.T) {
	repo := newFakeBookRepo()
	uc := usecase.NewBookUseCase(repo)
	created := seedBooks(t, uc, dto.CreateBookRequest{Title: "Dune", Author: strPtr("Herbert")})

	out, err := uc.List(usecase.ListBooksParams{Page: 1, Limit: 10, Search: "dune"})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, created[0].ID, out.Items[0].ID)
	assert.Equal(t, "Dune", out.Items[0].Title)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_TituloEnBlanco_Rechaza(t *testing.T) {
	repo := newFakeBookRepo()
	uc := usecase.NewBookUseCase(repo)

	for _, title := range []string{"", "   "} {
		_, err := uc.Create(dto.CreateBookRequest{Title: title})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	total, _ := repo.Count()
	assert.Zero(t, total, "nada debe persistirse tras un rechazo de validación")
}

func TestCreate_RecortaTitulo(t *testing.T) {
	uc := usecase.NewBookUseCase(newFakeBookRepo())

	out, err := uc.Create(dto.CreateBookRequest{Title: "  Duna  "})
	require.NoError(t, err)
	assert.Equal(t, "Duna", out.Title)
	assert.NotEmpty(t, out.ID)
}

func TestCreate_CodeDuplicado_Conflicto(t *testing.T) {
	uc := usecase.NewBookUseCase(newFakeBookRepo())
	seedBooks(t, uc, dto.CreateBookRequest{Title: "Primero", Code: strPtr("ISBN-1")})

	_, err := uc.Create(dto.CreateBookRequest{Title: "Segundo", Code: strPtr("ISBN-1")})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	var dup *domain.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "code", dup.Field, "el conflicto debe nombrar el campo")
}

func TestUpdate_RoundTripYLimpiezaDeOpcionales(t *testing.T) {
	uc := usecase.NewBookUseCase(newFakeBookRepo())
	created := seedBooks(t, uc, dto.CreateBookRequest{
		Title:  "X",
		Author: strPtr("Herbert"),
		Price:  strPtr("42.00"),
	})
	id := created[0].ID

	// Cambio de título
	out, err := uc.Update(id, dto.UpdateBookRequest{Title: strPtr("Y")})
	require.NoError(t, err)
	assert.Equal(t, "Y", out.Title)

	// author="" limpia a null sin tocar los demás campos
	out, err = uc.Update(id, dto.UpdateBookRequest{Author: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, out.Author, "cadena vacía debe limpiar el campo a null")
	assert.Equal(t, "Y", out.Title)
	require.NotNil(t, out.Price)
	assert.Equal(t, "42.00", *out.Price)

	// Releer confirma persistencia
	got, err := uc.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Y", got.Title)
	assert.Nil(t, got.Author)
}

func TestUpdate_TituloEnBlanco_Rechaza(t *testing.T) {
	uc := usecase.NewBookUseCase(newFakeBookRepo())
	created := seedBooks(t, uc, dto.CreateBookRequest{Title: "Original"})

	// Misma regla que en Create: title provisto no puede quedar vacío
	_, err := uc.Update(created[0].ID, dto.UpdateBookRequest{Title: strPtr("   ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.GetByID(created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Title, "el título original debe conservarse")
}

func TestUpdate_IdInexistente_NotFound(t *testing.T) {
	uc := usecase.NewBookUseCase(newFakeBookRepo())

	_, err := uc.Update("no-existe", dto.UpdateBookRequest{Title: strPtr("Z")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_Idempotencia(t *testing.T) {
	uc := usecase.NewBookUseCase(newFakeBookRepo())
	created := seedBooks(t, uc, dto.CreateBookRequest{Title: "Efímero"})
	id := created[0].ID

	require.NoError(t, uc.Delete(id), "el primer delete debe funcionar")
	assert.ErrorIs(t, uc.Delete(id), domain.ErrNotFound, "el segundo delete debe fallar con not found")
}
