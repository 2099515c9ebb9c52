package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

var _ repository.BookRepository = (*BookRepo)(nil)

const bookColumns = "id, code, title, author, price, category, created_at, updated_at"

// BookRepo implementación del puerto BookRepository sobre PostgreSQL.
type BookRepo struct {
	pool *pgxpool.Pool
}

// NewBookRepository construye el adaptador de persistencia para libros.
func NewBookRepository(pool *pgxpool.Pool) *BookRepo {
	return &BookRepo{pool: pool}
}

// Create persiste un nuevo libro. Un code duplicado se reporta como DuplicateError.
func (r *BookRepo) Create(book *entity.Book) error {
	query := `
		INSERT INTO books (id, code, title, author, price, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		book.ID, book.Code, book.Title, book.Author, book.Price, book.Category,
		book.CreatedAt, book.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateError(uniqueViolationField(err))
		}
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// GetByID obtiene un libro por ID. Devuelve (nil, nil) si no existe.
func (r *BookRepo) GetByID(id string) (*entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	var b entity.Book
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Code, &b.Title, &b.Author, &b.Price, &b.Category, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return &b, nil
}

// List devuelve la página filtrada y el total filtrado leídos en un mismo snapshot.
// Ambas consultas corren dentro de una transacción REPEATABLE READ para que página y
// conteo reflejen el mismo estado ante escrituras concurrentes.
// Orden: title asc con desempate por id asc, estable entre páginas.
func (r *BookRepo) List(filter repository.BookFilter, limit, offset int) ([]*entity.Book, int, error) {
	where, args := buildBookWhere(filter)

	ctx := context.Background()
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, 0, fmt.Errorf("begin list tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	pageQuery := `SELECT ` + bookColumns + ` FROM books` + where +
		fmt.Sprintf(" ORDER BY title ASC, id ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	rows, err := tx.Query(ctx, pageQuery, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var list []*entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Code, &b.Title, &b.Author, &b.Price, &b.Category, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan book: %w", err)
		}
		list = append(list, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	rows.Close()

	var total int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM books`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("commit list tx: %w", err)
	}
	return list, total, nil
}

// buildBookWhere arma la cláusula WHERE para búsqueda y filtro de categoría.
// El término de búsqueda se escapa para que %, _ y \ cuenten como literales.
func buildBookWhere(filter repository.BookFilter) (string, []any) {
	var conds []string
	var args []any

	if term := strings.TrimSpace(filter.Search); term != "" {
		args = append(args, "%"+escapeLike(term)+"%")
		p := fmt.Sprintf("$%d", len(args))
		conds = append(conds, fmt.Sprintf(
			"(title ILIKE %[1]s OR author ILIKE %[1]s OR code ILIKE %[1]s OR category ILIKE %[1]s)", p))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Update actualiza un libro existente. Devuelve ErrNotFound si el id no resuelve.
func (r *BookRepo) Update(book *entity.Book) error {
	query := `
		UPDATE books SET code = $2, title = $3, author = $4, price = $5, category = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		book.ID, book.Code, book.Title, book.Author, book.Price, book.Category, book.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateError(uniqueViolationField(err))
		}
		return fmt.Errorf("update book: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un libro por ID. Devuelve ErrNotFound si no existía
// (un segundo delete del mismo id falla, no es silencioso).
func (r *BookRepo) Delete(id string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Categories devuelve las categorías distintas, sin nulos ni vacíos, en orden ascendente.
func (r *BookRepo) Categories() ([]string, error) {
	query := `
		SELECT DISTINCT category FROM books
		WHERE category IS NOT NULL AND category <> ''
		ORDER BY category ASC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Count devuelve el total de libros del catálogo.
func (r *BookRepo) Count() (int, error) {
	var total int
	if err := r.pool.QueryRow(context.Background(), `SELECT count(*) FROM books`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return total, nil
}
