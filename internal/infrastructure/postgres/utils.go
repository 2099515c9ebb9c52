package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// uniqueViolationField deduce el campo en conflicto a partir del nombre del constraint
// (convención de Postgres: <tabla>_<columna>_key). Devuelve "" si no se puede deducir.
func uniqueViolationField(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	name := pgErr.ConstraintName
	if name == "" {
		return ""
	}
	name = strings.TrimSuffix(name, "_key")
	name = strings.TrimSuffix(name, "_idx")
	if i := strings.Index(name, "_"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// escapeLike escapa los metacaracteres de LIKE/ILIKE para que el término de búsqueda
// se trate como substring literal.
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}
