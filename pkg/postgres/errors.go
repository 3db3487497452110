package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories branch on.
const (
	UniqueViolationCode     = "23505"
	ForeignKeyViolationCode = "23503"
)

// IsUniqueViolation reports whether err carries a unique_violation from the server.
func IsUniqueViolation(err error) bool {
	return hasCode(err, UniqueViolationCode)
}

// IsForeignKeyViolation reports whether err carries a foreign_key_violation from the server.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, ForeignKeyViolationCode)
}

// ConstraintName returns the name of the violated constraint, if any.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.SQLState() == code
}
