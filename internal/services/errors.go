package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrStillReferenced is returned when deleting a row that existing
// relationships or resource links still point at.
var ErrStillReferenced = errors.New("Cannot delete: still referenced by existing contributions")

// Postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// isUniqueViolation reports whether err is a storage-level unique-constraint
// violation. The check-then-create guards race with concurrent creates, so the
// constraint error must map to the same conflict as the service-level check.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// isForeignKeyViolation reports whether err is a referential-integrity violation.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
