package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for constraint violations surfaced by the store. The
// services pre-check uniqueness and FK existence, but under concurrent
// requests check-then-insert races; these constraints are the final
// authority and map to the same client responses as the pre-checks.
var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
)

// constraintError translates Postgres constraint failures into the
// package sentinels and passes everything else through.
func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrUniqueViolation
		case "23503":
			return ErrForeignKeyViolation
		}
	}
	return err
}

// oneLine collapses a multi-line SQL literal for single-line query logging.
func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
