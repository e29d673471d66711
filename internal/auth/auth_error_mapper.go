package auth

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isBootstrapConflict reports whether a concurrent first login for the same
// subject (or the same empty database) won the race.
func isBootstrapConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "23505":
		return pgErr.ConstraintName == "uq_users_external_id"
	case "40001":
		return true
	}
	return false
}
