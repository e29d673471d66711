package shift

import (
	"errors"
	"strings"

	shifterrors "shift-tracker/internal/shift/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shifterrors.ErrShiftNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == OpenShiftConstraint {
			return shifterrors.ErrShiftAlreadyOpen
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, OpenShiftConstraint) {
		return shifterrors.ErrShiftAlreadyOpen
	}

	return err
}

// isSerializationFailure reports a transaction aborted by SERIALIZABLE
// conflict detection. The conflict is not necessarily with the same worker.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgSerializationFailure
}
