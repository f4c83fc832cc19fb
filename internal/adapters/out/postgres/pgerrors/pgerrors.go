// Package pgerrors maps gorm and Postgres driver errors onto the domain error
// kinds so callers can classify them with errors.Is.
package pgerrors

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	UniqueViolation        = "23505"
	ForeignKeyViolation    = "23503"
	NumericValueOutOfRange = "22003"
	CheckViolation         = "23514"
)

// Translate wraps err for the given entity. Missing rows become
// ObjectNotFoundError, unique and foreign key violations become
// ConflictError, numeric overflow and check violations become validation
// errors. Anything else is wrapped unchanged.
func Translate(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, pgx.ErrNoRows) {
		return errs.NewObjectNotFoundErrorWithCause(entity, id, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case UniqueViolation:
			return errs.NewConflictErrorWithCause(fmt.Sprintf("%s %v violates %s", entity, id, pgErr.ConstraintName), err)
		case ForeignKeyViolation:
			return errs.NewConflictErrorWithCause(fmt.Sprintf("%s %v is still referenced", entity, id), err)
		case NumericValueOutOfRange, CheckViolation:
			return errs.NewValueIsInvalidErrorWithCause(entity, err)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, id, err)
}
