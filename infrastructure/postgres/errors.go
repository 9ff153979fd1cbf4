package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"rules-directory/domain/apperrors"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateConstraint maps postgres unique/foreign-key violations to a typed
// conflict error. Nothing pre-checks these constraints, the database is the
// single authority for them.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewConflict(fmt.Sprintf("duplicate value violates unique constraint %q", pgErr.ConstraintName))
		case pgForeignKeyViolation:
			return apperrors.NewConflict(fmt.Sprintf("operation violates foreign key constraint %q", pgErr.ConstraintName))
		}
	}
	return err
}
