package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes this application reacts to.
const (
	codeUniqueViolation = "23505"
)

// IsDuplicateConstraintError reports whether err is a unique violation on
// the named constraint, e.g. the books ISBN index or the admin email key.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == codeUniqueViolation &&
		pgErr.ConstraintName == constraintName
}

// IsUniqueViolation reports whether err is any unique violation, regardless
// of constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
