package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/stockroom-api/internal/store"
)

// PostgreSQL error codes
const pgUniqueViolationCode = "23505"

// Unique constraint names from the migrations. The constraint that fired
// tells us which uniqueness rule the write violated.
const (
	usersEmailConstraint    = "users_email_key"
	usersUserNameConstraint = "users_user_name_key"
)

// mapUniqueViolation translates a PostgreSQL unique-violation error into
// the matching store sentinel. The database constraint is the sole source
// of truth for conflicts; there is no SELECT-before-write race to worry
// about. Returns nil if err is not a unique violation.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolationCode {
		return nil
	}

	switch pgErr.ConstraintName {
	case usersEmailConstraint:
		return store.ErrEmailExists
	case usersUserNameConstraint:
		return store.ErrUserNameExists
	default:
		return store.ErrDuplicate
	}
}
