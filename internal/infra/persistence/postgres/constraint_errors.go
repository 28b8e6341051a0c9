package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// Constraint names declared in the schema migrations.
const (
	constraintUsersEmail = "users_email_key"
	constraintUsersPhone = "users_phone_key"
)

func pgErrorCode(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil, false
	}

	return pgErr, true
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// GORM's translated error, when TranslateError is enabled
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	pgErr, ok := pgErrorCode(err)

	return ok && pgErr.Code == pgUniqueViolation
}

// uniqueViolationConstraint returns the violated constraint's name, if the
// error is a unique violation reported by the driver.
func uniqueViolationConstraint(err error) (string, bool) {
	pgErr, ok := pgErrorCode(err)
	if !ok || pgErr.Code != pgUniqueViolation {
		return "", false
	}

	return pgErr.ConstraintName, true
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	pgErr, ok := pgErrorCode(err)

	return ok && pgErr.Code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	pgErr, ok := pgErrorCode(err)

	return ok && pgErr.Code == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	pgErr, ok := pgErrorCode(err)

	return ok && pgErr.Code == pgCheckViolation
}
