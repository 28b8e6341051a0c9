package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintUsersPhone}
	wrapped := errors.Wrap(unique, "insert user")

	assert.True(t, isUniqueConstraintViolation(wrapped))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isForeignKeyConstraintViolation(wrapped))

	name, ok := uniqueViolationConstraint(wrapped)
	assert.True(t, ok)
	assert.Equal(t, constraintUsersPhone, name)

	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: pgCheckViolation}))

	plain := errors.New("connection reset")
	assert.False(t, isUniqueConstraintViolation(plain))
	_, ok = uniqueViolationConstraint(plain)
	assert.False(t, ok)
}
