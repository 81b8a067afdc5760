package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection reset")))
}

func TestIsCheckConstraintViolation(t *testing.T) {
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isCheckConstraintViolation(&pgconn.PgError{Code: "23505"}))
}
