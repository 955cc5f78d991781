package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrNotFound))
	assert.True(t, IsNotFound(gorm.ErrRecordNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("loading supplier: %w", ErrNotFound)))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("connection reset")))
}

func TestIsConstraintViolation(t *testing.T) {
	assert.True(t, IsConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, IsConstraintViolation(errors.New("FOREIGN KEY constraint failed")))
	assert.True(t, IsConstraintViolation(errors.New(`duplicate key value violates unique constraint "users_email_key"`)))
	assert.False(t, IsConstraintViolation(nil))
	assert.False(t, IsConstraintViolation(errors.New("connection reset")))
}
