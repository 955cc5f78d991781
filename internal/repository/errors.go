package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an id resolves to no row
var ErrNotFound = gorm.ErrRecordNotFound

// IsNotFound reports whether err means the row does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConstraintViolation reports whether err came from a uniqueness or
// referential constraint. The drivers in play (pgx through gorm's postgres
// driver, sqlite in tests) surface these only as driver-specific errors, so
// this matches on the shared vocabulary of their messages.
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "violates foreign key")
}
