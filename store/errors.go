package store

import (
	"errors"
)

var (
	// ErrNotFound is returned when a lookup by id matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique constraint rejects a write,
	// e.g. creating a tag whose name already exists.
	ErrDuplicate = errors.New("duplicate record")
)

// ValidationError reports a required field that was absent or empty.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}
