package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn indicates that a required column is absent from a table.
	ErrMissingColumn = errors.New("missing column")

	// ErrInvalidMode indicates an unknown reconciliation mode or policy.
	ErrInvalidMode = errors.New("invalid reconcile mode")
)

// MissingColumnError names the table and the column it lacks.
type MissingColumnError struct {
	Table  string
	Column string
}

// Error implements the error interface.
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("table %s is missing column %q", e.Table, e.Column)
}

// Is implements errors.Is support.
func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}
