package processo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedKey indicates that a key does not match the "<int>-<rest>" shape.
	ErrMalformedKey = errors.New("malformed processo key")

	// ErrMissingColumns indicates that a table lacks columns required by a report.
	ErrMissingColumns = errors.New("missing required columns")

	// ErrInvalidFilter indicates an unknown parity filter name.
	ErrInvalidFilter = errors.New("invalid parity filter")
)

// MalformedKeyError is returned when a key has no "-" separator or a non-numeric prefix.
type MalformedKeyError struct {
	Key string
}

// Error implements the error interface.
func (e *MalformedKeyError) Error() string {
	return fmt.Sprintf("malformed processo key %q: expected <number>-<rest>", e.Key)
}

// Is implements errors.Is support.
func (e *MalformedKeyError) Is(target error) bool {
	return target == ErrMalformedKey
}

// MissingColumnsError lists the required columns absent from a table.
type MissingColumnsError struct {
	Columns []string
}

// Error implements the error interface.
func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("table is missing required columns: %s", strings.Join(e.Columns, ", "))
}

// Is implements errors.Is support.
func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrMissingColumns
}
