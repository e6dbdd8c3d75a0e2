package service

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the store has no record for the requested user.
// Callers are expected to seed defaults rather than surface it.
var ErrNotFound = errors.New("not found")

// ValidationError reports a malformed input field. It is raised at
// construction/update time; the pure computations never fail on valid-shaped
// data.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
