package finboard

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup of an id or category that does not
// exist. Absence is an expected case when filtering, so callers check
// it with errors.Is rather than treating it as fatal.
var ErrNotFound = errors.New("not found")

// ValidationError reports a malformed input to a Store mutation. The
// store is left unchanged when one is returned.
type ValidationError struct {
	Field  string // offending field name
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
