package errs

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel error for all ConflictError instances.
// Use errors.Is(err, ErrConflict) to classify uniqueness violations.
var ErrConflict = errors.New("conflict")

// ConflictError indicates a uniqueness-constraint violation, such as a
// duplicate (courier, region) pair produced by a race. Coordinators surface
// it unmodified; retrying is the caller's decision.
type ConflictError struct {
	ParamName string
	Cause     error
}

// NewConflictError creates a ConflictError without an underlying cause.
func NewConflictError(paramName string) *ConflictError {
	return &ConflictError{ParamName: paramName}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(paramName string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConflict, e.ParamName))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
