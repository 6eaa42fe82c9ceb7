package errs

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel for conditional-update failures: the write's
// precondition no longer held at write time. The caller must refresh its
// view; the server never auto-retries a status transition.
var ErrConflict = errors.New("conflict on transition")

// ConflictError indicates that a guarded update found the stored record no
// longer matching the expected precondition, e.g. an order that was accepted
// by another courier between read and write.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying
// cause.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrConflict, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConflict, e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
