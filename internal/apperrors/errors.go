package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrReferenceNotFound indicates that a referenced factory or product id does not exist.
// Raised before any write touches the store.
var ErrReferenceNotFound = errors.New("invalid reference")

// ErrUnmappedGrade indicates a gap in the static output-to-input grade map.
// This is a configuration error, not retryable.
var ErrUnmappedGrade = errors.New("output grade has no mapped input grade")

// ErrAtomicity indicates that a multi-row recording transaction failed and
// was rolled back in full. The underlying cause is attached via wrapping.
var ErrAtomicity = errors.New("recording transaction failed")

// NewAtomicityError wraps the underlying cause of a failed recording
// transaction so callers can match on ErrAtomicity while keeping the cause.
func NewAtomicityError(op string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrAtomicity, op, cause)
}

// AppError carries an HTTP-ish status code alongside the wrapped cause.
// Repositories and services use it for failures that are not covered by one
// of the sentinel errors above.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
