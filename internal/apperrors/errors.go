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

// ErrForbidden indicates that the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrAlreadyClosed indicates that a closing already exists for the
// (location, work date, turn) key. Not retryable with the same key.
var ErrAlreadyClosed = errors.New("turn already closed")

// ErrNotYetEligible indicates that a closing was attempted outside its
// permitted time window. The caller may retry later.
var ErrNotYetEligible = errors.New("closing not yet eligible")

// AppError carries an HTTP-ish status code alongside a message and an
// optional wrapped cause.
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

// NewAppError creates a generic AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewConflictError creates an AppError that matches errors.Is(err, ErrDuplicate).
func NewConflictError(message string) *AppError {
	return &AppError{Code: 409, Message: message, Err: ErrDuplicate}
}

// NewValidationFailedError creates an AppError that matches errors.Is(err, ErrValidation).
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

// NewAlreadyClosedError creates an AppError that matches errors.Is(err, ErrAlreadyClosed).
func NewAlreadyClosedError(message string) *AppError {
	return &AppError{Code: 409, Message: message, Err: ErrAlreadyClosed}
}

// NewNotYetEligibleError creates an AppError that matches errors.Is(err, ErrNotYetEligible).
// The message must carry the human-readable remaining-time estimate.
func NewNotYetEligibleError(message string) *AppError {
	return &AppError{Code: 422, Message: message, Err: ErrNotYetEligible}
}
