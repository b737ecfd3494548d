package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing, invalid or expired session.
var ErrUnauthorized = errors.New("unauthorized")

// ErrMalformedRow indicates a stored row that could not be decoded into its entity.
var ErrMalformedRow = errors.New("malformed row")

// AppError carries a machine-readable code and a user-facing message
// alongside the underlying error.
type AppError struct {
	Code    string
	Message string
	Details []string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError wraps ErrValidation with a user-facing message.
func NewValidationError(message string) *AppError {
	return NewAppError("VALIDATION_ERROR", message, ErrValidation)
}

// NewValidationErrors wraps ErrValidation with every collected message.
// The joined messages form the user-facing message.
func NewValidationErrors(messages []string) *AppError {
	err := NewValidationError(strings.Join(messages, ", "))
	err.Details = append([]string(nil), messages...)
	return err
}

// DetailsOf returns the individual messages of a multi-message error, or nil.
func DetailsOf(err error) []string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Details
	}
	return nil
}

// NewNotFoundError wraps ErrNotFound for the named resource.
func NewNotFoundError(resource, id string) *AppError {
	return NewAppError("NOT_FOUND", fmt.Sprintf("%s %s not found", resource, id), ErrNotFound)
}

// MessageOf returns the user-facing message of err: the AppError message when
// there is one, otherwise err.Error().
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
