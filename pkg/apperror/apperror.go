package apperror

import (
	"errors"
	"fmt"
)

// ErrorType classifies application errors so the delivery layer can map them
// to a status without string matching.
type ErrorType string

const (
	// TypeValidation marks malformed input (phone, email, schedule, required fields)
	TypeValidation ErrorType = "VALIDATION"

	// TypeConflict marks a duplicate appointment slot or login name
	TypeConflict ErrorType = "CONFLICT"

	// TypeNotFound marks a referenced record that does not exist
	TypeNotFound ErrorType = "NOT_FOUND"

	// TypeUnauthorized marks missing or wrong credentials
	TypeUnauthorized ErrorType = "UNAUTHORIZED"

	// TypeStorage marks a serialization or persistence failure
	TypeStorage ErrorType = "STORAGE"

	// TypeInternal marks anything else
	TypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Type: TypeValidation, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Type: TypeConflict, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Type: TypeNotFound, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Type: TypeUnauthorized, Message: message}
}

// NewStorageError wraps a backend or encoding failure. It is never retried.
func NewStorageError(message string, err error) *AppError {
	return &AppError{Type: TypeStorage, Message: message, Err: err}
}

func NewInternalError(message string, err error) *AppError {
	return &AppError{Type: TypeInternal, Message: message, Err: err}
}

// TypeOf returns the type of the first AppError in err's chain, or
// TypeInternal when there is none.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return TypeInternal
}

// IsType reports whether err carries an AppError of the given type.
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}

// MessageOf returns the human readable message of the first AppError in
// err's chain, falling back to err.Error().
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
