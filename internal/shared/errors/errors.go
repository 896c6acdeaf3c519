package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies application errors for handler status mapping.
type ErrorType string

const (
	ErrorTypeNotFound        ErrorType = "NOT_FOUND_ERROR"
	ErrorTypeInvalidID       ErrorType = "INVALID_ID_ERROR"
	ErrorTypeInvalidFileType ErrorType = "INVALID_FILE_TYPE_ERROR"
	ErrorTypeUpdateFailed    ErrorType = "UPDATE_FAILED_ERROR"
	ErrorTypeValidation      ErrorType = "VALIDATION_ERROR"
	ErrorTypeInternal        ErrorType = "INTERNAL_ERROR"
)

// Common application errors
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidID       = errors.New("invalid document ID")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrUpdateFailed    = errors.New("update failed")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternalServer  = errors.New("internal server error")
)

// AppError represents a custom application error with context
type AppError struct {
	Type     ErrorType `json:"type"`
	Message  string    `json:"message"`
	HTTPCode int       `json:"-"`
	Cause    error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause adds the underlying cause
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(errorType ErrorType, message string, httpCode int) *AppError {
	return &AppError{
		Type:     errorType,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// NewNotFoundError creates a not found error for the given resource
func NewNotFoundError(resource string) *AppError {
	return NewAppError(ErrorTypeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

// NewInvalidIDError creates an error for a malformed document identifier
func NewInvalidIDError(resource string) *AppError {
	return NewAppError(ErrorTypeInvalidID, fmt.Sprintf("Invalid %s ID", resource), http.StatusBadRequest)
}

// NewInvalidFileTypeError creates an error for a disallowed upload content type
func NewInvalidFileTypeError(contentType string) *AppError {
	e := NewAppError(ErrorTypeInvalidFileType, "Invalid file type", http.StatusBadRequest)
	if contentType != "" {
		e.Message = fmt.Sprintf("Invalid file type: %s", contentType)
	}
	return e
}

// NewUpdateFailedError creates an error for a patch that modified nothing
func NewUpdateFailedError() *AppError {
	return NewAppError(ErrorTypeUpdateFailed, "Update failed", http.StatusBadRequest)
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return NewAppError(ErrorTypeValidation, message, http.StatusBadRequest)
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *AppError {
	return NewAppError(ErrorTypeInternal, message, http.StatusInternalServerError)
}

// WrapError wraps an error with context, passing AppErrors through untouched
func WrapError(err error, message string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError(message).WithCause(err)
}

// HTTPStatus returns the status code an error should map to at the handler
// boundary. Unknown errors map to 500.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidFileType),
		errors.Is(err, ErrUpdateFailed), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == ErrorTypeNotFound
	}
	return errors.Is(err, ErrNotFound)
}

// IsInvalidID checks if an error reports a malformed identifier
func IsInvalidID(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == ErrorTypeInvalidID
	}
	return errors.Is(err, ErrInvalidID)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == ErrorTypeValidation ||
			appErr.Type == ErrorTypeInvalidFileType ||
			appErr.Type == ErrorTypeUpdateFailed
	}
	return false
}
