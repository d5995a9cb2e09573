package errs

import (
	"fmt"
	"net/http"
)

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeAuthorization
	ErrorTypeConflict
	ErrorTypeServer
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypeAuthorization:
		return "authorization"
	case ErrorTypeConflict:
		return "conflict"
	case ErrorTypeServer:
		return "server"
	default:
		return "unknown"
	}
}

// HTTPStatus maps the error type to an HTTP status code
func (et ErrorType) HTTPStatus() int {
	switch et {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeAuthorization:
		return http.StatusForbidden
	case ErrorTypeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// Validation creates a validation error
func Validation(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

// NotFound creates a not found error
func NotFound(message string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: message}
}

// Authorization creates an authorization error
func Authorization(message string) *AppError {
	return &AppError{Type: ErrorTypeAuthorization, Message: message}
}

// Conflict creates a conflict error for duplicate unique fields
func Conflict(message string) *AppError {
	return &AppError{Type: ErrorTypeConflict, Message: message}
}

// Server wraps an unexpected error
func Server(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeServer, Message: message, Cause: cause}
}
