// Package errors defines the AppError envelope returned by the portfolio
// API. Services return these; middleware.WriteError renders them.
package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Validationf returns ErrValidation with a record-path message such as
// "assets[2]: ticker is required for STOCK assets".
func Validationf(format string, args ...interface{}) *AppError {
	return WithMessage(ErrValidation, fmt.Sprintf(format, args...))
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Portfolio errors.
var (
	ErrValidation               = &AppError{Code: "VALIDATION_FAILED", Message: "Portfolio validation failed", StatusCode: http.StatusUnprocessableEntity}
	ErrUnknownRetirementAccount = &AppError{Code: "UNKNOWN_RETIREMENT_ACCOUNT", Message: "Asset references a retirement account that does not exist", StatusCode: http.StatusUnprocessableEntity}
	ErrUnsupportedJurisdiction  = &AppError{Code: "UNSUPPORTED_JURISDICTION", Message: "Tax estimation is not available for this state", StatusCode: http.StatusBadRequest}
)
