// Package errors defines the typed application error shared by the job editor packages.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a ticker, row or document could not be found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeValidation indicates a row failed field or record validation.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeConflict indicates an operation conflicts with the current edit state.
	ErrCodeConflict ErrorCode = "conflict"
	// ErrCodeConfigLoad indicates the job or UI config file is missing or malformed.
	ErrCodeConfigLoad ErrorCode = "config_load"
	// ErrCodeCatalogLoad indicates the ticker catalog is missing or malformed.
	ErrCodeCatalogLoad ErrorCode = "catalog_load"
	// ErrCodeInternal indicates an unexpected failure (encoding, file write).
	ErrCodeInternal ErrorCode = "internal"
)

// AppError represents a structured application error with a code, message, and optional cause.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the job field that caused the error (optional, for validation errors)
	Field string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NotFoundf creates a new NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates a new Conflict error.
func Conflict(message string) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message}
}

// Conflictf creates a new Conflict error with formatted message.
func Conflictf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field}
}

// ConfigLoad wraps a failure to read or parse a config file.
func ConfigLoad(path string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeConfigLoad,
		Message: fmt.Sprintf("load config %s", path),
		Cause:   cause,
	}
}

// CatalogLoad wraps a failure to read or parse the ticker catalog.
func CatalogLoad(path string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeCatalogLoad,
		Message: fmt.Sprintf("load catalog %s", path),
		Cause:   cause,
	}
}

// Internalf creates a new Internal error with formatted message.
func Internalf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsConflict checks if an error is a Conflict error.
func IsConflict(err error) bool {
	return isCode(err, ErrCodeConflict)
}

// IsConfigLoad checks if an error is a ConfigLoad error.
func IsConfigLoad(err error) bool {
	return isCode(err, ErrCodeConfigLoad)
}

// IsCatalogLoad checks if an error is a CatalogLoad error.
func IsCatalogLoad(err error) bool {
	return isCode(err, ErrCodeCatalogLoad)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field from an error, or empty string if not an AppError or no field set.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}
