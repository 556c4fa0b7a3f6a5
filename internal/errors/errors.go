package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of client-side application error.
type ErrorCode string

const (
	// ErrCodeNetwork indicates no response was received from the backend.
	ErrCodeNetwork ErrorCode = "network"
	// ErrCodeAuth indicates the session credential was rejected (401, or a
	// 403 whose message marks the account as blocked). Destructive: handlers
	// clear the session when they see it.
	ErrCodeAuth ErrorCode = "auth"
	// ErrCodePermission indicates the caller lacks access to the resource
	// (403 without a blocked-account message). Report only, no session change.
	ErrCodePermission ErrorCode = "permission"
	// ErrCodeValidation indicates the request or response payload was
	// rejected; the server's message is surfaced verbatim. Also covers
	// response decode failures.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeServer indicates a 5xx backend failure. Retry is manual.
	ErrCodeServer ErrorCode = "server"
)

// AppError represents a structured client error with a code, message, and
// optional cause. It supports error wrapping for use with errors.Is/As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message. For validation errors this
	// is the server's message, unmodified, so callers can display it.
	Message string
	// Status is the HTTP status that produced the error, when one exists.
	Status int
	// Cause is the underlying error that caused this error (optional)
	Cause error
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

// Network creates a Network error wrapping the transport failure.
func Network(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeNetwork, Message: message, Cause: cause}
}

// Auth creates an Auth error.
func Auth(message string) *AppError {
	return &AppError{Code: ErrCodeAuth, Message: message}
}

// AuthStatus creates an Auth error carrying the HTTP status.
func AuthStatus(message string, status int) *AppError {
	return &AppError{Code: ErrCodeAuth, Message: message, Status: status}
}

// Permission creates a Permission error.
func Permission(message string, status int) *AppError {
	return &AppError{Code: ErrCodePermission, Message: message, Status: status}
}

// Validation creates a Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// Validationf creates a Validation error with formatted message.
func Validationf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationStatus creates a Validation error carrying the HTTP status.
func ValidationStatus(message string, status int) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Status: status}
}

// Decode wraps a payload decode failure as a Validation error. Missing
// expected fields are a contract breach, not a silently-defaulted value.
func Decode(cause error) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: "unexpected response shape", Cause: cause}
}

// Server creates a Server error carrying the HTTP status.
func Server(message string, status int) *AppError {
	return &AppError{Code: ErrCodeServer, Message: message, Status: status}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsNetwork checks if an error is a Network error.
func IsNetwork(err error) bool {
	return isCode(err, ErrCodeNetwork)
}

// IsAuth checks if an error is an Auth error.
func IsAuth(err error) bool {
	return isCode(err, ErrCodeAuth)
}

// IsPermission checks if an error is a Permission error.
func IsPermission(err error) bool {
	return isCode(err, ErrCodePermission)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsServer checks if an error is a Server error.
func IsServer(err error) bool {
	return isCode(err, ErrCodeServer)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// UserMessage returns the display message for an error: the AppError message
// when present, otherwise the raw error text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
