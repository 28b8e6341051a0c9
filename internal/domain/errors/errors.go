package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy of the error of the same kind carrying a
// different user-facing message.
func (e *BaseError) WithMessage(format string, args ...any) *BaseError {
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}

	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches errors of the same kind, so a customised message still
// satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode && t.httpCode == e.httpCode
}

// Error kinds. Every error surfaced to a client is one of these, possibly
// with a more specific message attached through WithMessage.
var (
	ErrBadRequest = NewBaseError(
		http.StatusBadRequest,
		"BAD_REQUEST",
		"Bad request",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"User with this email already exists",
		"",
	)

	ErrPhoneAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PHONE_ALREADY_EXISTS",
		"User with this phone number already exists",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrInvalidAccessToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_ACCESS_TOKEN",
		"Invalid or expired access token",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusForbidden,
		"REFRESH_TOKEN_INVALID",
		"Access denied",
		"",
	)

	// Onboarding-related errors
	ErrAlreadyOnboarded = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_ONBOARDED",
		"User already has a farm",
		"",
	)

	ErrNoFarms = NewBaseError(
		http.StatusBadRequest,
		"NO_FARMS",
		"No farms found for this user. Please create a farm first.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Input validation failed",
		"",
	)
)

// Rewrap passes application errors through untouched and turns anything
// else into a BadRequest that names the failed action and carries the
// underlying message.
func Rewrap(err error, action string) error {
	if err == nil {
		return nil
	}

	var dbErr *DatabaseExecuteError
	if errors.As(err, &dbErr) {
		return ErrBadRequest.WithMessage("Failed to %s: %s", action, dbErr.err.Error())
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return err
	}

	return ErrBadRequest.WithMessage("Failed to %s: %s", action, err.Error())
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
