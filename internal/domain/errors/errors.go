// Package errors defines the application error taxonomy. Every error that
// crosses the usecase boundary is one of these typed values, carrying enough
// detail for the HTTP layer to pick a status code and a user-safe message.
package errors

import (
	"net/http"

	"pantry/internal/errors"
)

// AppError is the contract for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Field() string     // Offending input field, if any
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	field     string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// NewValidationError creates a validation error for a specific input field.
// It is also used to mask internal failures (database, token generation) so
// that lower-layer error detail never reaches the client.
func NewValidationError(field, reason string) *BaseError {
	return &BaseError{
		httpCode:  http.StatusBadRequest,
		errorCode: "VALIDATION_FAILED",
		message:   "Validation failed",
		field:     field,
		details:   reason,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches errors by business code, so copies produced by WithField or
// WithDetails still compare equal to their predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Field returns the offending input field, or "" when not field-related.
func (e *BaseError) Field() string {
	return e.field
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithField returns a copy of the error bound to an input field.
func (e *BaseError) WithField(field string) *BaseError {
	cloned := *e
	cloned.field = field

	return &cloned
}

// WithDetails returns a copy of the error with detailed information.
func (e *BaseError) WithDetails(details string) *BaseError {
	cloned := *e
	cloned.details = details

	return &cloned
}

// Predefined error types.
var (
	// ErrValidationFailed is the generic shape-validation failure. Prefer
	// NewValidationError to name the offending field.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failed",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"User already exists",
		"Username is already taken",
	)

	// ErrInvalidCredentials deliberately merges "no such user" and "wrong
	// password" so the response never reveals whether a username exists.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"Username or password is incorrect",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"User does not exist",
	)

	ErrPasswordTooWeak = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_WEAK",
		"Password too weak",
		"Password does not meet security requirements",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token expired",
		"JWT token has expired",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid token",
		"JWT token is invalid or malformed",
	)

	// ErrAccountLocked is declared for the lockout extension point. No
	// lockout logic exists yet, so nothing returns it.
	ErrAccountLocked = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_LOCKED",
		"Account locked",
		"Account has been locked due to multiple failed login attempts",
	)

	ErrRateLimitExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMIT_EXCEEDED",
		"Rate limit exceeded",
		"Too many authentication attempts, please try again later",
	)

	// Recipe-related errors.
	ErrRecipeNotFound = NewBaseError(
		http.StatusNotFound,
		"RECIPE_NOT_FOUND",
		"Recipe not found",
		"Recipe does not exist",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
