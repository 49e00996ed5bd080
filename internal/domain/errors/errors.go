package errors

import (
	"net/http"
	"slices"

	"restapi/internal/errors"
)

// Error kinds exposed to clients in the error envelope.
const (
	KindAuthFailure         = "AUTH_FAILURE"
	KindValidationFailed    = "VALIDATION_FAILED"
	KindConflict            = "CONFLICT"
	KindForbidden           = "FORBIDDEN"
	KindNotFound            = "NOT_FOUND"
	KindConstraintViolation = "CONSTRAINT_VIOLATION"
	KindInvalidInput        = "INVALID_INPUT"
	KindInternal            = "INTERNAL_ERROR"
	KindDatabaseExecute     = "DATABASE_EXECUTE_FAILED"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Error kind
	Message() string   // Client-facing message
	Details() []string // Itemized messages, may be empty
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   []string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details ...string) *BaseError {
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

// ErrorCode returns the error kind
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns itemized error messages
func (e *BaseError) Details() []string {
	return slices.Clone(e.details)
}

// WithDetails returns a copy carrying the given itemized messages.
func (e *BaseError) WithDetails(details ...string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   slices.Clone(details),
	}
}

// Is matches any BaseError with the same kind and status, so copies made by
// WithDetails still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.httpCode == t.httpCode && e.errorCode == t.errorCode
}

// Predefined error types
var (
	ErrAccessDenied = NewBaseError(
		http.StatusUnauthorized,
		KindAuthFailure,
		"Access Denied",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		KindValidationFailed,
		"Validation Failed",
	)

	ErrInvalidRequestBody = NewBaseError(
		http.StatusBadRequest,
		KindInvalidInput,
		"Invalid request body",
	)

	ErrEmailAlreadyInUse = NewBaseError(
		http.StatusBadRequest,
		KindConflict,
		"Conflict",
		"The email address you entered is already in use",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		KindForbidden,
		"Forbidden",
	)

	ErrRouteNotFound = NewBaseError(
		http.StatusNotFound,
		KindNotFound,
		"Route Not Found",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		KindInternal,
		"Internal Server Error",
	)
)

// ConstraintError reports rows rejected by the store's own field constraints.
type ConstraintError struct {
	messages []string
}

// NewConstraintError creates a persistence constraint failure carrying one message per violated constraint.
func NewConstraintError(messages ...string) AppError {
	return &ConstraintError{messages: slices.Clone(messages)}
}

// Error implements the error interface
func (e *ConstraintError) Error() string {
	if len(e.messages) == 0 {
		return "constraint violation"
	}

	return "constraint violation: " + e.messages[0]
}

// HTTPCode returns the HTTP status code
func (e *ConstraintError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the error kind
func (e *ConstraintError) ErrorCode() string {
	return KindConstraintViolation
}

// Message returns the user-friendly error message
func (e *ConstraintError) Message() string {
	return "Constraint Violation"
}

// Details returns the violated constraint messages
func (e *ConstraintError) Details() []string {
	return slices.Clone(e.messages)
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
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error to errors.Is / errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the error kind
func (e *DatabaseExecuteError) ErrorCode() string {
	return KindDatabaseExecute
}

// Message returns the user-friendly error message.
// Driver and query text stay out of it.
func (e *DatabaseExecuteError) Message() string {
	return "Internal Server Error"
}

// Details is always empty; the cause is only logged.
func (e *DatabaseExecuteError) Details() []string {
	return nil
}
