package errors

import (
	"net/http"

	"plantcare/internal/errors"
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

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithMessage and WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return other.errorCode == e.errorCode
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

// WithMessage replaces the user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Input validation; the message names the first missing or invalid field
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	// Media host errors
	ErrUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_FAILED",
		"Failed to upload image. Please try again.",
		"",
	)

	// Product errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	// User errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrRecordDecodeFailed = NewBaseError(
		http.StatusInternalServerError,
		"RECORD_DECODE_FAILED",
		"Stored record could not be read",
		"",
	)

	ErrActivityNotFound = NewBaseError(
		http.StatusNotFound,
		"ACTIVITY_NOT_FOUND",
		"Activity not found",
		"",
	)

	// Authentication errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_FAILED",
		"Authentication required",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// NewValidationError returns a validation failure with a field-specific message
func NewValidationError(message string) *BaseError {
	return ErrValidationFailed.WithMessage(message)
}

// PersistenceError is a failed write or read against the realtime store.
// Its message is the store's own error text.
type PersistenceError struct {
	err error
}

func NewPersistenceError(err error) AppError {
	return &PersistenceError{err: err}
}

func (e *PersistenceError) Error() string {
	return errors.Wrap(e.err, "store operation failed").Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.err
}

func (e *PersistenceError) HTTPCode() int {
	return http.StatusBadGateway
}

func (e *PersistenceError) ErrorCode() string {
	return "PERSISTENCE_FAILED"
}

func (e *PersistenceError) Message() string {
	return errors.RootMessage(e.err)
}

func (e *PersistenceError) Details() string {
	return ""
}

// AuthError carries a message produced by the authentication provider
type AuthError struct {
	httpCode  int
	errorCode string
	err       error
}

// NewAuthError is used when a presented credential is rejected
func NewAuthError(err error) AppError {
	return &AuthError{httpCode: http.StatusUnauthorized, errorCode: "AUTH_FAILED", err: err}
}

// NewAuthRequestError is used when sign-in, sign-up or reset is refused
func NewAuthRequestError(err error) AppError {
	return &AuthError{httpCode: http.StatusBadRequest, errorCode: "AUTH_REQUEST_FAILED", err: err}
}

func (e *AuthError) Error() string {
	return errors.Wrap(e.err, "auth provider rejected request").Error()
}

func (e *AuthError) Unwrap() error {
	return e.err
}

func (e *AuthError) HTTPCode() int {
	return e.httpCode
}

func (e *AuthError) ErrorCode() string {
	return e.errorCode
}

func (e *AuthError) Message() string {
	return errors.RootMessage(e.err)
}

func (e *AuthError) Details() string {
	return ""
}
