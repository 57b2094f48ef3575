package errors

import (
	"net/http"

	"reminder/internal/errors"
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

// Predefined error types
var (
	// Request-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"請求參數驗證失敗",
		"",
	)

	ErrInvalidReminderPath = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REMINDER_PATH",
		"無效的提醒路徑",
		"",
	)

	// Reminder-related errors
	ErrReminderNotFound = NewBaseError(
		http.StatusNotFound,
		"REMINDER_NOT_FOUND",
		"找不到該提醒",
		"",
	)

	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"找不到該通知",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"未授權的請求",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// StoreError represents a failed read or write against a backing store, implementing the AppError interface
type StoreError struct {
	err     error
	details string
}

// NewStoreError creates a store-related error
func NewStoreError(err error, details string) AppError {
	return &StoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, "store operation failed: "+e.details).Error()
}

// Unwrap exposes the underlying store error
func (e *StoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return "STORE_OPERATION_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return "資料存取失敗"
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	return e.details
}

// IsStoreError reports whether err carries a StoreError
func IsStoreError(err error) bool {
	var storeErr *StoreError

	return errors.As(err, &storeErr)
}
