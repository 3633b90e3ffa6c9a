package errors

import (
	"net/http"

	"places/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// Is matches any BaseError carrying the same business code, so a copy made by
// WithDetails still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Place-related errors
	ErrPlaceNotFound = NewBaseError(
		http.StatusNotFound,
		"PLACE_NOT_FOUND",
		"Place not found",
		"",
	)

	ErrPlaceAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PLACE_ALREADY_EXISTS",
		"A place with this ID already exists",
		"",
	)

	ErrPlaceValidation = NewBaseError(
		http.StatusBadRequest,
		"PLACE_VALIDATION_FAILED",
		"Place data is invalid",
		"",
	)

	ErrPlaceCreateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PLACE_CREATE_FAILED",
		"Failed to add place",
		"",
	)

	ErrPlaceUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PLACE_UPDATE_FAILED",
		"Failed to update place",
		"",
	)

	ErrPlaceDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"PLACE_DELETE_FAILED",
		"Failed to delete place",
		"",
	)

	ErrInvalidQuery = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUERY",
		"Invalid query parameters",
		"",
	)

	// Mirror-related errors
	ErrMirrorUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"MIRROR_UNAVAILABLE",
		"Excel mirror is disabled or unavailable",
		"",
	)

	ErrMirrorSyncFailed = NewBaseError(
		http.StatusInternalServerError,
		"MIRROR_SYNC_FAILED",
		"Failed to synchronise the Excel mirror",
		"",
	)

	// API test harness errors
	ErrCollectionNotFound = NewBaseError(
		http.StatusNotFound,
		"COLLECTION_NOT_FOUND",
		"Collection not found",
		"",
	)

	ErrInvalidCollection = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_COLLECTION",
		"Collection file is not valid JSON",
		"",
	)

	ErrEndpointNotFound = NewBaseError(
		http.StatusNotFound,
		"ENDPOINT_NOT_FOUND",
		"Endpoint not found in collection",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found in collection",
		"",
	)

	ErrMissingParameters = NewBaseError(
		http.StatusBadRequest,
		"MISSING_PARAMETERS",
		"Missing required path parameters",
		"",
	)

	ErrTokenRefreshFailed = NewBaseError(
		http.StatusBadGateway,
		"TOKEN_REFRESH_FAILED",
		"Failed to obtain a new bearer token",
		"",
	)

	// Analytics errors
	ErrChartNotFound = NewBaseError(
		http.StatusNotFound,
		"CHART_NOT_FOUND",
		"Unknown chart",
		"",
	)

	// Generic errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

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

// Unwrap exposes the driver error to errors.Is / errors.As.
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
