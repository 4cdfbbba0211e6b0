package errors

import (
	"net/http"

	"vora/internal/errors"
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

// Is matches any BaseError with the same business error code, so errors
// derived through WithDetails still match their predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"This piece is no longer in the collection",
		"",
	)

	ErrInvalidCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"Unknown collection",
		"",
	)

	// Navigation errors
	ErrInvalidPage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAGE",
		"Unknown page",
		"",
	)

	ErrInvalidOverlay = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OVERLAY",
		"Unknown overlay",
		"",
	)

	ErrUnsupportedCurrency = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_CURRENCY",
		"Currency is not supported",
		"",
	)

	// Session errors
	ErrSessionNotFound = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_NOT_FOUND",
		"Your session has expired, please reload",
		"",
	)

	ErrInvalidSessionToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_SESSION_TOKEN",
		"Invalid or expired session token",
		"",
	)

	ErrInvalidAccountType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACCOUNT_TYPE",
		"Unknown account type",
		"",
	)

	// Dashboard errors
	ErrDashboardAccessDenied = NewBaseError(
		http.StatusForbidden,
		"DASHBOARD_ACCESS_DENIED",
		"The partner dashboard requires a business account",
		"",
	)

	ErrListingOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"LISTING_OWNERSHIP_VIOLATION",
		"You can only manage your own listings",
		"",
	)

	// Checkout errors
	ErrEmptyBag = NewBaseError(
		http.StatusConflict,
		"EMPTY_BAG",
		"Your bag is empty",
		"",
	)

	ErrCheckoutStepInvalid = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_STEP_INVALID",
		"This checkout step is not available",
		"",
	)

	ErrShippingIncomplete = NewBaseError(
		http.StatusBadRequest,
		"SHIPPING_INCOMPLETE",
		"First name, last name and shipping address are required",
		"",
	)

	// Tracking errors
	ErrTrackingReferenceRequired = NewBaseError(
		http.StatusBadRequest,
		"TRACKING_REFERENCE_REQUIRED",
		"An order reference is required",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many requests, please slow down",
		"",
	)
)
