package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnknownIdentity is returned when a scanned token matches no employee.
	ErrUnknownIdentity = errors.New("employee not found for scanned code")
	// ErrEmployeeNotFound is returned when an employee id does not resolve.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrEmailTaken is returned when an identity already exists for an email.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrEmptyToken is returned when a scan delivers an empty token.
	ErrEmptyToken = errors.New("empty identity token")
	// ErrScanInFlight is returned when a resolution is already in progress.
	ErrScanInFlight = errors.New("a scan is already being processed")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNegativeRate is returned when an hourly rate is below zero.
	ErrNegativeRate = errors.New("hourly rate must not be negative")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUnknownIdentity):
		return NewHTTPError(http.StatusNotFound, err.Error(), "UNKNOWN_IDENTITY")
	case errors.Is(err, ErrEmployeeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "EMPLOYEE_NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrEmptyToken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_TOKEN")
	case errors.Is(err, ErrScanInFlight):
		return NewHTTPError(http.StatusTooManyRequests, err.Error(), "SCAN_IN_FLIGHT")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrNegativeRate):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_RATE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
