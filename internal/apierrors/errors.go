package apierrors

import (
	"fmt"
	"net/http"
)

// Stable error codes returned to API clients
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeInvalidState     = "INVALID_STATE"
	CodeNotFound         = "NOT_FOUND"
	CodeCapacityExceeded = "CAPACITY_EXCEEDED"
	CodePolicyConflict   = "POLICY_CONFLICT"
	CodeUnavailable      = "SERVICE_UNAVAILABLE"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeInternalError    = "INTERNAL_ERROR"
)

// APIError is an error that already knows its HTTP representation
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	// Err is logged but never sent to the client.
	Err error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return e.Code + ": " + e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

func ServiceUnavailable(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusServiceUnavailable,
		Code:       CodeUnavailable,
		Message:    "The service is temporarily unavailable. Please try again later.",
		Err:        err,
	}
}

// InternalError never exposes internal details
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
