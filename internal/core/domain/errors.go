package domain

import "net/http"

// ValidationErrorItem is a single field-level validation failure. Items are
// reported in field declaration order.
type ValidationErrorItem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a classified failure with a fixed HTTP status and machine
// error code. Anything that is not an APIError collapses to a generic 500
// in the error handler.
type APIError struct {
	Status           int
	Message          string
	Code             string
	ValidationErrors []ValidationErrorItem
}

func (e *APIError) Error() string {
	return e.Message
}

func BadRequest(message, code string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message, Code: code}
}

func Unauthorized(message, code string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: message, Code: code}
}

func Forbidden(message, code string) *APIError {
	return &APIError{Status: http.StatusForbidden, Message: message, Code: code}
}

func NotFound(message, code string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message, Code: code}
}

func TooManyRequests(message, code string) *APIError {
	return &APIError{Status: http.StatusTooManyRequests, Message: message, Code: code}
}

func Internal(message, code string) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: message, Code: code}
}

// NewValidationError wraps field-level items into the canonical 400 response.
func NewValidationError(items []ValidationErrorItem) *APIError {
	return &APIError{
		Status:           http.StatusBadRequest,
		Message:          "Validation error",
		Code:             "VALIDATION_ERROR",
		ValidationErrors: items,
	}
}
