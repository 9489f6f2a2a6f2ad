package dto

import "time"

// ErrorKind is the machine-readable classification tag carried on every error
// response at the API boundary.
type ErrorKind string

// Error kinds
const (
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindNotFound   ErrorKind = "not_found"
	ErrorKindDuplicate  ErrorKind = "duplicate"
	ErrorKindState      ErrorKind = "state"
	ErrorKindInternal   ErrorKind = "internal"
)

// ErrorDetail represents detailed error information.
type ErrorDetail struct {
	Kind    ErrorKind   `json:"kind" example:"validation"`
	Message string      `json:"message" example:"difficulty level must be between 1 and 5"`
	Field   string      `json:"field,omitempty" example:"difficultyLevel"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse represents the standard error response structure.
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp" example:"2026-04-23T12:01:05.123Z"`
}

// NewErrorDetail creates a new error detail.
func NewErrorDetail(kind ErrorKind, message string) *ErrorDetail {
	return &ErrorDetail{
		Kind:    kind,
		Message: message,
	}
}

// WithField adds a field name to the error detail.
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithDetails adds additional details to the error.
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates a standard error response.
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now().UTC(),
	}
}
