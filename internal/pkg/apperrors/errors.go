package apperrors

import "errors"

// Core error kinds. Every failure surfaced to a caller wraps one of these so
// the HTTP and CLI layers can classify it with errors.Is.
var (
	// ErrValidationFailed means the input violates a field constraint and the
	// caller must correct it before retrying.
	ErrValidationFailed = errors.New("validation failed")
	// ErrNotFound means a referenced id does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrDuplicate means a uniqueness constraint was violated.
	ErrDuplicate = errors.New("resource already exists")
	// ErrStateConflict means the operation is invalid for the entity's current
	// lifecycle state, e.g. closing an already-closed session.
	ErrStateConflict = errors.New("invalid state for operation")
)

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found")
)

// Study session errors
var (
	ErrSessionNotFound      = errors.New("study session not found")
	ErrSessionAlreadyClosed = errors.New("study session already closed")
)

// Learning goal errors
var (
	ErrGoalNotFound         = errors.New("learning goal not found")
	ErrGoalAlreadyCompleted = errors.New("learning goal already completed")
)

// User errors
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
)

// Kind maps an error onto one of the four core kinds, or nil if it matches
// none. Entity-specific sentinels collapse onto the core kinds here so callers
// only need a single switch.
func Kind(err error) error {
	switch {
	case errors.Is(err, ErrValidationFailed):
		return ErrValidationFailed
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrCourseNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrGoalNotFound),
		errors.Is(err, ErrUserNotFound):
		return ErrNotFound
	case errors.Is(err, ErrDuplicate),
		errors.Is(err, ErrUsernameExists),
		errors.Is(err, ErrEmailExists):
		return ErrDuplicate
	case errors.Is(err, ErrStateConflict),
		errors.Is(err, ErrSessionAlreadyClosed),
		errors.Is(err, ErrGoalAlreadyCompleted):
		return ErrStateConflict
	}
	return nil
}

// CustomError carries additional context on top of a sentinel error.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping the given sentinel.
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error.
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
