package apperrors

import "errors"

// Resource errors
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
)

// College errors
var (
	ErrCollegeNotFound = NewCustomError(ErrResourceNotFound, "college not found")
	// ErrInvalidCollegeID is a malformed id. It is reported as a server fault, not a 400.
	ErrInvalidCollegeID = errors.New("invalid college ID format")
)

// Student errors
var (
	ErrStudentNotFound    = NewCustomError(ErrResourceNotFound, "student not found")
	ErrEmailAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "email already exists")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
