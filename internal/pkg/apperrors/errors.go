package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Gradebook lookup errors. Each wraps ErrResourceNotFound so callers that only
// care about absence can match the common sentinel.
var (
	ErrStudentNotFound = &CustomError{Err: ErrResourceNotFound, Message: "student not found", Code: "STUDENT_NOT_FOUND"}
	ErrGradeNotFound   = &CustomError{Err: ErrResourceNotFound, Message: "grade not found", Code: "GRADE_NOT_FOUND"}
	ErrInvalidSubject  = &CustomError{Err: ErrResourceNotFound, Message: "invalid subject", Code: "INVALID_SUBJECT"}
)

// Student errors
var (
	ErrEmailAlreadyExists = &CustomError{Err: ErrResourceAlreadyExists, Message: "email already exists", Code: "EMAIL_EXISTS"}
)

// NewValidationError creates a new custom error for validation failures with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// Kind returns the code of the first CustomError in err's chain, or "" if there is none
func Kind(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
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
