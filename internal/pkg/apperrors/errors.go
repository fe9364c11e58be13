package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("conflict")

	// Store errors
	ErrStoreUnavailable = errors.New("record store unavailable")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Per-kind not found errors. Each one matches ErrNotFound through errors.Is.
var (
	ErrStudentNotFound = &CustomError{Err: ErrNotFound, Message: "student not found"}
	ErrCourseNotFound  = &CustomError{Err: ErrNotFound, Message: "course not found"}
	ErrFacultyNotFound = &CustomError{Err: ErrNotFound, Message: "faculty not found"}
	ErrGradeNotFound   = &CustomError{Err: ErrNotFound, Message: "grade not found"}
)

// Grade errors
var (
	ErrGradeAlreadyExists = &CustomError{Err: ErrConflict, Message: "a grade already exists for this student and course"}
)

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewStoreUnavailableError wraps a transport failure reported by the record store.
func NewStoreUnavailableError(op string, cause error) error {
	return &CustomError{
		Err:     ErrStoreUnavailable,
		Message: fmt.Sprintf("%s: record store unavailable", op),
		Cause:   cause,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Cause   error
}

// Error implements error interface
func (e *CustomError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = "unknown error"
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *CustomError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// FieldError describes one invalid field of a payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field violation found in a payload, not just the first one.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError returns a *ValidationError, or nil when no fields are given.
func NewValidationError(fields ...FieldError) *ValidationError {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// Add appends a violation for field.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any violation was collected.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// Err returns the collected violations as an error, or nil when there are none.
func (e *ValidationError) Err() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap makes errors.Is(err, ErrValidationFailed) hold.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// AsValidationError extracts the per-field violations from err, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
