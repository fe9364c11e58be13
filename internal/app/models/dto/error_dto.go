package dto

import "time"

// ErrorCode identifies a failure class in API error bodies
type ErrorCode string

const (
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"

	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeBadRequest       ErrorCode = "VAL_002"

	ErrorCodeInternalServer   ErrorCode = "SRV_001"
	ErrorCodeStoreUnavailable ErrorCode = "SRV_002"
)

// ErrorSeverity tells the dashboard how loudly to surface an error
type ErrorSeverity string

const (
	// ErrorSeverityError is a failed request the client can correct or retry
	ErrorSeverityError ErrorSeverity = "ERROR"
	// ErrorSeverityCritical means the record store itself is unreachable
	ErrorSeverityCritical ErrorSeverity = "CRITICAL"
)

// ErrorDetail is the "error" member of an ErrorResponse.
// Details carries the per-field violations of a failed validation.
type ErrorDetail struct {
	Code     ErrorCode     `json:"code" example:"VAL_001"`
	Message  string        `json:"message" example:"Validation failed"`
	Field    string        `json:"field,omitempty" example:"gpa"`
	Severity ErrorSeverity `json:"severity" example:"ERROR"`
	Details  interface{}   `json:"details,omitempty"`
}

// ErrorResponse is the envelope of every failed request
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewErrorDetail creates an ERROR severity detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{Code: code, Message: message, Severity: ErrorSeverityError}
}

// WithField names the offending field
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithSeverity overrides the severity
func (e *ErrorDetail) WithSeverity(severity ErrorSeverity) *ErrorDetail {
	e.Severity = severity
	return e
}

// WithDetails attaches structured details
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse wraps detail in the failure envelope
func NewErrorResponse(detail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{Error: detail, Timestamp: time.Now()}
}
