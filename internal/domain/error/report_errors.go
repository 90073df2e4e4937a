// Package error defines domain-specific errors for the ProfitPulse application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidGranularity is returned when the granularity token is not recognized.
	ErrInvalidGranularity = errors.New("granularity must be: daily, weekly, or monthly")

	// ErrInvalidDateRange is returned when rangeEnd is before rangeStart.
	ErrInvalidDateRange = errors.New("endDate must not be before startDate")

	// ErrInvalidDateFormat is returned when a date parameter cannot be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrStoreNotFound is returned when the user has no connected store.
	ErrStoreNotFound = errors.New("no store found for user")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGranularity ReportErrorCode = "RPT-010001"
	ErrCodeInvalidDateRange   ReportErrorCode = "RPT-010002"
	ErrCodeInvalidDateFormat  ReportErrorCode = "RPT-010003"

	// Resource errors (02XXXX)
	ErrCodeStoreNotFound ReportErrorCode = "RPT-020001"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
