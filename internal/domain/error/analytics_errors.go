// Package error defines domain-specific errors for the CakeBook application.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrDatastoreRateLimited is returned when the datastore throttled a fetch.
	ErrDatastoreRateLimited = errors.New("datastore rate limited the request")
)

// RateLimitedMessage is the advisory shown to users while a throttled
// fetch waits for its automatic retry.
const RateLimitedMessage = "Too many requests. Please wait a moment and try again."

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Transient errors (02XXXX)
	ErrCodeAnalyticsRateLimited AnalyticsErrorCode = "ANL-020001"

	// Internal errors (99XXXX)
	ErrCodeAnalyticsFetchFailed AnalyticsErrorCode = "ANL-990001"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
