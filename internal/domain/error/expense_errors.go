// Package error defines domain-specific errors for the CakeBook application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrEmptyDescription is returned when an expense has no description.
	ErrEmptyDescription = errors.New("description is required")

	// ErrInvalidAmount is returned when an expense amount is negative.
	ErrInvalidAmount = errors.New("amount must not be negative")

	// ErrInvalidCategory is returned when the category is not in the catalog.
	ErrInvalidCategory = errors.New("category is not in the catalog")

	// ErrInvalidExpenseDate is returned when the expense date is missing or malformed.
	ErrInvalidExpenseDate = errors.New("invalid expense date, expected YYYY-MM-DD")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyDescription          ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidAmount             ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidCategory           ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidExpenseDate        ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidExpensePaymentMode ExpenseErrorCode = "EXP-010005"

	// Internal errors (99XXXX)
	ErrCodeExpenseInternalError ExpenseErrorCode = "EXP-990001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
