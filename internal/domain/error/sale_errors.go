// Package error defines domain-specific errors for the CakeBook application.
package error

import "errors"

// Sale domain errors.
var (
	// ErrSaleNoItems is returned when a sale is created without line items.
	ErrSaleNoItems = errors.New("sale must contain at least one item")

	// ErrInvalidItemType is returned when a line item's type is not in the catalog.
	ErrInvalidItemType = errors.New("item type must be 'Cake' or 'Cupcake'")

	// ErrInvalidFlavor is returned when a line item's flavor is not in the catalog.
	ErrInvalidFlavor = errors.New("flavor is not in the catalog")

	// ErrInvalidQuantity is returned when a line item's quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrNegativePrice is returned when a line item's price is negative.
	ErrNegativePrice = errors.New("price per item must not be negative")

	// ErrInvalidPaymentMethod is returned when the payment method is unknown.
	ErrInvalidPaymentMethod = errors.New("payment method must be 'Cash' or 'Bank'")

	// ErrInvalidSaleDate is returned when the sale date is missing or malformed.
	ErrInvalidSaleDate = errors.New("invalid sale date, expected YYYY-MM-DD")
)

// SaleErrorCode defines error codes for sale errors.
// Format: SAL-XXYYYY where XX is category and YYYY is specific error.
type SaleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSaleNoItems          SaleErrorCode = "SAL-010001"
	ErrCodeInvalidItemType      SaleErrorCode = "SAL-010002"
	ErrCodeInvalidFlavor        SaleErrorCode = "SAL-010003"
	ErrCodeInvalidQuantity      SaleErrorCode = "SAL-010004"
	ErrCodeNegativePrice        SaleErrorCode = "SAL-010005"
	ErrCodeInvalidPaymentMethod SaleErrorCode = "SAL-010006"
	ErrCodeInvalidSaleDate      SaleErrorCode = "SAL-010007"

	// Internal errors (99XXXX)
	ErrCodeSaleInternalError SaleErrorCode = "SAL-990001"
)

// SaleError represents a sale error with code and message.
type SaleError struct {
	Code    SaleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SaleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SaleError) Unwrap() error {
	return e.Err
}

// NewSaleError creates a new SaleError with the given code and message.
func NewSaleError(code SaleErrorCode, message string, err error) *SaleError {
	return &SaleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
