// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single business expense.
type Expense struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ExpenseDate   time.Time
	Description   string
	Amount        decimal.Decimal
	PaymentMethod PaymentMethod
	Category      string
	Notes         string
	CreatedAt     time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	expenseDate time.Time,
	description string,
	amount decimal.Decimal,
	paymentMethod PaymentMethod,
	category string,
	notes string,
) *Expense {
	return &Expense{
		ID:            uuid.New(),
		UserID:        userID,
		ExpenseDate:   expenseDate,
		Description:   description,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		Category:      category,
		Notes:         notes,
		CreatedAt:     time.Now().UTC(),
	}
}
