// Package adapter defines interfaces for external dependencies of the application layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cakebook/backend/internal/domain/entity"
)

// ExpenseFilters narrows an expense listing. Zero values mean "no filter".
type ExpenseFilters struct {
	Month         string // "01".."12", only meaningful together with Year
	Year          string // "YYYY"
	Date          string // exact date, "YYYY-MM-DD"
	PaymentMethod entity.PaymentMethod
	Category      string
}

// ExpenseRepository defines persistence operations for expenses.
type ExpenseRepository interface {
	// Create persists an expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByUser returns the user's expenses, newest expense date first.
	FindByUser(ctx context.Context, userID uuid.UUID, filters ExpenseFilters) ([]*entity.Expense, error)
}
