// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cakebook/backend/internal/application/adapter"
	"github.com/cakebook/backend/internal/domain/entity"
	"github.com/cakebook/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create persists an expense.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	if err := r.db.WithContext(ctx).Create(model.ExpenseFromEntity(expense)).Error; err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// FindByUser returns the user's expenses, newest first.
func (r *expenseRepository) FindByUser(
	ctx context.Context,
	userID uuid.UUID,
	filters adapter.ExpenseFilters,
) ([]*entity.Expense, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("user_id = ?", userID).
		Order("expense_date DESC")

	query = applyDateFilters(query, "expense_date", filters.Month, filters.Year, filters.Date)

	if filters.PaymentMethod != "" {
		query = query.Where("payment_method = ?", string(filters.PaymentMethod))
	}

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	var results []model.ExpenseModel
	if err := query.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	expenses := make([]*entity.Expense, len(results))
	for i := range results {
		expenses[i] = results[i].ToEntity()
	}

	return expenses, nil
}
