// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/cakebook/backend/internal/application/adapter"
	"github.com/cakebook/backend/internal/domain/entity"
)

// ErrDatastoreNotConfigured is returned by no-op repositories on writes.
// Reads never fail: an unconfigured datastore looks like a user with
// zero sales and zero expenses, not like an error.
var ErrDatastoreNotConfigured = errors.New("datastore not configured")

// noopSaleRepository serves empty data when no database is configured.
type noopSaleRepository struct{}

// NewNoopSaleRepository creates a sale repository for the unconfigured case.
func NewNoopSaleRepository() adapter.SaleRepository {
	return &noopSaleRepository{}
}

func (r *noopSaleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return ErrDatastoreNotConfigured
}

func (r *noopSaleRepository) FindByUser(ctx context.Context, userID uuid.UUID, filters adapter.SaleFilters) ([]*entity.Sale, error) {
	return []*entity.Sale{}, nil
}

// noopExpenseRepository serves empty data when no database is configured.
type noopExpenseRepository struct{}

// NewNoopExpenseRepository creates an expense repository for the unconfigured case.
func NewNoopExpenseRepository() adapter.ExpenseRepository {
	return &noopExpenseRepository{}
}

func (r *noopExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return ErrDatastoreNotConfigured
}

func (r *noopExpenseRepository) FindByUser(ctx context.Context, userID uuid.UUID, filters adapter.ExpenseFilters) ([]*entity.Expense, error) {
	return []*entity.Expense{}, nil
}
