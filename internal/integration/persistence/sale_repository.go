// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cakebook/backend/internal/application/adapter"
	"github.com/cakebook/backend/internal/domain/entity"
	"github.com/cakebook/backend/internal/integration/persistence/model"
)

// saleRepository implements the adapter.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository instance.
func NewSaleRepository(db *gorm.DB) adapter.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// Create persists a sale and its line items in a single transaction.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(saleModel).Error
	})
	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}

	return nil
}

// FindByUser returns the user's sales with embedded items, newest first.
// Flavor/item-type narrowing is left to the caller as a post-filter.
func (r *saleRepository) FindByUser(
	ctx context.Context,
	userID uuid.UUID,
	filters adapter.SaleFilters,
) ([]*entity.Sale, error) {
	query := r.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("sale_date DESC")

	query = applyDateFilters(query, "sale_date", filters.Month, filters.Year, filters.Date)

	if filters.PaymentMethod != "" {
		query = query.Where("payment_method = ?", string(filters.PaymentMethod))
	}

	var results []model.SaleModel
	if err := query.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	sales := make([]*entity.Sale, len(results))
	for i := range results {
		sales[i] = results[i].ToEntity()
	}

	return sales, nil
}

// applyDateFilters narrows a query by exact date, month of a year, or
// whole year, matching the filter semantics of the listing endpoints.
func applyDateFilters(query *gorm.DB, column, month, year, exactDate string) *gorm.DB {
	if exactDate != "" {
		if date, err := time.Parse("2006-01-02", exactDate); err == nil {
			return query.Where(column+" = ?", date)
		}
		return query
	}

	if year == "" {
		return query
	}

	yearNum, err := strconv.Atoi(year)
	if err != nil {
		return query
	}

	start := time.Date(yearNum, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(yearNum, time.December, 31, 0, 0, 0, 0, time.UTC)

	if month != "" {
		monthNum, err := strconv.Atoi(month)
		if err == nil && monthNum >= 1 && monthNum <= 12 {
			start = time.Date(yearNum, time.Month(monthNum), 1, 0, 0, 0, 0, time.UTC)
			end = start.AddDate(0, 1, -1)
		}
	}

	return query.Where(column+" >= ? AND "+column+" <= ?", start, end)
}
