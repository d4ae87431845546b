// Package adapter defines interfaces for external dependencies of the application layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cakebook/backend/internal/domain/entity"
)

// SaleFilters narrows a sales listing. Zero values mean "no filter".
// Flavor and ItemType are applied as a post-filter over embedded line
// items rather than pushed into the query.
type SaleFilters struct {
	Month         string // "01".."12", only meaningful together with Year
	Year          string // "YYYY"
	Date          string // exact date, "YYYY-MM-DD"
	PaymentMethod entity.PaymentMethod
	Flavor        string
	ItemType      entity.ItemType
}

// SaleRepository defines persistence operations for sales.
type SaleRepository interface {
	// Create persists a sale together with its line items.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindByUser returns the user's sales with embedded line items,
	// newest sale date first.
	FindByUser(ctx context.Context, userID uuid.UUID, filters SaleFilters) ([]*entity.Sale, error)
}
