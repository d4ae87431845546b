// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleLineItem represents one flavor/quantity/price entry within a sale.
// Subtotal is computed on the write path and trusted downstream.
type SaleLineItem struct {
	ID           uuid.UUID
	SaleID       uuid.UUID
	ItemType     ItemType
	Flavor       string
	Quantity     int
	PricePerItem decimal.Decimal
	Subtotal     decimal.Decimal
}

// Sale represents a single customer order with its line items.
type Sale struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	SaleDate      time.Time // calendar date; time-of-day is not meaningful
	PaymentMethod PaymentMethod
	TotalAmount   decimal.Decimal // sum of item subtotals, fixed at creation
	Notes         string
	Items         []SaleLineItem
	CreatedAt     time.Time
}

// NewSaleItemInput carries one line item of a sale being created.
type NewSaleItemInput struct {
	ItemType     ItemType
	Flavor       string
	Quantity     int
	PricePerItem decimal.Decimal
}

// NewSale creates a Sale entity from its line items. Each item's subtotal
// and the sale's total amount are computed here, on the write path; the
// analytics side never recomputes them.
func NewSale(
	userID uuid.UUID,
	saleDate time.Time,
	paymentMethod PaymentMethod,
	notes string,
	items []NewSaleItemInput,
) *Sale {
	saleID := uuid.New()

	total := decimal.Zero
	lineItems := make([]SaleLineItem, 0, len(items))
	for _, item := range items {
		subtotal := item.PricePerItem.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
		lineItems = append(lineItems, SaleLineItem{
			ID:           uuid.New(),
			SaleID:       saleID,
			ItemType:     item.ItemType,
			Flavor:       item.Flavor,
			Quantity:     item.Quantity,
			PricePerItem: item.PricePerItem,
			Subtotal:     subtotal,
		})
	}

	return &Sale{
		ID:            saleID,
		UserID:        userID,
		SaleDate:      saleDate,
		PaymentMethod: paymentMethod,
		TotalAmount:   total,
		Notes:         notes,
		Items:         lineItems,
		CreatedAt:     time.Now().UTC(),
	}
}
