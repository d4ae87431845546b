// Package sale contains sale-related use cases.
package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cakebook/backend/internal/application/adapter"
	"github.com/cakebook/backend/internal/domain/entity"
	domainerror "github.com/cakebook/backend/internal/domain/error"
)

// CreateSaleItemInput represents one line item of a sale being created.
type CreateSaleItemInput struct {
	ItemType     entity.ItemType
	Flavor       string
	Quantity     int
	PricePerItem decimal.Decimal
}

// CreateSaleInput represents the input for sale creation.
type CreateSaleInput struct {
	UserID        uuid.UUID
	SaleDate      time.Time
	PaymentMethod entity.PaymentMethod
	Notes         string
	Items         []CreateSaleItemInput
}

// CreateSaleOutput represents the output of sale creation.
type CreateSaleOutput struct {
	Sale *entity.Sale
}

// CreateSaleUseCase handles sale creation. All catalog and range
// validation happens here, on the write path; the analytics side trusts
// stored values verbatim.
type CreateSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewCreateSaleUseCase creates a new CreateSaleUseCase instance.
func NewCreateSaleUseCase(saleRepo adapter.SaleRepository) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo: saleRepo,
	}
}

// Execute validates and persists the sale. Total amount and per-item
// subtotals are computed from quantity and unit price before insertion.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, input CreateSaleInput) (*CreateSaleOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	items := make([]entity.NewSaleItemInput, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, entity.NewSaleItemInput{
			ItemType:     item.ItemType,
			Flavor:       item.Flavor,
			Quantity:     item.Quantity,
			PricePerItem: item.PricePerItem,
		})
	}

	newSale := entity.NewSale(input.UserID, input.SaleDate, input.PaymentMethod, input.Notes, items)

	if err := uc.saleRepo.Create(ctx, newSale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	return &CreateSaleOutput{Sale: newSale}, nil
}

// validateInput validates the input parameters against the catalogs.
func (uc *CreateSaleUseCase) validateInput(input CreateSaleInput) error {
	if input.SaleDate.IsZero() {
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSaleDate,
			"sale_date is required",
			domainerror.ErrInvalidSaleDate,
		)
	}

	if !entity.IsValidPaymentMethod(input.PaymentMethod) {
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"payment method must be 'Cash' or 'Bank'",
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	if len(input.Items) == 0 {
		return domainerror.NewSaleError(
			domainerror.ErrCodeSaleNoItems,
			"sale must contain at least one item",
			domainerror.ErrSaleNoItems,
		)
	}

	for _, item := range input.Items {
		if !entity.IsValidItemType(item.ItemType) {
			return domainerror.NewSaleError(
				domainerror.ErrCodeInvalidItemType,
				"item type must be 'Cake' or 'Cupcake'",
				domainerror.ErrInvalidItemType,
			)
		}

		if !entity.IsValidFlavor(item.Flavor) {
			return domainerror.NewSaleError(
				domainerror.ErrCodeInvalidFlavor,
				fmt.Sprintf("flavor %q is not in the catalog", item.Flavor),
				domainerror.ErrInvalidFlavor,
			)
		}

		if item.Quantity <= 0 {
			return domainerror.NewSaleError(
				domainerror.ErrCodeInvalidQuantity,
				"quantity must be a positive integer",
				domainerror.ErrInvalidQuantity,
			)
		}

		if item.PricePerItem.IsNegative() {
			return domainerror.NewSaleError(
				domainerror.ErrCodeNegativePrice,
				"price per item must not be negative",
				domainerror.ErrNegativePrice,
			)
		}
	}

	return nil
}
