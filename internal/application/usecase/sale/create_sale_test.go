// Package sale contains sale-related use cases.
package sale

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cakebook/backend/internal/application/adapter"
	"github.com/cakebook/backend/internal/domain/entity"
	domainerror "github.com/cakebook/backend/internal/domain/error"
)

// stubSaleRepo records created sales and serves canned listings.
type stubSaleRepo struct {
	mu      sync.Mutex
	created []*entity.Sale
	sales   []*entity.Sale
	findErr error
	fetches int
}

func (r *stubSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, sale)
	return nil
}

func (r *stubSaleRepo) FindByUser(ctx context.Context, userID uuid.UUID, filters adapter.SaleFilters) ([]*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetches++
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.sales, nil
}

func money(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

func validInput(userID uuid.UUID) CreateSaleInput {
	return CreateSaleInput{
		UserID:        userID,
		SaleDate:      time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		PaymentMethod: entity.PaymentMethodCash,
		Items: []CreateSaleItemInput{
			{ItemType: entity.ItemTypeCake, Flavor: "Vanilla", Quantity: 2, PricePerItem: money("25.00")},
			{ItemType: entity.ItemTypeCupcake, Flavor: "Mango", Quantity: 6, PricePerItem: money("3.50")},
		},
	}
}

func TestCreateSale_Success(t *testing.T) {
	repo := &stubSaleRepo{}
	uc := NewCreateSaleUseCase(repo)
	userID := uuid.New()

	output, err := uc.Execute(context.Background(), validInput(userID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sale := output.Sale
	if sale.UserID != userID {
		t.Errorf("expected user ID %s, got %s", userID, sale.UserID)
	}
	// 2*25 + 6*3.50 = 71
	if want := money("71"); !sale.TotalAmount.Equal(want) {
		t.Errorf("expected total %s, got %s", want, sale.TotalAmount)
	}
	if len(sale.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(sale.Items))
	}
	if want := money("50"); !sale.Items[0].Subtotal.Equal(want) {
		t.Errorf("expected first subtotal %s, got %s", want, sale.Items[0].Subtotal)
	}
	if len(repo.created) != 1 {
		t.Errorf("expected one persisted sale, got %d", len(repo.created))
	}
}

func TestCreateSale_FreeItemIsValid(t *testing.T) {
	repo := &stubSaleRepo{}
	uc := NewCreateSaleUseCase(repo)

	input := validInput(uuid.New())
	input.Items = []CreateSaleItemInput{
		{ItemType: entity.ItemTypeCake, Flavor: "Vanilla", Quantity: 1, PricePerItem: decimal.Zero},
	}

	output, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("expected zero price to be accepted, got: %v", err)
	}
	if !output.Sale.TotalAmount.IsZero() {
		t.Errorf("expected zero total, got %s", output.Sale.TotalAmount)
	}
}

func TestCreateSale_Validation(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*CreateSaleInput)
		wantCode domainerror.SaleErrorCode
	}{
		{
			name:     "missing date",
			mutate:   func(in *CreateSaleInput) { in.SaleDate = time.Time{} },
			wantCode: domainerror.ErrCodeInvalidSaleDate,
		},
		{
			name:     "unknown payment method",
			mutate:   func(in *CreateSaleInput) { in.PaymentMethod = "Crypto" },
			wantCode: domainerror.ErrCodeInvalidPaymentMethod,
		},
		{
			name:     "no items",
			mutate:   func(in *CreateSaleInput) { in.Items = nil },
			wantCode: domainerror.ErrCodeSaleNoItems,
		},
		{
			name: "unknown item type",
			mutate: func(in *CreateSaleInput) {
				in.Items[0].ItemType = "Pie"
			},
			wantCode: domainerror.ErrCodeInvalidItemType,
		},
		{
			name: "flavor outside the catalog",
			mutate: func(in *CreateSaleInput) {
				in.Items[0].Flavor = "Durian"
			},
			wantCode: domainerror.ErrCodeInvalidFlavor,
		},
		{
			name: "zero quantity",
			mutate: func(in *CreateSaleInput) {
				in.Items[0].Quantity = 0
			},
			wantCode: domainerror.ErrCodeInvalidQuantity,
		},
		{
			name: "negative quantity",
			mutate: func(in *CreateSaleInput) {
				in.Items[0].Quantity = -2
			},
			wantCode: domainerror.ErrCodeInvalidQuantity,
		},
		{
			name: "negative price",
			mutate: func(in *CreateSaleInput) {
				in.Items[0].PricePerItem = money("-1.00")
			},
			wantCode: domainerror.ErrCodeNegativePrice,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubSaleRepo{}
			uc := NewCreateSaleUseCase(repo)

			input := validInput(uuid.New())
			tc.mutate(&input)

			_, err := uc.Execute(context.Background(), input)
			if err == nil {
				t.Fatal("expected a validation error")
			}

			var saleErr *domainerror.SaleError
			if !errors.As(err, &saleErr) {
				t.Fatalf("expected a SaleError, got %T: %v", err, err)
			}
			if saleErr.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, saleErr.Code)
			}
			if len(repo.created) != 0 {
				t.Error("expected nothing to be persisted on validation failure")
			}
		})
	}
}
