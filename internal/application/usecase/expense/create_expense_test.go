// Package expense contains expense-related use cases.
package expense

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

// stubExpenseRepo records created expenses and serves canned listings.
type stubExpenseRepo struct {
	mu       sync.Mutex
	created  []*entity.Expense
	expenses []*entity.Expense
	findErr  error
	fetches  int
}

func (r *stubExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, expense)
	return nil
}

func (r *stubExpenseRepo) FindByUser(ctx context.Context, userID uuid.UUID, filters adapter.ExpenseFilters) ([]*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetches++
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.expenses, nil
}

func money(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

func validInput(userID uuid.UUID) CreateExpenseInput {
	return CreateExpenseInput{
		UserID:        userID,
		ExpenseDate:   time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Description:   "Flour and sugar",
		Amount:        money("45.50"),
		PaymentMethod: entity.PaymentMethodCash,
		Category:      "Ingredients",
	}
}

func TestCreateExpense_Success(t *testing.T) {
	repo := &stubExpenseRepo{}
	uc := NewCreateExpenseUseCase(repo)
	userID := uuid.New()

	output, err := uc.Execute(context.Background(), validInput(userID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exp := output.Expense
	if exp.UserID != userID {
		t.Errorf("expected user ID %s, got %s", userID, exp.UserID)
	}
	if !exp.Amount.Equal(money("45.50")) {
		t.Errorf("expected amount 45.50, got %s", exp.Amount)
	}
	if exp.Category != "Ingredients" {
		t.Errorf("expected category Ingredients, got %s", exp.Category)
	}
	if len(repo.created) != 1 {
		t.Errorf("expected one persisted expense, got %d", len(repo.created))
	}
}

func TestCreateExpense_ZeroAmountIsValid(t *testing.T) {
	repo := &stubExpenseRepo{}
	uc := NewCreateExpenseUseCase(repo)

	input := validInput(uuid.New())
	input.Amount = decimal.Zero

	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("expected zero amount to be accepted, got: %v", err)
	}
}

func TestCreateExpense_Validation(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*CreateExpenseInput)
		wantCode domainerror.ExpenseErrorCode
	}{
		{
			name:     "missing date",
			mutate:   func(in *CreateExpenseInput) { in.ExpenseDate = time.Time{} },
			wantCode: domainerror.ErrCodeInvalidExpenseDate,
		},
		{
			name:     "empty description",
			mutate:   func(in *CreateExpenseInput) { in.Description = "   " },
			wantCode: domainerror.ErrCodeEmptyDescription,
		},
		{
			name:     "negative amount",
			mutate:   func(in *CreateExpenseInput) { in.Amount = money("-0.01") },
			wantCode: domainerror.ErrCodeInvalidAmount,
		},
		{
			name:     "unknown payment method",
			mutate:   func(in *CreateExpenseInput) { in.PaymentMethod = "Cheque" },
			wantCode: domainerror.ErrCodeInvalidExpensePaymentMode,
		},
		{
			name:     "category outside the catalog",
			mutate:   func(in *CreateExpenseInput) { in.Category = "Miscellaneous" },
			wantCode: domainerror.ErrCodeInvalidCategory,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubExpenseRepo{}
			uc := NewCreateExpenseUseCase(repo)

			input := validInput(uuid.New())
			tc.mutate(&input)

			_, err := uc.Execute(context.Background(), input)
			if err == nil {
				t.Fatal("expected a validation error")
			}

			var expErr *domainerror.ExpenseError
			if !errors.As(err, &expErr) {
				t.Fatalf("expected an ExpenseError, got %T: %v", err, err)
			}
			if expErr.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, expErr.Code)
			}
			if len(repo.created) != 0 {
				t.Error("expected nothing to be persisted on validation failure")
			}
		})
	}
}
