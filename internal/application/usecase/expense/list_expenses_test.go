// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cakebook/backend/internal/application/adapter"
	"github.com/cakebook/backend/internal/domain/entity"
	domainerror "github.com/cakebook/backend/internal/domain/error"
)

func expenseOn(expenseDate string) *entity.Expense {
	d, err := time.Parse("2006-01-02", expenseDate)
	if err != nil {
		panic(err)
	}
	return entity.NewExpense(uuid.New(), d, "expense", money("10.00"), entity.PaymentMethodCash, "General", "")
}

func TestListExpenses_ReturnsListing(t *testing.T) {
	repo := &stubExpenseRepo{expenses: []*entity.Expense{
		expenseOn("2025-01-10"),
		expenseOn("2025-01-11"),
	}}
	uc := NewListExpensesUseCase(repo, 0, 3*time.Second)

	output, err := uc.Execute(context.Background(), ListExpensesInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Expenses) != 2 {
		t.Errorf("expected 2 expenses, got %d", len(output.Expenses))
	}
	if output.Throttled || output.Advisory != "" {
		t.Errorf("expected a clean listing, got throttled=%v advisory=%q", output.Throttled, output.Advisory)
	}
}

func TestListExpenses_CooldownPerLogicalQuery(t *testing.T) {
	repo := &stubExpenseRepo{expenses: []*entity.Expense{expenseOn("2025-01-10")}}
	uc := NewListExpensesUseCase(repo, time.Second, 3*time.Second)
	userID := uuid.New()

	if _, err := uc.Execute(context.Background(), ListExpensesInput{UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("repeat query is throttled", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListExpensesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Throttled {
			t.Error("expected the repeat query to be throttled")
		}
		if len(output.Expenses) != 1 {
			t.Errorf("expected the previous listing, got %d expenses", len(output.Expenses))
		}
		if repo.fetches != 1 {
			t.Errorf("expected one fetch, got %d", repo.fetches)
		}
	})

	t.Run("category filter is a different logical query", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListExpensesInput{
			UserID:  userID,
			Filters: adapter.ExpenseFilters{Category: "Ingredients"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Throttled {
			t.Error("expected a fresh fetch for a new filter combination")
		}
		if repo.fetches != 2 {
			t.Errorf("expected a second fetch, got %d", repo.fetches)
		}
	})
}

func TestListExpenses_RateLimited(t *testing.T) {
	repo := &stubExpenseRepo{findErr: errors.New("request was rate-limited")}
	uc := NewListExpensesUseCase(repo, 0, 3*time.Second)

	var scheduledDelay time.Duration
	uc.schedule = func(delay time.Duration, fn func()) {
		scheduledDelay = delay
		repo.mu.Lock()
		repo.findErr = nil
		repo.mu.Unlock()
		fn()
	}

	output, err := uc.Execute(context.Background(), ListExpensesInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("rate-limited listing must not surface an error, got: %v", err)
	}
	if output.Advisory != domainerror.RateLimitedMessage {
		t.Errorf("expected advisory %q, got %q", domainerror.RateLimitedMessage, output.Advisory)
	}
	if scheduledDelay != 3*time.Second {
		t.Errorf("expected retry after 3s, got %v", scheduledDelay)
	}
}

func TestListExpenses_OtherErrorsSurface(t *testing.T) {
	findErr := errors.New("connection refused")
	repo := &stubExpenseRepo{findErr: findErr}
	uc := NewListExpensesUseCase(repo, 0, 3*time.Second)

	_, err := uc.Execute(context.Background(), ListExpensesInput{UserID: uuid.New()})
	if !errors.Is(err, findErr) {
		t.Fatalf("expected the fetch error verbatim, got: %v", err)
	}
}
