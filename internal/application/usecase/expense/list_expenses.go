// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cakebook/backend/internal/application/adapter"
	"github.com/cakebook/backend/internal/application/usecase/analytics"
	"github.com/cakebook/backend/internal/application/usecase/throttle"
	"github.com/cakebook/backend/internal/domain/entity"
	domainerror "github.com/cakebook/backend/internal/domain/error"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	UserID  uuid.UUID
	Filters adapter.ExpenseFilters
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses  []*entity.Expense
	Advisory  string
	Throttled bool
}

// ListExpensesUseCase handles the throttled listing of a user's expenses.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	guard       *throttle.Guard
	retryDelay  time.Duration

	mu   sync.Mutex
	last map[uuid.UUID][]*entity.Expense

	schedule func(delay time.Duration, fn func())
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository, cooldown, retryDelay time.Duration) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
		guard:       throttle.NewGuard(cooldown),
		retryDelay:  retryDelay,
		last:        make(map[uuid.UUID][]*entity.Expense),
		schedule: func(delay time.Duration, fn func()) {
			time.AfterFunc(delay, fn)
		},
	}
}

// Execute lists the user's expenses with the given filters, throttled by
// the recency guard exactly like the sales listing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	key := expenseQueryKey(input.UserID, input.Filters)

	if !uc.guard.Allow(key) {
		return &ListExpensesOutput{Expenses: uc.lastListing(key), Throttled: true}, nil
	}

	expenses, err := uc.fetch(ctx, input.UserID, input.Filters, key)
	if err != nil {
		if analytics.IsRateLimited(err) {
			uc.scheduleRetry(input.UserID, input.Filters, key)
			return &ListExpensesOutput{
				Expenses: uc.lastListing(key),
				Advisory: domainerror.RateLimitedMessage,
			}, nil
		}
		return nil, err
	}

	return &ListExpensesOutput{Expenses: expenses}, nil
}

func (uc *ListExpensesUseCase) fetch(ctx context.Context, userID uuid.UUID, filters adapter.ExpenseFilters, key uuid.UUID) ([]*entity.Expense, error) {
	expenses, err := uc.expenseRepo.FindByUser(ctx, userID, filters)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.last[key] = expenses
	uc.mu.Unlock()

	return expenses, nil
}

func (uc *ListExpensesUseCase) scheduleRetry(userID uuid.UUID, filters adapter.ExpenseFilters, key uuid.UUID) {
	if !uc.guard.TryScheduleRetry(key) {
		return
	}

	uc.schedule(uc.retryDelay, func() {
		defer uc.guard.ClearRetry(key)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := uc.fetch(ctx, userID, filters, key); err != nil {
			slog.Warn("expense listing retry failed", "userID", userID, "error", err)
		}
	})
}

func (uc *ListExpensesUseCase) lastListing(key uuid.UUID) []*entity.Expense {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if listing, ok := uc.last[key]; ok {
		return listing
	}
	return []*entity.Expense{}
}

// expenseQueryKey derives a stable guard key for one logical query.
func expenseQueryKey(userID uuid.UUID, filters adapter.ExpenseFilters) uuid.UUID {
	fingerprint := userID.String() +
		"|" + filters.Month +
		"|" + filters.Year +
		"|" + filters.Date +
		"|" + string(filters.PaymentMethod) +
		"|" + filters.Category
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fingerprint))
}
