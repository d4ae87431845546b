// Package analytics contains the analytics aggregation use cases.
package analytics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cakebook/backend/internal/application/adapter"
	"github.com/cakebook/backend/internal/application/usecase/throttle"
	"github.com/cakebook/backend/internal/domain/entity"
	domainerror "github.com/cakebook/backend/internal/domain/error"
)

// GetAnalyticsInput represents the input for computing analytics.
type GetAnalyticsInput struct {
	UserID uuid.UUID
}

// GetAnalyticsOutput represents the output of computing analytics.
// Snapshot is never nil. Advisory carries the transient "too many
// requests" message while an automatic retry is pending. Throttled is set
// when the recency guard served the previous snapshot without fetching.
type GetAnalyticsOutput struct {
	Snapshot  *entity.AnalyticsSnapshot
	Advisory  string
	Throttled bool
}

// GetAnalyticsUseCase performs the throttled fetch-then-compute cycle:
// it fetches the user's sales and expenses concurrently, joins both
// results, aggregates them into a snapshot, and caches the snapshot so
// it stays visible until the next successful recomputation.
type GetAnalyticsUseCase struct {
	saleRepo    adapter.SaleRepository
	expenseRepo adapter.ExpenseRepository
	cache       adapter.SnapshotCache
	guard       *throttle.Guard
	retryDelay  time.Duration

	// schedule defers a function; replaced in tests to run synchronously.
	schedule func(delay time.Duration, fn func())
}

// NewGetAnalyticsUseCase creates a new GetAnalyticsUseCase instance.
func NewGetAnalyticsUseCase(
	saleRepo adapter.SaleRepository,
	expenseRepo adapter.ExpenseRepository,
	cache adapter.SnapshotCache,
	cooldown time.Duration,
	retryDelay time.Duration,
) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		cache:       cache,
		guard:       throttle.NewGuard(cooldown),
		retryDelay:  retryDelay,
		schedule: func(delay time.Duration, fn func()) {
			time.AfterFunc(delay, fn)
		},
	}
}

// Execute returns the current analytics snapshot for the user.
//
// Requests inside the cooldown window return the cached snapshot without
// touching the repositories. A rate-limited fetch returns the previous
// snapshot with an advisory message and schedules exactly one delayed
// background retry; any other fetch error is returned verbatim alongside
// the previous snapshot.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, input GetAnalyticsInput) (*GetAnalyticsOutput, error) {
	if !uc.guard.Allow(input.UserID) {
		return &GetAnalyticsOutput{
			Snapshot:  uc.lastSnapshot(ctx, input.UserID),
			Throttled: true,
		}, nil
	}

	snapshot, err := uc.fetchAndCompute(ctx, input.UserID)
	if err != nil {
		if IsRateLimited(err) {
			uc.scheduleRetry(input.UserID)
			return &GetAnalyticsOutput{
				Snapshot: uc.lastSnapshot(ctx, input.UserID),
				Advisory: domainerror.RateLimitedMessage,
			}, nil
		}
		return &GetAnalyticsOutput{
			Snapshot: uc.lastSnapshot(ctx, input.UserID),
		}, err
	}

	return &GetAnalyticsOutput{Snapshot: snapshot}, nil
}

// Guard exposes the recency guard so writes can invalidate the window.
func (uc *GetAnalyticsUseCase) Guard() *throttle.Guard {
	return uc.guard
}

// fetchAndCompute issues both fetches concurrently, waits for the pair,
// aggregates and caches the result.
func (uc *GetAnalyticsUseCase) fetchAndCompute(ctx context.Context, userID uuid.UUID) (*entity.AnalyticsSnapshot, error) {
	var (
		wg          sync.WaitGroup
		sales       []*entity.Sale
		expenses    []*entity.Expense
		salesErr    error
		expensesErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		sales, salesErr = uc.saleRepo.FindByUser(ctx, userID, adapter.SaleFilters{})
	}()
	go func() {
		defer wg.Done()
		expenses, expensesErr = uc.expenseRepo.FindByUser(ctx, userID, adapter.ExpenseFilters{})
	}()
	wg.Wait()

	if salesErr != nil {
		return nil, salesErr
	}
	if expensesErr != nil {
		return nil, expensesErr
	}

	snapshot := Compute(sales, expenses)

	if err := uc.cache.Set(ctx, userID, snapshot); err != nil {
		// Cache failures degrade throttled reads but not this response.
		slog.Warn("failed to cache analytics snapshot", "userID", userID, "error", err)
	}

	return snapshot, nil
}

// scheduleRetry arms a single delayed background recomputation. A second
// rate-limit failure while one is pending schedules nothing; recovery
// then requires an explicit refetch.
func (uc *GetAnalyticsUseCase) scheduleRetry(userID uuid.UUID) {
	if !uc.guard.TryScheduleRetry(userID) {
		return
	}

	uc.schedule(uc.retryDelay, func() {
		defer uc.guard.ClearRetry(userID)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := uc.fetchAndCompute(ctx, userID); err != nil {
			slog.Warn("analytics retry failed", "userID", userID, "error", err)
		}
	})
}

// lastSnapshot returns the cached snapshot, or the zero snapshot when
// nothing has been computed yet.
func (uc *GetAnalyticsUseCase) lastSnapshot(ctx context.Context, userID uuid.UUID) *entity.AnalyticsSnapshot {
	snapshot, err := uc.cache.Get(ctx, userID)
	if err != nil {
		slog.Warn("failed to read cached analytics snapshot", "userID", userID, "error", err)
		return entity.NewEmptyAnalyticsSnapshot()
	}
	if snapshot == nil {
		return entity.NewEmptyAnalyticsSnapshot()
	}
	return snapshot
}
