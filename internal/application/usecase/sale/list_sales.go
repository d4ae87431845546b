// Package sale contains sale-related use cases.
package sale

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

// ListSalesInput represents the input for listing sales.
type ListSalesInput struct {
	UserID  uuid.UUID
	Filters adapter.SaleFilters
}

// ListSalesOutput represents the output of listing sales. Advisory and
// Throttled behave as in the analytics use case: a throttled request
// serves the previous listing, a rate-limited fetch serves it with an
// advisory while one background retry is pending.
type ListSalesOutput struct {
	Sales     []*entity.Sale
	Advisory  string
	Throttled bool
}

// ListSalesUseCase handles the throttled listing of a user's sales.
type ListSalesUseCase struct {
	saleRepo   adapter.SaleRepository
	guard      *throttle.Guard
	retryDelay time.Duration

	mu   sync.Mutex
	last map[uuid.UUID][]*entity.Sale

	schedule func(delay time.Duration, fn func())
}

// NewListSalesUseCase creates a new ListSalesUseCase instance.
func NewListSalesUseCase(saleRepo adapter.SaleRepository, cooldown, retryDelay time.Duration) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo:   saleRepo,
		guard:      throttle.NewGuard(cooldown),
		retryDelay: retryDelay,
		last:       make(map[uuid.UUID][]*entity.Sale),
		schedule: func(delay time.Duration, fn func()) {
			time.AfterFunc(delay, fn)
		},
	}
}

// Execute lists the user's sales with the given filters. Flavor and item
// type are applied as a post-filter over the embedded line items; the
// remaining filters are pushed to the repository query.
func (uc *ListSalesUseCase) Execute(ctx context.Context, input ListSalesInput) (*ListSalesOutput, error) {
	key := queryKey(input.UserID, input.Filters)

	if !uc.guard.Allow(key) {
		return &ListSalesOutput{Sales: uc.lastListing(key), Throttled: true}, nil
	}

	sales, err := uc.fetch(ctx, input.UserID, input.Filters, key)
	if err != nil {
		if analytics.IsRateLimited(err) {
			uc.scheduleRetry(input.UserID, input.Filters, key)
			return &ListSalesOutput{
				Sales:    uc.lastListing(key),
				Advisory: domainerror.RateLimitedMessage,
			}, nil
		}
		return nil, err
	}

	return &ListSalesOutput{Sales: sales}, nil
}

func (uc *ListSalesUseCase) fetch(ctx context.Context, userID uuid.UUID, filters adapter.SaleFilters, key uuid.UUID) ([]*entity.Sale, error) {
	sales, err := uc.saleRepo.FindByUser(ctx, userID, filters)
	if err != nil {
		return nil, err
	}

	sales = postFilterItems(sales, filters)

	uc.mu.Lock()
	uc.last[key] = sales
	uc.mu.Unlock()

	return sales, nil
}

func (uc *ListSalesUseCase) scheduleRetry(userID uuid.UUID, filters adapter.SaleFilters, key uuid.UUID) {
	if !uc.guard.TryScheduleRetry(key) {
		return
	}

	uc.schedule(uc.retryDelay, func() {
		defer uc.guard.ClearRetry(key)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := uc.fetch(ctx, userID, filters, key); err != nil {
			slog.Warn("sales listing retry failed", "userID", userID, "error", err)
		}
	})
}

func (uc *ListSalesUseCase) lastListing(key uuid.UUID) []*entity.Sale {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if listing, ok := uc.last[key]; ok {
		return listing
	}
	return []*entity.Sale{}
}

// postFilterItems keeps sales that contain at least one line item
// matching the flavor and item-type filters. These two filters are
// applied client-side over the embedded items rather than in the query.
func postFilterItems(sales []*entity.Sale, filters adapter.SaleFilters) []*entity.Sale {
	if filters.Flavor == "" && filters.ItemType == "" {
		return sales
	}

	filtered := make([]*entity.Sale, 0, len(sales))
	for _, s := range sales {
		for _, item := range s.Items {
			flavorMatch := filters.Flavor == "" || item.Flavor == filters.Flavor
			typeMatch := filters.ItemType == "" || item.ItemType == filters.ItemType
			if flavorMatch && typeMatch {
				filtered = append(filtered, s)
				break
			}
		}
	}
	return filtered
}

// queryKey derives a stable guard key for one logical query
// (user + filter combination).
func queryKey(userID uuid.UUID, filters adapter.SaleFilters) uuid.UUID {
	fingerprint := userID.String() +
		"|" + filters.Month +
		"|" + filters.Year +
		"|" + filters.Date +
		"|" + string(filters.PaymentMethod) +
		"|" + filters.Flavor +
		"|" + string(filters.ItemType)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fingerprint))
}
