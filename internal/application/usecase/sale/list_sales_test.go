// Package sale contains sale-related use cases.
package sale

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

func saleWithItems(saleDate string, items ...entity.NewSaleItemInput) *entity.Sale {
	d, err := time.Parse("2006-01-02", saleDate)
	if err != nil {
		panic(err)
	}
	return entity.NewSale(uuid.New(), d, entity.PaymentMethodCash, "", items)
}

func lineItem(itemType entity.ItemType, flavor string) entity.NewSaleItemInput {
	return entity.NewSaleItemInput{
		ItemType:     itemType,
		Flavor:       flavor,
		Quantity:     1,
		PricePerItem: money("10.00"),
	}
}

func TestListSales_ReturnsListing(t *testing.T) {
	repo := &stubSaleRepo{sales: []*entity.Sale{
		saleWithItems("2025-01-10", lineItem(entity.ItemTypeCake, "Vanilla")),
	}}
	uc := NewListSalesUseCase(repo, 0, 3*time.Second)

	output, err := uc.Execute(context.Background(), ListSalesInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Sales) != 1 {
		t.Errorf("expected 1 sale, got %d", len(output.Sales))
	}
	if output.Throttled || output.Advisory != "" {
		t.Errorf("expected a clean listing, got throttled=%v advisory=%q", output.Throttled, output.Advisory)
	}
}

func TestListSales_PostFilters(t *testing.T) {
	sales := []*entity.Sale{
		saleWithItems("2025-01-10",
			lineItem(entity.ItemTypeCake, "Vanilla"),
			lineItem(entity.ItemTypeCupcake, "Mango"),
		),
		saleWithItems("2025-01-11", lineItem(entity.ItemTypeCupcake, "Vanilla")),
		saleWithItems("2025-01-12", lineItem(entity.ItemTypeCake, "Tiramisu")),
	}

	t.Run("flavor filter keeps sales with a matching item", func(t *testing.T) {
		repo := &stubSaleRepo{sales: sales}
		uc := NewListSalesUseCase(repo, 0, time.Second)

		output, err := uc.Execute(context.Background(), ListSalesInput{
			UserID:  uuid.New(),
			Filters: adapter.SaleFilters{Flavor: "Vanilla"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Sales) != 2 {
			t.Errorf("expected 2 sales with Vanilla items, got %d", len(output.Sales))
		}
	})

	t.Run("flavor and type filters combine per item", func(t *testing.T) {
		repo := &stubSaleRepo{sales: sales}
		uc := NewListSalesUseCase(repo, 0, time.Second)

		output, err := uc.Execute(context.Background(), ListSalesInput{
			UserID: uuid.New(),
			Filters: adapter.SaleFilters{
				Flavor:   "Vanilla",
				ItemType: entity.ItemTypeCupcake,
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Both filters must match on the same line item: the sale with a
		// Vanilla cake and a Mango cupcake is excluded.
		if len(output.Sales) != 1 {
			t.Errorf("expected 1 sale with a Vanilla cupcake item, got %d", len(output.Sales))
		}
	})

	t.Run("no filters pass everything through", func(t *testing.T) {
		repo := &stubSaleRepo{sales: sales}
		uc := NewListSalesUseCase(repo, 0, time.Second)

		output, err := uc.Execute(context.Background(), ListSalesInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Sales) != 3 {
			t.Errorf("expected all 3 sales, got %d", len(output.Sales))
		}
	})
}

func TestListSales_CooldownPerLogicalQuery(t *testing.T) {
	repo := &stubSaleRepo{sales: []*entity.Sale{
		saleWithItems("2025-01-10", lineItem(entity.ItemTypeCake, "Vanilla")),
	}}
	uc := NewListSalesUseCase(repo, time.Second, 3*time.Second)
	userID := uuid.New()

	if _, err := uc.Execute(context.Background(), ListSalesInput{UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("same query inside the window serves the previous listing", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListSalesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Throttled {
			t.Error("expected the repeat query to be throttled")
		}
		if len(output.Sales) != 1 {
			t.Errorf("expected the previous listing, got %d sales", len(output.Sales))
		}
		if repo.fetches != 1 {
			t.Errorf("expected one fetch, got %d", repo.fetches)
		}
	})

	t.Run("different filters are a different logical query", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListSalesInput{
			UserID:  userID,
			Filters: adapter.SaleFilters{Year: "2025"},
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

func TestListSales_RateLimited(t *testing.T) {
	repo := &stubSaleRepo{findErr: errors.New("rate limit exceeded")}
	uc := NewListSalesUseCase(repo, 0, 3*time.Second)

	var scheduledDelay time.Duration
	uc.schedule = func(delay time.Duration, fn func()) {
		scheduledDelay = delay
		repo.mu.Lock()
		repo.findErr = nil
		repo.mu.Unlock()
		fn()
	}

	output, err := uc.Execute(context.Background(), ListSalesInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("rate-limited listing must not surface an error, got: %v", err)
	}
	if output.Advisory != domainerror.RateLimitedMessage {
		t.Errorf("expected advisory %q, got %q", domainerror.RateLimitedMessage, output.Advisory)
	}
	if output.Sales == nil {
		t.Error("expected an empty listing, not nil")
	}
	if scheduledDelay != 3*time.Second {
		t.Errorf("expected retry after 3s, got %v", scheduledDelay)
	}
}

func TestListSales_OtherErrorsSurface(t *testing.T) {
	findErr := errors.New("connection refused")
	repo := &stubSaleRepo{findErr: findErr}
	uc := NewListSalesUseCase(repo, 0, 3*time.Second)

	_, err := uc.Execute(context.Background(), ListSalesInput{UserID: uuid.New()})
	if !errors.Is(err, findErr) {
		t.Fatalf("expected the fetch error verbatim, got: %v", err)
	}
}
