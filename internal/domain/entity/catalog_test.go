// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestCatalogValidation(t *testing.T) {
	t.Run("payment methods", func(t *testing.T) {
		if !IsValidPaymentMethod(PaymentMethodCash) || !IsValidPaymentMethod(PaymentMethodBank) {
			t.Error("expected Cash and Bank to be valid")
		}
		if IsValidPaymentMethod("Crypto") || IsValidPaymentMethod("") {
			t.Error("expected unknown payment methods to be invalid")
		}
		// Matching is case sensitive.
		if IsValidPaymentMethod("cash") {
			t.Error("expected lowercase variant to be invalid")
		}
	})

	t.Run("item types", func(t *testing.T) {
		if !IsValidItemType(ItemTypeCake) || !IsValidItemType(ItemTypeCupcake) {
			t.Error("expected Cake and Cupcake to be valid")
		}
		if IsValidItemType("Pie") {
			t.Error("expected unknown item types to be invalid")
		}
	})

	t.Run("flavors", func(t *testing.T) {
		if len(CakeFlavors) != 13 {
			t.Errorf("expected 13 catalog flavors, got %d", len(CakeFlavors))
		}
		for _, flavor := range CakeFlavors {
			if !IsValidFlavor(flavor) {
				t.Errorf("expected catalog flavor %q to be valid", flavor)
			}
		}
		if IsValidFlavor("Durian") || IsValidFlavor("vanilla") {
			t.Error("expected non-catalog flavors to be invalid")
		}
	})

	t.Run("expense categories", func(t *testing.T) {
		if len(ExpenseCategories) != 9 {
			t.Errorf("expected 9 catalog categories, got %d", len(ExpenseCategories))
		}
		for _, category := range ExpenseCategories {
			if !IsValidExpenseCategory(category) {
				t.Errorf("expected catalog category %q to be valid", category)
			}
		}
		if IsValidExpenseCategory("Miscellaneous") {
			t.Error("expected non-catalog categories to be invalid")
		}
	})
}

func TestNewSale_ComputesAmounts(t *testing.T) {
	price := func(v string) decimal.Decimal {
		d, _ := decimal.NewFromString(v)
		return d
	}

	sale := NewSale(
		uuid.New(),
		time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		PaymentMethodCash,
		"birthday order",
		[]NewSaleItemInput{
			{ItemType: ItemTypeCake, Flavor: "Vanilla", Quantity: 2, PricePerItem: price("25.50")},
			{ItemType: ItemTypeCupcake, Flavor: "Mango", Quantity: 6, PricePerItem: price("3.50")},
		},
	)

	if len(sale.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(sale.Items))
	}
	if want := price("51"); !sale.Items[0].Subtotal.Equal(want) {
		t.Errorf("expected first subtotal %s, got %s", want, sale.Items[0].Subtotal)
	}
	if want := price("21"); !sale.Items[1].Subtotal.Equal(want) {
		t.Errorf("expected second subtotal %s, got %s", want, sale.Items[1].Subtotal)
	}
	if want := price("72"); !sale.TotalAmount.Equal(want) {
		t.Errorf("expected total %s, got %s", want, sale.TotalAmount)
	}
	for _, item := range sale.Items {
		if item.SaleID != sale.ID {
			t.Error("expected line items to reference the parent sale")
		}
	}
}
