// Package entity defines the core business entities for the domain layer.
package entity

// PaymentMethod represents how a sale or expense was settled.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "Cash"
	PaymentMethodBank PaymentMethod = "Bank"
)

// ItemType represents the kind of baked good on a sale line item.
type ItemType string

const (
	ItemTypeCake    ItemType = "Cake"
	ItemTypeCupcake ItemType = "Cupcake"
)

// CakeFlavors is the fixed flavor catalog offered by the shop.
var CakeFlavors = []string{
	"Ras Malai",
	"Gulab Jamun",
	"Mixed Fruit",
	"Mango",
	"Pineapple",
	"Strawberry",
	"Blueberry",
	"Orange and Cranberries",
	"Carrot",
	"Chocolate Strawberry",
	"Chocolate Chip",
	"Vanilla",
	"Tiramisu",
}

// ExpenseCategories is the fixed catalog of expense categories.
var ExpenseCategories = []string{
	"Ingredients",
	"Equipment",
	"Packaging",
	"Marketing",
	"Utilities",
	"Transportation",
	"Labor",
	"Rent",
	"General",
}

// IsValidPaymentMethod reports whether the given payment method is known.
func IsValidPaymentMethod(m PaymentMethod) bool {
	return m == PaymentMethodCash || m == PaymentMethodBank
}

// IsValidItemType reports whether the given item type is known.
func IsValidItemType(t ItemType) bool {
	return t == ItemTypeCake || t == ItemTypeCupcake
}

// IsValidFlavor reports whether the flavor is part of the catalog.
func IsValidFlavor(flavor string) bool {
	for _, f := range CakeFlavors {
		if f == flavor {
			return true
		}
	}
	return false
}

// IsValidExpenseCategory reports whether the category is part of the catalog.
func IsValidExpenseCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}
