// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// FlavorStat aggregates sold quantity and earnings for one
// (flavor, item type) pair.
type FlavorStat struct {
	Flavor   string          `json:"flavor"`
	ItemType ItemType        `json:"itemType"`
	Count    int             `json:"count"`
	Earnings decimal.Decimal `json:"earnings"`
}

// ItemTypeStat aggregates sold quantity and earnings for one item type.
type ItemTypeStat struct {
	ItemType ItemType        `json:"itemType"`
	Count    int             `json:"count"`
	Earnings decimal.Decimal `json:"earnings"`
}

// CategoryExpense aggregates expense amounts for one category.
type CategoryExpense struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// MonthlyTrend holds earnings and sold-item volume for one calendar month.
type MonthlyTrend struct {
	Month    string          `json:"month"` // "YYYY-MM"
	Earnings decimal.Decimal `json:"earnings"`
	Sales    int             `json:"sales"`
}

// MonthlyExpenseTrend holds expenses and net income for one calendar month.
type MonthlyExpenseTrend struct {
	Month     string          `json:"month"` // "YYYY-MM"
	Expenses  decimal.Decimal `json:"expenses"`
	NetIncome decimal.Decimal `json:"netIncome"`
}

// AnalyticsSnapshot is one complete, immutable analytics result over a
// user's sales and expenses. A snapshot is never mutated after being
// built; recomputation produces a fresh one. Absence of data is
// represented by zeros and empty sequences, never by a nil snapshot.
type AnalyticsSnapshot struct {
	TotalEarnings     decimal.Decimal `json:"totalEarnings"`
	TotalItemsSold    int             `json:"totalItemsSold"`
	TotalCakesSold    int             `json:"totalCakesSold"`
	TotalCupcakesSold int             `json:"totalCupcakesSold"`
	CashEarnings      decimal.Decimal `json:"cashEarnings"`
	BankEarnings      decimal.Decimal `json:"bankEarnings"`

	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	CashExpenses  decimal.Decimal `json:"cashExpenses"`
	BankExpenses  decimal.Decimal `json:"bankExpenses"`

	NetIncome   decimal.Decimal `json:"netIncome"`
	NetCashFlow decimal.Decimal `json:"netCashFlow"`
	NetBankFlow decimal.Decimal `json:"netBankFlow"`

	PopularFlavors       []FlavorStat          `json:"popularFlavors"`
	ItemTypeBreakdown    []ItemTypeStat        `json:"itemTypeBreakdown"`
	ExpensesByCategory   []CategoryExpense     `json:"expensesByCategory"`
	MonthlyTrends        []MonthlyTrend        `json:"monthlyTrends"`
	MonthlyExpenseTrends []MonthlyExpenseTrend `json:"monthlyExpenseTrends"`
}

// NewEmptyAnalyticsSnapshot returns a snapshot with every numeric field
// zero and every sequence empty.
func NewEmptyAnalyticsSnapshot() *AnalyticsSnapshot {
	return &AnalyticsSnapshot{
		TotalEarnings:        decimal.Zero,
		CashEarnings:         decimal.Zero,
		BankEarnings:         decimal.Zero,
		TotalExpenses:        decimal.Zero,
		CashExpenses:         decimal.Zero,
		BankExpenses:         decimal.Zero,
		NetIncome:            decimal.Zero,
		NetCashFlow:          decimal.Zero,
		NetBankFlow:          decimal.Zero,
		PopularFlavors:       []FlavorStat{},
		ItemTypeBreakdown:    []ItemTypeStat{},
		ExpensesByCategory:   []CategoryExpense{},
		MonthlyTrends:        []MonthlyTrend{},
		MonthlyExpenseTrends: []MonthlyExpenseTrend{},
	}
}
