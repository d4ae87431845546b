// Package analytics contains the analytics aggregation use cases.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cakebook/backend/internal/domain/entity"
)

// monthStats is the shared per-month accumulator. Both public trend
// series are projected from this single map, so a month that appears
// only in expenses still yields an earnings entry with zeros, and vice
// versa.
type monthStats struct {
	earnings decimal.Decimal
	sales    int
	expenses decimal.Decimal
}

const monthKeyFormat = "2006-01"

// Compute builds an analytics snapshot from a user's sales and expenses.
// It is pure and deterministic: identical inputs yield field-equal
// snapshots. Inputs are trusted verbatim (stored subtotals and total
// amounts are summed, never recomputed); validation belongs to the write
// path. It never fails and never returns nil.
func Compute(sales []*entity.Sale, expenses []*entity.Expense) *entity.AnalyticsSnapshot {
	snapshot := entity.NewEmptyAnalyticsSnapshot()

	flavorStats := make(map[string]*entity.FlavorStat)
	flavorOrder := make([]string, 0)
	typeStats := make(map[entity.ItemType]*entity.ItemTypeStat)
	typeOrder := make([]entity.ItemType, 0, 2)
	months := make(map[string]*monthStats)

	for _, sale := range sales {
		snapshot.TotalEarnings = snapshot.TotalEarnings.Add(sale.TotalAmount)
		switch sale.PaymentMethod {
		case entity.PaymentMethodCash:
			snapshot.CashEarnings = snapshot.CashEarnings.Add(sale.TotalAmount)
		case entity.PaymentMethodBank:
			snapshot.BankEarnings = snapshot.BankEarnings.Add(sale.TotalAmount)
		}

		monthKey := sale.SaleDate.Format(monthKeyFormat)
		month := ensureMonth(months, monthKey)
		month.earnings = month.earnings.Add(sale.TotalAmount)

		// Line items carry no date of their own; the parent sale's
		// date buckets all of them.
		for i := range sale.Items {
			item := &sale.Items[i]

			snapshot.TotalItemsSold += item.Quantity
			switch item.ItemType {
			case entity.ItemTypeCake:
				snapshot.TotalCakesSold += item.Quantity
			case entity.ItemTypeCupcake:
				snapshot.TotalCupcakesSold += item.Quantity
			}
			month.sales += item.Quantity

			flavorKey := item.Flavor + "|" + string(item.ItemType)
			fs, ok := flavorStats[flavorKey]
			if !ok {
				fs = &entity.FlavorStat{
					Flavor:   item.Flavor,
					ItemType: item.ItemType,
					Earnings: decimal.Zero,
				}
				flavorStats[flavorKey] = fs
				flavorOrder = append(flavorOrder, flavorKey)
			}
			fs.Count += item.Quantity
			fs.Earnings = fs.Earnings.Add(item.Subtotal)

			ts, ok := typeStats[item.ItemType]
			if !ok {
				ts = &entity.ItemTypeStat{
					ItemType: item.ItemType,
					Earnings: decimal.Zero,
				}
				typeStats[item.ItemType] = ts
				typeOrder = append(typeOrder, item.ItemType)
			}
			ts.Count += item.Quantity
			ts.Earnings = ts.Earnings.Add(item.Subtotal)
		}
	}

	categoryTotals := make(map[string]decimal.Decimal)
	categoryOrder := make([]string, 0)

	for _, expense := range expenses {
		snapshot.TotalExpenses = snapshot.TotalExpenses.Add(expense.Amount)
		switch expense.PaymentMethod {
		case entity.PaymentMethodCash:
			snapshot.CashExpenses = snapshot.CashExpenses.Add(expense.Amount)
		case entity.PaymentMethodBank:
			snapshot.BankExpenses = snapshot.BankExpenses.Add(expense.Amount)
		}

		if _, ok := categoryTotals[expense.Category]; !ok {
			categoryTotals[expense.Category] = decimal.Zero
			categoryOrder = append(categoryOrder, expense.Category)
		}
		categoryTotals[expense.Category] = categoryTotals[expense.Category].Add(expense.Amount)

		monthKey := expense.ExpenseDate.Format(monthKeyFormat)
		month := ensureMonth(months, monthKey)
		month.expenses = month.expenses.Add(expense.Amount)
	}

	snapshot.NetIncome = snapshot.TotalEarnings.Sub(snapshot.TotalExpenses)
	snapshot.NetCashFlow = snapshot.CashEarnings.Sub(snapshot.CashExpenses)
	snapshot.NetBankFlow = snapshot.BankEarnings.Sub(snapshot.BankExpenses)

	snapshot.PopularFlavors = projectFlavors(flavorStats, flavorOrder)
	snapshot.ItemTypeBreakdown = projectItemTypes(typeStats, typeOrder)
	snapshot.ExpensesByCategory = projectCategories(categoryTotals, categoryOrder)
	snapshot.MonthlyTrends, snapshot.MonthlyExpenseTrends = projectMonths(months)

	return snapshot
}

func ensureMonth(months map[string]*monthStats, key string) *monthStats {
	month, ok := months[key]
	if !ok {
		month = &monthStats{earnings: decimal.Zero, expenses: decimal.Zero}
		months[key] = month
	}
	return month
}

// projectFlavors orders flavor stats by descending count. Ties break
// alphabetically by flavor, then item type, so the ordering does not
// depend on datastore query order.
func projectFlavors(stats map[string]*entity.FlavorStat, order []string) []entity.FlavorStat {
	flavors := make([]entity.FlavorStat, 0, len(order))
	for _, key := range order {
		flavors = append(flavors, *stats[key])
	}
	sort.Slice(flavors, func(i, j int) bool {
		if flavors[i].Count != flavors[j].Count {
			return flavors[i].Count > flavors[j].Count
		}
		if flavors[i].Flavor != flavors[j].Flavor {
			return flavors[i].Flavor < flavors[j].Flavor
		}
		return flavors[i].ItemType < flavors[j].ItemType
	})
	return flavors
}

func projectItemTypes(stats map[entity.ItemType]*entity.ItemTypeStat, order []entity.ItemType) []entity.ItemTypeStat {
	breakdown := make([]entity.ItemTypeStat, 0, len(order))
	for _, key := range order {
		breakdown = append(breakdown, *stats[key])
	}
	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].ItemType < breakdown[j].ItemType
	})
	return breakdown
}

// projectCategories orders category totals by descending amount, ties
// alphabetically by category.
func projectCategories(totals map[string]decimal.Decimal, order []string) []entity.CategoryExpense {
	categories := make([]entity.CategoryExpense, 0, len(order))
	for _, category := range order {
		categories = append(categories, entity.CategoryExpense{
			Category: category,
			Amount:   totals[category],
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		cmp := categories[i].Amount.Cmp(categories[j].Amount)
		if cmp != 0 {
			return cmp > 0
		}
		return categories[i].Category < categories[j].Category
	})
	return categories
}

// projectMonths converts the shared month map into the two public trend
// series. Both carry the same month key set, sorted ascending; the
// "YYYY-MM" format makes lexicographic order chronological.
func projectMonths(months map[string]*monthStats) ([]entity.MonthlyTrend, []entity.MonthlyExpenseTrend) {
	keys := make([]string, 0, len(months))
	for key := range months {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	trends := make([]entity.MonthlyTrend, 0, len(keys))
	expenseTrends := make([]entity.MonthlyExpenseTrend, 0, len(keys))
	for _, key := range keys {
		month := months[key]
		trends = append(trends, entity.MonthlyTrend{
			Month:    key,
			Earnings: month.earnings,
			Sales:    month.sales,
		})
		expenseTrends = append(expenseTrends, entity.MonthlyExpenseTrend{
			Month:     key,
			Expenses:  month.expenses,
			NetIncome: month.earnings.Sub(month.expenses),
		})
	}
	return trends, expenseTrends
}
