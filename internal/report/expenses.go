package report

import (
	"time"

	"github.com/limbo/lifeboard/pkg/calendar"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/shopspring/decimal"
)

// ExpenseStats is the spending of one calendar month.
type ExpenseStats struct {
	Month      string          `json:"month"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
	ByCategory []CategoryTotal `json:"byCategory"`
}

// SummarizeExpenses totals the expenses dated inside the month of month.
// Categories keep the order they are first seen in.
func SummarizeExpenses(month time.Time, expenses []entity.Expense) ExpenseStats {
	start, end := calendar.StartOfMonth(month), calendar.EndOfMonth(month)
	in := make([]entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		day := calendar.Day(e.Date)
		if !day.Before(start) && !day.After(end) {
			in = append(in, e)
		}
	}
	total, categories := groupByCategory(in)
	return ExpenseStats{
		Month:      start.Format("2006-01"),
		Total:      total,
		Count:      len(in),
		ByCategory: categories,
	}
}

// groupByCategory sums expenses per category in first-seen order.
func groupByCategory(expenses []entity.Expense) (decimal.Decimal, []CategoryTotal) {
	total := decimal.Zero
	categories := make([]CategoryTotal, 0)
	idx := make(map[entity.ExpenseCategory]int)
	for _, e := range expenses {
		total = total.Add(e.Amount)
		if i, ok := idx[e.Category]; ok {
			categories[i].Total = categories[i].Total.Add(e.Amount)
			continue
		}
		idx[e.Category] = len(categories)
		categories = append(categories, CategoryTotal{Category: e.Category, Total: e.Amount})
	}
	return total, categories
}
