package report

import (
	"time"

	"github.com/limbo/lifeboard/pkg/calendar"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/limbo/lifeboard/pkg/rounding"
	"github.com/shopspring/decimal"
)

type BudgetStatus struct {
	Month     string             `json:"month"`
	Scope     entity.BudgetScope `json:"scope"`
	Amount    decimal.Decimal    `json:"amount"`
	Spent     decimal.Decimal    `json:"spent"`
	Remaining decimal.Decimal    `json:"remaining"`
	// Percent of the goal used, capped at 100.
	Percent int  `json:"percent"`
	Over    bool `json:"over"`
}

// CompareBudgets measures each goal against the expenses of its month.
// An overall goal counts every expense, a category goal only its category.
func CompareBudgets(goals []entity.BudgetGoal, expenses []entity.Expense) []BudgetStatus {
	statuses := make([]BudgetStatus, 0, len(goals))
	for _, g := range goals {
		month := calendar.StartOfMonth(g.Month)
		spent := spentIn(month, g.Scope, expenses)
		pct := rounding.PercentDecimal(spent, g.Amount)
		if pct > 100 {
			pct = 100
		}
		statuses = append(statuses, BudgetStatus{
			Month:     calendar.Key(month),
			Scope:     g.Scope,
			Amount:    g.Amount,
			Spent:     spent,
			Remaining: g.Amount.Sub(spent),
			Percent:   pct,
			Over:      spent.GreaterThan(g.Amount),
		})
	}
	return statuses
}

func spentIn(month time.Time, scope entity.BudgetScope, expenses []entity.Expense) decimal.Decimal {
	end := calendar.EndOfMonth(month)
	category, scoped := scope.Category()
	spent := decimal.Zero
	for _, e := range expenses {
		if !calendar.Within(e.Date, month, end) {
			continue
		}
		if scoped && e.Category != category {
			continue
		}
		spent = spent.Add(e.Amount)
	}
	return spent
}
