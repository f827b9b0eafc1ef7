package report_test

import (
	"testing"
	"time"

	"github.com/limbo/lifeboard/internal/report"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareBudgets(t *testing.T) {
	goals := []entity.BudgetGoal{
		{Month: day(time.May, 1), Scope: entity.OverallBudget(), Amount: decimal.NewFromInt(500)},
		{Month: day(time.May, 1), Scope: entity.CategoryBudget(entity.CategoryFood), Amount: decimal.NewFromInt(120)},
		{Month: day(time.May, 1), Scope: entity.CategoryBudget(entity.CategoryHealth), Amount: decimal.Zero},
	}
	expenses := []entity.Expense{
		expense(entity.CategoryFood, 100, day(time.May, 2)),
		expense(entity.CategoryFood, 50, day(time.May, 20)),
		expense(entity.CategoryTransport, 30, day(time.May, 31)),
		expense(entity.CategoryFood, 1000, day(time.April, 30)),
	}
	statuses := report.CompareBudgets(goals, expenses)
	require.Len(t, statuses, 3)

	overall := statuses[0]
	assert.Equal(t, "2024-05-01", overall.Month)
	assert.True(t, overall.Scope.IsOverall())
	assert.Equal(t, "180", overall.Spent.String())
	assert.Equal(t, "320", overall.Remaining.String())
	assert.Equal(t, 36, overall.Percent)
	assert.False(t, overall.Over)

	food := statuses[1]
	assert.Equal(t, "150", food.Spent.String())
	assert.Equal(t, 100, food.Percent)
	assert.True(t, food.Over)
	assert.Equal(t, "-30", food.Remaining.String())

	health := statuses[2]
	assert.True(t, health.Spent.IsZero())
	assert.Equal(t, 0, health.Percent)
	assert.False(t, health.Over)
}

func TestCompareBudgetsExactlyAtLimit(t *testing.T) {
	goals := []entity.BudgetGoal{{Month: day(time.May, 1), Amount: decimal.NewFromInt(100)}}
	statuses := report.CompareBudgets(goals, []entity.Expense{expense(entity.CategoryOther, 100, day(time.May, 9))})
	require.Len(t, statuses, 1)
	assert.Equal(t, 100, statuses[0].Percent)
	assert.False(t, statuses[0].Over)
}
