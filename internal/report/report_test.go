package report_test

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/lifeboard/internal/report"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func expense(c entity.ExpenseCategory, amount int64, date time.Time) entity.Expense {
	return entity.Expense{ID: uuid.New(), Amount: decimal.NewFromInt(amount), Category: c, Date: date}
}

func intPtr(v int) *int { return &v }

// A week of Mon May 13 .. Sun May 19 2024.
func weekRecords() report.Records {
	habit := entity.Habit{ID: uuid.New(), Name: "read", Icon: "book"}
	var logs []entity.HabitLog
	for d := 13; d <= 19; d++ {
		logs = append(logs, entity.HabitLog{HabitID: habit.ID, Date: day(time.May, d), Completed: d <= 17})
	}
	return report.Records{
		Tasks: []entity.Task{
			{ID: uuid.New(), Title: "a", CreatedAt: day(time.May, 13).Add(9 * time.Hour), Completed: true},
			{ID: uuid.New(), Title: "b", CreatedAt: day(time.May, 13).Add(11 * time.Hour)},
			{ID: uuid.New(), Title: "c", CreatedAt: day(time.May, 15).Add(18 * time.Hour), Completed: true},
			{ID: uuid.New(), Title: "outside", CreatedAt: day(time.May, 12), Completed: true},
		},
		Habits: []report.HabitRecords{{Habit: habit, Logs: logs}},
		Expenses: []entity.Expense{
			expense(entity.CategoryFood, 100, day(time.May, 14)),
			expense(entity.CategoryFood, 50, day(time.May, 16)),
			expense(entity.CategoryTransport, 30, day(time.May, 14)),
		},
		PreviousExpenses: []entity.Expense{
			expense(entity.CategoryBills, 200, day(time.May, 8)),
		},
		Moods: []entity.MoodEntry{
			{Mood: 5, Date: day(time.May, 16)},
			{Mood: 4, Energy: intPtr(3), Date: day(time.May, 14)},
		},
	}
}

func TestBuildReportWeek(t *testing.T) {
	r, err := report.BuildReport(report.Weekly, day(time.May, 15).Add(13*time.Hour), weekRecords())
	require.NoError(t, err)

	assert.Equal(t, "2024-05-13", r.Start)
	assert.Equal(t, "2024-05-19", r.End)
	assert.Equal(t, "May 13 - May 19, 2024", r.PeriodLabel)

	assert.Equal(t, 3, r.TasksCreated)
	assert.Equal(t, 2, r.TasksCompleted)
	assert.Equal(t, 67, r.TaskCompletionRate)
	assert.Equal(t, []report.DailyTasks{
		{Date: "2024-05-13", Created: 2, Completed: 1},
		{Date: "2024-05-14"},
		{Date: "2024-05-15", Created: 1, Completed: 1},
		{Date: "2024-05-16"},
	}, r.DailyTasks)

	assert.Equal(t, 5, r.HabitTotalChecks)
	assert.Equal(t, 7, r.HabitPossibleChecks)
	assert.Equal(t, 71, r.HabitConsistencyRate)
	require.Len(t, r.TopHabits, 1)
	assert.Equal(t, "read", r.TopHabits[0].Name)
	assert.Equal(t, 5, r.TopHabits[0].Completed)
	assert.Equal(t, 7, r.TopHabits[0].Total)

	assert.Equal(t, "180", r.TotalSpent.String())
	assert.Equal(t, "200", r.PreviousPeriodSpent.String())
	assert.Equal(t, -10, r.SpendingChange)
	assert.Equal(t, 3, r.ExpenseCount)
	require.Len(t, r.TopCategories, 2)
	assert.Equal(t, entity.CategoryFood, r.TopCategories[0].Category)
	assert.Equal(t, "150", r.TopCategories[0].Total.String())
	assert.Equal(t, entity.CategoryTransport, r.TopCategories[1].Category)
	assert.Equal(t, "30", r.TopCategories[1].Total.String())
	require.Len(t, r.DailyExpenses, 2)
	assert.Equal(t, "2024-05-14", r.DailyExpenses[0].Date)
	assert.Equal(t, "130", r.DailyExpenses[0].Total.String())

	require.NotNil(t, r.AvgMood)
	assert.Equal(t, 4.5, *r.AvgMood)
	require.NotNil(t, r.AvgEnergy)
	assert.Equal(t, 3.0, *r.AvgEnergy)
	assert.Equal(t, 2, r.MoodEntries)
	require.Len(t, r.DailyMood, 2)
	assert.Equal(t, "2024-05-14", r.DailyMood[0].Date)
	assert.Equal(t, 4, r.DailyMood[0].Mood)
	assert.Nil(t, r.DailyMood[1].Energy)
}

func TestDailyTasksIncludeSpendingDays(t *testing.T) {
	records := report.Records{
		Expenses: []entity.Expense{
			expense(entity.CategoryFood, 12, day(time.May, 14)),
			expense(entity.CategoryFood, 3, day(time.May, 20)),
		},
	}
	r, err := report.BuildReport(report.Weekly, day(time.May, 15), records)
	require.NoError(t, err)
	assert.Equal(t, []report.DailyTasks{{Date: "2024-05-14"}}, r.DailyTasks)
	assert.Equal(t, 0, r.TasksCreated)
	assert.Equal(t, 0, r.TaskCompletionRate)
	require.Len(t, r.DailyExpenses, 1)
	assert.Equal(t, r.DailyExpenses[0].Date, r.DailyTasks[0].Date)
}

func TestBuildReportIsIdempotent(t *testing.T) {
	records := weekRecords()
	first, err := report.BuildReport(report.Weekly, day(time.May, 15), records)
	require.NoError(t, err)
	second, err := report.BuildReport(report.Weekly, day(time.May, 15), records)
	require.NoError(t, err)

	a, err := sonic.Marshal(first)
	require.NoError(t, err)
	b, err := sonic.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestBuildReportEmpty(t *testing.T) {
	r, err := report.BuildReport(report.Monthly, day(time.February, 10), report.Records{})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", r.Start)
	assert.Equal(t, "2024-02-29", r.End)
	assert.Equal(t, "February 2024", r.PeriodLabel)
	assert.Equal(t, 0, r.TaskCompletionRate)
	assert.Equal(t, 0, r.HabitConsistencyRate)
	assert.Equal(t, 0, r.HabitPossibleChecks)
	assert.Equal(t, 0, r.SpendingChange)
	assert.True(t, r.TotalSpent.IsZero())
	assert.Nil(t, r.AvgMood)
	assert.Nil(t, r.AvgEnergy)
	assert.Empty(t, r.TopHabits)
	assert.Empty(t, r.TopCategories)
	assert.Empty(t, r.DailyTasks)
}

func TestBuildReportUnknownPeriod(t *testing.T) {
	r, err := report.BuildReport("yearly", day(time.May, 1), report.Records{})
	assert.ErrorIs(t, err, report.ErrUnknownPeriod)
	assert.Nil(t, r)
}

func TestSpendingChangeWithoutPreviousSpending(t *testing.T) {
	records := report.Records{Expenses: []entity.Expense{expense(entity.CategoryFood, 100, day(time.May, 14))}}
	r, err := report.BuildReport(report.Weekly, day(time.May, 14), records)
	require.NoError(t, err)
	assert.Equal(t, "100", r.TotalSpent.String())
	assert.Equal(t, 0, r.SpendingChange)
}

func TestTopCategoriesTieKeepsInputOrder(t *testing.T) {
	records := report.Records{Expenses: []entity.Expense{
		expense(entity.CategoryHealth, 50, day(time.May, 14)),
		expense(entity.CategoryGifts, 20, day(time.May, 14)),
		expense(entity.CategoryBills, 50, day(time.May, 15)),
		expense(entity.CategoryGifts, 30, day(time.May, 16)),
	}}
	r, err := report.BuildReport(report.Weekly, day(time.May, 14), records)
	require.NoError(t, err)
	var order []entity.ExpenseCategory
	for _, c := range r.TopCategories {
		order = append(order, c.Category)
	}
	assert.Equal(t, []entity.ExpenseCategory{entity.CategoryHealth, entity.CategoryGifts, entity.CategoryBills}, order)
}

func TestTopHabitsLimitAndOrder(t *testing.T) {
	var habits []report.HabitRecords
	for i := 0; i < 7; i++ {
		h := entity.Habit{ID: uuid.New(), Name: string(rune('a' + i))}
		var logs []entity.HabitLog
		for d := 0; d < i%3; d++ {
			logs = append(logs, entity.HabitLog{HabitID: h.ID, Date: day(time.May, 13+d), Completed: true})
		}
		habits = append(habits, report.HabitRecords{Habit: h, Logs: logs})
	}
	habits = append(habits, report.HabitRecords{Habit: entity.Habit{ID: uuid.New(), Name: "archived", Archived: true}})

	r, err := report.BuildReport(report.Weekly, day(time.May, 13), report.Records{Habits: habits})
	require.NoError(t, err)
	// completed counts by name: a0 b1 c2 d0 e1 f2 g0
	var names []string
	for _, h := range r.TopHabits {
		names = append(names, h.Name)
	}
	assert.Equal(t, []string{"c", "f", "b", "e", "a"}, names)
	assert.Equal(t, 7*7, r.HabitPossibleChecks)
	assert.Equal(t, 6, r.HabitTotalChecks)
}
