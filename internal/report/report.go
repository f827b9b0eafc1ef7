// Package report aggregates one period of tasks, habits, expenses and moods
// into a single Report. BuildReport does no I/O; callers fetch Records first.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeboard/internal/streak"
	"github.com/limbo/lifeboard/pkg/calendar"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/limbo/lifeboard/pkg/rounding"
	"github.com/shopspring/decimal"
)

const topN = 5

// HabitRecords is a habit with its logs for the report window.
type HabitRecords struct {
	Habit entity.Habit
	Logs  []entity.HabitLog
}

// Records is everything BuildReport reads. All slices must come from the same snapshot.
type Records struct {
	Tasks            []entity.Task
	Habits           []HabitRecords
	Expenses         []entity.Expense
	PreviousExpenses []entity.Expense
	Moods            []entity.MoodEntry
}

type TopHabit struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Completed int       `json:"completed"`
	Total     int       `json:"total"`
}

type CategoryTotal struct {
	Category entity.ExpenseCategory `json:"category"`
	Total    decimal.Decimal        `json:"total"`
}

type DailyTasks struct {
	Date      string `json:"date"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

type DailyExpenses struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

type DailyMood struct {
	Date   string `json:"date"`
	Mood   int    `json:"mood"`
	Energy *int   `json:"energy"`
}

type Report struct {
	Period      PeriodType `json:"period"`
	PeriodLabel string     `json:"periodLabel"`
	Start       string     `json:"start"`
	End         string     `json:"end"`

	TasksCreated       int `json:"tasksCreated"`
	TasksCompleted     int `json:"tasksCompleted"`
	TaskCompletionRate int `json:"taskCompletionRate"`

	HabitTotalChecks     int        `json:"habitTotalChecks"`
	HabitPossibleChecks  int        `json:"habitPossibleChecks"`
	HabitConsistencyRate int        `json:"habitConsistencyRate"`
	TopHabits            []TopHabit `json:"topHabits"`

	TotalSpent          decimal.Decimal `json:"totalSpent"`
	PreviousPeriodSpent decimal.Decimal `json:"previousPeriodSpent"`
	SpendingChange      int             `json:"spendingChange"`
	TopCategories       []CategoryTotal `json:"topCategories"`
	ExpenseCount        int             `json:"expenseCount"`

	AvgMood     *float64 `json:"avgMood"`
	AvgEnergy   *float64 `json:"avgEnergy"`
	MoodEntries int      `json:"moodEntries"`

	DailyTasks    []DailyTasks    `json:"dailyTasks"`
	DailyExpenses []DailyExpenses `json:"dailyExpenses"`
	DailyMood     []DailyMood     `json:"dailyMood"`
}

// BuildReport computes the report of the period of type t containing anchor.
// Records outside the window are ignored, so over-fetching is harmless.
func BuildReport(t PeriodType, anchor time.Time, records Records) (*Report, error) {
	period, err := PeriodFor(t, anchor)
	if err != nil {
		return nil, err
	}
	r := &Report{
		Period:      period.Type,
		PeriodLabel: period.Label,
		Start:       calendar.Key(period.Start),
		End:         calendar.Key(period.End),
	}
	r.addTasks(period, records.Tasks, records.Expenses)
	r.addHabits(period, records.Habits)
	r.addExpenses(period, records.Expenses, records.PreviousExpenses)
	r.addMoods(period, records.Moods)
	return r, nil
}

// addTasks fills the task totals. The daily series covers every day with a
// task or an expense, so the task and spending series share their dates.
func (r *Report) addTasks(p Period, tasks []entity.Task, expenses []entity.Expense) {
	byDay := make(map[time.Time]*DailyTasks)
	var days []time.Time
	for _, task := range tasks {
		if !p.Contains(task.CreatedAt) {
			continue
		}
		day := calendar.Day(task.CreatedAt)
		d, ok := byDay[day]
		if !ok {
			d = &DailyTasks{Date: calendar.Key(day)}
			byDay[day] = d
			days = append(days, day)
		}
		r.TasksCreated++
		d.Created++
		if task.Completed {
			r.TasksCompleted++
			d.Completed++
		}
	}
	r.TaskCompletionRate = rounding.Percent(r.TasksCompleted, r.TasksCreated)

	for _, e := range expenses {
		if !p.Contains(e.Date) {
			continue
		}
		day := calendar.Day(e.Date)
		if _, ok := byDay[day]; !ok {
			byDay[day] = &DailyTasks{Date: calendar.Key(day)}
			days = append(days, day)
		}
	}

	sortDays(days)
	r.DailyTasks = make([]DailyTasks, 0, len(days))
	for _, day := range days {
		r.DailyTasks = append(r.DailyTasks, *byDay[day])
	}
}

func (r *Report) addHabits(p Period, habits []HabitRecords) {
	days := p.Days()
	histories := make([]streak.History, 0, len(habits))
	top := make([]TopHabit, 0, len(habits))
	for _, hr := range habits {
		if hr.Habit.Archived {
			continue
		}
		h := HistoryOf(hr)
		histories = append(histories, h)
		top = append(top, TopHabit{
			ID:        hr.Habit.ID,
			Name:      hr.Habit.Name,
			Icon:      hr.Habit.Icon,
			Completed: streak.CompletedWithin(h, p.Start, p.End),
			Total:     days,
		})
	}
	c := streak.MeasureConsistency(histories, p.Start, p.End)
	r.HabitTotalChecks = c.Actual
	r.HabitPossibleChecks = c.Possible
	r.HabitConsistencyRate = c.Rate

	sort.SliceStable(top, func(i, j int) bool { return top[i].Completed > top[j].Completed })
	if len(top) > topN {
		top = top[:topN]
	}
	r.TopHabits = top
}

// HistoryOf converts stored logs of one habit into engine input.
func HistoryOf(hr HabitRecords) streak.History {
	h := streak.History{HabitID: hr.Habit.ID, Events: make([]streak.CompletionEvent, 0, len(hr.Logs))}
	for _, l := range hr.Logs {
		h.Events = append(h.Events, streak.CompletionEvent{Date: l.Date, Completed: l.Completed})
	}
	return h
}

func (r *Report) addExpenses(p Period, expenses, previous []entity.Expense) {
	in := make([]entity.Expense, 0, len(expenses))
	byDay := make(map[time.Time]decimal.Decimal)
	var days []time.Time
	for _, e := range expenses {
		if !p.Contains(e.Date) {
			continue
		}
		in = append(in, e)
		day := calendar.Day(e.Date)
		if _, ok := byDay[day]; !ok {
			days = append(days, day)
		}
		byDay[day] = byDay[day].Add(e.Amount)
	}
	var categories []CategoryTotal
	r.TotalSpent, categories = groupByCategory(in)
	r.ExpenseCount = len(in)

	prev := p.Previous()
	r.PreviousPeriodSpent = decimal.Zero
	for _, e := range previous {
		if prev.Contains(e.Date) {
			r.PreviousPeriodSpent = r.PreviousPeriodSpent.Add(e.Amount)
		}
	}
	r.SpendingChange = rounding.PercentDecimal(r.TotalSpent.Sub(r.PreviousPeriodSpent), r.PreviousPeriodSpent)

	sort.SliceStable(categories, func(i, j int) bool { return categories[i].Total.GreaterThan(categories[j].Total) })
	if len(categories) > topN {
		categories = categories[:topN]
	}
	r.TopCategories = categories

	sortDays(days)
	r.DailyExpenses = make([]DailyExpenses, 0, len(days))
	for _, day := range days {
		r.DailyExpenses = append(r.DailyExpenses, DailyExpenses{Date: calendar.Key(day), Total: byDay[day]})
	}
}

func (r *Report) addMoods(p Period, moods []entity.MoodEntry) {
	in := make([]entity.MoodEntry, 0, len(moods))
	for _, m := range moods {
		if p.Contains(m.Date) {
			in = append(in, m)
		}
	}
	sort.SliceStable(in, func(i, j int) bool { return calendar.Day(in[i].Date).Before(calendar.Day(in[j].Date)) })

	moodSum, energySum, energyCount := 0, 0, 0
	r.DailyMood = make([]DailyMood, 0, len(in))
	for _, m := range in {
		moodSum += m.Mood
		if m.Energy != nil {
			energySum += *m.Energy
			energyCount++
		}
		r.DailyMood = append(r.DailyMood, DailyMood{Date: calendar.Key(m.Date), Mood: m.Mood, Energy: m.Energy})
	}
	r.MoodEntries = len(in)
	r.AvgMood = rounding.Average1(moodSum, len(in))
	r.AvgEnergy = rounding.Average1(energySum, energyCount)
}

func sortDays(days []time.Time) {
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
}
