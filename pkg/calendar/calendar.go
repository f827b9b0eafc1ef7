// Package calendar holds the single calendar-day normalization used across the module.
// Every stored or compared date is reduced to UTC midnight of its UTC calendar date.
package calendar

import (
	"time"
)

const KeyLayout = "2006-01-02"

// Day returns UTC midnight of t's UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays shifts a day by n calendar days.
func AddDays(day time.Time, n int) time.Time {
	return Day(day).AddDate(0, 0, n)
}

// DaysInclusive counts calendar days in [from, to]. Returns 0 when to is before from.
func DaysInclusive(from, to time.Time) int {
	a, b := Day(from), Day(to)
	if b.Before(a) {
		return 0
	}
	return int(b.Sub(a).Hours()/24) + 1
}

// StartOfWeek returns the first day of the week containing t, weeks starting on weekStart.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := Day(t)
	diff := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -diff)
}

func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last calendar day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// Key formats a day as YYYY-MM-DD.
func Key(t time.Time) string {
	return Day(t).Format(KeyLayout)
}

// ParseDay parses YYYY-MM-DD into a normalized day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(KeyLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// Within reports whether day lies in [from, to] after normalization.
func Within(day, from, to time.Time) bool {
	d := Day(day)
	return !d.Before(Day(from)) && !d.After(Day(to))
}
