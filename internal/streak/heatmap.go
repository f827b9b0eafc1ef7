package streak

import (
	"time"

	"github.com/limbo/lifeboard/pkg/calendar"
)

// Intensity levels, by completed/possible ratio.
const (
	LevelNone = iota
	LevelLow
	LevelMedium
	LevelHigh
	LevelFull
)

type DayCell struct {
	Date           time.Time `json:"date"`
	CompletedCount int       `json:"completed"`
	PossibleCount  int       `json:"possible"`
	Level          int       `json:"level"`
	IsFuture       bool      `json:"isFuture"`
	IsOutOfRange   bool      `json:"isOutOfRange"`
}

// Inert cells are drawn but never carry counts.
func (c DayCell) Inert() bool {
	return c.IsFuture || c.IsOutOfRange
}

type Week [7]DayCell

type MonthLabel struct {
	Label  string `json:"label"`
	Column int    `json:"column"`
}

type Heatmap struct {
	WindowStart      time.Time    `json:"windowStart"`
	WindowEnd        time.Time    `json:"windowEnd"`
	Weeks            []Week       `json:"weeks"`
	Months           []MonthLabel `json:"months"`
	TotalCompletions int          `json:"totalCompletions"`
}

type HeatmapOptions struct {
	WindowStart time.Time
	WindowEnd   time.Time
	// Today bounds the grid: later cells are future cells.
	Today time.Time
	// Zero value is Sunday.
	WeekStart time.Weekday
}

// Intensity buckets completed/possible into five levels: none, up to 25%,
// up to 50%, up to 75% and above.
func Intensity(completed, possible int) int {
	if completed <= 0 || possible <= 0 {
		return LevelNone
	}
	// compare completed/possible against quarters without floats
	switch q := completed * 4; {
	case q <= possible:
		return LevelLow
	case q <= 2*possible:
		return LevelMedium
	case q <= 3*possible:
		return LevelHigh
	default:
		return LevelFull
	}
}

// BuildHeatmap lays the window out as calendar weeks. Each history is one
// possible completion per day; a single-habit heatmap is just one history.
func BuildHeatmap(histories []History, opts HeatmapOptions) Heatmap {
	start := calendar.Day(opts.WindowStart)
	end := calendar.Day(opts.WindowEnd)
	today := calendar.Day(opts.Today)
	hm := Heatmap{WindowStart: start, WindowEnd: end}
	if end.Before(start) {
		return hm
	}

	counts := make(map[time.Time]int)
	for _, h := range histories {
		for _, d := range h.CompletedDays() {
			if calendar.Within(d, start, end) {
				counts[d]++
			}
		}
	}

	gridStart := calendar.StartOfWeek(start, opts.WeekStart)
	gridEnd := calendar.StartOfWeek(end, opts.WeekStart).AddDate(0, 0, 6)
	weeks := calendar.DaysInclusive(gridStart, gridEnd) / 7
	possible := len(histories)

	hm.Weeks = make([]Week, 0, weeks)
	lastMonth := time.Month(0)
	day := gridStart
	for w := 0; w < weeks; w++ {
		var week Week
		labeled := false
		for d := 0; d < 7; d++ {
			cell := DayCell{
				Date:         day,
				IsOutOfRange: day.Before(start) || day.After(end),
				IsFuture:     day.After(today),
			}
			if !cell.IsOutOfRange && !labeled {
				labeled = true
				if day.Month() != lastMonth {
					lastMonth = day.Month()
					hm.Months = append(hm.Months, MonthLabel{Label: day.Format("Jan"), Column: w})
				}
			}
			if !cell.Inert() {
				cell.CompletedCount = counts[day]
				cell.PossibleCount = possible
				cell.Level = Intensity(cell.CompletedCount, possible)
				hm.TotalCompletions += cell.CompletedCount
			}
			week[d] = cell
			day = day.AddDate(0, 0, 1)
		}
		hm.Weeks = append(hm.Weeks, week)
	}
	return hm
}

// RecentWindow is the default window for a single habit: the last n weeks up to today.
func RecentWindow(today time.Time, weeks int, weekStart time.Weekday) (time.Time, time.Time) {
	end := calendar.Day(today)
	start := calendar.StartOfWeek(end.AddDate(0, 0, -(weeks*7-1)), weekStart)
	return start, end
}

// YearWindow covers one calendar year.
func YearWindow(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}
