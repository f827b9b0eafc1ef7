// Package streak turns habit completion history into streaks, heatmaps and
// consistency rates. Everything here is a pure function of its arguments;
// the evaluation instant is always passed in.
package streak

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeboard/pkg/calendar"
)

type CompletionEvent struct {
	Date      time.Time
	Completed bool
}

// History is the completion log of one habit.
type History struct {
	HabitID uuid.UUID
	Events  []CompletionEvent
}

// CompletedDays returns the distinct days marked completed, in no particular order.
// Several events for one day collapse to a logical OR.
func (h History) CompletedDays() []time.Time {
	seen := make(map[time.Time]struct{}, len(h.Events))
	days := make([]time.Time, 0, len(h.Events))
	for _, e := range h.Events {
		if !e.Completed {
			continue
		}
		d := calendar.Day(e.Date)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	return days
}

// CalculateStreak counts consecutive completed days ending today or yesterday.
// Yesterday still counts because today isn't over yet. Days after now are ignored.
func CalculateStreak(completed []time.Time, now time.Time) int {
	today := calendar.Day(now)
	days := uniqueDays(completed)
	// newest first
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	for len(days) > 0 && days[0].After(today) {
		days = days[1:]
	}
	if len(days) == 0 {
		return 0
	}
	if !days[0].Equal(today) && !days[0].Equal(today.AddDate(0, 0, -1)) {
		return 0
	}
	streak := 1
	for i := 1; i < len(days); i++ {
		if !days[i-1].AddDate(0, 0, -1).Equal(days[i]) {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of consecutive days anywhere in the history.
func LongestStreak(completed []time.Time) int {
	days := uniqueDays(completed)
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func uniqueDays(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, t := range dates {
		d := calendar.Day(t)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	return days
}
