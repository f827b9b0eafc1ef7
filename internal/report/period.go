package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/limbo/lifeboard/pkg/calendar"
)

type PeriodType string

const (
	Weekly  PeriodType = "weekly"
	Monthly PeriodType = "monthly"
)

var ErrUnknownPeriod = errors.New("unknown report period")

// ParsePeriodType validates a period name coming from the outside.
func ParsePeriodType(s string) (PeriodType, error) {
	switch PeriodType(s) {
	case Weekly, Monthly:
		return PeriodType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// Period is an inclusive window of calendar days.
type Period struct {
	Type  PeriodType
	Start time.Time
	End   time.Time
	Label string
}

// PeriodFor returns the window of type t that contains anchor: the ISO week
// (Monday to Sunday) or the calendar month.
func PeriodFor(t PeriodType, anchor time.Time) (Period, error) {
	var start, end time.Time
	switch t {
	case Weekly:
		start = calendar.StartOfWeek(anchor, time.Monday)
		end = start.AddDate(0, 0, 6)
	case Monthly:
		start = calendar.StartOfMonth(anchor)
		end = calendar.EndOfMonth(anchor)
	default:
		return Period{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, t)
	}
	p := Period{Type: t, Start: start, End: end}
	p.Label = p.label()
	return p, nil
}

// Previous is the window of the same type immediately before p.
func (p Period) Previous() Period {
	// the day before Start always lies in the previous window
	prev, _ := PeriodFor(p.Type, p.Start.AddDate(0, 0, -1))
	return prev
}

// Days counts the days of p, both ends included.
func (p Period) Days() int {
	return calendar.DaysInclusive(p.Start, p.End)
}

func (p Period) Contains(t time.Time) bool {
	return calendar.Within(t, p.Start, p.End)
}

func (p Period) label() string {
	if p.Type == Monthly {
		return p.Start.Format("January 2006")
	}
	return p.Start.Format("Jan 2") + " - " + p.End.Format("Jan 2, 2006")
}
