package streak

import (
	"time"

	"github.com/limbo/lifeboard/pkg/calendar"
	"github.com/limbo/lifeboard/pkg/rounding"
)

type Consistency struct {
	Actual   int `json:"actual"`
	Possible int `json:"possible"`
	Rate     int `json:"rate"`
}

// MeasureConsistency compares completed days in [start, end] against one
// possible completion per habit per day.
func MeasureConsistency(histories []History, start, end time.Time) Consistency {
	var c Consistency
	c.Possible = len(histories) * calendar.DaysInclusive(start, end)
	for _, h := range histories {
		c.Actual += CompletedWithin(h, start, end)
	}
	c.Rate = rounding.Percent(c.Actual, c.Possible)
	return c
}

// ConsistencyRate is the rounded percentage of MeasureConsistency, 0 with no habits.
func ConsistencyRate(histories []History, start, end time.Time) int {
	return MeasureConsistency(histories, start, end).Rate
}

// CompletedWithin counts distinct completed days of h inside [start, end].
func CompletedWithin(h History, start, end time.Time) int {
	n := 0
	for _, d := range h.CompletedDays() {
		if calendar.Within(d, start, end) {
			n++
		}
	}
	return n
}
