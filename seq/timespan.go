package seq

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// TimeSpan bounds a single cache fill in wall-clock time.
type TimeSpan = timespan.TimeSpan

// NewTimeSpan returns the span between from and to.
func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}
