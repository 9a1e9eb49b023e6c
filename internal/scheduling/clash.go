package scheduling

import (
	"time"

	"booking-dashboard/pkg/timewindow"
)

// HasClash reports whether the candidate interval [start, end) overlaps any
// non-cancelled event. The event identified by excludeID is skipped so an
// update never clashes with itself. All-day events are normalized to
// [00:00:00, 23:59:59] of their local date before comparison.
//
// Intervals are half-open: back-to-back events never clash.
func HasClash(start, end time.Time, events []Event, excludeID string, calc *timewindow.Calculator) bool {
	for _, e := range events {
		if e.Cancelled() || e.ID == excludeID {
			continue
		}

		eStart, eEnd := e.Start, e.End
		if e.AllDay {
			eStart, eEnd = calc.AllDayBounds(e.Start)
		}

		if start.Before(eEnd) && eStart.Before(end) {
			return true
		}
	}
	return false
}
