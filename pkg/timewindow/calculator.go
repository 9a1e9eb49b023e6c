package timewindow

import (
	"fmt"
	"time"
)

// allDayEndHour/Min/Sec define the wall-clock end applied when normalizing
// date-only (all-day) events. 23:59:59 is an approximation of the true
// midnight boundary, kept for compatibility with providers that mix date and
// datetime event representations.
const (
	allDayEndHour = 23
	allDayEndMin  = 59
	allDayEndSec  = 59
)

// Calculator produces day and week windows in a single configured timezone.
// All boundaries are wall-clock local midnights, so slot grids stay aligned
// across daylight-saving transitions.
type Calculator struct {
	location  *time.Location
	weekStart time.Weekday
}

// NewCalculator creates a Calculator for the given IANA timezone string,
// e.g. "Europe/London". weekStart is the weekday the week window begins on.
func NewCalculator(timezone string, weekStart time.Weekday) (*Calculator, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calculator{location: loc, weekStart: weekStart}, nil
}

// Location returns the calculator's timezone.
func (c *Calculator) Location() *time.Location {
	return c.location
}

// StartOfDay returns local midnight at the start of t's day.
func (c *Calculator) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// DayWindow returns [local midnight, next local midnight) for t's day.
func (c *Calculator) DayWindow(t time.Time) Window {
	start := c.StartOfDay(t)
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// WeekWindow returns the 7-day window containing ref, shifted by offsetWeeks
// whole weeks. The window starts on the configured week-start weekday at
// local midnight.
func (c *Calculator) WeekWindow(ref time.Time, offsetWeeks int) Window {
	day := c.StartOfDay(ref)

	back := int(day.Weekday() - c.weekStart)
	if back < 0 {
		back += 7
	}

	start := day.AddDate(0, 0, -back+offsetWeeks*7)
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

// SameDay reports whether a and b fall on the same local calendar date.
func (c *Calculator) SameDay(a, b time.Time) bool {
	a = a.In(c.location)
	b = b.In(c.location)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AllDayBounds normalizes a date-only event to [00:00:00, 23:59:59] of its
// local date. The end is built on the wall clock, not as an elapsed offset,
// so DST-transition days stay inside their own date.
func (c *Calculator) AllDayBounds(t time.Time) (time.Time, time.Time) {
	t = t.In(c.location)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
	end := time.Date(t.Year(), t.Month(), t.Day(), allDayEndHour, allDayEndMin, allDayEndSec, 0, c.location)
	return start, end
}
