package scheduling

import (
	"fmt"
	"sort"
	"time"
)

// BookingHours defines the bookable slot grid: fixed-duration slots starting
// on a discrete set of allowed hours, bounded by an opening and closing hour.
type BookingHours struct {
	OpenHour          int
	CloseHour         int
	SlotMinutes       int
	AllowedStartHours []int
}

// DefaultBookingHours returns the default 10:00-18:00 grid of four 2-hour slots.
func DefaultBookingHours() BookingHours {
	return BookingHours{
		OpenHour:          10,
		CloseHour:         18,
		SlotMinutes:       120,
		AllowedStartHours: []int{10, 12, 14, 16},
	}
}

// Validate checks a candidate interval against the slot rules, in order:
// interval sanity, duration, grid alignment, allowed start hour, closing
// bound. Hours and minutes are read in loc.
func (h BookingHours) Validate(start, end time.Time, loc *time.Location) ValidationReason {
	if !end.After(start) {
		return ReasonInvalidInterval
	}

	if end.Sub(start) != time.Duration(h.SlotMinutes)*time.Minute {
		return ReasonNotSlotDuration
	}

	localStart := start.In(loc)
	if localStart.Minute() != 0 {
		return ReasonNotOnGridStart
	}

	allowed := false
	for _, hour := range h.AllowedStartHours {
		if localStart.Hour() == hour {
			allowed = true
			break
		}
	}
	if !allowed {
		return ReasonStartNotAllowed
	}

	// The closing bound is an instant on the start's day, so an end that
	// rolls past midnight is caught too.
	closeOfDay := time.Date(localStart.Year(), localStart.Month(), localStart.Day(),
		h.CloseHour, 0, 0, 0, loc)
	if end.After(closeOfDay) {
		return ReasonEndExceedsClose
	}

	return ReasonValid
}

// SlotGrid returns the full slot grid for the day starting at dayStart
// (local midnight), ascending by start time. The grid is deterministic and
// independent of any existing booking.
func (h BookingHours) SlotGrid(dayStart time.Time) []Slot {
	hours := make([]int, len(h.AllowedStartHours))
	copy(hours, h.AllowedStartHours)
	sort.Ints(hours)

	loc := dayStart.Location()
	slots := make([]Slot, 0, len(hours))
	for _, hour := range hours {
		start := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), hour, 0, 0, 0, loc)
		slots = append(slots, Slot{
			Start: start,
			End:   start.Add(time.Duration(h.SlotMinutes) * time.Minute),
		})
	}
	return slots
}

// CapacityHours defines the working window used as the utilization
// denominator. Kept separate from BookingHours: the two carry different
// defaults and are configured independently.
type CapacityHours struct {
	OpenMinute  int // minute of day, e.g. 540 for 09:00
	CloseMinute int // minute of day, e.g. 1020 for 17:00
	WorkingDays []time.Weekday
}

// DefaultCapacityHours returns the default 09:00-17:00, Monday-Friday window.
func DefaultCapacityHours() CapacityHours {
	return CapacityHours{
		OpenMinute:  9 * 60,
		CloseMinute: 17 * 60,
		WorkingDays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	}
}

// MinutesPerDay returns the capacity a single working day contributes.
func (h CapacityHours) MinutesPerDay() int {
	if h.CloseMinute <= h.OpenMinute {
		return 0
	}
	return h.CloseMinute - h.OpenMinute
}

// IsWorkingDay reports whether day is in the configured working-days set.
func (h CapacityHours) IsWorkingDay(day time.Weekday) bool {
	for _, d := range h.WorkingDays {
		if d == day {
			return true
		}
	}
	return false
}

// ParseClockMinutes converts an "HH:MM" string to a minute of day.
func ParseClockMinutes(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
