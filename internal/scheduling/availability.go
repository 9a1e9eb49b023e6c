package scheduling

import (
	"time"

	"booking-dashboard/pkg/timewindow"
)

// DaySlots returns the full slot grid for the day starting at dayStart with
// each slot's booked flag derived from events. The grid itself never depends
// on the bookings; only the free/booked partition does.
func DaySlots(dayStart time.Time, hours BookingHours, events []Event, calc *timewindow.Calculator) []Slot {
	slots := hours.SlotGrid(dayStart)
	for i := range slots {
		slots[i].Booked = HasClash(slots[i].Start, slots[i].End, events, "", calc)
	}
	return slots
}

// FreeSlots returns only the bookable slots of the day, ascending by start.
func FreeSlots(dayStart time.Time, hours BookingHours, events []Event, calc *timewindow.Calculator) []Slot {
	var free []Slot
	for _, s := range DaySlots(dayStart, hours, events, calc) {
		if !s.Booked {
			free = append(free, s)
		}
	}
	return free
}
