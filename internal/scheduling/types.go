package scheduling

import (
	"time"

	"booking-dashboard/pkg/timewindow"
)

// EventStatus is the lifecycle state of a booking event.
type EventStatus string

const (
	EventStatusActive    EventStatus = "active"
	EventStatusCancelled EventStatus = "cancelled"
)

// Event is a booking on the calendar. Events are owned by the external
// calendar provider; they are fetched fresh per request and never cached.
type Event struct {
	ID     string
	Title  string
	Notes  string
	Start  time.Time
	End    time.Time
	AllDay bool
	Status EventStatus
	Link   string
}

// Cancelled reports whether the provider soft-removed the event.
func (e Event) Cancelled() bool {
	return e.Status == EventStatusCancelled
}

// Slot is a fixed-duration interval on the booking grid.
type Slot struct {
	Start  time.Time
	End    time.Time
	Booked bool
}

// HourCount pairs a local start hour with the number of bookings at it.
type HourCount struct {
	Hour  int
	Count int
}

// OverviewMetrics is the derived utilization view over a window.
type OverviewMetrics struct {
	WindowStart      time.Time
	WindowEnd        time.Time
	AppointmentCount int
	BookedMinutes    int
	CapacityMinutes  int
	Utilization      float64
	TopHours         []HourCount
}

// --- UseCase Inputs ---

type CreateBookingInput struct {
	Title string
	Notes string
	Start time.Time
	End   time.Time
}

// UpdateBookingInput is a partial update; nil fields are left untouched.
// Start and End must be set together.
type UpdateBookingInput struct {
	ID    string
	Title *string
	Notes *string
	Start *time.Time
	End   *time.Time
}

type ListWeekInput struct {
	WeekOffset int
	// Reference defaults to the current instant when zero.
	Reference time.Time
}

type DayAvailabilityInput struct {
	Date time.Time
}

type OverviewInput struct {
	// Reference defaults to the current instant when zero.
	Reference time.Time
}

// --- UseCase Outputs ---

type CreateBookingOutput struct {
	Event Event
}

type UpdateBookingOutput struct {
	Event Event
}

type DetailBookingOutput struct {
	Event Event
}

type ListWeekOutput struct {
	Window timewindow.Window
	Events []Event
}

type DayAvailabilityOutput struct {
	Day   timewindow.Window
	Slots []Slot
}

type OverviewOutput struct {
	Metrics OverviewMetrics
}
