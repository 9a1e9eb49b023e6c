package repository

import (
	"time"

	"booking-dashboard/pkg/timewindow"
)

// ListEventsOptions bounds an event listing to a query window.
type ListEventsOptions struct {
	Window timewindow.Window
}

// CreateEventOptions carries the fields for a new booking event.
type CreateEventOptions struct {
	Title string
	Notes string
	Start time.Time
	End   time.Time
}

// UpdateEventOptions carries a partial update. Nil fields are untouched;
// Start and End must be set together.
type UpdateEventOptions struct {
	ID    string
	Title *string
	Notes *string
	Start *time.Time
	End   *time.Time
}
