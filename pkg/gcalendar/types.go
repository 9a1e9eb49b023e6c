package gcalendar

import "time"

// Event statuses as reported by the Calendar API.
const (
	StatusConfirmed = "confirmed"
	StatusTentative = "tentative"
	StatusCancelled = "cancelled"
)

// Event is a simplified representation of a Google Calendar event.
// AllDay is set when the provider stored the event with date-only bounds;
// StartTime/EndTime then hold midnight UTC of those dates and callers are
// expected to normalize them into the configured business timezone.
type Event struct {
	ID          string
	Summary     string
	Description string
	Status      string
	HtmlLink    string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}

// Cancelled reports whether the provider soft-removed the event.
func (e Event) Cancelled() bool {
	return e.Status == StatusCancelled
}

// CreateEventRequest is the input for creating a calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/London"
}

// UpdateEventRequest is the input for a partial event update. Nil fields are
// left untouched; StartTime and EndTime must be set together.
type UpdateEventRequest struct {
	CalendarID  string
	EventID     string
	Summary     *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Timezone    string
}

// ListEventsRequest is the input for listing calendar events. Cancelled
// events are included; filtering them is the caller's job.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
