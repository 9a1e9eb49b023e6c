package gcal

import (
	"context"

	"booking-dashboard/internal/scheduling/repository"
	"booking-dashboard/pkg/gcalendar"
	"booking-dashboard/pkg/log"
)

// CalendarAPI abstracts the Google Calendar client for mocking.
type CalendarAPI interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	GetEvent(ctx context.Context, calID, eventID string) (*gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	UpdateEvent(ctx context.Context, req gcalendar.UpdateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calID, eventID string) (bool, error)
}

type implRepository struct {
	client     CalendarAPI
	calendarID string
	timezone   string
	l          log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a Google Calendar backed Repository. timezone is the IANA name
// sent with event writes so the provider stores wall-clock intent.
func New(client CalendarAPI, calendarID, timezone string, l log.Logger) *implRepository {
	return &implRepository{
		client:     client,
		calendarID: calendarID,
		timezone:   timezone,
		l:          l,
	}
}
