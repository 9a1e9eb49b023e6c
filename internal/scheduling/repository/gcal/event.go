package gcal

import (
	"context"
	"fmt"

	"booking-dashboard/internal/scheduling"
	"booking-dashboard/internal/scheduling/repository"
	"booking-dashboard/pkg/gcalendar"
)

// ListEvents fetches every event in the window, cancelled included.
func (r *implRepository) ListEvents(ctx context.Context, opts repository.ListEventsOptions) ([]scheduling.Event, error) {
	raw, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		TimeMin:    opts.Window.Start,
		TimeMax:    opts.Window.End,
	})
	if err != nil {
		r.l.Errorf(ctx, "gcal.ListEvents: %v", err)
		return nil, upstreamErr(err)
	}

	events := make([]scheduling.Event, 0, len(raw))
	for _, e := range raw {
		events = append(events, fromGCalEvent(e))
	}
	return events, nil
}

// GetEvent fetches one event; a zero-ID event signals not-found.
func (r *implRepository) GetEvent(ctx context.Context, id string) (scheduling.Event, error) {
	raw, err := r.client.GetEvent(ctx, r.calendarID, id)
	if err != nil {
		r.l.Errorf(ctx, "gcal.GetEvent: %v", err)
		return scheduling.Event{}, upstreamErr(err)
	}
	if raw == nil {
		return scheduling.Event{}, nil
	}
	return fromGCalEvent(*raw), nil
}

// CreateEvent writes a new booking to the provider.
func (r *implRepository) CreateEvent(ctx context.Context, opts repository.CreateEventOptions) (scheduling.Event, error) {
	created, err := r.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  r.calendarID,
		Summary:     opts.Title,
		Description: opts.Notes,
		StartTime:   opts.Start,
		EndTime:     opts.End,
		Timezone:    r.timezone,
	})
	if err != nil {
		r.l.Errorf(ctx, "gcal.CreateEvent: %v", err)
		return scheduling.Event{}, upstreamErr(err)
	}
	return fromGCalEvent(*created), nil
}

// UpdateEvent patches an existing booking; a zero-ID event signals not-found.
func (r *implRepository) UpdateEvent(ctx context.Context, opts repository.UpdateEventOptions) (scheduling.Event, error) {
	updated, err := r.client.UpdateEvent(ctx, gcalendar.UpdateEventRequest{
		CalendarID:  r.calendarID,
		EventID:     opts.ID,
		Summary:     opts.Title,
		Description: opts.Notes,
		StartTime:   opts.Start,
		EndTime:     opts.End,
		Timezone:    r.timezone,
	})
	if err != nil {
		r.l.Errorf(ctx, "gcal.UpdateEvent: %v", err)
		return scheduling.Event{}, upstreamErr(err)
	}
	if updated == nil {
		return scheduling.Event{}, nil
	}
	return fromGCalEvent(*updated), nil
}

// DeleteEvent removes a booking from the provider.
func (r *implRepository) DeleteEvent(ctx context.Context, id string) (bool, error) {
	found, err := r.client.DeleteEvent(ctx, r.calendarID, id)
	if err != nil {
		r.l.Errorf(ctx, "gcal.DeleteEvent: %v", err)
		return false, upstreamErr(err)
	}
	return found, nil
}

func upstreamErr(err error) error {
	return fmt.Errorf("%w: %v", scheduling.ErrUpstreamUnavailable, err)
}

func fromGCalEvent(e gcalendar.Event) scheduling.Event {
	status := scheduling.EventStatusActive
	if e.Cancelled() {
		status = scheduling.EventStatusCancelled
	}

	return scheduling.Event{
		ID:     e.ID,
		Title:  e.Summary,
		Notes:  e.Description,
		Start:  e.StartTime,
		End:    e.EndTime,
		AllDay: e.AllDay,
		Status: status,
		Link:   e.HtmlLink,
	}
}
