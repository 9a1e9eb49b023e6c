package gcal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-dashboard/internal/scheduling"
	"booking-dashboard/internal/scheduling/repository"
	"booking-dashboard/internal/scheduling/repository/gcal"
	"booking-dashboard/pkg/gcalendar"
	"booking-dashboard/pkg/timewindow"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

type mockCalendarAPI struct {
	listFunc   func(req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	getFunc    func(calID, eventID string) (*gcalendar.Event, error)
	createFunc func(req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	updateFunc func(req gcalendar.UpdateEventRequest) (*gcalendar.Event, error)
	deleteFunc func(calID, eventID string) (bool, error)
}

func (m *mockCalendarAPI) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return m.listFunc(req)
}

func (m *mockCalendarAPI) GetEvent(ctx context.Context, calID, eventID string) (*gcalendar.Event, error) {
	return m.getFunc(calID, eventID)
}

func (m *mockCalendarAPI) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	return m.createFunc(req)
}

func (m *mockCalendarAPI) UpdateEvent(ctx context.Context, req gcalendar.UpdateEventRequest) (*gcalendar.Event, error) {
	return m.updateFunc(req)
}

func (m *mockCalendarAPI) DeleteEvent(ctx context.Context, calID, eventID string) (bool, error) {
	return m.deleteFunc(calID, eventID)
}

func TestListEvents(t *testing.T) {
	t.Run("Maps provider events and statuses", func(t *testing.T) {
		api := &mockCalendarAPI{
			listFunc: func(req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
				return []gcalendar.Event{
					{
						ID:        "e1",
						Summary:   "Consultation",
						Status:    gcalendar.StatusConfirmed,
						StartTime: time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
						EndTime:   time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
					},
					{ID: "e2", Status: gcalendar.StatusCancelled},
				}, nil
			},
		}
		repo := gcal.New(api, "primary", "UTC", &mockLogger{})

		events, err := repo.ListEvents(context.Background(), repository.ListEventsOptions{
			Window: timewindow.Window{
				Start: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events (cancelled included), got %d", len(events))
		}
		if events[0].Title != "Consultation" || events[0].Status != scheduling.EventStatusActive {
			t.Errorf("unexpected mapping: %+v", events[0])
		}
		if !events[1].Cancelled() {
			t.Errorf("cancelled status not mapped")
		}
	})

	t.Run("Gateway failure surfaces as upstream unavailable", func(t *testing.T) {
		api := &mockCalendarAPI{
			listFunc: func(req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
				return nil, errors.New("connection refused")
			},
		}
		repo := gcal.New(api, "primary", "UTC", &mockLogger{})

		_, err := repo.ListEvents(context.Background(), repository.ListEventsOptions{})
		if !errors.Is(err, scheduling.ErrUpstreamUnavailable) {
			t.Errorf("expected ErrUpstreamUnavailable, got %v", err)
		}
	})
}

func TestGetEvent(t *testing.T) {
	t.Run("Missing event returns zero ID, no error", func(t *testing.T) {
		api := &mockCalendarAPI{
			getFunc: func(calID, eventID string) (*gcalendar.Event, error) { return nil, nil },
		}
		repo := gcal.New(api, "primary", "UTC", &mockLogger{})

		event, err := repo.GetEvent(context.Background(), "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.ID != "" {
			t.Errorf("expected zero event, got %+v", event)
		}
	})

	t.Run("Failure wraps upstream error", func(t *testing.T) {
		api := &mockCalendarAPI{
			getFunc: func(calID, eventID string) (*gcalendar.Event, error) {
				return nil, errors.New("timeout")
			},
		}
		repo := gcal.New(api, "primary", "UTC", &mockLogger{})

		_, err := repo.GetEvent(context.Background(), "e1")
		if !errors.Is(err, scheduling.ErrUpstreamUnavailable) {
			t.Errorf("expected ErrUpstreamUnavailable, got %v", err)
		}
	})
}

func TestCreateEvent(t *testing.T) {
	api := &mockCalendarAPI{
		createFunc: func(req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
			if req.CalendarID != "work-cal" {
				t.Errorf("calendar id not forwarded: %s", req.CalendarID)
			}
			if req.Timezone != "Europe/London" {
				t.Errorf("timezone not forwarded: %s", req.Timezone)
			}
			return &gcalendar.Event{
				ID:        "new-1",
				Summary:   req.Summary,
				Status:    gcalendar.StatusConfirmed,
				StartTime: req.StartTime,
				EndTime:   req.EndTime,
			}, nil
		},
	}
	repo := gcal.New(api, "work-cal", "Europe/London", &mockLogger{})

	event, err := repo.CreateEvent(context.Background(), repository.CreateEventOptions{
		Title: "Consultation",
		Start: time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.ID != "new-1" || event.Title != "Consultation" {
		t.Errorf("unexpected created event: %+v", event)
	}
}

func TestUpdateEvent(t *testing.T) {
	t.Run("Partial update forwards only set fields", func(t *testing.T) {
		title := "Renamed"
		api := &mockCalendarAPI{
			updateFunc: func(req gcalendar.UpdateEventRequest) (*gcalendar.Event, error) {
				if req.Summary == nil || *req.Summary != "Renamed" {
					t.Errorf("summary not forwarded")
				}
				if req.StartTime != nil || req.EndTime != nil {
					t.Errorf("unset times must stay nil")
				}
				return &gcalendar.Event{ID: req.EventID, Summary: *req.Summary, Status: gcalendar.StatusConfirmed}, nil
			},
		}
		repo := gcal.New(api, "primary", "UTC", &mockLogger{})

		event, err := repo.UpdateEvent(context.Background(), repository.UpdateEventOptions{
			ID:    "e1",
			Title: &title,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Title != "Renamed" {
			t.Errorf("unexpected updated event: %+v", event)
		}
	})

	t.Run("Missing event returns zero ID", func(t *testing.T) {
		api := &mockCalendarAPI{
			updateFunc: func(req gcalendar.UpdateEventRequest) (*gcalendar.Event, error) { return nil, nil },
		}
		repo := gcal.New(api, "primary", "UTC", &mockLogger{})

		event, err := repo.UpdateEvent(context.Background(), repository.UpdateEventOptions{ID: "missing"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.ID != "" {
			t.Errorf("expected zero event for missing id")
		}
	})
}

func TestDeleteEvent(t *testing.T) {
	api := &mockCalendarAPI{
		deleteFunc: func(calID, eventID string) (bool, error) {
			return eventID == "exists", nil
		},
	}
	repo := gcal.New(api, "primary", "UTC", &mockLogger{})

	found, err := repo.DeleteEvent(context.Background(), "exists")
	if err != nil || !found {
		t.Errorf("expected found=true, got found=%v err=%v", found, err)
	}

	found, err = repo.DeleteEvent(context.Background(), "missing")
	if err != nil || found {
		t.Errorf("expected found=false, got found=%v err=%v", found, err)
	}
}
