package usecase_test

import (
	"context"
	"testing"
	"time"

	"booking-dashboard/internal/scheduling"
	"booking-dashboard/internal/scheduling/repository"
	"booking-dashboard/internal/scheduling/usecase"
)

func TestOverview(t *testing.T) {
	calc := testCalc(t)
	booking := scheduling.DefaultBookingHours()
	capacity := scheduling.DefaultCapacityHours()

	// Monday morning; the window is Mon 2024-06-10 .. Mon 2024-06-17.
	ref := time.Date(2024, 6, 10, 8, 15, 0, 0, time.UTC)

	t.Run("Window spans seven days from the local day start", func(t *testing.T) {
		var gotWindow repository.ListEventsOptions
		repo := &mockRepository{
			listFunc: func(opts repository.ListEventsOptions) ([]scheduling.Event, error) {
				gotWindow = opts
				return nil, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, calc, booking, capacity)

		if _, err := uc.Overview(context.Background(), scheduling.OverviewInput{Reference: ref}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantStart := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)
		if !gotWindow.Window.Start.Equal(wantStart) || !gotWindow.Window.End.Equal(wantEnd) {
			t.Errorf("queried window = [%v, %v), want [%v, %v)",
				gotWindow.Window.Start, gotWindow.Window.End, wantStart, wantEnd)
		}
	})

	t.Run("Metrics computed from the window's events", func(t *testing.T) {
		repo := &mockRepository{
			listFunc: func(opts repository.ListEventsOptions) ([]scheduling.Event, error) {
				return []scheduling.Event{
					{
						ID:     "e1",
						Start:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
						End:    time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
						Status: scheduling.EventStatusActive,
					},
					{
						ID:     "e2",
						Start:  time.Date(2024, 6, 11, 10, 0, 0, 0, time.UTC),
						End:    time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC),
						Status: scheduling.EventStatusActive,
					},
					{
						ID:     "gone",
						Start:  time.Date(2024, 6, 11, 14, 0, 0, 0, time.UTC),
						End:    time.Date(2024, 6, 11, 16, 0, 0, 0, time.UTC),
						Status: scheduling.EventStatusCancelled,
					},
				}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, calc, booking, capacity)

		out, err := uc.Overview(context.Background(), scheduling.OverviewInput{Reference: ref})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		m := out.Metrics
		if m.AppointmentCount != 2 {
			t.Errorf("AppointmentCount = %d, want 2", m.AppointmentCount)
		}
		if m.BookedMinutes != 240 {
			t.Errorf("BookedMinutes = %d, want 240", m.BookedMinutes)
		}
		// Five working days at 8h each.
		if m.CapacityMinutes != 2400 {
			t.Errorf("CapacityMinutes = %d, want 2400", m.CapacityMinutes)
		}
		if len(m.TopHours) != 1 || m.TopHours[0].Hour != 10 || m.TopHours[0].Count != 2 {
			t.Errorf("unexpected TopHours: %+v", m.TopHours)
		}
	})

	t.Run("Gateway failure propagates", func(t *testing.T) {
		repo := &mockRepository{
			listFunc: func(opts repository.ListEventsOptions) ([]scheduling.Event, error) {
				return nil, scheduling.ErrUpstreamUnavailable
			},
		}
		uc := usecase.New(&mockLogger{}, repo, calc, booking, capacity)

		if _, err := uc.Overview(context.Background(), scheduling.OverviewInput{Reference: ref}); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
