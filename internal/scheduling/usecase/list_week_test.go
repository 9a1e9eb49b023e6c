package usecase_test

import (
	"context"
	"testing"
	"time"

	"booking-dashboard/internal/scheduling"
	"booking-dashboard/internal/scheduling/repository"
	"booking-dashboard/internal/scheduling/usecase"
)

func TestListWeek(t *testing.T) {
	calc := testCalc(t)
	booking := scheduling.DefaultBookingHours()
	capacity := scheduling.DefaultCapacityHours()

	// Wednesday; the containing week runs Mon 2024-06-10 .. Mon 2024-06-17.
	ref := time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)

	t.Run("Cancelled events filtered, rest sorted ascending", func(t *testing.T) {
		repo := &mockRepository{
			listFunc: func(opts repository.ListEventsOptions) ([]scheduling.Event, error) {
				return []scheduling.Event{
					{
						ID:     "later",
						Start:  time.Date(2024, 6, 12, 14, 0, 0, 0, time.UTC),
						End:    time.Date(2024, 6, 12, 16, 0, 0, 0, time.UTC),
						Status: scheduling.EventStatusActive,
					},
					{
						ID:     "cancelled",
						Start:  time.Date(2024, 6, 11, 10, 0, 0, 0, time.UTC),
						End:    time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC),
						Status: scheduling.EventStatusCancelled,
					},
					{
						ID:     "earlier",
						Start:  time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
						End:    time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
						Status: scheduling.EventStatusActive,
					},
				}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, calc, booking, capacity)

		out, err := uc.ListWeek(context.Background(), scheduling.ListWeekInput{Reference: ref})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(out.Events))
		}
		if out.Events[0].ID != "earlier" || out.Events[1].ID != "later" {
			t.Errorf("events not sorted ascending: %s, %s", out.Events[0].ID, out.Events[1].ID)
		}
	})

	t.Run("Window follows the week offset", func(t *testing.T) {
		var gotWindow repository.ListEventsOptions
		repo := &mockRepository{
			listFunc: func(opts repository.ListEventsOptions) ([]scheduling.Event, error) {
				gotWindow = opts
				return nil, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo, calc, booking, capacity)

		out, err := uc.ListWeek(context.Background(), scheduling.ListWeekInput{Reference: ref, WeekOffset: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantStart := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2024, 6, 24, 0, 0, 0, 0, time.UTC)
		if !gotWindow.Window.Start.Equal(wantStart) || !gotWindow.Window.End.Equal(wantEnd) {
			t.Errorf("queried window = [%v, %v), want [%v, %v)",
				gotWindow.Window.Start, gotWindow.Window.End, wantStart, wantEnd)
		}
		if !out.Window.Start.Equal(wantStart) {
			t.Errorf("output window start = %v, want %v", out.Window.Start, wantStart)
		}
	})

	t.Run("Gateway failure propagates", func(t *testing.T) {
		repo := &mockRepository{
			listFunc: func(opts repository.ListEventsOptions) ([]scheduling.Event, error) {
				return nil, scheduling.ErrUpstreamUnavailable
			},
		}
		uc := usecase.New(&mockLogger{}, repo, calc, booking, capacity)

		_, err := uc.ListWeek(context.Background(), scheduling.ListWeekInput{Reference: ref})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
