package usecase

import (
	"context"
	"sort"

	"booking-dashboard/internal/scheduling"
	repo "booking-dashboard/internal/scheduling/repository"
)

// ListWeek returns the non-cancelled bookings of a week window, ascending by
// start time. WeekOffset shifts the window by whole weeks from the reference.
func (uc *implUseCase) ListWeek(ctx context.Context, input scheduling.ListWeekInput) (scheduling.ListWeekOutput, error) {
	win := uc.calc.WeekWindow(refOrNow(input.Reference), input.WeekOffset)

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{Window: win})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListWeek ListEvents: %v", err)
		return scheduling.ListWeekOutput{}, err
	}

	active := make([]scheduling.Event, 0, len(events))
	for _, e := range events {
		if !e.Cancelled() {
			active = append(active, e)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].Start.Before(active[j].Start)
	})

	return scheduling.ListWeekOutput{Window: win, Events: active}, nil
}
