package usecase

import (
	"context"

	"booking-dashboard/internal/scheduling"
	repo "booking-dashboard/internal/scheduling/repository"
)

// DayAvailability returns the slot grid for one day with the free/booked
// partition derived from that day's events.
func (uc *implUseCase) DayAvailability(ctx context.Context, input scheduling.DayAvailabilityInput) (scheduling.DayAvailabilityOutput, error) {
	if input.Date.IsZero() {
		return scheduling.DayAvailabilityOutput{}, scheduling.ErrInvalidInput
	}

	day := uc.calc.DayWindow(input.Date)
	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{Window: day})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DayAvailability ListEvents: %v", err)
		return scheduling.DayAvailabilityOutput{}, err
	}

	return scheduling.DayAvailabilityOutput{
		Day:   day,
		Slots: scheduling.DaySlots(day.Start, uc.booking, events, uc.calc),
	}, nil
}
