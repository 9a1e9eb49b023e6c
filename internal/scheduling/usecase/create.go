package usecase

import (
	"context"

	"booking-dashboard/internal/scheduling"
	repo "booking-dashboard/internal/scheduling/repository"
)

// CreateBooking validates the candidate slot, checks it against the day's
// existing bookings and writes it to the calendar gateway.
//
// The clash check and the write are not transactional: two concurrent
// requests can both pass the check before either writes. Strict exclusion
// needs an idempotency token at the gateway boundary.
func (uc *implUseCase) CreateBooking(ctx context.Context, input scheduling.CreateBookingInput) (scheduling.CreateBookingOutput, error) {
	if input.Title == "" {
		return scheduling.CreateBookingOutput{}, scheduling.ErrInvalidInput
	}

	if reason := uc.booking.Validate(input.Start, input.End, uc.calc.Location()); reason != scheduling.ReasonValid {
		return scheduling.CreateBookingOutput{}, scheduling.NewValidationError(reason)
	}

	day := uc.calc.DayWindow(input.Start)
	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{Window: day})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateBooking ListEvents: %v", err)
		return scheduling.CreateBookingOutput{}, err
	}

	if scheduling.HasClash(input.Start, input.End, events, "", uc.calc) {
		return scheduling.CreateBookingOutput{}, scheduling.ErrSlotTaken
	}

	event, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		Title: input.Title,
		Notes: input.Notes,
		Start: input.Start,
		End:   input.End,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateBooking CreateEvent: %v", err)
		return scheduling.CreateBookingOutput{}, err
	}

	return scheduling.CreateBookingOutput{Event: event}, nil
}
