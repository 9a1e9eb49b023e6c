package usecase

import (
	"context"

	"booking-dashboard/internal/scheduling"
	repo "booking-dashboard/internal/scheduling/repository"
)

// UpdateBooking applies a partial update. When the interval moves, the new
// slot is re-validated and clash-checked with the booking itself excluded.
func (uc *implUseCase) UpdateBooking(ctx context.Context, input scheduling.UpdateBookingInput) (scheduling.UpdateBookingOutput, error) {
	if input.ID == "" {
		return scheduling.UpdateBookingOutput{}, scheduling.ErrInvalidInput
	}
	// Interval fields travel together or not at all.
	if (input.Start == nil) != (input.End == nil) {
		return scheduling.UpdateBookingOutput{}, scheduling.ErrInvalidInput
	}

	existing, err := uc.repo.GetEvent(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateBooking GetEvent: %v", err)
		return scheduling.UpdateBookingOutput{}, err
	}
	if existing.ID == "" || existing.Cancelled() {
		return scheduling.UpdateBookingOutput{}, scheduling.ErrBookingNotFound
	}

	if input.Start != nil {
		start, end := *input.Start, *input.End

		if reason := uc.booking.Validate(start, end, uc.calc.Location()); reason != scheduling.ReasonValid {
			return scheduling.UpdateBookingOutput{}, scheduling.NewValidationError(reason)
		}

		day := uc.calc.DayWindow(start)
		events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{Window: day})
		if err != nil {
			uc.l.Errorf(ctx, "uc.UpdateBooking ListEvents: %v", err)
			return scheduling.UpdateBookingOutput{}, err
		}

		if scheduling.HasClash(start, end, events, input.ID, uc.calc) {
			return scheduling.UpdateBookingOutput{}, scheduling.ErrSlotTaken
		}
	}

	event, err := uc.repo.UpdateEvent(ctx, repo.UpdateEventOptions{
		ID:    input.ID,
		Title: input.Title,
		Notes: input.Notes,
		Start: input.Start,
		End:   input.End,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateBooking UpdateEvent: %v", err)
		return scheduling.UpdateBookingOutput{}, err
	}
	if event.ID == "" {
		// Deleted between the read and the write.
		return scheduling.UpdateBookingOutput{}, scheduling.ErrBookingNotFound
	}

	return scheduling.UpdateBookingOutput{Event: event}, nil
}

// CancelBooking removes a booking. Returns ErrBookingNotFound when the
// provider has no such event.
func (uc *implUseCase) CancelBooking(ctx context.Context, id string) error {
	if id == "" {
		return scheduling.ErrInvalidInput
	}

	found, err := uc.repo.DeleteEvent(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CancelBooking DeleteEvent: %v", err)
		return err
	}
	if !found {
		return scheduling.ErrBookingNotFound
	}
	return nil
}

// DetailBooking retrieves a single booking by ID. Soft-removed events read
// as not found, matching the update path.
func (uc *implUseCase) DetailBooking(ctx context.Context, id string) (scheduling.DetailBookingOutput, error) {
	if id == "" {
		return scheduling.DetailBookingOutput{}, scheduling.ErrInvalidInput
	}

	event, err := uc.repo.GetEvent(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailBooking GetEvent: %v", err)
		return scheduling.DetailBookingOutput{}, err
	}
	if event.ID == "" || event.Cancelled() {
		return scheduling.DetailBookingOutput{}, scheduling.ErrBookingNotFound
	}

	return scheduling.DetailBookingOutput{Event: event}, nil
}
