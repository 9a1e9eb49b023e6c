package scheduling

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Booking CRUD
	CreateBooking(ctx context.Context, input CreateBookingInput) (CreateBookingOutput, error)
	UpdateBooking(ctx context.Context, input UpdateBookingInput) (UpdateBookingOutput, error)
	CancelBooking(ctx context.Context, id string) error
	DetailBooking(ctx context.Context, id string) (DetailBookingOutput, error)
	ListWeek(ctx context.Context, input ListWeekInput) (ListWeekOutput, error)

	// Read-side views
	DayAvailability(ctx context.Context, input DayAvailabilityInput) (DayAvailabilityOutput, error)
	Overview(ctx context.Context, input OverviewInput) (OverviewOutput, error)
}
