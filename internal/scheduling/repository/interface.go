package repository

import (
	"context"

	"booking-dashboard/internal/scheduling"
)

// Repository is the calendar gateway: durable event storage owned by the
// external provider. ListEvents returns cancelled and non-cancelled events
// both; filtering is the domain's job. Every method wraps transport failures
// in scheduling.ErrUpstreamUnavailable — a failed read must never look like
// an empty calendar.
//
//go:generate mockery --name Repository
type Repository interface {
	ListEvents(ctx context.Context, opts ListEventsOptions) ([]scheduling.Event, error)
	// GetEvent returns a zero-ID event when the provider has no such event.
	GetEvent(ctx context.Context, id string) (scheduling.Event, error)
	CreateEvent(ctx context.Context, opts CreateEventOptions) (scheduling.Event, error)
	// UpdateEvent returns a zero-ID event when the provider has no such event.
	UpdateEvent(ctx context.Context, opts UpdateEventOptions) (scheduling.Event, error)
	// DeleteEvent returns found=false when the provider has no such event.
	DeleteEvent(ctx context.Context, id string) (found bool, err error)
}
