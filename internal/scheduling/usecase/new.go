package usecase

import (
	"time"

	"booking-dashboard/internal/scheduling"
	"booking-dashboard/internal/scheduling/repository"
	"booking-dashboard/pkg/log"
	"booking-dashboard/pkg/timewindow"
)

// implUseCase is the private implementation of scheduling.UseCase.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	calc     *timewindow.Calculator
	booking  scheduling.BookingHours
	capacity scheduling.CapacityHours
}

var _ scheduling.UseCase = (*implUseCase)(nil)

// New creates a new scheduling UseCase implementation.
func New(l log.Logger, repo repository.Repository, calc *timewindow.Calculator,
	booking scheduling.BookingHours, capacity scheduling.CapacityHours) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		calc:     calc,
		booking:  booking,
		capacity: capacity,
	}
}

// refOrNow resolves an optional reference instant.
func refOrNow(ref time.Time) time.Time {
	if ref.IsZero() {
		return time.Now()
	}
	return ref
}
