package scheduling

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrSlotTaken           = errors.New("requested interval clashes with an existing booking")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUpstreamUnavailable = errors.New("calendar provider unavailable")
)

// ValidationReason identifies which slot rule a candidate interval broke.
type ValidationReason string

const (
	ReasonValid           ValidationReason = "valid"
	ReasonInvalidInterval ValidationReason = "invalid_interval"
	ReasonNotSlotDuration ValidationReason = "not_slot_duration"
	ReasonNotOnGridStart  ValidationReason = "not_on_grid_start"
	ReasonStartNotAllowed ValidationReason = "start_not_allowed"
	ReasonEndExceedsClose ValidationReason = "end_exceeds_close"
)

// ValidationError is a slot rule violation. It is an expected, local outcome
// surfaced to the caller, never retried.
type ValidationError struct {
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("slot validation failed: %s", e.Reason)
}

// NewValidationError wraps a non-valid reason into an error.
func NewValidationError(reason ValidationReason) *ValidationError {
	return &ValidationError{Reason: reason}
}
