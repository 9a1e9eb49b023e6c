package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"booking-dashboard/internal/scheduling"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// resolveInterval turns the tagged interval shape into a concrete [start, end)
// pair. Exactly one variant must be supplied: {start, end} as RFC3339, or
// {date, time, duration_minutes} interpreted in the business timezone.
func (h *handler) resolveInterval(r intervalReq) (time.Time, time.Time, error) {
	switch {
	case r.explicit() && r.dated():
		return time.Time{}, time.Time{}, scheduling.ErrInvalidInput
	case r.explicit():
		if r.Start == "" || r.End == "" {
			return time.Time{}, time.Time{}, scheduling.ErrInvalidInput
		}
		start, err := time.Parse(time.RFC3339, r.Start)
		if err != nil {
			return time.Time{}, time.Time{}, scheduling.ErrInvalidInput
		}
		end, err := time.Parse(time.RFC3339, r.End)
		if err != nil {
			return time.Time{}, time.Time{}, scheduling.ErrInvalidInput
		}
		return start, end, nil
	case r.dated():
		if r.Date == "" || r.Time == "" || r.DurationMinutes <= 0 {
			return time.Time{}, time.Time{}, scheduling.ErrInvalidInput
		}
		day, err := time.ParseInLocation(dateLayout, r.Date, h.calc.Location())
		if err != nil {
			return time.Time{}, time.Time{}, scheduling.ErrInvalidInput
		}
		clock, err := time.Parse(timeLayout, r.Time)
		if err != nil {
			return time.Time{}, time.Time{}, scheduling.ErrInvalidInput
		}
		start := time.Date(day.Year(), day.Month(), day.Day(),
			clock.Hour(), clock.Minute(), 0, 0, h.calc.Location())
		return start, start.Add(time.Duration(r.DurationMinutes) * time.Minute), nil
	default:
		return time.Time{}, time.Time{}, scheduling.ErrInvalidInput
	}
}

// processCreateReq binds the create booking body and resolves its interval.
func (h *handler) processCreateReq(c *gin.Context) (scheduling.CreateBookingInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return scheduling.CreateBookingInput{}, err
	}
	start, end, err := h.resolveInterval(req.intervalReq)
	if err != nil {
		return scheduling.CreateBookingInput{}, err
	}
	return req.toInput(start, end), nil
}

// processUpdateReq binds the update body + URI param. The interval is
// optional; when any interval field is present the full tagged shape applies.
func (h *handler) processUpdateReq(c *gin.Context) (scheduling.UpdateBookingInput, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return scheduling.UpdateBookingInput{}, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return scheduling.UpdateBookingInput{}, scheduling.ErrInvalidInput
	}

	var start, end *time.Time
	if req.explicit() || req.dated() {
		s, e, err := h.resolveInterval(req.intervalReq)
		if err != nil {
			return scheduling.UpdateBookingInput{}, err
		}
		start, end = &s, &e
	}
	return req.toInput(start, end), nil
}

// processListWeekReq binds the week listing query parameters.
func (h *handler) processListWeekReq(c *gin.Context) (scheduling.ListWeekInput, error) {
	var req listWeekReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return scheduling.ListWeekInput{}, err
	}
	return req.toInput(), nil
}

// processAvailabilityReq binds the availability query and parses the date in
// the business timezone.
func (h *handler) processAvailabilityReq(c *gin.Context) (scheduling.DayAvailabilityInput, error) {
	var req availabilityReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return scheduling.DayAvailabilityInput{}, err
	}
	date, err := time.ParseInLocation(dateLayout, req.Date, h.calc.Location())
	if err != nil {
		return scheduling.DayAvailabilityInput{}, scheduling.ErrInvalidInput
	}
	return scheduling.DayAvailabilityInput{Date: date}, nil
}
