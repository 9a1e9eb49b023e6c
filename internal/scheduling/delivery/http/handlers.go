package http

import (
	"github.com/gin-gonic/gin"

	"booking-dashboard/internal/scheduling"
	"booking-dashboard/pkg/response"
)

// CreateBooking godoc
// @Summary     Create a booking
// @Description Books a slot. The interval is either {start, end} RFC3339 or {date, time, duration_minutes} in the business timezone.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Booking data"
// @Success     200 {object} bookingResp
// @Failure     400 {object} response.Resp "Bad Request - malformed body or slot rule violation"
// @Failure     409 {object} response.Resp "Conflict - slot already taken"
// @Failure     502 {object} response.Resp "Bad Gateway - calendar provider unavailable"
// @Router      /api/v1/schedule/bookings [POST]
func (h *handler) CreateBooking(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.CreateBooking(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateBooking: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// ListWeek godoc
// @Summary     List a week's bookings
// @Description Returns the bookings of one week, ascending by start time. week_offset shifts whole weeks from the current one.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       week_offset query int false "Weeks relative to the current week (default: 0)"
// @Success     200 {object} listWeekResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Bad Gateway - calendar provider unavailable"
// @Router      /api/v1/schedule/bookings [GET]
func (h *handler) ListWeek(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListWeekReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.ListWeek(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListWeek: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListWeekResp(output))
}

// DetailBooking godoc
// @Summary     Get booking detail
// @Description Returns a single booking by its ID.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       id path string true "Booking ID"
// @Success     200 {object} bookingResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Bad Gateway - calendar provider unavailable"
// @Router      /api/v1/schedule/bookings/{id} [GET]
func (h *handler) DetailBooking(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, h.mapError(scheduling.ErrInvalidInput), nil)
		return
	}

	output, err := h.uc.DetailBooking(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailBooking: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// UpdateBooking godoc
// @Summary     Update a booking
// @Description Partial update. Rescheduling takes the same tagged interval shape as create; the moved slot is re-validated and clash-checked.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Booking ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} bookingResp
// @Failure     400 {object} response.Resp "Bad Request - malformed body or slot rule violation"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - slot already taken"
// @Failure     502 {object} response.Resp "Bad Gateway - calendar provider unavailable"
// @Router      /api/v1/schedule/bookings/{id} [PUT]
func (h *handler) UpdateBooking(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.UpdateBooking(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateBooking: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// CancelBooking godoc
// @Summary     Cancel a booking
// @Description Removes a booking from the calendar.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       id path string true "Booking ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Bad Gateway - calendar provider unavailable"
// @Router      /api/v1/schedule/bookings/{id} [DELETE]
func (h *handler) CancelBooking(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, h.mapError(scheduling.ErrInvalidInput), nil)
		return
	}

	if err := h.uc.CancelBooking(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.CancelBooking: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// DayAvailability godoc
// @Summary     Day availability
// @Description Returns the day's slot grid with each slot flagged free or booked.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       date query string true "Day to inspect (YYYY-MM-DD, business timezone)"
// @Success     200 {object} availabilityResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Bad Gateway - calendar provider unavailable"
// @Router      /api/v1/schedule/availability [GET]
func (h *handler) DayAvailability(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processAvailabilityReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.DayAvailability(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.DayAvailability: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAvailabilityResp(output))
}

// Overview godoc
// @Summary     Schedule overview
// @Description Returns utilization metrics for the next seven days.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Success     200 {object} overviewResp
// @Failure     502 {object} response.Resp "Bad Gateway - calendar provider unavailable"
// @Router      /api/v1/schedule/overview [GET]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Overview(ctx, scheduling.OverviewInput{})
	if err != nil {
		h.l.Errorf(ctx, "uc.Overview: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newOverviewResp(output))
}
