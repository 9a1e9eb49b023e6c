package httpserver

import (
	"context"
	"fmt"

	"booking-dashboard/internal/middleware"
	"booking-dashboard/internal/scheduling"
	schedulingHTTP "booking-dashboard/internal/scheduling/delivery/http"
	gcalRepo "booking-dashboard/internal/scheduling/repository/gcal"
	schedulingUC "booking-dashboard/internal/scheduling/usecase"

	"github.com/gin-gonic/gin"
)

// setupSchedulingDomain initializes the scheduling domain and registers its
// routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.calClient, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) setupSchedulingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	booking, capacity, err := srv.businessHours()
	if err != nil {
		return err
	}

	// 1. Repository
	repo := gcalRepo.New(srv.calClient, srv.calendarID, srv.schedule.Timezone, srv.l)

	// 2. UseCase
	uc := schedulingUC.New(srv.l, repo, srv.calc, booking, capacity)

	// 3. HTTP Handler
	h := schedulingHTTP.New(srv.l, uc, srv.calc)

	// 4. Routes: registers /api/v1/schedule/...
	schedulingHTTP.RegisterRoutes(api.Group("/schedule"), h, mw)

	srv.l.Infof(ctx, "Scheduling domain registered (calendar %s, timezone %s)",
		srv.calendarID, srv.schedule.Timezone)
	return nil
}

// businessHours materializes the two independent hour configs: the booking
// slot grid and the metrics capacity window.
func (srv HTTPServer) businessHours() (scheduling.BookingHours, scheduling.CapacityHours, error) {
	booking := scheduling.BookingHours{
		OpenHour:          srv.schedule.Booking.OpenHour,
		CloseHour:         srv.schedule.Booking.CloseHour,
		SlotMinutes:       srv.schedule.Booking.SlotMinutes,
		AllowedStartHours: srv.schedule.Booking.AllowedStartHours,
	}

	open, err := scheduling.ParseClockMinutes(srv.schedule.Capacity.Open)
	if err != nil {
		return scheduling.BookingHours{}, scheduling.CapacityHours{}, fmt.Errorf("capacity open: %w", err)
	}
	closeMin, err := scheduling.ParseClockMinutes(srv.schedule.Capacity.Close)
	if err != nil {
		return scheduling.BookingHours{}, scheduling.CapacityHours{}, fmt.Errorf("capacity close: %w", err)
	}

	capacity := scheduling.CapacityHours{
		OpenMinute:  open,
		CloseMinute: closeMin,
		WorkingDays: srv.schedule.Capacity.WorkingDays,
	}
	return booking, capacity, nil
}
