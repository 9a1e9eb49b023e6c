package http

import (
	"github.com/gin-gonic/gin"

	"booking-dashboard/internal/scheduling"
	"booking-dashboard/pkg/log"
	"booking-dashboard/pkg/timewindow"
)

// Handler is the public interface for the scheduling HTTP delivery layer.
type Handler interface {
	CreateBooking(c *gin.Context)
	ListWeek(c *gin.Context)
	DetailBooking(c *gin.Context)
	UpdateBooking(c *gin.Context)
	CancelBooking(c *gin.Context)
	DayAvailability(c *gin.Context)
	Overview(c *gin.Context)
}

type handler struct {
	l    log.Logger
	uc   scheduling.UseCase
	calc *timewindow.Calculator
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the scheduling domain. The calculator is
// needed to resolve date+time request shapes into the business timezone.
func New(l log.Logger, uc scheduling.UseCase, calc *timewindow.Calculator) *handler {
	return &handler{
		l:    l,
		uc:   uc,
		calc: calc,
	}
}
