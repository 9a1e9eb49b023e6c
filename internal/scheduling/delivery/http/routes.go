package http

import (
	"github.com/gin-gonic/gin"

	"booking-dashboard/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Write routes
// are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("", mw.RateLimit(), h.CreateBooking)
		bookings.GET("", h.ListWeek)
		bookings.GET("/:id", h.DetailBooking)
		bookings.PUT("/:id", mw.RateLimit(), h.UpdateBooking)
		bookings.DELETE("/:id", mw.RateLimit(), h.CancelBooking)
	}

	rg.GET("/availability", h.DayAvailability)
	rg.GET("/overview", h.Overview)
}
