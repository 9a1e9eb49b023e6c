package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"booking-dashboard/config"
	"booking-dashboard/pkg/gcalendar"
	"booking-dashboard/pkg/log"
	"booking-dashboard/pkg/timewindow"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Scheduling domain
	schedule   config.ScheduleConfig
	calc       *timewindow.Calculator
	calClient  *gcalendar.Client
	calendarID string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Schedule       config.ScheduleConfig
	Calculator     *timewindow.Calculator
	CalendarClient *gcalendar.Client
	CalendarID     string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		schedule:    cfg.Schedule,
		calc:        cfg.Calculator,
		calClient:   cfg.CalendarClient,
		calendarID:  cfg.CalendarID,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.calc == nil {
		return errors.New("window calculator is required")
	}
	if srv.calClient == nil {
		return errors.New("calendar client is required")
	}
	if srv.calendarID == "" {
		return errors.New("calendar ID is required")
	}
	return nil
}

// Run maps the handlers and serves until the listener fails.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
