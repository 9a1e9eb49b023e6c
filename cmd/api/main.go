package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"booking-dashboard/config"
	_ "booking-dashboard/docs" // Swagger docs
	"booking-dashboard/internal/httpserver"
	"booking-dashboard/pkg/gcalendar"
	"booking-dashboard/pkg/log"
	"booking-dashboard/pkg/timewindow"
)

// @title       Booking Dashboard API
// @description Availability, slot booking, and utilization metrics on top of Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Booking Dashboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s, week starts %s", cfg.Schedule.Timezone, cfg.Schedule.WeekStart)

	// 3. Window calculator
	calc, err := timewindow.NewCalculator(cfg.Schedule.Timezone, cfg.Schedule.WeekStart)
	if err != nil {
		logger.Error(ctx, "Failed to initialize window calculator: ", err)
		return
	}

	// 4. Google Calendar client
	if cfg.GoogleCalendar.CredentialsPath == "" {
		logger.Error(ctx, "google_calendar.credentials_path is required")
		return
	}
	calClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Google Calendar client: ", err)
		return
	}
	logger.Info(ctx, "Google Calendar initialized")

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Schedule:       cfg.Schedule,
		Calculator:     calc,
		CalendarClient: calClient,
		CalendarID:     cfg.GoogleCalendar.CalendarID,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
