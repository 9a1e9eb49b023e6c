package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Booking dashboard specifics
	Schedule       ScheduleConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ScheduleConfig drives the scheduling core. Booking and Capacity carry
// deliberately independent business-hours defaults: Booking gates the slot
// grid (10:00-18:00), Capacity feeds the metrics denominator (09:00-17:00).
// They must not be merged.
type ScheduleConfig struct {
	Timezone        string
	WeekStart       time.Weekday
	RateLimitPerMin int
	Booking         BookingHoursConfig
	Capacity        CapacityHoursConfig
}

// BookingHoursConfig defines the bookable slot grid.
type BookingHoursConfig struct {
	OpenHour          int
	CloseHour         int
	SlotMinutes       int
	AllowedStartHours []int
}

// CapacityHoursConfig defines the metrics capacity window.
type CapacityHoursConfig struct {
	Open        string // "HH:MM"
	Close       string // "HH:MM"
	WorkingDays []time.Weekday
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// Optional .env for local development; real env vars win.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Schedule
	cfg.Schedule.Timezone = viper.GetString("schedule.timezone")
	cfg.Schedule.RateLimitPerMin = viper.GetInt("schedule.rate_limit_per_min")

	weekStart, err := parseWeekday(viper.GetString("schedule.week_start"))
	if err != nil {
		return nil, fmt.Errorf("schedule.week_start: %w", err)
	}
	cfg.Schedule.WeekStart = weekStart

	cfg.Schedule.Booking.OpenHour = viper.GetInt("schedule.booking.open_hour")
	cfg.Schedule.Booking.CloseHour = viper.GetInt("schedule.booking.close_hour")
	cfg.Schedule.Booking.SlotMinutes = viper.GetInt("schedule.booking.slot_minutes")
	cfg.Schedule.Booking.AllowedStartHours = viper.GetIntSlice("schedule.booking.allowed_starts")

	cfg.Schedule.Capacity.Open = viper.GetString("schedule.capacity.open")
	cfg.Schedule.Capacity.Close = viper.GetString("schedule.capacity.close")

	workingDays, err := parseWeekdays(viper.GetStringSlice("schedule.capacity.working_days"))
	if err != nil {
		return nil, fmt.Errorf("schedule.capacity.working_days: %w", err)
	}
	cfg.Schedule.Capacity.WorkingDays = workingDays

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	b := c.Schedule.Booking
	if b.OpenHour < 0 || b.CloseHour > 24 || b.OpenHour >= b.CloseHour {
		return fmt.Errorf("invalid booking hours %d-%d", b.OpenHour, b.CloseHour)
	}
	if b.SlotMinutes <= 0 {
		return fmt.Errorf("booking slot_minutes must be positive, got %d", b.SlotMinutes)
	}
	if len(b.AllowedStartHours) == 0 {
		return fmt.Errorf("booking allowed_starts must not be empty")
	}
	for _, h := range b.AllowedStartHours {
		if h < b.OpenHour || h >= b.CloseHour {
			return fmt.Errorf("allowed start hour %d outside booking hours %d-%d", h, b.OpenHour, b.CloseHour)
		}
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("schedule.timezone", "Europe/London")
	viper.SetDefault("schedule.week_start", "monday")
	viper.SetDefault("schedule.rate_limit_per_min", 60)

	// Slot grid for bookings
	viper.SetDefault("schedule.booking.open_hour", 10)
	viper.SetDefault("schedule.booking.close_hour", 18)
	viper.SetDefault("schedule.booking.slot_minutes", 120)
	viper.SetDefault("schedule.booking.allowed_starts", []int{10, 12, 14, 16})

	viper.SetDefault("google_calendar.calendar_id", "primary")

	// Capacity window for utilization metrics
	viper.SetDefault("schedule.capacity.open", "09:00")
	viper.SetDefault("schedule.capacity.close", "17:00")
	viper.SetDefault("schedule.capacity.working_days",
		[]string{"monday", "tuesday", "wednesday", "thursday", "friday"})
}

func parseWeekday(name string) (time.Weekday, error) {
	weekdays := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
	day, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return time.Sunday, fmt.Errorf("unknown weekday: %q", name)
	}
	return day, nil
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		day, err := parseWeekday(name)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}
