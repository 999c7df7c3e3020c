package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Timesheet TimesheetConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	Timezone string
}

// TimesheetConfig holds the punch-clock policy knobs. The defaults match
// the statutory rules the calculator implements.
type TimesheetConfig struct {
	// EditWindow is how long after a day ends its record stays editable.
	EditWindow time.Duration
	// NightStart and NightEnd bound the night-shift window, "HH:MM".
	// The window crosses midnight when NightEnd < NightStart.
	NightStart string
	NightEnd   string
	// MealMinWorkedMinutes is the minimum worked time for a day to earn a
	// meal allowance, on top of both lunch punches being present.
	MealMinWorkedMinutes int
	// MealAllowanceRate is the monetary value of one meal allowance.
	MealAllowanceRate decimal.Decimal
}

func Load() (*Config, error) {
	// Missing .env is fine in production, env vars are set directly there.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "ponto"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("APP_TIMEZONE", "America/Sao_Paulo"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Timesheet policy configuration
	editWindowHours, err := strconv.Atoi(getEnv("TIMESHEET_EDIT_WINDOW_HOURS", "24"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMESHEET_EDIT_WINDOW_HOURS: %w", err)
	}

	mealMinWorked, err := strconv.Atoi(getEnv("TIMESHEET_MEAL_MIN_WORKED_MINUTES", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMESHEET_MEAL_MIN_WORKED_MINUTES: %w", err)
	}

	mealRate, err := decimal.NewFromString(getEnv("TIMESHEET_MEAL_ALLOWANCE_RATE", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMESHEET_MEAL_ALLOWANCE_RATE: %w", err)
	}

	config.Timesheet = TimesheetConfig{
		EditWindow:           time.Duration(editWindowHours) * time.Hour,
		NightStart:           getEnv("TIMESHEET_NIGHT_START", "22:00"),
		NightEnd:             getEnv("TIMESHEET_NIGHT_END", "05:00"),
		MealMinWorkedMinutes: mealMinWorked,
		MealAllowanceRate:    mealRate,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Timesheet.EditWindow <= 0 {
		return fmt.Errorf("TIMESHEET_EDIT_WINDOW_HOURS must be positive")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location returns the configured timezone. Validate has already checked it
// loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
