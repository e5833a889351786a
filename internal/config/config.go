package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
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
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds the statutory constants the pay engine runs with.
// Every value can be overridden from the environment so yearly updates
// (minimum wage, rate changes) need no code change.
type PayrollConfig struct {
	MinimumWage                      int64
	HolidayPayEligibilityWeeklyHours float64
	OvertimeWeeklyThresholdHours     float64
	OvertimeDailyThresholdHours      float64
	OvertimeMultiplier               float64
	NightDifferentialMultiplier      float64
	NightWindowStart                 string
	NightWindowEnd                   string
	AverageWeeksPerMonth             float64
	InsuranceRate                    float64
	IncomeTaxRate                    float64
	NightBreakAdjusted               bool
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

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
		Name:     getEnv("DB_NAME", "hr_management"),
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
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll policy configuration
	// 2025 statutory defaults: KRW 10,030/h minimum wage, weekly holiday
	// allowance at 15h/week, overtime past 40h/week at 1.5x, night work
	// (22:00-06:00) at an additional 0.5x.
	minimumWage, err := strconv.ParseInt(getEnv("PAYROLL_MINIMUM_WAGE", "10030"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_MINIMUM_WAGE: %w", err)
	}

	config.Payroll = PayrollConfig{
		MinimumWage:                      minimumWage,
		HolidayPayEligibilityWeeklyHours: getEnvFloat("PAYROLL_HOLIDAY_ELIGIBILITY_WEEKLY_HOURS", 15),
		OvertimeWeeklyThresholdHours:     getEnvFloat("PAYROLL_OVERTIME_WEEKLY_THRESHOLD_HOURS", 40),
		OvertimeDailyThresholdHours:      getEnvFloat("PAYROLL_OVERTIME_DAILY_THRESHOLD_HOURS", 8),
		OvertimeMultiplier:               getEnvFloat("PAYROLL_OVERTIME_MULTIPLIER", 1.5),
		NightDifferentialMultiplier:      getEnvFloat("PAYROLL_NIGHT_DIFFERENTIAL_MULTIPLIER", 0.5),
		NightWindowStart:                 getEnv("PAYROLL_NIGHT_WINDOW_START", "22:00"),
		NightWindowEnd:                   getEnv("PAYROLL_NIGHT_WINDOW_END", "06:00"),
		AverageWeeksPerMonth:             getEnvFloat("PAYROLL_AVERAGE_WEEKS_PER_MONTH", 4.345),
		InsuranceRate:                    getEnvFloat("PAYROLL_INSURANCE_RATE", 0.089),
		IncomeTaxRate:                    getEnvFloat("PAYROLL_INCOME_TAX_RATE", 0.03),
		NightBreakAdjusted:               getEnv("PAYROLL_NIGHT_BREAK_ADJUSTED", "false") == "true",
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
	if c.Payroll.MinimumWage < 0 {
		return fmt.Errorf("PAYROLL_MINIMUM_WAGE must not be negative")
	}
	if c.Payroll.InsuranceRate+c.Payroll.IncomeTaxRate >= 1 {
		return fmt.Errorf("combined insurance and income tax rates must be below 1")
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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}
