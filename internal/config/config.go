package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `validate:"required"`
	Port        string `validate:"required,numeric"`
	RoutePrefix string `validate:"omitempty,startswith=/"`
	FunctionKey string
	Logging     LoggingConfig
	Limits      LimitsConfig
	Metrics     MetricsConfig
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `validate:"required,oneof=trace debug info warn warning error fatal panic"`
	Format string `validate:"required,oneof=json text"`
}

// LimitsConfig holds request limits for the HTTP server
type LimitsConfig struct {
	MaxBodyBytes   int64   `validate:"gt=0"`
	RateLimitRPS   float64 `validate:"gte=0"`
	RateLimitBurst int     `validate:"gte=0"`
}

// MetricsConfig holds Prometheus configuration
type MetricsConfig struct {
	Enabled bool
	Path    string `validate:"required,startswith=/"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7071")
	v.SetDefault("ROUTE_PREFIX", "/api")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("MAX_BODY_BYTES", 10<<20)
	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_PATH", "/metrics")

	cfg := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		RoutePrefix: strings.TrimRight(v.GetString("ROUTE_PREFIX"), "/"),
		FunctionKey: v.GetString("FUNCTION_KEY"),
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		Limits: LimitsConfig{
			MaxBodyBytes:   v.GetInt64("MAX_BODY_BYTES"),
			RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
			Path:    v.GetString("METRICS_PATH"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration against its struct constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the application runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AuthRequired reports whether requests must present the function key
func (c *Config) AuthRequired() bool {
	return c.FunctionKey != ""
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
