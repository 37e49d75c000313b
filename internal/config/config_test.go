package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("FUNCTION_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "7071", cfg.Port)
	assert.Equal(t, "/api", cfg.RoutePrefix)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, int64(10<<20), cfg.Limits.MaxBodyBytes)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.AuthRequired())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("ROUTE_PREFIX", "/fn/")
	t.Setenv("FUNCTION_KEY", "s3cret")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("MAX_BODY_BYTES", "1024")
	t.Setenv("RATE_LIMIT_RPS", "5.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/fn", cfg.RoutePrefix)
	assert.True(t, cfg.AuthRequired())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, int64(1024), cfg.Limits.MaxBodyBytes)
	assert.InDelta(t, 5.5, cfg.Limits.RateLimitRPS, 0.0001)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown log format", "LOG_FORMAT", "xml"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"non numeric port", "PORT", "http"},
		{"prefix without slash", "ROUTE_PREFIX", "api"},
		{"negative rate", "RATE_LIMIT_RPS", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestAdaptConfigForServerless(t *testing.T) {
	base := func() *Config {
		return &Config{
			Logging: LoggingConfig{Level: "info", Format: "text"},
			Limits:  LimitsConfig{MaxBodyBytes: 1, RateLimitRPS: 10},
			Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
		}
	}

	t.Run("server mode is untouched", func(t *testing.T) {
		cfg := AdaptConfigForServerless(base(), &ServerlessConfig{IsLambda: false})
		assert.Equal(t, "text", cfg.Logging.Format)
		assert.True(t, cfg.Metrics.Enabled)
		assert.InDelta(t, 10.0, cfg.Limits.RateLimitRPS, 0.0001)
	})

	t.Run("lambda mode", func(t *testing.T) {
		cfg := AdaptConfigForServerless(base(), &ServerlessConfig{IsLambda: true})
		assert.Equal(t, "json", cfg.Logging.Format)
		assert.False(t, cfg.Metrics.Enabled)
		assert.Zero(t, cfg.Limits.RateLimitRPS)
	})
}

func TestDetectServerless(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "process_csv")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("STAGE", "")

	sc := detectServerless()
	assert.True(t, sc.IsLambda)
	assert.Equal(t, "process_csv", sc.FunctionName)
	assert.Equal(t, "eu-west-1", sc.Region)
	assert.Equal(t, "dev", sc.Stage)

	assert.Equal(t, map[string]any{
		"function_name":   "process_csv",
		"region":          "eu-west-1",
		"stage":           "dev",
		"deployment_mode": "serverless",
	}, sc.LogFields())
}
