package config

import (
	"os"
	"sync"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
	Region       string
	Stage        string
}

// Global serverless configuration
var (
	serverlessConfig *ServerlessConfig
	serverlessOnce   sync.Once
)

// GetServerlessConfig returns the serverless configuration
func GetServerlessConfig() *ServerlessConfig {
	serverlessOnce.Do(func() {
		serverlessConfig = detectServerless()
	})
	return serverlessConfig
}

func detectServerless() *ServerlessConfig {
	return &ServerlessConfig{
		IsLambda:     isRunningInLambda(),
		FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		Region:       os.Getenv("AWS_REGION"),
		Stage:        GetEnv("STAGE", "dev"),
	}
}

// LogFields describes the function instance for the startup log line
func (sc *ServerlessConfig) LogFields() map[string]any {
	mode := "server"
	if sc.IsLambda {
		mode = "serverless"
	}
	return map[string]any{
		"function_name":   sc.FunctionName,
		"region":          sc.Region,
		"stage":           sc.Stage,
		"deployment_mode": mode,
	}
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// IsServerlessMode returns true if running in serverless mode
func IsServerlessMode() bool {
	return GetServerlessConfig().IsLambda
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if IsServerlessMode() {
		return "serverless"
	}
	return "server"
}

// AdaptConfigForServerless modifies configuration for serverless deployment
func AdaptConfigForServerless(cfg *Config, sc *ServerlessConfig) *Config {
	if !sc.IsLambda {
		return cfg
	}

	// CloudWatch ingests one JSON object per line
	cfg.Logging.Format = "json"

	// Nothing scrapes a function instance, so there is no endpoint to expose
	cfg.Metrics.Enabled = false

	// API Gateway throttles on its own
	cfg.Limits.RateLimitRPS = 0

	return cfg
}

// GetOptimizedConfig returns configuration optimized for the current deployment mode
func GetOptimizedConfig() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	return AdaptConfigForServerless(cfg, GetServerlessConfig()), nil
}
