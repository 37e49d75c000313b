package server

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"funcapp-api/internal/config"
	"funcapp-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config            *config.Config
	GreetingService   services.GreetingService
	CSVSummaryService services.CSVSummaryService
	Metrics           services.MetricsRecorder
	Registry          *prometheus.Registry

	services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	var (
		registry *prometheus.Registry
		metrics  services.MetricsRecorder = services.NoopMetrics{}
	)
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = services.NewPrometheusMetrics(registry)
	}

	serviceContainer := services.NewServiceContainer(metrics)
	if err := serviceContainer.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	return &Container{
		Config:            cfg,
		GreetingService:   serviceContainer.GreetingService,
		CSVSummaryService: serviceContainer.CSVSummaryService,
		Metrics:           serviceContainer.Metrics,
		Registry:          registry,
		services:          serviceContainer,
	}, nil
}

// Services returns the underlying service container
func (c *Container) Services() *services.ServiceContainer {
	return c.services
}

// Close cleans up all resources
func (c *Container) Close() error {
	return nil
}
