package services

import (
	"fmt"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	GreetingService   GreetingService
	CSVSummaryService CSVSummaryService
	Metrics           MetricsRecorder
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(metrics MetricsRecorder) *ServiceContainer {
	if metrics == nil {
		metrics = NoopMetrics{}
	}

	return &ServiceContainer{
		GreetingService:   NewGreetingService(),
		CSVSummaryService: NewCSVSummaryService(metrics),
		Metrics:           metrics,
	}
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.GreetingService == nil {
		return fmt.Errorf("greeting service is nil")
	}
	if sc.CSVSummaryService == nil {
		return fmt.Errorf("csv summary service is nil")
	}
	if sc.Metrics == nil {
		return fmt.Errorf("metrics recorder is nil")
	}

	return nil
}
