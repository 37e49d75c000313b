package services

import (
	"context"
	"time"

	"funcapp-api/internal/models"
)

// GreetingService defines the interface for the http_trigger greeting logic
type GreetingService interface {
	// ResolveName picks the caller's name from the query value, falling back to a JSON body
	ResolveName(queryName string, body []byte) string
	Greet(name string) string
}

// CSVSummaryService defines the interface for CSV validation and aggregation
type CSVSummaryService interface {
	Summarize(ctx context.Context, body []byte) (*models.SummaryResult, error)
}

// MetricsRecorder records function-level observations
type MetricsRecorder interface {
	RecordRequest(function string, statusCode int, duration time.Duration)
	RecordRows(processed, skipped int)
	RecordAmount(total float64)
}
