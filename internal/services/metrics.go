package services

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics records function metrics into a Prometheus registry
type PrometheusMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	csvRowsTotal    *prometheus.CounterVec
	csvAmount       prometheus.Histogram
}

// NewPrometheusMetrics registers the function metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "funcapp_requests_total",
				Help: "Total number of function invocations",
			},
			[]string{"function", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "funcapp_request_duration_milliseconds",
				Help:    "Function invocation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"function"},
		),
		csvRowsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "funcapp_csv_rows_total",
				Help: "Total number of CSV data rows seen, by outcome",
			},
			[]string{"result"},
		),
		csvAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "funcapp_csv_total_amount",
				Help:    "Rounded total amount per processed CSV upload",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
	}
}

func (m *PrometheusMetrics) RecordRequest(function string, statusCode int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(function, strconv.Itoa(statusCode)).Inc()
	m.requestDuration.WithLabelValues(function).Observe(float64(duration.Microseconds()) / 1000)
}

func (m *PrometheusMetrics) RecordRows(processed, skipped int) {
	m.csvRowsTotal.WithLabelValues("processed").Add(float64(processed))
	m.csvRowsTotal.WithLabelValues("skipped").Add(float64(skipped))
}

func (m *PrometheusMetrics) RecordAmount(total float64) {
	m.csvAmount.Observe(total)
}

// NoopMetrics discards every observation
type NoopMetrics struct{}

func (NoopMetrics) RecordRequest(string, int, time.Duration) {}
func (NoopMetrics) RecordRows(int, int)                      {}
func (NoopMetrics) RecordAmount(float64)                     {}
