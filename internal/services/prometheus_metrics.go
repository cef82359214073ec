package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	importRequests    *prometheus.CounterVec
	importRows        *prometheus.CounterVec
	importDuration    prometheus.Histogram
	budgetRequests    *prometheus.CounterVec
	budgetQuery       prometheus.Histogram
	insightRequests   *prometheus.CounterVec
	upstreamAttempts  *prometheus.CounterVec
	upstreamLatency   prometheus.Histogram
	importEventsTotal *prometheus.CounterVec
}

// NewPrometheusMetrics registers the pipeline collectors with reg.
// Pass prometheus.DefaultRegisterer to expose them on /metrics.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		importRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_import_requests_total",
				Help: "Total number of CSV import requests by outcome",
			},
			[]string{"status"},
		),
		importRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_import_rows_total",
				Help: "Total number of CSV rows accepted or rejected during import",
			},
			[]string{"outcome"},
		),
		importDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_import_duration_milliseconds",
				Help:    "CSV import duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		budgetRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_retrieval_requests_total",
				Help: "Total number of department budget retrievals by outcome",
			},
			[]string{"status"},
		),
		budgetQuery: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_store_query_duration_seconds",
				Help:    "Budget store query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		insightRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_insight_requests_total",
				Help: "Total number of insight requests by outcome",
			},
			[]string{"status"},
		),
		upstreamAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_insight_upstream_attempts_total",
				Help: "Total number of calls to the generation service by response status",
			},
			[]string{"status"},
		),
		upstreamLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_insight_upstream_duration_seconds",
				Help:    "Generation service call duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			},
		),
		importEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_import_events_total",
				Help: "Total number of budget imported events published by outcome",
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]
	if status == "" {
		return
	}

	switch name {
	case "import_requests":
		m.importRequests.WithLabelValues(status).Inc()
	case "budget_requests":
		m.budgetRequests.WithLabelValues(status).Inc()
	case "insight_requests":
		m.insightRequests.WithLabelValues(status).Inc()
	case "insight_upstream_attempts":
		m.upstreamAttempts.WithLabelValues(status).Inc()
	case "import_events":
		m.importEventsTotal.WithLabelValues(status).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "import":
		m.importDuration.Observe(float64(duration.Milliseconds()))
	case "budget_query":
		m.budgetQuery.Observe(duration.Seconds())
	case "insight_upstream":
		m.upstreamLatency.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) AddCounter(name string, value float64, tags map[string]string) {
	switch name {
	case "import_rows":
		if outcome := tags["outcome"]; outcome != "" && value > 0 {
			m.importRows.WithLabelValues(outcome).Add(value)
		}
	}
}
