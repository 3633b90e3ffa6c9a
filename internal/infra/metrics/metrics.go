// Package metrics holds the Prometheus collectors shared by the store accessor,
// the Excel mirror and the API harness.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "places"

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomePanic   = "panic"
)

// Metrics groups every collector. A nil *Metrics is valid and records nothing.
type Metrics struct {
	operationDuration *prometheus.HistogramVec
	operationTotal    *prometheus.CounterVec
	mirrorCache       *prometheus.CounterVec
	mirrorWrites      *prometheus.CounterVec
	mirrorBackups     prometheus.Counter
	mirrorRows        prometheus.Gauge
	apiRequests       *prometheus.CounterVec
	apiLatency        *prometheus.HistogramVec
	tokenRefreshes    *prometheus.CounterVec
	eventsPublished   *prometheus.CounterVec
}

// NewRegistry creates a registry with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// NewMetrics creates and registers all collectors on registry.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Duration of place store operations",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		operationTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Place store operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		mirrorCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mirror_cache_requests_total",
				Help:      "Mirror snapshot cache lookups by result",
			},
			[]string{"result"},
		),
		mirrorWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mirror_writes_total",
				Help:      "Mirror workbook writes by outcome",
			},
			[]string{"outcome"},
		),
		mirrorBackups: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mirror_backups_total",
				Help:      "Mirror backups created",
			},
		),
		mirrorRows: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "mirror_rows",
				Help:      "Rows in the last written mirror snapshot",
			},
		),
		apiRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "apitest_requests_total",
				Help:      "API harness requests by method and status class",
			},
			[]string{"method", "status"},
		),
		apiLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "apitest_request_duration_ms",
				Help:      "Latency of API harness requests in milliseconds",
				Buckets:   []float64{25, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
			},
			[]string{"method"},
		),
		tokenRefreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "apitest_token_refreshes_total",
				Help:      "Bearer token refresh attempts by outcome",
			},
			[]string{"outcome"},
		),
		eventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_published_total",
				Help:      "Place change events by type and outcome",
			},
			[]string{"type", "outcome"},
		),
	}
}

// ObserveOperation records one accessor operation.
func (m *Metrics) ObserveOperation(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.operationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	m.operationTotal.WithLabelValues(operation, outcome).Inc()
}

// MirrorCacheHit records a cache hit or miss.
func (m *Metrics) MirrorCacheHit(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.mirrorCache.WithLabelValues(result).Inc()
}

// MirrorWrite records a workbook write and the resulting row count.
func (m *Metrics) MirrorWrite(err error, rows int) {
	if m == nil {
		return
	}
	if err != nil {
		m.mirrorWrites.WithLabelValues(OutcomeFailure).Inc()

		return
	}
	m.mirrorWrites.WithLabelValues(OutcomeSuccess).Inc()
	m.mirrorRows.Set(float64(rows))
}

// MirrorBackup records a created backup.
func (m *Metrics) MirrorBackup() {
	if m == nil {
		return
	}
	m.mirrorBackups.Inc()
}

// APIRequest records one harness request. statusCode 0 means a transport failure.
func (m *Metrics) APIRequest(method string, statusCode int, elapsedMs float64) {
	if m == nil {
		return
	}
	m.apiRequests.WithLabelValues(method, statusClass(statusCode)).Inc()
	m.apiLatency.WithLabelValues(method).Observe(elapsedMs)
}

// TokenRefresh records a token refresh attempt.
func (m *Metrics) TokenRefresh(err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.tokenRefreshes.WithLabelValues(outcome).Inc()
}

// EventPublished records a place event publish attempt.
func (m *Metrics) EventPublished(eventType string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.eventsPublished.WithLabelValues(eventType, outcome).Inc()
}

func statusClass(code int) string {
	switch {
	case code <= 0:
		return "error"
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
