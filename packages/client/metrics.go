package client

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector exposes Prometheus metrics for the request lifecycle.
// Safe for concurrent use; attach one to a client via WithMetrics.
type MetricsCollector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	errorsTotal      *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetricsCollector creates a collector on its own registry. Mount the
// registry returned by Registry to serve the metrics.
func NewMetricsCollector() *MetricsCollector {
	registry := prometheus.NewRegistry()
	m := NewMetricsCollectorWithRegistry(registry)
	m.registry = registry
	return m
}

// NewMetricsCollectorWithRegistry creates a collector registered on the
// given registerer.
func NewMetricsCollectorWithRegistry(reg prometheus.Registerer) *MetricsCollector {
	factory := promauto.With(reg)
	return &MetricsCollector{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vane",
			Name:      "requests_total",
			Help:      "Completed requests by method and status code.",
		}, []string{"method", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vane",
			Name:      "request_duration_seconds",
			Help:      "Request duration from dispatch to fully read body.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		requestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "vane",
			Name:      "requests_in_flight",
			Help:      "Requests currently being executed.",
		}),
		errorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vane",
			Name:      "errors_total",
			Help:      "Failed requests by method and error kind.",
		}, []string{"method", "kind"}),
	}
}

// Registry returns the collector's own registry, or nil when the collector
// was registered on an external registerer.
func (m *MetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

func (m *MetricsCollector) requestStarted() {
	m.requestsInFlight.Inc()
}

func (m *MetricsCollector) requestFinished() {
	m.requestsInFlight.Dec()
}

func (m *MetricsCollector) recordRequest(method string, status int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

func (m *MetricsCollector) recordError(method string, kind ErrorKind) {
	m.errorsTotal.WithLabelValues(method, string(kind)).Inc()
}
