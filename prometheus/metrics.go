package prometheus

import (
	"github.com/shahhardik4599/creatively-yours/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Content fetch metrics
	ContentFetchCounter prometheus.CounterVec

	// Cart metrics
	CartOperationsCounter prometheus.CounterVec

	// Customizer metrics
	CustomizerCompletionsCounter prometheus.Counter

	// Checkout metrics
	CheckoutMessagesCounter prometheus.Counter

	// Session metrics
	ActiveSessionsGauge prometheus.Gauge

	initialized bool
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Content fetch metrics, labeled by resource (products, hero, ...) and
	// fetch outcome (ok, empty, unavailable)
	ContentFetchCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_content_fetches_total",
			Help: "Total number of content source fetches by outcome",
		},
		[]string{"resource", "status"},
	)

	// Cart metrics
	CartOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation"},
	)

	// Customizer metrics
	CustomizerCompletionsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_customizer_completions_total",
			Help: "Total number of completed customizer flows",
		},
	)

	// Checkout metrics
	CheckoutMessagesCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_checkout_messages_total",
			Help: "Total number of checkout messages built",
		},
	)

	// Session metrics
	ActiveSessionsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_active_sessions",
			Help: "Number of live guest sessions",
		},
	)

	initialized = true
}

// RecordContentFetch increments the counter for content source fetches
func RecordContentFetch(resource string, status string) {
	if !initialized {
		return
	}
	ContentFetchCounter.WithLabelValues(resource, status).Inc()
}

// RecordCartOperation increments the counter for cart operations
func RecordCartOperation(operation string) {
	if !initialized {
		return
	}
	CartOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordCustomizerCompletion increments the counter for completed customizer flows
func RecordCustomizerCompletion() {
	if !initialized {
		return
	}
	CustomizerCompletionsCounter.Inc()
}

// RecordCheckoutMessage increments the counter for checkout messages
func RecordCheckoutMessage() {
	if !initialized {
		return
	}
	CheckoutMessagesCounter.Inc()
}

// SetActiveSessions updates the gauge for live guest sessions
func SetActiveSessions(count float64) {
	if !initialized {
		return
	}
	ActiveSessionsGauge.Set(count)
}
