package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the geocoding service.
type Metrics struct {
	ProviderRequests *prometheus.CounterVec
	ProviderRetries  prometheus.Counter
	RequestDuration  *prometheus.HistogramVec
}

// NewMetrics registers the service metrics on the given registerer. Pass
// prometheus.DefaultRegisterer in production; tests use a fresh registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ProviderRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hearth",
			Subsystem: "geocoding",
			Name:      "provider_requests_total",
			Help:      "Upstream geocoding requests by outcome.",
		}, []string{"outcome"}),
		ProviderRetries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "hearth",
			Subsystem: "geocoding",
			Name:      "provider_retries_total",
			Help:      "Retried upstream geocoding attempts.",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hearth",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Inbound request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}
