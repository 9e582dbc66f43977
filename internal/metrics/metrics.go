// Package metrics holds the Prometheus collectors shared by the server and
// the planner.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gravityfit"

// Manager owns every collector. Create one per registry.
type Manager struct {
	// counters
	CounterRequests        *prometheus.CounterVec
	CounterPlans           *prometheus.CounterVec
	CounterCatalogFallback *prometheus.CounterVec
	CounterStatsCache      *prometheus.CounterVec

	// gauges
	GaugeInflightRequests prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
}

// NewManager registers all collectors on reg under the given subsystem.
func NewManager(subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	return &Manager{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "The total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		CounterPlans: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "plans_total",
			Help:      "Workout plans generated, by intensity tier",
		}, []string{"kind", "tier"}),
		CounterCatalogFallback: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "catalog_fallback_total",
			Help:      "Catalog operations served from the static snapshot",
		}, []string{"op"}),
		CounterStatsCache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "stats_cache_total",
			Help:      "Dataset stats cache lookups",
		}, []string{"result"}),
		GaugeInflightRequests: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "inflight_requests",
			Help:      "Requests currently being served",
		}),
		HistogramRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// NewTestManager returns a Manager on a private registry.
func NewTestManager() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("test", reg), reg
}
