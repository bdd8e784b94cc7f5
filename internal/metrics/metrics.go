// Package metrics defines the Prometheus instruments shared across the
// application. All collectors are registered with the default registry via
// promauto and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ForecastFetchTotal counts daily forecast lookups by outcome
	// (resolved, unavailable, skipped).
	ForecastFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forecast_fetch_total",
		Help: "Number of daily forecast fetch attempts by outcome",
	}, []string{"outcome"})

	// ForecastStaleDiscards counts forecast responses dropped because the
	// viewer had already moved to a different day.
	ForecastStaleDiscards = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forecast_stale_discards_total",
		Help: "Number of forecast responses discarded as stale",
	})

	// ForecastFetchDuration observes the wall time of forecast requests.
	ForecastFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "forecast_fetch_duration_seconds",
		Help:    "Duration of daily forecast HTTP requests",
		Buckets: prometheus.DefBuckets,
	})
)

var (
	// LocationRequestsTotal counts location acquisition attempts by
	// terminal outcome (resolved, cached, or a failure reason).
	LocationRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "location_requests_total",
		Help: "Number of user location requests by terminal outcome",
	}, []string{"outcome"})
)

var (
	// TripDaysLoaded reports how many itinerary days the active trip holds.
	TripDaysLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "trip_days_loaded",
		Help: "Number of itinerary days in the currently loaded trip",
	})
)

var (
	// OutgoingLatency observes latency of outgoing HTTP requests made by
	// the instrumented client, labeled by URL, method and status.
	OutgoingLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "outgoing_request_latency_seconds",
		Help:    "Latency of outgoing HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"url", "method", "status"})
)
