// Package metrics defines the custom Prometheus metrics of the ELD log API.
// It is the single source of truth for metric names, labels and help strings.
//
// Metrics register themselves with the default registry on package init via
// promauto. HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eldlogs"

// ── Timeline metrics ──────────────────────────────────────────────────────────

// TimelineRendersTotal counts rendered day paths.
// Label:
//   - source: "cache" when served from the render cache, "computed" otherwise
var TimelineRendersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timeline_renders_total",
		Help:      "Total number of day paths rendered, by source (cache/computed).",
	},
	[]string{"source"},
)

// TimelineSegments observes how many path segments each render produced.
var TimelineSegments = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "timeline_path_segments",
		Help:      "Number of segments per rendered day path.",
		Buckets:   []float64{1, 3, 5, 9, 17, 33, 65, 129},
	},
)

// TimelineErrorsTotal counts rejected render requests.
// Label:
//   - reason: "invalid_status", "invalid_timestamp", "invalid_frame" or "internal"
var TimelineErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timeline_errors_total",
		Help:      "Total number of render requests that failed.",
	},
	[]string{"reason"},
)

// ── Trip metrics ──────────────────────────────────────────────────────────────

// TripsPlannedTotal counts successful trip plans.
var TripsPlannedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trips_planned_total",
		Help:      "Total number of trips planned.",
	},
)

// TripDays observes how many log sheets each planned trip spans.
var TripDays = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "trip_log_days",
		Help:      "Number of daily log sheets per planned trip.",
		Buckets:   []float64{1, 2, 3, 4, 5, 7, 10, 14},
	},
)

// TripPlanDuration measures planning plus rendering time for one trip.
var TripPlanDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "trip_plan_duration_seconds",
		Help:      "Duration of trip planning including sheet rendering.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Map metrics ───────────────────────────────────────────────────────────────

// BoundsRequestsTotal counts bounding-box requests.
// Label:
//   - result: "box" or "empty"
var BoundsRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "map_bounds_requests_total",
		Help:      "Total number of bounding-box requests, by result (box/empty).",
	},
	[]string{"result"},
)

// ── Cache / auth metrics ──────────────────────────────────────────────────────

// CachePurgesTotal counts admin purges of the render cache.
var CachePurgesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "render_cache_purges_total",
		Help:      "Total number of render cache purges.",
	},
)

// TokensIssuedTotal counts token exchanges.
// Label:
//   - result: "issued" or "rejected"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_tokens_total",
		Help:      "Total number of token requests, by result (issued/rejected).",
	},
	[]string{"result"},
)
