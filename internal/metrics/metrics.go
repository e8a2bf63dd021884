// Package metrics provides Prometheus metrics for monitoring the recommendation service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendationsComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "genie_recommendations_computed_total",
			Help: "Total number of recommendation computations",
		},
	)
	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "genie_recommendation_duration_seconds",
			Help:    "Recommendation computation duration in seconds",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)
	PatternsDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genie_patterns_detected_total",
			Help: "Total number of procrastination patterns detected, by type",
		},
		[]string{"type"},
	)
	ScheduleFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "genie_schedule_fallbacks_total",
			Help: "Total number of computations that returned the default schedule",
		},
	)
	CreditsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "genie_credits_spent_total",
			Help: "Total number of genie credits spent",
		},
	)
	CreditsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "genie_credits_rejected_total",
			Help: "Total number of requests rejected for exhausted credits",
		},
	)
	SessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "genie_sessions_started_total",
			Help: "Total number of productivity sessions started",
		},
	)
	SessionsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "genie_sessions_completed_total",
			Help: "Total number of productivity sessions closed with ratings",
		},
	)
	DigestsEnqueued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "genie_digests_enqueued_total",
			Help: "Total number of digest jobs enqueued",
		},
	)
	DigestsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "genie_digests_sent_total",
			Help: "Total number of digest emails sent",
		},
	)
	DigestsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "genie_digests_failed_total",
			Help: "Total number of digest jobs that failed permanently",
		},
	)
	DigestQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "genie_digest_queue_depth",
			Help: "Current depth of the digest job queue",
		},
	)
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genie_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "genie_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

func RecordRecommendation(duration time.Duration) {
	RecommendationsComputed.Inc()
	RecommendationDuration.Observe(duration.Seconds())
}

func RecordPattern(patternType string) {
	PatternsDetected.WithLabelValues(patternType).Inc()
}

func RecordHTTPRequest(method, endpoint, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func UpdateDigestQueueDepth(depth int) {
	DigestQueueDepth.Set(float64(depth))
}
