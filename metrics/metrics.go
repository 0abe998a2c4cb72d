// Package metrics provides Prometheus metrics for auth-gate.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UnauthorizedUserCount counts rejected authentication attempts per user.
	UnauthorizedUserCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "authgate",
			Name:      "unauthorized_user_count",
			Help:      "Number of unauthorized authentication attempts",
		},
		[]string{"user_id"},
	)

	// AuthenticateTotal counts authentication attempts by outcome.
	AuthenticateTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "authgate",
			Name:      "authenticate_total",
			Help:      "Total number of authentication attempts",
		},
		[]string{"outcome"},
	)

	// AuthenticateDuration measures end-to-end authentication duration.
	AuthenticateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "authgate",
			Name:      "authenticate_duration_seconds",
			Help:      "Duration of authentication requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// EventPublishTotal counts event stream publish attempts.
	EventPublishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "authgate",
			Name:      "event_publish_total",
			Help:      "Total number of unauthorized event publish attempts",
		},
		[]string{"status"},
	)

	// ErrorsTotal counts errors by operation and type.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "authgate",
			Name:      "errors_total",
			Help:      "Total number of errors",
		},
		[]string{"operation", "error_type"},
	)

	// RedisConnectionStatus tracks Redis connection status.
	RedisConnectionStatus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "authgate",
			Name:      "redis_connection_status",
			Help:      "Redis connection status (1 = connected, 0 = disconnected)",
		},
	)
)

// RecordOutcome records a completed authentication attempt.
func RecordOutcome(outcome string, duration float64) {
	AuthenticateTotal.WithLabelValues(outcome).Inc()
	AuthenticateDuration.Observe(duration)
}

// RecordEventPublish records an event publish attempt.
func RecordEventPublish(status string) {
	EventPublishTotal.WithLabelValues(status).Inc()
}

// RecordError records an error.
func RecordError(operation, errorType string) {
	ErrorsTotal.WithLabelValues(operation, errorType).Inc()
}

// SetRedisConnected sets Redis connection status to connected.
func SetRedisConnected() {
	RedisConnectionStatus.Set(1)
}

// SetRedisDisconnected sets Redis connection status to disconnected.
func SetRedisDisconnected() {
	RedisConnectionStatus.Set(0)
}

// RejectionCounter adapts UnauthorizedUserCount to the orchestrator's
// counter port.
type RejectionCounter struct{}

// Inc increments the unauthorized counter for userID.
func (RejectionCounter) Inc(userID string) {
	UnauthorizedUserCount.WithLabelValues(userID).Inc()
}
