// Package metrics holds the Prometheus instruments of the engine.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tether"

var (
	SamplesIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_ingested_total",
			Help:      "Device state samples ingested, by outcome",
		},
		[]string{"result"},
	)

	RemoteWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_writes_total",
			Help:      "Remote document writes, by mode and result",
		},
		[]string{"mode", "result"},
	)

	PendingSyncRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_sync_records",
			Help:      "Ingestion writes waiting for the next reconnect",
		},
	)

	GeofenceTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geofence_transitions_total",
			Help:      "Geofence activations and exits",
		},
		[]string{"transition"},
	)

	Heartbeats = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "heartbeats_total",
			Help:      "Heartbeat attempts, by result (sent, failed, minimal, queued, flushed)",
		},
		[]string{"result"},
	)

	HeartbeatFallback = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "heartbeat_fallback_mode",
			Help:      "1 while the heartbeat scheduler runs in fallback mode",
		},
	)

	SyncRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_refreshes_total",
			Help:      "Subscription refresh passes, by result (success, failure, skipped)",
		},
		[]string{"result"},
	)

	SyncRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_refresh_duration_seconds",
			Help:      "Duration of subscription refresh passes including retries",
			Buckets:   []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60},
		},
	)

	ActiveSubscriptions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_subscriptions",
			Help:      "Live remote listeners",
		},
	)

	CacheOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Cache lookups and evictions, by kind (hit, miss, eviction, invalidation)",
		},
		[]string{"kind"},
	)

	EventListenerFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_listener_failures_total",
			Help:      "Event bus listeners that returned an error or panicked",
		},
		[]string{"topic"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	RetentionDeleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retention_deleted_total",
			Help:      "Rows removed by retention cleanup",
		},
		[]string{"table"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Control surface and worker requests, by route and status class",
		},
		[]string{"method", "route", "status"},
	)

	PresencePushes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "presence_pushes_total",
			Help:      "Presence worker topic sends, by outcome",
		},
		[]string{"result"},
	)
)

// RecordSyncRefresh records the outcome and duration of a refresh pass
func RecordSyncRefresh(result string, duration time.Duration) {
	SyncRefreshes.WithLabelValues(result).Inc()
	SyncRefreshDuration.Observe(duration.Seconds())
}

// RecordHTTPRequest counts one request under its route template
func RecordHTTPRequest(method, route string, status int) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status/100)+"xx").Inc()
}

// RecordRemoteWrite records one remote write
func RecordRemoteWrite(mode string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	RemoteWrites.WithLabelValues(mode, result).Inc()
}

// RecordPresencePush counts one presence fan-out attempt
func RecordPresencePush(result string) {
	PresencePushes.WithLabelValues(result).Inc()
}
