// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "wellness"

// Outcome labels.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

type Metrics struct {
	// HTTP request duration with method, route and status labels
	RequestDuration *prometheus.HistogramVec
	// Register, login and federated login attempts by outcome
	AuthAttempts *prometheus.CounterVec
	// Requests rejected by the session guard, by error code
	GuardRejections *prometheus.CounterVec
	// Blacklist lookups that failed and were let through
	BlacklistFailOpen prometheus.Counter
	// Mood entries written
	MoodEntriesCreated prometheus.Counter
	// Blacklist rows removed by the janitor
	BlacklistRowsPurged prometheus.Counter
}

// NewRegistry builds the registry served on the metrics endpoint, with Go runtime
// and process collectors attached.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// New registers the service collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
			[]string{"method", "route", "status"},
		),
		AuthAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Authentication attempts by operation and result.",
		},
			[]string{"operation", "result"},
		),
		GuardRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_guard_rejections_total",
			Help:      "Requests rejected by the session guard by error code.",
		},
			[]string{"code"},
		),
		BlacklistFailOpen: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blacklist_fail_open_total",
			Help:      "Blacklist lookups that failed and were treated as not blacklisted.",
		}),
		MoodEntriesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mood_entries_created_total",
			Help:      "Mood entries created.",
		}),
		BlacklistRowsPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blacklist_rows_purged_total",
			Help:      "Expired blacklist rows deleted by the janitor.",
		}),
	}

	reg.MustRegister(
		m.RequestDuration,
		m.AuthAttempts,
		m.GuardRejections,
		m.BlacklistFailOpen,
		m.MoodEntriesCreated,
		m.BlacklistRowsPurged,
	)

	return m
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	if m == nil {
		return
	}

	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
}

// ObserveAuth records the outcome of an authentication operation.
func (m *Metrics) ObserveAuth(operation string, err error) {
	if m == nil {
		return
	}

	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}

	m.AuthAttempts.WithLabelValues(operation, result).Inc()
}

// GuardRejected records a request rejected by the session guard.
func (m *Metrics) GuardRejected(code string) {
	if m == nil {
		return
	}

	m.GuardRejections.WithLabelValues(code).Inc()
}

// FailOpen records a blacklist lookup failure that let the request through.
func (m *Metrics) FailOpen() {
	if m == nil {
		return
	}

	m.BlacklistFailOpen.Inc()
}

// MoodCreated records a new mood entry.
func (m *Metrics) MoodCreated() {
	if m == nil {
		return
	}

	m.MoodEntriesCreated.Inc()
}

// Purged records blacklist rows removed by a cleanup run.
func (m *Metrics) Purged(n int) {
	if m == nil || n <= 0 {
		return
	}

	m.BlacklistRowsPurged.Add(float64(n))
}
