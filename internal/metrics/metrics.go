// Package metrics holds the prometheus collectors of the scheduling engine.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "calendar"

// Booking outcomes.
const (
	OutcomeBooked   = "booked"
	OutcomeConflict = "conflict"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics owns its registry so several instances can live side by side in tests.
type Metrics struct {
	registry *prometheus.Registry

	bookings        *prometheus.CounterVec
	freeSlotQueries prometheus.Counter
	conflictQueries prometheus.Counter
	duration        *prometheus.HistogramVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Meeting booking attempts by outcome.",
		}, []string{"outcome"}),
		freeSlotQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "free_slot_queries_total",
			Help:      "Free slot searches served.",
		}),
		conflictQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conflict_queries_total",
			Help:      "Bulk participant conflict checks served.",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "usecase_duration_seconds",
			Help:      "Latency of scheduling operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		m.bookings,
		m.freeSlotQueries,
		m.conflictQueries,
		m.duration,
		m.httpRequests,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Nil receivers are allowed so callers can run without metrics.

func (m *Metrics) Booking(outcome string) {
	if m == nil {
		return
	}
	m.bookings.WithLabelValues(outcome).Inc()
}

func (m *Metrics) FreeSlotQuery() {
	if m == nil {
		return
	}
	m.freeSlotQueries.Inc()
}

func (m *Metrics) ConflictQuery() {
	if m == nil {
		return
	}
	m.conflictQueries.Inc()
}

// ObserveSince records the time elapsed since start for operation.
func (m *Metrics) ObserveSince(operation string, start time.Time) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// HTTPRequest records one served request. route is the matched pattern, not the raw path.
func (m *Metrics) HTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
