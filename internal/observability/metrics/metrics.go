package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics instruments inbound HTTP traffic.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the HTTP instruments on the default registry.
func NewHTTPMetrics() *HTTPMetrics {
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vowsuite_http_requests_total",
			Help: "Count of HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vowsuite_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
	prometheus.MustRegister(m.requests, m.duration)
	return m
}

// GinMiddleware records request counts and latency per route.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		method := c.Request.Method
		m.requests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

// Metrics exposes application-level instruments.
type Metrics struct {
	quotaChecks        *prometheus.CounterVec
	quotaDenied        *prometheus.CounterVec
	planEvents         *prometheus.CounterVec
	seatingAssignments *prometheus.CounterVec
}

// New registers the domain instruments on the default registry.
func New() *Metrics {
	m := &Metrics{
		quotaChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vowsuite_quota_checks_total",
			Help: "Quota checks by resource kind and decision.",
		}, []string{"resource", "decision"}),
		quotaDenied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vowsuite_quota_denied_total",
			Help: "Quota denials by resource kind.",
		}, []string{"resource"}),
		planEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vowsuite_plan_events_total",
			Help: "Applied plan webhook events by provider and tier.",
		}, []string{"provider", "tier"}),
		seatingAssignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vowsuite_seating_assignments_total",
			Help: "Seating transitions by outcome.",
		}, []string{"outcome"}),
	}
	prometheus.MustRegister(m.quotaChecks, m.quotaDenied, m.planEvents, m.seatingAssignments)
	return m
}

// RecordQuotaCheck counts a quota decision.
func (m *Metrics) RecordQuotaCheck(resource string, allowed bool) {
	if m == nil {
		return
	}
	decision := "allowed"
	if !allowed {
		decision = "denied"
		m.quotaDenied.WithLabelValues(resource).Inc()
	}
	m.quotaChecks.WithLabelValues(resource, decision).Inc()
}

// RecordPlanEvent counts an applied plan webhook event.
func (m *Metrics) RecordPlanEvent(provider, tier string) {
	if m == nil {
		return
	}
	m.planEvents.WithLabelValues(provider, tier).Inc()
}

// RecordSeatingAssignment counts a seating transition outcome
// (confirmed, rolled_back, noop).
func (m *Metrics) RecordSeatingAssignment(outcome string) {
	if m == nil {
		return
	}
	m.seatingAssignments.WithLabelValues(outcome).Inc()
}
