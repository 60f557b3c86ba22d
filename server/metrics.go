package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lvroute"

// Metrics holds the Prometheus collectors of one server.
type Metrics struct {
	routeOutcomes  *prometheus.CounterVec
	statesExplored prometheus.Histogram
	httpDuration   *prometheus.HistogramVec
	totalRequests  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// Panics if any of them is already registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		routeOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_outcomes_total",
			Help:      "Finished route searches by outcome.",
		}, []string{"outcome"}),
		statesExplored: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_states_explored",
			Help:      "Vertices dequeued per route search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 5},
		}, []string{"method", "path"}),
		totalRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "HTTP requests by route pattern and status.",
		}, []string{"method", "path", "status"}),
	}
	reg.MustRegister(m.routeOutcomes, m.statesExplored, m.httpDuration, m.totalRequests)

	return m
}

// observeRoute records one finished search.
func (m *Metrics) observeRoute(outcome string, explored int) {
	m.routeOutcomes.WithLabelValues(outcome).Inc()
	m.statesExplored.Observe(float64(explored))
}

// Middleware times every request and counts it by chi route pattern, so
// query strings and unknown paths do not create new series.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		path := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			path = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		m.totalRequests.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
	})
}
