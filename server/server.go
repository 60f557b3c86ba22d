// SPDX-License-Identifier: MIT

// Package server exposes a street map over HTTP.
//
// Endpoints:
//
//	POST /api/route    {"start_lon","start_lat","goal_lon","goal_lat"} → RouteResponse
//	GET  /api/closest  ?lon=&lat=                                       → ClosestResponse
//	GET  /healthz                                                       → 200 "ok"
//	GET  /metrics                                                       → Prometheus exposition
//
// A search that ends UNSOLVABLE or TIMEOUT is still a 200; the outcome field
// says which. Snapping failures are 503, malformed input is 400.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvroute/astar"
	"github.com/katalvlaran/lvroute/streetmap"
)

// Map is the street-map surface the handlers need. *streetmap.Graph
// implements it.
type Map interface {
	Route(startLon, startLat, goalLon, goalLat float64, timeout time.Duration, opts ...astar.Option) (*astar.Result[int64], error)
	Closest(lon, lat float64) (int64, error)
	Node(id int64) (streetmap.Node, error)
	Coordinates(ids []int64) ([][2]float64, error)
	EncodeRoute(ids []int64) (string, error)
}

var _ Map = (*streetmap.Graph)(nil)

// Options configures NewHandler.
//
// Timeout  – wall-clock budget of each route search.
// Logger   – access log and solve records; nil disables both.
// Registry – receives the server's collectors and backs /metrics.
type Options struct {
	Timeout  time.Duration
	Logger   *slog.Logger
	Registry *prometheus.Registry
}

// Option represents a functional option for configuring NewHandler.
type Option func(*Options)

// WithTimeout sets the per-request search budget. Panics if d < 0.
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("server: timeout must not be negative")
	}

	return func(o *Options) {
		o.Timeout = d
	}
}

// WithLogger sets the request and solve logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *Options) {
		o.Registry = reg
	}
}

// DefaultOptions returns a five second timeout, no logging and a fresh registry.
func DefaultOptions() Options {
	return Options{
		Timeout:  5 * time.Second,
		Registry: prometheus.NewRegistry(),
	}
}

// NewHandler builds the chi router for m.
func NewHandler(m Map, opts ...Option) http.Handler {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	metrics := NewMetrics(cfg.Registry)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if cfg.Logger != nil {
		r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
			Logger:  slog.NewLogLogger(cfg.Logger.Handler(), slog.LevelInfo),
			NoColor: true,
		}))
	}
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))

	h := newRouteHandler(m, cfg, metrics)
	r.Route("/api", func(r chi.Router) {
		r.Post("/route", h.route)
		r.Get("/closest", h.closest)
	})

	return r
}

// Serve runs h on ln until ctx is done, then shuts down gracefully, giving
// in-flight requests up to grace to finish.
func Serve(ctx context.Context, ln net.Listener, h http.Handler, grace time.Duration) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// renderOK writes v as JSON with status 200.
func renderOK(w http.ResponseWriter, r *http.Request, v any) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, v)
}
