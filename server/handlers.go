package server

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/katalvlaran/lvroute/astar"
	"github.com/katalvlaran/lvroute/streetmap"
)

// RouteRequest is the body of POST /api/route. All four coordinates are
// required; pointers keep an explicit 0 distinct from a missing field.
type RouteRequest struct {
	StartLon *float64 `json:"start_lon" validate:"required,gte=-180,lte=180"`
	StartLat *float64 `json:"start_lat" validate:"required,gte=-90,lte=90"`
	GoalLon  *float64 `json:"goal_lon" validate:"required,gte=-180,lte=180"`
	GoalLat  *float64 `json:"goal_lat" validate:"required,gte=-90,lte=90"`
}

// Bind is a no-op; field checks run through the validator.
func (*RouteRequest) Bind(*http.Request) error { return nil }

// RouteResponse is the body of a successful POST /api/route.
// Nodes, Coordinates and Polyline are empty unless Outcome is SOLVED.
type RouteResponse struct {
	Outcome     string       `json:"outcome"`
	Nodes       []int64      `json:"nodes"`
	Coordinates [][2]float64 `json:"coordinates"`
	Polyline    string       `json:"polyline"`
	Weight      float64      `json:"weight"`
	Explored    int          `json:"explored"`
	ElapsedMs   float64      `json:"elapsed_ms"`
}

// ClosestQuery holds the parsed query of GET /api/closest.
type ClosestQuery struct {
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
}

// ClosestResponse is the body of a successful GET /api/closest.
type ClosestResponse struct {
	ID   int64   `json:"id"`
	Lon  float64 `json:"lon"`
	Lat  float64 `json:"lat"`
	Name string  `json:"name,omitempty"`
}

type routeHandler struct {
	m        Map
	opts     Options
	metrics  *Metrics
	validate *validator.Validate
	trans    ut.Translator
}

func newRouteHandler(m Map, opts Options, metrics *Metrics) *routeHandler {
	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")

	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = enTranslations.RegisterDefaultTranslations(v, trans)

	return &routeHandler{m: m, opts: opts, metrics: metrics, validate: v, trans: trans}
}

func (h *routeHandler) route(w http.ResponseWriter, r *http.Request) {
	req := &RouteRequest{}
	if err := render.Bind(r, req); err != nil {
		_ = render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		_ = render.Render(w, r, ErrValidation(err, h.translate(err)))
		return
	}

	var solveOpts []astar.Option
	if h.opts.Logger != nil {
		solveOpts = append(solveOpts, astar.WithLogger(h.opts.Logger))
	}
	res, err := h.m.Route(*req.StartLon, *req.StartLat, *req.GoalLon, *req.GoalLat, h.opts.Timeout, solveOpts...)
	if err != nil {
		_ = render.Render(w, r, snapError(err))
		return
	}
	h.metrics.observeRoute(res.Outcome().String(), res.NumStatesExplored())

	resp := RouteResponse{
		Outcome:     res.Outcome().String(),
		Nodes:       res.Solution(),
		Coordinates: [][2]float64{},
		Weight:      res.SolutionWeight(),
		Explored:    res.NumStatesExplored(),
		ElapsedMs:   float64(res.ExplorationTime().Microseconds()) / 1000,
	}
	if res.Outcome() == astar.Solved {
		if resp.Coordinates, err = h.m.Coordinates(resp.Nodes); err != nil {
			_ = render.Render(w, r, ErrInternal(err))
			return
		}
		if resp.Polyline, err = h.m.EncodeRoute(resp.Nodes); err != nil {
			_ = render.Render(w, r, ErrInternal(err))
			return
		}
	}

	renderOK(w, r, resp)
}

func (h *routeHandler) closest(w http.ResponseWriter, r *http.Request) {
	q, err := parseClosestQuery(r)
	if err != nil {
		_ = render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if err := h.validate.Struct(q); err != nil {
		_ = render.Render(w, r, ErrValidation(err, h.translate(err)))
		return
	}

	id, err := h.m.Closest(q.Lon, q.Lat)
	if err != nil {
		_ = render.Render(w, r, snapError(err))
		return
	}
	n, err := h.m.Node(id)
	if err != nil {
		_ = render.Render(w, r, ErrInternal(err))
		return
	}

	renderOK(w, r, ClosestResponse{ID: n.ID, Lon: n.Lon, Lat: n.Lat, Name: n.Name})
}

func parseClosestQuery(r *http.Request) (*ClosestQuery, error) {
	values := r.URL.Query()
	var q ClosestQuery
	for _, f := range []struct {
		key string
		dst *float64
	}{{"lon", &q.Lon}, {"lat", &q.Lat}} {
		raw := values.Get(f.key)
		if raw == "" {
			return nil, fmt.Errorf("missing query parameter %q", f.key)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("query parameter %q: %w", f.key, err)
		}
		*f.dst = v
	}

	return &q, nil
}

// translate renders each field failure in English.
func (h *routeHandler) translate(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, e.Translate(h.trans))
	}

	return msgs
}

func snapError(err error) render.Renderer {
	if errors.Is(err, streetmap.ErrNoRoutableNodes) {
		return ErrUnavailable(err)
	}

	return ErrInternal(err)
}
