package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/lvroute/server"
	"github.com/katalvlaran/lvroute/spatial"
	"github.com/katalvlaran/lvroute/streetmap"
)

type HandlerSuite struct {
	suite.Suite
	handler http.Handler
	logs    *bytes.Buffer
}

func (s *HandlerSuite) SetupTest() {
	g, err := streetmap.Load(context.Background(), "../streetmap/testdata/campus.osm")
	s.Require().NoError(err)

	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.handler = server.NewHandler(g, server.WithTimeout(time.Second), server.WithLogger(logger))
}

func (s *HandlerSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	return rec
}

func (s *HandlerSuite) TestRouteSolved() {
	rec := s.do(http.MethodPost, "/api/route",
		`{"start_lon":-122.2580,"start_lat":37.8711,"goal_lon":-122.2580,"goal_lat":37.8699}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp server.RouteResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("SOLVED", resp.Outcome)
	s.Equal([]int64{4, 5, 1, 2, 3}, resp.Nodes)
	s.Len(resp.Coordinates, 5)
	s.Equal([2]float64{-122.258, 37.871}, resp.Coordinates[0])
	s.NotEmpty(resp.Polyline)
	s.InDelta(462, resp.Weight, 5)
	s.Positive(resp.Explored)

	s.Contains(s.logs.String(), "astar solve finished")
	s.Contains(s.logs.String(), "POST")
}

func (s *HandlerSuite) TestRouteValidation() {
	rec := s.do(http.MethodPost, "/api/route",
		`{"start_lon":-122.2580,"start_lat":95,"goal_lon":-122.2580,"goal_lat":37.8699}`)
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var resp server.ErrResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Invalid request.", resp.StatusText)
	s.Require().Len(resp.Validation, 1)
	s.Contains(resp.Validation[0], "start_lat")
}

func (s *HandlerSuite) TestRouteMissingCoordinates() {
	cases := []struct {
		name    string
		body    string
		missing []string
	}{
		{"empty object", `{}`, []string{"start_lon", "start_lat", "goal_lon", "goal_lat"}},
		{"start only", `{"start_lon":-122.2580,"start_lat":37.8699}`, []string{"goal_lon", "goal_lat"}},
		{"one field", `{"start_lon":-122.2580}`, []string{"start_lat", "goal_lon", "goal_lat"}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.do(http.MethodPost, "/api/route", tc.body)
			s.Require().Equal(http.StatusBadRequest, rec.Code, rec.Body.String())

			var resp server.ErrResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			s.Require().Len(resp.Validation, len(tc.missing))
			for i, field := range tc.missing {
				s.Contains(resp.Validation[i], field)
			}
		})
	}
}

func (s *HandlerSuite) TestRouteZeroCoordinatesAccepted() {
	rec := s.do(http.MethodPost, "/api/route",
		`{"start_lon":0,"start_lat":0,"goal_lon":0,"goal_lat":0}`)
	s.NotEqual(http.StatusBadRequest, rec.Code, rec.Body.String())
}

func (s *HandlerSuite) TestRouteMalformedBody() {
	rec := s.do(http.MethodPost, "/api/route", `{"start_lon":`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/route", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestClosest() {
	rec := s.do(http.MethodGet, "/api/closest?lon=-122.2601&lat=37.8701", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp server.ClosestResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(server.ClosestResponse{ID: 1, Lon: -122.26, Lat: 37.87}, resp)
}

func (s *HandlerSuite) TestClosestBadQuery() {
	for _, target := range []string{
		"/api/closest?lon=-122.26",
		"/api/closest?lon=west&lat=37.87",
		"/api/closest?lon=-200&lat=37.87",
	} {
		rec := s.do(http.MethodGet, target, "")
		s.Equal(http.StatusBadRequest, rec.Code, target)
	}
}

func (s *HandlerSuite) TestHealthz() {
	rec := s.do(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", rec.Body.String())
}

func (s *HandlerSuite) TestMetrics() {
	s.do(http.MethodPost, "/api/route",
		`{"start_lon":-122.2580,"start_lat":37.8711,"goal_lon":-122.2580,"goal_lat":37.8699}`)
	s.do(http.MethodGet, "/api/closest?lon=x&lat=1", "")

	rec := s.do(http.MethodGet, "/metrics", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.Contains(body, `lvroute_route_outcomes_total{outcome="SOLVED"} 1`)
	s.Contains(body, `lvroute_requests_total{method="POST",path="/api/route",status="200"} 1`)
	s.Contains(body, `lvroute_requests_total{method="GET",path="/api/closest",status="400"} 1`)
	s.Contains(body, "lvroute_route_states_explored_count 1")
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func TestRoute_Timeout(t *testing.T) {
	g, err := streetmap.Load(context.Background(), "../streetmap/testdata/campus.osm")
	require.NoError(t, err)
	h := server.NewHandler(g, server.WithTimeout(0))

	req := httptest.NewRequest(http.MethodPost, "/api/route",
		strings.NewReader(`{"start_lon":-122.2580,"start_lat":37.8711,"goal_lon":-122.2580,"goal_lat":37.8699}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp server.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "TIMEOUT", resp.Outcome)
	assert.Empty(t, resp.Nodes)
	assert.NotNil(t, resp.Nodes)
	assert.Empty(t, resp.Polyline)
	assert.Equal(t, 1, resp.Explored)
}

func TestEmptyMapIsUnavailable(t *testing.T) {
	g, err := streetmap.NewBuilder().Build(spatial.KindKDTree)
	require.NoError(t, err)
	h := server.NewHandler(g)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/closest?lon=0&lat=0", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/route", strings.NewReader(`{"start_lon":0,"start_lat":0,"goal_lon":1,"goal_lat":1}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestWithTimeout_Negative(t *testing.T) {
	assert.Panics(t, func() { server.WithTimeout(-time.Second) })
}

func TestServe_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	g, err := streetmap.NewBuilder().Build(spatial.KindNaive)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, ln, server.NewHandler(g), time.Second)
	}()

	tr := &http.Transport{}
	client := &http.Client{Transport: tr, Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))
	tr.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
