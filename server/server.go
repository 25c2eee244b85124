// Package server exposes the search engine over HTTP.
//
// Routes:
//
//	POST /api/search         run to completion, JSON result
//	POST /api/search/stream  Server-Sent Events: "snapshot" per step, then "result"
//	GET  /healthz            liveness
//	GET  /metrics            Prometheus exposition
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// ErrGridTooLarge is returned for grids above Config.MaxGridSize.
var ErrGridTooLarge = errors.New("server: grid exceeds the configured maximum size")

// Route describes one endpoint.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// Routes is the list of endpoints served.
type Routes []Route

// Server binds HTTP requests to search runs.
type Server struct {
	cfg     config.Config
	logger  *zap.Logger
	limiter *RateLimiter
	router  *mux.Router
}

// SearchRequest is the body of both search endpoints.
// Start and End default to the grid's own markers.
type SearchRequest struct {
	Grid      []string              `json:"grid"`
	Algorithm string                `json:"algorithm"`
	DelayMs   *int                  `json:"delay_ms,omitempty"`
	Start     *gridgraph.Coordinate `json:"start,omitempty"`
	End       *gridgraph.Coordinate `json:"end,omitempty"`
}

// SearchResponse is the JSON result of a finished run.
type SearchResponse struct {
	RunID string `json:"run_id"`
	*search.Result
	Length int                    `json:"length"`
	Route  []gridgraph.Coordinate `json:"route"`
}

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}

// New builds a server with its router and middleware.
func New(cfg config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		limiter: NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}

	router := mux.NewRouter().StrictSlash(true)
	for _, route := range s.Routes() {
		router.Methods(route.Method).Path(route.Pattern).Name(route.Name).Handler(route.HandlerFunc)
	}
	router.Use(observe(logger), s.limiter.Middleware)
	s.router = router

	return s
}

// Routes returns all of the routes of the Server.
func (s *Server) Routes() Routes {
	return Routes{
		{"Search", http.MethodPost, "/api/search", s.handleSearch},
		{"SearchStream", http.MethodPost, "/api/search/stream", s.handleStream},
		{"Health", http.MethodGet, "/healthz", s.handleHealth},
		{"Metrics", http.MethodGet, "/metrics", promhttp.Handler().ServeHTTP},
	}
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on cfg.ListenAddr until ctx is done, then shuts
// down gracefully within grace.
func (s *Server) ListenAndServe(ctx context.Context, grace time.Duration) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.cfg.ListenAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSearch runs the request without pacing and replies with the result.
// An unreachable end is a 200 with found=false.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(w, r, s.maxBodyBytes())
	if err != nil {
		s.fail(w, err)
		return
	}
	g, start, end, kind, err := s.prepare(req)
	if err != nil {
		s.fail(w, err)
		return
	}

	runID := uuid.NewString()
	res, err := search.Run(r.Context(), g, start, end, kind,
		search.WithDelay(0),
		search.WithLogger(s.logger.With(zap.String("run_id", runID))),
	)
	if err != nil && !errors.Is(err, search.ErrNoPath) {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newResponse(runID, res))
}

// prepare validates a request against the configured limits.
func (s *Server) prepare(req SearchRequest) (*gridgraph.Grid, gridgraph.Coordinate, gridgraph.Coordinate, frontier.Kind, error) {
	var zero gridgraph.Coordinate
	if len(req.Grid) > s.cfg.MaxGridSize {
		return nil, zero, zero, 0, fmt.Errorf("%w: %d rows > %d", ErrGridTooLarge, len(req.Grid), s.cfg.MaxGridSize)
	}
	for y, row := range req.Grid {
		if len(row) > s.cfg.MaxGridSize {
			return nil, zero, zero, 0, fmt.Errorf("%w: row %d has %d bytes > %d", ErrGridTooLarge, y, len(row), s.cfg.MaxGridSize)
		}
	}
	g, err := gridgraph.ParseLines(req.Grid)
	if err != nil {
		return nil, zero, zero, 0, err
	}
	start, end := g.Start(), g.End()
	if req.Start != nil {
		start = *req.Start
	}
	if req.End != nil {
		end = *req.End
	}
	kind := s.cfg.Kind()
	if strings.TrimSpace(req.Algorithm) != "" {
		kind = frontier.ParseKind(req.Algorithm)
	}
	return g, start, end, kind, nil
}

// delay resolves delay_ms against the configured default and cap.
func (s *Server) delay(req SearchRequest) (time.Duration, error) {
	if req.DelayMs == nil {
		return s.cfg.StepDelay, nil
	}
	if *req.DelayMs < 0 {
		return 0, fmt.Errorf("%w: delay_ms cannot be negative", search.ErrOptionViolation)
	}
	d := time.Duration(*req.DelayMs) * time.Millisecond
	if s.cfg.MaxStepDelay > 0 && d > s.cfg.MaxStepDelay {
		d = s.cfg.MaxStepDelay
	}
	return d, nil
}

// fail maps err to a status code and writes it.
func (s *Server) fail(w http.ResponseWriter, err error) {
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	writeError(w, code, err.Error())
}

func statusOf(err error) int {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var sizeErr *http.MaxBytesError
	switch {
	case errors.As(err, &sizeErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, errBadBody):
		return http.StatusBadRequest
	case errors.Is(err, search.ErrInvalidInput), errors.Is(err, search.ErrOptionViolation),
		errors.Is(err, ErrGridTooLarge),
		errors.Is(err, gridgraph.ErrEmptyGrid), errors.Is(err, gridgraph.ErrNonRectangular),
		errors.Is(err, gridgraph.ErrNonSquare), errors.Is(err, gridgraph.ErrTerminalCount),
		errors.Is(err, gridgraph.ErrUnknownCell), errors.Is(err, gridgraph.ErrOutOfBounds),
		errors.Is(err, gridgraph.ErrBlocked):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

var errBadBody = errors.New("server: malformed request body")

// maxBodyBytes bounds a request body: a full-size grid with JSON quoting
// plus room for the remaining fields.
func (s *Server) maxBodyBytes() int64 {
	n := int64(s.cfg.MaxGridSize)
	return n*(n+4) + bodySlack
}

const bodySlack = 64 << 10

func decodeRequest(w http.ResponseWriter, r *http.Request, limit int64) (SearchRequest, error) {
	var req SearchRequest
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&req); err != nil {
		return req, fmt.Errorf("%w: %w", errBadBody, err)
	}
	return req, nil
}

func newResponse(runID string, res *search.Result) SearchResponse {
	route := res.Route()
	if route == nil {
		route = []gridgraph.Coordinate{}
	}
	return SearchResponse{RunID: runID, Result: res, Length: res.Length(), Route: route}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}
