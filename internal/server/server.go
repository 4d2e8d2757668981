// Package server exposes the solver over HTTP.
//
//	POST /v1/solve   problem document (JSON) + time_limit, depth_bias → result
//	GET  /healthz    liveness probe
//
// Results are cached in memory, keyed by a SHA-256 of the normalized request,
// so repeated submissions of the same instance and options are answered at once.
// Only results proved optimal are cached.
package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/tspbb/config"
	"github.com/katalvlaran/tspbb/problem"
	"github.com/katalvlaran/tspbb/tsp"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 4 << 20

// Request is the body of POST /v1/solve.
type Request struct {
	problem.Document

	// Start overrides the configured start city when set. It shadows the
	// document's own start field.
	Start *int `json:"start,omitempty"`
	// TimeLimit is a Go duration string; empty means the configured default.
	TimeLimit string `json:"time_limit,omitempty"`
	// DepthBias overrides the configured bias when set.
	DepthBias *float64 `json:"depth_bias,omitempty"`
}

// Response is the body of a successful solve.
type Response struct {
	RunID  string `json:"run_id"`
	Cached bool   `json:"cached"`
	tsp.Result
}

type errorBody struct {
	Error string `json:"error"`
	RunID string `json:"run_id,omitempty"`
}

// Server handles solve requests.
type Server struct {
	cfg    config.Config
	logger *log.Logger
	cache  *lru.Cache[string, tsp.Result]
}

// New builds a Server from cfg. A nil logger discards output.
func New(cfg config.Config, logger *log.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cache, err := lru.New[string, tsp.Result](cfg.Server.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("server: cache: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Server{cfg: cfg, logger: logger, cache: cache}, nil
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/v1/solve", s.handleSolve)

	return r
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", s.cfg.Server.Addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"elapsed", time.Since(start).Round(time.Microsecond))
	})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()

	var req Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, runID, fmt.Errorf("decode request: %w", err))
		return
	}
	opts, err := s.options(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, runID, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, runID, err)
		return
	}
	if n := req.Size(); n > s.cfg.Server.MaxCities {
		writeError(w, http.StatusRequestEntityTooLarge, runID,
			fmt.Errorf("%d cities exceeds the limit of %d", n, s.cfg.Server.MaxCities))
		return
	}

	key := requestKey(&req, opts)
	if res, ok := s.cache.Get(key); ok {
		s.logger.Debug("cache hit", "run_id", runID, "cost", res.Cost)
		writeJSON(w, http.StatusOK, Response{RunID: runID, Cached: true, Result: res})
		return
	}

	model, err := req.Model()
	if err != nil {
		writeError(w, http.StatusBadRequest, runID, err)
		return
	}
	opts.Logger = s.logger.With("run_id", runID)
	res, err := tsp.Solve(r.Context(), model, opts)
	if err != nil {
		writeError(w, statusFor(err), runID, err)
		return
	}
	if res.Status.Optimal() {
		s.cache.Add(key, res)
	}
	s.logger.Info("solved",
		"run_id", runID,
		"cities", req.Size(),
		"cost", res.Cost,
		"status", res.Status,
		"elapsed", res.Elapsed.Round(time.Millisecond))
	writeJSON(w, http.StatusOK, Response{RunID: runID, Result: res})
}

// options merges request overrides into the configured solver options and
// stores the effective start city in req.Document.
func (s *Server) options(req *Request) (tsp.Options, error) {
	opts := s.cfg.SolverOptions()
	if req.Start != nil {
		opts.StartCity = *req.Start
	}
	req.Document.Start = opts.StartCity
	if req.TimeLimit != "" {
		d, err := time.ParseDuration(req.TimeLimit)
		if err != nil {
			return opts, fmt.Errorf("time_limit: %w", err)
		}
		if limit := s.cfg.Solver.TimeLimit.Duration; d <= 0 || (limit > 0 && d > limit) {
			return opts, fmt.Errorf("time_limit %s must be positive and at most %s", d, limit)
		}
		opts.TimeLimit = d
	}
	if req.DepthBias != nil {
		opts.DepthBias = *req.DepthBias
	}

	return opts, nil
}

// requestKey hashes everything that influences the answer.
func requestKey(req *Request, opts tsp.Options) string {
	data, _ := json.Marshal([]interface{}{
		req.Document,
		opts.TimeLimit,
		opts.DepthBias,
		opts.Eps,
		opts.Seed,
		opts.FallbackAttempts,
	})
	sum := sha256.Sum256(data)

	return "solve:" + hex.EncodeToString(sum[:])
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, tsp.ErrInfeasible):
		return http.StatusUnprocessableEntity
	case errors.Is(err, tsp.ErrTimeLimit):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

func writeError(w http.ResponseWriter, status int, runID string, err error) {
	writeJSON(w, status, errorBody{Error: err.Error(), RunID: runID})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
