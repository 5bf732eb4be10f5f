// Package server wraps astarpa in a small stateless HTTP API: a single POST /align endpoint that
// accepts two sequences and alignment parameters and returns the cost and CIGAR script, with an
// optional redis-backed result cache in front of the search.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	astarpa "github.com/RagnarGrootKoerkamp/astar-pairwise-aligner"
)

// Server is the HTTP handler for the alignment API. The zero value is not usable; construct one
// with New.
type Server struct {
	router *chi.Mux
	cache  Cache
	logger *log.Logger
}

// New builds a Server. If cache is nil, results are never cached (see NopCache). logger is
// typically built with internal/cliutil.NewLogger.
func New(logger *log.Logger, cache Cache) *Server {
	if cache == nil {
		cache = NopCache{}
	}
	s := &Server{cache: cache, logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequest)
	r.Use(middleware.Recoverer)
	r.Post("/align", s.handleAlign)
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// alignRequest is the JSON body of POST /align.
type alignRequest struct {
	A             string   `json:"a"`
	B             string   `json:"b"`
	K             *int     `json:"k,omitempty"`
	R             *int     `json:"r,omitempty"`
	Heuristic     *string  `json:"heuristic,omitempty"`
	PruneStart    *bool    `json:"prune_start,omitempty"`
	PruneEnd      *bool    `json:"prune_end,omitempty"`
	PruneFraction *float64 `json:"prune_fraction,omitempty"`
	FanoutLimit   *int     `json:"fanout_limit,omitempty"`
}

type alignResponse struct {
	Cost    int           `json:"cost"`
	Cigar   string        `json:"cigar"`
	Stats   astarpa.Stats `json:"stats"`
	Cached  bool          `json:"cached"`
	TraceID string        `json:"trace_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAlign(w http.ResponseWriter, r *http.Request) {
	var req alignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}

	opts, err := req.options()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	key := Key(req.A, req.B, req.canonicalParams())
	traceID, _ := requestIDFromContext(r.Context())

	if cached, err := s.cache.Get(r.Context(), key); err == nil {
		writeJSON(w, http.StatusOK, alignResponse{
			Cost: cached.Cost, Cigar: cached.Cigar, Stats: cached.Stats, Cached: true, TraceID: traceID,
		})
		return
	}

	result, err := astarpa.Align(req.A, req.B, opts...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.cache.Set(r.Context(), key, result); err != nil {
		s.logger.Errorf("trace=%s caching alignment result: %v", traceID, err)
	}

	writeJSON(w, http.StatusOK, alignResponse{
		Cost: result.Cost, Cigar: result.Cigar, Stats: result.Stats, Cached: false, TraceID: traceID,
	})
}

func (req alignRequest) options() ([]astarpa.Option, error) {
	var opts []astarpa.Option
	if req.K != nil {
		opts = append(opts, astarpa.K(*req.K))
	}
	if req.R != nil {
		opts = append(opts, astarpa.R(*req.R))
	}
	if req.Heuristic != nil {
		h, err := parseHeuristic(*req.Heuristic)
		if err != nil {
			return nil, err
		}
		opts = append(opts, astarpa.WithHeuristic(h))
	}
	if req.PruneStart != nil {
		opts = append(opts, astarpa.PruneStart(*req.PruneStart))
	}
	if req.PruneEnd != nil {
		opts = append(opts, astarpa.PruneEnd(*req.PruneEnd))
	}
	if req.PruneFraction != nil {
		opts = append(opts, astarpa.PruneFraction(*req.PruneFraction))
	}
	if req.FanoutLimit != nil {
		opts = append(opts, astarpa.FanoutLimit(*req.FanoutLimit))
	}
	return opts, nil
}

// canonicalParams serializes the request's parameters (not its sequences) into a stable string
// for cache-key hashing; two requests with equal sequences and equal parameters always produce
// the same key regardless of JSON field order.
func (req alignRequest) canonicalParams() string {
	raw, _ := json.Marshal(struct {
		K             *int     `json:"k"`
		R             *int     `json:"r"`
		Heuristic     *string  `json:"heuristic"`
		PruneStart    *bool    `json:"prune_start"`
		PruneEnd      *bool    `json:"prune_end"`
		PruneFraction *float64 `json:"prune_fraction"`
		FanoutLimit   *int     `json:"fanout_limit"`
	}{req.K, req.R, req.Heuristic, req.PruneStart, req.PruneEnd, req.PruneFraction, req.FanoutLimit})
	return string(raw)
}

func parseHeuristic(s string) (astarpa.Heuristic, error) {
	switch s {
	case "none":
		return astarpa.NoHeuristic, nil
	case "sh":
		return astarpa.SH, nil
	case "csh":
		return astarpa.CSH, nil
	case "gcsh":
		return astarpa.GCSH, nil
	default:
		return 0, fmt.Errorf("astarpa: unknown heuristic %q", s)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

type ctxKey int

const requestIDKey ctxKey = 0

// requestID assigns a uuid to every request, exposing it via context and the X-Request-Id
// response header so a client and the server logs can correlate a single alignment request.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// logRequest logs each request's method, path, trace id, status, and duration once it completes.
func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		traceID, _ := requestIDFromContext(r.Context())
		s.logger.Infof("trace=%s method=%s path=%s status=%d duration=%s",
			traceID, r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Millisecond))
	})
}
