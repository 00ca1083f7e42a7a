package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// MaxRequestBytes limits the size of a merge request body.
const MaxRequestBytes = 1 << 20

// Merger merges class lists. *twmerge.Merger implements it.
type Merger interface {
	Merge(classLists ...string) string
}

// MergeRequest is the body of POST /merge.
type MergeRequest struct {
	Classes []string `json:"classes"`
}

// MergeResponse is the answer to POST /merge.
type MergeResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server routes merge requests to a Merger.
type Server struct {
	merger  Merger
	metrics *metrics
	router  chi.Router
}

// New creates a server for m.
func New(m Merger) *Server {
	s := &Server{merger: m, metrics: newMetrics()}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(traceRequests)
	r.Post("/merge", s.handleMerge)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", s.metrics.handler())
	s.router = r
	return s
}

// Handler returns the HTTP handler of s.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	var req MergeRequest
	body := http.MaxBytesReader(w, r.Body, MaxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(w, http.StatusRequestEntityTooLarge, reasonTooLarge, err)
			return
		}
		s.fail(w, http.StatusBadRequest, reasonBadJSON, err)
		return
	}
	start := time.Now()
	result := s.merger.Merge(req.Classes...)
	s.metrics.duration.Observe(time.Since(start).Seconds())
	s.metrics.merges.Inc()
	writeJSON(w, http.StatusOK, MergeResponse{Result: result})
}

func (s *Server) fail(w http.ResponseWriter, status int, reason string, err error) {
	tracer().Infof("rejected merge request: %v", err)
	s.metrics.errors.WithLabelValues(reason).Inc()
	writeJSON(w, status, errorResponse{Error: fmt.Sprintf("invalid request: %v", err)})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		tracer().Errorf("writing response: %v", err)
	}
}

// statusWriter captures the status code of a response.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(status int) {
	sw.status = status
	sw.ResponseWriter.WriteHeader(status)
}

func traceRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		tracer().Debugf("%s %s → %d (%s, request %s)", r.Method, r.URL.Path, sw.status,
			time.Since(start), middleware.GetReqID(r.Context()))
	})
}

// ListenAndServe serves h on addr until ctx is canceled, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, addr string, h http.Handler) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		tracer().Infof("listening on %s", addr)
		errc <- server.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}
	tracer().Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}
