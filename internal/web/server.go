// Package web serves the lazycode view trees and events over HTTP for a
// browser front end.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/chmouel/lazycode/internal/app/handlers"
	"github.com/chmouel/lazycode/internal/config"
	"github.com/chmouel/lazycode/internal/theme"
	"github.com/chmouel/lazycode/internal/view"
)

const (
	maxEventBody    = 32 << 20
	shutdownTimeout = 5 * time.Second
)

// Server exposes one application state to the browser. Every request that
// touches the state holds mu, so handlers still see a single writer.
type Server struct {
	Handlers *handlers.Handlers
	Metrics  *Metrics
	Builder  view.Builder
	Theme    *theme.Theme
	Title    string
	Width    int
	Height   int
	TabWidth int

	mu   sync.Mutex
	logf func(string, ...any)
}

// NewServer creates a server for h configured from cfg. logf may be nil.
func NewServer(h *handlers.Handlers, cfg *config.AppConfig, logf func(string, ...any)) *Server {
	s := &Server{
		Handlers: h,
		Metrics:  NewMetrics(),
		Builder:  view.NewBuilder(cfg.Icons()),
		Theme:    theme.GetTheme(cfg.Theme),
		Title:    view.DefaultTitle,
		Width:    cfg.Width,
		Height:   cfg.Height,
		TabWidth: cfg.TabWidth,
		logf:     logf,
	}
	s.Metrics.SetWorkspace(h.State.Workspace)
	return s
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/view", s.handleView)
	mux.HandleFunc("GET /api/layout", s.handleLayout)
	mux.HandleFunc("GET /api/workspace", s.handleWorkspace)
	mux.HandleFunc("POST /api/events/{action}", s.handleEvent)
	mux.HandleFunc("POST /api/rescan", s.handleRescan)
	mux.Handle("GET /metrics", s.Metrics.Handler())
	return s.instrument(mux)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.debugf("listening on http://%s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.debugf("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument counts requests per route pattern and status code.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		s.Metrics.RecordRequest(route, rec.status)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderPage(w, newPageData(s)); err != nil {
		s.debugf("render page: %v", err)
	}
}

type viewResponse struct {
	Explorer  view.Node `json:"explorer"`
	Editor    view.Node `json:"editor"`
	StatusBar view.Node `json:"statusBar"`
	Selection string    `json:"selection"`
}

func (s *Server) handleView(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	st := s.Handlers.State
	resp := viewResponse{
		Explorer:  s.Builder.Explorer(st.Workspace, st.Selection),
		Editor:    s.Builder.Editor(st.Selection, st.Content),
		StatusBar: s.Builder.StatusBar(st.Selection),
		Selection: st.Selection,
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

// handleLayout returns the whole page as a single node tree.
func (s *Server) handleLayout(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	st := s.Handlers.State
	layout := s.Builder.Layout(st.Workspace, st.Selection, st.Content)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, layout)
}

func (s *Server) handleWorkspace(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.Handlers.State.Workspace)
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	action := r.PathValue("action")

	var payload map[string]any
	err := json.NewDecoder(io.LimitReader(r.Body, maxEventBody)).Decode(&payload)
	if err != nil && !errors.Is(err, io.EOF) {
		s.Metrics.RecordEvent(metricAction(action), string(handlers.KindMalformedRequest))
		writeJSON(w, http.StatusBadRequest, handlers.ErrorResult{
			Error: "Invalid JSON payload",
			Kind:  handlers.KindMalformedRequest,
		})
		return
	}

	s.mu.Lock()
	result, err := s.Handlers.Dispatch(action, payload)
	s.mu.Unlock()

	if err != nil {
		failure := handlers.Failure(action, err)
		s.debugf("%s failed: %v", action, err)
		s.Metrics.RecordEvent(metricAction(action), string(failure.Kind))
		writeJSON(w, statusFor(failure.Kind), failure)
		return
	}
	s.Metrics.RecordEvent(action, "ok")
	writeJSON(w, http.StatusOK, result)
}

type rescanResponse struct {
	Directories int `json:"directories"`
	Files       int `json:"files"`
	Skipped     int `json:"skipped"`
	Errors      int `json:"errors"`
}

func (s *Server) handleRescan(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	stats, err := s.Handlers.Rescan()
	if err == nil {
		s.Metrics.SetWorkspace(s.Handlers.State.Workspace)
	}
	s.mu.Unlock()

	if err != nil {
		writeJSON(w, http.StatusInternalServerError, handlers.ErrorResult{
			Error: "Error scanning workspace: " + err.Error(),
			Kind:  handlers.KindIOError,
		})
		return
	}
	writeJSON(w, http.StatusOK, rescanResponse{
		Directories: stats.Directories,
		Files:       stats.Files,
		Skipped:     stats.Skipped,
		Errors:      stats.Errors,
	})
}

// statusFor maps an error kind onto an HTTP status code.
func statusFor(kind handlers.ErrorKind) int {
	switch kind {
	case handlers.KindMalformedRequest:
		return http.StatusBadRequest
	case handlers.KindOutsideWorkspace:
		return http.StatusForbidden
	case handlers.KindUnknownAction, handlers.KindNotFound:
		return http.StatusNotFound
	case handlers.KindIsDirectory, handlers.KindUnreadable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// metricAction keeps arbitrary URL segments out of the metric labels.
func metricAction(action string) string {
	switch action {
	case view.ActionSelectFile, view.ActionUpdateContent:
		return action
	}
	return "unknown"
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) debugf(format string, args ...any) {
	if s.logf != nil {
		s.logf(format, args...)
	}
}
