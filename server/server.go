// Package server serves a presentation over HTTP, re-reading the document on
// every page request.
package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/dunossauro/dunoslide"
	"github.com/dunossauro/dunoslide/theme"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/k1LoW/errors"
)

const (
	DefaultBind = "localhost"
	DefaultPort = 8765

	RequestIDHeader = "X-Request-Id"
	healthzPath     = "/healthz"
	shutdownTimeout = 5 * time.Second
)

// Source produces the presentation to serve.
type Source func() (*dunoslide.Presentation, error)

// FromFile loads path with e on every call.
func FromFile(e *dunoslide.Engine, path string) Source {
	return func() (*dunoslide.Presentation, error) {
		return e.Load(path)
	}
}

// FromBytes loads an in-memory document with e on every call.
func FromBytes(e *dunoslide.Engine, b []byte, format dunoslide.Format) Source {
	return func() (*dunoslide.Presentation, error) {
		return e.LoadBytes(b, format)
	}
}

// Server serves one presentation, reloading it on every page request.
type Server struct {
	engine *dunoslide.Engine
	source Source
	theme  *theme.Theme
	addr   string
	logger *slog.Logger
	router *mux.Router
	ln     net.Listener
	srv    *http.Server
}

type Option func(*Server)

// WithAddr sets the listen address. Port 0 picks a free port.
func WithAddr(bind string, port int) Option {
	return func(s *Server) {
		s.addr = net.JoinHostPort(bind, fmt.Sprintf("%d", port))
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// New loads the presentation once to resolve its theme. A document that
// cannot be loaded or names an unknown theme is reported here, before any
// request is served.
func New(e *dunoslide.Engine, src Source, opts ...Option) (_ *Server, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	s := &Server{
		engine: e,
		source: src,
		addr:   net.JoinHostPort(DefaultBind, fmt.Sprintf("%d", DefaultPort)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p, err := src()
	if err != nil {
		return nil, err
	}
	t, err := e.Registry().Resolve(p.Theme)
	if err != nil {
		return nil, err
	}
	s.theme = t
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestID)
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc(healthzPath, handleHealthz).Methods(http.MethodGet, http.MethodHead)
	static := dunoslide.DefaultStaticURL + "/"
	r.PathPrefix(static).Handler(
		http.StripPrefix(static, http.FileServer(http.FS(s.theme.Static))),
	).Methods(http.MethodGet, http.MethodHead)
	return r
}

// Handler returns the router serving the presentation.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Theme returns the theme resolved at startup.
func (s *Server) Theme() *theme.Theme {
	return s.theme
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	p, err := s.source()
	if err != nil {
		s.fail(w, r, "failed to load presentation", err)
		return
	}
	html, err := s.engine.Render(p, dunoslide.DefaultStaticURL)
	if err != nil {
		s.fail(w, r, "failed to render presentation", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, html)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.logger.Error(msg, slog.String("error", err.Error()), slog.String("request_id", w.Header().Get(RequestIDHeader)), slog.String("path", r.URL.Path))
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		start := time.Now()
		next.ServeHTTP(w, r)
		if r.URL.Path == healthzPath {
			return
		}
		s.logger.Debug("handled request",
			slog.String("request_id", id),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("elapsed", time.Since(start)),
		)
	})
}

// Start binds the listener. Once Start returns, URL is valid and connections
// are queued until Serve is called.
func (s *Server) Start() (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if s.ln != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.ln = ln
	s.srv = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}

// URL returns the base URL of the bound listener.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	addr := s.ln.Addr().String()
	if host, port, err := net.SplitHostPort(addr); err == nil && (host == "::" || host == "0.0.0.0") {
		addr = net.JoinHostPort("localhost", port)
	}
	return "http://" + strings.TrimSuffix(addr, "/")
}

// Serve serves until ctx is done and then shuts the server down.
func (s *Server) Serve(ctx context.Context) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if err := s.Start(); err != nil {
		return err
	}
	s.logger.Info("serving presentation", slog.String("url", s.URL()))
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(s.ln)
	}()
	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Debug("server stopped")
	return nil
}
