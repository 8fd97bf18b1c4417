// Package server exposes the font query compiler over HTTP.
//
// Routes:
//
//	GET  /healthz                         liveness probe
//	GET  /version                         build information
//	GET  /v1/url?family=<css2 family>...  compile families given in CSS2 syntax
//	GET  /v1/stylesheet?family=...        same, rendered as a <link> element
//	POST /v1/compile                      compile a JSON manifest body
//
// Request shape violations are answered with 400 and a JSON body carrying
// the error code, so clients can branch on EMPTY_INPUT, UNKNOWN_ATTRIBUTE
// and friends without parsing messages.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	// DefaultAddr is used when no address is configured.
	DefaultAddr = ":8080"

	// maxBodyBytes bounds POST /v1/compile request bodies.
	maxBodyBytes = 1 << 20

	shutdownTimeout = 5 * time.Second
)

// Server is the HTTP front end for fonts.Compile.
type Server struct {
	logger *log.Logger
	router chi.Router
}

// New creates a Server. A nil logger falls back to log.Default().
func New(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/url", s.handleURL)
		r.Get("/stylesheet", s.handleStylesheet)
		r.Post("/compile", s.handleCompile)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
