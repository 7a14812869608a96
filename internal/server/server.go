// Package server implements the local HTTP dashboard for cch.
package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Config holds dashboard server configuration. The server always binds
// to loopback; only the port is configurable.
type Config struct {
	Port      int
	DBPath    string    // session database file
	Quiet     bool      // suppress HTTP request logging
	LogWriter io.Writer // destination for request logs (default stdout)
}

// Server serves the dashboard page and the sessions API.
type Server struct {
	config Config
	router chi.Router
}

// New creates a dashboard server. Handlers open their own store per
// request; the server holds no session state between requests.
func New(config Config) *Server {
	s := &Server{config: config}
	s.router = s.setupRouter()
	return s
}

func (s *Server) setupRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	if !s.config.Quiet {
		out := s.config.LogWriter
		if out == nil {
			out = os.Stdout
		}
		r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
			Logger:  log.New(out, "", log.LstdFlags),
			NoColor: true,
		}))
	}

	r.Get("/", s.handleDashboard)
	r.Get("/api/sessions", s.handleListSessions)
	r.Delete("/api/sessions/{id}", s.handleDeleteSession)

	r.NotFound(handleNotFound)
	r.MethodNotAllowed(handleNotFound)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router {
	return s.router
}

// Addr returns the loopback address the server binds to.
func (s *Server) Addr() string {
	return fmt.Sprintf("127.0.0.1:%d", s.config.Port)
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Addr(),
		Handler: s.router,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	return srv.Serve(ln)
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Not Found", http.StatusNotFound)
}
