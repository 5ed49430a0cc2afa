// Package server provides the HTTP server scaffold for the bluegreen service.
//
// It sets up a chi router with standard middleware (request ID, real IP,
// logging, JSON recovery, timeout) and stops on SIGINT/SIGTERM, draining
// in-flight requests before returning.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jredh-dev/bluegreen/internal/handlers"
)

const (
	// ShutdownTimeout bounds how long in-flight requests get to finish.
	ShutdownTimeout = 10 * time.Second
	// HandlerTimeout must stay below WriteTimeout or it can never fire.
	HandlerTimeout = 10 * time.Second
	WriteTimeout   = 15 * time.Second
)

// Server is an HTTP server with standard middleware and graceful shutdown.
type Server struct {
	Router *chi.Mux
	srv    *http.Server
	onStop []func()
}

// New creates a Server with standard middleware applied and the service
// routes mounted.
func New(h *handlers.Handler) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(handlers.Recoverer)
	r.Use(middleware.Timeout(HandlerTimeout))

	h.Register(r)

	return &Server{
		Router: r,
		srv: &http.Server{
			Handler:      r,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: WriteTimeout,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// OnStop registers a function to call during graceful shutdown.
func (s *Server) OnStop(fn func()) {
	s.onStop = append(s.onStop, fn)
}

// ListenAndServe binds addr, calls ready with the bound address, and serves
// until SIGINT or SIGTERM arrives. Signals are caught from before the bind,
// so one arriving while ready runs still ends in a clean stop.
func (s *Server) ListenAndServe(addr string, ready func(net.Addr)) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	if ready != nil {
		ready(ln.Addr())
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errc := make(chan error, 1)
	go func() {
		errc <- s.srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Println("SIGTERM received, shutting down")
	for _, fn := range s.onStop {
		fn()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Println("Server stopped")
	return nil
}
