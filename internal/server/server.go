package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"dashboard-theme/internal/ui"
)

const (
	shutdownTimeout = 5 * time.Second
	pruneInterval   = time.Minute
	pruneIdle       = 10 * time.Minute
)

// Server serves theme assets until its context is cancelled.
type Server struct {
	handler *Handler
	server  *http.Server
}

// NewServer creates a theme server listening on addr.
func NewServer(addr string, h *Handler) *Server {
	return &Server{
		handler: h,
		server: &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Start listens on the configured address and blocks until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln and blocks until ctx is done, then shuts
// down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(ln)
	}()

	go s.pruneLoop(ctx)

	ui.LogStatus("success", "Theme server listening on "+ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func (s *Server) pruneLoop(ctx context.Context) {
	limiter := s.handler.opts.Limiter
	if limiter == nil {
		return
	}

	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := limiter.Prune(pruneIdle); n > 0 {
				ui.LogStatus("debug", "Pruned idle rate limit buckets")
			}
			MetricRateLimitedClients.Set(float64(limiter.Clients()))
		}
	}
}
