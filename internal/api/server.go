package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lmcosta-dev/airgraph/internal/graph"
)

// Version is the API version.
const Version = "1.0.0"

// Server is the HTTP API server for AirGraph. The graph is loaded once at
// startup and served read-only; query handlers keep all traversal state in
// per-request maps.
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	graph      *graph.Graph
	config     Config
}

func New(g *graph.Graph, cfg Config) *Server {
	s := &Server{
		graph:  g,
		config: cfg,
	}
	s.setupRouter()
	return s
}

// Start starts the HTTP server and blocks until the context is cancelled
// or an error occurs.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting",
			"host", s.config.Host,
			"port", s.config.Port,
			"airports", s.graph.NodeCount(),
			"routes", s.graph.RouteCount(),
		)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
