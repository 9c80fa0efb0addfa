package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gramin-samriddhi/backend/config"
	"github.com/gramin-samriddhi/backend/internal/api"
	"github.com/gramin-samriddhi/backend/internal/router"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New creates a server listening on cfg's address
func New(cfg config.ServerConfig, deps api.Dependencies, logger *zap.Logger) *Server {
	engine := router.SetupRouter(deps, cfg.AllowedOrigins, logger)

	return &Server{
		router: engine,
		http: &http.Server{
			Addr:    cfg.Addr(),
			Handler: engine,
		},
		logger: logger,
	}
}

// Handler returns the routed engine
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called. It returns nil after a clean shutdown.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.http.Shutdown(ctx)
}
