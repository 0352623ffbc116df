// Package http provides the Gin HTTP servers for the capability registry.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/slalom/capabilities/internal/auth/http"
	authUseCase "github.com/slalom/capabilities/internal/auth/usecase"
	catalogHTTP "github.com/slalom/capabilities/internal/catalog/http"
	"github.com/slalom/capabilities/internal/config"
	"github.com/slalom/capabilities/internal/metrics"
)

// Dependencies holds everything the router needs to serve requests.
type Dependencies struct {
	Config            *config.Config
	AuthUseCase       authUseCase.AuthUseCase
	CapabilityHandler *catalogHTTP.CapabilityHandler
	MetricsProvider   *metrics.Provider
}

// Server represents the main HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
	ready  atomic.Bool
}

// NewServer creates the HTTP server with all routes registered.
func NewServer(deps Dependencies, host string, port int, logger *slog.Logger) *Server {
	s := &Server{logger: logger}
	s.ready.Store(true)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      s.setupRouter(deps),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRouter builds the Gin engine and registers all routes.
func (s *Server) setupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	// Capability names may contain spaces and slashes ("UX/UI Design"), so
	// match on the raw path and unescape route parameters afterwards.
	router.UseRawPath = true
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if deps.Config.MetricsEnabled && deps.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(
			deps.MetricsProvider.MeterProvider(),
			deps.Config.MetricsNamespace,
		))
	}

	if corsMiddleware := createCORSMiddleware(
		deps.Config.CORSEnabled,
		deps.Config.CORSAllowOrigins,
		s.logger,
	); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Browser front end
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
	})
	router.Static("/static", deps.Config.StaticDir)

	// The capability list is open so anyone can browse the catalog.
	router.GET("/capabilities", deps.CapabilityHandler.ListHandler)

	// Roster changes require practice lead credentials.
	protected := router.Group("/capabilities")
	if deps.Config.RateLimitEnabled {
		protected.Use(authHTTP.RateLimitMiddleware(
			deps.Config.RateLimitRequestsPerSec,
			deps.Config.RateLimitBurst,
			s.logger,
		))
	}
	protected.Use(authHTTP.AuthenticationMiddleware(deps.AuthUseCase, s.logger))
	protected.POST("/:name/register", deps.CapabilityHandler.RegisterHandler)
	protected.DELETE("/:name/unregister", deps.CapabilityHandler.UnregisterHandler)

	return router
}

// healthHandler reports whether the process is alive.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server accepts traffic. It becomes
// unavailable as soon as a shutdown starts.
func (s *Server) readinessHandler(c *gin.Context) {
	if !s.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start http server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server. The readiness probe flips
// first so load balancers stop sending new traffic.
func (s *Server) Shutdown(ctx context.Context) error {
	s.ready.Store(false)
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
