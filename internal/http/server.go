// Package http provides the HTTP server, router and shared middleware.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/coursecatalog/internal/config"
	contentHTTP "github.com/allisson/coursecatalog/internal/content/http"
	"github.com/allisson/coursecatalog/internal/contentful"
	apperrors "github.com/allisson/coursecatalog/internal/errors"
	"github.com/allisson/coursecatalog/internal/httputil"
	"github.com/allisson/coursecatalog/internal/metrics"
	settingsHTTP "github.com/allisson/coursecatalog/internal/settings/http"
	"github.com/allisson/coursecatalog/internal/web"
)

const readinessTimeout = 2 * time.Second

// ReadinessChecker reports whether the content API answers for the connected
// space.
type ReadinessChecker interface {
	Space(ctx context.Context) (*contentful.Space, error)
}

// Server represents the HTTP server.
type Server struct {
	server    *http.Server
	router    *gin.Engine
	readiness ReadinessChecker
	logger    *slog.Logger
}

// NewServer creates a new HTTP server. A nil readiness checker reports the
// server as not ready.
func NewServer(
	readiness ReadinessChecker,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		readiness: readiness,
		logger:    logger,
		server:    newHTTPServer(host, port, nil),
	}
}

// SetupRouter configures the Gin router with middleware, templates and routes.
// ctx bounds background work started by middleware.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	pageHandler *contentHTTP.PageHandler,
	settingsHandler *settingsHTTP.SettingsHandler,
	cookieStore *settingsHTTP.CookieStore,
	metricsProvider *metrics.Provider,
) error {
	templates, err := web.LoadTemplates()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(templates)

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsEnabled && metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	pages := router.Group("/")
	pages.Use(contentHTTP.APIMiddleware())
	pages.Use(settingsHTTP.SettingsMiddleware(cookieStore))
	{
		pages.GET("/", pageHandler.IndexHandler)
		pages.GET("/courses", pageHandler.CoursesHandler)
		pages.GET("/courses/categories/:category", pageHandler.CategoryHandler)
		pages.GET("/courses/:slug", pageHandler.CourseHandler)
		pages.GET("/courses/:slug/lessons/:lesson", pageHandler.LessonHandler)

		pages.GET("/settings", settingsHandler.GetHandler)
		if cfg.RateLimitSettingsEnabled {
			pages.POST("/settings",
				settingsHTTP.RateLimitMiddleware(
					ctx,
					cfg.RateLimitSettingsRequestsPerSec,
					cfg.RateLimitSettingsBurst,
					s.logger,
				),
				settingsHandler.PostHandler,
			)
		} else {
			pages.POST("/settings", settingsHandler.PostHandler)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		httputil.HandleErrorHTML(c, apperrors.ErrNotFound, s.logger)
	})

	s.router = router
	s.server.Handler = router
	return nil
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.server.Handler == nil && s.router != nil {
		s.server.Handler = s.router
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler probes the connected space through the content API.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.readiness == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"content_api": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if _, err := s.readiness.Space(ctx); err != nil {
		s.logger.WarnContext(ctx, "readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"content_api": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"content_api": "ok"},
	})
}
