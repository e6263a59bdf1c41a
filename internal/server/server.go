package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/devops-demo/backend/internal/api/http"
	"github.com/GriffinCanCode/devops-demo/backend/internal/api/middleware"
	"github.com/GriffinCanCode/devops-demo/backend/internal/domain/item"
	"github.com/GriffinCanCode/devops-demo/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/devops-demo/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/devops-demo/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/devops-demo/backend/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/devops-demo/backend/internal/shared/types"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	store      *item.Store
	handlers   *apihttp.Handlers
	logger     *logging.Logger
	config     *config.Config
	metrics    *monitoring.Metrics
	tracer     *tracing.Tracer
}

// Option customizes a Server at construction
type Option func(*Server)

// WithLogger replaces the logger built from configuration
func WithLogger(logger *logging.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, opts ...Option) (*Server, error) {
	s := &Server{config: cfg}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		logCfg := logging.DefaultConfig()
		if cfg.Logging.Development {
			logCfg = logging.DevelopmentConfig()
		}
		logCfg.Level = cfg.Logging.Level

		logger, err := logging.New(logCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		s.logger = logger
	}

	s.logger.Info("Initializing API server",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	// Metrics first, the store reports into them
	s.metrics = monitoring.NewMetrics()
	s.store = item.NewStore().WithMetrics(s.metrics)
	s.handlers = apihttp.NewHandlers(s.store, s.metrics, cfg.App)

	s.tracer = tracing.New("api", s.logger.Logger)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Metrics and tracing wrap the error handler so they see its final status
	router.Use(middleware.RequestID(s.logger))
	router.Use(tracing.HTTPMiddleware(s.tracer))
	router.Use(monitoring.Middleware(s.metrics))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Probes and scrapes stay outside the limiter
	var limiters []gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		s.logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		limiters = append(limiters, middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	registerRoutes(router, s.handlers, limiters...)

	s.router = router
	s.httpServer = &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	s.logger.Info("Server initialized successfully")

	return s, nil
}

func registerRoutes(router *gin.Engine, h *apihttp.Handlers, limiters ...gin.HandlerFunc) {
	router.GET("/health", h.Health)

	// Metrics endpoints
	router.GET("/metrics", h.Metrics)
	router.GET("/metrics/json", h.MetricsJSON)

	limited := router.Group("", limiters...)
	limited.GET("/", h.Root)

	api := limited.Group("/api")
	api.GET("/items", h.ListItems)
	api.GET("/items/:id", h.GetItem)
	api.POST("/items", h.CreateItem)
	api.GET("/info", h.Info)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Not found"})
	})
}

// Handler exposes the router so the app can be embedded without a listener
func (s *Server) Handler() http.Handler {
	return s.router
}

// Store returns the item store owned by this server
func (s *Server) Store() *item.Store {
	return s.store
}

// Metrics returns the metrics owned by this server
func (s *Server) Metrics() *monitoring.Metrics {
	return s.metrics
}

// Run starts the HTTP server and blocks until it stops. In the test
// environment the listener is never opened and Run returns immediately.
func (s *Server) Run() error {
	if s.config.App.IsTest() {
		s.logger.Info("Test environment, not opening a listener")
		return nil
	}

	s.logger.Info("Starting HTTP server",
		zap.String("addr", s.httpServer.Addr),
		zap.String("health", "http://localhost:"+s.config.Server.Port+"/health"),
		zap.String("metrics", "http://localhost:"+s.config.Server.Port+"/metrics"),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Graceful shutdown failed", zap.Error(err))
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}

// Close drains pending spans and flushes buffered logs
func (s *Server) Close() error {
	s.tracer.Close()

	// Sync returns EINVAL for console outputs
	_ = s.logger.Sync()
	return nil
}
