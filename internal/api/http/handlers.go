package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/devops-demo/backend/internal/domain/item"
	"github.com/GriffinCanCode/devops-demo/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/devops-demo/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/devops-demo/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/devops-demo/backend/internal/shared/types"
)

// Fixed response messages
const (
	WelcomeMessage  = "Welcome to the Les 8 API!"
	MsgItemNotFound = "Item not found"
	MsgNameRequired = "Name is required"
)

// ItemStore is the item persistence the handlers depend on
type ItemStore interface {
	GetAll() []types.Item
	GetByID(id int) (types.Item, bool)
	Create(fields types.ItemFields) (types.Item, error)
}

// Handlers contains all HTTP handlers
type Handlers struct {
	store   ItemStore
	metrics *monitoring.Metrics
	app     config.AppConfig
	now     func() time.Time

	// Bumped by /api/info, reported by /health as requestNumber
	infoRequests atomic.Int64
}

// NewHandlers creates a new handler set
func NewHandlers(store ItemStore, metrics *monitoring.Metrics, app config.AppConfig) *Handlers {
	return &Handlers{
		store:   store,
		metrics: metrics,
		app:     app,
		now:     time.Now,
	}
}

// Root returns the welcome payload
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, types.WelcomeResponse{
		Message:     WelcomeMessage,
		Version:     h.app.Version,
		Environment: h.app.Environment,
	})
}

// Health is the liveness probe; it never touches external resources
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:        "healthy",
		Timestamp:     h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Version:       h.app.Version,
		RequestNumber: h.infoRequests.Load(),
	})
}

// Metrics serves the Prometheus exposition; gathering resamples uptime
func (h *Handlers) Metrics(c *gin.Context) {
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// MetricsSummary is the JSON view of request metrics
type MetricsSummary struct {
	Timestamp        time.Time `json:"timestamp"`
	TotalRequests    int64     `json:"total_requests"`
	TotalErrors      int64     `json:"total_errors"`
	AverageLatencyMs float64   `json:"average_latency_ms"`
	ErrorRate        float64   `json:"error_rate"`
	UptimeSeconds    float64   `json:"uptime_seconds"`
}

// MetricsJSON returns request totals as JSON
func (h *Handlers) MetricsJSON(c *gin.Context) {
	snap := h.metrics.Snapshot()

	summary := MetricsSummary{
		Timestamp:        h.now().UTC(),
		TotalRequests:    snap.TotalRequests,
		TotalErrors:      snap.TotalErrors,
		AverageLatencyMs: snap.AvgDuration * 1000,
		UptimeSeconds:    snap.UptimeSeconds,
	}
	if snap.TotalRequests > 0 {
		summary.ErrorRate = float64(snap.TotalErrors) / float64(snap.TotalRequests)
	}

	c.JSON(http.StatusOK, summary)
}

// ListItems returns every item
func (h *Handlers) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetAll())
}

// GetItem returns a single item by id
func (h *Handlers) GetItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: MsgItemNotFound})
		return
	}

	found, ok := h.store.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: MsgItemNotFound})
		return
	}

	c.JSON(http.StatusOK, found)
}

// CreateItem adds an item
func (h *Handlers) CreateItem(c *gin.Context) {
	var fields types.ItemFields
	// An empty body counts as an empty object
	if err := c.ShouldBindJSON(&fields); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(fmt.Errorf("decode item body: %w", err))
		return
	}

	created, err := h.store.Create(fields)
	if errors.Is(err, item.ErrNameRequired) {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: MsgNameRequired})
		return
	}
	if err != nil {
		_ = c.Error(fmt.Errorf("create item: %w", err))
		return
	}

	logging.FromContext(c.Request.Context()).Info("item created",
		zap.Int("id", created.ID),
		zap.String("name", created.Name),
	)

	c.JSON(http.StatusCreated, created)
}

// Info returns process metadata and counts the call
func (h *Handlers) Info(c *gin.Context) {
	h.infoRequests.Add(1)

	c.JSON(http.StatusOK, types.InfoResponse{
		App:            h.app.Name,
		Version:        h.app.Version,
		RuntimeVersion: runtime.Version(),
		Platform:       runtime.GOOS,
		Uptime:         h.metrics.UptimeSeconds(),
	})
}

// InfoRequests returns how many times /api/info has been served
func (h *Handlers) InfoRequests() int64 {
	return h.infoRequests.Load()
}
