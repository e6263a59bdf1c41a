package monitoring

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// processStart is shared by every Metrics instance in the process
var processStart = time.Now()

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Item metrics
	ItemsCreated prometheus.Counter

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
	now       func() time.Time

	registry *prometheus.Registry
	handler  http.Handler

	// Snapshot for JSON API - track current values
	snapshot MetricsSnapshot

	mu sync.RWMutex
}

// MetricsSnapshot holds current metric values for JSON API
type MetricsSnapshot struct {
	TotalRequests int64   `json:"total_requests"`
	TotalErrors   int64   `json:"total_errors"`
	TotalDuration float64 `json:"total_duration_seconds"` // sum of all request durations
	AvgDuration   float64 `json:"avg_duration_seconds"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// NewMetrics creates a metrics collector backed by its own registry
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: processStart,
		now:       time.Now,
		registry:  prometheus.NewRegistry(),

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "endpoint"},
		),
		ItemsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "items_created_total",
				Help: "Total number of items created",
			},
		),
		Uptime: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "process_uptime_seconds",
				Help: "Process uptime in seconds",
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal,
		m.RequestDuration,
		m.ItemsCreated,
		&uptimeCollector{gauge: m.Uptime, observe: m.ObserveUptime},
	)

	m.handler = promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})

	return m
}

// uptimeCollector resamples uptime every time the registry is gathered
type uptimeCollector struct {
	gauge   prometheus.Gauge
	observe func()
}

func (u *uptimeCollector) Describe(ch chan<- *prometheus.Desc) {
	u.gauge.Describe(ch)
}

func (u *uptimeCollector) Collect(ch chan<- prometheus.Metric) {
	u.observe()
	u.gauge.Collect(ch)
}

// Registry returns the registry holding every metric of this instance
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text exposition format
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// UptimeSeconds returns the time since the process started
func (m *Metrics) UptimeSeconds() float64 {
	return m.now().Sub(m.startTime).Seconds()
}

// ObserveUptime overwrites the uptime gauge with the current reading
func (m *Metrics) ObserveUptime() {
	m.Uptime.Set(m.UptimeSeconds())
}

// RecordHTTPRequest records a completed HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	m.RequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	m.ObserveUptime()

	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.TotalDuration += duration.Seconds()
	if len(status) > 0 && (status[0] == '4' || status[0] == '5') {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// IncItemsCreated increments the created items counter
func (m *Metrics) IncItemsCreated() {
	m.ItemsCreated.Inc()
}

// Snapshot returns the current request totals
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	snap := m.snapshot
	m.mu.RUnlock()

	if snap.TotalRequests > 0 {
		snap.AvgDuration = snap.TotalDuration / float64(snap.TotalRequests)
	}
	snap.UptimeSeconds = m.UptimeSeconds()
	return snap
}
