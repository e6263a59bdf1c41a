/*
Package monitoring provides Prometheus metrics collection.

# Overview

Every Metrics value owns a private prometheus.Registry, so tests can build
isolated instances and nothing leaks into the global default registry.

# Metrics

  - http_requests_total{method,endpoint,status}: one increment per completed request
  - http_request_duration_seconds{method,endpoint}: request latency
  - process_uptime_seconds: set on request completion and again on every scrape
  - items_created_total: items accepted by the store
  - go_* and process_*: runtime and process collectors

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
