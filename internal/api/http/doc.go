// Package http provides the HTTP handlers of the demo API.
//
// Endpoints:
//   - GET /              welcome payload
//   - GET /health        liveness probe
//   - GET /metrics       Prometheus exposition
//   - GET /metrics/json  request totals as JSON
//   - GET /api/items     list items
//   - GET /api/items/:id fetch one item
//   - POST /api/items    create an item
//   - GET /api/info      process metadata
//
// Handlers never write 500 responses themselves: unexpected failures are
// attached with c.Error and rendered by middleware.ErrorHandler.
package http
