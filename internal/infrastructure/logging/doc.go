// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Request handlers retrieve a request-scoped logger from the context:
//
//	logger := logging.FromContext(c.Request.Context())
//	logger.Info("item created", zap.Int("id", item.ID))
package logging
