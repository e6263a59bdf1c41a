// Package middleware provides the HTTP middleware stack of the API.
//
// Middleware stack includes:
//   - RequestID: X-Request-ID assignment and a request-scoped logger
//   - ErrorHandler: Terminal handler for panics and c.Error, always a generic 500
//   - CORS: Cross-origin resource sharing
//   - RateLimit: Per-IP token bucket rate limiting with idle eviction
//
// Example Usage:
//
//	router.Use(middleware.RequestID(logger))
//	router.Use(middleware.ErrorHandler())
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
