/*
Package tracing provides lightweight request tracing.

Each request gets a span. Trace context arrives and leaves in the X-Trace-ID
and X-Span-ID headers, so a caller that forwards them links its own spans to
ours. Finished spans are queued on a buffered channel and logged by a single
collector goroutine; when the queue is full the span is dropped with a
warning rather than blocking the request.

# Usage

	tracer := tracing.New("api", logger.Logger)
	router.Use(tracing.HTTPMiddleware(tracer))
*/
package tracing
