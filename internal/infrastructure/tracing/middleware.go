package tracing

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/devops-demo/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/devops-demo/backend/internal/shared/id"
)

// HTTPMiddleware creates Gin middleware for HTTP tracing
func HTTPMiddleware(tracer *Tracer) gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID, parentID := incomingTraceContext(c)

		ctx := c.Request.Context()
		if traceID != "" {
			ctx = context.WithValue(ctx, traceIDKey, traceID)
		}
		if parentID != "" {
			ctx = context.WithValue(ctx, spanIDKey, parentID)
		}

		name := c.FullPath()
		if name == "" {
			name = c.Request.URL.Path
		}

		span, ctx := tracer.StartSpan(ctx, c.Request.Method+" "+name)
		span.SetTag("http.method", c.Request.Method)
		span.SetTag("http.path", c.Request.URL.Path)
		span.SetTag("http.client_ip", c.ClientIP())

		// Handlers log through the request logger so their lines carry the trace
		reqLogger := logging.FromContext(ctx).With(
			zap.String("trace_id", string(span.TraceID)),
			zap.String("span_id", string(span.SpanID)),
		)
		ctx = logging.WithContext(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		headers := make(map[string]string, 2)
		InjectTraceContext(ctx, headers)
		for key, value := range headers {
			c.Header(key, value)
		}

		c.Next()

		span.SetStatus(c.Writer.Status())
		span.SetTag("http.status", strconv.Itoa(c.Writer.Status()))
		if len(c.Errors) > 0 {
			span.SetError(c.Errors.Last())
		}

		span.Finish()
		tracer.Submit(span)
	}
}

// incomingTraceContext returns the caller's trace context. A malformed trace
// id starts a new trace; a malformed span id drops only the parent link.
func incomingTraceContext(c *gin.Context) (TraceID, SpanID) {
	traceID, spanID := ExtractTraceContext(map[string]string{
		TraceHeader: c.GetHeader(TraceHeader),
		SpanHeader:  c.GetHeader(SpanHeader),
	})

	if !id.IsValidWithPrefix(string(traceID), id.TracePrefix) {
		return "", ""
	}
	if !id.IsValidWithPrefix(string(spanID), id.SpanPrefix) {
		spanID = ""
	}
	return traceID, spanID
}
