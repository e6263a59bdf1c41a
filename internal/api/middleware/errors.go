package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/devops-demo/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/devops-demo/backend/internal/shared/types"
)

// InternalErrorMessage is the only detail a caller sees for unhandled errors.
const InternalErrorMessage = "Something went wrong!"

// ErrorHandler is the terminal error handler. It recovers panics and turns
// errors attached with c.Error into a generic 500, logging the detail.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logging.FromContext(c.Request.Context()).Error("unhandled panic",
					zap.Any("panic", recovered),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.ByteString("stack", debug.Stack()),
				)
				respondInternalError(c)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		logger := logging.FromContext(c.Request.Context())
		for _, err := range c.Errors {
			logger.Error("unhandled error",
				zap.Error(err.Err),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
		}
		respondInternalError(c)
	}
}

func respondInternalError(c *gin.Context) {
	if c.Writer.Written() {
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{Error: InternalErrorMessage})
}
