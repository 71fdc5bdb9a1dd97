package middleware

import (
	"quickchat/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler logs the errors handlers attached with c.Error. Handlers write
// their own response body; this only records the cause.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return func(c *gin.Context) {
		c.Next()

		for _, ginErr := range c.Errors {
			l.ErrorCtx(c.Request.Context(), "request failed",
				zap.String("path", c.Request.URL.Path),
				zap.Int("status", c.Writer.Status()),
				zap.Error(ginErr.Err),
			)
		}
	}
}
