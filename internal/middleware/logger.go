package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"kivulounge/internal/pkg/logger"
	"kivulounge/internal/pkg/response"
)

// RequestLogger logs every request, logs request errors with their stack,
// and recovers panics into a JSON 500.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				logger.ErrorLogger.WithFields(requestFields(c, start)).
					WithField("stack", string(debug.Stack())).
					Errorf("panic: %v", recovered)

				response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
				c.Abort()
			}
		}()

		c.Next()

		fields := requestFields(c, start)
		switch {
		case len(c.Errors) > 0:
			logger.ErrorLogger.WithFields(fields).Error(c.Errors.String())
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.ErrorLogger.WithFields(fields).Error("request failed")
		default:
			logger.InfoLogger.WithFields(fields).Info("request")
		}
	}
}

func requestFields(c *gin.Context, start time.Time) logrus.Fields {
	return logrus.Fields{
		"method":    c.Request.Method,
		"path":      c.Request.URL.Path,
		"status":    c.Writer.Status(),
		"client_ip": c.ClientIP(),
		"user_id":   c.GetInt64("user_id"),
		"latency":   fmt.Sprintf("%v", time.Since(start)),
	}
}
