package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries the request id back to the caller.
const RequestIDHeader = "X-Request-Id"

// RequestID reuses the caller's X-Request-Id or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs one entry per request once the handler chain is done.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		logEntry := logger.WithFields(logrus.Fields{
			"component":   "mockserver",
			"request_id":  c.GetString("request_id"),
			"alias":       c.GetString("alias"),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration":    time.Since(started).String(),
			"remote_addr": c.ClientIP(),
		})
		switch {
		case c.Writer.Status() >= 500:
			logEntry.Error("request failed")
		case c.Writer.Status() >= 400:
			logEntry.Warn("request rejected")
		default:
			logEntry.Info("request served")
		}
	}
}
