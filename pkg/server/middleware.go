package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
)

const (
	headerRequestID = "X-Request-ID"
	ctxRequestID    = "request_id"
)

// requestID propagates an incoming X-Request-ID or assigns a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			if generated, err := uuid.NewV4(); err == nil {
				id = generated.String()
			}
		}
		c.Set(ctxRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func accessLog(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"request_id": c.GetString(ctxRequestID),
		})
		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Warn("request failed")
			return
		}
		entry.Debug("request")
	}
}
