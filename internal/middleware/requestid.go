package middleware

import (
	"time"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // UUID generation for request IDs
	"github.com/sirupsen/logrus" // Structured logging
)

// RequestID propagates an inbound X-Request-ID or mints a fresh one,
// making it available on the context and the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// RequestLogger logs one line per request with the request ID,
// method, path, status and duration.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get("rid")
		logrus.WithFields(logrus.Fields{
			"rid":      rid,
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request")
	}
}
