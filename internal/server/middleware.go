package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"paylist/internal/logging"
)

// ContextRequestID is the context key the request ID is stored under.
const ContextRequestID = "request_id"

// RequestID injects an X-Request-ID header into the request and response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(ContextRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestLogger logs each HTTP request with method, path, status, and latency.
func RequestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("Handled request",
			logging.Field{Key: logging.FieldRequestID, Value: c.GetString(ContextRequestID)},
			logging.Field{Key: logging.FieldMethod, Value: c.Request.Method},
			logging.Field{Key: logging.FieldPath, Value: c.Request.URL.Path},
			logging.Field{Key: logging.FieldStatus, Value: c.Writer.Status()},
			logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
