package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey is the Gin context key under which the request id is stored.
	RequestIDKey = "request_id"

	requestIDHeader = "X-Request-ID"
)

// RequestID is a Gin middleware that attaches a correlation identifier to
// each request.
//
// A caller-supplied X-Request-ID header is honored so ids stay stable across
// service hops; otherwise a fresh UUID (v4) is generated. The id is stored in
// the Gin context under RequestIDKey and echoed back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}
