package app

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"

	contextKeyRequestID = "request_id"
)

// RequestIDFromContext returns the id tagged by the requestID middleware,
// empty if the request never passed through it.
func RequestIDFromContext(c *gin.Context) string {
	return c.GetString(contextKeyRequestID)
}

// requestID tags every request with an id, honoring one supplied by the
// caller so proxies can correlate. The id is written to the response
// header and kept on the context for downstream log lines.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(contextKeyRequestID, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
