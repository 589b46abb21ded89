package middleware

import (
	"employee-portal-backend/internal/requestctx"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
	// longer client-supplied ids are replaced so they cannot flood the logs
	requestIDMaxLen = 64
)

// RequestID tags every request with an id taken from X-Request-ID or freshly generated
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.NewString()
		}

		c.Set(requestIDKey, rid)
		c.Header(requestIDHeader, rid)
		c.Request = c.Request.WithContext(requestctx.WithRequestID(c.Request.Context(), rid))

		c.Next()
	}
}
