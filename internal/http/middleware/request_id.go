package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arthUFO12/CivicProject/common/id"
	"github.com/arthUFO12/CivicProject/common/logger"
)

const RequestIDHeader = "X-Request-Id"

// RequestID echoes the inbound request id or assigns a snowflake one, and
// puts it on the request context's log fields.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = strconv.FormatInt(id.New(), 10)
		}

		c.Header(RequestIDHeader, requestID)
		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{RequestID: logger.Ptr(requestID)})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
