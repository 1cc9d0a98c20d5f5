package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/RAJAT9988/news-publisher/backend/common"
)

// RequestId tags every request with an id, reusing the client-provided one
// when present, and echoes it back in the response headers.
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(common.RequestIdKey)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(common.RequestIdKey, id)
		c.Header(common.RequestIdKey, id)
		c.Next()
	}
}
