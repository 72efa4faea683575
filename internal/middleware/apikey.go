package middleware

import (
	"crypto/subtle"
	"net/http"

	"fleet-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
)

const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware guards write endpoints with a shared API key. An
// empty configured key disables the check, which keeps local
// development friction-free.
func APIKeyMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}

		provided := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or missing API key")
			c.Abort()
			return
		}

		c.Next()
	}
}
