package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/ajitashwath/dare-exchange/config"
	"github.com/ajitashwath/dare-exchange/utils/response"

	"github.com/gin-gonic/gin"
)

// AdminKeyMiddleware guards the moderation endpoints with the shared admin
// key. Requests are rejected when the key is not configured at all.
func AdminKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-Key")
		if config.AdminAPIKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(config.AdminAPIKey)) != 1 {
			response.Error(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
