package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAPIKey gates a route behind a static key in the x-api-key header.
// This is a separate mechanism from the bearer-token gate and guards only the
// demo routes: a missing key is 401, a wrong key is 403.
func RequireAPIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientKey := c.GetHeader("x-api-key")
		if clientKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API Key is missing"})
			return
		}
		if clientKey != key {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid API Key"})
			return
		}
		c.Next()
	}
}
