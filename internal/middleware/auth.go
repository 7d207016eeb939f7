package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/employment-api/internal/services"
)

const bearerPrefix = "Bearer "

// RequireAdminToken guards every path under /employments with a bearer token.
// The token must match a registered admin in the datastore, re-read on each
// request — registrations take effect immediately, and there is no cache to
// go stale. Other paths pass through untouched.
func RequireAdminToken(admins *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, "/employments") {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"message": "Authorization token is missing or invalid",
			})
			return
		}

		token := strings.TrimPrefix(header, bearerPrefix)
		ok, err := admins.IsValidToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal Server Error",
				"message": "could not verify token",
			})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"message": "Invalid token",
			})
			return
		}
		c.Next()
	}
}
