package middleware

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/employment-api/internal/models"
)

// The list endpoints accept a single closed-enumeration query filter each.
// Anything outside the enumeration is rejected before a handler runs, with a
// message that names the accepted values. An absent parameter passes through
// unfiltered.

func ValidateRoleQuery() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || c.Request.URL.Path != "/candidates" {
			c.Next()
			return
		}
		role := c.Query("Role")
		if role != "" && !slices.Contains(models.AllowedRoles, role) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid Role",
				"message": fmt.Sprintf("Role '%s' is not allowed. Accepted values: %s", role, strings.Join(models.AllowedRoles, ", ")),
			})
			return
		}
		c.Next()
	}
}

func ValidateDomainQuery() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || c.Request.URL.Path != "/jobs" {
			c.Next()
			return
		}
		domain := c.Query("Domain")
		if domain != "" && !slices.Contains(models.AllowedDomains, domain) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid Domain",
				"message": fmt.Sprintf("Domain '%s' is not allowed. Accepted values: %s", domain, strings.Join(models.AllowedDomains, ", ")),
			})
			return
		}
		c.Next()
	}
}
