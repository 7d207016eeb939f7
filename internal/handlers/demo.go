package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The demo routes live on their own listener and their own gate (the static
// x-api-key check), fully independent of the bearer-token scheme.

func PublicData(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "This is public data, no API key needed."})
}

func SecureData(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "You accessed secure data!",
		"data":    gin.H{"user": "Alice", "role": "admin"},
	})
}
