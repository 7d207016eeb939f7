package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports liveness for the main API.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// internalError logs the real failure and answers with a stable body. Store
// read/parse failures land here instead of crashing the process.
func internalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"message": "datastore operation failed",
	})
	log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
}
