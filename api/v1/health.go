package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles the health check endpoint
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "jaba-landing",
		"version":   "1.0.0",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
