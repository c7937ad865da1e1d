package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, signups *SignupController) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Enum catalogues for script-driven clients
	router.GET("/options", ListOptions)

	// Signup endpoints, one per registration table
	router.POST("/farmers", signups.CreateFarmer)
	router.POST("/buyers", signups.CreateBuyer)
	router.POST("/consumers", signups.CreateConsumer)
}
