package routes

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/jaba-landing/api/v1"
	"github.com/jaba-landing/controllers"
	"github.com/jaba-landing/models"
)

// SetupRoutes mounts the landing page, its form posts and the JSON API
func SetupRoutes(router *gin.Engine, pages *controllers.LandingController, signups *v1.SignupController) {
	// Public pages
	router.GET("/", pages.Index)
	router.GET("/community", pages.Community)
	router.GET("/health", v1.HealthCheck)

	// HTML form posts
	signup := router.Group("/signup")
	{
		signup.POST("/farmer", pages.Signup(models.RoleFarmer))
		signup.POST("/buyer", pages.Signup(models.RoleBuyer))
		signup.POST("/consumer", pages.Signup(models.RoleConsumer))
	}

	// API routes
	v1.RegisterRoutes(router.Group("/api/v1"), signups)
}
