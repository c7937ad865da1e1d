package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jaba-landing/models"
)

// ListOptions returns the allowed values of every enum field
func ListOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"farmSize":           models.FarmSizes,
			"productionType":     models.ProductionTypes,
			"yearsExperience":    models.ExperienceRanges,
			"businessType":       models.BusinessTypes,
			"householdSize":      models.HouseholdSizes,
			"deliveryPreference": models.DeliveryPreferences,
			"preferredProducts":  models.Products,
		},
	})
}
