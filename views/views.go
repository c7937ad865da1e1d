// Package views renders the landing page templates.
package views

import (
	"embed"
	"html/template"
	"net/url"

	"github.com/jaba-landing/models"
)

//go:embed templates/*.tmpl
var files embed.FS

// Funcs are the helpers available to every template
var Funcs = template.FuncMap{
	"has": func(values url.Values, name, member string) bool {
		for _, v := range values[name] {
			if v == member {
				return true
			}
		}
		return false
	},
	"options": func(name string) []models.Option {
		switch name {
		case "farmSize":
			return models.FarmSizes
		case "productionType":
			return models.ProductionTypes
		case "yearsExperience":
			return models.ExperienceRanges
		case "businessType":
			return models.BusinessTypes
		case "householdSize":
			return models.HouseholdSizes
		case "deliveryPreference":
			return models.DeliveryPreferences
		case "preferredProducts":
			return models.Products
		}
		return nil
	},
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(files, "templates/*.tmpl")
}
