package dto

import (
	"github.com/jaba-landing/forms"
	"github.com/jaba-landing/notify"
)

// FarmerSignupRequest represents the request payload for a farmer signup
type FarmerSignupRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Location        string `json:"location" binding:"required"`
	FarmSize        string `json:"farmSize" binding:"omitempty,oneof=small medium large"`
	ProductionType  string `json:"productionType" binding:"omitempty,oneof=crops livestock poultry aquaculture mixed"`
	PrimaryProducts string `json:"primaryProducts" binding:"required"`
	YearsExperience string `json:"yearsExperience" binding:"omitempty,oneof=0-2 3-5 6-10 10+"`
	AdditionalInfo  string `json:"additionalInfo"`
}

// BuyerSignupRequest represents the request payload for a buyer signup
type BuyerSignupRequest struct {
	Name               string   `json:"name" binding:"required"`
	Email              string   `json:"email" binding:"required"`
	Phone              string   `json:"phone" binding:"required"`
	Location           string   `json:"location" binding:"required"`
	BusinessType       string   `json:"businessType" binding:"omitempty,oneof=restaurant grocery-store supermarket food-processor wholesaler distributor catering individual cooperative export"`
	DeliveryPreference string   `json:"deliveryPreference" binding:"omitempty,oneof=same-day next-day weekly bi-weekly"`
	PreferredProducts  []string `json:"preferredProducts" binding:"omitempty,unique"`
	DietaryPreferences string   `json:"dietaryPreferences"`
	AdditionalInfo     string   `json:"additionalInfo"`
}

// ConsumerSignupRequest represents the request payload for a legacy consumer signup
type ConsumerSignupRequest struct {
	Name               string   `json:"name" binding:"required"`
	Email              string   `json:"email" binding:"required"`
	Phone              string   `json:"phone" binding:"required"`
	Location           string   `json:"location" binding:"required"`
	HouseholdSize      string   `json:"householdSize" binding:"omitempty,oneof=1 2-3 4-5 6+"`
	DeliveryPreference string   `json:"deliveryPreference" binding:"omitempty,oneof=same-day next-day weekly bi-weekly"`
	PreferredProducts  []string `json:"preferredProducts" binding:"omitempty,unique"`
	DietaryPreferences string   `json:"dietaryPreferences"`
	AdditionalInfo     string   `json:"additionalInfo"`
}

// SignupResponse represents the standard response format for a signup
type SignupResponse struct {
	Status       string               `json:"status"`
	Outcome      string               `json:"outcome"`
	Notification *notify.Notification `json:"notification,omitempty"`
	Errors       []FieldErrorResponse `json:"errors,omitempty"`
}

// FieldErrorResponse describes one rejected field of a request
type FieldErrorResponse struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ToForm maps the request onto a fresh farmer form
func (r FarmerSignupRequest) ToForm() (*forms.FarmerForm, error) {
	form := forms.NewFarmerForm()
	err := setAll(form, map[string]string{
		"name":            r.Name,
		"email":           r.Email,
		"phone":           r.Phone,
		"location":        r.Location,
		"farmSize":        r.FarmSize,
		"productionType":  r.ProductionType,
		"primaryProducts": r.PrimaryProducts,
		"yearsExperience": r.YearsExperience,
		"additionalInfo":  r.AdditionalInfo,
	}, nil)
	return form, err
}

// ToForm maps the request onto a fresh buyer form
func (r BuyerSignupRequest) ToForm() (*forms.BuyerForm, error) {
	form := forms.NewBuyerForm()
	err := setAll(form, map[string]string{
		"name":               r.Name,
		"email":              r.Email,
		"phone":              r.Phone,
		"location":           r.Location,
		"businessType":       r.BusinessType,
		"deliveryPreference": r.DeliveryPreference,
		"dietaryPreferences": r.DietaryPreferences,
		"additionalInfo":     r.AdditionalInfo,
	}, map[string][]string{"preferredProducts": r.PreferredProducts})
	return form, err
}

// ToForm maps the request onto a fresh consumer form
func (r ConsumerSignupRequest) ToForm() (*forms.ConsumerForm, error) {
	form := forms.NewConsumerForm()
	err := setAll(form, map[string]string{
		"name":               r.Name,
		"email":              r.Email,
		"phone":              r.Phone,
		"location":           r.Location,
		"householdSize":      r.HouseholdSize,
		"deliveryPreference": r.DeliveryPreference,
		"dietaryPreferences": r.DietaryPreferences,
		"additionalInfo":     r.AdditionalInfo,
	}, map[string][]string{"preferredProducts": r.PreferredProducts})
	return form, err
}

func setAll(form forms.Form, values map[string]string, members map[string][]string) error {
	for name, v := range values {
		if err := form.SetField(name, v); err != nil {
			return err
		}
	}
	for name, list := range members {
		for _, v := range list {
			if err := form.ToggleSetMember(name, v); err != nil {
				return err
			}
		}
	}
	return nil
}
