package forms

import (
	"net/url"

	"github.com/jaba-landing/models"
)

// FarmerForm holds a farmer signup in progress
type FarmerForm struct {
	state models.FarmerInput
}

func NewFarmerForm() *FarmerForm {
	return &FarmerForm{}
}

func (f *FarmerForm) table() fieldTable {
	return fieldTable{
		fields: []Field{
			{Name: "name", Required: true},
			{Name: "email", Required: true},
			{Name: "phone", Required: true},
			{Name: "location", Required: true},
			{Name: "farmSize"},
			{Name: "productionType"},
			{Name: "primaryProducts", Required: true},
			{Name: "yearsExperience"},
			{Name: "additionalInfo"},
		},
		scalars: scalars{
			"name":            &f.state.Name,
			"email":           &f.state.Email,
			"phone":           &f.state.Phone,
			"location":        &f.state.Location,
			"farmSize":        &f.state.FarmSize,
			"productionType":  &f.state.ProductionType,
			"primaryProducts": &f.state.PrimaryProducts,
			"yearsExperience": &f.state.YearsExperience,
			"additionalInfo":  &f.state.AdditionalInfo,
		},
	}
}

func (f *FarmerForm) Role() models.Role { return models.RoleFarmer }
func (f *FarmerForm) Fields() []Field { return f.table().fields }
func (f *FarmerForm) SetField(name, v string) error { return f.table().set(name, v) }
func (f *FarmerForm) Snapshot() url.Values { return f.table().snapshot() }
func (f *FarmerForm) Reset() { f.state = models.FarmerInput{} }

func (f *FarmerForm) ToggleSetMember(name, v string) error {
	return f.table().toggle(name, v)
}

// Input returns a copy of the current state
func (f *FarmerForm) Input() models.FarmerInput {
	return f.state
}

func (f *FarmerForm) Registration() (models.Registration, error) {
	r, err := models.NewFarmerRegistration(f.state)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// BuyerForm holds a buyer signup in progress. Consumers sign up here too.
type BuyerForm struct {
	state models.BuyerInput
}

func NewBuyerForm() *BuyerForm {
	return &BuyerForm{}
}

func (f *BuyerForm) table() fieldTable {
	return fieldTable{
		fields: []Field{
			{Name: "name", Required: true},
			{Name: "email", Required: true},
			{Name: "phone", Required: true},
			{Name: "location", Required: true},
			{Name: "businessType"},
			{Name: "deliveryPreference"},
			{Name: "preferredProducts", Multi: true},
			{Name: "dietaryPreferences"},
			{Name: "additionalInfo"},
		},
		scalars: scalars{
			"name":               &f.state.Name,
			"email":              &f.state.Email,
			"phone":              &f.state.Phone,
			"location":           &f.state.Location,
			"businessType":       &f.state.BusinessType,
			"deliveryPreference": &f.state.DeliveryPreference,
			"dietaryPreferences": &f.state.DietaryPreferences,
			"additionalInfo":     &f.state.AdditionalInfo,
		},
		sets: sets{
			"preferredProducts": &f.state.PreferredProducts,
		},
	}
}

func (f *BuyerForm) Role() models.Role { return models.RoleBuyer }
func (f *BuyerForm) Fields() []Field { return f.table().fields }
func (f *BuyerForm) SetField(name, v string) error { return f.table().set(name, v) }
func (f *BuyerForm) Snapshot() url.Values { return f.table().snapshot() }
func (f *BuyerForm) Reset() { f.state = models.BuyerInput{} }

func (f *BuyerForm) ToggleSetMember(name, v string) error {
	return f.table().toggle(name, v)
}

// Input returns a copy of the current state
func (f *BuyerForm) Input() models.BuyerInput {
	in := f.state
	in.PreferredProducts = append([]string(nil), f.state.PreferredProducts...)
	return in
}

func (f *BuyerForm) Registration() (models.Registration, error) {
	r, err := models.NewBuyerRegistration(f.state)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ConsumerForm is the earlier consumer-only signup
type ConsumerForm struct {
	state models.ConsumerInput
}

func NewConsumerForm() *ConsumerForm {
	return &ConsumerForm{}
}

func (f *ConsumerForm) table() fieldTable {
	return fieldTable{
		fields: []Field{
			{Name: "name", Required: true},
			{Name: "email", Required: true},
			{Name: "phone", Required: true},
			{Name: "location", Required: true},
			{Name: "householdSize"},
			{Name: "deliveryPreference"},
			{Name: "preferredProducts", Multi: true},
			{Name: "dietaryPreferences"},
			{Name: "additionalInfo"},
		},
		scalars: scalars{
			"name":               &f.state.Name,
			"email":              &f.state.Email,
			"phone":              &f.state.Phone,
			"location":           &f.state.Location,
			"householdSize":      &f.state.HouseholdSize,
			"deliveryPreference": &f.state.DeliveryPreference,
			"dietaryPreferences": &f.state.DietaryPreferences,
			"additionalInfo":     &f.state.AdditionalInfo,
		},
		sets: sets{
			"preferredProducts": &f.state.PreferredProducts,
		},
	}
}

func (f *ConsumerForm) Role() models.Role { return models.RoleConsumer }
func (f *ConsumerForm) Fields() []Field { return f.table().fields }
func (f *ConsumerForm) SetField(name, v string) error { return f.table().set(name, v) }
func (f *ConsumerForm) Snapshot() url.Values { return f.table().snapshot() }
func (f *ConsumerForm) Reset() { f.state = models.ConsumerInput{} }

func (f *ConsumerForm) ToggleSetMember(name, v string) error {
	return f.table().toggle(name, v)
}

func (f *ConsumerForm) Registration() (models.Registration, error) {
	r, err := models.NewConsumerRegistration(f.state)
	if err != nil {
		return nil, err
	}
	return r, nil
}
