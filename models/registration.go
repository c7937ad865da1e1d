package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Role represents the signup role a registration was made under
type Role string

const (
	RoleFarmer   Role = "farmer"
	RoleBuyer    Role = "buyer"
	RoleConsumer Role = "consumer"
)

var (
	ErrMissingField  = errors.New("required field is empty")
	ErrInvalidOption = errors.New("value is not one of the allowed options")
)

// FieldError reports which column failed construction
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Registration is one signup record, tagged by role
type Registration interface {
	Role() Role
	TableName() string
	ContactEmail() string
}

// FarmerRegistration represents a row in the farmers table
type FarmerRegistration struct {
	ID              string    `json:"-" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name            string    `json:"name" gorm:"not null"`
	Email           string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone           string    `json:"phone" gorm:"not null"`
	Location        string    `json:"location" gorm:"not null"`
	FarmSize        *string   `json:"farm_size"`
	ProductionType  *string   `json:"production_type"`
	PrimaryProducts string    `json:"primary_products" gorm:"not null"`
	YearsExperience *string   `json:"years_experience"`
	AdditionalInfo  *string   `json:"additional_info"`
	CreatedAt       time.Time `json:"-"`
}

func (FarmerRegistration) Role() Role { return RoleFarmer }
func (FarmerRegistration) TableName() string { return "farmers" }
func (r FarmerRegistration) ContactEmail() string { return r.Email }

// BuyerRegistration represents a row in the buyers table
type BuyerRegistration struct {
	ID                 string      `json:"-" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name               string      `json:"name" gorm:"not null"`
	Email              string      `json:"email" gorm:"uniqueIndex;not null"`
	Phone              string      `json:"phone" gorm:"not null"`
	Location           string      `json:"location" gorm:"not null"`
	BusinessType       *string     `json:"business_type"`
	DeliveryPreference *string     `json:"delivery_preference"`
	PreferredProducts  ProductList `json:"preferred_products"`
	DietaryPreferences *string     `json:"dietary_preferences"`
	AdditionalInfo     *string     `json:"additional_info"`
	CreatedAt          time.Time   `json:"-"`
}

func (BuyerRegistration) Role() Role { return RoleBuyer }
func (BuyerRegistration) TableName() string { return "buyers" }
func (r BuyerRegistration) ContactEmail() string { return r.Email }

// ConsumerRegistration represents a row in the legacy consumers table.
// New signups from consumers go through BuyerRegistration.
type ConsumerRegistration struct {
	ID                 string      `json:"-" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name               string      `json:"name" gorm:"not null"`
	Email              string      `json:"email" gorm:"uniqueIndex;not null"`
	Phone              string      `json:"phone" gorm:"not null"`
	Location           string      `json:"location" gorm:"not null"`
	HouseholdSize      *string     `json:"household_size"`
	DeliveryPreference *string     `json:"delivery_preference"`
	PreferredProducts  ProductList `json:"preferred_products"`
	DietaryPreferences *string     `json:"dietary_preferences"`
	AdditionalInfo     *string     `json:"additional_info"`
	CreatedAt          time.Time   `json:"-"`
}

func (ConsumerRegistration) Role() Role { return RoleConsumer }
func (ConsumerRegistration) TableName() string { return "consumers" }
func (r ConsumerRegistration) ContactEmail() string { return r.Email }

// FarmerInput is the raw, as-entered state of a farmer signup
type FarmerInput struct {
	Name            string
	Email           string
	Phone           string
	Location        string
	FarmSize        string
	ProductionType  string
	PrimaryProducts string
	YearsExperience string
	AdditionalInfo  string
}

// BuyerInput is the raw state of a buyer signup
type BuyerInput struct {
	Name               string
	Email              string
	Phone              string
	Location           string
	BusinessType       string
	DeliveryPreference string
	PreferredProducts  []string
	DietaryPreferences string
	AdditionalInfo     string
}

// ConsumerInput is the raw state of a consumer signup
type ConsumerInput struct {
	Name               string
	Email              string
	Phone              string
	Location           string
	HouseholdSize      string
	DeliveryPreference string
	PreferredProducts  []string
	DietaryPreferences string
	AdditionalInfo     string
}

// NewFarmerRegistration builds a farmer record. Required fields are kept as
// entered, blank optional fields become nil.
func NewFarmerRegistration(in FarmerInput) (*FarmerRegistration, error) {
	var b builder
	b.required("name", in.Name)
	b.required("email", in.Email)
	b.required("phone", in.Phone)
	b.required("location", in.Location)
	b.required("primary_products", in.PrimaryProducts)
	r := &FarmerRegistration{
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		Location:        in.Location,
		FarmSize:        b.option("farm_size", in.FarmSize, FarmSizes),
		ProductionType:  b.option("production_type", in.ProductionType, ProductionTypes),
		PrimaryProducts: in.PrimaryProducts,
		YearsExperience: b.option("years_experience", in.YearsExperience, ExperienceRanges),
		AdditionalInfo:  Optional(in.AdditionalInfo),
	}
	if b.err != nil {
		return nil, b.err
	}
	return r, nil
}

// NewBuyerRegistration builds a buyer record
func NewBuyerRegistration(in BuyerInput) (*BuyerRegistration, error) {
	var b builder
	b.required("name", in.Name)
	b.required("email", in.Email)
	b.required("phone", in.Phone)
	b.required("location", in.Location)
	r := &BuyerRegistration{
		Name:               in.Name,
		Email:              in.Email,
		Phone:              in.Phone,
		Location:           in.Location,
		BusinessType:       b.option("business_type", in.BusinessType, BusinessTypes),
		DeliveryPreference: b.option("delivery_preference", in.DeliveryPreference, DeliveryPreferences),
		PreferredProducts:  b.products("preferred_products", in.PreferredProducts),
		DietaryPreferences: Optional(in.DietaryPreferences),
		AdditionalInfo:     Optional(in.AdditionalInfo),
	}
	if b.err != nil {
		return nil, b.err
	}
	return r, nil
}

// NewConsumerRegistration builds a consumer record
func NewConsumerRegistration(in ConsumerInput) (*ConsumerRegistration, error) {
	var b builder
	b.required("name", in.Name)
	b.required("email", in.Email)
	b.required("phone", in.Phone)
	b.required("location", in.Location)
	r := &ConsumerRegistration{
		Name:               in.Name,
		Email:              in.Email,
		Phone:              in.Phone,
		Location:           in.Location,
		HouseholdSize:      b.option("household_size", in.HouseholdSize, HouseholdSizes),
		DeliveryPreference: b.option("delivery_preference", in.DeliveryPreference, DeliveryPreferences),
		PreferredProducts:  b.products("preferred_products", in.PreferredProducts),
		DietaryPreferences: Optional(in.DietaryPreferences),
		AdditionalInfo:     Optional(in.AdditionalInfo),
	}
	if b.err != nil {
		return nil, b.err
	}
	return r, nil
}

// Optional returns nil for blank input so the column is sent as NULL
func Optional(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

// builder keeps the first construction error
type builder struct {
	err error
}

func (b *builder) fail(field, value string, err error) {
	if b.err == nil {
		b.err = &FieldError{Field: field, Value: value, Err: err}
	}
}

func (b *builder) required(field, value string) {
	if value == "" {
		b.fail(field, "", ErrMissingField)
	}
}

func (b *builder) option(field, value string, options []Option) *string {
	v := Optional(value)
	if v != nil && !HasOption(options, *v) {
		b.fail(field, *v, ErrInvalidOption)
		return nil
	}
	return v
}

func (b *builder) products(field string, values []string) ProductList {
	if len(values) == 0 {
		return nil
	}
	list := make(ProductList, 0, len(values))
	for _, v := range values {
		if !HasOption(Products, v) {
			b.fail(field, v, ErrInvalidOption)
			continue
		}
		list = append(list, v)
	}
	return list
}
