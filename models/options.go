package models

import (
	"database/sql/driver"

	"github.com/jackc/pgx/v5/pgtype"
)

// Option is one selectable value of an enum field
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

var FarmSizes = []Option{
	{Value: "small", Label: "Small (0-2 acres)"},
	{Value: "medium", Label: "Medium (2-10 acres)"},
	{Value: "large", Label: "Large (10+ acres)"},
}

var ProductionTypes = []Option{
	{Value: "crops", Label: "Crops"},
	{Value: "livestock", Label: "Livestock"},
	{Value: "poultry", Label: "Poultry"},
	{Value: "aquaculture", Label: "Aquaculture"},
	{Value: "mixed", Label: "Mixed Farming"},
}

var ExperienceRanges = []Option{
	{Value: "0-2", Label: "0-2 years"},
	{Value: "3-5", Label: "3-5 years"},
	{Value: "6-10", Label: "6-10 years"},
	{Value: "10+", Label: "10+ years"},
}

var BusinessTypes = []Option{
	{Value: "restaurant", Label: "Restaurant/Hotel"},
	{Value: "grocery-store", Label: "Grocery Store"},
	{Value: "supermarket", Label: "Supermarket/Chain"},
	{Value: "food-processor", Label: "Food Processor"},
	{Value: "wholesaler", Label: "Wholesaler"},
	{Value: "distributor", Label: "Distributor"},
	{Value: "catering", Label: "Catering Service"},
	{Value: "individual", Label: "Individual Consumer"},
	{Value: "cooperative", Label: "Buying Cooperative"},
	{Value: "export", Label: "Export Company"},
}

var HouseholdSizes = []Option{
	{Value: "1", Label: "1 person"},
	{Value: "2-3", Label: "2-3 people"},
	{Value: "4-5", Label: "4-5 people"},
	{Value: "6+", Label: "6+ people"},
}

var DeliveryPreferences = []Option{
	{Value: "same-day", Label: "Same Day"},
	{Value: "next-day", Label: "Next Day"},
	{Value: "weekly", Label: "Weekly"},
	{Value: "bi-weekly", Label: "Bi-weekly"},
}

var Products = []Option{
	{Value: "Vegetables", Label: "Vegetables"},
	{Value: "Fruits", Label: "Fruits"},
	{Value: "Grains", Label: "Grains"},
	{Value: "Tubers", Label: "Tubers"},
	{Value: "Herbs & Spices", Label: "Herbs & Spices"},
	{Value: "Dairy", Label: "Dairy"},
	{Value: "Poultry", Label: "Poultry"},
	{Value: "Fish", Label: "Fish"},
}

// HasOption reports whether value is one of the options
func HasOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// ProductList custom type for text[] storage
type ProductList []string

// GormDataType tells gorm which column type to migrate
func (ProductList) GormDataType() string {
	return "text[]"
}

// Value encodes the list as a postgres text[] literal; an empty list is NULL
func (p ProductList) Value() (driver.Value, error) {
	if len(p) == 0 {
		return nil, nil
	}
	buf, err := pgtype.NewMap().Encode(pgtype.TextArrayOID, pgtype.TextFormatCode, []string(p), nil)
	if err != nil {
		return nil, err
	}
	return string(buf), nil
}
