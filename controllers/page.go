package controllers

import (
	"net/url"

	"github.com/jaba-landing/content"
	"github.com/jaba-landing/landing"
	"github.com/jaba-landing/notify"
)

// Page is the view model of the landing page
type Page struct {
	Site          *content.Site
	Selection     landing.Selection
	Form          string
	Values        url.Values
	Disabled      bool
	Notifications []notify.Notification
}

// ContactField feeds the shared contact inputs partial
type ContactField struct {
	Prefix        string
	LocationLabel string
	Values        url.Values
}

// SelectField feeds the select partial
type SelectField struct {
	Name        string
	Label       string
	Placeholder string
	Value       string
	Disabled    bool
}

func (p Page) Field(prefix, locationLabel string) ContactField {
	return ContactField{Prefix: prefix, LocationLabel: locationLabel, Values: p.Values}
}

func (p Page) Select(name, label, placeholder string) SelectField {
	return SelectField{
		Name:        name,
		Label:       label,
		Placeholder: placeholder,
		Value:       p.Values.Get(name),
		Disabled:    p.Disabled,
	}
}
