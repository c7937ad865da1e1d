// Package forms holds the in-progress state of the signup forms.
package forms

import (
	"errors"
	"fmt"
	"net/url"
	"sort"

	"github.com/jaba-landing/models"
)

var (
	ErrUnknownField = errors.New("unknown form field")
	ErrNotASet      = errors.New("field is not a multi-select")
	ErrNotAScalar   = errors.New("field is a multi-select")
)

// Field describes one input of a form
type Field struct {
	Name     string
	Required bool
	Multi    bool
}

// Form is the mutable local state of one signup form instance
type Form interface {
	Role() models.Role
	Fields() []Field
	SetField(name, value string) error
	ToggleSetMember(name, value string) error
	Reset()
	Snapshot() url.Values
	Registration() (models.Registration, error)
}

// New returns an empty form for the role
func New(role models.Role) (Form, error) {
	switch role {
	case models.RoleFarmer:
		return NewFarmerForm(), nil
	case models.RoleBuyer:
		return NewBuyerForm(), nil
	case models.RoleConsumer:
		return NewConsumerForm(), nil
	}
	return nil, fmt.Errorf("no signup form for role %q", role)
}

// Decode copies posted values into the form. Scalars take the first value,
// multi-select fields take every distinct value in order.
func Decode(form Form, values url.Values) error {
	for _, f := range form.Fields() {
		posted, ok := values[f.Name]
		if !ok {
			continue
		}
		if !f.Multi {
			if err := form.SetField(f.Name, first(posted)); err != nil {
				return err
			}
			continue
		}
		current := form.Snapshot()[f.Name]
		for _, v := range posted {
			if contains(current, v) {
				continue
			}
			if err := form.ToggleSetMember(f.Name, v); err != nil {
				return err
			}
			current = append(current, v)
		}
	}
	return nil
}

// scalars and sets back a form's field table
type scalars map[string]*string
type sets map[string]*[]string

type fieldTable struct {
	fields  []Field
	scalars scalars
	sets    sets
}

func (t fieldTable) set(name, value string) error {
	if p, ok := t.scalars[name]; ok {
		*p = value
		return nil
	}
	if _, ok := t.sets[name]; ok {
		return fmt.Errorf("%s: %w", name, ErrNotAScalar)
	}
	return fmt.Errorf("%s: %w", name, ErrUnknownField)
}

func (t fieldTable) toggle(name, value string) error {
	p, ok := t.sets[name]
	if !ok {
		if _, scalar := t.scalars[name]; scalar {
			return fmt.Errorf("%s: %w", name, ErrNotASet)
		}
		return fmt.Errorf("%s: %w", name, ErrUnknownField)
	}
	*p = toggle(*p, value)
	return nil
}

func (t fieldTable) snapshot() url.Values {
	values := url.Values{}
	for name, p := range t.scalars {
		values.Set(name, *p)
	}
	for name, p := range t.sets {
		members := append([]string(nil), (*p)...)
		sort.Strings(members)
		values[name] = members
	}
	return values
}

func toggle(members []string, value string) []string {
	for i, m := range members {
		if m == value {
			return append(members[:i:i], members[i+1:]...)
		}
	}
	return append(members, value)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
