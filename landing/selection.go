// Package landing models which signup form the landing page shows.
package landing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jaba-landing/models"
)

// State of the role picker
type State int

const (
	NoSelection State = iota
	FarmerSelected
	BuyerSelected
)

func (s State) String() string {
	switch s {
	case FarmerSelected:
		return "farmer-selected"
	case BuyerSelected:
		return "buyer-selected"
	}
	return "no-selection"
}

var ErrInvalidTransition = errors.New("invalid role selection transition")

// Selection is the current role picker value. The zero value is NoSelection.
type Selection struct {
	state State
}

// Initial returns the state every page load starts in
func Initial() Selection {
	return Selection{}
}

func (s Selection) State() State {
	return s.state
}

// Select moves from NoSelection to the state for role. Consumers share the
// buyer form.
func (s Selection) Select(role models.Role) (Selection, error) {
	if s.state != NoSelection {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, role)
	}
	switch role {
	case models.RoleFarmer:
		return Selection{state: FarmerSelected}, nil
	case models.RoleBuyer, models.RoleConsumer:
		return Selection{state: BuyerSelected}, nil
	}
	return s, fmt.Errorf("%w: unknown role %q", ErrInvalidTransition, role)
}

// Back is the action exposed by the active form
func (s Selection) Back() Selection {
	return Selection{}
}

// Role returns the role whose form is mounted, if any
func (s Selection) Role() (models.Role, bool) {
	switch s.state {
	case FarmerSelected:
		return models.RoleFarmer, true
	case BuyerSelected:
		return models.RoleBuyer, true
	}
	return "", false
}

// Mounted reports whether a signup form is shown
func (s Selection) Mounted() bool {
	return s.state != NoSelection
}

// Query is the value carried in the role query parameter
func (s Selection) Query() string {
	role, _ := s.Role()
	return string(role)
}

// ParseSelection reads the role query parameter. Unknown values fall back to
// NoSelection.
func ParseSelection(raw string) Selection {
	role := models.Role(strings.ToLower(strings.TrimSpace(raw)))
	sel, err := Initial().Select(role)
	if err != nil {
		return Initial()
	}
	return sel
}
