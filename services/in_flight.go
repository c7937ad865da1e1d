package services

import (
	"strings"
	"sync"

	"github.com/jaba-landing/models"
)

// InFlight tracks the signups currently being stored, keyed by role and
// email, so concurrent posts of the same form share one submitting state.
type InFlight struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

// NewInFlight creates an empty tracker
func NewInFlight() *InFlight {
	return &InFlight{keys: make(map[string]struct{})}
}

// Acquire marks the signup as in flight. It returns false when another
// request already holds it.
func (f *InFlight) Acquire(role models.Role, email string) bool {
	key := inFlightKey(role, email)
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, held := f.keys[key]; held {
		return false
	}
	f.keys[key] = struct{}{}
	return true
}

// Release clears a key taken by Acquire
func (f *InFlight) Release(role models.Role, email string) {
	f.mu.Lock()
	delete(f.keys, inFlightKey(role, email))
	f.mu.Unlock()
}

// Held reports whether the signup is in flight
func (f *InFlight) Held(role models.Role, email string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, held := f.keys[inFlightKey(role, email)]
	return held
}

func inFlightKey(role models.Role, email string) string {
	return string(role) + ":" + strings.ToLower(strings.TrimSpace(email))
}
