// Package notify carries transient user-facing messages from the
// submission pipeline to whatever renders them.
package notify

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/jaba-landing/models"
)

// Variant is the severity tag of a notification
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// DefaultDuration is how long a notification stays on screen
const DefaultDuration = 5 * time.Second

// DefaultLimit matches the single visible toast of the landing page
const DefaultLimit = 1

// Notification is one fire-and-forget message
type Notification struct {
	Title       string
	Description string
	Variant     Variant
	Duration    time.Duration
}

// Destructive reports whether the message reports a failure
func (n Notification) Destructive() bool {
	return n.Variant == VariantDestructive
}

func (n Notification) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Variant     Variant `json:"variant"`
		DurationMs  int64   `json:"durationMs"`
	}{n.Title, n.Description, n.Variant, n.Duration.Milliseconds()})
}

// Notifier accepts outbound notifications
type Notifier interface {
	Notify(n Notification)
}

// Queue is a bounded FIFO of pending notifications. When full, the oldest
// entry is dropped.
type Queue struct {
	mu    sync.Mutex
	limit int
	items []Notification
}

// NewQueue creates a queue holding at most limit entries
func NewQueue(limit int) *Queue {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Queue{limit: limit}
}

func (q *Queue) Notify(n Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, n)
	if over := len(q.items) - q.limit; over > 0 {
		q.items = append([]Notification(nil), q.items[over:]...)
	}
}

// Drain returns the pending notifications and empties the queue
func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Catalog builds the outcome messages shown after a submission
type Catalog struct {
	Duration time.Duration
}

// DefaultCatalog uses DefaultDuration
func DefaultCatalog() Catalog {
	return Catalog{Duration: DefaultDuration}
}

func (c Catalog) Success(role models.Role) Notification {
	n := Notification{Variant: VariantDefault, Duration: c.duration()}
	switch role {
	case models.RoleFarmer:
		n.Title = "Thank you for joining!"
		n.Description = "We'll contact you soon with more details about Jaba."
	default:
		n.Title = "Welcome to Jaba!"
		n.Description = "We'll notify you as soon as we launch in your area."
	}
	return n
}

func (c Catalog) Duplicate(role models.Role) Notification {
	return Notification{
		Title:       "Email already registered",
		Description: "This email is already registered as a " + string(role) + ". Please use a different email.",
		Variant:     VariantDestructive,
		Duration:    c.duration(),
	}
}

func (c Catalog) Failed(models.Role) Notification {
	return Notification{
		Title:       "Registration failed",
		Description: "Something went wrong. Please try again.",
		Variant:     VariantDestructive,
		Duration:    c.duration(),
	}
}

func (c Catalog) Invalid(models.Role) Notification {
	return Notification{
		Title:       "Please check the form",
		Description: "Some required fields are missing or have an unexpected value.",
		Variant:     VariantDestructive,
		Duration:    c.duration(),
	}
}

func (c Catalog) duration() time.Duration {
	if c.Duration <= 0 {
		return DefaultDuration
	}
	return c.Duration
}
