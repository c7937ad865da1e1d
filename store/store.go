// Package store is the client side of the remote data store that keeps
// registrations.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jaba-landing/models"
)

// UniqueViolation is the store code for a uniqueness constraint conflict
const UniqueViolation = "23505"

// ErrTransport marks failures where the store never reported a result
var ErrTransport = errors.New("store unreachable")

// Inserter inserts one registration into its table
type Inserter interface {
	Insert(ctx context.Context, record models.Registration) error
}

// Error is a failure reported by the store itself
type Error struct {
	Table   string
	Status  int
	Code    string
	Message string
	Details string
	Hint    string
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("insert into %s: %s", e.Table, e.Message)
	}
	return fmt.Sprintf("insert into %s: %s (%s)", e.Table, e.Message, e.Code)
}

// IsUniqueViolation reports whether the row conflicts with an existing one
func (e *Error) IsUniqueViolation() bool {
	return e.Code == UniqueViolation
}

// IsUniqueViolation unwraps err looking for a store-reported conflict
func IsUniqueViolation(err error) bool {
	var storeErr *Error
	return errors.As(err, &storeErr) && storeErr.IsUniqueViolation()
}

// InserterFunc adapts a function to Inserter
type InserterFunc func(ctx context.Context, record models.Registration) error

func (f InserterFunc) Insert(ctx context.Context, record models.Registration) error {
	return f(ctx, record)
}
