package activity

import (
	"context"
	"errors"
)

// Sentinel errors for activity operations.
var (
	ErrNotFound        = errors.New("activity not found")
	ErrFull            = errors.New("activity is full")
	ErrAlreadySignedUp = errors.New("student already signed up")
	ErrNotSignedUp     = errors.New("student is not signed up for this activity")
)

// Store defines persistence operations for activities.
type Store interface {
	// List returns all activities in insertion order.
	List(ctx context.Context) ([]Activity, error)
	// Get returns an activity by name. Returns ErrNotFound if not found.
	Get(ctx context.Context, name string) (Activity, error)
	// Update loads the named activity, applies fn and saves the result if fn
	// returns nil. Returns ErrNotFound if not found.
	Update(ctx context.Context, name string, fn func(*Activity) error) (Activity, error)
	// Seed replaces the stored activities when the store is empty.
	Seed(ctx context.Context, activities []Activity) error
}
