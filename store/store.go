// Package store is the persistent-store boundary: one remote document per
// user, fetched whole at session start and merged collection-by-collection
// after each mutation. The merge is shallow — a collection named by the
// delta replaces the stored one wholesale, untouched fields keep their
// remote value (last writer wins, no conflict detection).
package store

import (
	"context"
	"errors"

	"github.com/wealthflow/wealthflow"
)

// ErrNotFound is returned by Fetch when the user has no document yet.
var ErrNotFound = errors.New("state document not found")

// Store reads and merge-writes a user's state document.
type Store interface {
	// Fetch returns the user's full state, or ErrNotFound.
	Fetch(ctx context.Context, uid string) (wealthflow.AppState, error)
	// Merge replaces the collections named by delta with the ones in state.
	// A zero delta is a no-op.
	Merge(ctx context.Context, uid string, state wealthflow.AppState, delta wealthflow.Delta) error
}
