package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/wealthflow/wealthflow"
)

// usersCollection is where state documents live, keyed by uid.
const usersCollection = "users"

// Firestore stores state documents in Cloud Firestore, the product's hosted
// document database.
type Firestore struct {
	client *firestore.Client
}

// NewFirestore connects to the project's Firestore database. Credentials
// come from the ambient Google application default credentials.
func NewFirestore(ctx context.Context, projectID string) (*Firestore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not create firestore client: %w", err)
	}
	return &Firestore{client: client}, nil
}

// Close releases the underlying client.
func (f *Firestore) Close() error { return f.client.Close() }

// Fetch implements Store.
func (f *Firestore) Fetch(ctx context.Context, uid string) (wealthflow.AppState, error) {
	snap, err := f.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return wealthflow.AppState{}, ErrNotFound
	}
	if err != nil {
		return wealthflow.AppState{}, fmt.Errorf("could not fetch state for %q: %w", uid, err)
	}
	state, err := wealthflow.StateFromDocument(snap.Data())
	if err != nil {
		return wealthflow.AppState{}, fmt.Errorf("corrupt state document for %q: %w", uid, err)
	}
	return state, nil
}

// Merge implements Store. Only the top-level fields named by delta are
// written; each replaces its stored counterpart wholesale.
func (f *Firestore) Merge(ctx context.Context, uid string, state wealthflow.AppState, delta wealthflow.Delta) error {
	if delta.IsZero() {
		return nil
	}
	doc, err := state.Document()
	if err != nil {
		return fmt.Errorf("could not encode state for %q: %w", uid, err)
	}

	fields := delta.Fields()
	partial := make(map[string]any, len(fields))
	paths := make([]firestore.FieldPath, 0, len(fields))
	for _, field := range fields {
		partial[field] = doc[field]
		paths = append(paths, firestore.FieldPath{field})
	}

	_, err = f.client.Collection(usersCollection).Doc(uid).Set(ctx, partial, firestore.Merge(paths...))
	if err != nil {
		return fmt.Errorf("could not merge state for %q: %w", uid, err)
	}
	return nil
}
