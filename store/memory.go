package store

import (
	"context"
	"sync"

	"github.com/wealthflow/wealthflow"
)

// MergeRecord is one observed merge write, for tests asserting on submitted
// intents rather than network traffic.
type MergeRecord struct {
	UID    string
	Fields []string
}

// Memory is an in-memory Store. It backs tests and the CLI's offline mode,
// and records every merge it receives.
type Memory struct {
	mu     sync.Mutex
	docs   map[string]map[string]any
	merges []MergeRecord

	// Fail, when set, makes every operation return this error.
	Fail error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string]map[string]any)}
}

// Fetch implements Store.
func (m *Memory) Fetch(_ context.Context, uid string) (wealthflow.AppState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return wealthflow.AppState{}, m.Fail
	}
	doc, ok := m.docs[uid]
	if !ok {
		return wealthflow.AppState{}, ErrNotFound
	}
	return wealthflow.StateFromDocument(doc)
}

// Merge implements Store with the same shallow semantics as Firestore:
// named collections are replaced wholesale, the rest of the document stays.
func (m *Memory) Merge(_ context.Context, uid string, state wealthflow.AppState, delta wealthflow.Delta) error {
	if delta.IsZero() {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}

	doc, err := state.Document()
	if err != nil {
		return err
	}
	stored, ok := m.docs[uid]
	if !ok {
		stored = make(map[string]any)
		m.docs[uid] = stored
	}
	fields := delta.Fields()
	for _, field := range fields {
		stored[field] = doc[field]
	}
	m.merges = append(m.merges, MergeRecord{UID: uid, Fields: fields})
	return nil
}

// Merges returns the merge writes observed so far.
func (m *Memory) Merges() []MergeRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MergeRecord, len(m.merges))
	copy(out, m.merges)
	return out
}
