// Package session owns the authoritative in-memory AppState for one
// signed-in user. Mutations run synchronously through the pure functions of
// the root package; the resulting delta is mirrored to the remote store
// through the outbox without being awaited.
//
// A Session is not safe for concurrent use: like the UI it serves, it
// expects one caller at a time.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/wealthflow/wealthflow"
	"github.com/wealthflow/wealthflow/identity"
	"github.com/wealthflow/wealthflow/store"
)

// everything names all top-level collections, for the first persist of a
// fresh state.
var everything = wealthflow.Delta{Accounts: true, Transactions: true, Stocks: true, User: true}

// Session holds one user's state for the lifetime of a sign-in.
type Session struct {
	user   identity.User
	state  wealthflow.AppState
	outbox *Outbox
	rng    *rand.Rand
}

// Open fetches the user's state from the store, or initializes and persists
// a fresh one for a first sign-in. Unlike later mutations, the initial
// persist is awaited: a registration that cannot write its document should
// fail loudly, not silently.
func Open(ctx context.Context, st store.Store, user identity.User) (*Session, error) {
	state, err := st.Fetch(ctx, user.UID)
	if errors.Is(err, store.ErrNotFound) {
		state = wealthflow.NewAppState(user.Email)
		if err := st.Merge(ctx, user.UID, state, everything); err != nil {
			return nil, fmt.Errorf("could not initialize state for %q: %w", user.UID, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("could not load state for %q: %w", user.UID, err)
	}

	now := time.Now()
	return &Session{
		user:   user,
		state:  state,
		outbox: NewOutbox(st),
		rng:    rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix()))),
	}, nil
}

// User returns the signed-in identity.
func (s *Session) User() identity.User { return s.user }

// State returns the current snapshot. It is a value: views can hold it
// while the session moves on.
func (s *Session) State() wealthflow.AppState { return s.state }

// apply installs the new state and queues its delta for remote sync.
func (s *Session) apply(next wealthflow.AppState, delta wealthflow.Delta) {
	s.state = next
	s.outbox.Submit(s.user.UID, next, delta)
}

// Record records a transaction and adjusts the account balance as one
// state transition.
func (s *Session) Record(d wealthflow.Draft) error {
	next, delta, err := wealthflow.RecordTransaction(s.state, d)
	if err != nil {
		return err
	}
	s.apply(next, delta)
	return nil
}

// AddAccount adds a bank account.
func (s *Session) AddAccount(a wealthflow.Account) error {
	next, delta, err := wealthflow.AddAccount(s.state, a)
	if err != nil {
		return err
	}
	s.apply(next, delta)
	return nil
}

// RemoveAccount removes an account from the visible set. Confirmation is
// the caller's job; transactions referencing the account are kept.
func (s *Session) RemoveAccount(id string) error {
	next, delta, err := wealthflow.RemoveAccount(s.state, id)
	if err != nil {
		return err
	}
	s.apply(next, delta)
	return nil
}

// AddStock declares a stock position.
func (s *Session) AddStock(st wealthflow.Stock) error {
	next, delta, err := wealthflow.AddStock(s.state, st)
	if err != nil {
		return err
	}
	s.apply(next, delta)
	return nil
}

// RefreshPrices runs the simulated quote update over the portfolio.
func (s *Session) RefreshPrices() {
	next, delta := wealthflow.RefreshStockPrices(s.state, s.rng)
	s.apply(next, delta)
}

// Close drains the outbox. Call it before the process exits so queued
// updates get their chance to reach the store.
func (s *Session) Close() {
	s.outbox.Close()
}
