package session

import (
	"context"
	"log"
	"time"

	"github.com/wealthflow/wealthflow"
	"github.com/wealthflow/wealthflow/store"
)

// intent is one outbound state update waiting to be mirrored remotely.
type intent struct {
	uid   string
	state wealthflow.AppState
	delta wealthflow.Delta
}

// Outbox is the one-way queue between local mutations and the remote store.
// Submit never blocks the mutation path; a mutation is visible locally
// before it is durable remotely. Remote failures are logged and dropped —
// the in-memory state stays authoritative for the session.
type Outbox struct {
	ch      chan intent
	done    chan struct{}
	store   store.Store
	timeout time.Duration
}

// NewOutbox starts the worker goroutine draining submissions into s.
func NewOutbox(s store.Store) *Outbox {
	o := &Outbox{
		ch:      make(chan intent, 64),
		done:    make(chan struct{}),
		store:   s,
		timeout: 10 * time.Second,
	}
	go o.run()
	return o
}

func (o *Outbox) run() {
	defer close(o.done)
	for it := range o.ch {
		ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
		if err := o.store.Merge(ctx, it.uid, it.state, it.delta); err != nil {
			log.Printf("state sync failed for %s %v: %v", it.uid, it.delta.Fields(), err)
		}
		cancel()
	}
}

// Submit queues a state update for remote persistence. A zero delta is
// dropped; a full queue drops the update with a log line rather than stall
// the caller.
func (o *Outbox) Submit(uid string, state wealthflow.AppState, delta wealthflow.Delta) {
	if delta.IsZero() {
		return
	}
	select {
	case o.ch <- intent{uid: uid, state: state, delta: delta}:
	default:
		log.Printf("sync queue full, dropping update for %s %v", uid, delta.Fields())
	}
}

// Close stops accepting submissions and waits for the queue to drain.
func (o *Outbox) Close() {
	close(o.ch)
	<-o.done
}
