package lockout

import (
	"context"
	"sync"
	"time"
)

// MemoryLedger implements Ledger using in-memory state. Suitable for
// single-node deployments; state is not shared across process restarts
// or multiple instances.
type MemoryLedger struct {
	mu     sync.Mutex
	states map[string]State
}

// NewMemoryLedger creates an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		states: make(map[string]State),
	}
}

// Get returns the current state for the key.
func (l *MemoryLedger) Get(ctx context.Context, key string) (State, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.states[key], nil
}

// RecordFailure increments the failed-attempt count, locking the key when
// the threshold is reached.
func (l *MemoryLedger) RecordFailure(ctx context.Context, key string, now time.Time, threshold int) (State, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state := l.states[key]
	state.FailedCount++
	if state.FailedCount >= threshold && state.LockedSince == nil {
		since := now
		state.LockedSince = &since
	}
	l.states[key] = state
	return state, nil
}

// Clear resets the key.
func (l *MemoryLedger) Clear(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.states, key)
	return nil
}

var _ Ledger = (*MemoryLedger)(nil)
