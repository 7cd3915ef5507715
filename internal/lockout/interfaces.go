// Package lockout provides storage for the login throttle: how many
// consecutive failed attempts have been seen, and when a lockout began.
// For single-node deployments the in-memory ledger is used. When the
// controller runs as a shared service, the Redis-backed ledger keeps the
// throttle consistent across instances.
package lockout

import (
	"context"
	"time"
)

// State is the current standing of the throttle for one key.
type State struct {
	// FailedCount is the number of consecutive failed attempts since
	// the last success or unlock.
	FailedCount int

	// LockedSince is the instant the lockout began, nil when not locked.
	LockedSince *time.Time
}

// Locked reports whether the state represents an active lockout.
func (s State) Locked() bool {
	return s.LockedSince != nil
}

// Ledger defines the interface for throttle state storage.
type Ledger interface {
	// Get returns the current state for the key. A key with no recorded
	// failures yields the zero State.
	Get(ctx context.Context, key string) (State, error)

	// RecordFailure increments the failed-attempt count. When the count
	// reaches threshold the state becomes locked with LockedSince = now.
	RecordFailure(ctx context.Context, key string, now time.Time, threshold int) (State, error)

	// Clear resets the key to the zero State. Called on successful login
	// and when a lockout expires.
	Clear(ctx context.Context, key string) error
}
