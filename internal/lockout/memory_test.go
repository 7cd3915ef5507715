package lockout

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLedgerThreshold(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()
	now := time.Date(2024, 7, 20, 10, 0, 0, 0, time.UTC)

	for i := 1; i <= 2; i++ {
		state, err := ledger.RecordFailure(ctx, "login", now, 3)
		if err != nil {
			t.Fatalf("RecordFailure: %v", err)
		}
		if state.FailedCount != i {
			t.Errorf("after %d failures: count %d", i, state.FailedCount)
		}
		if state.Locked() {
			t.Errorf("locked after %d failures, threshold is 3", i)
		}
	}

	state, err := ledger.RecordFailure(ctx, "login", now, 3)
	if err != nil {
		t.Fatalf("RecordFailure: %v", err)
	}
	if !state.Locked() {
		t.Fatal("expected lock at third failure")
	}
	if !state.LockedSince.Equal(now) {
		t.Errorf("LockedSince = %v, want %v", state.LockedSince, now)
	}
}

func TestMemoryLedgerLockedSinceIsStable(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()
	first := time.Date(2024, 7, 20, 10, 0, 0, 0, time.UTC)
	later := first.Add(30 * time.Second)

	ledger.RecordFailure(ctx, "login", first, 1)
	state, _ := ledger.RecordFailure(ctx, "login", later, 1)
	if !state.LockedSince.Equal(first) {
		t.Errorf("LockedSince moved to %v after repeated failures, want %v", state.LockedSince, first)
	}
}

func TestMemoryLedgerClear(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()
	now := time.Now()

	ledger.RecordFailure(ctx, "login", now, 1)
	if err := ledger.Clear(ctx, "login"); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	state, err := ledger.Get(ctx, "login")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if state.FailedCount != 0 || state.Locked() {
		t.Errorf("expected zero state after clear, got %+v", state)
	}
}

func TestMemoryLedgerKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()
	now := time.Now()

	ledger.RecordFailure(ctx, "a", now, 3)
	state, _ := ledger.Get(ctx, "b")
	if state.FailedCount != 0 {
		t.Errorf("key b affected by key a: %+v", state)
	}
}
