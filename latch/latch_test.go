package latch_test

import (
	"errors"
	"testing"

	"github.com/dwelve/house/latch"
)

func assertState(t *testing.T, got, want latch.State) {
	t.Helper()
	if got != want {
		t.Fatalf("expected state %v, got %v", want, got)
	}
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertErrorIs(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func allStates() []latch.State {
	return []latch.State{latch.ClosedAndUnlocked, latch.Open, latch.Locked}
}

func TestClosedAndUnlockedByDefault(t *testing.T) {
	var s latch.State
	assertState(t, s, latch.ClosedAndUnlocked)

	if !s.IsClosed() {
		t.Fatal("expected default state to be closed")
	}
	if s.IsLocked() {
		t.Fatal("expected default state to be unlocked")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		state    latch.State
		isOpen   bool
		isClosed bool
		isLocked bool
		canOpen  bool
		canClose bool
	}{
		{latch.ClosedAndUnlocked, false, true, false, true, false},
		{latch.Open, true, false, false, false, true},
		{latch.Locked, false, true, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.IsOpen(); got != tt.isOpen {
				t.Errorf("IsOpen() = %v, want %v", got, tt.isOpen)
			}
			if got := tt.state.IsClosed(); got != tt.isClosed {
				t.Errorf("IsClosed() = %v, want %v", got, tt.isClosed)
			}
			if got := tt.state.IsLocked(); got != tt.isLocked {
				t.Errorf("IsLocked() = %v, want %v", got, tt.isLocked)
			}
			if got := tt.state.CanOpen(); got != tt.canOpen {
				t.Errorf("CanOpen() = %v, want %v", got, tt.canOpen)
			}
			if got := tt.state.CanClose(); got != tt.canClose {
				t.Errorf("CanClose() = %v, want %v", got, tt.canClose)
			}
		})
	}
}

func TestMutualExclusion(t *testing.T) {
	for _, s := range allStates() {
		if s.IsOpen() && s.IsLocked() {
			t.Fatalf("state %v reports both open and locked", s)
		}
	}
}

func TestOpen(t *testing.T) {
	s := latch.ClosedAndUnlocked
	assertNoError(t, s.Open())
	assertState(t, s, latch.Open)

	assertErrorIs(t, s.Open(), latch.ErrAlreadyOpen)
	assertState(t, s, latch.Open)

	s = latch.Locked
	assertErrorIs(t, s.Open(), latch.ErrLocked)
	assertState(t, s, latch.Locked)
}

func TestClose(t *testing.T) {
	s := latch.Open
	assertNoError(t, s.Close())
	assertState(t, s, latch.ClosedAndUnlocked)

	assertErrorIs(t, s.Close(), latch.ErrAlreadyClosed)
	assertState(t, s, latch.ClosedAndUnlocked)

	// Locked already counts as closed.
	s = latch.Locked
	assertErrorIs(t, s.Close(), latch.ErrAlreadyClosed)
	assertState(t, s, latch.Locked)
}

func TestLock(t *testing.T) {
	s := latch.ClosedAndUnlocked
	assertNoError(t, s.Lock())
	assertState(t, s, latch.Locked)

	assertErrorIs(t, s.Lock(), latch.ErrAlreadyLocked)
	assertState(t, s, latch.Locked)

	// No implicit close on lock.
	s = latch.Open
	assertErrorIs(t, s.Lock(), latch.ErrOpen)
	assertState(t, s, latch.Open)
}

func TestCloseAndLock(t *testing.T) {
	s := latch.Open
	assertNoError(t, s.CloseAndLock())
	assertState(t, s, latch.Locked)

	s = latch.ClosedAndUnlocked
	assertNoError(t, s.CloseAndLock())
	assertState(t, s, latch.Locked)

	assertErrorIs(t, s.CloseAndLock(), latch.ErrAlreadyLocked)
	assertState(t, s, latch.Locked)
}

// The fused surface exposes no unlock, so Locked rejects every transition.
func TestLockedIsTerminal(t *testing.T) {
	s := latch.Locked

	assertErrorIs(t, s.Open(), latch.ErrLocked)
	assertErrorIs(t, s.Close(), latch.ErrAlreadyClosed)
	assertErrorIs(t, s.Lock(), latch.ErrAlreadyLocked)
	assertErrorIs(t, s.CloseAndLock(), latch.ErrAlreadyLocked)
	assertState(t, s, latch.Locked)
}

func TestLockThenOpenScenario(t *testing.T) {
	var s latch.State

	assertNoError(t, s.Lock())
	assertState(t, s, latch.Locked)

	assertErrorIs(t, s.Open(), latch.ErrLocked)
	assertState(t, s, latch.Locked)
}

func TestUnmarshalUnknownState(t *testing.T) {
	var s latch.State
	if err := s.UnmarshalText([]byte("jammed")); err == nil {
		t.Fatal("expected error for unknown state")
	}
}
