// Package latch provides a fused tri-state capability machine collapsing
// the open/closed and locked/unlocked dimensions into one enumeration with
// mutual exclusion enforced at the representation level. It is the simple
// model for standalone fixtures such as windows, where the alternative is
// the pair of binary machines coordinated by a composite.
//
// The surface deliberately has no unlock operation: once Locked, a latch
// only answers predicates and rejects further transitions. The zero value
// is ClosedAndUnlocked.
package latch

import (
	"errors"
	"fmt"
)

// State is the fused open+lock dimension of a fixture.
//
// Open and Locked are mutually exclusive and neither is reachable from the
// other directly; both are reached only from ClosedAndUnlocked.
type State int

const (
	// ClosedAndUnlocked is the rest state.
	ClosedAndUnlocked State = iota
	Open
	Locked
)

// Precondition failures returned by transitions.
var (
	ErrAlreadyOpen   = errors.New("latch: already open")
	ErrAlreadyClosed = errors.New("latch: already closed")
	ErrAlreadyLocked = errors.New("latch: already locked")
	// ErrLocked is returned by Open while the latch is locked.
	ErrLocked = errors.New("latch: cannot open while locked")
	// ErrOpen is returned by Lock while the latch is open; there is no
	// implicit close.
	ErrOpen = errors.New("latch: cannot lock while open")
)

// IsOpen reports whether the state is Open.
func (s State) IsOpen() bool { return s == Open }

// IsClosed reports whether the state is anything but Open; Locked counts
// as closed.
func (s State) IsClosed() bool { return !s.IsOpen() }

// IsLocked reports whether the state is Locked.
func (s State) IsLocked() bool { return s == Locked }

// CanOpen reports whether Open would succeed.
func (s State) CanOpen() bool { return s == ClosedAndUnlocked }

// CanClose reports whether Close would succeed.
func (s State) CanClose() bool { return s.IsOpen() }

// Open transitions ClosedAndUnlocked -> Open. It fails with ErrLocked from
// Locked and ErrAlreadyOpen from Open.
func (s *State) Open() error {
	switch *s {
	case Open:
		return ErrAlreadyOpen
	case Locked:
		return ErrLocked
	default:
		*s = Open
		return nil
	}
}

// Close transitions Open -> ClosedAndUnlocked. Both ClosedAndUnlocked and
// Locked already count as closed, so Close fails with ErrAlreadyClosed
// from either.
func (s *State) Close() error {
	if s.IsClosed() {
		return ErrAlreadyClosed
	}

	*s = ClosedAndUnlocked
	return nil
}

// Lock transitions ClosedAndUnlocked -> Locked. It fails with ErrOpen from
// Open and ErrAlreadyLocked from Locked.
func (s *State) Lock() error {
	switch *s {
	case Open:
		return ErrOpen
	case Locked:
		return ErrAlreadyLocked
	default:
		*s = Locked
		return nil
	}
}

// CloseAndLock closes the latch if needed, then locks it. An
// ErrAlreadyClosed failure from the close step is tolerated; the result is
// the result of the lock step, so locking failures always propagate.
func (s *State) CloseAndLock() error {
	if err := s.Close(); err != nil && !errors.Is(err, ErrAlreadyClosed) {
		return err
	}

	return s.Lock()
}

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Locked:
		return "locked"
	default:
		return "closed_and_unlocked"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "closed_and_unlocked":
		*s = ClosedAndUnlocked
	case "open":
		*s = Open
	case "locked":
		*s = Locked
	default:
		return fmt.Errorf("latch: unknown state %q", text)
	}

	return nil
}
