// Package lockable provides a binary locked/unlocked capability state
// machine. The zero value is Unlocked.
//
// The machine carries no knowledge of open/closed state; coordinating the
// two dimensions is the owning fixture's job.
package lockable

import (
	"errors"
	"fmt"
)

// State is the locked/unlocked dimension of a fixture.
type State int

const (
	// Unlocked is the rest state.
	Unlocked State = iota
	Locked
)

var (
	ErrAlreadyLocked   = errors.New("lockable: already locked")
	ErrAlreadyUnlocked = errors.New("lockable: already unlocked")
)

// IsLocked reports whether the state is Locked.
func (s State) IsLocked() bool { return s == Locked }

// IsUnlocked reports whether the state is Unlocked.
func (s State) IsUnlocked() bool { return !s.IsLocked() }

// CanLock reports whether Lock would succeed.
func (s State) CanLock() bool { return s.IsUnlocked() }

// CanUnlock reports whether Unlock would succeed.
func (s State) CanUnlock() bool { return !s.CanLock() }

// Lock transitions Unlocked -> Locked. It fails with ErrAlreadyLocked if
// the state is already Locked.
func (s *State) Lock() error {
	if s.IsLocked() {
		return ErrAlreadyLocked
	}

	*s = Locked
	return nil
}

// Unlock transitions Locked -> Unlocked. It fails with ErrAlreadyUnlocked
// if the state is already Unlocked.
func (s *State) Unlock() error {
	if s.IsUnlocked() {
		return ErrAlreadyUnlocked
	}

	*s = Unlocked
	return nil
}

func (s State) String() string {
	switch s {
	case Locked:
		return "locked"
	default:
		return "unlocked"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "unlocked":
		*s = Unlocked
	case "locked":
		*s = Locked
	default:
		return fmt.Errorf("lockable: unknown state %q", text)
	}

	return nil
}
