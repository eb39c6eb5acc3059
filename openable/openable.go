// Package openable provides a binary open/closed capability state machine.
// The zero value is Closed, so an embedded State is ready to use without
// initialization.
package openable

import (
	"errors"
	"fmt"
)

// State is the open/closed dimension of a fixture. It has exactly two
// reachable states and two transition edges.
type State int

const (
	// Closed is the rest state.
	Closed State = iota
	// Open means the fixture is currently open.
	Open
)

// Precondition failures returned by transitions. A failed transition leaves
// the state unchanged.
var (
	ErrAlreadyOpen   = errors.New("openable: already open")
	ErrAlreadyClosed = errors.New("openable: already closed")
)

// IsOpen reports whether the state is Open.
func (s State) IsOpen() bool { return s == Open }

// IsClosed reports whether the state is Closed.
func (s State) IsClosed() bool { return !s.IsOpen() }

// CanOpen reports whether Open would succeed.
func (s State) CanOpen() bool { return s.IsClosed() }

// CanClose reports whether Close would succeed.
func (s State) CanClose() bool { return !s.CanOpen() }

// Open transitions Closed -> Open. It fails with ErrAlreadyOpen if the
// state is already Open.
func (s *State) Open() error {
	if s.IsOpen() {
		return ErrAlreadyOpen
	}

	*s = Open
	return nil
}

// Close transitions Open -> Closed. It fails with ErrAlreadyClosed if the
// state is already Closed.
func (s *State) Close() error {
	if s.IsClosed() {
		return ErrAlreadyClosed
	}

	*s = Closed
	return nil
}

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	default:
		return "closed"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. Unknown state names
// are rejected.
func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "closed":
		*s = Closed
	case "open":
		*s = Open
	default:
		return fmt.Errorf("openable: unknown state %q", text)
	}

	return nil
}
