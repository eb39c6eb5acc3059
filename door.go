// Package house models small household fixtures (doors, windows, chairs)
// as capability state machines. Each capability (open/closed,
// locked/unlocked, occupied/vacant) is an independent machine in its own
// package; composite fixtures own one or more machines and translate
// fixture operations into primitive transitions with cross-machine
// ordering rules. It is built with types and utilities from the
// github.com/enetx/g library.
package house

import (
	"errors"
	"fmt"

	"github.com/enetx/g"

	"github.com/dwelve/house/lockable"
	"github.com/dwelve/house/openable"
)

// DoorState is a snapshot of a Door's two capability machines.
type DoorState struct {
	Open openable.State `json:"open"`
	Lock lockable.State `json:"lock"`
}

// invalid reports whether the snapshot violates the door invariant that a
// door is never open and locked at the same time.
func (s DoorState) invalid() bool { return s.Open.IsOpen() && s.Lock.IsLocked() }

func (s DoorState) String() string {
	return fmt.Sprintf("%s and %s", s.Open, s.Lock)
}

// Door is a composite fixture backed by one openable and one lockable
// machine, owned exclusively. Lock status gates open status: opening
// clears the lock first, locking forces a close first, so a Door never
// reports open and locked simultaneously.
//
// The zero Door is closed and unlocked, ready to use.
type Door struct {
	open    openable.State
	lock    lockable.State
	initial DoorState
	history g.Slice[DoorState]
}

// NewDoor creates a Door in its rest state, closed and unlocked.
func NewDoor() *Door {
	d := &Door{}
	d.history = g.Slice[DoorState]{d.initial}

	return d
}

// RestoreDoor creates a Door with an explicit initial state. Snapshots
// claiming to be open and locked at once are rejected with
// ErrOpenAndLocked.
func RestoreDoor(state DoorState) (*Door, error) {
	if state.invalid() {
		return nil, ErrOpenAndLocked
	}

	return &Door{
		open:    state.Open,
		lock:    state.Lock,
		initial: state,
		history: g.Slice[DoorState]{state},
	}, nil
}

// State returns a snapshot of the door's current state.
func (d *Door) State() DoorState { return DoorState{Open: d.open, Lock: d.lock} }

// History returns a copy of the snapshots visited by successful
// transitions, starting with the construction state.
func (d *Door) History() g.Slice[DoorState] {
	if d.history.Empty() {
		return g.Slice[DoorState]{d.initial}
	}

	return d.history.Clone()
}

// record appends the current snapshot to the history after a successful
// transition.
func (d *Door) record() {
	if d.history.Empty() {
		d.history.Push(d.initial)
	}

	d.history.Push(d.State())
}

// Reset returns the door to its construction state and clears the history.
func (d *Door) Reset() {
	d.open = d.initial.Open
	d.lock = d.initial.Lock
	d.history = g.Slice[DoorState]{d.initial}
}

// IsOpen reports whether the door is open.
func (d *Door) IsOpen() bool { return d.open.IsOpen() }

// IsClosed reports whether the door is closed.
func (d *Door) IsClosed() bool { return d.open.IsClosed() }

// CanOpen reports whether the openable machine would accept Open.
func (d *Door) CanOpen() bool { return d.open.CanOpen() }

// CanClose reports whether the openable machine would accept Close.
func (d *Door) CanClose() bool { return d.open.CanClose() }

// IsLocked reports whether the door is locked.
func (d *Door) IsLocked() bool { return d.lock.IsLocked() }

// IsUnlocked reports whether the door is unlocked.
func (d *Door) IsUnlocked() bool { return d.lock.IsUnlocked() }

// CanLock reports whether the lockable machine would accept Lock.
func (d *Door) CanLock() bool { return d.lock.CanLock() }

// CanUnlock reports whether the lockable machine would accept Unlock.
func (d *Door) CanUnlock() bool { return d.lock.CanUnlock() }

// Open opens the door, clearing any lock first. An already-unlocked lock
// is tolerated; any other unlock failure surfaces as ErrCannotOpen. A
// locked, closed door becomes unlocked and open after one call.
func (d *Door) Open() error {
	if err := d.lock.Unlock(); err != nil && !errors.Is(err, lockable.ErrAlreadyUnlocked) {
		return ErrCannotOpen
	}

	if err := d.open.Open(); err != nil {
		return err
	}

	d.record()
	return nil
}

// Close closes the door. The lock is untouched.
func (d *Door) Close() error {
	if err := d.open.Close(); err != nil {
		return err
	}

	d.record()
	return nil
}

// Lock locks the door, forcing a close first: locking an open door
// silently closes it. The close result is ignored since an already-closed
// door is acceptable here.
func (d *Door) Lock() error {
	_ = d.open.Close()

	if err := d.lock.Lock(); err != nil {
		return err
	}

	d.record()
	return nil
}

// Unlock unlocks the door. The open/closed state is untouched.
func (d *Door) Unlock() error {
	if err := d.lock.Unlock(); err != nil {
		return err
	}

	d.record()
	return nil
}

func (d *Door) String() string {
	return fmt.Sprintf("door (%s)", d.State())
}
