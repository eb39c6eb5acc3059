package house

import "errors"

// Composite-level failures. The primitive machines declare their own
// closed error sets in their packages.
var (
	// ErrCannotOpen is returned by Door.Open when the internal unlock step
	// cannot clear the lock.
	ErrCannotOpen = errors.New("house: cannot open")

	// ErrOpenAndLocked rejects a door snapshot that claims to be open and
	// locked at the same time.
	ErrOpenAndLocked = errors.New("house: door cannot be open and locked")
)
