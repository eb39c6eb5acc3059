package house

import (
	"fmt"

	"github.com/dwelve/house/latch"
)

// Window is a standalone fixture backed by a single fused latch machine,
// so open and locked are mutually exclusive by representation. The zero
// Window is closed and unlocked.
type Window struct {
	state latch.State
}

// NewWindow creates a Window with an explicit initial state.
func NewWindow(state latch.State) *Window {
	return &Window{state: state}
}

// State returns the window's current latch state.
func (w *Window) State() latch.State { return w.state }

// IsOpen reports whether the window is open.
func (w *Window) IsOpen() bool { return w.state.IsOpen() }

// IsClosed reports whether the window is closed; a locked window counts
// as closed.
func (w *Window) IsClosed() bool { return w.state.IsClosed() }

// IsLocked reports whether the window is locked.
func (w *Window) IsLocked() bool { return w.state.IsLocked() }

// CanOpen reports whether Open would succeed.
func (w *Window) CanOpen() bool { return w.state.CanOpen() }

// CanClose reports whether Close would succeed.
func (w *Window) CanClose() bool { return w.state.CanClose() }

// Open opens the window. A locked window fails with latch.ErrLocked.
func (w *Window) Open() error { return w.state.Open() }

// Close closes the window.
func (w *Window) Close() error { return w.state.Close() }

// Lock locks the window. An open window fails with latch.ErrOpen; there
// is no implicit close.
func (w *Window) Lock() error { return w.state.Lock() }

// CloseAndLock closes the window if needed, then locks it.
func (w *Window) CloseAndLock() error { return w.state.CloseAndLock() }

func (w *Window) String() string {
	return fmt.Sprintf("window (%s)", w.state)
}
