package house

import (
	"sync"

	"github.com/enetx/g"
)

// SyncDoor is a thread-safe wrapper around a Door. It protects all
// state-mutating and state-reading operations with a sync.RWMutex, making
// it safe for use across multiple goroutines. The core machines stay
// single-threaded; this wrapper is for embedders on concurrent platforms.
type SyncDoor struct {
	door *Door
	mu   sync.RWMutex
}

// Sync wraps the door in a SyncDoor. The caller must not use the
// underlying Door directly afterwards.
func (d *Door) Sync() *SyncDoor { return &SyncDoor{door: d} }

// State is the thread-safe version of Door.State.
func (sd *SyncDoor) State() DoorState {
	sd.mu.RLock()
	defer sd.mu.RUnlock()

	return sd.door.State()
}

// History is the thread-safe version of Door.History.
func (sd *SyncDoor) History() g.Slice[DoorState] {
	sd.mu.RLock()
	defer sd.mu.RUnlock()

	return sd.door.History()
}

// Reset is the thread-safe version of Door.Reset.
func (sd *SyncDoor) Reset() {
	sd.mu.Lock()
	defer sd.mu.Unlock()

	sd.door.Reset()
}

// IsOpen is the thread-safe version of Door.IsOpen.
func (sd *SyncDoor) IsOpen() bool {
	sd.mu.RLock()
	defer sd.mu.RUnlock()

	return sd.door.IsOpen()
}

// IsClosed is the thread-safe version of Door.IsClosed.
func (sd *SyncDoor) IsClosed() bool {
	sd.mu.RLock()
	defer sd.mu.RUnlock()

	return sd.door.IsClosed()
}

// CanOpen is the thread-safe version of Door.CanOpen.
func (sd *SyncDoor) CanOpen() bool {
	sd.mu.RLock()
	defer sd.mu.RUnlock()

	return sd.door.CanOpen()
}

// CanClose is the thread-safe version of Door.CanClose.
func (sd *SyncDoor) CanClose() bool {
	sd.mu.RLock()
	defer sd.mu.RUnlock()

	return sd.door.CanClose()
}

// IsLocked is the thread-safe version of Door.IsLocked.
func (sd *SyncDoor) IsLocked() bool {
	sd.mu.RLock()
	defer sd.mu.RUnlock()

	return sd.door.IsLocked()
}

// IsUnlocked is the thread-safe version of Door.IsUnlocked.
func (sd *SyncDoor) IsUnlocked() bool {
	sd.mu.RLock()
	defer sd.mu.RUnlock()

	return sd.door.IsUnlocked()
}

// CanLock is the thread-safe version of Door.CanLock.
func (sd *SyncDoor) CanLock() bool {
	sd.mu.RLock()
	defer sd.mu.RUnlock()

	return sd.door.CanLock()
}

// CanUnlock is the thread-safe version of Door.CanUnlock.
func (sd *SyncDoor) CanUnlock() bool {
	sd.mu.RLock()
	defer sd.mu.RUnlock()

	return sd.door.CanUnlock()
}

// Open is the thread-safe version of Door.Open.
func (sd *SyncDoor) Open() error {
	sd.mu.Lock()
	defer sd.mu.Unlock()

	return sd.door.Open()
}

// Close is the thread-safe version of Door.Close.
func (sd *SyncDoor) Close() error {
	sd.mu.Lock()
	defer sd.mu.Unlock()

	return sd.door.Close()
}

// Lock is the thread-safe version of Door.Lock.
func (sd *SyncDoor) Lock() error {
	sd.mu.Lock()
	defer sd.mu.Unlock()

	return sd.door.Lock()
}

// Unlock is the thread-safe version of Door.Unlock.
func (sd *SyncDoor) Unlock() error {
	sd.mu.Lock()
	defer sd.mu.Unlock()

	return sd.door.Unlock()
}

// ToDOT is the thread-safe version of Door.ToDOT.
func (sd *SyncDoor) ToDOT() g.String {
	sd.mu.RLock()
	defer sd.mu.RUnlock()

	return sd.door.ToDOT()
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the door's state.
func (sd *SyncDoor) MarshalJSON() ([]byte, error) {
	sd.mu.RLock()
	defer sd.mu.RUnlock()

	return sd.door.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for thread-safe
// restoration of the door's state.
func (sd *SyncDoor) UnmarshalJSON(data []byte) error {
	sd.mu.Lock()
	defer sd.mu.Unlock()

	return sd.door.UnmarshalJSON(data)
}
