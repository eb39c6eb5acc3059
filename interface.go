package house

import (
	"github.com/dwelve/house/latch"
	"github.com/dwelve/house/lockable"
	"github.com/dwelve/house/occupiable"
	"github.com/dwelve/house/openable"
)

// Openable is the open/closed capability surface.
type Openable interface {
	IsOpen() bool
	IsClosed() bool
	CanOpen() bool
	CanClose() bool
	Open() error
	Close() error
}

// Lockable is the locked/unlocked capability surface.
type Lockable interface {
	IsLocked() bool
	IsUnlocked() bool
	CanLock() bool
	CanUnlock() bool
	Lock() error
	Unlock() error
}

// Occupiable is the occupied/vacant capability surface.
type Occupiable interface {
	IsOccupied() bool
	IsVacant() bool
	CanOccupy() bool
	CanVacate() bool
	Occupy() error
	Vacate() error
}

// Latching is the fused open+lock capability surface. It has no unlock
// operation: a locked latch stays locked.
type Latching interface {
	IsOpen() bool
	IsClosed() bool
	IsLocked() bool
	CanOpen() bool
	CanClose() bool
	Open() error
	Close() error
	Lock() error
	CloseAndLock() error
}

// Interface compliance checks.
var (
	_ Openable   = (*openable.State)(nil)
	_ Lockable   = (*lockable.State)(nil)
	_ Occupiable = (*occupiable.State)(nil)
	_ Latching   = (*latch.State)(nil)

	_ Openable   = (*Door)(nil)
	_ Lockable   = (*Door)(nil)
	_ Openable   = (*SyncDoor)(nil)
	_ Lockable   = (*SyncDoor)(nil)
	_ Latching   = (*Window)(nil)
	_ Occupiable = (*Chair)(nil)
)
