// Package occupiable provides a binary occupied/vacant capability state
// machine, used standalone by furniture fixtures. The zero value is Vacant.
package occupiable

import (
	"errors"
	"fmt"
)

// State is the occupancy dimension of a fixture.
type State int

const (
	// Vacant is the rest state.
	Vacant State = iota
	Occupied
)

var (
	ErrAlreadyOccupied = errors.New("occupiable: already occupied")
	ErrAlreadyVacant   = errors.New("occupiable: already vacant")
)

// IsOccupied reports whether the state is Occupied.
func (s State) IsOccupied() bool { return s == Occupied }

// IsVacant reports whether the state is Vacant.
func (s State) IsVacant() bool { return !s.IsOccupied() }

// CanOccupy reports whether Occupy would succeed.
func (s State) CanOccupy() bool { return s.IsVacant() }

// CanVacate reports whether Vacate would succeed.
func (s State) CanVacate() bool { return !s.CanOccupy() }

// Occupy transitions Vacant -> Occupied. It fails with ErrAlreadyOccupied
// if the state is already Occupied.
func (s *State) Occupy() error {
	if s.IsOccupied() {
		return ErrAlreadyOccupied
	}

	*s = Occupied
	return nil
}

// Vacate transitions Occupied -> Vacant. It fails with ErrAlreadyVacant if
// the state is already Vacant.
func (s *State) Vacate() error {
	if s.IsVacant() {
		return ErrAlreadyVacant
	}

	*s = Vacant
	return nil
}

func (s State) String() string {
	switch s {
	case Occupied:
		return "occupied"
	default:
		return "vacant"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "vacant":
		*s = Vacant
	case "occupied":
		*s = Occupied
	default:
		return fmt.Errorf("occupiable: unknown state %q", text)
	}

	return nil
}
