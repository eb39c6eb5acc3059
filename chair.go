package house

import (
	"fmt"

	"github.com/dwelve/house/occupiable"
)

// Chair is a furniture fixture with a single occupancy machine. The zero
// Chair is vacant.
type Chair struct {
	occupancy occupiable.State
}

// NewChair creates a vacant Chair.
func NewChair() *Chair { return &Chair{} }

// State returns the chair's current occupancy state.
func (c *Chair) State() occupiable.State { return c.occupancy }

// IsOccupied reports whether the chair is occupied.
func (c *Chair) IsOccupied() bool { return c.occupancy.IsOccupied() }

// IsVacant reports whether the chair is vacant.
func (c *Chair) IsVacant() bool { return c.occupancy.IsVacant() }

// CanOccupy reports whether Occupy would succeed.
func (c *Chair) CanOccupy() bool { return c.occupancy.CanOccupy() }

// CanVacate reports whether Vacate would succeed.
func (c *Chair) CanVacate() bool { return c.occupancy.CanVacate() }

// Occupy seats someone on the chair.
func (c *Chair) Occupy() error { return c.occupancy.Occupy() }

// Vacate frees the chair.
func (c *Chair) Vacate() error { return c.occupancy.Vacate() }

func (c *Chair) String() string {
	return fmt.Sprintf("chair (%s)", c.occupancy)
}
