package house

import (
	"encoding/json"
	"fmt"

	"github.com/enetx/g"
)

// doorDocument is the serializable representation of a Door's state.
type doorDocument struct {
	Current DoorState          `json:"current"`
	History g.Slice[DoorState] `json:"history"`
}

// MarshalJSON implements the json.Marshaler interface.
func (d *Door) MarshalJSON() ([]byte, error) {
	return json.Marshal(doorDocument{
		Current: d.State(),
		History: d.History(),
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface. Unknown state
// names and snapshots violating the open/locked invariant are rejected,
// leaving the door unchanged.
func (d *Door) UnmarshalJSON(data []byte) error {
	var doc doorDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal door state: %w", err)
	}

	if doc.Current.invalid() {
		return ErrOpenAndLocked
	}

	for state := range doc.History.Iter() {
		if state.invalid() {
			return ErrOpenAndLocked
		}
	}

	d.open = doc.Current.Open
	d.lock = doc.Current.Lock
	d.history = doc.History

	return nil
}
