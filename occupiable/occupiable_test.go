package occupiable_test

import (
	"errors"
	"testing"

	"github.com/dwelve/house/occupiable"
)

func TestVacantByDefault(t *testing.T) {
	var s occupiable.State
	if !s.IsVacant() {
		t.Fatal("expected zero state to be vacant")
	}
	if s.IsOccupied() {
		t.Fatal("a vacant state must not also be occupied")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		state      occupiable.State
		isOccupied bool
		canOccupy  bool
		canVacate  bool
	}{
		{occupiable.Vacant, false, true, false},
		{occupiable.Occupied, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.IsOccupied(); got != tt.isOccupied {
				t.Errorf("IsOccupied() = %v, want %v", got, tt.isOccupied)
			}
			if got := tt.state.IsVacant(); got == tt.isOccupied {
				t.Errorf("IsVacant() = %v, want %v", got, !tt.isOccupied)
			}
			if got := tt.state.CanOccupy(); got != tt.canOccupy {
				t.Errorf("CanOccupy() = %v, want %v", got, tt.canOccupy)
			}
			if got := tt.state.CanVacate(); got != tt.canVacate {
				t.Errorf("CanVacate() = %v, want %v", got, tt.canVacate)
			}
		})
	}
}

func TestVacateThenOccupy(t *testing.T) {
	var s occupiable.State

	if err := s.Vacate(); !errors.Is(err, occupiable.ErrAlreadyVacant) {
		t.Fatalf("expected ErrAlreadyVacant, got %v", err)
	}
	if s != occupiable.Vacant {
		t.Fatalf("failed transition must not change state, got %v", s)
	}

	if err := s.Occupy(); err != nil {
		t.Fatalf("occupy: %v", err)
	}
	if s != occupiable.Occupied {
		t.Fatalf("expected Occupied, got %v", s)
	}
}

func TestOccupyTwice(t *testing.T) {
	s := occupiable.Occupied
	if err := s.Occupy(); !errors.Is(err, occupiable.ErrAlreadyOccupied) {
		t.Fatalf("expected ErrAlreadyOccupied, got %v", err)
	}
}

func TestVacate(t *testing.T) {
	s := occupiable.Occupied
	if err := s.Vacate(); err != nil {
		t.Fatalf("vacate: %v", err)
	}
	if s != occupiable.Vacant {
		t.Fatalf("expected Vacant, got %v", s)
	}
}
