package engine

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	cause := errors.New("disk full")

	tests := []struct {
		name     string
		err      error
		sentinel error
		others   []error
	}{
		{"validation", NewValidationError("bad day %q", "Sunday"), ErrValidation, []error{ErrConflict, ErrPersistence}},
		{"conflict", NewConflictError("taken"), ErrConflict, []error{ErrValidation, ErrPersistence}},
		{"persistence", &PersistenceError{Path: "/x", Err: cause}, ErrPersistence, []error{ErrValidation, ErrConflict}},
		{"wrapped validation", fmt.Errorf("assign: %w", NewValidationError("x")), ErrValidation, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("expected %v to match %v", tt.err, tt.sentinel)
			}
			for _, other := range tt.others {
				if errors.Is(tt.err, other) {
					t.Errorf("%v should not match %v", tt.err, other)
				}
			}
		})
	}

	if !errors.Is(&PersistenceError{Path: "/x", Err: cause}, cause) {
		t.Error("PersistenceError should unwrap to its cause")
	}
}

func TestConflictError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *ConflictError
		want string
	}{
		{"no hint", &ConflictError{Msg: "taken"}, "taken"},
		{"empty hint", &ConflictError{Msg: "taken", FreeSlots: []int{}}, "taken; no free slots available"},
		{"with slots", &ConflictError{Msg: "taken", FreeSlots: []int{0, 4}}, "taken; available slots: 0, 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
