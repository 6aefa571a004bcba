package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrValidation indicates malformed input or an unknown batch or day.
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates the requested change clashes with current state.
	ErrConflict = errors.New("conflict detected")

	// ErrPersistence indicates a durable write failed.
	ErrPersistence = errors.New("persistence failed")

	// ErrConfirmationRequired indicates the operation needs an explicit
	// yes from the user before it can proceed.
	ErrConfirmationRequired = errors.New("confirmation required")
)

// ValidationError reports input that cannot be acted on.
type ValidationError struct {
	Msg string
}

// NewValidationError formats a ValidationError.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Is matches ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConflictError reports a change that clashes with the current timetable.
// FreeSlots is set when the conflict is an occupied slot; it lists the
// slots that could be used instead.
type ConflictError struct {
	Msg       string
	FreeSlots []int
}

// NewConflictError formats a ConflictError without a free-slot hint.
func NewConflictError(format string, args ...any) *ConflictError {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

func (e *ConflictError) Error() string {
	if e.FreeSlots == nil {
		return e.Msg
	}
	if len(e.FreeSlots) == 0 {
		return e.Msg + "; no free slots available"
	}
	return e.Msg + "; available slots: " + joinInts(e.FreeSlots)
}

// Is matches ErrConflict.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// PersistenceError reports a failed write. The in-memory timetable already
// holds the change when this is returned.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save %s: %v", e.Path, e.Err)
}

// Is matches ErrPersistence.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
