// Package engine provides the core timetable editing logic.
//
// The engine owns the in-memory timetable for the lifetime of one process.
// It loads the timetable from the repository on first use, applies one
// operation per call, and writes the whole timetable back after every
// successful mutation.
//
// Key components:
//   - Engine: Owner of the timetable and entry point for the CLI
//   - Assign/Clear/FreeSlots: Slot editing rules
//   - AddBatch/RemoveBatch/AutoGenerate: Batch lifecycle
//   - Show/Export: Read-only views and renderings
//
// Failures are reported as *ValidationError, *ConflictError or
// *PersistenceError, each matching its sentinel through errors.Is.
package engine

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/danieljhkim/timetable/internal/clock"
	"github.com/danieljhkim/timetable/internal/fsops"
	"github.com/danieljhkim/timetable/internal/random"
	"github.com/danieljhkim/timetable/internal/stores"
	"github.com/danieljhkim/timetable/internal/timetable"
)

// Engine orchestrates all timetable operations.
// It is the main API surface called by the CLI.
type Engine struct {
	repo      stores.TimetableRepo
	fs        fsops.FS
	picker    random.Picker
	clock     clock.Clock
	log       *zap.Logger
	exportDir string
	validator *requestValidator

	tt timetable.Timetable
}

// New creates a new Engine with the given dependencies.
// exportDir is where exports go when a request does not name a path.
func New(
	repo stores.TimetableRepo,
	fs fsops.FS,
	picker random.Picker,
	clk clock.Clock,
	log *zap.Logger,
	exportDir string,
) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		repo:      repo,
		fs:        fs,
		picker:    picker,
		clock:     clk,
		log:       log,
		exportDir: exportDir,
		validator: newRequestValidator(),
	}
}

// load returns the in-memory timetable, loading it on first use.
func (e *Engine) load() (timetable.Timetable, error) {
	if e.tt != nil {
		return e.tt, nil
	}

	tt, err := e.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load timetable: %w", err)
	}
	e.tt = tt
	e.log.Debug("timetable loaded",
		zap.String("path", e.repo.Path()),
		zap.Int("batches", len(tt)),
	)

	return e.tt, nil
}

// persist writes the in-memory timetable to the repository.
func (e *Engine) persist() error {
	if err := e.repo.Save(e.tt); err != nil {
		e.log.Error("failed to save timetable", zap.String("path", e.repo.Path()), zap.Error(err))
		return &PersistenceError{Path: e.repo.Path(), Err: err}
	}
	e.log.Debug("timetable saved", zap.String("path", e.repo.Path()))
	return nil
}

// daySlots returns the slot slice for batch/day. The returned slice aliases
// the timetable, so writes through it mutate the timetable.
func (e *Engine) daySlots(batch, day string) (string, []string, error) {
	tt, err := e.load()
	if err != nil {
		return "", nil, err
	}

	schedule, ok := tt[batch]
	if !ok {
		return "", nil, NewValidationError("batch %q not found", batch)
	}

	canonical, ok := timetable.ParseDay(day)
	if !ok {
		return "", nil, NewValidationError("day must be a weekday (Monday to Friday), got %q", day)
	}

	slots, ok := schedule[canonical]
	if !ok {
		return "", nil, NewValidationError("day %s not found for batch %q", canonical, batch)
	}

	return canonical, slots, nil
}

// slotAt checks slot against the stored day length as well as the fixed range.
func slotAt(slots []string, slot int) error {
	if slot < 0 || slot >= len(slots) {
		return NewValidationError("slot must be between 0 and %d, got %d", len(slots)-1, slot)
	}
	return nil
}

// checkNewBatchName applies the rules shared by AddBatch and AutoGenerate.
func (e *Engine) checkNewBatchName(name string) (timetable.Timetable, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewConflictError("batch name is empty")
	}

	tt, err := e.load()
	if err != nil {
		return nil, err
	}
	if _, exists := tt[name]; exists {
		return nil, NewConflictError("batch %q already exists", name)
	}

	return tt, nil
}
