// Package stores persists the timetable to disk.
//
// The whole timetable lives in a single JSON file that is read once at
// startup and rewritten in full after every mutation. A missing file is not
// an error: Load returns the default schedule instead.
//
// Key components:
//   - TimetableRepo: Interface for loading and saving the timetable
//   - FileTimetableRepo: JSON file implementation backed by fsops.FS
//   - Encode: Deterministic serialization shared by Save and tests
package stores

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/danieljhkim/timetable/internal/fsops"
	"github.com/danieljhkim/timetable/internal/timetable"
)

// TimetableRepo provides an interface for persisting the timetable.
type TimetableRepo interface {
	// Load reads the timetable. Returns the default schedule if no data
	// has been saved yet.
	Load() (timetable.Timetable, error)

	// Save overwrites the persisted timetable with tt.
	Save(tt timetable.Timetable) error

	// Path returns the location of the persisted data.
	Path() string
}

// FileTimetableRepo implements TimetableRepo using a JSON file on disk.
type FileTimetableRepo struct {
	fs   fsops.FS
	path string
}

// NewFileTimetableRepo creates a new FileTimetableRepo for the data file at path.
func NewFileTimetableRepo(fs fsops.FS, path string) *FileTimetableRepo {
	return &FileTimetableRepo{
		fs:   fs,
		path: path,
	}
}

// Path returns the data file path.
func (r *FileTimetableRepo) Path() string {
	return r.path
}

// Load reads and validates the data file.
func (r *FileTimetableRepo) Load() (timetable.Timetable, error) {
	data, err := r.fs.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return timetable.Default(), nil
		}
		return nil, fmt.Errorf("failed to read timetable file: %w", err)
	}

	var tt timetable.Timetable
	if err := json.Unmarshal(data, &tt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal timetable file %s: %w", r.path, err)
	}
	if tt == nil {
		tt = timetable.Timetable{}
	}

	if err := tt.Validate(); err != nil {
		return nil, fmt.Errorf("invalid timetable file %s: %w", r.path, err)
	}

	return tt, nil
}

// Save writes the full timetable to the data file.
func (r *FileTimetableRepo) Save(tt timetable.Timetable) error {
	data, err := Encode(tt)
	if err != nil {
		return err
	}

	if err := r.fs.AtomicWrite(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write timetable file: %w", err)
	}

	return nil
}

// Encode serializes the timetable. Map keys are emitted in sorted order, so
// the same timetable always encodes to the same bytes.
func Encode(tt timetable.Timetable) ([]byte, error) {
	if tt == nil {
		tt = timetable.Timetable{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tt); err != nil {
		return nil, fmt.Errorf("failed to marshal timetable: %w", err)
	}

	return buf.Bytes(), nil
}
