// Package config manages timetable configuration and filesystem paths.
//
// The default root is ~/.timetable/, holding the data file, an optional
// config.yaml and an optional .env file. The root can be moved with the
// TIMETABLE_ROOT environment variable; individual settings are loaded by
// Load from defaults, the config file, the .env file and TIMETABLE_*
// environment variables, in increasing order of priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DataFileName is the name of the persisted timetable inside Root.
	DataFileName = "timetable_data.json"

	// ExportTextName is the file name of the plain-text export.
	ExportTextName = "timetable.txt"

	// ExportXLSXName is the file name of the spreadsheet export.
	ExportXLSXName = "timetable.xlsx"

	// ExportICSName is the file name of the calendar export.
	ExportICSName = "timetable.ics"
)

// Paths contains all the filesystem paths used by timetable.
type Paths struct {
	// Root is the base directory for all timetable data (default: ~/.timetable)
	Root string

	// DataFile is the default location of the persisted timetable
	DataFile string

	// Config is the path to the optional config file
	Config string

	// Env is the path to the optional .env file
	Env string
}

// DefaultPaths returns the default paths for timetable.
// Paths can be overridden with environment variables:
// - TIMETABLE_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("TIMETABLE_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".timetable")
	}

	return PathsAt(root), nil
}

// PathsAt returns the paths rooted at root.
func PathsAt(root string) *Paths {
	return &Paths{
		Root:     root,
		DataFile: filepath.Join(root, DataFileName),
		Config:   filepath.Join(root, "config.yaml"),
		Env:      filepath.Join(root, ".env"),
	}
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.Root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.Root, err)
	}
	return nil
}

// ExecutableDir returns the directory containing the running binary, or
// the working directory when it cannot be determined.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
