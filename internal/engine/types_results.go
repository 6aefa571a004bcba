package engine

import (
	"time"

	"github.com/danieljhkim/timetable/internal/export"
	"github.com/danieljhkim/timetable/internal/timetable"
)

// AssignResult represents the result of an assignment.
type AssignResult struct {
	Batch   string `json:"batch"`
	Day     string `json:"day"`
	Slot    int    `json:"slot"`
	Time    string `json:"time"`
	Subject string `json:"subject"`

	// Previous is the value the slot held before (Free or Lunch)
	Previous string `json:"previous"`
}

// ClearResult represents the result of clearing a slot.
type ClearResult struct {
	Batch string `json:"batch"`
	Day   string `json:"day"`
	Slot  int    `json:"slot"`
	Time  string `json:"time"`

	// Removed is the subject that was taken out
	Removed string `json:"removed"`

	// Now is the value the slot reverted to (Free or Lunch)
	Now string `json:"now"`
}

// FreeSlot is one free slot with its time range.
type FreeSlot struct {
	Slot int    `json:"slot"`
	Time string `json:"time"`
}

// FreeSlotsResult lists the free slots of a day in slot order.
type FreeSlotsResult struct {
	Batch string     `json:"batch"`
	Day   string     `json:"day"`
	Slots []FreeSlot `json:"slots"`
}

// Indices returns the slot indices of the result.
func (r *FreeSlotsResult) Indices() []int {
	out := make([]int, len(r.Slots))
	for i, s := range r.Slots {
		out[i] = s.Slot
	}
	return out
}

// BatchResult represents a created batch.
type BatchResult struct {
	Name     string             `json:"name"`
	Schedule timetable.Schedule `json:"schedule"`
}

// RemoveBatchResult represents a deleted batch.
type RemoveBatchResult struct {
	Name    string `json:"name"`
	Removed bool   `json:"removed"`
}

// ShowResult holds a copy of the requested part of the timetable.
type ShowResult struct {
	Timetable timetable.Timetable `json:"timetable"`
}

// ExportResult describes a written export.
type ExportResult struct {
	Path       string        `json:"path"`
	Format     export.Format `json:"format"`
	Batches    int           `json:"batches"`
	Bytes      int           `json:"bytes"`
	ExportedAt time.Time     `json:"exportedAt"`

	// Replaced is set when a file already existed at Path
	Replaced bool `json:"replaced"`
}
