package engine

import "github.com/danieljhkim/timetable/internal/export"

// AssignRequest represents a request to put a subject into a slot.
type AssignRequest struct {
	Batch   string `json:"batch" validate:"required"`
	Day     string `json:"day" validate:"required,weekday"`
	Slot    int    `json:"slot" validate:"min=0,max=5"`
	Subject string `json:"subject" validate:"required"`

	// ConfirmLunch allows replacing a Lunch slot
	ConfirmLunch bool `json:"-"`
}

// ClearRequest represents a request to remove a subject from a slot.
type ClearRequest struct {
	Batch string `json:"batch" validate:"required"`
	Day   string `json:"day" validate:"required,weekday"`
	Slot  int    `json:"slot" validate:"min=0,max=5"`
}

// FreeSlotsRequest represents a request to list the free slots of a day.
type FreeSlotsRequest struct {
	Batch string `json:"batch" validate:"required"`
	Day   string `json:"day" validate:"required,weekday"`
}

// AddBatchRequest represents a request to create an empty batch.
type AddBatchRequest struct {
	Name string
}

// RemoveBatchRequest represents a request to delete a batch.
type RemoveBatchRequest struct {
	Name string
}

// AutoGenerateRequest represents a request to create a randomly filled batch.
type AutoGenerateRequest struct {
	Name string
}

// ShowRequest represents a request to view the timetable.
type ShowRequest struct {
	// Batch limits the result to one batch; empty means all
	Batch string
}

// ExportRequest represents a request to write a rendering to disk.
type ExportRequest struct {
	Format export.Format

	// Path overrides the default output location
	Path string
}
