package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/timetable/internal/timetable"
)

// AddBatch creates a batch whose days all follow the empty template.
func (e *Engine) AddBatch(ctx context.Context, req *AddBatchRequest) (*BatchResult, error) {
	tt, err := e.checkNewBatchName(req.Name)
	if err != nil {
		return nil, err
	}

	schedule := timetable.NewEmptySchedule()
	tt[req.Name] = schedule
	e.log.Info("batch added", zap.String("batch", req.Name))

	if err := e.persist(); err != nil {
		return nil, err
	}

	return &BatchResult{Name: req.Name, Schedule: schedule.Clone()}, nil
}

// RemoveBatch deletes a batch. Removing an unknown batch is a validation
// error rather than a no-op.
func (e *Engine) RemoveBatch(ctx context.Context, req *RemoveBatchRequest) (*RemoveBatchResult, error) {
	tt, err := e.load()
	if err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, NewValidationError("no batch selected")
	}
	if _, ok := tt[req.Name]; !ok {
		return nil, NewValidationError("batch %q not found", req.Name)
	}

	delete(tt, req.Name)
	e.log.Info("batch removed", zap.String("batch", req.Name))

	if err := e.persist(); err != nil {
		return nil, err
	}

	return &RemoveBatchResult{Name: req.Name, Removed: true}, nil
}

// AutoGenerate creates a batch with every slot drawn independently from
// timetable.Subjects, except the lunch slot which is always Lunch.
func (e *Engine) AutoGenerate(ctx context.Context, req *AutoGenerateRequest) (*BatchResult, error) {
	tt, err := e.checkNewBatchName(req.Name)
	if err != nil {
		return nil, err
	}

	schedule := make(timetable.Schedule, len(timetable.Days))
	for _, day := range timetable.Days {
		slots := make([]string, timetable.SlotCount)
		for i := range slots {
			if i == timetable.LunchSlot {
				slots[i] = timetable.Lunch
				continue
			}
			subject, err := e.picker.Pick(timetable.Subjects)
			if err != nil {
				return nil, fmt.Errorf("failed to pick subject: %w", err)
			}
			slots[i] = subject
		}
		schedule[day] = slots
	}

	tt[req.Name] = schedule
	e.log.Info("batch generated", zap.String("batch", req.Name))

	if err := e.persist(); err != nil {
		return nil, err
	}

	return &BatchResult{Name: req.Name, Schedule: schedule.Clone()}, nil
}

// ListBatches returns the batch names in sorted order.
func (e *Engine) ListBatches(ctx context.Context) ([]string, error) {
	tt, err := e.load()
	if err != nil {
		return nil, err
	}
	return tt.BatchNames(), nil
}

// Show returns a copy of the timetable, or of one batch when req.Batch is set.
func (e *Engine) Show(ctx context.Context, req *ShowRequest) (*ShowResult, error) {
	tt, err := e.load()
	if err != nil {
		return nil, err
	}

	if req.Batch == "" {
		return &ShowResult{Timetable: tt.Clone()}, nil
	}

	schedule, ok := tt[req.Batch]
	if !ok {
		return nil, NewValidationError("batch %q not found", req.Batch)
	}
	return &ShowResult{Timetable: timetable.Timetable{req.Batch: schedule.Clone()}}, nil
}
