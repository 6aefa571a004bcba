package engine

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/danieljhkim/timetable/internal/timetable"
)

// Assign puts a subject into a slot.
// Rules by current slot value:
//   - Free: overwritten
//   - Lunch: a subject of "free" is refused; anything else needs
//     req.ConfirmLunch, otherwise ErrConfirmationRequired is returned
//   - any subject: refused with a *ConflictError listing the free slots
func (e *Engine) Assign(ctx context.Context, req *AssignRequest) (*AssignResult, error) {
	r := *req
	r.Subject = strings.TrimSpace(r.Subject)
	if err := e.validator.Struct(&r); err != nil {
		return nil, err
	}

	day, slots, err := e.daySlots(r.Batch, r.Day)
	if err != nil {
		return nil, err
	}
	if err := slotAt(slots, r.Slot); err != nil {
		return nil, err
	}

	current := slots[r.Slot]
	switch current {
	case timetable.Free:
	case timetable.Lunch:
		if strings.EqualFold(r.Subject, timetable.Free) {
			return nil, NewConflictError("cannot put a free slot in place of lunch")
		}
		if !r.ConfirmLunch {
			return nil, fmt.Errorf("%w: slot %d on %s is the lunch break for %s", ErrConfirmationRequired, r.Slot, day, r.Batch)
		}
	default:
		return nil, &ConflictError{
			Msg:       fmt.Sprintf("slot %d on %s is occupied by %q", r.Slot, day, current),
			FreeSlots: timetable.FreeSlots(slots),
		}
	}

	slots[r.Slot] = r.Subject
	e.log.Info("slot assigned",
		zap.String("batch", r.Batch),
		zap.String("day", day),
		zap.Int("slot", r.Slot),
		zap.String("subject", r.Subject),
		zap.String("previous", current),
	)

	if err := e.persist(); err != nil {
		return nil, err
	}

	return &AssignResult{
		Batch:    r.Batch,
		Day:      day,
		Slot:     r.Slot,
		Time:     timetable.SlotTime(r.Slot),
		Subject:  r.Subject,
		Previous: current,
	}, nil
}

// Clear removes the subject from a slot. The slot reverts to Lunch when the
// removed subject equals the value at the lunch slot of the same day, and to
// Free otherwise.
func (e *Engine) Clear(ctx context.Context, req *ClearRequest) (*ClearResult, error) {
	if err := e.validator.Struct(req); err != nil {
		return nil, err
	}

	day, slots, err := e.daySlots(req.Batch, req.Day)
	if err != nil {
		return nil, err
	}
	if err := slotAt(slots, req.Slot); err != nil {
		return nil, err
	}

	current := slots[req.Slot]
	if current == timetable.Free || current == timetable.Lunch {
		return nil, NewConflictError("slot %d on %s is %s; nothing to clear", req.Slot, day, current)
	}

	next := timetable.Free
	if current == slots[timetable.LunchSlot] {
		next = timetable.Lunch
	}
	slots[req.Slot] = next
	e.log.Info("slot cleared",
		zap.String("batch", req.Batch),
		zap.String("day", day),
		zap.Int("slot", req.Slot),
		zap.String("removed", current),
		zap.String("now", next),
	)

	if err := e.persist(); err != nil {
		return nil, err
	}

	return &ClearResult{
		Batch:   req.Batch,
		Day:     day,
		Slot:    req.Slot,
		Time:    timetable.SlotTime(req.Slot),
		Removed: current,
		Now:     next,
	}, nil
}

// FreeSlots lists the slots of a day whose value is exactly Free.
func (e *Engine) FreeSlots(ctx context.Context, req *FreeSlotsRequest) (*FreeSlotsResult, error) {
	if err := e.validator.Struct(req); err != nil {
		return nil, err
	}

	day, slots, err := e.daySlots(req.Batch, req.Day)
	if err != nil {
		return nil, err
	}

	free := timetable.FreeSlots(slots)
	result := &FreeSlotsResult{
		Batch: req.Batch,
		Day:   day,
		Slots: make([]FreeSlot, 0, len(free)),
	}
	for _, i := range free {
		result.Slots = append(result.Slots, FreeSlot{Slot: i, Time: timetable.SlotTime(i)})
	}

	return result, nil
}
