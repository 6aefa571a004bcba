package timetable

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"
)

const (
	// Free marks a slot with no assigned subject.
	Free = "Free"

	// Lunch marks a slot reserved as a break.
	Lunch = "Lunch"

	// SlotCount is the number of slots in every day.
	SlotCount = 6

	// LunchSlot is the slot conventionally used for lunch.
	LunchSlot = 3

	// SlotDuration is the length of every slot.
	SlotDuration = 55 * time.Minute
)

// Days lists the weekdays of a schedule in display order.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// slotTimings maps each slot index to its nominal time range.
var slotTimings = [SlotCount]string{
	"9:00-9:55 AM",
	"10:00-10:55 AM",
	"11:00-11:55 PM",
	"12:00-12:55 PM",
	"1:00-1:55 PM",
	"2:00-2:55 PM",
}

// slotStarts holds the start of each slot as hour and minute on a 24-hour clock.
var slotStarts = [SlotCount][2]int{{9, 0}, {10, 0}, {11, 0}, {12, 0}, {13, 0}, {14, 0}}

// batchTemplate is the day layout used for new empty batches.
var batchTemplate = [SlotCount]string{Free, Free, Lunch, Free, Free, Free}

// Schedule maps a weekday name to its ordered slot values.
type Schedule map[string][]string

// Timetable maps a batch name to its weekly schedule.
type Timetable map[string]Schedule

// SlotTime returns the nominal time range for a slot index, or "" when the
// index is out of range.
func SlotTime(slot int) string {
	if slot < 0 || slot >= SlotCount {
		return ""
	}
	return slotTimings[slot]
}

// SlotStart returns the start of a slot on a 24-hour clock. Out of range
// indices return 0, 0.
func SlotStart(slot int) (hour, minute int) {
	if !ValidSlot(slot) {
		return 0, 0
	}
	return slotStarts[slot][0], slotStarts[slot][1]
}

// ValidSlot reports whether slot is a valid slot index.
func ValidSlot(slot int) bool {
	return slot >= 0 && slot < SlotCount
}

// ParseDay resolves user input to a canonical day name.
// It accepts full names case-insensitively and three-letter abbreviations.
func ParseDay(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, day := range Days {
		if strings.EqualFold(s, day) || strings.EqualFold(s, day[:3]) {
			return day, true
		}
	}
	return "", false
}

// NewEmptySchedule returns a week built from the new-batch template.
func NewEmptySchedule() Schedule {
	s := make(Schedule, len(Days))
	for _, day := range Days {
		s[day] = slices.Clone(batchTemplate[:])
	}
	return s
}

// Default returns the schedule seeded when no data file exists.
func Default() Timetable {
	return Timetable{
		"Batch A": Schedule{
			"Monday":    {"C Programming", "Linux Lab", Free, Lunch, "Managing Self", Free},
			"Tuesday":   {"Problem Solving", "Engineering Maths", "Environmental Studies", Lunch, "Engineering Maths", "C Programming"},
			"Wednesday": {"C Programming", Free, "Engineering Maths", Lunch, Free, Free},
			"Thursday":  {"Problem Solving", Free, "Physics", Lunch, "Engineering Maths", Free},
			"Friday":    {"Environmental Studies", "C Programming", Free, Lunch, "Linux Lab", "Problem Solving"},
		},
	}
}

// FreeSlots returns the indices of slots whose value is exactly Free.
func FreeSlots(slots []string) []int {
	free := []int{}
	for i, v := range slots {
		if v == Free {
			free = append(free, i)
		}
	}
	return free
}

// BatchNames returns the batch names in sorted order.
func (t Timetable) BatchNames() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of the timetable.
func (t Timetable) Clone() Timetable {
	out := make(Timetable, len(t))
	for name, s := range t {
		out[name] = s.Clone()
	}
	return out
}

// Clone returns a deep copy of the schedule.
func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	for day, slots := range s {
		out[day] = slices.Clone(slots)
	}
	return out
}

// Validate checks that every batch has exactly the five weekdays and that
// every day has SlotCount values.
func (t Timetable) Validate() error {
	for _, name := range t.BatchNames() {
		if name == "" {
			return fmt.Errorf("batch with empty name")
		}
		if err := t[name].Validate(); err != nil {
			return fmt.Errorf("batch %q: %w", name, err)
		}
	}
	return nil
}

// Validate checks the day set and slot count of a schedule.
func (s Schedule) Validate() error {
	if len(s) != len(Days) {
		return fmt.Errorf("expected %d days, got %d", len(Days), len(s))
	}
	for _, day := range Days {
		slots, ok := s[day]
		if !ok {
			return fmt.Errorf("missing day %s", day)
		}
		if len(slots) != SlotCount {
			return fmt.Errorf("%s: expected %d slots, got %d", day, SlotCount, len(slots))
		}
	}
	return nil
}
