// Package timetable defines the weekly timetable data model.
//
// A Timetable maps a batch name to a Schedule, and a Schedule maps each of
// the five weekdays to exactly SlotCount slot values. A slot value is a
// subject name or one of the sentinels Free and Lunch.
//
// The on-disk layout is the JSON encoding of Timetable itself:
//
//	{ "Batch A": { "Monday": ["C Programming", "Free", ...], ... } }
//
// Every write path must keep five days per batch and SlotCount values per
// day. Validate checks this shape for data read from disk.
package timetable
