package export

import (
	"bytes"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	ics "github.com/arran4/golang-ical"

	"github.com/danieljhkim/timetable/internal/timetable"
)

func TestWriteICS(t *testing.T) {
	tt := timetable.Timetable{
		"Batch B": timetable.NewEmptySchedule(),
		"Batch A": timetable.Default()["Batch A"],
	}
	now := time.Date(2024, 1, 17, 10, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := WriteICS(&buf, tt, now); err != nil {
		t.Fatalf("WriteICS failed: %v", err)
	}

	cal, err := ics.ParseCalendar(&buf)
	if err != nil {
		t.Fatalf("ParseCalendar failed: %v", err)
	}

	events := cal.Events()
	if len(events) != 17 {
		t.Fatalf("expected 17 events, got %d", len(events))
	}

	var first *ics.VEvent
	for _, e := range events {
		if e.Id() == "batch-a-monday-0@timetable" {
			first = e
		}
		if s := e.GetProperty(ics.ComponentPropertySummary); s != nil {
			if s.Value == timetable.Free || s.Value == timetable.Lunch {
				t.Errorf("unexpected %s event %s", s.Value, e.Id())
			}
		}
	}
	if first == nil {
		t.Fatal("missing event for Batch A Monday slot 0")
	}

	if got := first.GetProperty(ics.ComponentPropertySummary).Value; got != "C Programming" {
		t.Errorf("SUMMARY = %q, want C Programming", got)
	}
	if got := first.GetProperty(ics.ComponentPropertyRrule).Value; got != "FREQ=WEEKLY" {
		t.Errorf("RRULE = %q, want FREQ=WEEKLY", got)
	}

	start := first.GetProperty(ics.ComponentPropertyDtStart)
	if start.Value != "20240115T090000" {
		t.Errorf("DTSTART = %q, want 20240115T090000", start.Value)
	}
	if _, ok := start.ICalParameters["TZID"]; ok {
		t.Errorf("UTC export should use floating times, got TZID %v", start.ICalParameters["TZID"])
	}
	if end := first.GetProperty(ics.ComponentPropertyDtEnd).Value; end != "20240115T095500" {
		t.Errorf("DTEND = %q, want 20240115T095500", end)
	}
}

func TestWriteICS_NamedZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation failed: %v", err)
	}
	tt := timetable.Timetable{"Batch A": timetable.Default()["Batch A"]}
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, loc)

	var buf bytes.Buffer
	if err := WriteICS(&buf, tt, now); err != nil {
		t.Fatalf("WriteICS failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "DTSTART;TZID=America/New_York:20240304T090000") {
		t.Errorf("expected Monday 9:00 in New York time, got:\n%s", out)
	}
	if strings.Contains(out, "DTSTART:") || strings.Contains(out, "T140000Z") {
		t.Errorf("start times must not be pinned to UTC:\n%s", out)
	}

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ParseCalendar failed: %v", err)
	}
	for _, e := range cal.Events() {
		if e.Id() != "batch-a-monday-0@timetable" {
			continue
		}
		start, err := e.GetStartAt()
		if err != nil {
			t.Fatalf("GetStartAt failed: %v", err)
		}
		if start.Hour() != 9 || start.Location().String() != "America/New_York" {
			t.Errorf("start = %v, want 9:00 America/New_York", start)
		}
	}
}

func TestWriteICS_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteICS(&buf, timetable.Timetable{}, time.Now()); err != nil {
		t.Fatalf("WriteICS failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "BEGIN:VCALENDAR") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "BEGIN:VEVENT") {
		t.Error("expected no events")
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday", time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"wednesday", time.Date(2024, 1, 17, 10, 30, 0, 0, time.UTC), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2024, 1, 21, 23, 0, 0, 0, time.UTC), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"across month", time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC), time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := weekStart(tt.in); !got.Equal(tt.want) {
				t.Errorf("weekStart(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEventUID(t *testing.T) {
	tests := []struct {
		batch string
		day   string
		slot  int
		want  string
	}{
		{"Batch A", "Monday", 0, "batch-a-monday-0@timetable"},
		{"CS/1", "Friday", 5, "cs-1-friday-5@timetable"},
	}

	for _, tt := range tests {
		if got := eventUID(tt.batch, tt.day, tt.slot); got != tt.want {
			t.Errorf("eventUID(%q, %q, %d) = %q, want %q", tt.batch, tt.day, tt.slot, got, tt.want)
		}
	}
}
