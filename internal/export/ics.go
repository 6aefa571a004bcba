package export

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	ics "github.com/arran4/golang-ical"

	"github.com/danieljhkim/timetable/internal/timetable"
)

const (
	icsProductID    = "-//timetable//timetable export//EN"
	icsUIDDomain    = "timetable"
	icsLocalTimeFmt = "20060102T150405"
)

// WriteICS writes tt as an iCalendar feed. Every slot holding a subject
// becomes an event repeating weekly from the week that contains now.
// Free and Lunch slots are left out.
//
// Start and end are wall-clock slot times, never UTC instants. When now
// carries a named zone they are tagged with it as TZID; otherwise they are
// floating.
func WriteICS(w io.Writer, tt timetable.Timetable, now time.Time) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName("Timetable")

	var zone []ics.PropertyParameter
	if tzid := now.Location().String(); tzid != "Local" && tzid != "UTC" {
		zone = append(zone, ics.WithTZID(tzid))
	}

	year, month, day := weekStart(now).Date()
	for _, name := range tt.BatchNames() {
		for offset, weekday := range timetable.Days {
			for slot, subject := range tt[name][weekday] {
				if subject == timetable.Free || subject == timetable.Lunch {
					continue
				}

				hour, minute := timetable.SlotStart(slot)
				start := time.Date(year, month, day+offset, hour, minute, 0, 0, now.Location())

				event := cal.AddEvent(eventUID(name, weekday, slot))
				event.SetDtStampTime(now)
				event.SetProperty(ics.ComponentPropertyDtStart, start.Format(icsLocalTimeFmt), zone...)
				event.SetProperty(ics.ComponentPropertyDtEnd, start.Add(timetable.SlotDuration).Format(icsLocalTimeFmt), zone...)
				event.SetSummary(subject)
				event.SetDescription(fmt.Sprintf("%s, slot %d (%s)", name, slot, timetable.SlotTime(slot)))
				event.AddRrule("FREQ=WEEKLY")
			}
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}

// weekStart returns midnight of the Monday on or before t.
func weekStart(t time.Time) time.Time {
	year, month, day := t.Date()
	sinceMonday := (int(t.Weekday()) + 6) % 7
	return time.Date(year, month, day-sinceMonday, 0, 0, 0, 0, t.Location())
}

// eventUID builds a UID that stays the same across exports.
func eventUID(batch, day string, slot int) string {
	slug := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return '-'
	}, batch)
	return fmt.Sprintf("%s-%s-%d@%s", slug, strings.ToLower(day), slot, icsUIDDomain)
}
