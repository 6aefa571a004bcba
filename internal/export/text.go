// Package export renders a timetable for people to read.
//
// Three formats are supported: a plain-text listing of every batch, day and
// slot with its time range, an xlsx workbook with one sheet per batch, and
// an iCalendar feed of weekly recurring events. Batches appear in sorted
// order and days in weekday order.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/danieljhkim/timetable/internal/timetable"
)

// Format names an export format.
type Format string

const (
	// FormatText is the plain-text listing.
	FormatText Format = "text"

	// FormatXLSX is an Excel workbook.
	FormatXLSX Format = "xlsx"

	// FormatICS is an iCalendar feed.
	FormatICS Format = "ics"
)

// ParseFormat resolves a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "txt", "":
		return FormatText, nil
	case FormatXLSX, "excel":
		return FormatXLSX, nil
	case FormatICS, "ical", "icalendar":
		return FormatICS, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want text, xlsx or ics)", s)
	}
}

// WriteText writes the plain-text listing of tt to w.
func WriteText(w io.Writer, tt timetable.Timetable) error {
	bw := bufio.NewWriter(w)
	for _, name := range tt.BatchNames() {
		fmt.Fprintf(bw, "%s:\n", name)
		writeScheduleText(bw, tt[name])
	}
	return bw.Flush()
}

// writeScheduleText writes the day blocks of one batch.
func writeScheduleText(w io.Writer, s timetable.Schedule) {
	for _, day := range timetable.Days {
		slots, ok := s[day]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s:\n", day)
		for i, subject := range slots {
			fmt.Fprintf(w, "    Slot %d (%s): %s\n", i, timetable.SlotTime(i), subject)
		}
	}
}
