package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/danieljhkim/timetable/internal/timetable"
)

const (
	// maxSheetName is Excel's sheet name length limit.
	maxSheetName = 31

	defaultSheet = "Sheet1"
)

// sheetNameReplacer strips characters Excel forbids in sheet names.
var sheetNameReplacer = strings.NewReplacer(
	":", "-", "\\", "-", "/", "-", "?", "", "*", "", "[", "(", "]", ")",
)

// WriteXLSX writes tt as a workbook with one sheet per batch. Each sheet
// has a row per weekday and a column per slot.
func WriteXLSX(w io.Writer, tt timetable.Timetable, createdAt time.Time) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   "Timetable",
		Created: createdAt.UTC().Format(time.RFC3339),
		Creator: "timetable",
	}); err != nil {
		return fmt.Errorf("failed to set document properties: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	names := tt.BatchNames()
	if len(names) == 0 {
		if err := f.SetCellValue(defaultSheet, "A1", "No batches"); err != nil {
			return err
		}
		return writeWorkbook(f, w)
	}

	used := make(map[string]bool, len(names))
	for i, name := range names {
		sheet := sheetName(name, used)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return fmt.Errorf("failed to rename sheet for %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet for %q: %w", name, err)
		}

		if err := writeScheduleSheet(f, sheet, tt[name], headerStyle); err != nil {
			return fmt.Errorf("failed to write sheet for %q: %w", name, err)
		}
	}
	f.SetActiveSheet(0)

	return writeWorkbook(f, w)
}

// writeScheduleSheet fills one batch sheet.
func writeScheduleSheet(f *excelize.File, sheet string, s timetable.Schedule, headerStyle int) error {
	if err := f.SetColWidth(sheet, "A", "A", 12); err != nil {
		return err
	}
	last := colName(timetable.SlotCount)
	if err := f.SetColWidth(sheet, "B", last, 22); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A1", "Day"); err != nil {
		return err
	}
	for slot := 0; slot < timetable.SlotCount; slot++ {
		header := fmt.Sprintf("Slot %d\n%s", slot, timetable.SlotTime(slot))
		if err := f.SetCellValue(sheet, cell(colName(slot+1), 1), header); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", cell(last, 1), headerStyle); err != nil {
		return err
	}

	row := 2
	for _, day := range timetable.Days {
		slots, ok := s[day]
		if !ok {
			continue
		}
		if err := f.SetCellValue(sheet, cell("A", row), day); err != nil {
			return err
		}
		for i, subject := range slots {
			if err := f.SetCellValue(sheet, cell(colName(i+1), row), subject); err != nil {
				return err
			}
		}
		row++
	}

	return nil
}

func writeWorkbook(f *excelize.File, w io.Writer) error {
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// sheetName returns a unique, Excel-safe sheet name for a batch.
func sheetName(batch string, used map[string]bool) string {
	base := strings.TrimSpace(sheetNameReplacer.Replace(batch))
	base = strings.Trim(base, "'")
	if base == "" {
		base = "Batch"
	}
	base = truncate(base, maxSheetName)

	name := base
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		name = truncate(base, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// colName converts a zero-based column index to a column letter.
func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
