package grid

import (
	"strings"

	"tableflip.dev/rapport/pkg/timesheet"
)

// Clipboard is the capability the controller needs from the host
// environment. The real adapter talks to the system clipboard; tests
// substitute an in-memory one.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(string) error
}

// Field reads the raw string at a coordinate. Out-of-range reads are empty.
func Field(s timesheet.Sheet, c Coord) string {
	if !c.Valid() {
		return ""
	}
	slot := s.Day(c.Day).Slots[c.Slot()]
	if c.Bis() {
		return slot.Bis
	}
	return slot.Von
}

// SetField writes the raw string at a coordinate, returning the updated
// sheet. Out-of-range writes are dropped.
func SetField(s timesheet.Sheet, c Coord, value string) timesheet.Sheet {
	if !c.Valid() {
		return s
	}
	return s.SetSlotField(c.Day, c.Slot(), c.Bis(), value)
}

// Serialize renders the rectangle as spreadsheet-style text: cells
// joined by tabs, rows by newlines, row-major, raw field values. The
// second return value is the number of cells covered.
func Serialize(s timesheet.Sheet, r Rect) (string, int) {
	rows := make([]string, 0, r.MaxDay-r.MinDay+1)
	for day := r.MinDay; day <= r.MaxDay; day++ {
		cells := make([]string, 0, r.MaxCol-r.MinCol+1)
		for col := r.MinCol; col <= r.MaxCol; col++ {
			cells = append(cells, Field(s, Coord{Day: day, Col: col}))
		}
		rows = append(rows, strings.Join(cells, "\t"))
	}
	return strings.Join(rows, "\n"), r.Cells()
}

// IsBlock reports whether clipboard text spans more than one cell.
// Single-cell text is not intercepted on paste; it falls through to
// normal field entry.
func IsBlock(text string) bool {
	return strings.ContainsAny(text, "\t\n")
}

// ApplyPaste writes tab/newline-delimited text into the sheet starting
// at target, incrementing day per row and column per cell. Values are
// trimmed before storage. Cells landing beyond day 31 or column 5 are
// silently dropped, never wrapped. Returns the updated sheet and the
// count of cells written.
func ApplyPaste(s timesheet.Sheet, target Coord, text string) (timesheet.Sheet, int) {
	if !target.Valid() {
		return s, 0
	}
	written := 0
	for i, line := range strings.Split(text, "\n") {
		for j, value := range strings.Split(line, "\t") {
			c := Coord{Day: target.Day + i, Col: target.Col + j}
			if !c.Valid() {
				continue
			}
			s = SetField(s, c, strings.TrimSpace(value))
			written++
		}
	}
	return s, written
}
