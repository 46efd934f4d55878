package grid

import (
	"testing"
	"time"

	"tableflip.dev/rapport/pkg/timesheet"
)

func sampleSheet() timesheet.Sheet {
	s := timesheet.NewSheet(2026, time.March)
	s = SetField(s, Coord{Day: 1, Col: 0}, "08:00")
	s = SetField(s, Coord{Day: 1, Col: 1}, "12:00")
	s = SetField(s, Coord{Day: 2, Col: 0}, "09:00")
	s = SetField(s, Coord{Day: 2, Col: 1}, "17:15")
	return s
}

func TestSerializeRowMajor(t *testing.T) {
	s := sampleSheet()
	text, count := Serialize(s, NewRect(Coord{Day: 1, Col: 0}, Coord{Day: 2, Col: 1}))
	if text != "08:00\t12:00\n09:00\t17:15" {
		t.Fatalf("unexpected serialization: %q", text)
	}
	if count != 4 {
		t.Fatalf("expected 4 cells, got %d", count)
	}
}

func TestSerializeIncludesEmptyCells(t *testing.T) {
	s := sampleSheet()
	text, _ := Serialize(s, NewRect(Coord{Day: 1, Col: 0}, Coord{Day: 1, Col: 2}))
	if text != "08:00\t12:00\t" {
		t.Fatalf("unexpected serialization: %q", text)
	}
}

func TestCopyPasteRoundTrip(t *testing.T) {
	s := sampleSheet()
	rect := NewRect(Coord{Day: 1, Col: 0}, Coord{Day: 2, Col: 1})
	text, _ := Serialize(s, rect)

	target := Coord{Day: 10, Col: 2}
	s, written := ApplyPaste(s, target, text)
	if written != 4 {
		t.Fatalf("expected 4 cells written, got %d", written)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			src := Coord{Day: rect.MinDay + i, Col: rect.MinCol + j}
			dst := Coord{Day: target.Day + i, Col: target.Col + j}
			if Field(s, src) != Field(s, dst) {
				t.Fatalf("mismatch at %+v: %q != %q", dst, Field(s, src), Field(s, dst))
			}
		}
	}
}

func TestPasteTruncatesAtGridEdge(t *testing.T) {
	s := timesheet.NewSheet(2026, time.March)
	s, written := ApplyPaste(s, Coord{Day: 30, Col: 5}, "08:00\t09:00\n10:00\t11:00")

	if written != 2 {
		t.Fatalf("expected 2 cells written, got %d", written)
	}
	if got := Field(s, Coord{Day: 30, Col: 5}); got != "08:00" {
		t.Fatalf("expected 08:00 at (30,5), got %q", got)
	}
	if got := Field(s, Coord{Day: 31, Col: 5}); got != "10:00" {
		t.Fatalf("expected 10:00 at (31,5), got %q", got)
	}
	// nothing wrapped back onto column 0
	if got := Field(s, Coord{Day: 30, Col: 0}); got != "" {
		t.Fatalf("unexpected wrap to column 0: %q", got)
	}
}

func TestPasteTrimsValues(t *testing.T) {
	s := timesheet.NewSheet(2026, time.March)
	s, _ = ApplyPaste(s, Coord{Day: 1, Col: 0}, "  08:00 \t 12:00\r")
	if got := Field(s, Coord{Day: 1, Col: 0}); got != "08:00" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if got := Field(s, Coord{Day: 1, Col: 1}); got != "12:00" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}

func TestIsBlock(t *testing.T) {
	if IsBlock("08:00") {
		t.Fatalf("single cell text should not be a block")
	}
	if !IsBlock("08:00\t09:00") || !IsBlock("08:00\n09:00") {
		t.Fatalf("delimited text should be a block")
	}
}

func TestApplyPasteInvalidTarget(t *testing.T) {
	s := timesheet.NewSheet(2026, time.March)
	s, written := ApplyPaste(s, Coord{Day: 0, Col: 0}, "08:00\t09:00")
	if written != 0 || !s.Empty() {
		t.Fatalf("paste at invalid target should be a no-op")
	}
}
