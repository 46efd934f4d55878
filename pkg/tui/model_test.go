package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"

	"tableflip.dev/rapport/pkg/grid"
	"tableflip.dev/rapport/pkg/timesheet"
)

type fakeClipboard struct {
	text    string
	readErr error
}

func (f *fakeClipboard) ReadText() (string, error) {
	return f.text, f.readErr
}

func (f *fakeClipboard) WriteText(text string) error {
	f.text = text
	return nil
}

func newModel(t *testing.T) (Model, *fakeClipboard) {
	t.Helper()
	clip := &fakeClipboard{}
	return New(nil, timesheet.NewSheet(2026, time.March), clip), clip
}

func TestMoveFocusCommitsValue(t *testing.T) {
	m, _ := newModel(t)

	m.input.SetValue("08:00")
	if ok := m.moveFocus(grid.MoveDown); !ok {
		t.Fatalf("expected move down to succeed")
	}

	if got := grid.Field(m.sheet, grid.Coord{Day: 1, Col: 0}); got != "08:00" {
		t.Fatalf("value not committed on move, got %q", got)
	}
	if m.focus.day != 2 || m.focus.col != 0 {
		t.Fatalf("unexpected focus %+v", m.focus)
	}
}

func TestMoveFocusBoundariesAreNoops(t *testing.T) {
	m, _ := newModel(t)

	if m.moveFocus(grid.MoveUp) {
		t.Fatalf("move up from day 1 should be a no-op")
	}
	if m.moveFocus(grid.MoveLeft) {
		t.Fatalf("move left from column 0 should be a no-op")
	}

	m.focus = focusPoint{day: 31, col: remarkCol}
	m.loadFocus()
	if m.moveFocus(grid.MoveDown) {
		t.Fatalf("move down from day 31 should be a no-op")
	}
	if m.moveFocus(grid.MoveRight) {
		t.Fatalf("move right from remark should be a no-op")
	}
}

func TestFocusReachesRemarkColumn(t *testing.T) {
	m, _ := newModel(t)

	m.focus = focusPoint{day: 4, col: grid.MaxCol}
	m.loadFocus()
	if ok := m.moveFocus(grid.MoveRight); !ok {
		t.Fatalf("expected move into the remark column")
	}
	m.input.SetValue("Ferien")
	m.commitFocus()

	if got := m.sheet.Day(4).Remark; got != "Ferien" {
		t.Fatalf("remark not committed, got %q", got)
	}
}

func TestExtendSelectionAndCopy(t *testing.T) {
	m, clip := newModel(t)
	m.sheet = grid.SetField(m.sheet, grid.Coord{Day: 1, Col: 0}, "08:00")
	m.sheet = grid.SetField(m.sheet, grid.Coord{Day: 2, Col: 0}, "09:00")
	m.loadFocus()

	m.extendSelection(grid.MoveDown)
	rect, ok := m.sel.Rect()
	if !ok || rect.Cells() != 2 {
		t.Fatalf("expected two-cell selection, got %+v ok=%v", rect, ok)
	}

	m.copySelection()
	if clip.text != "08:00\n09:00" {
		t.Fatalf("unexpected clipboard text %q", clip.text)
	}
	if m.status != "copied 2 cells" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestExtendSelectionStopsAtRemarkColumn(t *testing.T) {
	m, _ := newModel(t)
	m.focus = focusPoint{day: 1, col: grid.MaxCol}
	m.loadFocus()

	m.extendSelection(grid.MoveRight)

	rect, ok := m.sel.Rect()
	if !ok {
		t.Fatalf("expected selection anchor to exist")
	}
	if rect.MaxCol != grid.MaxCol {
		t.Fatalf("selection must not cover the remark column, got %+v", rect)
	}
}

func TestPasteBlockAtFocus(t *testing.T) {
	m, clip := newModel(t)
	clip.text = "08:00\t12:00\n09:00\t17:00"

	m.pasteAt()

	if got := grid.Field(m.sheet, grid.Coord{Day: 2, Col: 1}); got != "17:00" {
		t.Fatalf("paste not applied, got %q", got)
	}
	if m.status != "pasted 4 cells" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestPasteSingleCellFallsThrough(t *testing.T) {
	m, clip := newModel(t)
	clip.text = "08:00"
	m.input.SetValue("0")

	m.pasteAt()

	if !m.sheet.Empty() {
		t.Fatalf("single-cell paste must not write the grid")
	}
	if got := m.input.Value(); got != "008:00" {
		t.Fatalf("expected text to land in the input, got %q", got)
	}
}

func TestPasteTruncatesAtCorner(t *testing.T) {
	m, clip := newModel(t)
	clip.text = "08:00\t09:00\n10:00\t11:00"
	m.focus = focusPoint{day: 30, col: 5}
	m.loadFocus()

	m.pasteAt()

	if m.status != "pasted 2 cells" {
		t.Fatalf("unexpected status %q", m.status)
	}
	if got := grid.Field(m.sheet, grid.Coord{Day: 31, Col: 5}); got != "10:00" {
		t.Fatalf("expected 10:00 at (31,5), got %q", got)
	}
}

func TestClearAllKeepsPersonalInfo(t *testing.T) {
	m, _ := newModel(t)
	m.sheet.Info = timesheet.PersonalInfo{Name: "Muster"}
	m.sheet = grid.SetField(m.sheet, grid.Coord{Day: 1, Col: 0}, "08:00")

	m.clearAll()

	if !m.sheet.Empty() {
		t.Fatalf("expected empty grid after clear")
	}
	if m.sheet.Info.Name != "Muster" {
		t.Fatalf("personal info lost on clear")
	}
}

func TestCellAtMapsGridGeometry(t *testing.T) {
	m, _ := newModel(t)

	c, ok := m.cellAt(gridLeft, gridTop)
	if !ok || c != (grid.Coord{Day: 1, Col: 0}) {
		t.Fatalf("top-left cell mapping wrong: %+v ok=%v", c, ok)
	}

	c, ok = m.cellAt(gridLeft+cellSpan*5, gridTop+30)
	if !ok || c != (grid.Coord{Day: 31, Col: 5}) {
		t.Fatalf("bottom-right cell mapping wrong: %+v ok=%v", c, ok)
	}

	if _, ok := m.cellAt(gridLeft, gridTop+31); ok {
		t.Fatalf("row below the grid must not map to a cell")
	}
	if _, ok := m.cellAt(0, gridTop); ok {
		t.Fatalf("day label must not map to a cell")
	}
}

func TestPadKeepsDisplayWidth(t *testing.T) {
	for _, c := range []struct {
		in    string
		width int
	}{
		{"Müller", 4},
		{"Frühlingsferien", 20},
		{"ä", 3},
		{"", 5},
	} {
		got := pad(c.in, c.width)
		if w := runewidth.StringWidth(got); w != c.width {
			t.Fatalf("pad(%q, %d) has display width %d", c.in, c.width, w)
		}
	}
}

func TestRemarkWithUmlautsKeepsRowGeometry(t *testing.T) {
	m, _ := newModel(t)
	m.sheet = m.sheet.SetRemark(1, "Grüngürtel-Montage")
	m.sheet = m.sheet.SetRemark(2, "plain ascii remark!")
	m.focus = focusPoint{day: 5, col: 0}
	m.loadFocus()

	lines := strings.Split(m.View(), "\n")
	row1 := lines[gridTop]
	row2 := lines[gridTop+1]
	if runewidth.StringWidth(row1) != runewidth.StringWidth(row2) {
		t.Fatalf("rows with multibyte remarks misalign: %d vs %d",
			runewidth.StringWidth(row1), runewidth.StringWidth(row2))
	}
}

func TestViewShowsTotals(t *testing.T) {
	m, _ := newModel(t)
	m.sheet = grid.SetField(m.sheet, grid.Coord{Day: 1, Col: 0}, "08:00")
	m.sheet = grid.SetField(m.sheet, grid.Coord{Day: 1, Col: 1}, "16:30")
	m.loadFocus()

	view := m.View()
	if !strings.Contains(view, "8:30") {
		t.Fatalf("expected day total in view")
	}
	if !strings.Contains(view, "Total: 8 Std 30 Min") {
		t.Fatalf("expected monthly total in view")
	}
}
