// Package tui is the interactive grid editor for a month's report:
// 31 day-rows, three von/bis pairs plus a remark per row, spreadsheet
// style selection and copy/paste, and export to the filled form.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/rapport/pkg/app"
	"tableflip.dev/rapport/pkg/grid"
	"tableflip.dev/rapport/pkg/timesheet"
)

type mode int

const (
	modeGrid mode = iota
	modeTemplateName
	modeConfirmClear
)

// remarkCol is the focus column just right of the time grid. It is
// addressable by navigation but never part of a selection rectangle.
const remarkCol = grid.MaxCol + 1

// focusPoint is a cursor over the editable columns 0..6 (6 = remark).
type focusPoint struct {
	day int
	col int
}

func (f focusPoint) coord() (grid.Coord, bool) {
	c := grid.Coord{Day: f.day, Col: f.col}
	return c, c.Valid()
}

// Model contains UI state.
type Model struct {
	svc *app.Service
	ctx context.Context

	sheet timesheet.Sheet
	focus focusPoint
	sel   grid.Selection
	clip  grid.Clipboard

	mode  mode
	input textinput.Model
	name  textinput.Model

	mouseHeld bool
	exporting bool
	status    string

	termWidth  int
	termHeight int
}

// New creates the editor for a sheet.
func New(svc *app.Service, sheet timesheet.Sheet, clip grid.Clipboard) Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Prompt = ""
	ti.Focus()
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	ni := textinput.New()
	ni.CharLimit = 64
	ni.Prompt = "template name: "

	m := Model{
		svc:    svc,
		ctx:    context.Background(),
		sheet:  sheet,
		focus:  focusPoint{day: 1, col: 0},
		clip:   clip,
		mode:   modeGrid,
		input:  ti,
		name:   ni,
		status: "arrows/enter move, shift+arrows select, ctrl+c copy, ctrl+v paste, ctrl+e export, ctrl+t template, ctrl+l clear, ctrl+q quit",
	}
	m.loadFocus()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Sheet returns the current sheet state.
func (m Model) Sheet() timesheet.Sheet {
	return m.sheet
}

// fieldAt reads the raw value under a focus point, remark included.
func (m *Model) fieldAt(f focusPoint) string {
	if f.col == remarkCol {
		return m.sheet.Day(f.day).Remark
	}
	c, ok := f.coord()
	if !ok {
		return ""
	}
	return grid.Field(m.sheet, c)
}

// commitFocus writes the input's value back into the sheet, verbatim.
func (m *Model) commitFocus() {
	value := m.input.Value()
	if m.focus.col == remarkCol {
		m.sheet = m.sheet.SetRemark(m.focus.day, value)
		return
	}
	if c, ok := m.focus.coord(); ok {
		m.sheet = grid.SetField(m.sheet, c, value)
	}
}

// loadFocus points the input at the focused cell's value.
func (m *Model) loadFocus() {
	m.input.SetValue(m.fieldAt(m.focus))
	m.input.CursorEnd()
}

// moveFocus commits the current cell and moves the cursor. Moves off
// the grid are no-ops. Returns whether the focus moved.
func (m *Model) moveFocus(mv grid.Move) bool {
	next := m.focus
	switch mv {
	case grid.MoveUp:
		next.day--
	case grid.MoveDown:
		next.day++
	case grid.MoveLeft:
		next.col--
	case grid.MoveRight:
		next.col++
	}
	if next.day < grid.MinDay || next.day > grid.MaxDay || next.col < grid.MinCol || next.col > remarkCol {
		return false
	}
	m.commitFocus()
	m.focus = next
	m.loadFocus()
	return true
}

// extendSelection grows the selection toward the moved focus,
// anchoring at the old focus on the first extension.
func (m *Model) extendSelection(mv grid.Move) {
	anchor, ok := m.focus.coord()
	if !ok {
		return
	}
	if m.sel.Phase() != grid.PhaseSelecting {
		m.sel.Clear()
		m.sel.CellDown(anchor)
	}
	if !m.moveFocus(mv) {
		return
	}
	if c, ok := m.focus.coord(); ok {
		m.sel.CellEnter(c)
	}
}

// copySelection serializes the selection to the clipboard.
func (m *Model) copySelection() {
	rect, ok := m.sel.Rect()
	if !ok {
		m.status = "nothing selected"
		return
	}
	m.commitFocus()
	text, count := grid.Serialize(m.sheet, rect)
	if err := m.clip.WriteText(text); err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.status = statusCopied(count)
}

// pasteAt applies clipboard text at the focused cell. Single-cell text
// falls through to normal field entry at the cursor.
func (m *Model) pasteAt() {
	text, err := m.clip.ReadText()
	if err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	if !grid.IsBlock(text) {
		m.input.SetValue(m.input.Value() + text)
		m.input.CursorEnd()
		return
	}
	target, ok := m.focus.coord()
	if !ok {
		m.status = "paste needs a time cell"
		return
	}
	m.commitFocus()
	var written int
	m.sheet, written = grid.ApplyPaste(m.sheet, target, text)
	m.loadFocus()
	m.status = statusPasted(written)
}

func (m *Model) clearAll() {
	cleared := timesheet.NewSheet(m.sheet.Year, m.sheet.Month)
	cleared.Info = m.sheet.Info
	m.sheet = cleared
	m.loadFocus()
	m.status = "cleared"
}

func monthTitle(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month, year)
}
