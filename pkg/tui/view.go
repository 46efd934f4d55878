package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"tableflip.dev/rapport/pkg/grid"
	"tableflip.dev/rapport/pkg/timesheet"
)

// Fixed layout geometry, shared by View and the mouse hit test.
const (
	gridTop    = 3 // rows above day 1: title, info, column header
	gridLeft   = 5 // "  1. "
	cellWidth  = 5
	cellPad    = 1
	cellSpan   = cellWidth + cellPad
	timeCols   = grid.MaxCol - grid.MinCol + 1
	totalLeft  = gridLeft + timeCols*cellSpan
	totalSpan  = 7
	remarkLeft = totalLeft + totalSpan
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Faint(true)
	selStyle    = lipgloss.NewStyle().Background(lipgloss.Color("24"))
	focusStyle  = lipgloss.NewStyle().Reverse(true)
	totalStyle  = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// cellAt maps terminal coordinates to a time cell.
func (m *Model) cellAt(x, y int) (grid.Coord, bool) {
	day := y - gridTop + 1
	if day < grid.MinDay || day > grid.MaxDay {
		return grid.Coord{}, false
	}
	if x < gridLeft || x >= totalLeft {
		return grid.Coord{}, false
	}
	col := (x - gridLeft) / cellSpan
	if col > grid.MaxCol {
		col = grid.MaxCol
	}
	return grid.Coord{Day: day, Col: col}, true
}

// remarkAt maps terminal coordinates to a remark cell's day.
func (m *Model) remarkAt(x, y int) (int, bool) {
	day := y - gridTop + 1
	if day < grid.MinDay || day > grid.MaxDay || x < remarkLeft {
		return 0, false
	}
	return day, true
}

// pad clips and fills by display width, not bytes, so umlauts and wide
// runes keep the fixed column geometry the mouse hit test relies on.
func pad(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

func (m *Model) renderCell(f focusPoint, width int) string {
	focused := m.mode == modeGrid && m.focus == f
	if focused {
		return m.input.View()
	}
	value := pad(m.fieldAt(f), width)
	if c, ok := f.coord(); ok && m.sel.Contains(c) {
		return selStyle.Render(value)
	}
	return value
}

// View renders the editor.
func (m Model) View() string {
	var b strings.Builder

	info := m.sheet.Info
	b.WriteString(titleStyle.Render("Stundenrapport — " + monthTitle(m.sheet.Year, m.sheet.Month)))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %s  PersNr %s  geb. %s", info.Name, info.Vorname, info.PersNr, info.GebDat)))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(" TAG  VON   BIS   VON   BIS   VON   BIS   TOTAL  BEMERKUNG"))
	b.WriteString("\n")

	for day := grid.MinDay; day <= grid.MaxDay; day++ {
		b.WriteString(fmt.Sprintf("%3d. ", day))
		for col := grid.MinCol; col <= grid.MaxCol; col++ {
			b.WriteString(m.renderCell(focusPoint{day: day, col: col}, cellWidth))
			b.WriteString(" ")
		}
		minutes := m.sheet.DayMinutes(day)
		if minutes > 0 {
			b.WriteString(totalStyle.Render(pad(timesheet.FormatMinutes(minutes), totalSpan-1)))
		} else {
			b.WriteString(strings.Repeat(" ", totalSpan-1))
		}
		b.WriteString(" ")
		b.WriteString(m.renderCell(focusPoint{day: day, col: remarkCol}, 20))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(totalStyle.Render(fmt.Sprintf("Total: %d Std %02d Min", m.sheet.TotalHours(), m.sheet.RemainderMinutes())))
	b.WriteString("\n")

	switch m.mode {
	case modeTemplateName:
		b.WriteString(m.name.View())
	case modeConfirmClear:
		b.WriteString(statusStyle.Render("clear all entries? y/n"))
	default:
		b.WriteString(statusStyle.Render(m.status))
	}

	return b.String()
}
