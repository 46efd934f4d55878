package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/rapport/pkg/grid"
)

// messages
type errMsg struct{ err error }
type exportDoneMsg struct{ path string }

func statusCopied(count int) string {
	if count == 1 {
		return "copied 1 cell"
	}
	return fmt.Sprintf("copied %d cells", count)
}

func statusPasted(count int) string {
	if count == 1 {
		return "pasted 1 cell"
	}
	return fmt.Sprintf("pasted %d cells", count)
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.exporting = false
		m.status = "ERR: " + msg.err.Error()
	case exportDoneMsg:
		m.exporting = false
		m.status = "exported " + msg.path
	case tea.MouseClickMsg:
		m.handleMouseClick(msg.X, msg.Y)
	case tea.MouseMotionMsg:
		m.handleMouseMotion(msg.X, msg.Y)
	case tea.MouseReleaseMsg:
		m.mouseHeld = false
		m.sel.Release()
	case tea.KeyPressMsg:
		switch m.mode {
		case modeConfirmClear:
			switch msg.String() {
			case "y", "Y":
				m.clearAll()
				m.mode = modeGrid
			case "n", "N", "esc":
				m.mode = modeGrid
				m.status = "clear cancelled"
			}
		case modeTemplateName:
			switch msg.String() {
			case "enter":
				name := m.name.Value()
				if tpl, err := m.svc.SaveTemplate(m.ctx, name, m.sheet.Info); err != nil {
					m.status = "ERR: " + err.Error()
				} else {
					m.status = "template " + tpl.Name + " saved"
				}
				m.mode = modeGrid
				m.name.Reset()
				m.name.Blur()
			case "esc":
				m.mode = modeGrid
				m.name.Reset()
				m.name.Blur()
				m.status = "save cancelled"
			default:
				var cmd tea.Cmd
				m.name, cmd = m.name.Update(msg)
				cmds = append(cmds, cmd)
			}
		default:
			cmds = append(cmds, m.handleGridKey(msg)...)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleGridKey(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch msg.String() {
	case "ctrl+q":
		cmds = append(cmds, tea.Quit)
	case "esc":
		if m.sel.Active() {
			m.sel.Clear()
			m.status = "selection cleared"
		} else {
			cmds = append(cmds, tea.Quit)
		}
	case "enter", "down":
		m.sel.Clear()
		m.moveFocus(grid.MoveDown)
	case "up":
		m.sel.Clear()
		m.moveFocus(grid.MoveUp)
	case "right":
		// leave the cell only from the end of its text
		if m.input.Position() >= len(m.input.Value()) {
			m.sel.Clear()
			m.moveFocus(grid.MoveRight)
		} else {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	case "left":
		if m.input.Position() == 0 {
			m.sel.Clear()
			m.moveFocus(grid.MoveLeft)
		} else {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	case "shift+up":
		m.extendSelection(grid.MoveUp)
	case "shift+down":
		m.extendSelection(grid.MoveDown)
	case "shift+left":
		m.extendSelection(grid.MoveLeft)
	case "shift+right":
		m.extendSelection(grid.MoveRight)
	case "ctrl+c":
		m.copySelection()
	case "ctrl+v":
		m.pasteAt()
	case "ctrl+e":
		if m.exporting {
			m.status = "export already running"
			break
		}
		m.commitFocus()
		m.exporting = true
		m.status = "exporting..."
		cmds = append(cmds, m.exportCmd())
	case "ctrl+t":
		m.commitFocus()
		m.mode = modeTemplateName
		m.name.Focus()
	case "ctrl+l":
		m.mode = modeConfirmClear
		m.status = "clear all entries? y/n"
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return cmds
}

// exportCmd runs the export off the update loop. The trigger stays
// disabled until the done message lands.
func (m *Model) exportCmd() tea.Cmd {
	svc := m.svc
	ctx := m.ctx
	sheet := m.sheet
	return func() tea.Msg {
		path, err := svc.Export(ctx, sheet, "")
		if err != nil {
			return errMsg{err}
		}
		return exportDoneMsg{path: path}
	}
}

func (m *Model) handleMouseClick(x, y int) {
	if c, ok := m.cellAt(x, y); ok {
		m.mouseHeld = true
		m.sel.CellDown(c)
		m.commitFocus()
		m.focus = focusPoint{day: c.Day, col: c.Col}
		m.loadFocus()
		return
	}
	if day, ok := m.remarkAt(x, y); ok {
		m.sel.Clear()
		m.commitFocus()
		m.focus = focusPoint{day: day, col: remarkCol}
		m.loadFocus()
		return
	}
	// click on a non-grid area drops the selection
	m.sel.Clear()
	m.mouseHeld = false
}

func (m *Model) handleMouseMotion(x, y int) {
	if !m.mouseHeld {
		return
	}
	if c, ok := m.cellAt(x, y); ok {
		m.sel.CellEnter(c)
	}
}
