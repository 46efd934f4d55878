package tui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/rapport/pkg/app"
	"tableflip.dev/rapport/pkg/grid"
	"tableflip.dev/rapport/pkg/timesheet"
)

// Run launches the editor and blocks until it exits.
func Run(svc *app.Service, sheet timesheet.Sheet, clip grid.Clipboard) error {
	p := tea.NewProgram(New(svc, sheet, clip), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
