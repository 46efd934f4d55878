// Package clipboard adapts the system clipboard to the grid
// controller's capability interface.
package clipboard

import atotto "github.com/atotto/clipboard"

// System reads and writes the OS clipboard.
type System struct{}

func (System) ReadText() (string, error) {
	return atotto.ReadAll()
}

func (System) WriteText(text string) error {
	return atotto.WriteAll(text)
}
