package grid

// Move is a keyboard navigation direction.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
)

// Navigate returns the coordinate one step in the given direction. The
// second return value is false when the move would leave the grid; such
// moves are no-ops for the caller.
func Navigate(c Coord, m Move) (Coord, bool) {
	next := c
	switch m {
	case MoveUp:
		next.Day--
	case MoveDown:
		next.Day++
	case MoveLeft:
		next.Col--
	case MoveRight:
		next.Col++
	}
	if !next.Valid() {
		return c, false
	}
	return next, true
}
