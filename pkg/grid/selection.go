package grid

// Phase is the selection state.
type Phase int

const (
	// PhaseIdle means no selection exists.
	PhaseIdle Phase = iota
	// PhaseSelecting means the pointer is held and the endpoint follows it.
	PhaseSelecting
	// PhaseSelected means the rectangle is frozen until the next interaction.
	PhaseSelected
)

// Selection tracks a rectangular selection over the grid. The anchor is
// fixed at pointer-down; only the endpoint moves while selecting.
type Selection struct {
	phase  Phase
	anchor Coord
	end    Coord
}

// Phase returns the current state.
func (s *Selection) Phase() Phase {
	return s.phase
}

// Active reports whether a selection rectangle exists.
func (s *Selection) Active() bool {
	return s.phase != PhaseIdle
}

// CellDown starts a new selection at the cell, replacing any previous
// one. Both anchor and endpoint move to the cell.
func (s *Selection) CellDown(c Coord) {
	if !c.Valid() {
		return
	}
	s.phase = PhaseSelecting
	s.anchor = c
	s.end = c
}

// CellEnter moves the endpoint while the pointer is held. Ignored in any
// other phase.
func (s *Selection) CellEnter(c Coord) {
	if s.phase != PhaseSelecting || !c.Valid() {
		return
	}
	s.end = c
}

// Release freezes the rectangle. The release may happen anywhere, not
// just over a grid cell.
func (s *Selection) Release() {
	if s.phase != PhaseSelecting {
		return
	}
	s.phase = PhaseSelected
}

// Clear drops the selection (Escape, or a click outside the grid).
func (s *Selection) Clear() {
	s.phase = PhaseIdle
	s.anchor = Coord{}
	s.end = Coord{}
}

// Rect returns the normalized rectangle; ok is false while idle.
func (s *Selection) Rect() (Rect, bool) {
	if s.phase == PhaseIdle {
		return Rect{}, false
	}
	return NewRect(s.anchor, s.end), true
}

// Contains reports whether the cell lies inside the current rectangle.
func (s *Selection) Contains(c Coord) bool {
	r, ok := s.Rect()
	return ok && r.Contains(c)
}
