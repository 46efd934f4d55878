package grid

import "testing"

func TestSelectionLifecycle(t *testing.T) {
	var s Selection

	if s.Active() {
		t.Fatalf("fresh selection should be idle")
	}

	s.CellDown(Coord{Day: 5, Col: 1})
	if s.Phase() != PhaseSelecting {
		t.Fatalf("expected selecting after cell down, got %v", s.Phase())
	}
	r, ok := s.Rect()
	if !ok || r.Cells() != 1 {
		t.Fatalf("expected single-cell rect after cell down, got %+v ok=%v", r, ok)
	}

	s.CellEnter(Coord{Day: 2, Col: 4})
	r, _ = s.Rect()
	if r.MinDay != 2 || r.MaxDay != 5 || r.MinCol != 1 || r.MaxCol != 4 {
		t.Fatalf("rect not normalized: %+v", r)
	}

	s.Release()
	if s.Phase() != PhaseSelected {
		t.Fatalf("expected selected after release, got %v", s.Phase())
	}

	// frozen rectangle ignores further enters
	s.CellEnter(Coord{Day: 10, Col: 0})
	r, _ = s.Rect()
	if r.MaxDay != 5 {
		t.Fatalf("selected rect should be frozen, got %+v", r)
	}

	s.Clear()
	if s.Active() {
		t.Fatalf("expected idle after clear")
	}
}

func TestSelectionIgnoresInvalidCells(t *testing.T) {
	var s Selection
	s.CellDown(Coord{Day: 0, Col: 0})
	if s.Active() {
		t.Fatalf("cell down off-grid should not start a selection")
	}

	s.CellDown(Coord{Day: 1, Col: 0})
	s.CellEnter(Coord{Day: 1, Col: 6})
	r, _ := s.Rect()
	if r.MaxCol != 0 {
		t.Fatalf("off-grid enter should be ignored, got %+v", r)
	}
}

func TestReleaseWithoutSelecting(t *testing.T) {
	var s Selection
	s.Release()
	if s.Active() {
		t.Fatalf("release while idle should stay idle")
	}
}

func TestContains(t *testing.T) {
	var s Selection
	s.CellDown(Coord{Day: 3, Col: 2})
	s.CellEnter(Coord{Day: 5, Col: 3})
	s.Release()

	if !s.Contains(Coord{Day: 4, Col: 2}) {
		t.Fatalf("expected membership for interior cell")
	}
	if s.Contains(Coord{Day: 6, Col: 2}) {
		t.Fatalf("unexpected membership for exterior cell")
	}
}
