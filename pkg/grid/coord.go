// Package grid models the addressable day/column space of the report
// form and the selection, clipboard, and navigation behavior over it.
package grid

import "tableflip.dev/rapport/pkg/timesheet"

const (
	// MinDay and MaxDay bound the 1-based day axis.
	MinDay = 1
	MaxDay = timesheet.DaysPerSheet
	// MinCol and MaxCol bound the column axis: three von/bis pairs.
	MinCol = 0
	MaxCol = 2*timesheet.SlotsPerDay - 1
)

// Coord addresses one time cell: a 1-based day and a column 0..5.
// Even columns are von fields, odd columns bis fields.
type Coord struct {
	Day int
	Col int
}

// Valid reports whether the coordinate lies on the grid.
func (c Coord) Valid() bool {
	return c.Day >= MinDay && c.Day <= MaxDay && c.Col >= MinCol && c.Col <= MaxCol
}

// Slot is the slot index the column belongs to.
func (c Coord) Slot() int {
	return c.Col / 2
}

// Bis reports whether the column addresses the end field of its slot.
func (c Coord) Bis() bool {
	return c.Col%2 == 1
}

// Rect is a normalized selection rectangle over grid coordinates.
type Rect struct {
	MinDay, MaxDay int
	MinCol, MaxCol int
}

// NewRect builds the normalized rectangle spanned by two anchor points.
func NewRect(a, b Coord) Rect {
	r := Rect{MinDay: a.Day, MaxDay: b.Day, MinCol: a.Col, MaxCol: b.Col}
	if r.MinDay > r.MaxDay {
		r.MinDay, r.MaxDay = r.MaxDay, r.MinDay
	}
	if r.MinCol > r.MaxCol {
		r.MinCol, r.MaxCol = r.MaxCol, r.MinCol
	}
	return r
}

// Contains reports rectangle membership.
func (r Rect) Contains(c Coord) bool {
	return c.Day >= r.MinDay && c.Day <= r.MaxDay && c.Col >= r.MinCol && c.Col <= r.MaxCol
}

// Cells is the number of cells covered.
func (r Rect) Cells() int {
	return (r.MaxDay - r.MinDay + 1) * (r.MaxCol - r.MinCol + 1)
}
