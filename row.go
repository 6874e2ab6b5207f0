package gridcell

import "strings"

// LineLength is implemented by rows that can report their occupied width.
type LineLength interface {
	LineLength() int
}

// Row is a fixed-width run of cells.
//
// occ marks how far cells may have been written since the last reset; cells
// at or past it still hold what the last reset left there.
type Row struct {
	cells []Cell
	occ   int
}

// NewRow creates a row of blank cells with template's background.
func NewRow(columns int, template Cell) *Row {
	cells := make([]Cell, columns)
	for i := range cells {
		cells[i].Reset(template)
	}
	return &Row{cells: cells}
}

// Len returns the number of columns.
func (r *Row) Len() int { return len(r.cells) }

// Cell returns a copy of the cell at x, or EmptyCell if out of bounds.
func (r *Row) Cell(x int) Cell {
	if x < 0 || x >= len(r.cells) {
		return EmptyCell
	}
	return r.cells[x]
}

// At returns the cell at x for in-place mutation, or nil if out of bounds.
func (r *Row) At(x int) *Cell {
	if x < 0 || x >= len(r.cells) {
		return nil
	}
	r.occ = max(r.occ, x+1)
	return &r.cells[x]
}

// Set replaces the cell at x. Does nothing if out of bounds.
func (r *Row) Set(x int, c Cell) {
	if p := r.At(x); p != nil {
		*p = c
	}
}

// Cells returns the row's cells. Callers must not modify them; use At.
func (r *Row) Cells() []Cell {
	return r.cells
}

// Reset blanks the row with template's background and returns how many cells
// were actually written.
func (r *Row) Reset(template Cell) int {
	n := ResetOccupied[Cell, Color](r.cells, r.occ, template)
	r.occ = 0
	return n
}

// IsClear reports whether every cell is empty.
func (r *Row) IsClear() bool {
	for _, c := range r.cells {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// LineLength returns the occupied width. A row ending in a wrap marker is
// fully occupied; otherwise trailing spaces without combining characters do
// not count, whatever their flags.
func (r *Row) LineLength() int {
	n := len(r.cells)
	if n == 0 {
		return 0
	}
	if r.cells[n-1].Flags.Contains(FlagWrapline) {
		return n
	}
	for i := n - 1; i >= 0; i-- {
		c := &r.cells[i]
		if c.Char != ' ' || c.HasZerowidth() {
			return i + 1
		}
	}
	return 0
}

// Clone duplicates the row. Attached payloads are shared, not copied.
func (r *Row) Clone() *Row {
	cells := make([]Cell, len(r.cells))
	copy(cells, r.cells)
	return &Row{cells: cells, occ: r.occ}
}

// Resize grows or shrinks the row to columns. New cells are reset with template.
func (r *Row) Resize(columns int, template Cell) {
	old := len(r.cells)
	switch {
	case columns < old:
		// Clear dangling references so dropped payloads can be collected.
		for i := columns; i < old; i++ {
			r.cells[i] = Cell{}
		}
		r.cells = r.cells[:columns]
		r.occ = min(r.occ, columns)
	case columns > old:
		for i := old; i < columns; i++ {
			var c Cell
			c.Reset(template)
			r.cells = append(r.cells, c)
		}
		// Untouched cells must share one discriminant for Reset to skip them.
		if old > 0 && r.cells[old-1].Discriminant() != template.Discriminant() {
			r.occ = max(r.occ, old)
		}
	}
}

// String returns the row's text up to its line length.
func (r *Row) String() string {
	var sb strings.Builder
	for _, c := range r.cells[:r.LineLength()] {
		if c.Flags.Intersects(FlagWideCharSpacer | FlagLeadingWideCharSpacer) {
			continue
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
