package gridcell

import (
	"sort"
)

// CellChange represents a change at a specific position.
type CellChange struct {
	X    int
	Y    int
	Cell Cell
}

// DiffGrids returns the cell changes needed to turn from into to.
func DiffGrids(from, to *Grid) []CellChange {
	// Assume ~20% of cells change
	estimated := max((to.Width()*to.Height())/5, 64)
	return DiffGridsInto(from, to, make([]CellChange, 0, estimated))
}

// DiffGridsInto computes the diff between two grids, appending to the provided slice.
// This avoids allocation when the caller pre-allocates the result slice.
func DiffGridsInto(from, to *Grid, result []CellChange) []CellChange {
	width := min(from.Width(), to.Width())
	height := min(from.Height(), to.Height())

	for y := 0; y < height; y++ {
		fromRow, toRow := from.Row(y), to.Row(y)
		for x := 0; x < width; x++ {
			toCell := toRow.Cell(x)
			if !fromRow.Cell(x).Equal(toCell) {
				result = append(result, CellChange{X: x, Y: y, Cell: toCell})
			}
		}
		// New columns if `to` is wider
		for x := width; x < to.Width(); x++ {
			result = append(result, CellChange{X: x, Y: y, Cell: toRow.Cell(x)})
		}
	}

	// New rows if `to` is taller
	for y := height; y < to.Height(); y++ {
		for x, c := range to.Row(y).Cells() {
			result = append(result, CellChange{X: x, Y: y, Cell: c})
		}
	}

	return result
}

// GroupChangesByRow groups changes by row for more efficient cursor movement.
func GroupChangesByRow(changes []CellChange) map[int][]CellChange {
	byRow := make(map[int][]CellChange)

	for _, change := range changes {
		byRow[change.Y] = append(byRow[change.Y], change)
	}

	// Sort each row by x coordinate
	for _, row := range byRow {
		sort.Slice(row, func(i, j int) bool {
			return row[i].X < row[j].X
		})
	}

	return byRow
}

// FindRuns detects consecutive runs in changes for efficient output.
// A run is a sequence of consecutive x positions.
func FindRuns(changes []CellChange) []CellRun {
	if len(changes) == 0 {
		return nil
	}
	// Estimate: changes / 4 runs on average
	return FindRunsInto(changes, make([]CellRun, 0, len(changes)/4+1))
}

// FindRunsInto detects consecutive runs in changes, appending to the provided slice.
func FindRunsInto(changes []CellChange, result []CellRun) []CellRun {
	if len(changes) == 0 {
		return result
	}

	byRow := GroupChangesByRow(changes)

	// Get sorted row keys for deterministic order
	rows := make([]int, 0, len(byRow))
	for y := range byRow {
		rows = append(rows, y)
	}
	sort.Ints(rows)

	for _, y := range rows {
		var currentRun *CellRun

		for _, change := range byRow[y] {
			if currentRun != nil && change.X == currentRun.X+len(currentRun.Cells) {
				currentRun.Cells = append(currentRun.Cells, change.Cell)
				continue
			}
			if currentRun != nil {
				result = append(result, *currentRun)
			}
			cells := make([]Cell, 1, 16)
			cells[0] = change.Cell
			currentRun = &CellRun{X: change.X, Y: y, Cells: cells}
		}

		if currentRun != nil {
			result = append(result, *currentRun)
		}
	}

	return result
}
