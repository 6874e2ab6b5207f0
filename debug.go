package gridcell

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DebugGrid prints every non-blank cell of the grid to stdout.
func DebugGrid(g *Grid) {
	FprintGrid(os.Stdout, g)
}

// SprintGrid returns the grid's cell dump as a string for debugging.
func SprintGrid(g *Grid) string {
	var sb strings.Builder
	FprintGrid(&sb, g)
	return sb.String()
}

// FprintGrid writes one header line per row followed by its cells.
func FprintGrid(w io.Writer, g *Grid) {
	for y := 0; y < g.Height(); y++ {
		row := g.Row(y)
		fmt.Fprintf(w, "row %d len=%d clear=%t\n", y, row.LineLength(), row.IsClear())
		FprintRow(w, row)
	}
}

// FprintRow writes the cells of row that differ from a reset cell, one per line.
func FprintRow(w io.Writer, row *Row) {
	for x, c := range row.Cells() {
		var blank Cell
		blank.Reset(c)
		if c.Equal(blank) {
			continue
		}
		line := fmt.Sprintf("  %d %q fg=%s bg=%s flags=%s", x, c.String(), c.Fg, c.Bg, c.Flags)
		if zw := c.Zerowidth(); zw != nil {
			line += fmt.Sprintf(" zerowidth=%U", zw)
		}
		fmt.Fprintln(w, line)
	}
}
