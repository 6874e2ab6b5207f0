package gridcell

import (
	"io"
	"os"
	"strings"
)

// Print writes the grid to stdout with ANSI styling.
func Print(g *Grid) error {
	return Fprint(os.Stdout, g)
}

// Sprint renders the grid to a string with ANSI styling.
func Sprint(g *Grid) string {
	var sb strings.Builder
	Fprint(&sb, g)
	return sb.String()
}

// Fprint writes the grid line by line with ANSI styling. Each row stops at
// its line length and clear rows at the bottom are omitted.
func Fprint(w io.Writer, g *Grid) error {
	lastRow := -1
	for y := g.Height() - 1; y >= 0; y-- {
		if !g.Row(y).IsClear() {
			lastRow = y
			break
		}
	}

	var sb strings.Builder
	for y := 0; y <= lastRow; y++ {
		writeRowAnsi(g.Row(y), &sb)
		sb.WriteString(resetStr)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// writeRowAnsi writes the row's styled text without cursor movement.
func writeRowAnsi(row *Row, sb *strings.Builder) {
	var current *Cell
	cells := row.Cells()
	// Trailing blanks that still show something (inverse, strikeout) count.
	n := row.LineLength()
	for i := len(cells) - 1; i >= n; i-- {
		if !cells[i].IsEmpty() {
			n = i + 1
			break
		}
	}
	for i := 0; i < n; i++ {
		c := cells[i]
		if c.Flags.Contains(FlagWideCharSpacer) {
			continue
		}
		if current == nil || !sameStyle(*current, c) {
			sb.WriteString(resetStr)
			SGR(c, sb)
			current = &cells[i]
		}
		if c.Flags.Contains(FlagLeadingWideCharSpacer) {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(c.String())
	}
}
