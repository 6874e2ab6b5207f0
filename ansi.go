package gridcell

import (
	"strconv"
	"strings"
)

const (
	ESC = "\x1b"
	CSI = ESC + "["
)

// Pre-computed ANSI escape sequences
const (
	csiStr    = "\x1b["
	resetStr  = "\x1b[0m"
	boldStr   = "\x1b[1m"
	dimStr    = "\x1b[2m"
	italicStr = "\x1b[3m"
	underStr  = "\x1b[4m"
	invStr    = "\x1b[7m"
	hiddenStr = "\x1b[8m"
	strikeStr = "\x1b[9m"
)

// Underline style sequences, checked in order.
var underlineCodes = [...]struct {
	flag Flags
	code string
}{
	{FlagDoubleUnderline, "\x1b[4:2m"},
	{FlagUndercurl, "\x1b[4:3m"},
	{FlagDottedUnderline, "\x1b[4:4m"},
	{FlagDashedUnderline, "\x1b[4:5m"},
	{FlagUnderline, underStr},
}

// MoveCursor returns the ANSI code to move the cursor to (x, y).
// ANSI uses 1-based coordinates.
func MoveCursor(x, y int) string {
	return csiStr + strconv.Itoa(y+1) + ";" + strconv.Itoa(x+1) + "H"
}

// ClearScreen returns the ANSI code to clear the screen.
func ClearScreen() string {
	return CSI + "2J" + CSI + "H"
}

// ColorToAnsi converts a Color to its SGR escape code. Semantic colors map to
// the terminal default.
func ColorToAnsi(c Color, isFg bool) string {
	base := 30
	if !isFg {
		base = 40
	}
	switch c.Kind {
	case ColorKindRGB:
		return csiStr + strconv.Itoa(base+8) + ";2;" + strconv.Itoa(int(c.RGB.R)) + ";" +
			strconv.Itoa(int(c.RGB.G)) + ";" + strconv.Itoa(int(c.RGB.B)) + "m"
	case ColorKindIndexed:
		return csiStr + strconv.Itoa(base+8) + ";5;" + strconv.Itoa(int(c.Index)) + "m"
	}
	switch {
	case c.Name <= NamedWhite:
		return csiStr + strconv.Itoa(base+int(c.Name)) + "m"
	case c.Name <= NamedBrightWhite:
		return csiStr + strconv.Itoa(base+60+int(c.Name-NamedBrightBlack)) + "m"
	}
	return csiStr + strconv.Itoa(base+9) + "m"
}

// SGR writes the escape codes selecting c's colors and style.
func SGR(c Cell, sb *strings.Builder) {
	if c.Flags.Contains(FlagBold) {
		sb.WriteString(boldStr)
	}
	if c.Flags.Contains(FlagDim) {
		sb.WriteString(dimStr)
	}
	if c.Flags.Contains(FlagItalic) {
		sb.WriteString(italicStr)
	}
	for _, u := range underlineCodes {
		if c.Flags.Contains(u.flag) {
			sb.WriteString(u.code)
			break
		}
	}
	if c.Flags.Contains(FlagInverse) {
		sb.WriteString(invStr)
	}
	if c.Flags.Contains(FlagHidden) {
		sb.WriteString(hiddenStr)
	}
	if c.Flags.Contains(FlagStrikeout) {
		sb.WriteString(strikeStr)
	}
	sb.WriteString(ColorToAnsi(c.Fg, true))
	sb.WriteString(ColorToAnsi(c.Bg, false))
}

func sameStyle(a, b Cell) bool {
	return a.Fg == b.Fg && a.Bg == b.Bg && a.Flags&penMask == b.Flags&penMask
}

// CellRun represents a run of consecutive cells.
type CellRun struct {
	X     int
	Y     int
	Cells []Cell
}

// RunToAnsi renders a run of cells to ANSI, writing directly to builder.
// Wide char spacers are skipped; the wide glyph before them covers both columns.
func RunToAnsi(run CellRun, sb *strings.Builder) {
	sb.WriteString(MoveCursor(run.X, run.Y))

	var current *Cell

	for i := range run.Cells {
		c := run.Cells[i]
		if c.Flags.Contains(FlagWideCharSpacer) {
			if i == 0 {
				// Run starts mid-glyph; keep the column in step.
				sb.WriteString(MoveCursor(run.X+1, run.Y))
			}
			continue
		}

		if current == nil || !sameStyle(*current, c) {
			sb.WriteString(resetStr)
			SGR(c, sb)
			current = &run.Cells[i]
		}

		sb.WriteString(c.String())
	}
}

// RunsToAnsi renders all runs to a single ANSI string.
func RunsToAnsi(runs []CellRun) string {
	if len(runs) == 0 {
		return resetStr
	}

	// Pre-allocate: estimate ~20 bytes per cell average
	totalCells := 0
	for _, run := range runs {
		totalCells += len(run.Cells)
	}

	var sb strings.Builder
	sb.Grow(totalCells*20 + len(runs)*15)

	for _, run := range runs {
		RunToAnsi(run, &sb)
	}

	sb.WriteString(resetStr)
	return sb.String()
}
