package gridcell

import (
	"slices"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// tabWidth is the distance between tab stops.
const tabWidth = 8

// DefaultMaxHistory is the scrollback size used when none is configured.
const DefaultMaxHistory = 10000

// penMask lists the flags a pen may carry into written cells. Layout flags
// are owned by the grid.
const penMask = flagsAll &^ (FlagWrapline | FlagWideChar | FlagWideCharSpacer | FlagLeadingWideCharSpacer)

// Grid is a fixed-size screen of rows with bounded scrollback.
type Grid struct {
	columns, lines int
	rows           []*Row
	history        []*Row
	maxHistory     int
}

// NewGrid creates a grid of blank cells with template's background.
func NewGrid(columns, lines int, template Cell) *Grid {
	rows := make([]*Row, lines)
	for i := range rows {
		rows[i] = NewRow(columns, template)
	}
	return &Grid{
		columns:    columns,
		lines:      lines,
		rows:       rows,
		maxHistory: DefaultMaxHistory,
	}
}

// SetMaxHistory bounds the scrollback. Zero disables it.
func (g *Grid) SetMaxHistory(n int) {
	g.maxHistory = max(n, 0)
	g.trimHistory()
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.columns && y >= 0 && y < g.lines
}

// Width returns the grid width.
func (g *Grid) Width() int { return g.columns }

// Height returns the grid height.
func (g *Grid) Height() int { return g.lines }

// Row returns the visible row y, or nil if out of bounds.
func (g *Grid) Row(y int) *Row {
	if y < 0 || y >= g.lines {
		return nil
	}
	return g.rows[y]
}

// History returns scrolled-off rows, oldest first. Callers must not modify
// them. Rows stay valid after they are trimmed from the scrollback.
func (g *Grid) History() []*Row {
	return slices.Clone(g.history)
}

// Get returns the cell at (x, y), or EmptyCell if out of bounds.
func (g *Grid) Get(x, y int) Cell {
	if !g.inBounds(x, y) {
		return EmptyCell
	}
	return g.rows[y].Cell(x)
}

// Set sets the cell at (x, y). Does nothing if out of bounds.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.inBounds(x, y) {
		return
	}
	g.rows[y].Set(x, c)
}

// WriteRune writes r with pen's colors and style at (x, y) and returns the
// column after it. Zero-width runes attach to the previous glyph. A wide rune
// that does not fit in the last column leaves a leading spacer there instead.
func (g *Grid) WriteRune(x, y int, r rune, pen Cell) int {
	if y < 0 || y >= g.lines || x < 0 || x > g.columns || unicode.IsControl(r) {
		return x
	}
	w := runewidth.RuneWidth(r)
	if w == 0 {
		g.attachZerowidth(x, y, r)
		return x
	}
	if x == g.columns {
		return x
	}
	row := g.rows[y]

	if w > 1 && x+1 >= g.columns {
		breakWide(row, x)
		c := row.At(x)
		c.Reset(pen)
		c.Flags = pen.Flags&penMask | FlagLeadingWideCharSpacer
		return x + 1
	}

	breakWide(row, x)
	c := Cell{Char: r, Fg: pen.Fg, Bg: pen.Bg, Flags: pen.Flags & penMask}
	if w == 1 {
		row.Set(x, c)
		return x + 1
	}

	breakWide(row, x+1)
	c.Flags.Insert(FlagWideChar)
	row.Set(x, c)
	spacer := Cell{Char: ' ', Fg: pen.Fg, Bg: pen.Bg, Flags: pen.Flags&penMask | FlagWideCharSpacer}
	row.Set(x+1, spacer)
	return x + 2
}

// breakWide detaches the cell at x from any wide pair it belongs to, so that
// it can be overwritten without leaving half a glyph behind.
func breakWide(row *Row, x int) {
	c := row.Cell(x)
	switch {
	case c.Flags.Contains(FlagWideCharSpacer) && x > 0:
		row.At(x - 1).ClearWide()
	case c.Flags.Contains(FlagWideChar) && x+1 < row.Len():
		row.At(x + 1).Flags.Remove(FlagWideCharSpacer)
	}
}

func (g *Grid) attachZerowidth(x, y int, r rune) {
	col := x - 1
	if col < 0 {
		// Attach across a soft wrap to the end of the previous row.
		if y == 0 || !g.rows[y-1].Cell(g.columns-1).Flags.Contains(FlagWrapline) {
			return
		}
		y--
		col = g.columns - 1
	}
	row := g.rows[y]
	if row.Cell(col).Flags.Contains(FlagWideCharSpacer) && col > 0 {
		col--
	}
	row.At(col).PushZerowidth(r)
}

// WriteString writes s starting at (x, y), soft-wrapping at the right edge
// and scrolling at the bottom. '\n' moves to the start of the next row, '\r'
// to the start of the current one and '\t' to the next tab stop. Other
// control characters are dropped.
// Returns the cursor position after the last rune.
func (g *Grid) WriteString(x, y int, s string, pen Cell) (int, int) {
	if g.columns == 0 || g.lines == 0 {
		return x, y
	}
	for _, r := range s {
		switch r {
		case '\n':
			x = 0
			y = g.nextLine(y, pen)
			continue
		case '\r':
			x = 0
			continue
		case '\t':
			if x < g.columns {
				x = min((x/tabWidth+1)*tabWidth, g.columns-1)
			}
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		w := runewidth.RuneWidth(r)
		if w > 0 && x+w > g.columns {
			if x < g.columns {
				x = g.WriteRune(x, y, r, pen)
			}
			g.rows[y].At(g.columns - 1).Flags.Insert(FlagWrapline)
			x = 0
			y = g.nextLine(y, pen)
		}
		x = g.WriteRune(x, y, r, pen)
	}
	return x, y
}

func (g *Grid) nextLine(y int, template Cell) int {
	if y+1 < g.lines {
		return y + 1
	}
	g.ScrollUp(1, template)
	return g.lines - 1
}

// WriteAnsi is WriteString for text carrying SGR escape sequences. pen is the
// style that SGR 0 returns to.
func (g *Grid) WriteAnsi(x, y int, s string, pen Cell) (int, int) {
	for _, seg := range ParseAnsiLine(s, pen) {
		x, y = g.WriteString(x, y, seg.Text, seg.Pen)
	}
	return x, y
}

// ScrollUp moves the top n rows into history and appends blank rows with
// template's background at the bottom.
func (g *Grid) ScrollUp(n int, template Cell) {
	n = min(n, g.lines)
	for i := 0; i < n; i++ {
		top := g.rows[0]
		copy(g.rows, g.rows[1:])

		// History callers may hold rows that reached the scrollback; only the
		// top row is reused, and only when scrollback is off.
		blank := top
		if g.maxHistory > 0 {
			g.history = append(g.history, top)
			g.trimHistory()
			blank = NewRow(g.columns, template)
		}
		if blank.Len() != g.columns {
			blank.Resize(g.columns, template)
		}
		blank.Reset(template)
		g.rows[g.lines-1] = blank
	}
}

// trimHistory drops the oldest rows beyond maxHistory.
func (g *Grid) trimHistory() {
	excess := len(g.history) - g.maxHistory
	if excess <= 0 {
		return
	}
	clear(g.history[:excess])
	g.history = append(g.history[:0], g.history[excess:]...)
	logger.Debug("scrollback trimmed", "dropped", excess, "kept", len(g.history))
}

// Clear resets every visible row and returns the number of cells written.
func (g *Grid) Clear(template Cell) int {
	written := 0
	for _, row := range g.rows {
		written += row.Reset(template)
	}
	return written
}

// Resize changes the visible dimensions. Rows are truncated or padded with
// cells reset from template; removed lines are dropped from the bottom.
func (g *Grid) Resize(columns, lines int, template Cell) {
	logger.Debug("grid resize",
		"from_columns", g.columns, "from_lines", g.lines,
		"to_columns", columns, "to_lines", lines)

	for _, row := range g.rows {
		row.Resize(columns, template)
	}
	switch {
	case lines < g.lines:
		clear(g.rows[lines:])
		g.rows = g.rows[:lines]
	case lines > g.lines:
		for i := g.lines; i < lines; i++ {
			g.rows = append(g.rows, NewRow(columns, template))
		}
	}
	g.columns, g.lines = columns, lines
}

// Snapshot duplicates the visible cells. Attached payloads are shared with
// the grid; later writes to the grid never show through.
func (g *Grid) Snapshot() [][]Cell {
	snap := make([][]Cell, g.lines)
	for y, row := range g.rows {
		snap[y] = append([]Cell(nil), row.Cells()...)
	}
	return snap
}

// Text returns the visible text. Soft-wrapped rows are joined, trailing
// blanks on each line and trailing empty lines are dropped.
func (g *Grid) Text() string {
	var sb strings.Builder
	pending := 0
	for _, row := range g.rows {
		line := row.String()
		wrapped := row.Len() > 0 && row.Cell(row.Len()-1).Flags.Contains(FlagWrapline)
		if line == "" && !wrapped {
			pending++
			continue
		}
		for ; pending > 0; pending-- {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
		if !wrapped {
			pending++
		}
	}
	return sb.String()
}

// ToDebugString returns a debug string representation (characters only).
func (g *Grid) ToDebugString() string {
	var sb strings.Builder
	for y := 0; y < g.lines; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.columns; x++ {
			sb.WriteRune(g.Get(x, y).Char)
		}
	}
	return sb.String()
}
