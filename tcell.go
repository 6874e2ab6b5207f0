package gridcell

import (
	"github.com/gdamore/tcell/v2"
)

// TCell converts c for drawing on a tcell screen. Semantic colors become
// tcell.ColorDefault so the terminal's own theme applies.
func (c Color) TCell() tcell.Color {
	switch c.Kind {
	case ColorKindIndexed:
		return tcell.PaletteColor(int(c.Index))
	case ColorKindRGB:
		return tcell.NewRGBColor(int32(c.RGB.R), int32(c.RGB.G), int32(c.RGB.B))
	}
	if c.Name <= NamedBrightWhite {
		return tcell.PaletteColor(int(c.Name))
	}
	return tcell.ColorDefault
}

// Style returns the tcell style for the cell's colors and flags.
func (c Cell) Style() tcell.Style {
	st := tcell.StyleDefault.
		Foreground(c.Fg.TCell()).
		Background(c.Bg.TCell()).
		Bold(c.Flags.Contains(FlagBold)).
		Dim(c.Flags.Contains(FlagDim)).
		Italic(c.Flags.Contains(FlagItalic)).
		Reverse(c.Flags.Contains(FlagInverse)).
		StrikeThrough(c.Flags.Contains(FlagStrikeout))

	switch {
	case c.Flags.Contains(FlagDoubleUnderline):
		st = st.Underline(tcell.UnderlineStyleDouble)
	case c.Flags.Contains(FlagUndercurl):
		st = st.Underline(tcell.UnderlineStyleCurly)
	case c.Flags.Contains(FlagDottedUnderline):
		st = st.Underline(tcell.UnderlineStyleDotted)
	case c.Flags.Contains(FlagDashedUnderline):
		st = st.Underline(tcell.UnderlineStyleDashed)
	case c.Flags.Contains(FlagUnderline):
		st = st.Underline(true)
	}
	return st
}

// Blit draws the visible cells of g onto screen, starting at the top-left
// corner. Wide char spacers are left to the glyph before them and hidden
// cells are drawn blank. Cells beyond the screen size are clipped.
func Blit(screen tcell.Screen, g *Grid) {
	sw, sh := screen.Size()
	for y := 0; y < min(g.Height(), sh); y++ {
		row := g.Row(y)
		for x := 0; x < min(row.Len(), sw); x++ {
			c := row.Cell(x)
			if c.Flags.Contains(FlagWideCharSpacer) {
				continue
			}
			if c.Flags.Contains(FlagHidden) {
				screen.SetContent(x, y, ' ', nil, c.Style())
				continue
			}
			screen.SetContent(x, y, c.Char, c.Zerowidth(), c.Style())
		}
	}
}
