package gridcell

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_TCell(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected tcell.Color
	}{
		{"named", Named(NamedRed), tcell.PaletteColor(1)},
		{"bright", Named(NamedBrightWhite), tcell.PaletteColor(15)},
		{"indexed", Indexed(202), tcell.PaletteColor(202)},
		{"rgb", Spec(10, 20, 30), tcell.NewRGBColor(10, 20, 30)},
		{"foreground", Named(NamedForeground), tcell.ColorDefault},
		{"cursor", Named(NamedCursor), tcell.ColorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.color.TCell())
		})
	}
}

func TestCell_Style(t *testing.T) {
	c := Cell{
		Char:  'x',
		Fg:    Named(NamedGreen),
		Bg:    Spec(1, 2, 3),
		Flags: FlagBoldItalic | FlagInverse | FlagStrikeout | FlagDim | FlagDottedUnderline,
	}

	fg, bg, attr := c.Style().Decompose()
	assert.Equal(t, tcell.PaletteColor(2), fg)
	assert.Equal(t, tcell.NewRGBColor(1, 2, 3), bg)
	for _, a := range []tcell.AttrMask{
		tcell.AttrBold, tcell.AttrItalic, tcell.AttrReverse,
		tcell.AttrStrikeThrough, tcell.AttrDim, tcell.AttrUnderline,
	} {
		assert.NotZero(t, attr&a, "attr %d", a)
	}

	_, _, attr = NewCell().Style().Decompose()
	assert.Zero(t, attr&(tcell.AttrBold|tcell.AttrUnderline|tcell.AttrReverse))
}

func TestBlit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(4, 2)

	g := NewGrid(6, 3, EmptyCell)
	g.WriteString(0, 0, "e\u0301中", EmptyCell)
	hidden := NewCell()
	hidden.Flags = FlagHidden
	g.WriteString(0, 1, "s", hidden)
	g.WriteString(4, 0, "zz", EmptyCell)

	Blit(screen, g)

	mainc, combc, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'e', mainc)
	assert.Equal(t, []rune{'\u0301'}, combc)

	mainc, _, _, width := screen.GetContent(1, 0)
	assert.Equal(t, '中', mainc)
	assert.Equal(t, 2, width)

	mainc, _, _, _ = screen.GetContent(0, 1)
	assert.Equal(t, ' ', mainc, "hidden cells are drawn blank")
}
