package gridcell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSprintGrid(t *testing.T) {
	g := NewGrid(4, 2, EmptyCell)
	g.WriteString(0, 0, "e\u0301", EmptyCell)

	out := SprintGrid(g)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	assert.Len(t, lines, 3)
	assert.Equal(t, "row 0 len=1 clear=false", lines[0])
	assert.Contains(t, lines[1], "fg=foreground bg=black flags=none")
	assert.Contains(t, lines[1], "zerowidth=[U+0301]")
	assert.Equal(t, "row 1 len=0 clear=true", lines[2])
}

func TestFprintRow_ShowsFlags(t *testing.T) {
	row := NewRow(3, EmptyCell)
	row.Set(1, Cell{Char: 'x', Fg: Indexed(9), Bg: DefaultBackground, Flags: FlagBoldItalic})

	var sb strings.Builder
	FprintRow(&sb, row)

	assert.Equal(t, "  1 \"x\" fg=9 bg=black flags=bold|italic\n", sb.String())
}
