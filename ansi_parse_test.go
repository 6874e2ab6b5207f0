package gridcell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripAnsi(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "hello"},
		{"\x1b[32mhello\x1b[0m", "hello"},
		{"\x1b[1;31mERROR\x1b[0m: something", "ERROR: something"},
		{"\x1b[38;5;196mred\x1b[0m", "red"},
		{"\x1b[38;2;255;0;0mrgb\x1b[0m", "rgb"},
		{"no escape codes here", "no escape codes here"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StripAnsi(tt.input), "StripAnsi(%q)", tt.input)
	}
}

func TestContainsAnsi(t *testing.T) {
	assert.False(t, ContainsAnsi("hello"))
	assert.True(t, ContainsAnsi("\x1b[32mhello\x1b[0m"))
}

func TestParseAnsiLine(t *testing.T) {
	base := NewCell()

	// No ANSI: single segment
	segs := ParseAnsiLine("hello", base)
	require.Len(t, segs, 1)
	assert.Equal(t, "hello", segs[0].Text)

	// Green text + reset
	segs = ParseAnsiLine("\x1b[32mhello\x1b[0m world", base)
	require.Len(t, segs, 2)
	assert.Equal(t, "hello", segs[0].Text)
	assert.Equal(t, Named(NamedGreen), segs[0].Pen.Fg)
	assert.Equal(t, " world", segs[1].Text)
	assert.Equal(t, base.Fg, segs[1].Pen.Fg)

	// Combined: bold red
	segs = ParseAnsiLine("\x1b[1;31mtext\x1b[0m", base)
	require.Len(t, segs, 1)
	assert.True(t, segs[0].Pen.Flags.Contains(FlagBold))
	assert.Equal(t, Named(NamedRed), segs[0].Pen.Fg)
}

func TestParseAnsiLine_DropsBasePayload(t *testing.T) {
	base := NewCell()
	base.PushZerowidth('\u0301')

	segs := ParseAnsiLine("x", base)
	require.Len(t, segs, 1)
	assert.Nil(t, segs[0].Pen.Zerowidth())
}

func TestApplySGR(t *testing.T) {
	base := NewCell()

	tests := []struct {
		name   string
		params string
		start  Cell
		check  func(t *testing.T, pen Cell)
	}{
		{"bold italic", "1;3", base, func(t *testing.T, pen Cell) {
			assert.True(t, pen.Flags.Contains(FlagBoldItalic))
		}},
		{"22 clears dim and bold", "22", Cell{Flags: FlagDimBold | FlagItalic}, func(t *testing.T, pen Cell) {
			assert.Equal(t, FlagItalic, pen.Flags)
		}},
		{"underline styles replace each other", "4;4:3", base, func(t *testing.T, pen Cell) {
			assert.Equal(t, FlagUndercurl, pen.Flags)
		}},
		{"4:0 removes underline", "4:0", Cell{Flags: FlagUnderline}, func(t *testing.T, pen Cell) {
			assert.True(t, pen.Flags.IsEmpty())
		}},
		{"21 double", "21", base, func(t *testing.T, pen Cell) {
			assert.Equal(t, FlagDoubleUnderline, pen.Flags)
		}},
		{"dotted and dashed", "4:5", base, func(t *testing.T, pen Cell) {
			assert.Equal(t, FlagDashedUnderline, pen.Flags)
		}},
		{"inverse hidden strike", "7;8;9", base, func(t *testing.T, pen Cell) {
			assert.Equal(t, FlagInverse|FlagHidden|FlagStrikeout, pen.Flags)
		}},
		{"turn off", "27;28;29;24;23", Cell{Flags: FlagInverse | FlagHidden | FlagStrikeout | FlagDottedUnderline | FlagItalic}, func(t *testing.T, pen Cell) {
			assert.True(t, pen.Flags.IsEmpty())
		}},
		{"bright colors", "91;104", base, func(t *testing.T, pen Cell) {
			assert.Equal(t, Named(NamedBrightRed), pen.Fg)
			assert.Equal(t, Named(NamedBrightBlue), pen.Bg)
		}},
		{"default colors", "39;49", Cell{Fg: Named(NamedRed), Bg: Named(NamedRed)}, func(t *testing.T, pen Cell) {
			assert.Equal(t, base.Fg, pen.Fg)
			assert.Equal(t, base.Bg, pen.Bg)
		}},
		{"256 color", "38;5;196;48;5;3", base, func(t *testing.T, pen Cell) {
			assert.Equal(t, Indexed(196), pen.Fg)
			assert.Equal(t, Named(NamedYellow), pen.Bg)
		}},
		{"truecolor then bold", "38;2;1;2;3;1", base, func(t *testing.T, pen Cell) {
			assert.Equal(t, Spec(1, 2, 3), pen.Fg)
			assert.True(t, pen.Flags.Contains(FlagBold))
		}},
		{"colon truecolor", "48:2::10:20:30", base, func(t *testing.T, pen Cell) {
			assert.Equal(t, Spec(10, 20, 30), pen.Bg)
		}},
		{"colon truecolor without colorspace", "38:2:10:20:30", base, func(t *testing.T, pen Cell) {
			assert.Equal(t, Spec(10, 20, 30), pen.Fg)
		}},
		{"colon indexed", "38:5:100", base, func(t *testing.T, pen Cell) {
			assert.Equal(t, Indexed(100), pen.Fg)
		}},
		{"out of range truecolor", "38;2;300;0;0", base, func(t *testing.T, pen Cell) {
			assert.Equal(t, base.Fg, pen.Fg)
		}},
		{"out of range colon truecolor", "38:2::1:2:999", base, func(t *testing.T, pen Cell) {
			assert.Equal(t, base.Fg, pen.Fg)
		}},
		{"out of range truecolor consumes its parameters", "48;2;1;2;256;1", base, func(t *testing.T, pen Cell) {
			assert.Equal(t, base.Bg, pen.Bg)
			assert.Equal(t, FlagBold, pen.Flags)
		}},
		{"huge parameter", "38;5;99999999999999999999999", base, func(t *testing.T, pen Cell) {
			assert.Equal(t, base.Fg, pen.Fg)
		}},
		{"truncated extended color", "38;5", base, func(t *testing.T, pen Cell) {
			assert.Equal(t, base.Fg, pen.Fg)
		}},
		{"empty resets", "", Cell{Fg: Named(NamedRed), Flags: FlagBold}, func(t *testing.T, pen Cell) {
			assert.Equal(t, base.Fg, pen.Fg)
			assert.True(t, pen.Flags.IsEmpty())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pen := tt.start
			ApplySGR(tt.params, &pen, base)
			tt.check(t, pen)
		})
	}
}

func TestApplySGR_KeepsChar(t *testing.T) {
	pen := Cell{Char: 'q'}
	ApplySGR("0;1", &pen, NewCell())
	assert.Equal(t, 'q', pen.Char)
}

func TestParseSGRParams_Saturates(t *testing.T) {
	params := parseSGRParams("1;99999999999999999999:2")
	require.Len(t, params, 2)
	assert.Equal(t, []int{1}, params[0])
	assert.Equal(t, []int{maxSGRParam, 2}, params[1])
}
