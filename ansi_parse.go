package gridcell

import (
	"strings"
)

// ContainsAnsi returns true if the string contains ANSI escape sequences.
func ContainsAnsi(s string) bool {
	return strings.Contains(s, "\x1b[")
}

// StripAnsi removes ANSI escape sequences from a string,
// returning only the visible text content.
func StripAnsi(s string) string {
	if !ContainsAnsi(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			// CSI sequence: skip ESC[ then params until final byte (0x40-0x7E)
			i += 2
			for i < len(s) && !(s[i] >= 0x40 && s[i] <= 0x7E) {
				i++
			}
			if i < len(s) {
				i++ // skip final byte
			}
		} else if s[i] == '\x1b' {
			// Other escape: skip ESC + next byte
			i += 2
		} else {
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// AnsiSegment is a piece of text and the pen it is written with.
type AnsiSegment struct {
	Text string
	Pen  Cell
}

// ParseAnsiLine parses a line containing ANSI escape codes into styled segments.
// base is the pen before the first sequence and the one SGR 0 returns to.
func ParseAnsiLine(line string, base Cell) []AnsiSegment {
	base.extra = nil
	if !ContainsAnsi(line) {
		return []AnsiSegment{{Text: line, Pen: base}}
	}

	var segments []AnsiSegment
	current := base
	var text strings.Builder
	i := 0

	for i < len(line) {
		if line[i] == '\x1b' && i+1 < len(line) && line[i+1] == '[' {
			if text.Len() > 0 {
				segments = append(segments, AnsiSegment{Text: text.String(), Pen: current})
				text.Reset()
			}

			i += 2 // skip ESC[
			paramStart := i
			for i < len(line) && !(line[i] >= 0x40 && line[i] <= 0x7E) {
				i++
			}
			if i < len(line) {
				if line[i] == 'm' {
					ApplySGR(line[paramStart:i], &current, base)
				}
				i++ // skip final byte
			}
		} else if line[i] == '\x1b' {
			// Non-CSI escape: skip
			i += 2
		} else {
			text.WriteByte(line[i])
			i++
		}
	}

	if text.Len() > 0 {
		segments = append(segments, AnsiSegment{Text: text.String(), Pen: current})
	}

	return segments
}

// underlineFlags are mutually exclusive underline styles.
const underlineFlags = FlagUnderline | FlagDoubleUnderline | FlagUndercurl | FlagDottedUnderline | FlagDashedUnderline

// ApplySGR applies SGR (Select Graphic Rendition) parameters to a pen cell.
// Only colors and style flags change; the pen's character is left alone.
func ApplySGR(paramStr string, pen *Cell, base Cell) {
	if paramStr == "" {
		// ESC[m is equivalent to ESC[0m (reset)
		resetPen(pen, base)
		return
	}

	params := parseSGRParams(paramStr)
	i := 0
	for i < len(params) {
		group := params[i]
		p := group[0]
		switch {
		case p == 0:
			resetPen(pen, base)
		case p == 1:
			pen.Flags.Insert(FlagBold)
		case p == 2:
			pen.Flags.Insert(FlagDim)
		case p == 3:
			pen.Flags.Insert(FlagItalic)
		case p == 4:
			pen.Flags.Remove(underlineFlags)
			if len(group) > 1 {
				pen.Flags.Insert(underlineStyle(group[1]))
			} else {
				pen.Flags.Insert(FlagUnderline)
			}
		case p == 7:
			pen.Flags.Insert(FlagInverse)
		case p == 8:
			pen.Flags.Insert(FlagHidden)
		case p == 9:
			pen.Flags.Insert(FlagStrikeout)
		case p == 21:
			pen.Flags.Remove(underlineFlags)
			pen.Flags.Insert(FlagDoubleUnderline)
		case p == 22:
			pen.Flags.Remove(FlagDimBold)
		case p == 23:
			pen.Flags.Remove(FlagItalic)
		case p == 24:
			pen.Flags.Remove(underlineFlags)
		case p == 27:
			pen.Flags.Remove(FlagInverse)
		case p == 28:
			pen.Flags.Remove(FlagHidden)
		case p == 29:
			pen.Flags.Remove(FlagStrikeout)

		// Foreground colors 30-37
		case p >= 30 && p <= 37:
			pen.Fg = Named(NamedBlack + NamedColor(p-30))
		case p == 39:
			pen.Fg = base.Fg

		// Background colors 40-47
		case p >= 40 && p <= 47:
			pen.Bg = Named(NamedBlack + NamedColor(p-40))
		case p == 49:
			pen.Bg = base.Bg

		// Bright foreground 90-97
		case p >= 90 && p <= 97:
			pen.Fg = Named(NamedBrightBlack + NamedColor(p-90))

		// Bright background 100-107
		case p >= 100 && p <= 107:
			pen.Bg = Named(NamedBrightBlack + NamedColor(p-100))

		// Extended colors: 38;5;N / 38;2;R;G;B or the colon forms 38:5:N / 38:2::R:G:B
		case p == 38 || p == 48:
			var c Color
			var ok bool
			if len(group) > 1 {
				c, ok = extendedColor(group[1:])
			} else {
				var used int
				c, used, ok = extendedColorParams(params[i+1:])
				i += used
			}
			if ok {
				if p == 38 {
					pen.Fg = c
				} else {
					pen.Bg = c
				}
			}
		}
		i++
	}
}

func resetPen(pen *Cell, base Cell) {
	pen.Fg = base.Fg
	pen.Bg = base.Bg
	pen.Flags = base.Flags
}

func underlineStyle(n int) Flags {
	switch n {
	case 0:
		return 0
	case 2:
		return FlagDoubleUnderline
	case 3:
		return FlagUndercurl
	case 4:
		return FlagDottedUnderline
	case 5:
		return FlagDashedUnderline
	}
	return FlagUnderline
}

// extendedColor decodes the colon form, where every value is in one group.
func extendedColor(sub []int) (Color, bool) {
	switch {
	case sub[0] == 5 && len(sub) >= 2:
		return indexedColor(sub[1])
	case sub[0] == 2 && len(sub) >= 4:
		// An optional color space id may precede the components.
		rgb := sub[len(sub)-3:]
		return rgbColor(rgb[0], rgb[1], rgb[2])
	}
	return Color{}, false
}

// extendedColorParams decodes the semicolon form and reports how many
// following parameters it consumed.
func extendedColorParams(rest [][]int) (Color, int, bool) {
	if len(rest) == 0 {
		return Color{}, 0, false
	}
	switch rest[0][0] {
	case 5:
		if len(rest) < 2 {
			return Color{}, len(rest), false
		}
		c, ok := indexedColor(rest[1][0])
		return c, 2, ok
	case 2:
		if len(rest) < 4 {
			return Color{}, len(rest), false
		}
		c, ok := rgbColor(rest[1][0], rest[2][0], rest[3][0])
		return c, 4, ok
	}
	return Color{}, 1, false
}

// rgbColor rejects components outside 0-255.
func rgbColor(r, g, b int) (Color, bool) {
	for _, v := range [...]int{r, g, b} {
		if v < 0 || v > 255 {
			return Color{}, false
		}
	}
	return Spec(uint8(r), uint8(g), uint8(b)), true
}

// indexedColor maps a 256-color index, keeping the first 16 as named colors.
func indexedColor(n int) (Color, bool) {
	switch {
	case n >= 0 && n <= 15:
		return Named(NamedBlack + NamedColor(n)), true
	case n >= 16 && n <= 255:
		return Indexed(uint8(n)), true
	}
	return Color{}, false
}

// maxSGRParam caps parameter values so long digit runs cannot overflow.
const maxSGRParam = 65535

// parseSGRParams splits a parameter string into ';'-separated groups of
// ':'-separated integers. Empty values read as 0 and values saturate at
// maxSGRParam.
func parseSGRParams(s string) [][]int {
	var params [][]int
	group := []int{0}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			group[len(group)-1] = min(group[len(group)-1]*10+int(c-'0'), maxSGRParam)
		case c == ':':
			group = append(group, 0)
		case c == ';':
			params = append(params, group)
			group = []int{0}
		}
	}
	return append(params, group)
}
