package gridcell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorKind tells which field of a Color is meaningful.
type ColorKind uint8

const (
	ColorKindNamed   ColorKind = iota // Palette entry or semantic color
	ColorKindIndexed                  // xterm-256 index
	ColorKindRGB                      // 24-bit
)

// NamedColor is one of the 16 ANSI colors or a semantic terminal color.
type NamedColor uint16

const (
	NamedBlack NamedColor = iota
	NamedRed
	NamedGreen
	NamedYellow
	NamedBlue
	NamedMagenta
	NamedCyan
	NamedWhite
	NamedBrightBlack
	NamedBrightRed
	NamedBrightGreen
	NamedBrightYellow
	NamedBrightBlue
	NamedBrightMagenta
	NamedBrightCyan
	NamedBrightWhite
)

// Semantic colors resolved by the renderer's theme.
const (
	NamedForeground NamedColor = 256 + iota
	NamedBackground
	NamedCursor
)

// RGB represents a 24-bit true color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color is a foreground or background color value.
// Only the field selected by Kind is set, so Colors compare with ==.
type Color struct {
	Kind  ColorKind
	Name  NamedColor
	Index uint8
	RGB   RGB
}

// Named returns a palette or semantic color.
func Named(n NamedColor) Color {
	return Color{Kind: ColorKindNamed, Name: n}
}

// Indexed returns an xterm-256 color.
func Indexed(i uint8) Color {
	return Color{Kind: ColorKindIndexed, Index: i}
}

// Spec returns a 24-bit color.
func Spec(r, g, b uint8) Color {
	return Color{Kind: ColorKindRGB, RGB: RGB{R: r, G: g, B: b}}
}

// Default colors of a fresh cell.
var (
	DefaultForeground = Named(NamedForeground)
	DefaultBackground = Named(NamedBlack)
)

// NameToColor converts a string color name to Color
var NameToColor = map[string]Color{
	"black":          Named(NamedBlack),
	"red":            Named(NamedRed),
	"green":          Named(NamedGreen),
	"yellow":         Named(NamedYellow),
	"blue":           Named(NamedBlue),
	"magenta":        Named(NamedMagenta),
	"cyan":           Named(NamedCyan),
	"white":          Named(NamedWhite),
	"bright-black":   Named(NamedBrightBlack),
	"bright-red":     Named(NamedBrightRed),
	"bright-green":   Named(NamedBrightGreen),
	"bright-yellow":  Named(NamedBrightYellow),
	"bright-blue":    Named(NamedBrightBlue),
	"bright-magenta": Named(NamedBrightMagenta),
	"bright-cyan":    Named(NamedBrightCyan),
	"bright-white":   Named(NamedBrightWhite),
	"foreground":     Named(NamedForeground),
	"background":     Named(NamedBackground),
	"cursor":         Named(NamedCursor),
}

// ErrInvalidColor is returned by ParseColor.
var ErrInvalidColor = errors.New("gridcell: invalid color")

// ParseColor accepts a color name ("red", "foreground"), a palette index
// ("0".."255") or a hex value ("#ff8800").
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := NameToColor[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		hc, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("%w %q: %w", ErrInvalidColor, s, err)
		}
		r, g, b := hc.RGB255()
		return Spec(r, g, b), nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	return Indexed(uint8(n)), nil
}

// String returns a form accepted by ParseColor.
func (c Color) String() string {
	switch c.Kind {
	case ColorKindIndexed:
		return strconv.Itoa(int(c.Index))
	case ColorKindRGB:
		return c.RGB.Hex()
	}
	for name, nc := range NameToColor {
		if nc == c {
			return name
		}
	}
	return "named(" + strconv.Itoa(int(c.Name)) + ")"
}
