// Package gridcell provides the Cell type stored in a terminal grid, together
// with the row and grid helpers that keep cells compact and cheap to copy.
package gridcell

import "strings"

// Cell is one column of a terminal row: a character, its colors and its
// display flags. Rarely used data lives behind a shared *Extra.
type Cell struct {
	Char  rune
	Fg    Color
	Bg    Color
	Flags Flags
	extra *Extra
}

// EmptyCell is a space with default colors and no attributes.
var EmptyCell = NewCell()

// NewCell returns the default cell.
func NewCell() Cell {
	return Cell{
		Char: ' ',
		Fg:   DefaultForeground,
		Bg:   DefaultBackground,
	}
}

// emptyMask lists the flags that make a blank cell visible.
const emptyMask = FlagInverse | FlagStrikeout | FlagWrapline | FlagWideCharSpacer | FlagLeadingWideCharSpacer

// IsEmpty reports whether the cell shows nothing a trim or export pass must keep.
func (c Cell) IsEmpty() bool {
	return (c.Char == ' ' || c.Char == '\t') &&
		!c.Flags.Intersects(emptyMask) &&
		c.extra.isEmpty()
}

// Reset turns c into the default cell, keeping only template's background.
func (c *Cell) Reset(template Cell) {
	*c = Cell{
		Char: ' ',
		Fg:   DefaultForeground,
		Bg:   template.Bg,
	}
}

// PushZerowidth attaches a combining character to c.
func (c *Cell) PushZerowidth(r rune) {
	c.extra = c.extra.withZerowidth(r)
}

// ClearWide drops the wide flag and attached characters and blanks the cell.
// Used on the surviving half of a broken wide pair.
func (c *Cell) ClearWide() {
	c.Flags.Remove(FlagWideChar)
	if c.extra != nil {
		c.extra = &Extra{}
	}
	c.Char = ' '
}

// Zerowidth returns the attached combining characters, or nil.
func (c Cell) Zerowidth() []rune {
	return c.extra.Zerowidth()
}

// HasZerowidth reports whether any combining character is attached.
func (c Cell) HasZerowidth() bool {
	return !c.extra.isEmpty()
}

// Discriminant returns the background, which decides whether a bulk reset
// with a given template can skip this cell.
func (c Cell) Discriminant() Color {
	return c.Bg
}

// Width returns the number of columns the cell's glyph covers.
func (c Cell) Width() int {
	switch {
	case c.Flags.Contains(FlagWideCharSpacer):
		return 0
	case c.Flags.Contains(FlagWideChar):
		return 2
	}
	return 1
}

// Equal returns true if two Cells are identical.
func (c Cell) Equal(other Cell) bool {
	if c.Char != other.Char || c.Flags != other.Flags {
		return false
	}
	if c.Fg != other.Fg || c.Bg != other.Bg {
		return false
	}
	return c.extra.Equal(other.extra)
}

// String returns the character followed by its combining characters.
func (c Cell) String() string {
	if c.extra.isEmpty() {
		return string(c.Char)
	}
	var sb strings.Builder
	sb.WriteRune(c.Char)
	for _, r := range c.extra.zerowidth {
		sb.WriteRune(r)
	}
	return sb.String()
}
