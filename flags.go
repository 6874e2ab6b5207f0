package gridcell

import (
	"errors"
	"fmt"
	"strings"
)

// Flags is the set of display attributes carried by a Cell, packed into 16 bits.
type Flags uint16

const (
	FlagInverse               Flags = 1 << 0
	FlagBold                  Flags = 1 << 1
	FlagItalic                Flags = 1 << 2
	FlagUnderline             Flags = 1 << 3
	FlagWrapline              Flags = 1 << 4 // Row continues on the next row (soft wrap)
	FlagWideChar              Flags = 1 << 5
	FlagWideCharSpacer        Flags = 1 << 6 // Right half of a wide char
	FlagDim                   Flags = 1 << 7
	FlagHidden                Flags = 1 << 8
	FlagStrikeout             Flags = 1 << 9
	FlagLeadingWideCharSpacer Flags = 1 << 10 // Padding before a wide char wrapped to the next row
	FlagDoubleUnderline       Flags = 1 << 11
	FlagUndercurl             Flags = 1 << 12
	FlagDottedUnderline       Flags = 1 << 13
	FlagDashedUnderline       Flags = 1 << 14
)

// Combination flags. These are unions, not bits of their own: test membership
// of the individual flags, or Contains on the whole union.
const (
	FlagBoldItalic = FlagBold | FlagItalic
	FlagDimBold    = FlagDim | FlagBold
)

// flagsAll is every bit with a name.
const flagsAll Flags = 1<<15 - 1

// ErrUnknownFlags is returned when raw bits fall outside the named flags.
var ErrUnknownFlags = errors.New("gridcell: unknown flag bits")

// FlagsFromBits validates raw bits received from a calling layer.
func FlagsFromBits(bits uint16) (Flags, error) {
	f := Flags(bits)
	if f&^flagsAll != 0 {
		return 0, fmt.Errorf("%w: %#04x", ErrUnknownFlags, uint16(f&^flagsAll))
	}
	return f, nil
}

// Contains reports whether every bit of other is set.
func (f Flags) Contains(other Flags) bool {
	return f&other == other
}

// Intersects reports whether any bit of other is set.
func (f Flags) Intersects(other Flags) bool {
	return f&other != 0
}

// IsEmpty reports whether no flag is set.
func (f Flags) IsEmpty() bool {
	return f == 0
}

// Union returns the flags set in either f or other.
func (f Flags) Union(other Flags) Flags {
	return f | other
}

// Difference returns the flags of f that are not in other.
func (f Flags) Difference(other Flags) Flags {
	return f &^ other
}

// Insert sets the given flags.
func (f *Flags) Insert(other Flags) {
	*f |= other
}

// Remove clears the given flags.
func (f *Flags) Remove(other Flags) {
	*f &^= other
}

var flagNames = [...]struct {
	flag Flags
	name string
}{
	{FlagInverse, "inverse"},
	{FlagBold, "bold"},
	{FlagItalic, "italic"},
	{FlagUnderline, "underline"},
	{FlagWrapline, "wrapline"},
	{FlagWideChar, "wide"},
	{FlagWideCharSpacer, "wide-spacer"},
	{FlagDim, "dim"},
	{FlagHidden, "hidden"},
	{FlagStrikeout, "strikeout"},
	{FlagLeadingWideCharSpacer, "leading-wide-spacer"},
	{FlagDoubleUnderline, "double-underline"},
	{FlagUndercurl, "undercurl"},
	{FlagDottedUnderline, "dotted-underline"},
	{FlagDashedUnderline, "dashed-underline"},
}

// String returns the set flags joined by "|", or "none".
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var sb strings.Builder
	for _, fn := range flagNames {
		if f&fn.flag == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(fn.name)
	}
	if rest := f &^ flagsAll; rest != 0 {
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		fmt.Fprintf(&sb, "%#04x", uint16(rest))
	}
	return sb.String()
}
