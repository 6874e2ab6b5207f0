package gridcell

import "slices"

// Extra holds cell data that most cells never need. Cells allocate it lazily
// and share it freely when duplicated.
//
// An Extra is immutable once a Cell points at it. Go copies Cells by plain
// assignment, so no Cell can prove it is the sole holder of its Extra; every
// write therefore goes through a private copy that replaces the shared one.
type Extra struct {
	zerowidth []rune
}

// Zerowidth returns the combining characters attached to the cell.
// The slice is read-only; appending to it never touches the Extra.
func (e *Extra) Zerowidth() []rune {
	if e == nil {
		return nil
	}
	return e.zerowidth[:len(e.zerowidth):len(e.zerowidth)]
}

// Equal compares contents. A nil Extra equals an empty one.
func (e *Extra) Equal(other *Extra) bool {
	return slices.Equal(e.Zerowidth(), other.Zerowidth())
}

func (e *Extra) isEmpty() bool {
	return e == nil || len(e.zerowidth) == 0
}

// withZerowidth returns a new Extra with r appended.
func (e *Extra) withZerowidth(r rune) *Extra {
	zw := make([]rune, 0, len(e.Zerowidth())+1)
	zw = append(zw, e.Zerowidth()...)
	return &Extra{zerowidth: append(zw, r)}
}
