package gridcell

// Discriminator exposes a cheap value standing in for full equality during
// bulk resets.
type Discriminator[D comparable] interface {
	Discriminant() D
}

// Value wraps a plain value whose discriminant is the value itself.
type Value[T comparable] struct {
	V T
}

// Discriminant returns v.V.
func (v Value[T]) Discriminant() T {
	return v.V
}

// Resettable is a grid cell that can be reset from a template.
type Resettable[T any, D comparable] interface {
	Discriminator[D]
	Reset(template T)
}

// ResetOccupied resets cells to template and returns how many were written.
//
// Cells at or past occ must not have been written since they were last reset.
// When the last cell's discriminant equals the template's, those untouched
// cells already match and only cells[:occ] is written. Otherwise the whole
// slice is.
func ResetOccupied[T any, D comparable, P interface {
	*T
	Resettable[T, D]
}](cells []T, occ int, template T) int {
	if len(cells) == 0 {
		return 0
	}
	occ = min(max(occ, 0), len(cells))
	if P(&cells[len(cells)-1]).Discriminant() != P(&template).Discriminant() {
		occ = len(cells)
	}
	for i := range cells[:occ] {
		P(&cells[i]).Reset(template)
	}
	return occ
}
