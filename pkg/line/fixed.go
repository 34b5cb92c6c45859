package line

import (
	"slices"

	"github.com/matzehuels/maximizer/pkg/errors"
	"github.com/matzehuels/maximizer/pkg/symset"
)

// Fixed is a line of fixed degree. Every coordinate is non-empty.
type Fixed []symset.Set

// NewFixed returns a line with the given coordinates. A line needs at least
// one coordinate and none of them may be empty.
func NewFixed(coords ...symset.Set) (Fixed, error) {
	if len(coords) == 0 {
		return nil, errors.New(errors.ErrCodeUnsupportedDegree, "line needs at least one coordinate")
	}
	for i, c := range coords {
		if c.IsEmpty() {
			return nil, errors.New(errors.ErrCodeEmptyCoordinate, "coordinate %d is empty", i)
		}
	}
	return Fixed(slices.Clone(coords)), nil
}

// Degree returns the number of coordinates.
func (l Fixed) Degree() int {
	return len(l)
}

// Size returns the total number of symbols over all coordinates.
func (l Fixed) Size() int {
	n := 0
	for _, c := range l {
		n += c.Len()
	}
	return n
}

// Clone returns a copy of l.
func (l Fixed) Clone() Fixed {
	return slices.Clone(l)
}

// Equal reports whether l and o hold the same coordinates as multisets.
func (l Fixed) Equal(o Fixed) bool {
	return sameMultiset(l, o)
}

// Key returns the canonical memo key of l.
func (l Fixed) Key() string {
	return CanonicalKey(l, nil)
}

func sameMultiset(a, b []symset.Set) bool {
	if len(a) != len(b) {
		return false
	}
	x := slices.Clone(a)
	y := slices.Clone(b)
	slices.SortFunc(x, symset.Set.Compare)
	slices.SortFunc(y, symset.Set.Compare)
	return slices.Equal(x, y)
}
