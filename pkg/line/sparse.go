package line

import (
	"slices"

	"github.com/matzehuels/maximizer/pkg/errors"
	"github.com/matzehuels/maximizer/pkg/symset"
)

// Sparse is a line with finitely many explicit coordinates followed by an
// unbounded run of copies of one infinite coordinate.
//
// Explicit coordinates that are subsets of the infinite coordinate are never
// stored: a copy of the infinite coordinate already dominates them.
type Sparse struct {
	explicit []symset.Set
	infinite symset.Set
}

// NewSparse returns the normalized sparse line with the given coordinates.
// All coordinates must be non-empty.
func NewSparse(explicit []symset.Set, infinite symset.Set) (Sparse, error) {
	if infinite.IsEmpty() {
		return Sparse{}, errors.New(errors.ErrCodeEmptyCoordinate, "infinite coordinate is empty")
	}
	for i, c := range explicit {
		if c.IsEmpty() {
			return Sparse{}, errors.New(errors.ErrCodeEmptyCoordinate, "coordinate %d is empty", i)
		}
	}
	return normalize(explicit, infinite), nil
}

// normalize builds a Sparse without validation. Callers guarantee that no
// coordinate is empty.
func normalize(explicit []symset.Set, infinite symset.Set) Sparse {
	kept := make([]symset.Set, 0, len(explicit))
	for _, c := range explicit {
		if !c.SubsetOf(infinite) {
			kept = append(kept, c)
		}
	}
	return Sparse{explicit: kept, infinite: infinite}
}

// Explicit returns a copy of the explicit coordinates.
func (l Sparse) Explicit() []symset.Set {
	return slices.Clone(l.explicit)
}

// Infinite returns the infinite coordinate.
func (l Sparse) Infinite() symset.Set {
	return l.infinite
}

// Len returns the number of explicit coordinates.
func (l Sparse) Len() int {
	return len(l.explicit)
}

// Equal reports whether l and o have the same infinite coordinate and the
// same explicit coordinates as multisets.
func (l Sparse) Equal(o Sparse) bool {
	return l.infinite == o.infinite && sameMultiset(l.explicit, o.explicit)
}

// Key returns the canonical memo key of l.
func (l Sparse) Key() string {
	inf := l.infinite
	return CanonicalKey(l.explicit, &inf)
}
