package line

import (
	"fmt"
	"iter"

	"github.com/matzehuels/maximizer/pkg/perm"
	"github.com/matzehuels/maximizer/pkg/symset"
)

// CombineFixed yields the candidates obtained from a and b.
//
// For every permutation p of a's coordinates and every position i, the
// candidate has a[p[i]] ∪ b[i] at i and a[p[k]] ∩ b[k] at every other k.
// Candidates whose union equals one of its operands, or that have an empty
// coordinate, are skipped. Every yielded line is a fresh allocation.
//
// CombineFixed panics if the degrees differ.
func CombineFixed(a, b Fixed) iter.Seq[Fixed] {
	if len(a) != len(b) {
		panic(fmt.Sprintf("line: combining degrees %d and %d", len(a), len(b)))
	}
	d := len(a)
	return func(yield func(Fixed) bool) {
		left := make([]symset.Set, d)
		for p := range perm.All(d) {
			for k, j := range p {
				left[k] = a[j]
			}
			for c := range promote(left, b) {
				if !yield(Fixed(c)) {
					return
				}
			}
		}
	}
}

// CombineSparse yields the candidates obtained from a and b.
//
// Every partial injection between a's and b's explicit coordinates defines an
// alignment: matched coordinates pair with each other, an unmatched
// coordinate of a pairs with b's infinite coordinate, and an unmatched
// coordinate of b pairs with a's infinite coordinate. For each alignment the
// pairs are promoted one at a time exactly as in [CombineFixed], with the
// intersection of the infinite coordinates as the new infinite coordinate.
// One further candidate per alignment keeps all pairs intersected and adds
// the union of the infinite coordinates as an explicit coordinate, standing
// for a combination placed far out in the tail.
func CombineSparse(a, b Sparse) iter.Seq[Sparse] {
	return func(yield func(Sparse) bool) {
		inf := a.infinite.Intersect(b.infinite)
		if inf.IsEmpty() {
			return
		}
		n, m := len(a.explicit), len(b.explicit)
		left := make([]symset.Set, 0, n+m)
		right := make([]symset.Set, 0, n+m)
		taken := make([]bool, m)

		for f := range perm.Injections(n, m) {
			left, right = left[:0], right[:0]
			clear(taken)
			for i, j := range f {
				left = append(left, a.explicit[i])
				if j == perm.Unmatched {
					right = append(right, b.infinite)
				} else {
					right = append(right, b.explicit[j])
					taken[j] = true
				}
			}
			for j, t := range taken {
				if !t {
					left = append(left, a.infinite)
					right = append(right, b.explicit[j])
				}
			}

			for c := range promote(left, right) {
				if !yield(normalize(c, inf)) {
					return
				}
			}
			if tail, ok := tailCandidate(a.infinite, b.infinite, left, right); ok {
				if !yield(normalize(tail, inf)) {
					return
				}
			}
		}
	}
}

// promote yields, for each position i, the coordinates x[k] ∩ y[k] with
// x[i] ∪ y[i] at i. Positions whose union adds nothing to one side, or whose
// intersections leave an empty coordinate, are skipped.
func promote(x, y []symset.Set) iter.Seq[[]symset.Set] {
	return func(yield func([]symset.Set) bool) {
		inter := make([]symset.Set, len(x))
		empty := 0
		for k := range x {
			inter[k] = x[k].Intersect(y[k])
			if inter[k].IsEmpty() {
				empty++
			}
		}
		for i := range x {
			union := x[i].Union(y[i])
			if union == x[i] || union == y[i] {
				continue
			}
			if inter[i].IsEmpty() {
				if empty > 1 {
					continue
				}
			} else if empty > 0 {
				continue
			}
			c := make([]symset.Set, len(inter))
			copy(c, inter)
			c[i] = union
			if !yield(c) {
				return
			}
		}
	}
}

func tailCandidate(ainf, binf symset.Set, x, y []symset.Set) ([]symset.Set, bool) {
	union := ainf.Union(binf)
	if union == ainf || union == binf {
		return nil, false
	}
	c := make([]symset.Set, 0, len(x)+1)
	for k := range x {
		s := x[k].Intersect(y[k])
		if s.IsEmpty() {
			return nil, false
		}
		c = append(c, s)
	}
	return append(c, union), true
}
