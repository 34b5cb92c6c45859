// Package line models lines, the domination order between them, and the
// combination step that proposes new lines from two existing ones.
//
// # Lines
//
// A line is a tuple of coordinates, each a non-empty [symset.Set]. Two shapes
// are supported:
//
//   - [Fixed] has a fixed degree D: exactly D coordinates.
//   - [Sparse] has finitely many explicit coordinates plus one infinite
//     coordinate that stands for an unbounded number of further identical
//     coordinates.
//
// Coordinate order never matters: two lines are equal when their coordinates
// agree as multisets. A sparse explicit coordinate that is a subset of the
// infinite coordinate adds nothing, so [NewSparse] drops it.
//
// # Domination
//
// A dominates B (written A ≥ B) when every coordinate of B can be assigned to
// a distinct coordinate of A that contains it. The [Oracle] decides this by
// building the compatibility graph B→A and asking a [matching.Matcher]
// whether it has a matching covering all of B. For sparse lines the question
// is split into two passes:
//
//  1. B's infinite coordinate must be a subset of A's, and every explicit
//     coordinate of B that is not a subset of A's infinite coordinate must
//     be matched to its own explicit coordinate of A.
//  2. The remaining coordinates of B are matched against A's leftover explicit
//     coordinates plus copies of A's infinite coordinate. Each of them is a
//     subset of A's infinite coordinate and gets its own copy, so this pass
//     always succeeds and only the first one is computed.
//
// Domination is a partial order on lines up to [Fixed.Equal] and
// [Sparse.Equal].
//
// # Combination
//
// [CombineFixed] and [CombineSparse] enumerate every alignment of two lines
// and, for each aligned pair, emit the line whose coordinate at that pair is
// the union of the two and whose other coordinates are intersections. A
// candidate is discarded when the union adds nothing to one side (it would
// be inferior to that operand) or when an intersection is empty.
//
// # Variants
//
// [Variant] is the contract the saturation engine is generic over.
// [FixedVariant] and [SparseVariant] implement it on top of an [Oracle]:
//
//	v := line.FixedVariant{Oracle: line.NewOracle(matching.HopcroftKarp)}
//	v.Dominates(a, b)
//	for c := range v.Combine(a, b) {
//	    fmt.Println(v.Format(c, alphabet))
//	}
package line
