package line

import (
	"fmt"

	"github.com/matzehuels/maximizer/pkg/matching"
	"github.com/matzehuels/maximizer/pkg/symset"
)

// Oracle decides domination between lines. The zero value uses the
// matching.Default engine.
type Oracle struct {
	Matcher matching.Matcher
}

// NewOracle returns an Oracle backed by the given matching engine.
func NewOracle(a matching.Algorithm) Oracle {
	return Oracle{Matcher: matching.New(a)}
}

func (o Oracle) matcher() matching.Matcher {
	if o.Matcher == nil {
		return matching.New(matching.Default)
	}
	return o.Matcher
}

// Compatibility returns the graph with an edge from b[i] to a[j] whenever
// b[i] ⊆ a[j]. b is the left side.
func Compatibility(a, b []symset.Set) *matching.Graph {
	g := matching.NewGraph(len(b), len(a))
	for i, bc := range b {
		for j, ac := range a {
			if bc.SubsetOf(ac) {
				g.AddEdge(i, j)
			}
		}
	}
	return g
}

// DominatesFixed reports whether a ≥ b. It panics if the degrees differ.
func (o Oracle) DominatesFixed(a, b Fixed) bool {
	if len(a) != len(b) {
		panic(fmt.Sprintf("line: domination between degrees %d and %d", len(a), len(b)))
	}
	return o.matcher().Saturating(Compatibility(a, b))
}

// DominatesSparse reports whether a ≥ b.
func (o Oracle) DominatesSparse(a, b Sparse) bool {
	if !b.infinite.SubsetOf(a.infinite) {
		return false
	}

	// Coordinates of b inside a's infinite coordinate each take their own
	// copy of it, so only the others need a's explicit coordinates.
	var mandatory []symset.Set
	for _, c := range b.explicit {
		if !c.SubsetOf(a.infinite) {
			mandatory = append(mandatory, c)
		}
	}
	return o.matcher().Saturating(Compatibility(a.explicit, mandatory))
}
