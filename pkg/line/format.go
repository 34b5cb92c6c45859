package line

import (
	"slices"
	"strings"

	"github.com/matzehuels/maximizer/pkg/symset"
)

// InfiniteMarker follows the infinite coordinate of a formatted sparse line.
const InfiniteMarker = "..."

// Format renders l with ab: coordinates decoded to symbol strings, sorted,
// and joined by spaces.
func (l Fixed) Format(ab symset.Alphabet) string {
	return strings.Join(decodeSorted(l, ab), " ")
}

// Format renders the sorted explicit coordinates of l, then the infinite
// coordinate, then [InfiniteMarker].
func (l Sparse) Format(ab symset.Alphabet) string {
	parts := append(decodeSorted(l.explicit, ab), ab.Decode(l.infinite), InfiniteMarker)
	return strings.Join(parts, " ")
}

func decodeSorted(coords []symset.Set, ab symset.Alphabet) []string {
	out := make([]string, len(coords))
	for i, c := range coords {
		out[i] = ab.Decode(c)
	}
	slices.Sort(out)
	return out
}
