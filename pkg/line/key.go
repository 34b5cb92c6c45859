package line

import (
	"slices"
	"strings"

	"github.com/matzehuels/maximizer/pkg/symset"
)

// CanonicalKey returns the memo key for a line with the given coordinates.
//
// The explicit coordinates are sorted with [symset.Set.Compare] and written
// in hex, separated by commas. A non-nil infinite coordinate is appended
// after a '|', which never occurs in a fixed-degree key. Lines that differ
// only in coordinate order share a key.
func CanonicalKey(explicit []symset.Set, infinite *symset.Set) string {
	sorted := slices.Clone(explicit)
	slices.SortFunc(sorted, symset.Set.Compare)

	var b strings.Builder
	for i, c := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.String())
	}
	if infinite != nil {
		b.WriteByte('|')
		b.WriteString(infinite.String())
	}
	return b.String()
}
