package line

import (
	"iter"
	"strings"

	"github.com/matzehuels/maximizer/pkg/errors"
	"github.com/matzehuels/maximizer/pkg/symset"
)

// Variant is the set of line operations the saturation engine needs.
type Variant[L any] interface {
	// Dominates reports whether a ≥ b.
	Dominates(a, b L) bool
	// Combine yields the candidates built from a and b.
	Combine(a, b L) iter.Seq[L]
	// Key returns a memo key shared exactly by equal lines.
	Key(l L) string
	Equal(a, b L) bool
	Format(l L, ab symset.Alphabet) string
	Name() string
}

// Variant names accepted by ParseVariant.
const (
	VariantFixed  = "fixed"
	VariantSparse = "sparse"
)

// ParseVariant validates a variant name. The empty string selects
// VariantFixed.
func ParseVariant(name string) (string, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "":
		return VariantFixed, nil
	case VariantFixed, VariantSparse:
		return n, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidVariant, "unknown variant %q (must be fixed or sparse)", name)
	}
}

// FixedVariant is the Variant over fixed-degree lines.
type FixedVariant struct {
	Oracle
}

var _ Variant[Fixed] = FixedVariant{}

func (v FixedVariant) Dominates(a, b Fixed) bool               { return v.DominatesFixed(a, b) }
func (FixedVariant) Combine(a, b Fixed) iter.Seq[Fixed]        { return CombineFixed(a, b) }
func (FixedVariant) Key(l Fixed) string                        { return l.Key() }
func (FixedVariant) Equal(a, b Fixed) bool                     { return a.Equal(b) }
func (FixedVariant) Format(l Fixed, ab symset.Alphabet) string { return l.Format(ab) }
func (FixedVariant) Name() string                              { return VariantFixed }

// SparseVariant is the Variant over lines with an infinite coordinate.
type SparseVariant struct {
	Oracle
}

var _ Variant[Sparse] = SparseVariant{}

func (v SparseVariant) Dominates(a, b Sparse) bool               { return v.DominatesSparse(a, b) }
func (SparseVariant) Combine(a, b Sparse) iter.Seq[Sparse]       { return CombineSparse(a, b) }
func (SparseVariant) Key(l Sparse) string                        { return l.Key() }
func (SparseVariant) Equal(a, b Sparse) bool                     { return a.Equal(b) }
func (SparseVariant) Format(l Sparse, ab symset.Alphabet) string { return l.Format(ab) }
func (SparseVariant) Name() string                               { return VariantSparse }
