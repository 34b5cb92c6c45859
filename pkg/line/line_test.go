package line_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/maximizer/pkg/errors"
	"github.com/matzehuels/maximizer/pkg/line"
	"github.com/matzehuels/maximizer/pkg/matching"
	"github.com/matzehuels/maximizer/pkg/symset"
)

func TestNewFixed(t *testing.T) {
	l, err := line.NewFixed(symset.Of(0), symset.Of(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, l.Degree())
	assert.Equal(t, 3, l.Size())

	_, err = line.NewFixed()
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupportedDegree))

	_, err = line.NewFixed(symset.Of(0), symset.Set{})
	assert.True(t, errors.Is(err, errors.ErrCodeEmptyCoordinate))
}

func TestNewFixedCopiesInput(t *testing.T) {
	coords := []symset.Set{symset.Of(0), symset.Of(1)}
	l, err := line.NewFixed(coords...)
	require.NoError(t, err)
	coords[0] = symset.Of(2)
	assert.Equal(t, symset.Of(0), l[0])
}

func TestFixedEqualIgnoresOrder(t *testing.T) {
	assert.True(t, fixed(t, "ab ac").Equal(fixed(t, "ac ab")))
	assert.True(t, fixed(t, "a a b").Equal(fixed(t, "b a a")))
	assert.False(t, fixed(t, "a a b").Equal(fixed(t, "a b b")))
	assert.False(t, fixed(t, "a b").Equal(fixed(t, "a b c")))
}

func TestNewSparseNormalizes(t *testing.T) {
	l := sparse(t, "a ab c bc ab")
	assert.Equal(t, []symset.Set{set(t, "c"), set(t, "bc")}, l.Explicit())
	assert.Equal(t, set(t, "ab"), l.Infinite())
	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Equal(sparse(t, "bc c ab")))
	assert.Equal(t, l.Key(), sparse(t, "bc c ab").Key())
}

func TestNewSparseRejectsEmpty(t *testing.T) {
	_, err := line.NewSparse(nil, symset.Set{})
	assert.True(t, errors.Is(err, errors.ErrCodeEmptyCoordinate))

	_, err = line.NewSparse([]symset.Set{{}}, symset.Of(0))
	assert.True(t, errors.Is(err, errors.ErrCodeEmptyCoordinate))
}

func TestSparseEqual(t *testing.T) {
	assert.True(t, sparse(t, "ab c").Equal(sparse(t, "ab c")))
	assert.False(t, sparse(t, "ab c").Equal(sparse(t, "ab b")))
	assert.False(t, sparse(t, "ab ab c").Equal(sparse(t, "ab c")))
}

func TestCanonicalKey(t *testing.T) {
	a, b := symset.Of(0), symset.Of(1, 2)
	assert.Equal(t, "1,6", line.CanonicalKey([]symset.Set{b, a}, nil))
	assert.Equal(t, "1,6|1", line.CanonicalKey([]symset.Set{a, b}, &a))
	assert.Equal(t, "|6", line.CanonicalKey(nil, &b))

	// A fixed line and a sparse line over the same sets never share a key.
	f := fixed(t, "a")
	s := sparse(t, "a")
	assert.NotEqual(t, f.Key(), s.Key())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "ab ac", fixed(t, "ac ab").Format(abc))
	assert.Equal(t, "a abc", fixed(t, "abc a").Format(abc))
	assert.Equal(t, "bc c ab ...", sparse(t, "c bc ab").Format(abc))
	assert.Equal(t, "abc ...", sparse(t, "abc").Format(abc))
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", line.VariantFixed, false},
		{"fixed", line.VariantFixed, false},
		{"SPARSE", line.VariantSparse, false},
		{"dense", "", true},
	}
	for _, tt := range tests {
		got, err := line.ParseVariant(tt.in)
		if tt.wantErr {
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidVariant), tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestDominatesFixed(t *testing.T) {
	var o line.Oracle
	tests := []struct {
		a, b string
		want bool
	}{
		{"ab ac", "a a", true},
		{"ab ac", "b c", true},
		{"ab ac", "ab ab", false},
		{"abc a", "ab ac", false},
		{"ab ac", "a abc", false},
		{"abc abc", "ab ac", true},
		{"a b c", "c a b", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, o.DominatesFixed(fixed(t, tt.a), fixed(t, tt.b)), "%s ≥ %s", tt.a, tt.b)
	}
}

func TestDominatesFixedPanicsOnDegreeMismatch(t *testing.T) {
	var o line.Oracle
	assert.Panics(t, func() { o.DominatesFixed(fixed(t, "a b"), fixed(t, "a")) })
}

func TestDominatesFixedLargeDegree(t *testing.T) {
	a := make([]symset.Set, 300)
	b := make([]symset.Set, 300)
	for i := range a {
		a[i] = set(t, "ab")
		b[i] = set(t, "a")
	}
	la, err := line.NewFixed(a...)
	require.NoError(t, err)
	lb, err := line.NewFixed(b...)
	require.NoError(t, err)

	for _, alg := range matching.Algorithms {
		o := line.NewOracle(alg)
		assert.True(t, o.DominatesFixed(la, lb), "%s", alg)
		assert.False(t, o.DominatesFixed(lb, la), "%s", alg)
	}
}

func TestDominatesSparse(t *testing.T) {
	var o line.Oracle
	tests := []struct {
		a, b string
		want bool
	}{
		{"abc a", "ab a", true},
		{"abc a", "ab ac a", false},
		{"abc", "ab bc a", true},
		{"abc a", "b", false},
		{"abc c", "ab bc c", false},
		{"abc bc c", "ab bc c", true},
		{"ab", "ab", true},
		{"a", "ab", false},
		{"ab", "a", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, o.DominatesSparse(sparse(t, tt.a), sparse(t, tt.b)), "%s ≥ %s", tt.a, tt.b)
	}
}

func TestDominatesSparseResidualUsesTail(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		// abc takes a's only explicit coordinate; b and ab go to the tail.
		{"abc ab", "abc a b ab a", true},
		{"abc ab", "abc abc b a", false},
		{"ab ab", "abc b a", false},
		{"c ab", "a b ab b b", true},
	}
	for _, alg := range matching.Algorithms {
		o := line.NewOracle(alg)
		for _, tt := range tests {
			assert.Equal(t, tt.want, o.DominatesSparse(sparse(t, tt.a), sparse(t, tt.b)), "%s: %s ≥ %s", alg, tt.a, tt.b)
		}
	}
}

func TestCombineFixed(t *testing.T) {
	l := fixed(t, "ab ac")
	got := slices.Collect(line.CombineFixed(l, l))
	require.Len(t, got, 2)
	for _, c := range got {
		assert.True(t, c.Equal(fixed(t, "a abc")), "candidate %s", c.Format(abc))
	}

	// Nothing new comes out of the two seeds of the reference run.
	assert.Empty(t, slices.Collect(line.CombineFixed(l, fixed(t, "a abc"))))
	assert.Empty(t, slices.Collect(line.CombineFixed(fixed(t, "a abc"), fixed(t, "a abc"))))
}

func TestCombineFixedSkipsEmptyIntersections(t *testing.T) {
	// Every intersection with c is empty, so each promotion leaves an empty
	// coordinate behind.
	got := slices.Collect(line.CombineFixed(fixed(t, "a b"), fixed(t, "c c")))
	assert.Empty(t, got)
}

func TestCombineFixedPanicsOnDegreeMismatch(t *testing.T) {
	assert.Panics(t, func() { line.CombineFixed(fixed(t, "a b"), fixed(t, "a")) })
}

func TestCombineSparse(t *testing.T) {
	got := slices.Collect(line.CombineSparse(sparse(t, "ab c"), sparse(t, "bc")))
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(sparse(t, "abc c")), got[0].Format(abc))

	got = slices.Collect(line.CombineSparse(sparse(t, "ab"), sparse(t, "bc")))
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(sparse(t, "abc b")), got[0].Format(abc))
}

func TestCombineSparseDisjointTails(t *testing.T) {
	assert.Empty(t, slices.Collect(line.CombineSparse(sparse(t, "a"), sparse(t, "b"))))
}

func TestCombineStopsEarly(t *testing.T) {
	l := fixed(t, "ab ac")
	n := 0
	for range line.CombineFixed(l, l) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}
