package line_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/matzehuels/maximizer/pkg/line"
	"github.com/matzehuels/maximizer/pkg/symset"
)

var abc = mustAlphabet("abc")

func mustAlphabet(symbols string) symset.Alphabet {
	ab, err := symset.AlphabetOf([]byte(symbols)...)
	if err != nil {
		panic(err)
	}
	return ab
}

func set(t testing.TB, token string) symset.Set {
	t.Helper()
	s, err := abc.Encode(token)
	if err != nil {
		t.Fatalf("Encode(%q): %v", token, err)
	}
	return s
}

// fixed parses "ab ac" into a fixed line over abc.
func fixed(t testing.TB, text string) line.Fixed {
	t.Helper()
	var coords []symset.Set
	for _, tok := range strings.Fields(text) {
		coords = append(coords, set(t, tok))
	}
	l, err := line.NewFixed(coords...)
	if err != nil {
		t.Fatalf("NewFixed(%q): %v", text, err)
	}
	return l
}

// sparse parses "ab ac c" into a sparse line whose last token is infinite.
func sparse(t testing.TB, text string) line.Sparse {
	t.Helper()
	toks := strings.Fields(text)
	var explicit []symset.Set
	for _, tok := range toks[:len(toks)-1] {
		explicit = append(explicit, set(t, tok))
	}
	l, err := line.NewSparse(explicit, set(t, toks[len(toks)-1]))
	if err != nil {
		t.Fatalf("NewSparse(%q): %v", text, err)
	}
	return l
}

// randomSet returns a non-empty subset of [0, n).
func randomSet(r *rand.Rand, n int) symset.Set {
	var s symset.Set
	for s.IsEmpty() {
		for i := 0; i < n; i++ {
			if r.IntN(2) == 0 {
				s.Add(i)
			}
		}
	}
	return s
}

func randomFixed(r *rand.Rand, degree, n int) line.Fixed {
	l := make(line.Fixed, degree)
	for i := range l {
		l[i] = randomSet(r, n)
	}
	return l
}

func randomSparse(r *rand.Rand, maxExplicit, n int) line.Sparse {
	explicit := make([]symset.Set, r.IntN(maxExplicit+1))
	for i := range explicit {
		explicit[i] = randomSet(r, n)
	}
	l, err := line.NewSparse(explicit, randomSet(r, n))
	if err != nil {
		panic(err)
	}
	return l
}

func shuffled(r *rand.Rand, l line.Fixed) line.Fixed {
	c := l.Clone()
	r.Shuffle(len(c), func(i, j int) { c[i], c[j] = c[j], c[i] })
	return c
}
