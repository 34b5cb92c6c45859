package symset

import (
	"slices"
	"strings"

	"github.com/matzehuels/maximizer/pkg/errors"
)

// Alphabet is the ordered list of symbols a problem instance uses.
// The index of a symbol in the list is its bit position in a Set.
type Alphabet struct {
	symbols []byte
	index   [256]int16
}

// NewAlphabet derives an alphabet from every byte occurring in tokens.
// Symbols are sorted ascending. More than Capacity distinct symbols is an
// error with code ErrCodeAlphabetTooLarge.
func NewAlphabet(tokens ...string) (Alphabet, error) {
	var seen [256]bool
	for _, tok := range tokens {
		for i := 0; i < len(tok); i++ {
			seen[tok[i]] = true
		}
	}
	var symbols []byte
	for b, ok := range seen {
		if ok {
			symbols = append(symbols, byte(b))
		}
	}
	return AlphabetOf(symbols...)
}

// AlphabetOf builds an alphabet from an explicit symbol list.
// Duplicates are removed and the result is sorted.
func AlphabetOf(symbols ...byte) (Alphabet, error) {
	symbols = slices.Clone(symbols)
	slices.Sort(symbols)
	symbols = slices.Compact(symbols)
	if len(symbols) > Capacity {
		return Alphabet{}, errors.New(errors.ErrCodeAlphabetTooLarge,
			"alphabet has %d symbols, capacity is %d", len(symbols), Capacity)
	}

	a := Alphabet{symbols: symbols}
	for i := range a.index {
		a.index[i] = -1
	}
	for i, b := range symbols {
		a.index[b] = int16(i)
	}
	return a, nil
}

// Size returns the number of symbols.
func (a Alphabet) Size() int {
	return len(a.symbols)
}

// Symbols returns a copy of the ordered symbol list.
func (a Alphabet) Symbols() []byte {
	return slices.Clone(a.symbols)
}

// Index returns the bit position of symbol.
func (a Alphabet) Index(symbol byte) (int, bool) {
	if len(a.symbols) == 0 {
		return 0, false
	}
	i := a.index[symbol]
	return int(i), i >= 0
}

// Encode converts a token into the set of its symbols.
func (a Alphabet) Encode(token string) (Set, error) {
	var s Set
	for i := 0; i < len(token); i++ {
		idx, ok := a.Index(token[i])
		if !ok {
			return Set{}, errors.New(errors.ErrCodeInvalidInput,
				"symbol %q of %q is not in the alphabet", token[i], token)
		}
		s.Add(idx)
	}
	return s, nil
}

// Decode renders a set as its symbols in alphabet order.
// Indices beyond the alphabet are ignored.
func (a Alphabet) Decode(s Set) string {
	var b strings.Builder
	for _, i := range s.Indices() {
		if i < len(a.symbols) {
			b.WriteByte(a.symbols[i])
		}
	}
	return b.String()
}

// Full returns the set of every symbol in the alphabet.
func (a Alphabet) Full() Set {
	return Range(len(a.symbols))
}

// String returns the symbols as a string.
func (a Alphabet) String() string {
	return string(a.symbols)
}
