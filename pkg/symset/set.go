package symset

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	// Words is the number of 64-bit words backing a Set.
	Words = 4

	// Capacity is the number of distinct symbols a Set can hold.
	Capacity = Words * 64
)

// Set is a bit-packed set of indices in [0, Capacity).
// The zero value is the empty set.
type Set [Words]uint64

// Of returns the set containing exactly the given indices.
func Of(indices ...int) Set {
	var s Set
	for _, i := range indices {
		s.Add(i)
	}
	return s
}

// Range returns the set {0, 1, ..., n-1}.
func Range(n int) Set {
	var s Set
	if n < 0 || n > Capacity {
		panic(fmt.Sprintf("symset: range %d outside [0, %d]", n, Capacity))
	}
	for w := 0; w < Words && n > 0; w++ {
		if n >= 64 {
			s[w] = ^uint64(0)
			n -= 64
		} else {
			s[w] = (uint64(1) << n) - 1
			n = 0
		}
	}
	return s
}

func checkIndex(i int) {
	if i < 0 || i >= Capacity {
		panic(fmt.Sprintf("symset: index %d outside [0, %d)", i, Capacity))
	}
}

// Add inserts i into the set. It is the only mutator and is meant for
// construction; sets are otherwise treated as immutable values.
func (s *Set) Add(i int) {
	checkIndex(i)
	s[i/64] |= 1 << (i % 64)
}

// Contains reports whether i is in the set.
func (s Set) Contains(i int) bool {
	checkIndex(i)
	return s[i/64]&(1<<(i%64)) != 0
}

// Union returns s ∪ o.
func (s Set) Union(o Set) Set {
	for w := range s {
		s[w] |= o[w]
	}
	return s
}

// Intersect returns s ∩ o.
func (s Set) Intersect(o Set) Set {
	for w := range s {
		s[w] &= o[w]
	}
	return s
}

// Difference returns s \ o.
func (s Set) Difference(o Set) Set {
	for w := range s {
		s[w] &^= o[w]
	}
	return s
}

// Complement returns the complement of s within the first n positions,
// where n is normally the alphabet size.
func (s Set) Complement(n int) Set {
	return Range(n).Difference(s)
}

// IsEmpty reports whether the set has no elements.
func (s Set) IsEmpty() bool {
	return s == Set{}
}

// Len returns the number of elements (population count).
func (s Set) Len() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// SubsetOf reports whether every element of s is also in o.
func (s Set) SubsetOf(o Set) bool {
	for w := range s {
		if s[w]&^o[w] != 0 {
			return false
		}
	}
	return true
}

// Compare orders sets by their words, most significant word first.
// It returns -1, 0 or +1 and defines the total order used for canonical keys.
func (s Set) Compare(o Set) int {
	for w := Words - 1; w >= 0; w-- {
		switch {
		case s[w] < o[w]:
			return -1
		case s[w] > o[w]:
			return 1
		}
	}
	return 0
}

// Indices returns the elements of s in ascending order.
func (s Set) Indices() []int {
	out := make([]int, 0, s.Len())
	for w, word := range s {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			out = append(out, w*64+b)
			word &= word - 1
		}
	}
	return out
}

// String returns the words in hexadecimal, most significant first, with
// leading zero words omitted.
func (s Set) String() string {
	top := Words - 1
	for top > 0 && s[top] == 0 {
		top--
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%x", s[top])
	for w := top - 1; w >= 0; w-- {
		fmt.Fprintf(&b, "%016x", s[w])
	}
	return b.String()
}
