// Package symset provides fixed-capacity bit-packed sets over alphabet
// indices and the [Alphabet] that maps symbol bytes to those indices.
//
// # Sets
//
// A [Set] is a value type: four 64-bit words covering [Capacity] = 256
// positions, enough for every possible byte symbol. Because the capacity is
// fixed at compile time, two sets can always be compared with == and used as
// map keys, and no operation ever mixes sets of different capacity.
//
// All operations run in O(Capacity/64) and are side-effect free, except
// [Set.Add], which is intended for construction only:
//
//	s := symset.Of(0, 2)
//	t := symset.Of(0, 1, 2)
//	s.SubsetOf(t)          // true
//	s.Union(t).Len()       // 3
//	s.Intersect(t) == s    // true
//
// Indexing outside [0, Capacity) is a programming error and panics.
//
// # Alphabets
//
// An [Alphabet] is derived from every symbol observed in the seed input,
// sorted ascending; the position of a symbol in that order is its bit index.
// [Alphabet.Encode] and [Alphabet.Decode] translate between tokens such as
// "abc" and sets.
package symset
