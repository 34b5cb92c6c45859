// Package io reads seed files and writes run results.
//
// # Seed Format
//
// A seed file holds one line per row. Coordinates are separated by
// whitespace and each coordinate is a string of symbol bytes:
//
//	# two seeds of degree 2 over the alphabet abc
//	ab ac
//	a abc
//
// Blank rows and rows starting with '#' are ignored. For lines with an
// infinite coordinate the last coordinate of each row is the infinite one; a
// trailing "..." marker, as printed in results, is accepted and dropped, so a
// result can be fed back in as seeds.
//
// The alphabet is the sorted set of every symbol that occurs in the file.
//
// # Import
//
// Use [ImportSeeds] to read a file, or [ReadSeeds] to read from any
// io.Reader:
//
//	seeds, err := io.ImportSeeds("seeds.txt")
//	ab, err := seeds.Alphabet()
//	lines, err := seeds.Fixed(ab)
//
// # Export
//
// [WriteText] prints the final lines one per row, the format the solver has
// always printed. [WriteJSON] and [ExportJSON] write a [Report] that also
// carries the run's alphabet, variant, matcher, and statistics; [ReadReport]
// decodes it again.
package io
