package io

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/maximizer/pkg/errors"
	"github.com/matzehuels/maximizer/pkg/line"
	"github.com/matzehuels/maximizer/pkg/symset"
)

// maxRowBytes bounds a single row of a seed file.
const maxRowBytes = 1 << 20

// Seeds holds the tokens of every seed row in file order.
type Seeds struct {
	Tokens [][]string
}

// ReadSeeds parses seed rows from r.
//
// ReadSeeds returns an error if a token contains characters that cannot be
// symbols, or if r holds no seed rows at all. ReadSeeds does not close r.
func ReadSeeds(r io.Reader) (*Seeds, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxRowBytes)

	var s Seeds
	row := 0
	for sc.Scan() {
		row++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		toks := strings.Fields(text)
		if toks[len(toks)-1] == line.InfiniteMarker {
			toks = toks[:len(toks)-1]
		}
		if len(toks) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "row %d: no coordinates", row)
		}
		for _, tok := range toks {
			if err := errors.ValidateToken(tok); err != nil {
				return nil, errors.New(errors.GetCode(err), "row %d: %s", row, errors.UserMessage(err))
			}
		}
		s.Tokens = append(s.Tokens, toks)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read seeds")
	}
	if len(s.Tokens) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "no seed lines")
	}
	return &s, nil
}

// ImportSeeds reads the seed file at path.
//
// ImportSeeds returns an ErrCodeFileNotFound error if the file does not
// exist, and otherwise the same errors as [ReadSeeds].
func ImportSeeds(path string) (*Seeds, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "seed file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadSeeds(f)
}

// Len returns the number of seed rows.
func (s *Seeds) Len() int {
	return len(s.Tokens)
}

// Degree returns the number of coordinates shared by every row.
func (s *Seeds) Degree() (int, error) {
	d := len(s.Tokens[0])
	for i, toks := range s.Tokens[1:] {
		if len(toks) != d {
			return 0, errors.New(errors.ErrCodeDegreeMismatch,
				"seed %d has %d coordinates but seed 1 has %d", i+2, len(toks), d)
		}
	}
	return d, nil
}

// Alphabet returns the alphabet of every symbol used by the seeds.
func (s *Seeds) Alphabet() (symset.Alphabet, error) {
	var all []string
	for _, toks := range s.Tokens {
		all = append(all, toks...)
	}
	return symset.NewAlphabet(all...)
}

// Fixed encodes the seeds as fixed-degree lines. All rows must have the same
// number of coordinates.
func (s *Seeds) Fixed(ab symset.Alphabet) ([]line.Fixed, error) {
	if _, err := s.Degree(); err != nil {
		return nil, err
	}
	out := make([]line.Fixed, len(s.Tokens))
	for i, toks := range s.Tokens {
		coords, err := encode(ab, toks)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "seed %d", i+1)
		}
		l, err := line.NewFixed(coords...)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "seed %d", i+1)
		}
		out[i] = l
	}
	return out, nil
}

// Sparse encodes the seeds as lines whose last coordinate is infinite. Rows
// may have different lengths.
func (s *Seeds) Sparse(ab symset.Alphabet) ([]line.Sparse, error) {
	out := make([]line.Sparse, len(s.Tokens))
	for i, toks := range s.Tokens {
		coords, err := encode(ab, toks)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "seed %d", i+1)
		}
		last := len(coords) - 1
		l, err := line.NewSparse(coords[:last], coords[last])
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "seed %d", i+1)
		}
		out[i] = l
	}
	return out, nil
}

// String returns the seeds in normalized text form: one row per line,
// coordinates separated by a single space.
func (s *Seeds) String() string {
	var b strings.Builder
	for _, toks := range s.Tokens {
		b.WriteString(strings.Join(toks, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func encode(ab symset.Alphabet, toks []string) ([]symset.Set, error) {
	coords := make([]symset.Set, len(toks))
	for i, tok := range toks {
		c, err := ab.Encode(tok)
		if err != nil {
			return nil, err
		}
		coords[i] = c
	}
	return coords, nil
}
