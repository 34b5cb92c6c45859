package matching

import (
	"strings"

	"github.com/matzehuels/maximizer/pkg/errors"
)

// Matcher decides whether a graph has a matching covering every left vertex.
type Matcher interface {
	Saturating(g *Graph) bool
	Name() string
}

// Algorithm names a matching engine.
type Algorithm string

const (
	Backtrack    Algorithm = "backtrack"
	HopcroftKarp Algorithm = "hopcroft-karp"
	PushRelabel  Algorithm = "push-relabel"
)

// Default is the engine used when none is configured.
const Default = HopcroftKarp

// Algorithms lists every engine in order of increasing sophistication.
var Algorithms = []Algorithm{Backtrack, HopcroftKarp, PushRelabel}

// ParseAlgorithm resolves an engine name. Matching is case-insensitive and
// the empty string selects Default.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Default, nil
	}
	for _, a := range Algorithms {
		if string(a) == name {
			return a, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidMatcher,
		"unknown matcher %q (must be one of: backtrack, hopcroft-karp, push-relabel)", name)
}

// New returns the engine for a. Unknown names fall back to Default.
func New(a Algorithm) Matcher {
	switch a {
	case Backtrack:
		return backtracker{}
	case PushRelabel:
		return pushRelabeler{}
	default:
		return hopcroftKarp{}
	}
}
