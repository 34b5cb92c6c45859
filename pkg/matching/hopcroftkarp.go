package matching

import "math"

const unreachable = math.MaxInt

// Matching is a maximum matching of a Graph.
// PairLeft[l] is the right partner of l and PairRight[r] the left partner of
// r; -1 marks a free vertex.
type Matching struct {
	PairLeft  []int
	PairRight []int
	Size      int
}

// Saturates reports whether every left vertex is matched.
func (m Matching) Saturates() bool {
	return m.Size == len(m.PairLeft)
}

type hopcroftKarp struct{}

func (hopcroftKarp) Name() string { return string(HopcroftKarp) }

func (hopcroftKarp) Saturating(g *Graph) bool {
	if answer, ok := g.trivially(); ok {
		return answer
	}
	return MaximumMatching(g).Saturates()
}

// MaximumMatching computes a maximum matching with the Hopcroft–Karp
// algorithm.
//
// Each phase layers the left vertices by alternating-path distance from the
// free left vertices, stopping at the first layer that sees a free right
// vertex, and then augments along a maximal set of vertex-disjoint shortest
// paths inside that layering. The loop ends when no free left vertex can
// reach a free right vertex.
func MaximumMatching(g *Graph) Matching {
	hk := &hkState{
		g:         g,
		pairLeft:  fill(g.Left(), -1),
		pairRight: fill(g.Right, -1),
		dist:      make([]int, g.Left()),
		next:      make([]int, g.Left()),
	}

	size := 0
	for hk.layer() {
		clear(hk.next)
		for l := range hk.pairLeft {
			if hk.pairLeft[l] == -1 && hk.augment(l) {
				size++
			}
		}
	}

	return Matching{PairLeft: hk.pairLeft, PairRight: hk.pairRight, Size: size}
}

type hkState struct {
	g         *Graph
	pairLeft  []int
	pairRight []int
	dist      []int
	next      []int // per-phase edge cursor for each left vertex
	limit     int   // layer at which a free right vertex was first reached
}

// layer runs the BFS of one phase and reports whether any augmenting path
// exists.
func (hk *hkState) layer() bool {
	queue := make([]int, 0, len(hk.pairLeft))
	for l, r := range hk.pairLeft {
		if r == -1 {
			hk.dist[l] = 0
			queue = append(queue, l)
		} else {
			hk.dist[l] = unreachable
		}
	}

	hk.limit = unreachable
	for qi := 0; qi < len(queue); qi++ {
		l := queue[qi]
		if hk.dist[l] >= hk.limit {
			continue
		}
		for _, r := range hk.g.Adj[l] {
			w := hk.pairRight[r]
			if w == -1 {
				if hk.limit == unreachable {
					hk.limit = hk.dist[l] + 1
				}
				continue
			}
			if hk.dist[w] == unreachable {
				hk.dist[w] = hk.dist[l] + 1
				queue = append(queue, w)
			}
		}
	}
	return hk.limit != unreachable
}

// augment searches the layered graph for an augmenting path from the free
// left vertex start and flips it. path holds left vertices, via[k] the right
// vertex stepping from path[k] to path[k+1].
func (hk *hkState) augment(start int) bool {
	path := []int{start}
	var via []int

	for len(path) > 0 {
		l := path[len(path)-1]
		advanced := false

		for hk.next[l] < len(hk.g.Adj[l]) {
			r := hk.g.Adj[l][hk.next[l]]
			hk.next[l]++

			w := hk.pairRight[r]
			if w == -1 {
				if hk.dist[l]+1 != hk.limit {
					continue
				}
				via = append(via, r)
				for k, pl := range path {
					hk.pairLeft[pl] = via[k]
					hk.pairRight[via[k]] = pl
				}
				return true
			}
			if hk.dist[w] == hk.dist[l]+1 {
				via = append(via, r)
				path = append(path, w)
				advanced = true
				break
			}
		}

		if !advanced {
			// Dead end for this phase.
			hk.dist[l] = unreachable
			path = path[:len(path)-1]
			if len(via) > 0 {
				via = via[:len(via)-1]
			}
		}
	}
	return false
}

func fill(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}
