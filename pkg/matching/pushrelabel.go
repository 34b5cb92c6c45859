package matching

import (
	"fmt"
	"math"
)

// Network is a directed flow network with integer capacities.
// Vertices are 0..n-1; every AddEdge also creates the residual reverse arc.
type Network struct {
	adj [][]arc
}

type arc struct {
	to  int
	rev int // index of the reverse arc in adj[to]
	cap int // residual capacity
}

// NewNetwork returns a network with n vertices and no arcs.
func NewNetwork(n int) *Network {
	return &Network{adj: make([][]arc, n)}
}

// Len returns the number of vertices.
func (nw *Network) Len() int {
	return len(nw.adj)
}

// AddEdge adds an arc u→v with the given capacity.
func (nw *Network) AddEdge(u, v, capacity int) {
	if u == v || u < 0 || v < 0 || u >= len(nw.adj) || v >= len(nw.adj) {
		panic(fmt.Sprintf("matching: invalid arc %d→%d in %d-vertex network", u, v, len(nw.adj)))
	}
	if capacity < 0 {
		panic(fmt.Sprintf("matching: negative capacity %d on arc %d→%d", capacity, u, v))
	}
	nw.adj[u] = append(nw.adj[u], arc{to: v, rev: len(nw.adj[v]), cap: capacity})
	nw.adj[v] = append(nw.adj[v], arc{to: u, rev: len(nw.adj[u]) - 1, cap: 0})
}

// MaxFlow computes the maximum s→t flow with the FIFO push-relabel method.
// It consumes the residual capacities; call it once per network.
//
// The source starts at height n and saturates its arcs. Active vertices are
// discharged in FIFO order: excess is pushed along admissible arcs
// (height[u] == height[v]+1), and a vertex with excess but no admissible arc
// is relabelled to one above its lowest residual neighbour.
func (nw *Network) MaxFlow(s, t int) int {
	n := len(nw.adj)
	if s == t {
		return 0
	}

	height := make([]int, n)
	excess := make([]int, n)
	cursor := make([]int, n)
	active := make([]bool, n)
	var queue []int

	activate := func(v int) {
		if v != s && v != t && !active[v] && excess[v] > 0 {
			active[v] = true
			queue = append(queue, v)
		}
	}

	height[s] = n
	for i := range nw.adj[s] {
		a := &nw.adj[s][i]
		if a.cap == 0 {
			continue
		}
		d := a.cap
		a.cap = 0
		nw.adj[a.to][a.rev].cap += d
		excess[a.to] += d
		activate(a.to)
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		active[u] = false

		for excess[u] > 0 {
			if cursor[u] == len(nw.adj[u]) {
				if !nw.relabel(u, height) {
					break
				}
				cursor[u] = 0
				continue
			}
			a := &nw.adj[u][cursor[u]]
			if a.cap > 0 && height[u] == height[a.to]+1 {
				d := min(excess[u], a.cap)
				a.cap -= d
				nw.adj[a.to][a.rev].cap += d
				excess[u] -= d
				excess[a.to] += d
				activate(a.to)
			} else {
				cursor[u]++
			}
		}
	}

	return excess[t]
}

// relabel lifts u one above its lowest neighbour with residual capacity.
// It reports false when u has no residual arc at all.
func (nw *Network) relabel(u int, height []int) bool {
	lowest := math.MaxInt
	for _, a := range nw.adj[u] {
		if a.cap > 0 && height[a.to] < lowest {
			lowest = height[a.to]
		}
	}
	if lowest == math.MaxInt {
		return false
	}
	height[u] = lowest + 1
	return true
}

type pushRelabeler struct{}

func (pushRelabeler) Name() string { return string(PushRelabel) }

// Saturating builds source → left → right → sink with unit capacities and
// compares the maximum flow with the left side size.
func (pushRelabeler) Saturating(g *Graph) bool {
	if answer, ok := g.trivially(); ok {
		return answer
	}
	return MatchingFlow(g) == g.Left()
}

// MatchingFlow returns the size of a maximum matching of g computed as a
// unit-capacity max flow.
func MatchingFlow(g *Graph) int {
	left := g.Left()
	source, sink := 0, left+g.Right+1
	nw := NewNetwork(left + g.Right + 2)
	for l := 0; l < left; l++ {
		nw.AddEdge(source, 1+l, 1)
	}
	for r := 0; r < g.Right; r++ {
		nw.AddEdge(1+left+r, sink, 1)
	}
	for l, ns := range g.Adj {
		for _, r := range ns {
			nw.AddEdge(1+l, 1+left+r, 1)
		}
	}
	return nw.MaxFlow(source, sink)
}
