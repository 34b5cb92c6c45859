package matching

import "fmt"

// Graph is a bipartite graph. Left vertices are 0..Left()-1, right vertices
// are 0..Right-1, and Adj[l] lists the right neighbours of left vertex l.
type Graph struct {
	Right int
	Adj   [][]int
}

// NewGraph returns a graph with the given side sizes and no edges.
func NewGraph(left, right int) *Graph {
	if left < 0 || right < 0 {
		panic(fmt.Sprintf("matching: negative side size %d×%d", left, right))
	}
	return &Graph{Right: right, Adj: make([][]int, left)}
}

// FromAdjacency builds a graph from adjacency lists. The right side size is
// one more than the largest neighbour mentioned, or right if that is larger.
func FromAdjacency(right int, adj [][]int) *Graph {
	g := NewGraph(len(adj), right)
	for l, ns := range adj {
		for _, r := range ns {
			if r >= g.Right {
				g.Right = r + 1
			}
			g.Adj[l] = append(g.Adj[l], r)
		}
	}
	return g
}

// AddEdge connects left vertex l to right vertex r.
func (g *Graph) AddEdge(l, r int) {
	if l < 0 || l >= len(g.Adj) || r < 0 || r >= g.Right {
		panic(fmt.Sprintf("matching: edge %d→%d outside %d×%d graph", l, r, len(g.Adj), g.Right))
	}
	g.Adj[l] = append(g.Adj[l], r)
}

// Left returns the number of left vertices.
func (g *Graph) Left() int {
	return len(g.Adj)
}

// Edges returns the number of edges.
func (g *Graph) Edges() int {
	n := 0
	for _, ns := range g.Adj {
		n += len(ns)
	}
	return n
}

// trivially reports a saturation answer that needs no search: an empty left
// side always saturates, and a side larger than the right side or a vertex
// without neighbours never does.
func (g *Graph) trivially() (answer, decided bool) {
	if g.Left() == 0 {
		return true, true
	}
	if g.Left() > g.Right {
		return false, true
	}
	for _, ns := range g.Adj {
		if len(ns) == 0 {
			return false, true
		}
	}
	return false, false
}
