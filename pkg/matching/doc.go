// Package matching decides whether a bipartite graph admits a matching that
// saturates its left side.
//
// The domination order on lines reduces to this question (Hall's marriage
// theorem): line A dominates line B exactly when B's coordinates can be
// assigned to distinct A coordinates that contain them. The line package
// builds the compatibility [Graph] and hands it to a [Matcher].
//
// # Engines
//
// Three engines compute the same boolean and must agree on every input:
//
//   - [Backtrack]: depth-first assignment with an explicit stack of
//     per-position neighbour cursors. Exponential in the worst case; it is the
//     ground truth the other engines are tested against.
//   - [HopcroftKarp]: layered augmenting paths. Each phase runs a BFS from
//     all free left vertices up to the first layer that reaches a free right
//     vertex, then a DFS for vertex-disjoint augmenting paths inside that
//     layering. O(√V) phases of O(E) each. This is the [Default].
//   - [PushRelabel]: max-flow on the unit-capacity network
//     source → left → right → sink using FIFO push-relabel. The [Network] type
//     accepts arbitrary integer capacities.
//
// Use [New] or [ParseAlgorithm] to pick an engine by name:
//
//	m, err := matching.ParseAlgorithm("push-relabel")
//	g := matching.NewGraph(2, 2)
//	g.AddEdge(0, 0)
//	g.AddEdge(1, 0)
//	g.AddEdge(1, 1)
//	matching.New(m).Saturating(g) // true
//
// # Debug output
//
// [Graph.ToDOT] and [RenderSVG] draw a compatibility graph with an optional
// matching highlighted; the CLI's dominates command uses them.
//
// # Concurrency
//
// Matchers hold no state between calls and are safe for concurrent use. A
// Graph must not be modified while a matcher reads it.
package matching
