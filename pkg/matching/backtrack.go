package matching

type backtracker struct{}

func (backtracker) Name() string { return string(Backtrack) }

// Saturating assigns left vertices in order. next[pos] is the cursor into
// Adj[pos] for the next neighbour to try; the cursors below pos form the
// explicit stack, and used marks the right vertices they hold.
func (backtracker) Saturating(g *Graph) bool {
	if answer, ok := g.trivially(); ok {
		return answer
	}

	n := g.Left()
	used := make([]bool, g.Right)
	held := make([]int, n)
	next := make([]int, n)

	for pos := 0; pos >= 0; {
		if pos == n {
			return true
		}
		placed := false
		for next[pos] < len(g.Adj[pos]) {
			r := g.Adj[pos][next[pos]]
			next[pos]++
			if !used[r] {
				used[r] = true
				held[pos] = r
				placed = true
				break
			}
		}
		if placed {
			pos++
			if pos < n {
				next[pos] = 0
			}
			continue
		}
		pos--
		if pos >= 0 {
			used[held[pos]] = false
		}
	}
	return false
}
