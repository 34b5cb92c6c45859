package perm

import "iter"

// Unmatched marks a position with no partner in an injection.
const Unmatched = -1

// Injections yields every partial injective map from [0, n) into [0, m).
//
// Each step is a slice f of length n where f[i] is the partner of i in
// [0, m), or Unmatched. Distinct matched positions always have distinct
// partners. The empty injection (all Unmatched) comes first, and the
// enumeration is otherwise depth-first over positions with partners tried in
// ascending order before Unmatched.
//
// The yielded slice is reused between steps; clone it to retain it.
//
// The number of injections is CountInjections(n, m).
func Injections(n, m int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		f := make([]int, n)
		for i := range f {
			f[i] = Unmatched
		}
		if !yield(f) || n == 0 {
			return
		}

		used := make([]bool, m)
		// choice[i] is the next candidate partner for position i; m means
		// "Unmatched", m+1 means exhausted.
		choice := make([]int, n)
		i := 0
		for i >= 0 {
			if i == n {
				if !emptyInjection(f) && !yield(f) {
					return
				}
				i--
				continue
			}
			if f[i] != Unmatched {
				used[f[i]] = false
				f[i] = Unmatched
			}
			c := choice[i]
			for c < m && used[c] {
				c++
			}
			switch {
			case c < m:
				f[i] = c
				used[c] = true
				choice[i] = c + 1
				i++
				if i < n {
					choice[i] = 0
				}
			case c == m:
				choice[i] = m + 1
				i++
				if i < n {
					choice[i] = 0
				}
			default:
				choice[i] = 0
				i--
			}
		}
	}
}

func emptyInjection(f []int) bool {
	for _, x := range f {
		if x != Unmatched {
			return false
		}
	}
	return true
}

// CountInjections returns the number of partial injections from an n-set
// into an m-set: the sum over k of C(n,k)·C(m,k)·k!.
func CountInjections(n, m int) int {
	total := 0
	for k := 0; k <= min(n, m); k++ {
		total += binomial(n, k) * binomial(m, k) * Factorial(k)
	}
	return total
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	r := 1
	for i := 1; i <= k; i++ {
		r = r * (n - k + i) / i
	}
	return r
}
