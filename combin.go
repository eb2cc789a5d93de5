package holdem

// combinations calls fn with each k-element subset of pool, in lexicographic
// index order, reusing a single scratch slice across calls. fn must not
// retain the slice it is given; callers that need to keep a subset should
// copy it.
//
// Used by the exact equity engine to enumerate board completions: with a
// 52-card deck and at most 5 undealt board cards, the largest call this
// package makes is C(48,5) = 1,712,304, small enough that a plain recursive
// walk (rather than the teacher's table-driven two-plus-two approach, out of
// scope here — see DESIGN.md) is the right amount of machinery.
func combinations(pool []Card, k int, fn func([]Card)) {
	if k < 0 || k > len(pool) {
		return
	}
	if k == 0 {
		fn(nil)
		return
	}
	scratch := make([]Card, k)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == k {
			fn(scratch)
			return
		}
		for i := start; i <= len(pool)-(k-depth); i++ {
			scratch[depth] = pool[i]
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)
}

// countCombinations returns C(n, k), or 0 if k is out of range.
func countCombinations(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}
