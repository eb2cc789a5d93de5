package holdem

// RangeEntry is a single weighted hand: an unordered pair of distinct cards
// and a weight in (0, 1]. This is the concrete form the [handrange] package
// expands range strings into; it lives in the root package (rather than
// alongside the range grammar) because the equity engine below needs it and
// must not import back out to [github.com/foldhand/holdem/handrange].
type RangeEntry struct {
	Hand   [2]Card
	Weight float64
}

// Mask returns the union bitmask of the entry's two cards.
func (e RangeEntry) Mask() uint64 {
	return uint64(e.Hand[0]) | uint64(e.Hand[1])
}

// Range is a weighted set of possible two-card hands, as produced by
// parsing a range string.
type Range []RangeEntry

// cumulativeWeights returns, alongside the range's total weight, a
// running-sum array the same length as r suitable for weighted sampling by
// binary search: drawing x uniformly in [0, total) and finding the first
// index i with cum[i] > x selects r[i] with probability proportional to its
// weight.
func cumulativeWeights(r Range) (cum []float64, total float64) {
	cum = make([]float64, len(r))
	for i, e := range r {
		total += e.Weight
		cum[i] = total
	}
	return cum, total
}
