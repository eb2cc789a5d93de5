package holdem

import (
	"math/bits"
	"sort"
)

// Evaluate returns the totally-ordered [HandRank] of the best five-card
// poker hand extractable from cards, which must contain 5, 6, or 7 distinct
// cards. Fails with [ErrInvalidHand] given any other count, an
// [InvalidCard], or a duplicate card.
//
// The algorithm works directly off bitmasks rather than enumerating 5-card
// subsets: a union mask over all of cards is split into 4 13-bit suit rows
// (see card.go for the stride-13 layout), a flush and/or straight is
// checked against those rows and their union, and otherwise the hand is
// categorized by how many suits hold each rank. This is the same bit-mask
// style the teacher's Cactus Kev table generator uses (see DESIGN.md), but
// table-free: category and kickers are computed and packed directly.
func Evaluate(cards []Card) (HandRank, error) {
	if n := len(cards); n < 5 || n > 7 {
		return 0, ErrInvalidHand
	}
	var union uint64
	for _, c := range cards {
		if c == InvalidCard || union&uint64(c) != 0 {
			return 0, ErrInvalidHand
		}
		union |= uint64(c)
	}
	var rows [4]uint16
	for s := 0; s < 4; s++ {
		rows[s] = uint16((union >> uint(13*s)) & 0x1fff)
	}
	rankPresence := rows[0] | rows[1] | rows[2] | rows[3]

	flushSuit := -1
	for s := 0; s < 4; s++ {
		if bits.OnesCount16(rows[s]) >= 5 {
			flushSuit = s
			break
		}
	}
	if flushSuit >= 0 {
		if high, ok := straightHigh(rows[flushSuit]); ok {
			return pack(StraightFlush, high), nil
		}
	}

	var counts [13]int
	for r := 0; r < 13; r++ {
		for s := 0; s < 4; s++ {
			if rows[s]&(1<<uint(r)) != 0 {
				counts[r]++
			}
		}
	}
	var quads, trips, pairs []int
	for r := 12; r >= 0; r-- {
		switch counts[r] {
		case 4:
			quads = append(quads, r)
		case 3:
			trips = append(trips, r)
		case 2:
			pairs = append(pairs, r)
		}
	}
	present := func() []int {
		v := make([]int, 0, 7)
		for r := 12; r >= 0; r-- {
			if rankPresence&(1<<uint(r)) != 0 {
				v = append(v, r)
			}
		}
		return v
	}
	others := func(exclude ...int) []int {
		skip := func(r int) bool {
			for _, e := range exclude {
				if r == e {
					return true
				}
			}
			return false
		}
		var v []int
		for _, r := range present() {
			if !skip(r) {
				v = append(v, r)
			}
		}
		return v
	}

	if len(quads) > 0 {
		quadRank := quads[0]
		kickers := others(quadRank)
		if len(kickers) > 1 {
			kickers = kickers[:1]
		}
		return pack(FourOfAKind, append([]int{quadRank}, kickers...)...), nil
	}

	if len(trips) > 0 {
		pairRanks := append(append([]int{}, trips[1:]...), pairs...)
		sort.Sort(sort.Reverse(sort.IntSlice(pairRanks)))
		if len(pairRanks) > 0 {
			return pack(FullHouse, trips[0], pairRanks[0]), nil
		}
	}

	if flushSuit >= 0 {
		var flushRanks []int
		for r := 12; r >= 0 && len(flushRanks) < 5; r-- {
			if rows[flushSuit]&(1<<uint(r)) != 0 {
				flushRanks = append(flushRanks, r)
			}
		}
		return pack(Flush, flushRanks...), nil
	}

	if high, ok := straightHigh(rankPresence); ok {
		return pack(Straight, high), nil
	}

	if len(trips) > 0 {
		kickers := others(trips[0])
		if len(kickers) > 2 {
			kickers = kickers[:2]
		}
		return pack(ThreeOfAKind, append([]int{trips[0]}, kickers...)...), nil
	}

	if len(pairs) >= 2 {
		hi, lo := pairs[0], pairs[1]
		kickers := others(hi, lo)
		if len(kickers) > 1 {
			kickers = kickers[:1]
		}
		return pack(TwoPair, append([]int{hi, lo}, kickers...)...), nil
	}

	if len(pairs) == 1 {
		kickers := others(pairs[0])
		if len(kickers) > 3 {
			kickers = kickers[:3]
		}
		return pack(Pair, append([]int{pairs[0]}, kickers...)...), nil
	}

	top := present()
	if len(top) > 5 {
		top = top[:5]
	}
	return pack(HighCard, top...), nil
}

// straightHigh returns the high card index (0..12) of the best straight
// contained in a 13-bit rank-presence mask, and whether one was found. Both
// a normal straight and the ace-low wheel (A-2-3-4-5, reported with high
// card index 3, the "5") are recognized; the wheel is checked last since it
// is the lowest-ranking straight.
func straightHigh(mask uint16) (int, bool) {
	for high := 12; high >= 4; high-- {
		m := uint16(0x1f) << uint(high-4)
		if mask&m == m {
			return high, true
		}
	}
	const wheel = uint16(0x100f) // ranks 2,3,4,5,A
	if mask&wheel == wheel {
		return 3, true
	}
	return -1, false
}
