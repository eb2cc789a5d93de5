package holdem

import "sort"

// EquityOption configures the Monte Carlo equity entry points. Following
// the teacher's CalcOption pattern (calc.go's NewOddsCalc), options are
// applied in order over the default config (an OS-seeded [RNG] and a reject
// budget of 200), so later options win.
type EquityOption func(*equityConfig)

type equityConfig struct {
	rng        *RNG
	maxRejects int
}

func newEquityConfig(opts []EquityOption) *equityConfig {
	cfg := &equityConfig{
		rng:        NewRNG(),
		maxRejects: 200,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRNG overrides the random source used for sampling. Intended for
// reproducible tests; pair with [NewRNGSeed].
func WithRNG(rng *RNG) EquityOption {
	return func(cfg *equityConfig) {
		cfg.rng = rng
	}
}

// WithMaxRejectSamples overrides how many times a single trial resamples a
// conflicting villain hand before giving up on that trial. The default is
// 200, generous for any range that has at least one legal entry.
func WithMaxRejectSamples(n int) EquityOption {
	return func(cfg *equityConfig) {
		if n > 0 {
			cfg.maxRejects = n
		}
	}
}

// credit is the showdown score hero's hand earns against villain's: 1 for a
// win, 0.5 for a tie, 0 for a loss.
func credit(hero, villain HandRank) float64 {
	switch {
	case hero > villain:
		return 1
	case hero == villain:
		return 0.5
	default:
		return 0
	}
}

// HandVsRangeExact returns hero's exact win-plus-half-tie equity against
// villain, a weighted range, given a partial or complete board (0-5 cards).
//
// Villain entries that share a card with hero or the board are excluded
// entirely, both from the numerator and the denominator; if every entry is
// excluded this way the denominator is zero and HandVsRangeExact returns 0
// (the empty-denominator choice spec.md §9 leaves open — see DESIGN.md).
// Every remaining board completion is enumerated exactly, so a call with a
// short board and a wide villain range can be slow; that is the documented
// exact-enumeration tradeoff, not a bug.
func HandVsRangeExact(hero [2]Card, villain Range, board []Card) (float64, error) {
	if hero[0] == InvalidCard || hero[1] == InvalidCard || hero[0] == hero[1] {
		return 0, ErrInvalidHand
	}
	heroMask := uint64(hero[0]) | uint64(hero[1])
	boardMask := MaskOf(board...)
	dead := heroMask | boardMask
	boardNeed := 5 - len(board)
	if boardNeed < 0 {
		return 0, ErrInvalidHand
	}
	full := NewDeck().Cards()

	var num, den float64
	for _, entry := range villain {
		vMask := entry.Mask()
		if vMask&dead != 0 {
			continue
		}
		pool := undealt(full, dead|vMask)
		if len(pool) < boardNeed {
			continue
		}
		combinations(pool, boardNeed, func(completion []Card) {
			fullBoard := appendCards(board, completion)
			heroRank, _ := Evaluate(appendCards([]Card{hero[0], hero[1]}, fullBoard))
			villRank, _ := Evaluate(appendCards([]Card{entry.Hand[0], entry.Hand[1]}, fullBoard))
			num += entry.Weight * credit(heroRank, villRank)
			den += entry.Weight
		})
	}
	if den == 0 {
		return 0, nil
	}
	return num / den, nil
}

// HandVsRangeMonteCarlo estimates hero's equity against villain the same
// way [HandVsRangeExact] defines it, but by sampling n trials instead of
// enumerating every completion. A trial whose sampled villain hand keeps
// conflicting with the dead-card set past the configured reject budget (see
// [WithMaxRejectSamples]) is skipped and does not count toward the mean.
func HandVsRangeMonteCarlo(hero [2]Card, villain Range, board []Card, n int, opts ...EquityOption) (float64, error) {
	if hero[0] == InvalidCard || hero[1] == InvalidCard || hero[0] == hero[1] {
		return 0, ErrInvalidHand
	}
	cfg := newEquityConfig(opts)
	cum, total := cumulativeWeights(villain)
	deck := NewDeck()
	heroMask := uint64(hero[0]) | uint64(hero[1])
	boardMask := MaskOf(board...)
	dead := heroMask | boardMask
	boardNeed := 5 - len(board)
	if boardNeed < 0 {
		return 0, ErrInvalidHand
	}

	var num, count float64
	for t := 0; t < n; t++ {
		vHand, ok := sampleWeighted(cfg.rng, villain, cum, total, dead, cfg.maxRejects)
		if !ok {
			continue
		}
		vMask := uint64(vHand[0]) | uint64(vHand[1])
		completion, err := deck.Sample(cfg.rng, boardNeed, dead|vMask)
		if err != nil {
			continue
		}
		fullBoard := appendCards(board, completion)
		heroRank, _ := Evaluate(appendCards([]Card{hero[0], hero[1]}, fullBoard))
		villRank, _ := Evaluate(appendCards([]Card{vHand[0], vHand[1]}, fullBoard))
		num += credit(heroRank, villRank)
		count++
	}
	if count == 0 {
		return 0, nil
	}
	return num / count, nil
}

// AllHandsVsRange estimates every heroRange hand's Monte Carlo equity
// against villain in one pass: each of the n trials deals a single villain
// hand and board completion, shared across all hero hands that don't
// conflict with it that trial. A hero hand that conflicts with every
// completion across all n trials (for example, holding a card that is also
// on the board) never accumulates a legal trial and is omitted from the
// result entirely. A hero hand that only sometimes conflicts keeps its
// average over whichever trials were legal for it — its sample count may
// differ from other hero hands' (see DESIGN.md on this Open Question).
func AllHandsVsRange(heroRange, villain Range, board []Card, n int, opts ...EquityOption) (map[[2]Card]float64, error) {
	cfg := newEquityConfig(opts)
	cum, total := cumulativeWeights(villain)
	deck := NewDeck()
	boardMask := MaskOf(board...)
	boardNeed := 5 - len(board)
	if boardNeed < 0 {
		return nil, ErrInvalidHand
	}

	type acc struct{ num, count float64 }
	accum := make(map[[2]Card]*acc, len(heroRange))
	for _, h := range heroRange {
		accum[h.Hand] = &acc{}
	}

	for t := 0; t < n; t++ {
		vHand, ok := sampleWeighted(cfg.rng, villain, cum, total, boardMask, cfg.maxRejects)
		if !ok {
			continue
		}
		vMask := uint64(vHand[0]) | uint64(vHand[1])
		completion, err := deck.Sample(cfg.rng, boardNeed, boardMask|vMask)
		if err != nil {
			continue
		}
		fullBoard := appendCards(board, completion)
		trialDead := boardMask | vMask | MaskOf(completion...)
		villRank, _ := Evaluate(appendCards([]Card{vHand[0], vHand[1]}, fullBoard))

		for _, h := range heroRange {
			heroMask := uint64(h.Hand[0]) | uint64(h.Hand[1])
			if heroMask&trialDead != 0 {
				continue
			}
			heroRank, _ := Evaluate(appendCards([]Card{h.Hand[0], h.Hand[1]}, fullBoard))
			a := accum[h.Hand]
			a.num += credit(heroRank, villRank)
			a.count++
		}
	}

	result := make(map[[2]Card]float64, len(accum))
	for hand, a := range accum {
		if a.count == 0 {
			continue
		}
		result[hand] = a.num / a.count
	}
	return result, nil
}

// sampleWeighted draws one entry from r using the cumulative-weight arrays
// built by [cumulativeWeights], resampling up to maxRejects times when the
// draw conflicts with dead. Returns ok=false if no legal entry was found in
// the budget, or r is empty.
func sampleWeighted(rng *RNG, r Range, cum []float64, total float64, dead uint64, maxRejects int) ([2]Card, bool) {
	if len(r) == 0 || total <= 0 {
		return [2]Card{}, false
	}
	for attempt := 0; attempt < maxRejects; attempt++ {
		x := rng.Float64() * total
		i := sort.Search(len(cum), func(i int) bool { return cum[i] > x })
		if i >= len(r) {
			i = len(r) - 1
		}
		hand := r[i].Hand
		if (uint64(hand[0])|uint64(hand[1]))&dead != 0 {
			continue
		}
		return hand, true
	}
	return [2]Card{}, false
}

// undealt returns the cards of full whose bit is not set in dead.
func undealt(full []Card, dead uint64) []Card {
	out := make([]Card, 0, len(full))
	for _, c := range full {
		if uint64(c)&dead == 0 {
			out = append(out, c)
		}
	}
	return out
}

// appendCards returns a freshly allocated slice holding a's cards followed
// by b's, leaving both inputs untouched.
func appendCards(a, b []Card) []Card {
	out := make([]Card, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
