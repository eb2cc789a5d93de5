package holdem

import "math/bits"

// fullDeckMask is the bitmask of all 52 cards.
const fullDeckMask = uint64(1)<<52 - 1

// Deck is the ordered sequence of all 52 playing cards, index order.
//
// Deck carries no mutable state of its own: sampling is a pure function of
// a caller-supplied dead-card mask and [RNG], so a single Deck value is
// trivially shared across concurrent equity workers (see spec.md §5).
type Deck struct {
	cards [52]Card
}

// NewDeck creates the standard 52-card deck, in index order (clubs 2..A,
// diamonds 2..A, hearts 2..A, spades 2..A).
func NewDeck() *Deck {
	d := &Deck{}
	for i := range d.cards {
		d.cards[i] = New(Rank(i%13), Suit(i/13))
	}
	return d
}

// Cards returns the deck's 52 cards, in index order. The returned slice is
// a copy; mutating it does not affect the deck.
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards[:])
	return cards
}

// Len returns 52, the number of cards in a standard deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Sample draws k distinct cards uniformly at random, without replacement,
// from the cards whose bit is not set in dead. Fails with
// [ErrInsufficientCards] when fewer than k cards remain undealt.
//
// Sampling rejects over a uniform draw in [0, 52): an index is accepted
// only if its card's bit is not already in dead or in the cards drawn so
// far this call. This is simpler than a partial Fisher-Yates shuffle for
// the small k (typically 1-5) relative to the 52-card deck that equity
// queries actually draw.
func (d *Deck) Sample(rng *RNG, k int, dead uint64) ([]Card, error) {
	if k == 0 {
		return nil, nil
	}
	if bits.OnesCount64(^dead&fullDeckMask) < k {
		return nil, ErrInsufficientCards
	}
	out := make([]Card, 0, k)
	drawn := dead
	for len(out) < k {
		i := rng.Intn(52)
		c := d.cards[i]
		if drawn&uint64(c) != 0 {
			continue
		}
		drawn |= uint64(c)
		out = append(out, c)
	}
	return out, nil
}

// MaskOf returns the union bitmask of cards.
func MaskOf(cards ...Card) uint64 {
	var m uint64
	for _, c := range cards {
		m |= uint64(c)
	}
	return m
}
