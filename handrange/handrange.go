package handrange

import "github.com/foldhand/holdem"

// Hand is one concrete weighted starting hand.
type Hand struct {
	Cards  [2]holdem.Card
	Weight float64
}

// HandRange is a weighted set of possible two-card starting hands, parsed
// once from a range string and read-only thereafter — safe to share across
// concurrent equity queries, same as every other post-construction value in
// this module (see equity.go).
type HandRange struct {
	source string
	tokens []Token
	hands  []Hand
}

// Parse builds a HandRange from a range string. Fails with
// [RangeStringError] on any grammar violation, suitedness or top-card
// mismatch, suited pair token, or duplicate card in a single-hand token.
func Parse(s string) (*HandRange, error) {
	tokens, err := StringToTokens(s)
	if err != nil {
		return nil, err
	}
	var hands []Hand
	for _, tok := range tokens {
		pairs, err := tokenToHands(tok.Text)
		if err != nil {
			return nil, err
		}
		for _, p := range pairs {
			hands = append(hands, Hand{Cards: p, Weight: tok.Weight})
		}
	}
	return &HandRange{source: s, tokens: tokens, hands: hands}, nil
}

// MustParse is like [Parse], but panics on error. Intended for tests and
// program setup, not for parsing untrusted input.
func MustParse(s string) *HandRange {
	hr, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return hr
}

// String returns the source range string the HandRange was parsed from.
func (hr *HandRange) String() string {
	return hr.source
}

// Tokens returns the range's expanded (token, weight) pairs.
func (hr *HandRange) Tokens() []Token {
	return hr.tokens
}

// Hands returns the range's concrete weighted hands.
func (hr *HandRange) Hands() []Hand {
	return hr.hands
}

// Len returns the number of concrete weighted hands in the range.
func (hr *HandRange) Len() int {
	return len(hr.hands)
}

// Entries converts the range to a [holdem.Range], the form the equity
// engine's exact and Monte Carlo entry points consume.
func (hr *HandRange) Entries() holdem.Range {
	out := make(holdem.Range, len(hr.hands))
	for i, h := range hr.hands {
		out[i] = holdem.RangeEntry{Hand: h.Cards, Weight: h.Weight}
	}
	return out
}
