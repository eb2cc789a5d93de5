// Package holdem is a library for working with Texas Hold'em playing cards,
// evaluating 5–7 card poker hands, and computing a hero hand's equity
// against a weighted opponent range.
//
// The package is organized, leaf first, as cards and a deck (bitmask
// representation and uniform sampling), a 7-card evaluator producing a
// totally-ordered [HandRank], and an equity engine layered on top of both.
// Opponent ranges are described by the range-string grammar implemented in
// the sibling [github.com/foldhand/holdem/handrange] package.
package holdem
