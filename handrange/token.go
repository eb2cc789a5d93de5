package handrange

import "github.com/foldhand/holdem"

func isRankChar(b byte) bool {
	return holdem.RankFromByte(b) != holdem.InvalidRank
}

func isSuitChar(b byte) bool {
	return holdem.SuitFromByte(b) != holdem.InvalidSuit
}

func rankIndex(b byte) int {
	return holdem.RankFromByte(b).Index()
}

func suitIndex(b byte) int {
	return holdem.SuitFromByte(b).Index()
}

// tokenSuitedness reports a handtype token's suitedness: "s" or "o" for an
// explicit 3-character token, "p" for an unsuffixed pair, or "n" if
// suitedness was left unspecified. Fails if a 3-character token's two rank
// characters are equal — pairs cannot carry a suitedness suffix.
func tokenSuitedness(token string) (string, error) {
	if len(token) == 3 {
		if rankIndex(token[0]) == rankIndex(token[1]) {
			return "", errTokenf(token, "pairs cannot have suitedness")
		}
		return string(token[2]), nil
	}
	if rankIndex(token[0]) == rankIndex(token[1]) {
		return "p", nil
	}
	return "n", nil
}

// normalizeToken puts a handtype or single-hand token into canonical form:
// the higher rank first for handtypes (with the pair suffix "p" appended
// when no suitedness was given), and the higher-ranked card first (ties
// broken by suit index, descending) for single hands. Tag tokens pass
// through unchanged.
func normalizeToken(token string) (string, error) {
	if len(token) > 0 && token[0] == '#' {
		return token, nil
	}
	if len(token) == 4 {
		r0, r1 := rankIndex(token[0]), rankIndex(token[2])
		s0, s1 := suitIndex(token[1]), suitIndex(token[3])
		if r0 == r1 && s0 == s1 {
			return "", errTokenf(token, "duplicate card in single hand")
		}
		if r0 < r1 || (r0 == r1 && s0 < s1) {
			return token[2:] + token[:2], nil
		}
		return token, nil
	}
	suited, err := tokenSuitedness(token)
	if err != nil {
		return "", err
	}
	hi, lo := rankIndex(token[0]), rankIndex(token[1])
	if lo > hi {
		hi, lo = lo, hi
	}
	return string(holdem.Ranks[hi]) + string(holdem.Ranks[lo]) + suited, nil
}

// expandSuitedness takes a normalized token (always carrying an explicit
// suitedness letter for non-single-hand tokens) and returns its final
// concrete token form(s): unspecified suitedness splits into offsuit and
// suited, a pair token drops its trailing "p", and everything else (single
// hands included) passes through unchanged.
func expandSuitedness(token string) []string {
	if len(token) == 4 {
		return []string{token}
	}
	base := token[:2]
	switch token[len(token)-1] {
	case 'n':
		return []string{base + "o", base + "s"}
	case 'p':
		return []string{base}
	default:
		return []string{token}
	}
}

// expandBare normalizes and expands a single handtype_atom with no "+" or
// "-" suffix.
func expandBare(token string) ([]string, error) {
	normalized, err := normalizeToken(token)
	if err != nil {
		return nil, err
	}
	return expandSuitedness(normalized), nil
}

// expandPlus expands a "X+" handtype_atom: for a pair, every pair rank from
// X up to AA; for a non-pair, every kicker from X's kicker rank up to one
// below its top card, top card held fixed.
func expandPlus(token string) ([]string, error) {
	suited, err := tokenSuitedness(token)
	if err != nil {
		return nil, err
	}
	normalized, err := normalizeToken(token)
	if err != nil {
		return nil, err
	}
	hi, lo := rankIndex(normalized[0]), rankIndex(normalized[1])
	top := hi - 1
	if suited == "p" {
		top = 12 // Ace
	}
	var out []string
	for i := lo; i <= top; i++ {
		var tok string
		if suited == "p" {
			tok = string(holdem.Ranks[i]) + string(holdem.Ranks[i]) + "p"
		} else {
			tok = string(holdem.Ranks[hi]) + string(holdem.Ranks[i]) + suited
		}
		out = append(out, expandSuitedness(tok)...)
	}
	return out, nil
}

// expandRange expands a "X-Y" handtype_atom. X and Y must share suitedness,
// and for non-pairs must share a top card; either failure raises a
// [RangeStringError]. The lower of the two kicker (or pair) ranks and the
// higher are determined from the tokens themselves, independent of which
// one was written first.
func expandRange(botToken, topToken string) ([]string, error) {
	suited, err := tokenSuitedness(botToken)
	if err != nil {
		return nil, err
	}
	topSuited, err := tokenSuitedness(topToken)
	if err != nil {
		return nil, err
	}
	if suited != topSuited {
		return nil, errTokenf(botToken+"-"+topToken, "suitedness mismatch")
	}
	normBot, err := normalizeToken(botToken)
	if err != nil {
		return nil, err
	}
	normTop, err := normalizeToken(topToken)
	if err != nil {
		return nil, err
	}
	botHi, botLo := rankIndex(normBot[0]), rankIndex(normBot[1])
	topHi, topLo := rankIndex(normTop[0]), rankIndex(normTop[1])
	if topLo < botLo {
		botHi, botLo, topHi, topLo = topHi, topLo, botHi, botLo
	}
	if suited != "p" && topHi != botHi {
		return nil, errTokenf(botToken+"-"+topToken, "top card mismatch")
	}
	var out []string
	for i := botLo; i <= topLo; i++ {
		var tok string
		if suited == "p" {
			tok = string(holdem.Ranks[i]) + string(holdem.Ranks[i]) + "p"
		} else {
			tok = string(holdem.Ranks[topHi]) + string(holdem.Ranks[i]) + suited
		}
		out = append(out, expandSuitedness(tok)...)
	}
	return out, nil
}

// tokenToHands returns the concrete (card, card) pairs a normalized
// handtype or single-hand token expands to: 1 for a single hand, 6 for a
// pair, 4 for suited, 12 for offsuit, and none at all for a tag token (an
// opaque marker, never a concrete hand). Unspecified suitedness ("n") is
// never passed in here; [expandSuitedness] always splits it into "o" and
// "s" first.
func tokenToHands(token string) ([][2]holdem.Card, error) {
	if len(token) > 0 && token[0] == '#' {
		return nil, nil
	}
	if len(token) == 4 {
		c1, err := holdem.ParseCard(token[:2])
		if err != nil {
			return nil, err
		}
		c2, err := holdem.ParseCard(token[2:])
		if err != nil {
			return nil, err
		}
		if c1 == c2 {
			return nil, errTokenf(token, "duplicate card in single hand")
		}
		return [][2]holdem.Card{{c1, c2}}, nil
	}
	suited, err := tokenSuitedness(token)
	if err != nil {
		return nil, err
	}
	r1, r2 := holdem.RankFromByte(token[0]), holdem.RankFromByte(token[1])
	var hands [][2]holdem.Card
	for s1 := 0; s1 < 4; s1++ {
		var others []int
		switch suited {
		case "s":
			others = []int{s1}
		case "o":
			for s2 := 0; s2 < 4; s2++ {
				if s2 != s1 {
					others = append(others, s2)
				}
			}
		case "p":
			for s2 := s1 + 1; s2 < 4; s2++ {
				others = append(others, s2)
			}
		}
		for _, s2 := range others {
			a := holdem.New(r1, holdem.Suit(s1))
			b := holdem.New(r2, holdem.Suit(s2))
			if suited == "p" {
				a, b = b, a
			}
			hands = append(hands, [2]holdem.Card{a, b})
		}
	}
	return hands, nil
}
