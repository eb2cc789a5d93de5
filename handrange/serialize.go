package handrange

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/foldhand/holdem"
)

// tagCollator orders tag tokens (e.g. "#UTG#", "#co_range#") deterministically
// by a real collation rather than raw byte order.
var tagCollator = collate.New(language.Und)

// TokensToString serializes a token list back into range-string form. It is
// an inverse of [StringToTokens] at the level of the set of weighted hands,
// not necessarily byte-for-byte: tokens are grouped by weight (weight-1.0
// tokens first, unparenthesized, then "NN%(...)" groups high to low), and
// within a group, contiguous runs of pair or handtype tokens collapse into
// "X-Y" or "X+" form. Group weights are written as whole percentages, so a
// weight that is not a whole percentage comes back rounded to the nearest one.
func TokensToString(tokens []Token) (string, error) {
	seen := make(map[float64]bool)
	for _, t := range tokens {
		seen[t.Weight] = true
	}
	var groups []string
	if seen[1.0] {
		s, err := tokensForWeight(tokens, 1.0)
		if err != nil {
			return "", err
		}
		groups = append(groups, s)
		delete(seen, 1.0)
	}
	weights := make([]float64, 0, len(seen))
	for w := range seen {
		weights = append(weights, w)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(weights)))
	for _, w := range weights {
		s, err := tokensForWeight(tokens, w)
		if err != nil {
			return "", err
		}
		groups = append(groups, fmt.Sprintf("%d%%(%s)", int(math.Round(100*w)), s))
	}
	return strings.Join(groups, ", "), nil
}

// tokensForWeight renders every token carrying exactly weight into the
// comma-joined body of a single group: pairs (descending, collapsed), then
// other handtypes (grouped by top card and suitedness), then single hands,
// then tags.
func tokensForWeight(tokens []Token, weight float64) (string, error) {
	var normalized []string
	for _, t := range tokens {
		if t.Weight != weight {
			continue
		}
		n, err := normalizeToken(t.Text)
		if err != nil {
			return "", err
		}
		normalized = append(normalized, n)
	}

	var pairs, singleHands, other, tags []string
	for _, t := range normalized {
		switch {
		case t[0] == '#':
			tags = append(tags, t)
		case t[len(t)-1] == 'p':
			pairs = append(pairs, t[:len(t)-1])
		case len(t) == 4:
			singleHands = append(singleHands, t)
		default:
			other = append(other, t)
		}
	}

	sort.Slice(tags, func(i, j int) bool { return tagCollator.CompareString(tags[i], tags[j]) < 0 })

	sort.Slice(pairs, func(i, j int) bool { return rankIndex(pairs[i][0]) < rankIndex(pairs[j][0]) })
	pairStrings := group(pairs)
	reverseStrings(pairStrings)

	sort.Slice(singleHands, func(i, j int) bool {
		a, b := singleHands[i], singleHands[j]
		ka := [4]int{rankIndex(a[0]), rankIndex(a[2]), suitIndex(a[1]), suitIndex(a[3])}
		kb := [4]int{rankIndex(b[0]), rankIndex(b[2]), suitIndex(b[1]), suitIndex(b[3])}
		return tupleGreater(ka, kb)
	})

	var otherStrings []string
	for _, r := range holdem.Ranks {
		for _, suited := range []byte{'o', 's', 'n'} {
			var filt []string
			for _, t := range other {
				if t[0] == byte(r) && t[len(t)-1] == suited && rankIndex(t[0]) > rankIndex(t[1]) {
					filt = append(filt, t)
				}
			}
			sort.Slice(filt, func(i, j int) bool { return rankIndex(filt[i][1]) < rankIndex(filt[j][1]) })
			otherStrings = append(otherStrings, group(filt)...)
		}
	}
	reverseStrings(otherStrings)

	parts := make([]string, 0, len(pairStrings)+len(otherStrings)+len(singleHands)+len(tags))
	parts = append(parts, pairStrings...)
	parts = append(parts, otherStrings...)
	parts = append(parts, singleHands...)
	parts = append(parts, tags...)
	return strings.Join(parts, ", "), nil
}

// group collapses a rank-contiguous, ascending-sorted run of tokens (pairs
// or handtypes, keyed by the rank character at index 1) into "X-Y"/"X+"
// forms wherever the run has length >= 2.
func group(toks []string) []string {
	if len(toks) <= 1 {
		return append([]string(nil), toks...)
	}
	type run struct {
		bot, top string
		single   bool
	}
	var runs []run
	bot := toks[0]
	var last string
	for i := 0; i < len(toks)-1; i++ {
		t1, t2 := toks[i], toks[i+1]
		if rankIndex(t2[1])-rankIndex(t1[1]) > 1 {
			if t1 == bot {
				runs = append(runs, run{bot: bot, single: true})
			} else {
				runs = append(runs, run{bot: bot, top: t1})
			}
			bot = t2
		}
		last = t2
	}
	if bot == last {
		runs = append(runs, run{bot: last, single: true})
	} else {
		runs = append(runs, run{bot: bot, top: last})
	}
	out := make([]string, 0, len(runs))
	for _, g := range runs {
		switch {
		case g.single:
			out = append(out, g.bot)
		case g.top == "AA" || rankIndex(g.top[0])-1 == rankIndex(g.top[1]):
			out = append(out, g.bot+"+")
		default:
			out = append(out, g.top+"-"+g.bot)
		}
	}
	return out
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func tupleGreater(a, b [4]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}
