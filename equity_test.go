package holdem_test

import (
	"math"
	"testing"

	"github.com/foldhand/holdem"
	"github.com/foldhand/holdem/handrange"
)

func TestHandVsRangeExactChop(t *testing.T) {
	hero := [2]holdem.Card{holdem.MustCard("Ac"), holdem.MustCard("Ah")}
	board := holdem.MustCards("Kh Jd 8c 5d 2s")

	aa := handrange.MustParse("AA").Entries()
	got, err := holdem.HandVsRangeExact(hero, aa, board)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.5 {
		t.Errorf("AcAh vs AA = %v, want 0.5", got)
	}

	asAd := handrange.MustParse("AsAd").Entries()
	got, err = holdem.HandVsRangeExact(hero, asAd, board)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.5 {
		t.Errorf("AcAh vs AsAd = %v, want 0.5", got)
	}
}

func TestHandVsRangeExactWideRange(t *testing.T) {
	hero := [2]holdem.Card{holdem.MustCard("As"), holdem.MustCard("Ad")}
	board := holdem.MustCards("Kh Jd 8c 5d 2s")
	villain := handrange.MustParse("AA, A3o, 32s").Entries()

	got, err := holdem.HandVsRangeExact(hero, villain, board)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-0.95) > 1e-9 {
		t.Errorf("AsAd vs AA,A3o,32s = %v, want 0.95", got)
	}
}

func TestHandVsRangeExactEmptyDenominator(t *testing.T) {
	// Hero holds both remaining aces, so "AA" has no legal villain
	// combination left; the documented choice is to return 0.
	hero := [2]holdem.Card{holdem.MustCard("Ac"), holdem.MustCard("Ah")}
	board := holdem.MustCards("As Ad Kh 5d 2s")
	villain := handrange.MustParse("AA").Entries()
	got, err := holdem.HandVsRangeExact(hero, villain, board)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("empty-denominator equity = %v, want 0", got)
	}
}

func TestHandVsRangeMonteCarlo(t *testing.T) {
	hero := [2]holdem.Card{holdem.MustCard("As"), holdem.MustCard("Ad")}
	villain := handrange.MustParse("AA, A3o, 32s").Entries()
	rng := holdem.NewRNGSeed(12345)

	got, err := holdem.HandVsRangeMonteCarlo(hero, villain, nil, 300000, holdem.WithRNG(rng))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-0.85337) > 0.01 {
		t.Errorf("AsAd vs AA,A3o,32s preflop (Monte Carlo) = %v, want ~0.85337", got)
	}
}

func TestAllHandsVsRange(t *testing.T) {
	hero := handrange.MustParse("AsAd, 3h2c").Entries()
	villain := handrange.MustParse("AA, A3o, 32s").Entries()
	rng := holdem.NewRNGSeed(54321)

	result, err := holdem.AllHandsVsRange(hero, villain, nil, 300000, holdem.WithRNG(rng))
	if err != nil {
		t.Fatal(err)
	}
	if len(result) != 2 {
		t.Fatalf("len(result) = %d, want 2", len(result))
	}
	asAd := [2]holdem.Card{holdem.MustCard("As"), holdem.MustCard("Ad")}
	h32 := [2]holdem.Card{holdem.MustCard("3h"), holdem.MustCard("2c")}
	if eq, ok := result[asAd]; !ok || math.Abs(eq-0.85337) > 0.01 {
		t.Errorf("AsAd equity = %v (ok=%v), want ~0.85337", eq, ok)
	}
	if eq, ok := result[h32]; !ok || math.Abs(eq-0.22865) > 0.01 {
		t.Errorf("3h2c equity = %v (ok=%v), want ~0.22865", eq, ok)
	}
}

func TestAllHandsVsRangeEliminatesImpossibleHero(t *testing.T) {
	hero := handrange.MustParse("JsJc, QsJs").Entries()
	villain := handrange.MustParse("JJ").Entries()
	board := holdem.MustCards("Kh Jd 8c")
	rng := holdem.NewRNGSeed(777)

	result, err := holdem.AllHandsVsRange(hero, villain, board, 200000, holdem.WithRNG(rng))
	if err != nil {
		t.Fatal(err)
	}
	if len(result) != 1 {
		t.Fatalf("len(result) = %d, want 1", len(result))
	}
	qsJs := [2]holdem.Card{holdem.MustCard("Qs"), holdem.MustCard("Js")}
	eq, ok := result[qsJs]
	if !ok {
		t.Fatalf("QsJs missing from result")
	}
	if math.Abs(eq-0.03687) > 0.01 {
		t.Errorf("QsJs equity = %v, want ~0.03687", eq)
	}
	jsJc := [2]holdem.Card{holdem.MustCard("Js"), holdem.MustCard("Jc")}
	if _, ok := result[jsJc]; ok {
		t.Errorf("JsJc should have been eliminated as impossible")
	}
}
