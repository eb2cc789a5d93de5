package holdem

import "testing"

func TestEvaluateTable(t *testing.T) {
	tests := []struct {
		cards    string
		value    HandRank
		category string
	}{
		{"2c 3d 4h 5s 7s 8d 9c", 484658, "High Card"},
		{"2c 3d 4h 4s 7s 8d 9c", 16938576, "Pair"},
		{"2c 3d 4h 4s 7s 7d 9c", 33892096, "Two Pair"},
		{"2c 3d 4h 7s 7c 7d 9c", 50688512, "Trips"},
		{"2c 3d 4h 5s 7c 7d 6c", 67436544, "Straight"},
		{"Ac 3h 4h 5s 2h Jh Kd", 67305472, "Straight"},
		{"Ac 3h Th 5s Qh Jh Kd", 67895296, "Straight"},
		{"2c 3h 4h 5s Jh 7h 6h", 84497441, "Flush"},
		{"Ac 3h Th Ts Ks Kh Kd", 101416960, "Full House"},
		{"Ac 3h Th Ks Kh Kd Kc", 118210560, "Quads"},
		{"3c 2c 5c Ac 4c Kd Kc", 134414336, "Straight Flush"},
	}
	for _, tt := range tests {
		cards := MustCards(tt.cards)
		got, err := Evaluate(cards)
		if err != nil {
			t.Fatalf("Evaluate(%q): %v", tt.cards, err)
		}
		if got != tt.value {
			t.Errorf("Evaluate(%q) = %d, want %d", tt.cards, got, tt.value)
		}
		if hand := HandType(got); hand != tt.category {
			t.Errorf("HandType(Evaluate(%q)) = %q, want %q", tt.cards, hand, tt.category)
		}
	}
}

func TestEvaluateOrderIndependent(t *testing.T) {
	cards := MustCards("Ac 3h Th Ts Ks Kh Kd")
	want, err := Evaluate(cards)
	if err != nil {
		t.Fatal(err)
	}
	perm := MustCards("Kd Ks Th Ac Kh Ts 3h")
	got, err := Evaluate(perm)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Evaluate(permuted) = %d, want %d", got, want)
	}
}

func TestEvaluateInvalid(t *testing.T) {
	if _, err := Evaluate(MustCards("As Ks Qs Js")); err != ErrInvalidHand {
		t.Errorf("4 cards: err = %v, want ErrInvalidHand", err)
	}
	if _, err := Evaluate(MustCards("As As Ks Qs Js")); err != ErrInvalidHand {
		t.Errorf("duplicate: err = %v, want ErrInvalidHand", err)
	}
	eight := MustCards("As Ks Qs Js Ts 9s 8s 7s")
	if _, err := Evaluate(eight); err != ErrInvalidHand {
		t.Errorf("8 cards: err = %v, want ErrInvalidHand", err)
	}
}

func TestEvaluateCategoryMonotone(t *testing.T) {
	hands := map[string]string{
		"High Card":      "2c 3d 4h 7s 9c Th Ks",
		"Pair":           "2c 2d 4h 7s 9c Th Ks",
		"Two Pair":       "2c 2d 4h 4s 9c Th Ks",
		"Trips":          "2c 2d 2h 4s 9c Th Ks",
		"Straight":       "2c 3d 4h 5s 6c Th Ks",
		"Flush":          "2c 4c 6c 8c Tc Th Ks",
		"Full House":     "2c 2d 2h 4s 4c Th Ks",
		"Quads":          "2c 2d 2h 2s 4c Th Ks",
		"Straight Flush": "2c 3c 4c 5c 6c Th Ks",
	}
	order := []string{"High Card", "Pair", "Two Pair", "Trips", "Straight", "Flush", "Full House", "Quads", "Straight Flush"}
	var values []HandRank
	for _, name := range order {
		v, err := Evaluate(MustCards(hands[name]))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		values = append(values, v)
	}
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			t.Errorf("%s (%d) not greater than %s (%d)", order[i], values[i], order[i-1], values[i-1])
		}
	}
}
