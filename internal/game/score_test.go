package game

import (
	"testing"

	"github.com/lox/flip7/internal/deck"
	"github.com/lox/flip7/internal/randutil"
)

func TestScore(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		hand   string
		flip7  bool
		busted bool
		want   int
	}{
		{name: "empty hand", hand: "", want: 0},
		{name: "numbers only", hand: "3 5 7", want: 15},
		{name: "x2 doubles numbers then adds modifiers", hand: "2 4 x2 +6", want: 18},
		{name: "plus modifiers are not doubled", hand: "x2 +10 1", want: 12},
		{name: "modifiers without numbers", hand: "+2 +4", want: 6},
		{name: "busted scores zero", hand: "12 11 x2 +10", busted: true, want: 0},
		{name: "flip 7 bonus added last", hand: "0 1 2 3 4 5 6 x2", flip7: true, want: 42 + 15},
		{name: "bonus ignored when busted", hand: "1 2", flip7: true, busted: true, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Score(deck.MustParseCards(tt.hand), tt.flip7, tt.busted)
			if got != tt.want {
				t.Errorf("Score(%s) = %d, want %d", tt.hand, got, tt.want)
			}
		})
	}
}

func TestScoreInvariants(t *testing.T) {
	t.Parallel()
	rng := randutil.New(7)
	all := deck.Composition()

	for i := 0; i < 2000; i++ {
		hand := make([]deck.Card, 0, 8)
		seen := make(map[deck.Card]bool)
		size := rng.IntN(9)
		for len(hand) < size {
			c := all[rng.IntN(len(all))]
			if c.IsAction() || seen[c] {
				continue
			}
			seen[c] = true
			hand = append(hand, c)
		}

		numbers, plus, doubled := 0, 0, false
		for _, c := range hand {
			switch {
			case c.IsNumber():
				numbers += c.Value
			case c.Modifier() == deck.Times2:
				doubled = true
			default:
				plus += c.Modifier().Bonus()
			}
		}
		want := numbers + plus
		if doubled {
			want = 2*numbers + plus
		}

		if got := Score(hand, false, false); got != want {
			t.Fatalf("Score(%v) = %d, want %d", hand, got, want)
		}
		if got := Score(hand, true, false); got != want+Flip7Bonus {
			t.Fatalf("Score(%v, flip7) = %d, want %d", hand, got, want+Flip7Bonus)
		}
		if got := Score(hand, true, true); got != 0 {
			t.Fatalf("busted Score(%v) = %d, want 0", hand, got)
		}
	}
}

func TestHandCounts(t *testing.T) {
	t.Parallel()
	hand := deck.MustParseCards("8 9 x2 3 12 +4")
	if got := NumberSum(hand); got != 32 {
		t.Errorf("NumberSum = %d, want 32", got)
	}
	if got := DistinctNumbers(hand); got != 4 {
		t.Errorf("DistinctNumbers = %d, want 4", got)
	}
	if got := CountAtLeast(hand, 8); got != 3 {
		t.Errorf("CountAtLeast(8) = %d, want 3", got)
	}
}
