package game

import "github.com/lox/flip7/internal/deck"

// Flip7Bonus is the flat bonus for collecting seven distinct number cards
const Flip7Bonus = 15

// Flip7Count is the number of distinct number cards that ends the round
const Flip7Count = 7

// Score returns the point value of a hand. A busted hand scores nothing.
// Otherwise the number cards are summed, x2 doubles that sum only, each +N
// modifier is added on top and the flip 7 bonus comes last.
func Score(hand []deck.Card, flip7Bonus, busted bool) int {
	if busted {
		return 0
	}

	base := 0
	doubled := false
	bonus := 0
	for _, c := range hand {
		switch c.Kind {
		case deck.Number:
			base += c.Value
		case deck.Modifier:
			if c.Modifier() == deck.Times2 {
				doubled = true
			} else {
				bonus += c.Modifier().Bonus()
			}
		}
	}

	if doubled {
		base *= 2
	}
	score := base + bonus
	if flip7Bonus {
		score += Flip7Bonus
	}
	return score
}

// NumberSum returns the sum of the number cards in a hand
func NumberSum(hand []deck.Card) int {
	sum := 0
	for _, c := range hand {
		if c.IsNumber() {
			sum += c.Value
		}
	}
	return sum
}

// DistinctNumbers returns how many different number values a hand holds
func DistinctNumbers(hand []deck.Card) int {
	seen := make(map[int]bool, len(hand))
	for _, c := range hand {
		if c.IsNumber() {
			seen[c.Value] = true
		}
	}
	return len(seen)
}

// CountAtLeast returns how many number cards in a hand are >= threshold
func CountAtLeast(hand []deck.Card, threshold int) int {
	n := 0
	for _, c := range hand {
		if c.IsNumber() && c.Value >= threshold {
			n++
		}
	}
	return n
}
