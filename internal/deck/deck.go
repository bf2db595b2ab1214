package deck

import (
	rand "math/rand/v2"
)

// TotalCards is the size of a complete Flip 7 deck: 78 number cards,
// 6 modifiers and 3 action cards.
const TotalCards = 87

// Composition returns the cards of a fresh deck in a fixed, unshuffled order.
// Number card n appears n times (0 appears once); every modifier and action
// card appears exactly once.
func Composition() []Card {
	cards := make([]Card, 0, TotalCards)
	cards = append(cards, NumberCard(0))
	for n := 1; n <= MaxNumber; n++ {
		for i := 0; i < n; i++ {
			cards = append(cards, NumberCard(n))
		}
	}
	for m := Plus2; m <= Times2; m++ {
		cards = append(cards, ModifierCard(m))
	}
	for a := Freeze; a <= SecondChance; a++ {
		cards = append(cards, ActionCard(a))
	}
	return cards
}

// Deck holds the draw pile and the discard pile. Cards are drawn from the end
// of the draw pile; when it runs dry the discard pile is shuffled back in.
type Deck struct {
	cards   []Card
	discard []Card
	rng     *rand.Rand
}

// New creates a complete deck shuffled with rng
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: Composition(),
		rng:   rng,
	}
	d.Shuffle()
	return d
}

// NewStacked creates a deck that deals the given cards in order, first card
// first. Reshuffles of the discard pile still use rng.
func NewStacked(rng *rand.Rand, cards ...Card) *Deck {
	pile := make([]Card, len(cards))
	for i, c := range cards {
		pile[len(cards)-1-i] = c
	}
	return &Deck{cards: pile, rng: rng}
}

// Shuffle randomizes the order of the draw pile
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the next card. An empty draw pile is refilled from
// the discard pile first; false means neither pile holds a card.
func (d *Deck) Draw() (Card, bool) {
	d.reshuffleIfNeeded()
	if len(d.cards) == 0 {
		return Card{}, false
	}

	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	return card, true
}

// Discard moves cards onto the discard pile
func (d *Deck) Discard(cards ...Card) {
	d.discard = append(d.discard, cards...)
}

// Remaining returns the number of cards left in the draw pile
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// DiscardSize returns the number of cards in the discard pile
func (d *Deck) DiscardSize() int {
	return len(d.discard)
}

// Total returns the cards held by both piles
func (d *Deck) Total() int {
	return len(d.cards) + len(d.discard)
}

// IsEmpty returns true when no card can be drawn
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0 && len(d.discard) == 0
}

func (d *Deck) reshuffleIfNeeded() {
	if len(d.cards) > 0 || len(d.discard) == 0 {
		return
	}
	d.cards = append(d.cards, d.discard...)
	d.discard = d.discard[:0]
	d.Shuffle()
}
