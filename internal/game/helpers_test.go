package game

import (
	rand "math/rand/v2"
	"testing"

	"github.com/lox/flip7/internal/deck"
	"github.com/lox/flip7/internal/randutil"
)

// scripted is a deterministic Strategy for tests. Zero value stays once it
// holds stayAt number cards (never when stayAt is 0), freezes nobody, plays
// FLIP3 on itself and keeps every second chance.
type scripted struct {
	stayAt int

	freezeID int
	freezeOK bool

	flip3ID int
	flip3OK bool

	scAction SecondChanceAction
	scID     int
}

func (s *scripted) Name() string { return "scripted" }

func (s *scripted) ShouldStay(hand []deck.Card, _ *rand.Rand) bool {
	return s.stayAt > 0 && DistinctNumbers(hand) >= s.stayAt
}

func (s *scripted) FreezeTarget(*Player, Opponents) (int, bool) {
	return s.freezeID, s.freezeOK
}

func (s *scripted) Flip3Target(*Player, Opponents) (int, bool) {
	return s.flip3ID, s.flip3OK
}

func (s *scripted) SecondChance(*Player, Opponents) (SecondChanceAction, int) {
	return s.scAction, s.scID
}

// newStackedGame builds a controller dealing the given cards in order
func newStackedGame(t *testing.T, cards string, players ...PlayerSpec) *Controller {
	t.Helper()
	rng := randutil.New(42)
	d := deck.NewStacked(rng, deck.MustParseCards(cards)...)
	c, err := NewControllerWithDeck(d, rng, players, Config{DefaultStrategy: &scripted{}})
	if err != nil {
		t.Fatalf("NewControllerWithDeck: %v", err)
	}
	if !c.StartRound() {
		t.Fatal("StartRound returned false on a new game")
	}
	return c
}

func names(ns ...string) []PlayerSpec {
	specs := make([]PlayerSpec, len(ns))
	for i, n := range ns {
		specs[i] = PlayerSpec{Name: n}
	}
	return specs
}

func mustDeal(t *testing.T, c *Controller, name string) DealResult {
	t.Helper()
	res, err := c.Hit(name)
	if err != nil {
		t.Fatalf("Hit(%s): %v", name, err)
	}
	return res
}
