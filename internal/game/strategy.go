package game

import (
	rand "math/rand/v2"

	"github.com/lox/flip7/internal/deck"
)

// SecondChanceAction is what a player does with a drawn SECOND_CHANCE card
type SecondChanceAction uint8

const (
	Keep SecondChanceAction = iota
	Give
	Discard
)

// String returns the string representation of the action
func (a SecondChanceAction) String() string {
	switch a {
	case Keep:
		return "keep"
	case Give:
		return "give"
	case Discard:
		return "discard"
	default:
		return "unknown"
	}
}

// Opponent is an active opponent and its table index
type Opponent struct {
	ID     int
	Player *Player
}

// Opponents lists the active opponents of a player in table order
type Opponents []Opponent

// Get returns the opponent with the given id
func (o Opponents) Get(id int) (*Player, bool) {
	for _, op := range o {
		if op.ID == id {
			return op.Player, true
		}
	}
	return nil, false
}

// Strategy decides for a player. Implementations are shared by many players
// and must not keep per-player state; counters live on the Player.
// All randomness comes from the session's rng.
type Strategy interface {
	// Name identifies the strategy in logs and leaderboards
	Name() string

	// ShouldStay returns true to stop drawing with the given hand
	ShouldStay(hand []deck.Card, rng *rand.Rand) bool

	// FreezeTarget picks the opponent to freeze; false means no target
	FreezeTarget(self *Player, opponents Opponents) (int, bool)

	// Flip3Target picks the opponent forced to draw three; false means self
	Flip3Target(self *Player, opponents Opponents) (int, bool)

	// SecondChance decides what to do with a SECOND_CHANCE card. The id is
	// only meaningful for Give.
	SecondChance(self *Player, opponents Opponents) (SecondChanceAction, int)
}
