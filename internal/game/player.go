package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/flip7/internal/deck"
)

// DefaultWinningScore is the total a player must reach to win the game
const DefaultWinningScore = 200

// Status is a player's state within the current round
type Status uint8

const (
	Active Status = iota
	Stayed
	Busted
	Flip7
)

// String returns the wire form of the status
func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Stayed:
		return "stayed"
	case Busted:
		return "busted"
	case Flip7:
		return "flip_7"
	default:
		return "unknown"
	}
}

// Display returns a human-readable status
func (s Status) Display() string {
	switch s {
	case Active:
		return "Active"
	case Stayed:
		return "Stayed"
	case Busted:
		return "Busted"
	case Flip7:
		return "Flip 7!"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the status in its wire form
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Player represents a player at the table. TotalScore is the only field that
// survives a round; everything else is reset by EndRound.
type Player struct {
	Name          string
	TotalScore    int
	Hand          []deck.Card
	Status        Status
	SecondChances int
	Strategy      Strategy

	// duplicates swallowed by a second chance, waiting to be discarded
	absorbed []deck.Card
}

// NewPlayer creates a player with an empty hand
func NewPlayer(name string, strategy Strategy) *Player {
	return &Player{Name: name, Strategy: strategy}
}

// AddCard adds a drawn card to the hand. It returns false when the card
// busted the player. Action cards never enter the hand and always succeed.
func (p *Player) AddCard(c deck.Card) (bool, error) {
	if p.Status != Active {
		return false, fmt.Errorf("%s: %w", p.Name, ErrNotActive)
	}
	if c.IsAction() {
		return true, nil
	}

	if p.holds(c) {
		if p.SecondChances > 0 {
			p.SecondChances--
			p.absorbed = append(p.absorbed, c)
			return true, nil
		}
		p.Status = Busted
		p.Hand = append(p.Hand, c)
		return false, nil
	}

	p.Hand = append(p.Hand, c)
	if DistinctNumbers(p.Hand) >= Flip7Count {
		p.Status = Flip7
	}
	return true, nil
}

// Stay banks the current hand. Returns false if the player can no longer act.
func (p *Player) Stay() bool {
	if p.Status != Active {
		return false
	}
	p.Status = Stayed
	return true
}

// Freeze forces the player to stay. Unlike Stay it is imposed by an
// opponent's FREEZE card, so there is no gate on the current status.
func (p *Player) Freeze() {
	p.Status = Stayed
}

// RoundScore returns what the current hand is worth if the round ended now
func (p *Player) RoundScore() int {
	return Score(p.Hand, p.Status == Flip7, p.Status == Busted)
}

// EndRound banks the round score into the total and resets the player for
// the next round. It returns the round score.
func (p *Player) EndRound() int {
	score := p.RoundScore()
	p.TotalScore += score
	p.resetRound()
	p.SecondChances = 0
	return score
}

// IsActive returns true if the player can still draw this round
func (p *Player) IsActive() bool {
	return p.Status == Active
}

// HasWon reports whether the total score reached threshold
func (p *Player) HasWon(threshold int) bool {
	return p.TotalScore >= threshold
}

// NumberSum returns the sum of the number cards in hand
func (p *Player) NumberSum() int {
	return NumberSum(p.Hand)
}

// DistinctNumbers returns how many distinct number cards are in hand
func (p *Player) DistinctNumbers() int {
	return DistinctNumbers(p.Hand)
}

// StatusDisplay returns the human-readable round status
func (p *Player) StatusDisplay() string {
	return p.Status.Display()
}

// ShouldStay asks the player's strategy whether to stop drawing
func (p *Player) ShouldStay(rng *rand.Rand) bool {
	return p.Strategy.ShouldStay(p.Hand, rng)
}

// String renders the player for debugging
func (p *Player) String() string {
	return fmt.Sprintf("%s: %d points, Hand: %s, Status: %s",
		p.Name, p.TotalScore, deck.FormatCards(p.Hand), p.Status.Display())
}

func (p *Player) holds(c deck.Card) bool {
	for _, h := range p.Hand {
		if h == c {
			return true
		}
	}
	return false
}

func (p *Player) resetRound() {
	p.Hand = nil
	p.Status = Active
}

func (p *Player) takeAbsorbed() []deck.Card {
	cards := p.absorbed
	p.absorbed = nil
	return cards
}
