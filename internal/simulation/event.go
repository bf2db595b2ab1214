package simulation

import (
	"github.com/lox/flip7/internal/deck"
	"github.com/lox/flip7/internal/game"
)

// EventType names an entry in the action log
type EventType string

const (
	GameStart        EventType = "game_start"
	RoundStart       EventType = "round_start"
	CardDealt        EventType = "card_dealt"
	TurnStart        EventType = "turn_start"
	PlayerStay       EventType = "player_stay"
	PlayerHit        EventType = "player_hit"
	PlayerBusted     EventType = "player_busted"
	SecondChanceUsed EventType = "second_chance_used"
	Flip7Achieved    EventType = "flip_7_achieved"
	FreezeCard       EventType = "freeze_card"
	Flip3Card        EventType = "flip3_card"
	SecondChanceCard EventType = "second_chance_card"
	DeckExhausted    EventType = "deck_exhausted"
	RoundEnd         EventType = "round_end"
	GameEnd          EventType = "game_end"
)

// Event is one entry in a session's action log
type Event struct {
	ActionID int       `json:"action_id"`
	Type     EventType `json:"action_type"`
	Round    int       `json:"round"`
	Details  Details   `json:"details"`
}

// Details carries the fields relevant to an event. Unused fields are left
// at their zero value and omitted from JSON.
type Details struct {
	Player  string      `json:"player,omitempty"`
	Card    *deck.Card  `json:"card,omitempty"`
	Hand    []deck.Card `json:"hand,omitempty"`
	Status  string      `json:"status,omitempty"`
	Score   *int        `json:"score,omitempty"`
	Target  string      `json:"target,omitempty"`
	Cards   []deck.Card `json:"cards,omitempty"`
	Action  string      `json:"action,omitempty"`
	Reason  string      `json:"reason,omitempty"`
	Turn    int         `json:"turn,omitempty"`
	Players []string    `json:"players,omitempty"`
	Dealer  string      `json:"dealer,omitempty"`
	Winner  string      `json:"winner,omitempty"`

	SecondChances *int `json:"second_chances,omitempty"`

	WinningScore int                `json:"winning_score,omitempty"`
	Seed         *int64             `json:"seed,omitempty"`
	Results      []game.PlayerRound `json:"results,omitempty"`
	Standings    []game.PlayerState `json:"standings,omitempty"`
}

// Subscriber receives every event as it is recorded
type Subscriber func(Event)

func ptr[T any](v T) *T {
	return &v
}

func cards(cs []deck.Card) []deck.Card {
	return append([]deck.Card(nil), cs...)
}

func playerNames(ps []*game.Player) []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}
