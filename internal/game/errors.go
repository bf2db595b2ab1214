package game

import "errors"

var (
	// ErrNotActive is returned when acting on a player who has stayed, busted
	// or flipped 7 this round.
	ErrNotActive = errors.New("player is not active")

	// ErrUnknownPlayer is returned by by-name operations for names not at the table.
	ErrUnknownPlayer = errors.New("unknown player")

	// ErrDeckExhausted is returned when both the draw and discard piles are empty.
	ErrDeckExhausted = errors.New("no card available")

	// ErrGameOver is returned when starting a round after a winner is decided.
	ErrGameOver = errors.New("game already has a winner")

	// ErrRoundOver is returned when hitting after the round has ended.
	ErrRoundOver = errors.New("round is over")

	// ErrNoStrategy is returned when a player has no strategy and no default is configured.
	ErrNoStrategy = errors.New("no strategy configured")

	// ErrNotAction is returned when resolving a card that is not an action card.
	ErrNotAction = errors.New("not an action card")
)
