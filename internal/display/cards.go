package display

import (
	"strings"

	"github.com/lox/flip7/internal/deck"
	"github.com/lox/flip7/internal/game"
)

// Card renders a card coloured by kind
func Card(c deck.Card) string {
	switch c.Kind {
	case deck.Modifier:
		return ModifierCardStyle.Render(c.String())
	case deck.Action:
		return ActionCardStyle.Render(c.String())
	default:
		return NumberCardStyle.Render(c.String())
	}
}

// Hand renders cards as "[3 5 x2]"
func Hand(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = Card(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Status renders a round status with its display name
func Status(s game.Status) string {
	switch s {
	case game.Busted:
		return BustedStyle.Render(s.Display())
	case game.Flip7:
		return Flip7Style.Render(s.Display())
	case game.Stayed:
		return WinnerStyle.Render(s.Display())
	default:
		return s.Display()
	}
}
