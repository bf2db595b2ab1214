package display

import (
	"fmt"
	"strings"

	"github.com/lox/flip7/internal/game"
	"github.com/lox/flip7/internal/simulation"
)

// FormatEvent renders one action log entry as a single line
func FormatEvent(e simulation.Event) string {
	d := e.Details
	switch e.Type {
	case simulation.GameStart:
		line := fmt.Sprintf("Game started: %s (target %d)", strings.Join(d.Players, ", "), d.WinningScore)
		if d.Seed != nil {
			line += MutedStyle.Render(fmt.Sprintf(" seed %d", *d.Seed))
		}
		return line
	case simulation.RoundStart:
		return HeaderStyle.Render(fmt.Sprintf("=== Round %d ===", e.Round)) + MutedStyle.Render(" dealer "+d.Dealer)
	case simulation.TurnStart:
		return MutedStyle.Render(fmt.Sprintf("Turn %d: %s", d.Turn, strings.Join(d.Players, ", ")))
	case simulation.CardDealt:
		return fmt.Sprintf("%s is dealt %s %s", d.Player, card(d), Hand(d.Hand))
	case simulation.PlayerHit:
		return fmt.Sprintf("%s hits %s %s", d.Player, card(d), Hand(d.Hand))
	case simulation.PlayerStay:
		return fmt.Sprintf("%s stays with %s for %d", d.Player, Hand(d.Hand), score(d))
	case simulation.PlayerBusted:
		return BustedStyle.Render(fmt.Sprintf("%s busts on %s", d.Player, plainCard(d))) + " " + Hand(d.Hand)
	case simulation.SecondChanceUsed:
		return fmt.Sprintf("%s uses a second chance on %s (%d left)", d.Player, card(d), count(d))
	case simulation.Flip7Achieved:
		return Flip7Style.Render(fmt.Sprintf("%s flips 7 for %d!", d.Player, score(d))) + " " + Hand(d.Hand)
	case simulation.FreezeCard:
		if d.Target == "" {
			return fmt.Sprintf("%s plays FREEZE on nobody: %s", d.Player, d.Reason)
		}
		return fmt.Sprintf("%s freezes %s", d.Player, d.Target)
	case simulation.Flip3Card:
		line := fmt.Sprintf("%s plays FLIP3 on %s: %s %s", d.Player, d.Target, Hand(d.Cards), statusText(d.Status))
		if d.Reason != "" {
			line += MutedStyle.Render(" (" + d.Reason + ")")
		}
		return line
	case simulation.SecondChanceCard:
		switch d.Action {
		case game.Give.String():
			return fmt.Sprintf("%s gives a second chance to %s", d.Player, d.Target)
		case game.Discard.String():
			return fmt.Sprintf("%s discards a second chance: %s", d.Player, d.Reason)
		default:
			return fmt.Sprintf("%s keeps a second chance (%d held)", d.Player, count(d))
		}
	case simulation.DeckExhausted:
		return MutedStyle.Render(fmt.Sprintf("%s stays: %s", d.Player, d.Reason))
	case simulation.RoundEnd:
		parts := make([]string, len(d.Results))
		for i, r := range d.Results {
			parts[i] = fmt.Sprintf("%s %d", r.Name, r.RoundScore)
		}
		line := HeaderStyle.Render(fmt.Sprintf("Round %d over:", e.Round)) + " " + strings.Join(parts, ", ")
		if d.Winner != "" {
			line += " " + WinnerStyle.Render(d.Winner+" wins the game")
		}
		return line
	case simulation.GameEnd:
		if d.Winner == "" {
			return BustedStyle.Render("Game over without a winner") + MutedStyle.Render(" "+d.Reason)
		}
		return WinnerStyle.Render("Game over: " + d.Winner + " wins")
	default:
		return string(e.Type)
	}
}

// RenderRoundResults renders the per-player table of a round_end event
func RenderRoundResults(results []game.PlayerRound) string {
	t := newTable("Player", "Hand", "Status", "Round", "Total")
	for _, r := range results {
		t.Row(r.Name, Hand(r.Hand), Status(r.Status), fmt.Sprint(r.RoundScore), fmt.Sprint(r.TotalScore))
	}
	return t.String()
}

func card(d simulation.Details) string {
	if d.Card == nil {
		return "?"
	}
	return Card(*d.Card)
}

func plainCard(d simulation.Details) string {
	if d.Card == nil {
		return "?"
	}
	return d.Card.String()
}

func score(d simulation.Details) int {
	if d.Score == nil {
		return 0
	}
	return *d.Score
}

func count(d simulation.Details) int {
	if d.SecondChances == nil {
		return 0
	}
	return *d.SecondChances
}

func statusText(s string) string {
	switch s {
	case game.Busted.Display():
		return BustedStyle.Render(s)
	case game.Flip7.Display():
		return Flip7Style.Render(s)
	default:
		return s
	}
}
