package main

import (
	"fmt"
	"strings"

	"github.com/lox/flip7/internal/display"
	"github.com/lox/flip7/internal/fileutil"
	"github.com/lox/flip7/internal/game"
	"github.com/lox/flip7/internal/simulation"
)

// Table flags shared by play and watch
type Table struct {
	Players      []string `short:"p" default:"Alice,Bob,Cara,Dan" env:"FLIP7_PLAYERS" help:"Comma separated player names"`
	Seed         int64    `env:"FLIP7_SEED" help:"Seed for a reproducible game (0 for random)"`
	WinningScore int      `default:"200" env:"FLIP7_WINNING_SCORE" help:"Total score that ends the game"`
	MaxRounds    int      `default:"50" help:"Abort the game after this many rounds"`
}

func (t *Table) session(g *Globals) (*simulation.Session, error) {
	players, err := parsePlayers(t.Players)
	if err != nil {
		return nil, err
	}
	seed := resolveSeed(t.Seed)
	return simulation.NewSession(simulation.Config{
		Players:      players,
		WinningScore: t.WinningScore,
		Seed:         seed,
		MaxRounds:    t.MaxRounds,
		Logger:       newLogger(g),
	})
}

type PlayCmd struct {
	Table

	Log  bool   `help:"Print every action as it happens"`
	JSON string `name:"json" type:"path" help:"Write the summary and action log to this file"`
}

// gameRecord is the JSON layout written by play --json
type gameRecord struct {
	Summary simulation.Summary `json:"summary"`
	Actions []simulation.Event `json:"action_log"`
}

func (c *PlayCmd) Run(g *Globals) error {
	s, err := c.session(g)
	if err != nil {
		return err
	}
	if c.Log {
		for _, e := range s.Log() {
			fmt.Println(display.FormatEvent(e))
		}
		s.Subscribe(func(e simulation.Event) {
			fmt.Println(display.FormatEvent(e))
		})
	}

	_, playErr := s.PlayGame()

	fmt.Println()
	fmt.Print(display.RenderSummary(s.Summary()))

	if c.JSON != "" {
		if err := fileutil.WriteJSON(c.JSON, gameRecord{Summary: s.Summary(), Actions: s.Log()}); err != nil {
			return fmt.Errorf("failed to write %s: %w", c.JSON, err)
		}
		fmt.Printf("Game written to %s\n", c.JSON)
	}
	return playErr
}

// parsePlayers turns names into seats, rejecting blanks and duplicates
func parsePlayers(names []string) ([]game.PlayerSpec, error) {
	seen := make(map[string]bool, len(names))
	specs := make([]game.PlayerSpec, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, fmt.Errorf("empty player name")
		}
		if seen[n] {
			return nil, fmt.Errorf("duplicate player name %q", n)
		}
		seen[n] = true
		specs = append(specs, game.PlayerSpec{Name: n})
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("at least one player is required")
	}
	return specs, nil
}
