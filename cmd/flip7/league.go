package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/flip7/internal/config"
	"github.com/lox/flip7/internal/display"
	"github.com/lox/flip7/internal/league"
)

type LeagueCmd struct {
	Config         string `default:"strategies.hcl" env:"FLIP7_CONFIG" type:"path" help:"Strategy config (HCL or JSON)"`
	Turns          int    `help:"Turns to play (0 uses the config)"`
	PlayersPerGame int    `help:"Players at each table (0 uses the config)"`
	WinningScore   int    `help:"Total score that ends a game (0 uses the config)"`
	Seed           int64  `env:"FLIP7_SEED" help:"League seed (0 uses the config, else random)"`
	Parallel       int    `env:"FLIP7_PARALLEL" help:"Games to play at once (0 uses the config, else GOMAXPROCS)"`
	Top            int    `default:"20" help:"Rankings to print (0 for all)"`
	ProgressEvery  int    `default:"100" help:"Log progress every N games"`
	Export         string `type:"path" help:"Write results to this JSON file"`
	Details        bool   `help:"Include every game in the export"`
}

func (c *LeagueCmd) Run(g *Globals) error {
	logger := newLogger(g)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	settings := c.settings(cfg.League)

	strategies := league.Combine(cfg)
	logger.Info("Loaded strategies", "config", c.Config, "count", len(strategies))

	l, err := league.New(league.Config{
		Strategies:     strategies,
		Turns:          settings.Turns,
		PlayersPerGame: settings.PlayersPerGame,
		WinningScore:   settings.WinningScore,
		Seed:           *settings.Seed,
		Parallelism:    settings.Parallelism,
		ProgressEvery:  c.ProgressEvery,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	board, err := l.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(display.RenderLeaderboard(board, c.Top))
	fmt.Printf("\nCompleted in %s\n", l.Elapsed().Round(time.Millisecond))

	if c.Export != "" {
		if err := l.Export(c.Export, c.Details); err != nil {
			return fmt.Errorf("failed to export results: %w", err)
		}
		fmt.Printf("Results written to %s\n", c.Export)
	}
	return nil
}

// settings layers command flags over the config's league block
func (c *LeagueCmd) settings(base *config.League) config.League {
	s := *base
	if c.Turns > 0 {
		s.Turns = c.Turns
	}
	if c.PlayersPerGame > 0 {
		s.PlayersPerGame = c.PlayersPerGame
	}
	if c.WinningScore > 0 {
		s.WinningScore = c.WinningScore
	}
	if c.Parallel > 0 {
		s.Parallelism = c.Parallel
	}
	switch {
	case c.Seed != 0:
		s.Seed = &c.Seed
	case s.Seed == nil:
		seed := resolveSeed(0)
		s.Seed = &seed
	}
	return s
}
