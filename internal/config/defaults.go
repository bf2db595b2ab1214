package config

import "github.com/lox/flip7/internal/game"

// Default returns the built-in strategy classes: three score classes, two
// hand size classes and two high value classes, which combine into 35
// strategies.
func Default() *Config {
	return &Config{
		Score: []ScoreClass{
			{Name: "Cautious", ScoreThreshold: intPtr(10)},
			{Name: "Balanced", ScoreThreshold: intPtr(15)},
			{Name: "Bold", ScoreThreshold: intPtr(25), HighRisk: floatPtr(0.95), LowRisk: floatPtr(0.05)},
		},
		HandSize: []HandSizeClass{
			{Name: "Short", HandSizeLimit: intPtr(4)},
			{Name: "Long", HandSizeLimit: intPtr(6)},
		},
		HighValue: []HighValueClass{
			{Name: "Wary", HighValueThreshold: intPtr(10), HighValueLimit: intPtr(1)},
			{Name: "Steady", HighValueThreshold: intPtr(8), HighValueLimit: intPtr(2)},
		},
		League: &League{
			Turns:          DefaultTurns,
			PlayersPerGame: DefaultPlayersPerGame,
			WinningScore:   game.DefaultWinningScore,
		},
	}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
