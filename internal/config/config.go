// Package config loads league strategy definitions from HCL.
//
// A file lists single-condition strategy classes and an optional league
// block:
//
//	score "Balanced" {
//	  score_threshold = 15
//	}
//
//	hand_size "Short" {
//	  hand_size_limit       = 4
//	  high_risk_probability = 0.95
//	  low_risk_probability  = 0.05
//	}
//
//	high_value "Wary" {
//	  high_value_threshold = 10
//	  high_value_limit     = 1
//	}
//
//	league {
//	  turns            = 20
//	  players_per_game = 5
//	}
//
// Omitted attributes take the documented defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/flip7/internal/game"
	"github.com/lox/flip7/internal/strategy"
)

// League defaults
const (
	DefaultTurns          = 20
	DefaultPlayersPerGame = 5
)

// Config is the complete strategy configuration
type Config struct {
	Score     []ScoreClass     `hcl:"score,block"`
	HandSize  []HandSizeClass  `hcl:"hand_size,block"`
	HighValue []HighValueClass `hcl:"high_value,block"`
	League    *League          `hcl:"league,block"`
}

// Probabilities are the optional stay probabilities of a class
type Probabilities struct {
	HighRisk *float64
	LowRisk  *float64
}

// Both returns the probabilities when both are set
func (p Probabilities) Both() (high, low float64, ok bool) {
	if p.HighRisk == nil || p.LowRisk == nil {
		return 0, 0, false
	}
	return *p.HighRisk, *p.LowRisk, true
}

// ScoreClass stays once the live score reaches a threshold
type ScoreClass struct {
	Name           string   `hcl:"name,label"`
	ScoreThreshold *int     `hcl:"score_threshold,optional"`
	HighRisk       *float64 `hcl:"high_risk_probability,optional"`
	LowRisk        *float64 `hcl:"low_risk_probability,optional"`
}

// Threshold returns the configured score threshold or the default
func (c ScoreClass) Threshold() int {
	return orDefault(c.ScoreThreshold, strategy.DefaultScoreThreshold)
}

// Probabilities returns the class probabilities
func (c ScoreClass) Probabilities() Probabilities {
	return Probabilities{HighRisk: c.HighRisk, LowRisk: c.LowRisk}
}

// HandSizeClass stays once the hand holds enough number cards
type HandSizeClass struct {
	Name          string   `hcl:"name,label"`
	HandSizeLimit *int     `hcl:"hand_size_limit,optional"`
	HighRisk      *float64 `hcl:"high_risk_probability,optional"`
	LowRisk       *float64 `hcl:"low_risk_probability,optional"`
}

// Limit returns the configured hand size limit or the default
func (c HandSizeClass) Limit() int {
	return orDefault(c.HandSizeLimit, strategy.DefaultHandSizeLimit)
}

// Probabilities returns the class probabilities
func (c HandSizeClass) Probabilities() Probabilities {
	return Probabilities{HighRisk: c.HighRisk, LowRisk: c.LowRisk}
}

// HighValueClass stays once enough high cards are held
type HighValueClass struct {
	Name               string   `hcl:"name,label"`
	HighValueThreshold *int     `hcl:"high_value_threshold,optional"`
	HighValueLimit     *int     `hcl:"high_value_limit,optional"`
	HighRisk           *float64 `hcl:"high_risk_probability,optional"`
	LowRisk            *float64 `hcl:"low_risk_probability,optional"`
}

// Threshold returns the card value counted as high
func (c HighValueClass) Threshold() int {
	return orDefault(c.HighValueThreshold, strategy.DefaultHighValueThreshold)
}

// Limit returns how many high cards trigger the condition
func (c HighValueClass) Limit() int {
	return orDefault(c.HighValueLimit, strategy.DefaultHighValueLimit)
}

// Probabilities returns the class probabilities
func (c HighValueClass) Probabilities() Probabilities {
	return Probabilities{HighRisk: c.HighRisk, LowRisk: c.LowRisk}
}

// League holds league settings. Command line flags override them.
type League struct {
	Turns          int    `hcl:"turns,optional" json:"turns"`
	PlayersPerGame int    `hcl:"players_per_game,optional" json:"players_per_game"`
	WinningScore   int    `hcl:"winning_score,optional" json:"winning_score"`
	Parallelism    int    `hcl:"parallelism,optional" json:"parallelism"`
	Seed           *int64 `hcl:"seed,optional" json:"seed,omitempty"`
}

// Load reads a configuration file. Files ending in .json use the record
// format; anything else is parsed as HCL. A missing file yields Default().
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	var (
		cfg *Config
		err error
	)
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		cfg, err = loadJSON(filename)
	} else {
		cfg, err = loadHCL(filename)
	}
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

func loadHCL(filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Score) == 0 && len(c.HandSize) == 0 && len(c.HighValue) == 0 {
		d := Default()
		c.Score, c.HandSize, c.HighValue = d.Score, d.HandSize, d.HighValue
	}
	if c.League == nil {
		c.League = &League{}
	}
	if c.League.Turns == 0 {
		c.League.Turns = DefaultTurns
	}
	if c.League.PlayersPerGame == 0 {
		c.League.PlayersPerGame = DefaultPlayersPerGame
	}
	if c.League.WinningScore == 0 {
		c.League.WinningScore = game.DefaultWinningScore
	}
}

// Validate checks thresholds, probabilities and name uniqueness
func (c *Config) Validate() error {
	var errs []error

	names := make(map[string]bool)
	checkName := func(class, name string) {
		key := class + "/" + name
		if names[key] {
			errs = append(errs, fmt.Errorf("duplicate %s class %q", class, name))
		}
		names[key] = true
	}
	checkProbs := func(class, name string, p Probabilities) {
		for _, v := range []*float64{p.HighRisk, p.LowRisk} {
			if v != nil && (*v < 0 || *v > 1) {
				errs = append(errs, fmt.Errorf("%s %q: probability %v outside [0, 1]", class, name, *v))
			}
		}
	}
	checkPositive := func(class, name, attr string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s %q: %s must be positive, got %d", class, name, attr, v))
		}
	}

	for _, s := range c.Score {
		checkName("score", s.Name)
		checkProbs("score", s.Name, s.Probabilities())
		checkPositive("score", s.Name, "score_threshold", s.Threshold())
	}
	for _, h := range c.HandSize {
		checkName("hand_size", h.Name)
		checkProbs("hand_size", h.Name, h.Probabilities())
		checkPositive("hand_size", h.Name, "hand_size_limit", h.Limit())
	}
	for _, hv := range c.HighValue {
		checkName("high_value", hv.Name)
		checkProbs("high_value", hv.Name, hv.Probabilities())
		checkPositive("high_value", hv.Name, "high_value_limit", hv.Limit())
	}

	if l := c.League; l != nil {
		if l.Turns < 0 {
			errs = append(errs, fmt.Errorf("league turns must not be negative, got %d", l.Turns))
		}
		if l.PlayersPerGame < 0 {
			errs = append(errs, fmt.Errorf("league players_per_game must not be negative, got %d", l.PlayersPerGame))
		}
		if l.Parallelism < 0 {
			errs = append(errs, fmt.Errorf("league parallelism must not be negative, got %d", l.Parallelism))
		}
	}

	return errors.Join(errs...)
}

func orDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
