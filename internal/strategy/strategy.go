// Package strategy provides the threshold strategy used by simulated
// players. A Threshold is immutable once built and may be shared by any
// number of players.
package strategy

import (
	rand "math/rand/v2"

	"github.com/lox/flip7/internal/deck"
	"github.com/lox/flip7/internal/game"
)

// Defaults for unset parameters
const (
	DefaultScoreThreshold      = 15
	DefaultHandSizeLimit       = 5
	DefaultHighValueThreshold  = 8
	DefaultHighValueLimit      = 2
	DefaultHighRiskProbability = 0.9
	DefaultLowRiskProbability  = 0.1
)

// Params configures when a Threshold stays. Each Use* flag enables one
// condition; the stay probability is HighRiskProbability when any enabled
// condition is met and LowRiskProbability otherwise.
type Params struct {
	Name string

	UseScore       bool
	ScoreThreshold int

	UseHandSize   bool
	HandSizeLimit int

	UseHighValue       bool
	HighValueThreshold int
	HighValueLimit     int

	HighRiskProbability float64
	LowRiskProbability  float64
}

// DefaultParams returns parameters with every threshold at its default and
// no condition enabled
func DefaultParams() Params {
	return Params{
		ScoreThreshold:      DefaultScoreThreshold,
		HandSizeLimit:       DefaultHandSizeLimit,
		HighValueThreshold:  DefaultHighValueThreshold,
		HighValueLimit:      DefaultHighValueLimit,
		HighRiskProbability: DefaultHighRiskProbability,
		LowRiskProbability:  DefaultLowRiskProbability,
	}
}

// Threshold is a stochastic stay-or-hit policy with fixed target heuristics
type Threshold struct {
	params     Params
	configured bool
}

var _ game.Strategy = (*Threshold)(nil)

// New creates a strategy from params
func New(p Params) *Threshold {
	return &Threshold{params: p, configured: true}
}

// Default returns the unconfigured strategy. It applies all three tests at
// the default thresholds.
func Default() *Threshold {
	return &Threshold{params: DefaultParams()}
}

// Name returns the configured name, or "Default"
func (t *Threshold) Name() string {
	if t.params.Name == "" {
		return "Default"
	}
	return t.params.Name
}

// Params returns a copy of the strategy parameters
func (t *Threshold) Params() Params {
	return t.params
}

// Configured reports whether the strategy was built from params
func (t *Threshold) Configured() bool {
	return t.configured
}

// ShouldStay draws a Bernoulli outcome. The score is taken from the live
// hand without the flip 7 bonus.
func (t *Threshold) ShouldStay(hand []deck.Card, rng *rand.Rand) bool {
	prob := t.params.LowRiskProbability
	if t.risky(hand) {
		prob = t.params.HighRiskProbability
	}
	return rng.Float64() < prob
}

func (t *Threshold) risky(hand []deck.Card) bool {
	p := t.params
	score := game.Score(hand, false, false)
	size := game.DistinctNumbers(hand)

	if !t.configured {
		return score >= DefaultScoreThreshold ||
			size >= DefaultHandSizeLimit ||
			game.CountAtLeast(hand, DefaultHighValueThreshold) >= DefaultHighValueLimit
	}

	if p.UseScore && score >= p.ScoreThreshold {
		return true
	}
	if p.UseHandSize && size >= p.HandSizeLimit {
		return true
	}
	if p.UseHighValue && game.CountAtLeast(hand, p.HighValueThreshold) >= p.HighValueLimit {
		return true
	}
	return false
}
