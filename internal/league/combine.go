package league

import (
	"fmt"
	"strings"

	"github.com/lox/flip7/internal/config"
	"github.com/lox/flip7/internal/strategy"
)

// component is one configured class member contributing a condition
type component struct {
	name  string
	probs config.Probabilities
	apply func(*strategy.Params)
}

// Combine expands the configured classes into strategies: every single
// class member, every pairing across two distinct classes and every
// triple across all three. Probabilities come from the first component
// that sets both, else the defaults.
func Combine(cfg *config.Config) []*strategy.Threshold {
	var scores, hands, highs []component
	for _, c := range cfg.Score {
		scores = append(scores, component{name: c.Name, probs: c.Probabilities(), apply: func(p *strategy.Params) {
			p.UseScore = true
			p.ScoreThreshold = c.Threshold()
		}})
	}
	for _, c := range cfg.HandSize {
		hands = append(hands, component{name: c.Name, probs: c.Probabilities(), apply: func(p *strategy.Params) {
			p.UseHandSize = true
			p.HandSizeLimit = c.Limit()
		}})
	}
	for _, c := range cfg.HighValue {
		highs = append(highs, component{name: c.Name, probs: c.Probabilities(), apply: func(p *strategy.Params) {
			p.UseHighValue = true
			p.HighValueThreshold = c.Threshold()
			p.HighValueLimit = c.Limit()
		}})
	}

	var out []*strategy.Threshold
	for _, s := range scores {
		out = append(out, build("Single: Score", s))
	}
	for _, h := range hands {
		out = append(out, build("Single: Hand", h))
	}
	for _, hv := range highs {
		out = append(out, build("Single: High", hv))
	}

	for _, s := range scores {
		for _, h := range hands {
			out = append(out, build("TwoClass: Score+Hand", s, h))
		}
	}
	for _, s := range scores {
		for _, hv := range highs {
			out = append(out, build("TwoClass: Score+High", s, hv))
		}
	}
	for _, h := range hands {
		for _, hv := range highs {
			out = append(out, build("TwoClass: Hand+High", h, hv))
		}
	}

	for _, s := range scores {
		for _, h := range hands {
			for _, hv := range highs {
				out = append(out, build("ThreeClass: Score+Hand+High", s, h, hv))
			}
		}
	}
	return out
}

func build(kind string, parts ...component) *strategy.Threshold {
	p := strategy.DefaultParams()

	names := make([]string, len(parts))
	for i, c := range parts {
		names[i] = c.name
		c.apply(&p)
	}
	p.Name = fmt.Sprintf("%s | %s", kind, strings.Join(names, " + "))

	for _, c := range parts {
		if high, low, ok := c.probs.Both(); ok {
			p.HighRiskProbability, p.LowRiskProbability = high, low
			break
		}
	}
	return strategy.New(p)
}

// EntrantName returns the league player name for the i-th strategy (from 0)
func EntrantName(i int, strategyName string) string {
	return fmt.Sprintf("Player_%02d_%s", i+1, strings.ReplaceAll(strategyName, " ", "_"))
}
