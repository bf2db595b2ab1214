package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lox/flip7/internal/strategy"
)

// recordFile is the JSON layout of strategy_configurations.json
type recordFile struct {
	Strategies struct {
		Combinations struct {
			Single struct {
				Score     []map[string]any `json:"score_only"`
				HandSize  []map[string]any `json:"hand_size_only"`
				HighValue []map[string]any `json:"high_value_only"`
			} `json:"single_condition"`
		} `json:"combinations"`
	} `json:"strategy_configurations"`
	League *League `json:"league,omitempty"`
}

func loadJSON(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}

	var f recordFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	single := f.Strategies.Combinations.Single
	cfg := &Config{League: f.League}
	for _, rec := range single.Score {
		p := strategy.FromRecord(rec).Params()
		cfg.Score = append(cfg.Score, ScoreClass{
			Name:           recordName(rec),
			ScoreThreshold: intField(rec, strategy.KeyScoreThreshold, p.ScoreThreshold),
			HighRisk:       floatField(rec, strategy.KeyHighRiskProbability, p.HighRiskProbability),
			LowRisk:        floatField(rec, strategy.KeyLowRiskProbability, p.LowRiskProbability),
		})
	}
	for _, rec := range single.HandSize {
		p := strategy.FromRecord(rec).Params()
		cfg.HandSize = append(cfg.HandSize, HandSizeClass{
			Name:          recordName(rec),
			HandSizeLimit: intField(rec, strategy.KeyHandSizeLimit, p.HandSizeLimit),
			HighRisk:      floatField(rec, strategy.KeyHighRiskProbability, p.HighRiskProbability),
			LowRisk:       floatField(rec, strategy.KeyLowRiskProbability, p.LowRiskProbability),
		})
	}
	for _, rec := range single.HighValue {
		p := strategy.FromRecord(rec).Params()
		cfg.HighValue = append(cfg.HighValue, HighValueClass{
			Name:               recordName(rec),
			HighValueThreshold: intField(rec, strategy.KeyHighValueThreshold, p.HighValueThreshold),
			HighValueLimit:     intField(rec, strategy.KeyHighValueLimit, p.HighValueLimit),
			HighRisk:           floatField(rec, strategy.KeyHighRiskProbability, p.HighRiskProbability),
			LowRisk:            floatField(rec, strategy.KeyLowRiskProbability, p.LowRiskProbability),
		})
	}
	return cfg, nil
}

func recordName(rec map[string]any) string {
	if name, ok := rec[strategy.KeyName].(string); ok && name != "" {
		return name
	}
	return "Unnamed"
}

// intField returns the decoded value when the record carries a number
// under key, and nil otherwise
func intField(rec map[string]any, key string, decoded int) *int {
	if _, ok := rec[key].(float64); !ok {
		return nil
	}
	return &decoded
}

func floatField(rec map[string]any, key string, decoded float64) *float64 {
	if _, ok := rec[key].(float64); !ok {
		return nil
	}
	return &decoded
}
