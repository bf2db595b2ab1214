package strategy

// Record keys, shared with the league export
const (
	KeyName                = "name"
	KeyUseScore            = "use_score_condition"
	KeyScoreThreshold      = "score_threshold"
	KeyUseHandSize         = "use_hand_size_condition"
	KeyHandSizeLimit       = "hand_size_limit"
	KeyUseHighValue        = "use_high_value_condition"
	KeyHighValueThreshold  = "high_value_threshold"
	KeyHighValueLimit      = "high_value_limit"
	KeyHighRiskProbability = "high_risk_probability"
	KeyLowRiskProbability  = "low_risk_probability"
)

// FromRecord builds a strategy from a key/value record. Missing keys and
// values of the wrong type fall back to the defaults; numbers may be given
// as any integer or float type.
func FromRecord(rec map[string]any) *Threshold {
	p := DefaultParams()

	if v, ok := rec[KeyName].(string); ok {
		p.Name = v
	}
	p.UseScore = boolValue(rec, KeyUseScore, false)
	p.ScoreThreshold = intValue(rec, KeyScoreThreshold, p.ScoreThreshold)
	p.UseHandSize = boolValue(rec, KeyUseHandSize, false)
	p.HandSizeLimit = intValue(rec, KeyHandSizeLimit, p.HandSizeLimit)
	p.UseHighValue = boolValue(rec, KeyUseHighValue, false)
	p.HighValueThreshold = intValue(rec, KeyHighValueThreshold, p.HighValueThreshold)
	p.HighValueLimit = intValue(rec, KeyHighValueLimit, p.HighValueLimit)
	p.HighRiskProbability = floatValue(rec, KeyHighRiskProbability, p.HighRiskProbability)
	p.LowRiskProbability = floatValue(rec, KeyLowRiskProbability, p.LowRiskProbability)

	return New(p)
}

// Record returns the strategy parameters as a key/value record
func (t *Threshold) Record() map[string]any {
	p := t.params
	return map[string]any{
		KeyName:                t.Name(),
		KeyUseScore:            p.UseScore,
		KeyScoreThreshold:      p.ScoreThreshold,
		KeyUseHandSize:         p.UseHandSize,
		KeyHandSizeLimit:       p.HandSizeLimit,
		KeyUseHighValue:        p.UseHighValue,
		KeyHighValueThreshold:  p.HighValueThreshold,
		KeyHighValueLimit:      p.HighValueLimit,
		KeyHighRiskProbability: p.HighRiskProbability,
		KeyLowRiskProbability:  p.LowRiskProbability,
	}
}

func boolValue(rec map[string]any, key string, def bool) bool {
	if v, ok := rec[key].(bool); ok {
		return v
	}
	return def
}

func intValue(rec map[string]any, key string, def int) int {
	switch v := rec[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float32:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

func floatValue(rec map[string]any, key string, def float64) float64 {
	switch v := rec[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return def
	}
}
