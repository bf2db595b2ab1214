// Package statistics accumulates numeric samples such as round scores.
package statistics

import (
	"fmt"
	"math"
	"slices"
)

// Sample accumulates observations. The zero value is ready to use.
type Sample struct {
	N     int
	Sum   float64
	SumSq float64 // for variance
	Min   float64
	Max   float64

	values []float64
}

// Add records one observation
func (s *Sample) Add(v float64) {
	if s.N == 0 || v < s.Min {
		s.Min = v
	}
	if s.N == 0 || v > s.Max {
		s.Max = v
	}
	s.N++
	s.Sum += v
	s.SumSq += v * v
	s.values = append(s.values, v)
}

// AddInt records one integer observation
func (s *Sample) AddInt(v int) {
	s.Add(float64(v))
}

// Merge folds other into s
func (s *Sample) Merge(other *Sample) {
	for _, v := range other.values {
		s.Add(v)
	}
}

// Mean returns the arithmetic mean
func (s *Sample) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance
func (s *Sample) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumSq - float64(s.N)*mean*mean) / float64(s.N-1)
	if v < 0 {
		// rounding on near-constant samples
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation
func (s *Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Sample) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Sample) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the middle observation
func (s *Sample) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the linearly interpolated value at p (0.0 to 1.0)
func (s *Sample) Percentile(p float64) float64 {
	if len(s.values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.values)
	slices.Sort(sorted)

	p = math.Max(0, math.Min(1, p))
	index := p * float64(len(sorted)-1)
	lower := int(index)
	if lower+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[lower+1]*weight
}

// Validate checks the accumulator is internally consistent
func (s *Sample) Validate() error {
	if len(s.values) != s.N {
		return fmt.Errorf("stored %d values for %d observations", len(s.values), s.N)
	}
	if s.N > 0 && s.Min > s.Max {
		return fmt.Errorf("min %.3f exceeds max %.3f", s.Min, s.Max)
	}
	return nil
}

// Summary is a serializable digest of a sample
type Summary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P90    float64 `json:"p90"`
}

// Summarize returns the digest of s
func (s *Sample) Summarize() Summary {
	return Summary{
		N:      s.N,
		Mean:   s.Mean(),
		StdDev: s.StdDev(),
		Median: s.Median(),
		Min:    s.Min,
		Max:    s.Max,
		P90:    s.Percentile(0.9),
	}
}
