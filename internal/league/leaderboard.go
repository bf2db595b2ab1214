package league

import (
	"cmp"
	"slices"

	"github.com/lox/flip7/internal/statistics"
)

// TopStrategies is how many strategies the summary ranks
const TopStrategies = 10

// Ranking is one leaderboard row
type Ranking struct {
	Rank          int                `json:"rank"`
	Name          string             `json:"name"`
	Wins          int                `json:"wins"`
	GamesPlayed   int                `json:"games_played"`
	WinPercentage float64            `json:"win_percentage"`
	AverageScore  float64            `json:"average_score"`
	TotalPoints   int                `json:"total_points"`
	TotalRounds   int                `json:"total_rounds"`
	Busts         int                `json:"busts"`
	Stays         int                `json:"stays"`
	Flip7s        int                `json:"flip_7s"`
	Strategy      string             `json:"strategy"`
	RoundScore    statistics.Summary `json:"round_score"`
}

// StrategyPerformance aggregates wins by strategy name
type StrategyPerformance struct {
	Strategy string  `json:"strategy"`
	Wins     int     `json:"wins"`
	Games    int     `json:"games"`
	WinRate  float64 `json:"win_rate"`
}

// SummaryStats describes the league as a whole
type SummaryStats struct {
	TotalGames           int                   `json:"total_games"`
	TotalRounds          int                   `json:"total_rounds"`
	AverageRoundsPerGame float64               `json:"average_rounds_per_game"`
	AbortedGames         int                   `json:"aborted_games"`
	StrategyPerformance  []StrategyPerformance `json:"strategy_performance"`
}

// Leaderboard ranks entrants by wins, then by average score
type Leaderboard struct {
	Rankings []Ranking    `json:"rankings"`
	Summary  SummaryStats `json:"summary_stats"`
}

// Leaderboard builds the current standings
func (l *League) Leaderboard() Leaderboard {
	sorted := slices.Clone(l.entrants)
	slices.SortStableFunc(sorted, func(a, b *Entrant) int {
		if c := cmp.Compare(b.Tally.Wins, a.Tally.Wins); c != 0 {
			return c
		}
		return cmp.Compare(b.Tally.AverageScore(), a.Tally.AverageScore())
	})

	board := Leaderboard{Summary: l.summary()}
	for i, e := range sorted {
		t := &e.Tally
		board.Rankings = append(board.Rankings, Ranking{
			Rank:          i + 1,
			Name:          e.Name,
			Wins:          t.Wins,
			GamesPlayed:   t.Games,
			WinPercentage: t.WinRate(),
			AverageScore:  t.AverageScore(),
			TotalPoints:   t.TotalPoints,
			TotalRounds:   t.Rounds,
			Busts:         t.Busts,
			Stays:         t.Stays,
			Flip7s:        t.Flip7s,
			Strategy:      e.Strategy.Name(),
			RoundScore:    t.RoundScores.Summarize(),
		})
	}
	return board
}

func (l *League) summary() SummaryStats {
	s := SummaryStats{TotalGames: len(l.games), AbortedGames: l.aborted}
	for _, g := range l.games {
		s.TotalRounds += g.RoundsPlayed
	}
	if s.TotalGames > 0 {
		s.AverageRoundsPerGame = float64(s.TotalRounds) / float64(s.TotalGames)
	}

	index := make(map[string]int)
	var perf []StrategyPerformance
	for _, e := range l.entrants {
		name := e.Strategy.Name()
		i, ok := index[name]
		if !ok {
			i = len(perf)
			index[name] = i
			perf = append(perf, StrategyPerformance{Strategy: name})
		}
		perf[i].Wins += e.Tally.Wins
		perf[i].Games += e.Tally.Games
	}
	for i := range perf {
		if perf[i].Games > 0 {
			perf[i].WinRate = float64(perf[i].Wins) / float64(perf[i].Games) * 100
		}
	}
	slices.SortStableFunc(perf, func(a, b StrategyPerformance) int {
		return cmp.Compare(b.WinRate, a.WinRate)
	})
	if len(perf) > TopStrategies {
		perf = perf[:TopStrategies]
	}
	s.StrategyPerformance = perf
	return s
}
