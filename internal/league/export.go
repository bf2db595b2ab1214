package league

import (
	"github.com/lox/flip7/internal/fileutil"
)

// Info identifies an exported league
type Info struct {
	TotalPlayers int              `json:"total_players"`
	TotalGames   int              `json:"total_games"`
	Seed         int64            `json:"seed"`
	ExportMode   string           `json:"export_mode"`
	Strategies   []map[string]any `json:"strategies"`
}

// Results is the exported document
type Results struct {
	Info        Info         `json:"league_info"`
	Leaderboard Leaderboard  `json:"leaderboard"`
	Games       []GameResult `json:"game_results,omitempty"`
}

// Results assembles the export document. Game details are only included
// when includeGames is set.
func (l *League) Results(includeGames bool) Results {
	r := Results{
		Info: Info{
			TotalPlayers: len(l.entrants),
			TotalGames:   len(l.games),
			Seed:         l.cfg.Seed,
			ExportMode:   "summary",
		},
		Leaderboard: l.Leaderboard(),
	}
	for _, e := range l.entrants {
		r.Info.Strategies = append(r.Info.Strategies, e.Strategy.Record())
	}
	if includeGames {
		r.Info.ExportMode = "full"
		r.Games = l.games
	}
	return r
}

// Export writes the results to path as JSON
func (l *League) Export(path string, includeGames bool) error {
	return fileutil.WriteJSON(path, l.Results(includeGames))
}
