package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/flip7/internal/game"
	"github.com/lox/flip7/internal/league"
	"github.com/lox/flip7/internal/simulation"
	"github.com/lox/flip7/internal/strategy"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(BorderColor)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// RenderStandings renders players and their totals, highest first
func RenderStandings(standings []game.PlayerState) string {
	t := newTable("#", "Player", "Score")
	for i, p := range standings {
		t.Row(strconv.Itoa(i+1), p.Name, strconv.Itoa(p.TotalScore))
	}
	return t.String()
}

// RenderSummary renders the result of one game
func RenderSummary(s simulation.Summary) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("FLIP 7 GAME SUMMARY"))
	b.WriteString("\n\n")

	if s.Winner != "" {
		fmt.Fprintf(&b, "Winner:        %s\n", WinnerStyle.Render(s.Winner))
		fmt.Fprintf(&b, "Winning score: %d\n", s.WinningScore)
	} else {
		fmt.Fprintf(&b, "Winner:        %s\n", MutedStyle.Render("none"))
	}
	fmt.Fprintf(&b, "Rounds played: %d\n", s.RoundsPlayed)
	fmt.Fprintf(&b, "Total actions: %d\n", s.TotalActions)
	if s.ID != "" {
		fmt.Fprintf(&b, "Game ID:       %s\n", MutedStyle.Render(s.ID))
	}
	b.WriteString("\n")
	b.WriteString(RenderStandings(s.Standings))
	b.WriteString("\n")
	return b.String()
}

// RenderLeaderboard renders the top limit rankings (all when limit <= 0)
// followed by the league summary
func RenderLeaderboard(board league.Leaderboard, limit int) string {
	rankings := board.Rankings
	if limit > 0 && len(rankings) > limit {
		rankings = rankings[:limit]
	}

	t := newTable("Rank", "Player", "Wins", "Games", "Win%", "Avg Score", "Busts", "Flip 7s")
	for _, r := range rankings {
		t.Row(
			strconv.Itoa(r.Rank),
			r.Name,
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.GamesPlayed),
			fmt.Sprintf("%.1f", r.WinPercentage),
			fmt.Sprintf("%.1f", r.AverageScore),
			strconv.Itoa(r.Busts),
			strconv.Itoa(r.Flip7s),
		)
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("FINAL LEADERBOARD"))
	b.WriteString("\n\n")
	b.WriteString(t.String())
	b.WriteString("\n\n")

	sum := board.Summary
	fmt.Fprintf(&b, "Total games played:      %d\n", sum.TotalGames)
	fmt.Fprintf(&b, "Total rounds played:     %d\n", sum.TotalRounds)
	fmt.Fprintf(&b, "Average rounds per game: %.1f\n", sum.AverageRoundsPerGame)
	if sum.AbortedGames > 0 {
		fmt.Fprintf(&b, "Aborted games:           %s\n", BustedStyle.Render(strconv.Itoa(sum.AbortedGames)))
	}

	if len(sum.StrategyPerformance) > 0 {
		b.WriteString("\n")
		b.WriteString(HeaderStyle.Render(fmt.Sprintf("Top %d strategies by win rate", len(sum.StrategyPerformance))))
		b.WriteString("\n")
		for i, p := range sum.StrategyPerformance {
			fmt.Fprintf(&b, "%2d. %-45s %5.1f%% (%d/%d)\n", i+1, p.Strategy, p.WinRate, p.Wins, p.Games)
		}
	}
	return b.String()
}

// RenderStrategies lists strategies with their enabled conditions
func RenderStrategies(strategies []*strategy.Threshold) string {
	t := newTable("#", "Strategy", "Conditions", "High", "Low")
	for i, s := range strategies {
		p := s.Params()
		var conds []string
		if p.UseScore {
			conds = append(conds, fmt.Sprintf("score>=%d", p.ScoreThreshold))
		}
		if p.UseHandSize {
			conds = append(conds, fmt.Sprintf("cards>=%d", p.HandSizeLimit))
		}
		if p.UseHighValue {
			conds = append(conds, fmt.Sprintf("%dx>=%d", p.HighValueLimit, p.HighValueThreshold))
		}
		if len(conds) == 0 {
			conds = append(conds, "default")
		}
		t.Row(
			strconv.Itoa(i+1),
			s.Name(),
			strings.Join(conds, " "),
			fmt.Sprintf("%.2f", p.HighRiskProbability),
			fmt.Sprintf("%.2f", p.LowRiskProbability),
		)
	}
	return t.String()
}
