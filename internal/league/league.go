// Package league runs tournaments between strategies. Each turn the player
// pool is shuffled and split into tables; every table plays one complete
// game. Games within a turn may run in parallel, and results are merged in
// game order so a seed reproduces the same league for any parallelism.
package league

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"runtime"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/flip7/internal/game"
	"github.com/lox/flip7/internal/gameid"
	"github.com/lox/flip7/internal/randutil"
	"github.com/lox/flip7/internal/simulation"
	"github.com/lox/flip7/internal/statistics"
	"github.com/lox/flip7/internal/strategy"
)

// DefaultProgressEvery is how often progress is logged, in games
const DefaultProgressEvery = 50

// Config holds configuration for a league
type Config struct {
	Strategies     []*strategy.Threshold
	Turns          int
	PlayersPerGame int
	WinningScore   int
	Seed           int64
	Parallelism    int // defaults to GOMAXPROCS
	MaxTurns       int // per round, passed to each session
	MaxRounds      int // per game, passed to each session
	ProgressEvery  int
	Clock          quartz.Clock
	Logger         *log.Logger
}

// Entrant is one strategy's seat in the league
type Entrant struct {
	Name     string
	Strategy *strategy.Threshold
	Tally    Tally
}

// Tally accumulates an entrant's results across games
type Tally struct {
	Games       int
	Wins        int
	TotalPoints int
	Rounds      int
	Busts       int
	Stays       int
	Flip7s      int
	RoundScores statistics.Sample
}

// WinRate returns the percentage of games won
func (t *Tally) WinRate() float64 {
	if t.Games == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Games) * 100
}

// AverageScore returns the mean final score per game
func (t *Tally) AverageScore() float64 {
	if t.Games == 0 {
		return 0
	}
	return float64(t.TotalPoints) / float64(t.Games)
}

// PlayerStats counts how an entrant's rounds ended in one game
type PlayerStats struct {
	Stays       int   `json:"stays"`
	Busts       int   `json:"busts"`
	Flip7s      int   `json:"flip_7s"`
	RoundScores []int `json:"round_scores"`
}

// GameResult records one league game
type GameResult struct {
	Number       int                    `json:"game_number"`
	ID           string                 `json:"id"`
	Turn         int                    `json:"turn"`
	Seed         int64                  `json:"seed"`
	Players      []string               `json:"players"`
	Winner       string                 `json:"winner"`
	RoundsPlayed int                    `json:"rounds_played"`
	FinalScores  map[string]int         `json:"final_scores"`
	Stats        map[string]PlayerStats `json:"game_stats"`
	Aborted      bool                   `json:"aborted,omitempty"`
	Error        string                 `json:"error,omitempty"`
	Duration     time.Duration          `json:"duration_ns"`
}

// League runs a tournament
type League struct {
	cfg      Config
	rng      *rand.Rand
	entrants []*Entrant
	games    []GameResult
	aborted  int
	elapsed  time.Duration
	logger   *log.Logger
}

// New creates a league with one entrant per strategy
func New(cfg Config) (*League, error) {
	if len(cfg.Strategies) == 0 {
		return nil, errors.New("league needs at least one strategy")
	}
	if cfg.PlayersPerGame <= 0 {
		return nil, fmt.Errorf("players per game must be positive, got %d", cfg.PlayersPerGame)
	}
	if len(cfg.Strategies)%cfg.PlayersPerGame != 0 {
		return nil, fmt.Errorf("player count (%d) must be divisible by players per game (%d)",
			len(cfg.Strategies), cfg.PlayersPerGame)
	}
	if cfg.Turns < 0 {
		return nil, fmt.Errorf("turns must not be negative, got %d", cfg.Turns)
	}
	if cfg.WinningScore <= 0 {
		cfg.WinningScore = game.DefaultWinningScore
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = runtime.GOMAXPROCS(0)
	}
	if cfg.ProgressEvery <= 0 {
		cfg.ProgressEvery = DefaultProgressEvery
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	l := &League{
		cfg:    cfg,
		rng:    randutil.New(cfg.Seed),
		logger: cfg.Logger.WithPrefix("league"),
	}
	for i, s := range cfg.Strategies {
		l.entrants = append(l.entrants, &Entrant{Name: EntrantName(i, s.Name()), Strategy: s})
	}
	return l, nil
}

// Entrants returns the entrants in registration order
func (l *League) Entrants() []*Entrant {
	return l.entrants
}

// Games returns every game played so far, in game order
func (l *League) Games() []GameResult {
	return l.games
}

// Elapsed returns the wall time spent in Run
func (l *League) Elapsed() time.Duration {
	return l.elapsed
}

// GamesPerTurn returns how many tables play each turn
func (l *League) GamesPerTurn() int {
	return len(l.entrants) / l.cfg.PlayersPerGame
}

// Run plays every turn and returns the final leaderboard
func (l *League) Run(ctx context.Context) (Leaderboard, error) {
	start := l.cfg.Clock.Now()
	defer func() { l.elapsed = l.cfg.Clock.Since(start) }()

	l.logger.Info("Starting league",
		"players", len(l.entrants),
		"turns", l.cfg.Turns,
		"playersPerGame", l.cfg.PlayersPerGame,
		"totalGames", l.cfg.Turns*l.GamesPerTurn(),
		"seed", l.cfg.Seed,
		"parallelism", l.cfg.Parallelism)

	for turn := 1; turn <= l.cfg.Turns; turn++ {
		if err := l.playTurn(ctx, turn); err != nil {
			return Leaderboard{}, fmt.Errorf("turn %d: %w", turn, err)
		}
	}

	l.logger.Info("League complete",
		"games", len(l.games),
		"aborted", l.aborted,
		"elapsed", l.cfg.Clock.Since(start))
	return l.Leaderboard(), nil
}

func (l *League) playTurn(ctx context.Context, turn int) error {
	pool := slices.Clone(l.entrants)
	l.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	size := l.cfg.PlayersPerGame
	tables := len(pool) / size
	first := len(l.games) + 1
	results := make([]GameResult, tables)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.cfg.Parallelism)
	for i := 0; i < tables; i++ {
		table := pool[i*size : (i+1)*size]
		number := first + i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := l.playGame(turn, number, table)
			if err != nil {
				return fmt.Errorf("game %d: %w", number, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, res := range results {
		l.record(pool[i*size:(i+1)*size], res)
		if res.Number%l.cfg.ProgressEvery == 0 || res.Number == 1 {
			l.logger.Info("Game finished",
				"game", res.Number,
				"turn", turn,
				"winner", res.Winner,
				"rounds", res.RoundsPlayed)
		}
	}
	return nil
}

// playGame runs one table. Sessions that hit an iteration cap are recorded
// as aborted; any other failure is returned.
func (l *League) playGame(turn, number int, table []*Entrant) (GameResult, error) {
	seed := randutil.Derive(l.cfg.Seed, number)
	res := GameResult{
		Number:      number,
		ID:          gameid.New(l.cfg.Seed, number),
		Turn:        turn,
		Seed:        seed,
		FinalScores: make(map[string]int, len(table)),
		Stats:       make(map[string]PlayerStats, len(table)),
	}

	specs := make([]game.PlayerSpec, len(table))
	for i, e := range table {
		specs[i] = game.PlayerSpec{Name: e.Name, Strategy: e.Strategy}
		res.Players = append(res.Players, e.Name)
	}

	started := l.cfg.Clock.Now()
	s, err := simulation.NewSession(simulation.Config{
		ID:           res.ID,
		Players:      specs,
		WinningScore: l.cfg.WinningScore,
		Seed:         seed,
		Logger:       l.cfg.Logger,
		DisableLog:   true,
		MaxTurns:     l.cfg.MaxTurns,
		MaxRounds:    l.cfg.MaxRounds,
	})
	if err != nil {
		return res, err
	}

	out, err := s.PlayGame()
	res.Duration = l.cfg.Clock.Since(started)
	switch {
	case errors.Is(err, simulation.ErrTurnLimit), errors.Is(err, simulation.ErrRoundLimit):
		res.Aborted = true
		res.Error = err.Error()
		l.logger.Warn("Game aborted", "game", number, "seed", seed, "error", err)
	case err != nil:
		return res, err
	}

	res.Winner = out.Winner
	res.RoundsPlayed = len(s.Rounds())
	for _, p := range s.Game().Players() {
		res.FinalScores[p.Name] = p.TotalScore
	}
	for _, round := range s.Rounds() {
		for _, pr := range round.Players {
			st := res.Stats[pr.Name]
			switch pr.Status {
			case game.Stayed:
				st.Stays++
			case game.Busted:
				st.Busts++
			case game.Flip7:
				st.Flip7s++
			}
			st.RoundScores = append(st.RoundScores, pr.RoundScore)
			res.Stats[pr.Name] = st
		}
	}
	return res, nil
}

// record merges a game into the entrants' tallies. Only called from Run's
// goroutine.
func (l *League) record(table []*Entrant, res GameResult) {
	l.games = append(l.games, res)
	if res.Aborted {
		l.aborted++
	}
	for _, e := range table {
		t := &e.Tally
		t.Games++
		t.Rounds += res.RoundsPlayed
		t.TotalPoints += res.FinalScores[e.Name]
		if res.Winner == e.Name {
			t.Wins++
		}
		st := res.Stats[e.Name]
		t.Stays += st.Stays
		t.Busts += st.Busts
		t.Flip7s += st.Flip7s
		for _, score := range st.RoundScores {
			t.RoundScores.AddInt(score)
		}
	}
}
