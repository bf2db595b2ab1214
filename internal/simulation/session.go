// Package simulation drives complete Flip 7 games: the turn loop, the
// iteration caps and the structured action log.
package simulation

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/flip7/internal/deck"
	"github.com/lox/flip7/internal/game"
	"github.com/lox/flip7/internal/gameid"
	"github.com/lox/flip7/internal/randutil"
	"github.com/lox/flip7/internal/strategy"
)

// Safety caps against strategies that never stop
const (
	DefaultMaxTurns  = 100
	DefaultMaxRounds = 50
)

var (
	ErrTurnLimit  = errors.New("turn limit reached")
	ErrRoundLimit = errors.New("round limit reached")
)

// Config holds configuration for one session
type Config struct {
	ID              string // defaults to an ID derived from Seed
	Players         []game.PlayerSpec
	WinningScore    int
	Seed            int64
	Rand            *rand.Rand    // overrides Seed when set
	Deck            *deck.Deck    // overrides the freshly shuffled deck
	DefaultStrategy game.Strategy // defaults to strategy.Default()
	Logger          *log.Logger
	DisableLog      bool // skip the in-memory action log
	MaxTurns        int
	MaxRounds       int
}

// Outcome is the result of PlayGame
type Outcome struct {
	Winner       string
	RoundsPlayed int
}

// Summary describes a finished (or interrupted) game
type Summary struct {
	ID           string             `json:"id"`
	Winner       string             `json:"winner"`
	WinningScore int                `json:"winning_score"`
	RoundsPlayed int                `json:"rounds_played"`
	TotalActions int                `json:"total_actions"`
	Standings    []game.PlayerState `json:"final_standings"`
}

// Session plays one game and records what happened
type Session struct {
	cfg    Config
	id     string
	game   *game.Controller
	logger *log.Logger

	actions     int
	events      []Event
	rounds      []game.RoundResult
	subscribers []Subscriber
}

// NewSession creates a session and records the game_start event
func NewSession(cfg Config) (*Session, error) {
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}
	if cfg.MaxRounds <= 0 {
		cfg.MaxRounds = DefaultMaxRounds
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.DefaultStrategy == nil {
		cfg.DefaultStrategy = strategy.Default()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = randutil.New(cfg.Seed)
	}
	id := cfg.ID
	if id == "" {
		id = gameid.New(cfg.Seed, 0)
	}

	d := cfg.Deck
	if d == nil {
		d = deck.New(rng)
	}

	logger := cfg.Logger.With("game", id)
	g, err := game.NewControllerWithDeck(d, rng, cfg.Players, game.Config{
		WinningScore:    cfg.WinningScore,
		DefaultStrategy: cfg.DefaultStrategy,
		Logger:          logger,
	})
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{cfg: cfg, id: id, game: g, logger: logger}
	s.emit(GameStart, g.Round(), Details{
		Players:      playerNames(g.Players()),
		WinningScore: g.WinningScore(),
		Seed:         ptr(cfg.Seed),
	})
	return s, nil
}

// ID returns the session's game ID
func (s *Session) ID() string {
	return s.id
}

// Game returns the underlying controller
func (s *Session) Game() *game.Controller {
	return s.game
}

// Subscribe registers fn for every later event
func (s *Session) Subscribe(fn Subscriber) {
	s.subscribers = append(s.subscribers, fn)
}

// Rounds returns the result of every completed round. It is kept even when
// the action log is disabled.
func (s *Session) Rounds() []game.RoundResult {
	return s.rounds
}

// Log returns the recorded events, optionally filtered by type
func (s *Session) Log(types ...EventType) []Event {
	if len(types) == 0 {
		return append([]Event(nil), s.events...)
	}
	want := make(map[EventType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	var out []Event
	for _, e := range s.events {
		if want[e.Type] {
			out = append(out, e)
		}
	}
	return out
}

// PlayGame plays rounds until someone wins. ErrRoundLimit is returned when
// MaxRounds pass without a winner.
func (s *Session) PlayGame() (Outcome, error) {
	played := 0
	var err error
	for !s.game.IsGameOver() {
		if played >= s.cfg.MaxRounds {
			err = fmt.Errorf("after %d rounds: %w", played, ErrRoundLimit)
			break
		}
		if err = s.PlayRound(); err != nil {
			break
		}
		played++
	}

	out := Outcome{RoundsPlayed: played}
	if w := s.game.Winner(); w != nil {
		out.Winner = w.Name
	}
	d := Details{Winner: out.Winner, Standings: s.game.Leaderboard()}
	if err != nil {
		d.Reason = err.Error()
	}
	s.emit(GameEnd, s.game.Round(), d)
	return out, err
}

// Summary returns the game summary
func (s *Session) Summary() Summary {
	sum := Summary{
		ID:           s.id,
		RoundsPlayed: len(s.rounds),
		TotalActions: s.actions,
		Standings:    s.game.Leaderboard(),
	}
	if w := s.game.Winner(); w != nil {
		sum.Winner = w.Name
		sum.WinningScore = w.TotalScore
	}
	return sum
}

// emit records an event, logs it at debug and notifies subscribers
func (s *Session) emit(typ EventType, round int, d Details) {
	if s.cfg.DisableLog && len(s.subscribers) == 0 {
		return
	}
	s.actions++
	e := Event{ActionID: s.actions, Type: typ, Round: round, Details: d}

	s.logger.Debug("Event", "id", e.ActionID, "type", typ, "round", round, "player", d.Player)
	if !s.cfg.DisableLog {
		s.events = append(s.events, e)
	}
	for _, fn := range s.subscribers {
		fn(e)
	}
}

func (s *Session) emitCard(typ EventType, p *game.Player, card deck.Card) {
	s.emit(typ, s.game.Round(), Details{
		Player: p.Name,
		Card:   ptr(card),
		Hand:   cards(p.Hand),
		Status: p.Status.Display(),
	})
}
