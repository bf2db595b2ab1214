package game

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/lox/flip7/internal/deck"
)

// Config holds session-level rules
type Config struct {
	WinningScore    int      // defaults to DefaultWinningScore
	DefaultStrategy Strategy // used for players without their own strategy
	Logger          *log.Logger
}

// PlayerSpec describes a seat at the table
type PlayerSpec struct {
	Name     string
	Strategy Strategy
}

// Controller runs one game: it owns the deck, the players in table order,
// the dealer marker and the round counter.
type Controller struct {
	deck         *deck.Deck
	rng          *rand.Rand
	players      []*Player
	winningScore int
	dealer       int
	round        int
	winner       *Player
	logger       *log.Logger
}

// NewController creates a game with a freshly shuffled deck
func NewController(rng *rand.Rand, players []PlayerSpec, cfg Config) (*Controller, error) {
	return NewControllerWithDeck(deck.New(rng), rng, players, cfg)
}

// NewControllerWithDeck creates a game that deals from the given deck
func NewControllerWithDeck(d *deck.Deck, rng *rand.Rand, players []PlayerSpec, cfg Config) (*Controller, error) {
	if len(players) == 0 {
		return nil, errors.New("at least one player is required")
	}
	if cfg.WinningScore <= 0 {
		cfg.WinningScore = DefaultWinningScore
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	c := &Controller{
		deck:         d,
		rng:          rng,
		winningScore: cfg.WinningScore,
		round:        1,
		logger:       cfg.Logger,
	}

	seen := make(map[string]bool, len(players))
	for _, spec := range players {
		if seen[spec.Name] {
			return nil, fmt.Errorf("duplicate player name %q", spec.Name)
		}
		seen[spec.Name] = true

		strategy := spec.Strategy
		if strategy == nil {
			strategy = cfg.DefaultStrategy
		}
		if strategy == nil {
			return nil, fmt.Errorf("player %s: %w", spec.Name, ErrNoStrategy)
		}
		c.players = append(c.players, NewPlayer(spec.Name, strategy))
	}

	return c, nil
}

// StartRound resets every player's hand and status. Safety nets carry over
// until each player's own EndRound. Returns false once the game has a winner.
func (c *Controller) StartRound() bool {
	if c.winner != nil {
		return false
	}
	for _, p := range c.players {
		if len(p.Hand) > 0 {
			c.deck.Discard(p.Hand...)
		}
		p.resetRound()
	}
	c.logger.Debug("Round started", "round", c.round, "dealer", c.Dealer().Name)
	return true
}

// DealResult describes one card dealt to a player
type DealResult struct {
	Card             deck.Card
	Retained         bool // false when the card busted the player
	SecondChanceUsed bool // a duplicate was absorbed by a safety net
}

// Deal draws one card for p and applies it to the hand. The drawn card is
// reported even when it busts the player.
func (c *Controller) Deal(p *Player) (DealResult, error) {
	if !p.IsActive() {
		return DealResult{}, fmt.Errorf("deal to %s: %w", p.Name, ErrNotActive)
	}

	card, ok := c.deck.Draw()
	if !ok {
		return DealResult{}, ErrDeckExhausted
	}

	before := p.SecondChances
	retained, err := p.AddCard(card)
	if err != nil {
		return DealResult{}, err
	}
	if absorbed := p.takeAbsorbed(); len(absorbed) > 0 {
		c.deck.Discard(absorbed...)
	}

	return DealResult{
		Card:             card,
		Retained:         retained,
		SecondChanceUsed: p.SecondChances < before,
	}, nil
}

// Hit deals a card to the named player
func (c *Controller) Hit(name string) (DealResult, error) {
	p := c.Player(name)
	if p == nil {
		return DealResult{}, fmt.Errorf("hit %q: %w", name, ErrUnknownPlayer)
	}
	if !p.IsActive() {
		return DealResult{}, fmt.Errorf("hit %s: %w", name, ErrNotActive)
	}
	if c.IsRoundOver() {
		return DealResult{}, fmt.Errorf("hit %s: %w", name, ErrRoundOver)
	}
	return c.Deal(p)
}

// StayPlayer makes the named player stay
func (c *Controller) StayPlayer(name string) error {
	p := c.Player(name)
	if p == nil {
		return fmt.Errorf("stay %q: %w", name, ErrUnknownPlayer)
	}
	if !p.Stay() {
		return fmt.Errorf("stay %s: %w", name, ErrNotActive)
	}
	return nil
}

// IsRoundOver returns true when nobody is active or someone flipped 7
func (c *Controller) IsRoundOver() bool {
	active := false
	for _, p := range c.players {
		if p.Status == Flip7 {
			return true
		}
		if p.IsActive() {
			active = true
		}
	}
	return !active
}

// PlayerRound is one player's outcome for a round
type PlayerRound struct {
	Name       string      `json:"name"`
	Hand       []deck.Card `json:"hand"`
	Status     Status      `json:"status"`
	RoundScore int         `json:"round_score"`
	TotalScore int         `json:"total_score"`
}

// RoundResult is the outcome of EndRound
type RoundResult struct {
	Round   int           `json:"round"`
	Players []PlayerRound `json:"players"`
	Winner  string        `json:"winner,omitempty"`
}

// Scores returns round scores keyed by player name
func (r RoundResult) Scores() map[string]int {
	scores := make(map[string]int, len(r.Players))
	for _, p := range r.Players {
		scores[p.Name] = p.RoundScore
	}
	return scores
}

// EndRound banks every player's hand, moves the cards to the discard pile,
// checks for a winner and advances the dealer. When several players cross
// the winning score in the same round, the first in table order wins.
func (c *Controller) EndRound() RoundResult {
	result := RoundResult{Round: c.round, Players: make([]PlayerRound, 0, len(c.players))}

	for _, p := range c.players {
		hand := append([]deck.Card(nil), p.Hand...)
		status := p.Status
		c.deck.Discard(p.Hand...)
		score := p.EndRound()
		result.Players = append(result.Players, PlayerRound{
			Name:       p.Name,
			Hand:       hand,
			Status:     status,
			RoundScore: score,
			TotalScore: p.TotalScore,
		})
	}

	if c.winner == nil {
		for _, p := range c.players {
			if p.HasWon(c.winningScore) {
				c.winner = p
				c.logger.Debug("Game won", "player", p.Name, "score", p.TotalScore, "round", c.round)
				break
			}
		}
	}
	if c.winner != nil {
		result.Winner = c.winner.Name
	}

	c.dealer = (c.dealer + 1) % len(c.players)
	c.round++
	return result
}

// Player returns the named player, or nil
func (c *Controller) Player(name string) *Player {
	for _, p := range c.players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Players returns all players in table order
func (c *Controller) Players() []*Player {
	return c.players
}

// ActivePlayers returns the players still drawing this round
func (c *Controller) ActivePlayers() []*Player {
	var active []*Player
	for _, p := range c.players {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// Dealer returns the current dealer
func (c *Controller) Dealer() *Player {
	return c.players[c.dealer]
}

// Round returns the current round number, starting at 1
func (c *Controller) Round() int {
	return c.round
}

// WinningScore returns the score needed to win
func (c *Controller) WinningScore() int {
	return c.winningScore
}

// Winner returns the game winner, or nil while the game is running
func (c *Controller) Winner() *Player {
	return c.winner
}

// IsGameOver returns true once a winner is decided
func (c *Controller) IsGameOver() bool {
	return c.winner != nil
}

// CardsInPlay returns the cards in the draw pile, discard pile and hands.
// It always equals deck.TotalCards for a full deck.
func (c *Controller) CardsInPlay() int {
	n := c.deck.Remaining() + c.deck.DiscardSize()
	for _, p := range c.players {
		n += len(p.Hand)
	}
	return n
}

// PlayerState is a read-only snapshot of a player
type PlayerState struct {
	Name          string      `json:"name"`
	TotalScore    int         `json:"total_score"`
	Status        Status      `json:"status"`
	Hand          []deck.Card `json:"hand"`
	SecondChances int         `json:"second_chances"`
}

// GameState is a read-only snapshot of the session
type GameState struct {
	Round         int           `json:"round_number"`
	Dealer        string        `json:"dealer"`
	Players       []PlayerState `json:"players"`
	ActivePlayers int           `json:"active_players"`
	Winner        string        `json:"game_winner,omitempty"`
	DeckSize      int           `json:"deck_size"`
	DiscardSize   int           `json:"discard_pile_size"`
}

// State returns a snapshot of the game
func (c *Controller) State() GameState {
	state := GameState{
		Round:       c.round,
		Dealer:      c.Dealer().Name,
		Players:     c.snapshot(c.players),
		DeckSize:    c.deck.Remaining(),
		DiscardSize: c.deck.DiscardSize(),
	}
	state.ActivePlayers = len(c.ActivePlayers())
	if c.winner != nil {
		state.Winner = c.winner.Name
	}
	return state
}

// Leaderboard returns players sorted by total score, highest first. Players
// with equal totals keep table order.
func (c *Controller) Leaderboard() []PlayerState {
	board := c.snapshot(c.players)
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].TotalScore > board[j].TotalScore
	})
	return board
}

// RoundSummary returns each player's live hand and score for the current round
func (c *Controller) RoundSummary() []PlayerRound {
	summary := make([]PlayerRound, 0, len(c.players))
	for _, p := range c.players {
		summary = append(summary, PlayerRound{
			Name:       p.Name,
			Hand:       append([]deck.Card(nil), p.Hand...),
			Status:     p.Status,
			RoundScore: p.RoundScore(),
			TotalScore: p.TotalScore,
		})
	}
	return summary
}

func (c *Controller) snapshot(players []*Player) []PlayerState {
	states := make([]PlayerState, 0, len(players))
	for _, p := range players {
		states = append(states, PlayerState{
			Name:          p.Name,
			TotalScore:    p.TotalScore,
			Status:        p.Status,
			Hand:          append([]deck.Card(nil), p.Hand...),
			SecondChances: p.SecondChances,
		})
	}
	return states
}

// opponents returns the active players other than p, keyed by table index
func (c *Controller) opponents(p *Player) Opponents {
	var opps Opponents
	for i, other := range c.players {
		if other != p && other.IsActive() {
			opps = append(opps, Opponent{ID: i, Player: other})
		}
	}
	return opps
}

// Rand returns the session's random source. Strategy decisions must draw
// from it so one seed reproduces the whole game.
func (c *Controller) Rand() *rand.Rand {
	return c.rng
}
