// Package game implements the Flip 7 rules engine.
//
// The main type is Controller, which owns the deck and the players of one
// game session and moves them through rounds until a player reaches the
// winning score.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	c, err := game.NewController(rng, []game.PlayerSpec{
//	    {Name: "A", Strategy: strategy.Default()},
//	    {Name: "B", Strategy: strategy.Default()},
//	}, game.Config{})
//	c.StartRound()
//	res, err := c.Hit("A")
//	if res.Card.IsAction() {
//	    c.Resolve(c.Player("A"), res.Card)
//	}
//	if c.IsRoundOver() {
//	    c.EndRound()
//	}
//
// # Deterministic Testing
//
// NewControllerWithDeck accepts a stacked deck so tests control the exact
// draw order:
//
//	d := deck.NewStacked(rng, deck.MustParseCards("3 5 7")...)
//	c, err := game.NewControllerWithDeck(d, rng, players, game.Config{})
//
// # Architecture
//
//   - Score: pure scoring of a hand under modifier rules
//   - Player: per-round state machine (active, stayed, busted, flip_7)
//   - Strategy: pluggable stay/hit and target decisions
//   - Controller.Resolve: effects of FREEZE, FLIP3 and SECOND_CHANCE
//
// Busting is a normal state transition, never an error. Errors are reserved
// for lookups of unknown players, operations on players that can no longer
// act, and an exhausted deck.
package game
