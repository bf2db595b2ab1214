package strategy

import "github.com/lox/flip7/internal/game"

// FreezeTarget prefers the opponent with a safety net and the lowest number
// sum, then the lowest sum overall
func (t *Threshold) FreezeTarget(_ *game.Player, opponents game.Opponents) (int, bool) {
	var netted game.Opponents
	for _, op := range opponents {
		if op.Player.SecondChances > 0 {
			netted = append(netted, op)
		}
	}
	if len(netted) > 0 {
		return lowestSum(netted)
	}
	return lowestSum(opponents)
}

// Flip3Target picks the opponent with the highest number sum. No opponent
// means the player takes the draws.
func (t *Threshold) Flip3Target(_ *game.Player, opponents game.Opponents) (int, bool) {
	if len(opponents) == 0 {
		return 0, false
	}
	best := opponents[0]
	for _, op := range opponents[1:] {
		if op.Player.NumberSum() > best.Player.NumberSum() {
			best = op
		}
	}
	return best.ID, true
}

// SecondChance keeps the card when self has none, otherwise gives it to the
// weakest opponent without one
func (t *Threshold) SecondChance(self *game.Player, opponents game.Opponents) (game.SecondChanceAction, int) {
	if self.SecondChances == 0 {
		return game.Keep, 0
	}

	var bare game.Opponents
	for _, op := range opponents {
		if op.Player.SecondChances == 0 {
			bare = append(bare, op)
		}
	}
	id, ok := lowestSum(bare)
	if !ok {
		return game.Discard, 0
	}
	return game.Give, id
}

// lowestSum returns the first opponent with the smallest number sum
func lowestSum(opponents game.Opponents) (int, bool) {
	if len(opponents) == 0 {
		return 0, false
	}
	best := opponents[0]
	for _, op := range opponents[1:] {
		if op.Player.NumberSum() < best.Player.NumberSum() {
			best = op
		}
	}
	return best.ID, true
}
