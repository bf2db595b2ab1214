package game

import (
	"errors"
	"fmt"

	"github.com/lox/flip7/internal/deck"
)

// Flip3Draws is how many cards a FLIP3 forces onto its target
const Flip3Draws = 3

// Resolution describes the effect of one action card
type Resolution struct {
	Card   deck.Card
	Player string // who drew the action card
	Target string // who it was played on; empty when nobody

	// FREEZE and FLIP3
	TargetStatus Status

	// FLIP3
	Drawn     []deck.Card
	Exhausted bool // the deck ran out before all draws were made

	// SECOND_CHANCE
	Action        SecondChanceAction
	SecondChances int // recipient's count after the card was applied

	Reason string
}

// Resolve applies an action card drawn by p. The strategy of p chooses the
// target; the card itself ends on the discard pile.
func (c *Controller) Resolve(p *Player, card deck.Card) (Resolution, error) {
	if !card.IsAction() {
		return Resolution{}, fmt.Errorf("resolve %v: %w", card, ErrNotAction)
	}

	res := Resolution{Card: card, Player: p.Name}
	switch card.ActionType() {
	case deck.Freeze:
		c.resolveFreeze(p, &res)
	case deck.FlipThree:
		if err := c.resolveFlip3(p, &res); err != nil {
			return res, err
		}
	case deck.SecondChance:
		c.resolveSecondChance(p, &res)
	default:
		return Resolution{}, fmt.Errorf("resolve %v: %w", card, ErrNotAction)
	}

	c.deck.Discard(card)
	c.logger.Debug("Action resolved",
		"card", card,
		"player", res.Player,
		"target", res.Target,
		"reason", res.Reason)
	return res, nil
}

func (c *Controller) resolveFreeze(p *Player, res *Resolution) {
	opps := c.opponents(p)
	if len(opps) == 0 {
		res.Reason = "no active opponents"
		return
	}

	id, ok := p.Strategy.FreezeTarget(p, opps)
	if !ok {
		res.Reason = "no target chosen"
		return
	}
	target, ok := opps.Get(id)
	if !ok {
		res.Reason = "invalid target"
		return
	}

	target.Freeze()
	res.Target = target.Name
	res.TargetStatus = target.Status
}

// resolveFlip3 forces up to three draws onto the target and stops the moment
// the target can no longer act.
func (c *Controller) resolveFlip3(p *Player, res *Resolution) error {
	opps := c.opponents(p)

	target := p
	if id, ok := p.Strategy.Flip3Target(p, opps); ok {
		if t, ok := opps.Get(id); ok {
			target = t
		}
	}
	res.Target = target.Name

	for i := 0; i < Flip3Draws; i++ {
		if !target.IsActive() {
			break
		}
		dealt, err := c.Deal(target)
		if errors.Is(err, ErrDeckExhausted) {
			res.Exhausted = true
			break
		}
		if err != nil {
			return err
		}
		res.Drawn = append(res.Drawn, dealt.Card)
		if dealt.Card.IsAction() {
			// forced draws do not chain action effects
			c.deck.Discard(dealt.Card)
		}
	}

	res.TargetStatus = target.Status
	return nil
}

func (c *Controller) resolveSecondChance(p *Player, res *Resolution) {
	opps := c.opponents(p)
	action, id := p.Strategy.SecondChance(p, opps)

	switch action {
	case Give:
		if target, ok := opps.Get(id); ok {
			target.SecondChances++
			res.Action = Give
			res.Target = target.Name
			res.SecondChances = target.SecondChances
			return
		}
		res.Reason = "no valid target"
		fallthrough
	case Keep:
		p.SecondChances++
		res.Action = Keep
		res.Target = p.Name
		res.SecondChances = p.SecondChances
	case Discard:
		res.Action = Discard
		res.Reason = "every active player already holds a second chance"
	}
}
