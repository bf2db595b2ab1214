package simulation

import (
	"errors"
	"fmt"

	"github.com/lox/flip7/internal/deck"
	"github.com/lox/flip7/internal/game"
)

// PlayRound plays one round: the initial deal, turns until the round is
// over, then scoring. ErrTurnLimit aborts a round that does not finish
// within MaxTurns.
func (s *Session) PlayRound() error {
	g := s.game
	if !g.StartRound() {
		return fmt.Errorf("round %d: %w", g.Round(), game.ErrGameOver)
	}
	s.emit(RoundStart, g.Round(), Details{
		Dealer:    g.Dealer().Name,
		Standings: g.Leaderboard(),
	})

	for _, p := range g.Players() {
		if g.IsRoundOver() {
			break
		}
		if !p.IsActive() {
			continue
		}
		if err := s.draw(p, CardDealt); err != nil {
			return err
		}
	}

	for turn := 1; !g.IsRoundOver(); turn++ {
		if turn > s.cfg.MaxTurns {
			return fmt.Errorf("round %d: %w", g.Round(), ErrTurnLimit)
		}

		active := g.ActivePlayers()
		s.emit(TurnStart, g.Round(), Details{Turn: turn, Players: playerNames(active)})

		for _, p := range active {
			if g.IsRoundOver() {
				break
			}
			if !p.IsActive() {
				continue
			}
			if p.ShouldStay(g.Rand()) {
				if err := g.StayPlayer(p.Name); err != nil {
					return err
				}
				s.emit(PlayerStay, g.Round(), Details{
					Player: p.Name,
					Hand:   cards(p.Hand),
					Score:  ptr(p.RoundScore()),
				})
				continue
			}
			if err := s.draw(p, PlayerHit); err != nil {
				return err
			}
		}
	}

	result := g.EndRound()
	s.rounds = append(s.rounds, result)
	s.emit(RoundEnd, result.Round, Details{
		Winner:    result.Winner,
		Results:   result.Players,
		Standings: g.Leaderboard(),
	})
	return nil
}

// draw deals one card to p and logs it as typ. Action cards go to the
// resolver. A player who cannot draw because both piles are empty stays.
func (s *Session) draw(p *game.Player, typ EventType) error {
	g := s.game
	res, err := g.Deal(p)
	if errors.Is(err, game.ErrDeckExhausted) {
		if err := g.StayPlayer(p.Name); err != nil {
			return err
		}
		s.emit(DeckExhausted, g.Round(), Details{
			Player: p.Name,
			Hand:   cards(p.Hand),
			Status: p.Status.Display(),
			Reason: "no cards left in deck or discard",
		})
		return nil
	}
	if err != nil {
		return err
	}

	card := res.Card
	switch {
	case card.IsAction():
		return s.resolve(p, card, typ)
	case !res.Retained:
		s.emit(PlayerBusted, g.Round(), Details{
			Player: p.Name,
			Card:   ptr(card),
			Hand:   cards(p.Hand),
			Status: p.Status.Display(),
		})
		return nil
	}

	if res.SecondChanceUsed {
		s.emit(SecondChanceUsed, g.Round(), Details{
			Player:        p.Name,
			Card:          ptr(card),
			SecondChances: ptr(p.SecondChances),
		})
	}
	s.emitCard(typ, p, card)
	if p.Status == game.Flip7 {
		s.emitFlip7(p)
	}
	return nil
}

// resolve applies an action card before logging the draw, so every event
// observes the card on the discard pile
func (s *Session) resolve(p *game.Player, card deck.Card, typ EventType) error {
	g := s.game
	r, err := g.Resolve(p, card)
	if err != nil {
		return err
	}
	s.emitCard(typ, p, card)

	d := Details{
		Player: p.Name,
		Card:   ptr(card),
		Target: r.Target,
		Reason: r.Reason,
	}
	switch card.ActionType() {
	case deck.Freeze:
		if r.Target != "" {
			d.Status = r.TargetStatus.Display()
		}
		s.emit(FreezeCard, g.Round(), d)

	case deck.FlipThree:
		d.Cards = cards(r.Drawn)
		d.Status = r.TargetStatus.Display()
		if r.Exhausted && d.Reason == "" {
			d.Reason = "deck exhausted"
		}
		s.emit(Flip3Card, g.Round(), d)

		target := g.Player(r.Target)
		switch target.Status {
		case game.Busted:
			s.emit(PlayerBusted, g.Round(), Details{
				Player: target.Name,
				Card:   ptr(r.Drawn[len(r.Drawn)-1]),
				Hand:   cards(target.Hand),
				Status: target.Status.Display(),
			})
		case game.Flip7:
			s.emitFlip7(target)
		}

	case deck.SecondChance:
		d.Action = r.Action.String()
		if r.Action != game.Discard {
			d.SecondChances = ptr(r.SecondChances)
		}
		s.emit(SecondChanceCard, g.Round(), d)
	}
	return nil
}

func (s *Session) emitFlip7(p *game.Player) {
	s.emit(Flip7Achieved, s.game.Round(), Details{
		Player: p.Name,
		Hand:   cards(p.Hand),
		Score:  ptr(p.RoundScore()),
	})
}
