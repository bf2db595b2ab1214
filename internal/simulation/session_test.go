package simulation

import (
	"encoding/json"
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/flip7/internal/deck"
	"github.com/lox/flip7/internal/game"
	"github.com/lox/flip7/internal/randutil"
	"github.com/lox/flip7/internal/strategy"
)

// never draws until the round forces it out
type never struct{ *strategy.Threshold }

func (never) ShouldStay([]deck.Card, *rand.Rand) bool { return false }

// banker stays as soon as it holds a number card
type banker struct{ *strategy.Threshold }

func (banker) ShouldStay(hand []deck.Card, _ *rand.Rand) bool {
	return game.DistinctNumbers(hand) > 0
}

func seats(names ...string) []game.PlayerSpec {
	specs := make([]game.PlayerSpec, len(names))
	for i, n := range names {
		specs[i] = game.PlayerSpec{Name: n}
	}
	return specs
}

func stacked(cards string) *deck.Deck {
	return deck.NewStacked(randutil.New(1), deck.MustParseCards(cards)...)
}

func types(events []Event) []EventType {
	out := make([]EventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

func TestPlayGameCompletes(t *testing.T) {
	t.Parallel()

	s, err := NewSession(Config{Players: seats("A", "B", "C"), Seed: 42})
	require.NoError(t, err)

	out, err := s.PlayGame()
	require.NoError(t, err)
	require.NotEmpty(t, out.Winner)

	winner := s.Game().Player(out.Winner)
	assert.GreaterOrEqual(t, winner.TotalScore, game.DefaultWinningScore)
	assert.Equal(t, out.RoundsPlayed, len(s.Rounds()))

	sum := s.Summary()
	assert.Equal(t, out.Winner, sum.Winner)
	assert.Equal(t, winner.TotalScore, sum.WinningScore)
	assert.Equal(t, out.RoundsPlayed, sum.RoundsPlayed)
	assert.Equal(t, len(s.Log()), sum.TotalActions)
	assert.Len(t, sum.Standings, 3)
	assert.Equal(t, s.ID(), sum.ID)

	log := s.Log()
	require.NotEmpty(t, log)
	assert.Equal(t, GameStart, log[0].Type)
	assert.Equal(t, GameEnd, log[len(log)-1].Type)
	for i, e := range log {
		assert.Equal(t, i+1, e.ActionID)
	}
	assert.Len(t, s.Log(RoundEnd), out.RoundsPlayed)
}

func TestSameSeedSameGame(t *testing.T) {
	t.Parallel()

	play := func(disable bool) (Outcome, []game.RoundResult, []Event) {
		s, err := NewSession(Config{Players: seats("A", "B", "C", "D"), Seed: 7, DisableLog: disable})
		require.NoError(t, err)
		out, err := s.PlayGame()
		require.NoError(t, err)
		return out, s.Rounds(), s.Log()
	}

	out1, rounds1, log1 := play(false)
	out2, rounds2, log2 := play(false)
	assert.Equal(t, out1, out2)
	assert.Equal(t, rounds1, rounds2)

	a, err := json.Marshal(log1)
	require.NoError(t, err)
	b, err := json.Marshal(log2)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))

	out3, rounds3, log3 := play(true)
	assert.Equal(t, out1, out3, "logging must not consume randomness")
	assert.Equal(t, rounds1, rounds3)
	assert.Empty(t, log3)
}

func TestDifferentSeedsDiffer(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for seed := int64(0); seed < 8; seed++ {
		s, err := NewSession(Config{Players: seats("A", "B", "C"), Seed: seed, DisableLog: true})
		require.NoError(t, err)
		_, err = s.PlayGame()
		require.NoError(t, err)
		data, err := json.Marshal(s.Rounds())
		require.NoError(t, err)
		seen[string(data)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestRoundLimit(t *testing.T) {
	t.Parallel()

	s, err := NewSession(Config{
		Players:      seats("A", "B"),
		Seed:         3,
		WinningScore: 1_000_000,
		MaxRounds:    3,
	})
	require.NoError(t, err)

	out, err := s.PlayGame()
	require.ErrorIs(t, err, ErrRoundLimit)
	assert.Empty(t, out.Winner)
	assert.Equal(t, 3, out.RoundsPlayed)

	end := s.Log(GameEnd)
	require.Len(t, end, 1)
	assert.NotEmpty(t, end[0].Details.Reason)
}

func TestTurnLimit(t *testing.T) {
	t.Parallel()

	s, err := NewSession(Config{
		Players:         seats("A", "B", "C", "D", "E"),
		Seed:            11,
		DefaultStrategy: never{strategy.Default()},
		MaxTurns:        1,
	})
	require.NoError(t, err)

	_, err = s.PlayGame()
	assert.ErrorIs(t, err, ErrTurnLimit)
}

func TestExhaustedDeckForcesStay(t *testing.T) {
	t.Parallel()

	s, err := NewSession(Config{
		Players:         seats("A", "B"),
		Deck:            stacked("1 2"),
		DefaultStrategy: never{strategy.Default()},
	})
	require.NoError(t, err)
	require.NoError(t, s.PlayRound())

	exhausted := s.Log(DeckExhausted)
	require.Len(t, exhausted, 2)
	assert.Equal(t, "A", exhausted[0].Details.Player)
	assert.Equal(t, "Stayed", exhausted[0].Details.Status)

	rounds := s.Rounds()
	require.Len(t, rounds, 1)
	assert.Equal(t, map[string]int{"A": 1, "B": 2}, rounds[0].Scores())
}

func TestFlip3DuringInitialDeal(t *testing.T) {
	t.Parallel()

	s, err := NewSession(Config{
		Players: []game.PlayerSpec{
			{Name: "A", Strategy: banker{strategy.Default()}},
			{Name: "B", Strategy: never{strategy.Default()}},
		},
		Deck: stacked("FLIP3 3 7 7 9"),
	})
	require.NoError(t, err)
	require.NoError(t, s.PlayRound())

	assert.Equal(t, []EventType{
		GameStart, RoundStart,
		CardDealt, Flip3Card, PlayerBusted,
		TurnStart, PlayerHit,
		TurnStart, PlayerStay,
		RoundEnd,
	}, types(s.Log()))

	flip3 := s.Log(Flip3Card)[0].Details
	assert.Equal(t, "A", flip3.Player)
	assert.Equal(t, "B", flip3.Target)
	assert.Equal(t, "[3 7 7]", deck.FormatCards(flip3.Cards))
	assert.Equal(t, "Busted", flip3.Status)

	stay := s.Log(PlayerStay)[0].Details
	require.NotNil(t, stay.Score)
	assert.Equal(t, 9, *stay.Score)

	assert.Equal(t, map[string]int{"A": 9, "B": 0}, s.Rounds()[0].Scores())
}

func TestSubscribersSeeEveryEvent(t *testing.T) {
	t.Parallel()

	s, err := NewSession(Config{Players: seats("A", "B", "C"), Seed: 5})
	require.NoError(t, err)

	var got []Event
	s.Subscribe(func(e Event) { got = append(got, e) })
	_, err = s.PlayGame()
	require.NoError(t, err)

	// game_start was recorded before the subscription
	assert.Equal(t, s.Log()[1:], got)
}

func TestDeckConservedThroughSessions(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 10; seed++ {
		s, err := NewSession(Config{Players: seats("A", "B", "C", "D"), Seed: seed, DisableLog: true})
		require.NoError(t, err)

		g := s.Game()
		s.Subscribe(func(e Event) {
			if n := g.CardsInPlay(); n != deck.TotalCards {
				t.Errorf("seed %d: %d cards in play after %s", seed, n, e.Type)
			}
		})
		_, err = s.PlayGame()
		require.NoError(t, err)
	}
}

func TestNewSessionRejectsBadTables(t *testing.T) {
	t.Parallel()
	_, err := NewSession(Config{})
	assert.Error(t, err)
	_, err = NewSession(Config{Players: seats("A", "A")})
	assert.Error(t, err)
}
