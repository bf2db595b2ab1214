package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/flip7/internal/deck"
	"github.com/lox/flip7/internal/randutil"
)

func newResolverGame(t *testing.T, cards string, actor *scripted, others ...string) *Controller {
	t.Helper()
	specs := append([]PlayerSpec{{Name: "A", Strategy: actor}}, names(others...)...)
	return newStackedGame(t, cards, specs...)
}

func TestResolveRejectsNonActionCards(t *testing.T) {
	t.Parallel()
	c := newResolverGame(t, "", &scripted{}, "B")
	_, err := c.Resolve(c.Player("A"), deck.NumberCard(4))
	assert.ErrorIs(t, err, ErrNotAction)
}

func TestFreezeForcesTargetToStay(t *testing.T) {
	t.Parallel()
	c := newResolverGame(t, "FREEZE", &scripted{freezeOK: true, freezeID: 2}, "B", "C")
	res := mustDeal(t, c, "A")
	require.True(t, res.Card.IsAction())

	r, err := c.Resolve(c.Player("A"), res.Card)
	require.NoError(t, err)
	assert.Equal(t, "C", r.Target)
	assert.Equal(t, Stayed, c.Player("C").Status)
	assert.True(t, c.Player("B").IsActive())
	assert.True(t, c.Player("A").IsActive())
	assert.Equal(t, 1, c.State().DiscardSize, "action card goes to the discard pile")
}

func TestFreezeWithoutOpponentsIsNoop(t *testing.T) {
	t.Parallel()
	c := newResolverGame(t, "", &scripted{freezeOK: true, freezeID: 1}, "B")
	require.NoError(t, c.StayPlayer("B"))

	r, err := c.Resolve(c.Player("A"), deck.ActionCard(deck.Freeze))
	require.NoError(t, err)
	assert.Empty(t, r.Target)
	assert.Equal(t, "no active opponents", r.Reason)
	assert.True(t, c.Player("A").IsActive())
}

func TestFreezeIgnoresInvalidTarget(t *testing.T) {
	t.Parallel()
	// id 0 is the actor itself, never a valid opponent
	c := newResolverGame(t, "", &scripted{freezeOK: true, freezeID: 0}, "B")
	r, err := c.Resolve(c.Player("A"), deck.ActionCard(deck.Freeze))
	require.NoError(t, err)
	assert.Empty(t, r.Target)
	assert.True(t, c.Player("A").IsActive())
	assert.True(t, c.Player("B").IsActive())
}

func TestFlip3DrawsThreeOntoTarget(t *testing.T) {
	t.Parallel()
	c := newResolverGame(t, "1 2 3 4", &scripted{flip3OK: true, flip3ID: 1}, "B")

	r, err := c.Resolve(c.Player("A"), deck.ActionCard(deck.FlipThree))
	require.NoError(t, err)
	assert.Equal(t, "B", r.Target)
	assert.Equal(t, "[1 2 3]", deck.FormatCards(r.Drawn))
	assert.Equal(t, "[1 2 3]", deck.FormatCards(c.Player("B").Hand))
	assert.Equal(t, Active, r.TargetStatus)
	assert.Equal(t, 1, c.State().DeckSize)
}

func TestFlip3DefaultsToSelf(t *testing.T) {
	t.Parallel()
	c := newResolverGame(t, "7 8 9", &scripted{}, "B")
	r, err := c.Resolve(c.Player("A"), deck.ActionCard(deck.FlipThree))
	require.NoError(t, err)
	assert.Equal(t, "A", r.Target)
	assert.Len(t, c.Player("A").Hand, 3)
}

func TestFlip3StopsOnFlip7(t *testing.T) {
	t.Parallel()
	c := newResolverGame(t, "0 1 2 3 4 5 6 7 8", &scripted{flip3OK: true, flip3ID: 1}, "B")
	b := c.Player("B")
	for i := 0; i < 6; i++ {
		mustDeal(t, c, "B")
	}
	require.True(t, b.IsActive())

	r, err := c.Resolve(c.Player("A"), deck.ActionCard(deck.FlipThree))
	require.NoError(t, err)
	assert.Len(t, r.Drawn, 1, "drawing must stop once the target flips 7")
	assert.Equal(t, Flip7, b.Status)
	assert.Equal(t, Flip7, r.TargetStatus)
	assert.Equal(t, 2, c.State().DeckSize, "remaining forced draws are never issued")
}

func TestFlip3StopsOnBust(t *testing.T) {
	t.Parallel()
	c := newResolverGame(t, "5 5 6", &scripted{}, "B")
	r, err := c.Resolve(c.Player("A"), deck.ActionCard(deck.FlipThree))
	require.NoError(t, err)
	assert.Equal(t, "[5 5]", deck.FormatCards(r.Drawn))
	assert.Equal(t, Busted, c.Player("A").Status)
	assert.Equal(t, 1, c.State().DeckSize)
}

func TestFlip3StopsOnFrozenTarget(t *testing.T) {
	t.Parallel()
	c := newResolverGame(t, "1", &scripted{flip3OK: true, flip3ID: 1}, "B")
	c.Player("B").Freeze()

	// B is no longer an opponent, so FLIP3 falls back to the actor
	r, err := c.Resolve(c.Player("A"), deck.ActionCard(deck.FlipThree))
	require.NoError(t, err)
	assert.Equal(t, "A", r.Target)
	assert.Empty(t, c.Player("B").Hand)
}

func TestFlip3DiscardsDrawnActionCards(t *testing.T) {
	t.Parallel()
	c := newResolverGame(t, "FREEZE 4 SECOND_CHANCE", &scripted{}, "B")
	r, err := c.Resolve(c.Player("A"), deck.ActionCard(deck.FlipThree))
	require.NoError(t, err)
	assert.Len(t, r.Drawn, 3)
	assert.Equal(t, "[4]", deck.FormatCards(c.Player("A").Hand))
	assert.Equal(t, 0, c.Player("A").SecondChances, "forced draws do not chain")
	assert.True(t, c.Player("B").IsActive())
	// two drawn action cards plus the FLIP3 itself
	assert.Equal(t, 3, c.State().DiscardSize)
}

func TestFlip3OnExhaustedDeck(t *testing.T) {
	t.Parallel()
	c := newResolverGame(t, "2", &scripted{}, "B")
	r, err := c.Resolve(c.Player("A"), deck.ActionCard(deck.FlipThree))
	require.NoError(t, err)
	assert.True(t, r.Exhausted)
	assert.Len(t, r.Drawn, 1)
}

func TestSecondChanceDispositions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		actor     *scripted
		target    string
		action    SecondChanceAction
		aCount    int
		bCount    int
		hasReason bool
	}{
		{name: "keep", actor: &scripted{scAction: Keep}, target: "A", action: Keep, aCount: 1},
		{name: "give", actor: &scripted{scAction: Give, scID: 1}, target: "B", action: Give, bCount: 1},
		{name: "give to invalid target keeps", actor: &scripted{scAction: Give, scID: 9}, target: "A", action: Keep, aCount: 1, hasReason: true},
		{name: "discard", actor: &scripted{scAction: Discard}, action: Discard, hasReason: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := newResolverGame(t, "", tt.actor, "B")
			r, err := c.Resolve(c.Player("A"), deck.ActionCard(deck.SecondChance))
			require.NoError(t, err)
			assert.Equal(t, tt.action, r.Action)
			assert.Equal(t, tt.target, r.Target)
			assert.Equal(t, tt.aCount, c.Player("A").SecondChances)
			assert.Equal(t, tt.bCount, c.Player("B").SecondChances)
			assert.Equal(t, tt.hasReason, r.Reason != "")
			assert.Empty(t, c.Player("A").Hand, "second chance never enters a hand")
			assert.Equal(t, 1, c.State().DiscardSize)
		})
	}
}

func TestResolveUsesActorStrategy(t *testing.T) {
	t.Parallel()
	rng := randutil.New(3)
	d := deck.NewStacked(rng)
	c, err := NewControllerWithDeck(d, rng, []PlayerSpec{
		{Name: "A", Strategy: &scripted{freezeOK: true, freezeID: 1}},
		{Name: "B", Strategy: &scripted{freezeOK: true, freezeID: 0}},
	}, Config{})
	require.NoError(t, err)
	c.StartRound()

	_, err = c.Resolve(c.Player("B"), deck.ActionCard(deck.Freeze))
	require.NoError(t, err)
	assert.Equal(t, Stayed, c.Player("A").Status)
	assert.True(t, c.Player("B").IsActive())
}
