package deck

import (
	"testing"

	"github.com/lox/flip7/internal/randutil"
)

func TestCompositionCounts(t *testing.T) {
	t.Parallel()
	cards := Composition()
	if len(cards) != TotalCards {
		t.Fatalf("deck has %d cards, want %d", len(cards), TotalCards)
	}

	counts := make(map[Card]int)
	for _, c := range cards {
		counts[c]++
	}
	if counts[NumberCard(0)] != 1 {
		t.Errorf("expected one 0, got %d", counts[NumberCard(0)])
	}
	for n := 1; n <= MaxNumber; n++ {
		if counts[NumberCard(n)] != n {
			t.Errorf("expected %d copies of %d, got %d", n, n, counts[NumberCard(n)])
		}
	}
	for m := Plus2; m <= Times2; m++ {
		if counts[ModifierCard(m)] != 1 {
			t.Errorf("expected one %v", ModifierCard(m))
		}
	}
	for a := Freeze; a <= SecondChance; a++ {
		if counts[ActionCard(a)] != 1 {
			t.Errorf("expected one %v", ActionCard(a))
		}
	}
}

func TestShuffleIsSeeded(t *testing.T) {
	t.Parallel()
	a := New(randutil.New(42))
	b := New(randutil.New(42))
	c := New(randutil.New(43))

	same, differs := true, false
	for i := 0; i < TotalCards; i++ {
		x, _ := a.Draw()
		y, _ := b.Draw()
		z, _ := c.Draw()
		if x != y {
			same = false
		}
		if x != z {
			differs = true
		}
	}
	if !same {
		t.Error("same seed produced different orders")
	}
	if !differs {
		t.Error("different seeds produced identical orders")
	}
}

func TestStackedDrawOrder(t *testing.T) {
	t.Parallel()
	d := NewStacked(randutil.New(1), MustParseCards("3 5 7")...)
	for _, want := range MustParseCards("3 5 7") {
		got, ok := d.Draw()
		if !ok || got != want {
			t.Fatalf("Draw() = %v, %v; want %v", got, ok, want)
		}
	}
	if _, ok := d.Draw(); ok {
		t.Error("expected empty deck")
	}
}

func TestReshuffleFromDiscard(t *testing.T) {
	t.Parallel()
	d := NewStacked(randutil.New(1), NumberCard(1))
	if _, ok := d.Draw(); !ok {
		t.Fatal("expected a card")
	}

	d.Discard(MustParseCards("4 5 6")...)
	if d.Remaining() != 0 || d.DiscardSize() != 3 {
		t.Fatalf("remaining=%d discard=%d", d.Remaining(), d.DiscardSize())
	}
	if d.Total() != 3 {
		t.Fatalf("total = %d, want 3", d.Total())
	}

	if _, ok := d.Draw(); !ok {
		t.Fatal("expected reshuffled card")
	}
	if d.DiscardSize() != 0 {
		t.Errorf("discard should be cleared after reshuffle, has %d", d.DiscardSize())
	}
	if d.Remaining() != 2 {
		t.Errorf("expected 2 cards left, got %d", d.Remaining())
	}
	d.Draw()
	d.Draw()
	if !d.IsEmpty() {
		t.Error("deck and discard should both be empty")
	}
	if _, ok := d.Draw(); ok {
		t.Error("draw from exhausted deck should fail")
	}
}
