package deck

import (
	"encoding/json"
	"testing"
)

func TestParseCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:     "numbers",
			input:    "3 5 7",
			expected: []Card{NumberCard(3), NumberCard(5), NumberCard(7)},
		},
		{
			name:     "modifiers and commas",
			input:    "2,4,x2,+6",
			expected: []Card{NumberCard(2), NumberCard(4), ModifierCard(Times2), ModifierCard(Plus6)},
		},
		{
			name:     "action cards",
			input:    "FREEZE flip3 SECOND_CHANCE",
			expected: []Card{ActionCard(Freeze), ActionCard(FlipThree), ActionCard(SecondChance)},
		},
		{
			name:     "zero",
			input:    "0",
			expected: []Card{NumberCard(0)},
		},
		{
			name:    "number out of range",
			input:   "13",
			wantErr: true,
		},
		{
			name:    "unknown modifier",
			input:   "+3",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "joker",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCards(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("ParseCards(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("card %d = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestCardStringRoundTrip(t *testing.T) {
	t.Parallel()
	for _, c := range Composition() {
		parsed, err := ParseCard(c.String())
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("ParseCard(%q) = %#v, want %#v", c.String(), parsed, c)
		}
	}
}

func TestCardJSON(t *testing.T) {
	t.Parallel()
	hand := MustParseCards("3 x2 +10 FLIP3")
	data, err := json.Marshal(hand)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `["3","x2","+10","FLIP3"]` {
		t.Errorf("unexpected encoding %s", data)
	}

	var decoded []Card
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if FormatCards(decoded) != "[3 x2 +10 FLIP3]" {
		t.Errorf("decoded %v", decoded)
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards() should panic on invalid input")
		}
	}()
	MustParseCards("invalid")
}
