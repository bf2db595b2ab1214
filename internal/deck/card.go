package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags which variant a Card holds
type Kind uint8

const (
	Number Kind = iota
	Modifier
	Action
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Modifier:
		return "modifier"
	case Action:
		return "action"
	default:
		return "?"
	}
}

// ModifierType identifies a modifier card
type ModifierType int

const (
	Plus2 ModifierType = iota + 1
	Plus4
	Plus6
	Plus8
	Plus10
	Times2
)

// Bonus returns the flat points a +N modifier adds, 0 for x2
func (m ModifierType) Bonus() int {
	switch m {
	case Plus2:
		return 2
	case Plus4:
		return 4
	case Plus6:
		return 6
	case Plus8:
		return 8
	case Plus10:
		return 10
	default:
		return 0
	}
}

// String returns the string representation of a modifier
func (m ModifierType) String() string {
	if m == Times2 {
		return "x2"
	}
	if b := m.Bonus(); b > 0 {
		return "+" + strconv.Itoa(b)
	}
	return "?"
}

// ActionType identifies an action card
type ActionType int

const (
	Freeze ActionType = iota + 1
	FlipThree
	SecondChance
)

// String returns the string representation of an action
func (a ActionType) String() string {
	switch a {
	case Freeze:
		return "FREEZE"
	case FlipThree:
		return "FLIP3"
	case SecondChance:
		return "SECOND_CHANCE"
	default:
		return "?"
	}
}

// MaxNumber is the highest number card value
const MaxNumber = 12

// Card is a tagged value. Value holds the face value for number cards, a
// ModifierType for modifiers and an ActionType for action cards. Cards are
// comparable so duplicate detection is plain equality.
type Card struct {
	Kind  Kind
	Value int
}

// NumberCard creates a number card with face value n
func NumberCard(n int) Card {
	return Card{Kind: Number, Value: n}
}

// ModifierCard creates a modifier card
func ModifierCard(m ModifierType) Card {
	return Card{Kind: Modifier, Value: int(m)}
}

// ActionCard creates an action card
func ActionCard(a ActionType) Card {
	return Card{Kind: Action, Value: int(a)}
}

// IsNumber returns true for number cards
func (c Card) IsNumber() bool { return c.Kind == Number }

// IsModifier returns true for modifier cards
func (c Card) IsModifier() bool { return c.Kind == Modifier }

// IsAction returns true for action cards
func (c Card) IsAction() bool { return c.Kind == Action }

// Modifier returns the modifier type; only meaningful when IsModifier
func (c Card) Modifier() ModifierType { return ModifierType(c.Value) }

// ActionType returns the action type; only meaningful when IsAction
func (c Card) ActionType() ActionType { return ActionType(c.Value) }

// String returns the card as it is printed on the face ("7", "+4", "x2", "FREEZE")
func (c Card) String() string {
	switch c.Kind {
	case Number:
		return strconv.Itoa(c.Value)
	case Modifier:
		return c.Modifier().String()
	case Action:
		return c.ActionType().String()
	default:
		return "?"
	}
}

// MarshalText encodes the card in its printed form
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a card from its printed form
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCard parses a card from its printed form
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "X2":
		return ModifierCard(Times2), nil
	case "FREEZE":
		return ActionCard(Freeze), nil
	case "FLIP3":
		return ActionCard(FlipThree), nil
	case "SECOND_CHANCE":
		return ActionCard(SecondChance), nil
	}

	if strings.HasPrefix(s, "+") {
		n, err := strconv.Atoi(s[1:])
		if err != nil {
			return Card{}, fmt.Errorf("invalid modifier %q", s)
		}
		for m := Plus2; m <= Plus10; m++ {
			if m.Bonus() == n {
				return ModifierCard(m), nil
			}
		}
		return Card{}, fmt.Errorf("invalid modifier %q", s)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	if n < 0 || n > MaxNumber {
		return Card{}, fmt.Errorf("number card %d out of range 0-%d", n, MaxNumber)
	}
	return NumberCard(n), nil
}

// ParseCards parses a list of cards separated by spaces or commas, e.g. "3 5 x2 +6"
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards renders cards as "[3 5 x2]"
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
