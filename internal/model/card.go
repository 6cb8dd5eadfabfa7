package model

// CardValue is one of the four fixed card denominations
type CardValue int

const (
	ValueOne     CardValue = 1
	ValueFour    CardValue = 4
	ValueNine    CardValue = 9
	ValueSixteen CardValue = 16
)

// CardValues lists the denominations in ascending order
var CardValues = []CardValue{ValueOne, ValueFour, ValueNine, ValueSixteen}

// NewCardValue validates a raw integer as a card denomination
func NewCardValue(v int) (CardValue, error) {
	switch CardValue(v) {
	case ValueOne, ValueFour, ValueNine, ValueSixteen:
		return CardValue(v), nil
	}
	return 0, ErrInvalidValue
}

// CardColor is one of the two card colors
type CardColor string

const (
	ColorRed  CardColor = "RED"
	ColorBlue CardColor = "BLUE"
)

// CardColors lists the colors in their fixed declared order (used for hand sorting)
var CardColors = []CardColor{ColorRed, ColorBlue}

// Valid returns true if the color is RED or BLUE
func (c CardColor) Valid() bool {
	return c == ColorRed || c == ColorBlue
}

// sortRank returns the color's position in the declared order
func (c CardColor) sortRank() int {
	if c == ColorRed {
		return 0
	}
	return 1
}

// CardID uniquely identifies a physical card within a game
type CardID int

// Card is an identity-bearing card. Two cards are equal iff their IDs match;
// duplicates of the same value and color are distinct physical cards.
type Card struct {
	ID    CardID    `json:"id"`
	Value CardValue `json:"value"`
	Color CardColor `json:"color"`
}

// Same reports whether two cards are the same physical card
func (c Card) Same(other Card) bool {
	return c.ID == other.ID
}

// CardSequence issues monotonically increasing card IDs. It is owned by
// whichever component constructs the deck rather than being process-global,
// so test fixtures get deterministic IDs.
type CardSequence struct {
	next CardID
}

// NewCardSequence creates a sequence starting at 1
func NewCardSequence() *CardSequence {
	return &CardSequence{next: 1}
}

// Next returns the next unused card ID
func (s *CardSequence) Next() CardID {
	id := s.next
	s.next++
	return id
}
