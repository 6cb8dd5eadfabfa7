package model

// ComboType distinguishes the two scoring patterns
type ComboType string

const (
	// ComboThreeCards: values {1, 4, 16} in one color
	ComboThreeCards ComboType = "THREE_CARDS"
	// ComboTripleMatch: three equal values in one color
	ComboTripleMatch ComboType = "TRIPLE_MATCH"
)

// Combo rewards, fixed for wire compatibility
const (
	ThreeCardsStars  = 3
	ThreeCardsDraws  = 3
	TripleMatchStars = 1
	TripleMatchDraws = 1
)

// Combo is an immutable claim: a type, exactly the cards satisfying it and
// their board positions in parallel order. Combos are transient; detection
// creates them and resolution consumes them immediately.
type Combo struct {
	Type      ComboType  `json:"type"`
	Cards     []Card     `json:"cards"`
	Positions []Position `json:"positions"`
}

// NewCombo constructs a combo claim, requiring parallel card/position lists
func NewCombo(comboType ComboType, cards []Card, positions []Position) (Combo, error) {
	if len(cards) != len(positions) {
		return Combo{}, ErrComboLengthMismatch
	}
	return Combo{Type: comboType, Cards: cards, Positions: positions}, nil
}

// RewardStars is the nominal star award for this combo, before pool clamping
func (c Combo) RewardStars() int {
	if c.Type == ComboThreeCards {
		return ThreeCardsStars
	}
	return TripleMatchStars
}

// DrawCount is the number of replacement cards drawn when the combo resolves
func (c Combo) DrawCount() int {
	if c.Type == ComboThreeCards {
		return ThreeCardsDraws
	}
	return TripleMatchDraws
}
