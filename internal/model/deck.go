package model

// DeckSize is the total card count of the canonical deck:
// values 1, 4 and 16 appear 4 times per color, value 9 appears 9 times
// per color, over 2 colors.
const DeckSize = 42

// copiesPerColor is how many copies of each denomination a single color holds
func copiesPerColor(v CardValue) int {
	if v == ValueNine {
		return 9
	}
	return 4
}

// Deck is an ordered stack of cards. The top of the deck is the last card
// in storage order; draws remove from the top.
type Deck struct {
	Cards []Card `json:"cards"`

	// Hidden is the count of cards intentionally not transmitted when the
	// deck was rebuilt from a snapshot. Deck contents are secret at the
	// session boundary, so a reconstructed deck is empty but sized.
	Hidden int `json:"hidden,omitempty"`
}

// NewStandardDeck builds the canonical 42-card deck, issuing IDs from seq.
// The deck is unshuffled; shuffle at game start.
func NewStandardDeck(seq *CardSequence) *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, value := range CardValues {
		for _, color := range CardColors {
			for i := 0; i < copiesPerColor(value); i++ {
				cards = append(cards, Card{ID: seq.Next(), Value: value, Color: color})
			}
		}
	}
	return &Deck{Cards: cards}
}

// Draw removes and returns the top card, or nil if no drawable card remains.
// Callers must check for nil; running out of cards is a normal outcome.
func (d *Deck) Draw() *Card {
	if len(d.Cards) == 0 {
		return nil
	}
	card := d.Cards[len(d.Cards)-1]
	d.Cards = d.Cards[:len(d.Cards)-1]
	return &card
}

// Peek returns the top card without removing it, or nil if none
func (d *Deck) Peek() *Card {
	if len(d.Cards) == 0 {
		return nil
	}
	card := d.Cards[len(d.Cards)-1]
	return &card
}

// Count returns the number of cards remaining, including hidden ones on a
// snapshot-reconstructed deck
func (d *Deck) Count() int {
	return len(d.Cards) + d.Hidden
}

// IsEmpty returns true if no cards remain
func (d *Deck) IsEmpty() bool {
	return d.Count() == 0
}

// Swap exchanges the cards at positions i and j; used by Fisher-Yates shuffling
func (d *Deck) Swap(i, j int) {
	d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
}
