package model

import "sort"

// Hand is an unordered bag of cards owned by a single player. Storage order
// is insertion order but carries no meaning; reads go through Sorted.
type Hand struct {
	Cards []Card `json:"cards"`
}

// Add appends a card to the hand
func (h *Hand) Add(card Card) {
	h.Cards = append(h.Cards, card)
}

// Remove takes a card out of the hand by identity
func (h *Hand) Remove(card Card) error {
	for i, c := range h.Cards {
		if c.Same(card) {
			h.Cards = append(h.Cards[:i], h.Cards[i+1:]...)
			return nil
		}
	}
	return ErrCardNotFound
}

// Has reports whether the hand holds the card, by identity
func (h *Hand) Has(card Card) bool {
	for _, c := range h.Cards {
		if c.Same(card) {
			return true
		}
	}
	return false
}

// Find returns the held card with the given ID, or nil
func (h *Hand) Find(id CardID) *Card {
	for i := range h.Cards {
		if h.Cards[i].ID == id {
			return &h.Cards[i]
		}
	}
	return nil
}

// Count returns the number of cards held
func (h *Hand) Count() int {
	return len(h.Cards)
}

// IsEmpty returns true if the hand holds no cards
func (h *Hand) IsEmpty() bool {
	return len(h.Cards) == 0
}

// Sorted returns a read view sorted by color (RED before BLUE) then
// ascending value. The sort is recomputed on every call so mutations are
// immediately reflected. Cards with identical value and color have no
// defined relative order.
func (h *Hand) Sorted() []Card {
	view := make([]Card, len(h.Cards))
	copy(view, h.Cards)
	sort.SliceStable(view, func(i, j int) bool {
		if view[i].Color != view[j].Color {
			return view[i].Color.sortRank() < view[j].Color.sortRank()
		}
		return view[i].Value < view[j].Value
	})
	return view
}
