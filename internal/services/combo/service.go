package combo

import (
	"sort"

	"github.com/stargrid/stargrid-go/internal/model"
)

// Priority values for placement suggestions
const (
	PriorityThreeCards  = 3
	PriorityTripleMatch = 1
)

// Suggestion is a candidate placement that would complete a combo
type Suggestion struct {
	Card     model.Card
	Position model.Position
	Combo    model.Combo
	Priority int
}

// Service detects and validates scoring combos. It is stateless; every
// method is a pure function over a board snapshot.
type Service struct{}

// New creates a new combo Service
func New() *Service {
	return &Service{}
}

// DetectCombos finds every combo that includes the card at lastPlaced and
// is chain-adjacent. Candidates are built from pairs of other occupied
// positions holding the anchor card's color; each candidate triple is tested
// against both value rules independently.
func (s *Service) DetectCombos(board *model.Board, lastPlaced model.Position) []model.Combo {
	anchor := board.CardAt(lastPlaced)
	if anchor == nil {
		return nil
	}

	var sameColor []model.Position
	for _, pos := range board.OccupiedPositions() {
		if pos == lastPlaced {
			continue
		}
		if board.CardAt(pos).Color == anchor.Color {
			sameColor = append(sameColor, pos)
		}
	}

	var combos []model.Combo
	for i := 0; i < len(sameColor); i++ {
		for j := i + 1; j < len(sameColor); j++ {
			positions := []model.Position{lastPlaced, sameColor[i], sameColor[j]}
			cards := []model.Card{
				*anchor,
				*board.CardAt(sameColor[i]),
				*board.CardAt(sameColor[j]),
			}
			if !chainAdjacent(positions) {
				continue
			}
			if isThreeCards(cards) {
				c, _ := model.NewCombo(model.ComboThreeCards, cards, positions)
				combos = append(combos, c)
			}
			if isTripleMatch(cards) {
				c, _ := model.NewCombo(model.ComboTripleMatch, cards, positions)
				combos = append(combos, c)
			}
		}
	}
	return combos
}

// CheckCombo validates an externally proposed claim without an anchor
// requirement. This is the authoritative validator for claims arriving from
// the UI or a remote relay.
func (s *Service) CheckCombo(cards []model.Card, positions []model.Position) (model.ComboType, bool) {
	if len(cards) == 0 || len(cards) != len(positions) {
		return "", false
	}
	color := cards[0].Color
	for _, c := range cards[1:] {
		if c.Color != color {
			return "", false
		}
	}

	var comboType model.ComboType
	switch {
	case isThreeCards(cards):
		comboType = model.ComboThreeCards
	case isTripleMatch(cards):
		comboType = model.ComboTripleMatch
	default:
		return "", false
	}

	if !chainAdjacent(positions) {
		return "", false
	}
	return comboType, true
}

// SuggestPlacements explores, for every candidate card and empty position,
// whether placing the card there completes a combo. Exploration runs on a
// copy of the board so it is side-effect-free on all paths. Results are
// sorted by descending priority, then descending combo card count.
func (s *Service) SuggestPlacements(board *model.Board, candidates []model.Card) []Suggestion {
	var suggestions []Suggestion
	empty := board.EmptyPositions()
	for _, card := range candidates {
		for _, pos := range empty {
			scratch := board.Clone()
			if err := scratch.Place(card, pos); err != nil {
				continue
			}
			for _, found := range s.DetectCombos(scratch, pos) {
				suggestions = append(suggestions, Suggestion{
					Card:     card,
					Position: pos,
					Combo:    found,
					Priority: priorityFor(found.Type),
				})
			}
		}
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Priority != suggestions[j].Priority {
			return suggestions[i].Priority > suggestions[j].Priority
		}
		return len(suggestions[i].Combo.Cards) > len(suggestions[j].Combo.Cards)
	})
	return suggestions
}

func priorityFor(t model.ComboType) int {
	if t == model.ComboThreeCards {
		return PriorityThreeCards
	}
	return PriorityTripleMatch
}

// isThreeCards reports whether the values, sorted ascending, are exactly
// [1, 4, 16]
func isThreeCards(cards []model.Card) bool {
	if len(cards) != 3 {
		return false
	}
	values := []int{int(cards[0].Value), int(cards[1].Value), int(cards[2].Value)}
	sort.Ints(values)
	return values[0] == 1 && values[1] == 4 && values[2] == 16
}

// isTripleMatch reports whether all three values are equal
func isTripleMatch(cards []model.Card) bool {
	if len(cards) != 3 {
		return false
	}
	return cards[0].Value == cards[1].Value && cards[1].Value == cards[2].Value
}

// chainAdjacent implements the triple adjacency rule: for each position,
// count how many of the other two it is pairwise-adjacent to; the triple is
// valid iff the sorted count multiset is exactly [1, 1, 2]. This accepts
// straight lines and L shapes and rejects diagonals, gapped and disconnected
// arrangements.
func chainAdjacent(positions []model.Position) bool {
	if len(positions) != 3 {
		return false
	}
	counts := make([]int, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j && positions[i].Adjacent(positions[j]) {
				counts[i]++
			}
		}
	}
	sort.Ints(counts)
	return counts[0] == 1 && counts[1] == 1 && counts[2] == 2
}
