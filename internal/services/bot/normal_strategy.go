package bot

import (
	"github.com/stargrid/stargrid-go/internal/dependencies/random"
	"github.com/stargrid/stargrid-go/internal/model"
	"github.com/stargrid/stargrid-go/internal/services/combo"
)

// normalMissOdds makes the normal strategy forgo 1 in 20 detected combos
const normalMissOdds = 20

// fallbackValueOrder is the placement preference when no combo is
// achievable: spend high values first, keeping the flexible low cards back
var fallbackValueOrder = []model.CardValue{
	model.ValueSixteen,
	model.ValueNine,
	model.ValueOne,
	model.ValueFour,
}

// NormalStrategy actively searches for combo-completing placements, falling
// back to a fixed value preference order, and overlooks 1 in 20 combos
type NormalStrategy struct {
	detector *combo.Service
	random   random.Random
}

// NewNormalStrategy creates a new NormalStrategy
func NewNormalStrategy(detector *combo.Service, rnd random.Random) *NormalStrategy {
	return &NormalStrategy{detector: detector, random: rnd}
}

// PlanTurn computes the full turn step list against a board copy
func (s *NormalStrategy) PlanTurn(g *model.Game) ([]Step, error) {
	board := g.Board.Clone()
	var steps []Step

	if board.IsFull() {
		pos := chooseDiscard(board, g.LastPlaced, s.random)
		board.Remove(pos)
		steps = append(steps, Step{Kind: StepDiscardBoard, Position: &pos})
	}

	hand := g.Current().Hand.Cards
	var placed model.Position

	if len(hand) > 0 {
		card, pos := s.choosePlacement(board, hand)
		placed = pos
		if err := board.Place(card, placed); err != nil {
			return nil, err
		}
		c := card
		steps = append(steps, Step{Kind: StepPlaceFromHand, Card: &c, Position: &placed})
	} else {
		top := g.Deck.Peek()
		if top == nil {
			return nil, model.ErrDeckEmpty
		}
		placed = s.chooseDrawPlacement(board, *top)
		if err := board.Place(*top, placed); err != nil {
			return nil, err
		}
		steps = append(steps, Step{Kind: StepDrawAndPlace, Card: top, Position: &placed})
	}

	steps = append(steps, claimSteps(s.detector, board, placed, normalMissOdds, s.random)...)
	steps = append(steps, Step{Kind: StepEndTurn})
	return steps, nil
}

// choosePlacement searches the whole hand for combo-completing placements
// and takes the best, tie-breaking uniformly among equal-top-priority
// suggestions. Without a reachable combo it places the first hand card in
// the fallback value order at a random empty position.
func (s *NormalStrategy) choosePlacement(board *model.Board, hand []model.Card) (model.Card, model.Position) {
	suggestions := s.detector.SuggestPlacements(board, hand)
	if len(suggestions) > 0 {
		top := suggestions[0].Priority
		count := 0
		for _, sg := range suggestions {
			if sg.Priority != top {
				break
			}
			count++
		}
		pick := suggestions[s.random.Intn(count)]
		return pick.Card, pick.Position
	}

	card := hand[0]
	for _, value := range fallbackValueOrder {
		found := false
		for _, c := range hand {
			if c.Value == value {
				card = c
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	empty := board.EmptyPositions()
	return card, empty[s.random.Intn(len(empty))]
}

// chooseDrawPlacement plans where the peeked top deck card should go: a
// combo-completing position if one exists, else a random empty cell
func (s *NormalStrategy) chooseDrawPlacement(board *model.Board, top model.Card) model.Position {
	suggestions := s.detector.SuggestPlacements(board, []model.Card{top})
	if len(suggestions) > 0 {
		return suggestions[0].Position
	}
	empty := board.EmptyPositions()
	return empty[s.random.Intn(len(empty))]
}
