package bot

import (
	"github.com/stargrid/stargrid-go/internal/dependencies/random"
	"github.com/stargrid/stargrid-go/internal/model"
	"github.com/stargrid/stargrid-go/internal/services/combo"
)

// easyMissOdds makes the easy strategy forgo 1 in 5 detected combos
const easyMissOdds = 5

// EasyStrategy plays a uniformly random hand card at a uniformly random
// empty position and overlooks a fifth of its combos
type EasyStrategy struct {
	detector *combo.Service
	random   random.Random
}

// NewEasyStrategy creates a new EasyStrategy
func NewEasyStrategy(detector *combo.Service, rnd random.Random) *EasyStrategy {
	return &EasyStrategy{detector: detector, random: rnd}
}

// PlanTurn computes the full turn step list against a board copy
func (s *EasyStrategy) PlanTurn(g *model.Game) ([]Step, error) {
	board := g.Board.Clone()
	var steps []Step

	if board.IsFull() {
		pos := chooseDiscard(board, g.LastPlaced, s.random)
		board.Remove(pos)
		steps = append(steps, Step{Kind: StepDiscardBoard, Position: &pos})
	}

	hand := g.Current().Hand.Cards
	empty := board.EmptyPositions()
	var placed model.Position

	if len(hand) > 0 {
		card := hand[s.random.Intn(len(hand))]
		placed = empty[s.random.Intn(len(empty))]
		if err := board.Place(card, placed); err != nil {
			return nil, err
		}
		c := card
		steps = append(steps, Step{Kind: StepPlaceFromHand, Card: &c, Position: &placed})
	} else {
		top := g.Deck.Peek()
		if top == nil {
			// The turn rules finish the game before a hand-empty player
			// can face an empty deck; reaching this is a caller bug.
			return nil, model.ErrDeckEmpty
		}
		placed = empty[s.random.Intn(len(empty))]
		if err := board.Place(*top, placed); err != nil {
			return nil, err
		}
		steps = append(steps, Step{Kind: StepDrawAndPlace, Card: top, Position: &placed})
	}

	steps = append(steps, claimSteps(s.detector, board, placed, easyMissOdds, s.random)...)
	steps = append(steps, Step{Kind: StepEndTurn})
	return steps, nil
}
