package bot

import (
	"github.com/stargrid/stargrid-go/internal/dependencies/random"
	"github.com/stargrid/stargrid-go/internal/model"
	"github.com/stargrid/stargrid-go/internal/services/combo"
)

// StepKind tags a planned turn step
type StepKind string

const (
	// StepDiscardBoard removes a card from an occupied board position
	StepDiscardBoard StepKind = "discard_board"
	// StepPlaceFromHand places a hand card on the board
	StepPlaceFromHand StepKind = "place_from_hand"
	// StepDrawAndPlace draws the top deck card and places it
	StepDrawAndPlace StepKind = "draw_and_place"
	// StepClaimCombo claims a detected combo
	StepClaimCombo StepKind = "claim_combo"
	// StepMissedCombo records a combo the strategy failed to claim; it is
	// diagnostic only and mutates nothing
	StepMissedCombo StepKind = "missed_combo"
	// StepEndTurn ends the turn
	StepEndTurn StepKind = "end_turn"
)

// Step is one planned turn action, carrying exactly the fields its kind
// needs. Replay is an exhaustive switch over Kind; a plan is replayed
// through the same orchestrator operations a human uses.
type Step struct {
	Kind     StepKind        `json:"kind"`
	Position *model.Position `json:"position,omitempty"`
	Card     *model.Card     `json:"card,omitempty"`
	Combo    *model.Combo    `json:"combo,omitempty"`
}

// Strategy plans a full CPU turn. PlanTurn must leave the game untouched:
// all hypothetical placement runs on board copies, so a caller may narrate
// the steps before committing them.
type Strategy interface {
	PlanTurn(g *model.Game) ([]Step, error)
}

// ForDifficulty returns the strategy implementation for a difficulty tag
func ForDifficulty(d model.Difficulty, detector *combo.Service, rnd random.Random) (Strategy, error) {
	switch d {
	case model.DifficultyEasy:
		return NewEasyStrategy(detector, rnd), nil
	case model.DifficultyNormal:
		return NewNormalStrategy(detector, rnd), nil
	}
	return nil, model.ErrInvalidDifficulty
}

// chooseDiscard picks a uniformly random occupied position, excluding the
// opponent's last placement when any alternative exists
func chooseDiscard(board *model.Board, lastPlaced *model.Position, rnd random.Random) model.Position {
	occupied := board.OccupiedPositions()
	if lastPlaced != nil {
		candidates := make([]model.Position, 0, len(occupied))
		for _, pos := range occupied {
			if pos != *lastPlaced {
				candidates = append(candidates, pos)
			}
		}
		if len(candidates) > 0 {
			occupied = candidates
		}
	}
	return occupied[rnd.Intn(len(occupied))]
}

// claimSteps runs combo detection anchored at the placement position and
// decides whether to claim. THREE_CARDS is always preferred over
// TRIPLE_MATCH; a 1-in-missOdds roll turns the claim into a recorded miss.
func claimSteps(detector *combo.Service, board *model.Board, placed model.Position, missOdds int, rnd random.Random) []Step {
	combos := detector.DetectCombos(board, placed)
	if len(combos) == 0 {
		return nil
	}

	chosen := combos[0]
	for _, c := range combos {
		if c.Type == model.ComboThreeCards {
			chosen = c
			break
		}
	}

	if rnd.Intn(missOdds) == 0 {
		return []Step{{Kind: StepMissedCombo, Combo: &chosen}}
	}
	return []Step{{Kind: StepClaimCombo, Combo: &chosen}}
}
