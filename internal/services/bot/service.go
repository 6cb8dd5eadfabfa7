package bot

import (
	"context"
	"log/slog"

	"github.com/stargrid/stargrid-go/internal/dependencies/random"
	"github.com/stargrid/stargrid-go/internal/model"
	"github.com/stargrid/stargrid-go/internal/services/combo"
	"github.com/stargrid/stargrid-go/internal/services/game"
)

// Service runs CPU turns. Plans are computed without touching live state
// and then replayed through the same game controller operations a human
// command would use, so CPU and human turns are indistinguishable to the
// orchestrator.
type Service struct {
	gameController *game.Controller
	detector       *combo.Service
	random         random.Random
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(
	gameController *game.Controller,
	detector *combo.Service,
	rnd random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		gameController: gameController,
		detector:       detector,
		random:         rnd,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// PlanTurn computes the current CPU player's full turn without mutating
// game state. It fails if the current player is not CPU-controlled.
func (s *Service) PlanTurn(ctx context.Context, gameID model.GameID) ([]Step, error) {
	g, err := s.gameController.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g.IsFinished() {
		return nil, model.ErrGameFinished
	}
	if !g.Current().IsCPU() {
		return nil, model.ErrNotCPUPlayer
	}

	strategy, err := ForDifficulty(g.Current().Difficulty, s.detector, s.random)
	if err != nil {
		return nil, err
	}
	return strategy.PlanTurn(g)
}

// ExecuteSteps replays a planned step list against live state
func (s *Service) ExecuteSteps(ctx context.Context, gameID model.GameID, steps []Step) error {
	g, err := s.gameController.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	turn := g.Turn

	for _, step := range steps {
		switch step.Kind {
		case StepDiscardBoard:
			if err := s.gameController.DiscardFromBoard(ctx, gameID, *step.Position); err != nil {
				return err
			}
		case StepPlaceFromHand:
			if err := s.gameController.PlaceCard(ctx, gameID, step.Card.ID, *step.Position); err != nil {
				return err
			}
		case StepDrawAndPlace:
			if _, err := s.gameController.DrawAndPlace(ctx, gameID, *step.Position); err != nil {
				return err
			}
		case StepClaimCombo:
			if _, err := s.gameController.ClaimCombo(ctx, gameID, *step.Combo); err != nil {
				return err
			}
		case StepMissedCombo:
			s.logger.Info("cpu missed a combo",
				slog.String("game_id", string(gameID)),
				slog.String("combo_type", string(step.Combo.Type)),
			)
		case StepEndTurn:
			if err := s.gameController.EndTurn(ctx, gameID, turn); err != nil {
				return err
			}
		}
	}
	return nil
}

// PlayTurn plans and immediately executes the current CPU player's turn,
// returning the executed steps for narration
func (s *Service) PlayTurn(ctx context.Context, gameID model.GameID) ([]Step, error) {
	steps, err := s.PlanTurn(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if err := s.ExecuteSteps(ctx, gameID, steps); err != nil {
		return steps, err
	}
	return steps, nil
}
