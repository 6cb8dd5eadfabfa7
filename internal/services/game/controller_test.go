package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/stargrid/stargrid-go/internal/dependencies/mocks"
	"github.com/stargrid/stargrid-go/internal/model"
	"github.com/stargrid/stargrid-go/internal/services/combo"
	"github.com/stargrid/stargrid-go/internal/storage/memory"
	"github.com/stargrid/stargrid-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, combo.New(), s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

// newGame creates a game against a normal CPU with the player going first.
// MockRandom's Shuffle is a no-op, so the deck keeps construction order and
// deals are fully deterministic: player1 draws card IDs 42, 40, ..., 28 and
// player2 draws 41, 39, ..., 27.
func (s *ControllerSuite) newGame() *model.Game {
	g, err := s.controller.CreateGame(s.ctx, model.DifficultyNormal, true)
	s.Require().NoError(err)
	return g
}

func (s *ControllerSuite) getGame(id model.GameID) *model.Game {
	g, err := s.controller.GetGame(s.ctx, id)
	s.Require().NoError(err)
	return g
}

// CreateGame

func (s *ControllerSuite) TestCreateGameSucceeds() {
	g := s.newGame()

	s.NotEmpty(g.ID)
	s.Equal(model.GameStatePlaying, g.State)
	s.Equal(0, g.CurrentPlayer)
	s.Equal(0, g.Turn)
	s.Equal(model.InitialStarPool, g.StarPool)
	s.Equal(26, g.Deck.Count())
	s.Equal(model.InitialHandSize, g.Players[0].Hand.Count())
	s.Equal(model.InitialHandSize, g.Players[1].Hand.Count())
	s.Equal(s.clock.CurrentTime, g.CreatedAt)
}

func (s *ControllerSuite) TestCreateGameTakesIDFromRandom() {
	s.random.QueueString("deterministic-id")

	g := s.newGame()
	s.Equal(model.GameID("deterministic-id"), g.ID)
}

func (s *ControllerSuite) TestCreateGameDealsAlternately() {
	g := s.newGame()

	s.Equal(model.CardID(42), g.Players[0].Hand.Cards[0].ID)
	s.Equal(model.CardID(41), g.Players[1].Hand.Cards[0].ID)
	s.Equal(model.CardID(28), g.Players[0].Hand.Cards[7].ID)
	s.Equal(model.CardID(27), g.Players[1].Hand.Cards[7].ID)
	s.Equal(model.CardID(26), g.Deck.Peek().ID)
}

func (s *ControllerSuite) TestCreateGameTagsCPUPlayer() {
	g := s.newGame()

	s.False(g.Players[0].IsCPU())
	s.True(g.Players[1].IsCPU())
	s.Equal(model.DifficultyNormal, g.Players[1].Difficulty)
}

func (s *ControllerSuite) TestCreateGameEmptyDifficultyIsHuman() {
	g, err := s.controller.CreateGame(s.ctx, "", true)
	s.Require().NoError(err)
	s.False(g.Players[1].IsCPU())
}

func (s *ControllerSuite) TestCreateGameCPUGoesFirst() {
	g, err := s.controller.CreateGame(s.ctx, model.DifficultyEasy, false)
	s.Require().NoError(err)
	s.Equal(1, g.CurrentPlayer)
}

func (s *ControllerSuite) TestCreateGameRejectsUnknownDifficulty() {
	_, err := s.controller.CreateGame(s.ctx, "brutal", true)
	s.ErrorIs(err, model.ErrInvalidDifficulty)
}

func (s *ControllerSuite) TestCreateGameIsPersisted() {
	g := s.newGame()
	retrieved := s.getGame(g.ID)
	s.Equal(g.ID, retrieved.ID)
}

func (s *ControllerSuite) TestGetGameNotFound() {
	_, err := s.controller.GetGame(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// PlaceCard

func (s *ControllerSuite) TestPlaceCardSucceeds() {
	g := s.newGame()
	pos := model.Position{Row: 1, Col: 1}

	err := s.controller.PlaceCard(s.ctx, g.ID, 42, pos)
	s.Require().NoError(err)

	updated := s.getGame(g.ID)
	placed := updated.Board.CardAt(pos)
	s.Require().NotNil(placed)
	s.Equal(model.CardID(42), placed.ID)
	s.Equal(7, updated.Players[0].Hand.Count())
	s.Require().NotNil(updated.LastPlaced)
	s.Equal(pos, *updated.LastPlaced)
}

func (s *ControllerSuite) TestPlaceCardReplayIsNoOp() {
	g := s.newGame()
	pos := model.Position{Row: 0, Col: 0}
	s.Require().NoError(s.controller.PlaceCard(s.ctx, g.ID, 42, pos))

	err := s.controller.PlaceCard(s.ctx, g.ID, 42, pos)
	s.Require().NoError(err)

	updated := s.getGame(g.ID)
	s.Equal(7, updated.Players[0].Hand.Count())
}

func (s *ControllerSuite) TestPlaceCardRejectsOccupiedPosition() {
	g := s.newGame()
	pos := model.Position{Row: 0, Col: 0}
	s.Require().NoError(s.controller.PlaceCard(s.ctx, g.ID, 42, pos))

	err := s.controller.PlaceCard(s.ctx, g.ID, 40, pos)
	s.ErrorIs(err, model.ErrPositionOccupied)
}

func (s *ControllerSuite) TestPlaceCardRejectsInvalidPosition() {
	g := s.newGame()
	err := s.controller.PlaceCard(s.ctx, g.ID, 42, model.Position{Row: 3, Col: 0})
	s.ErrorIs(err, model.ErrInvalidPosition)
}

func (s *ControllerSuite) TestPlaceCardRejectsCardNotInHand() {
	g := s.newGame()
	// Card 41 is in the opponent's hand
	err := s.controller.PlaceCard(s.ctx, g.ID, 41, model.Position{Row: 0, Col: 0})
	s.ErrorIs(err, model.ErrCardNotFound)
}

func (s *ControllerSuite) TestPlaceCardRejectsFinishedGame() {
	g := s.newGame()
	g.State = model.GameStateFinished
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))

	err := s.controller.PlaceCard(s.ctx, g.ID, 42, model.Position{Row: 0, Col: 0})
	s.ErrorIs(err, model.ErrGameFinished)
}

// DiscardFromBoard

func (s *ControllerSuite) TestDiscardFromBoardSucceeds() {
	g := s.newGame()
	pos := model.Position{Row: 2, Col: 2}
	s.Require().NoError(s.controller.PlaceCard(s.ctx, g.ID, 42, pos))

	err := s.controller.DiscardFromBoard(s.ctx, g.ID, pos)
	s.Require().NoError(err)

	updated := s.getGame(g.ID)
	s.True(updated.Board.IsEmpty(pos))
	s.Equal(1, updated.DiscardCount)
}

func (s *ControllerSuite) TestDiscardFromBoardEmptyCellIsNoOp() {
	g := s.newGame()

	err := s.controller.DiscardFromBoard(s.ctx, g.ID, model.Position{Row: 2, Col: 2})
	s.Require().NoError(err)

	s.Equal(0, s.getGame(g.ID).DiscardCount)
}

// DiscardFromHand

func (s *ControllerSuite) TestDiscardFromHandSucceeds() {
	g := s.newGame()

	err := s.controller.DiscardFromHand(s.ctx, g.ID, 42)
	s.Require().NoError(err)

	updated := s.getGame(g.ID)
	s.Equal(7, updated.Players[0].Hand.Count())
	s.Equal(1, updated.DiscardCount)
}

func (s *ControllerSuite) TestDiscardFromHandRejectsMissingCard() {
	g := s.newGame()
	err := s.controller.DiscardFromHand(s.ctx, g.ID, 41)
	s.ErrorIs(err, model.ErrCardNotFound)
}

// DrawAndPlace

func (s *ControllerSuite) TestDrawAndPlaceSucceeds() {
	g := s.newGame()
	pos := model.Position{Row: 1, Col: 2}

	card, err := s.controller.DrawAndPlace(s.ctx, g.ID, pos)
	s.Require().NoError(err)
	s.Equal(model.CardID(26), card.ID)

	updated := s.getGame(g.ID)
	s.Equal(25, updated.Deck.Count())
	s.Equal(card.ID, updated.Board.CardAt(pos).ID)
	s.Require().NotNil(updated.LastPlaced)
	s.Equal(pos, *updated.LastPlaced)
}

func (s *ControllerSuite) TestDrawAndPlaceRejectsOccupiedPosition() {
	g := s.newGame()
	pos := model.Position{Row: 1, Col: 2}
	s.Require().NoError(s.controller.PlaceCard(s.ctx, g.ID, 42, pos))

	_, err := s.controller.DrawAndPlace(s.ctx, g.ID, pos)
	s.ErrorIs(err, model.ErrPositionOccupied)
}

func (s *ControllerSuite) TestDrawAndPlaceRejectsEmptyDeck() {
	g := s.newGame()
	g.Deck.Cards = nil
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))

	_, err := s.controller.DrawAndPlace(s.ctx, g.ID, model.Position{Row: 0, Col: 0})
	s.ErrorIs(err, model.ErrDeckEmpty)
}

// ClaimCombo

// placeTripleMatch puts player1's three blue nines (IDs 34, 32, 30) on the
// top row and returns the claim describing them.
func (s *ControllerSuite) placeTripleMatch(g *model.Game) model.Combo {
	cards := []model.Card{
		{ID: 34, Value: model.ValueNine, Color: model.ColorBlue},
		{ID: 32, Value: model.ValueNine, Color: model.ColorBlue},
		{ID: 30, Value: model.ValueNine, Color: model.ColorBlue},
	}
	positions := []model.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	}
	for i, c := range cards {
		s.Require().NoError(s.controller.PlaceCard(s.ctx, g.ID, c.ID, positions[i]))
	}
	claim, err := model.NewCombo(model.ComboTripleMatch, cards, positions)
	s.Require().NoError(err)
	return claim
}

func (s *ControllerSuite) TestClaimComboAwardsStarsAndDraws() {
	g := s.newGame()
	claim := s.placeTripleMatch(g)

	applied, err := s.controller.ClaimCombo(s.ctx, g.ID, claim)
	s.Require().NoError(err)
	s.True(applied)

	updated := s.getGame(g.ID)
	s.Equal(1, updated.Players[0].Stars)
	s.Equal(model.InitialStarPool-1, updated.StarPool)
	// 8 dealt - 3 placed + 1 drawn
	s.Equal(6, updated.Players[0].Hand.Count())
	s.Equal(25, updated.Deck.Count())
	s.Equal(3, updated.DiscardCount)
	for _, pos := range claim.Positions {
		s.True(updated.Board.IsEmpty(pos))
	}
}

func (s *ControllerSuite) TestClaimComboIgnoresMislabeledType() {
	g := s.newGame()
	claim := s.placeTripleMatch(g)
	// A triple of nines declared as a three-cards combo must still pay
	// triple-match rewards.
	claim.Type = model.ComboThreeCards

	applied, err := s.controller.ClaimCombo(s.ctx, g.ID, claim)
	s.Require().NoError(err)
	s.True(applied)

	updated := s.getGame(g.ID)
	s.Equal(model.TripleMatchStars, updated.Players[0].Stars)
	s.Equal(model.InitialStarPool-model.TripleMatchStars, updated.StarPool)
	s.Equal(6, updated.Players[0].Hand.Count())
	s.Equal(25, updated.Deck.Count())
}

func (s *ControllerSuite) TestClaimComboReplayIsNoOp() {
	g := s.newGame()
	claim := s.placeTripleMatch(g)
	_, err := s.controller.ClaimCombo(s.ctx, g.ID, claim)
	s.Require().NoError(err)

	applied, err := s.controller.ClaimCombo(s.ctx, g.ID, claim)
	s.Require().NoError(err)
	s.True(applied)

	updated := s.getGame(g.ID)
	s.Equal(1, updated.Players[0].Stars)
	s.Equal(6, updated.Players[0].Hand.Count())
}

func (s *ControllerSuite) TestClaimComboRejectsInvalidClaim() {
	g := s.newGame()
	// Non-adjacent positions for cards that are actually there
	cards := []model.Card{
		{ID: 34, Value: model.ValueNine, Color: model.ColorBlue},
		{ID: 32, Value: model.ValueNine, Color: model.ColorBlue},
		{ID: 30, Value: model.ValueNine, Color: model.ColorBlue},
	}
	positions := []model.Position{
		{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2},
	}
	for i, c := range cards {
		s.Require().NoError(s.controller.PlaceCard(s.ctx, g.ID, c.ID, positions[i]))
	}
	claim := model.Combo{Type: model.ComboTripleMatch, Cards: cards, Positions: positions}

	_, err := s.controller.ClaimCombo(s.ctx, g.ID, claim)
	s.ErrorIs(err, model.ErrInvalidCombo)
}

func (s *ControllerSuite) TestClaimComboStopsDrawingWhenDeckRunsOut() {
	g := s.newGame()
	claim := s.placeTripleMatch(g)

	// Leave a single card in the deck
	g = s.getGame(g.ID)
	g.Deck.Cards = g.Deck.Cards[len(g.Deck.Cards)-1:]
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))

	applied, err := s.controller.ClaimCombo(s.ctx, g.ID, claim)
	s.Require().NoError(err)
	s.True(applied)

	updated := s.getGame(g.ID)
	s.Equal(6, updated.Players[0].Hand.Count())
	s.Equal(0, updated.Deck.Count())
}

func (s *ControllerSuite) TestClaimComboClampsStarsToPool() {
	g := s.newGame()
	claim := s.placeTripleMatch(g)

	g = s.getGame(g.ID)
	g.StarPool = 0
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))

	applied, err := s.controller.ClaimCombo(s.ctx, g.ID, claim)
	s.Require().NoError(err)
	s.True(applied)

	updated := s.getGame(g.ID)
	s.Equal(0, updated.Players[0].Stars)
	s.Equal(0, updated.StarPool)
}

func (s *ControllerSuite) TestClaimComboOnFinishedGameIsNoOp() {
	g := s.newGame()
	claim := s.placeTripleMatch(g)
	g = s.getGame(g.ID)
	g.State = model.GameStateFinished
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))

	applied, err := s.controller.ClaimCombo(s.ctx, g.ID, claim)
	s.Require().NoError(err)
	s.False(applied)
}

// EndTurn

func (s *ControllerSuite) TestEndTurnFlipsCurrentPlayer() {
	g := s.newGame()

	err := s.controller.EndTurn(s.ctx, g.ID, -1)
	s.Require().NoError(err)

	updated := s.getGame(g.ID)
	s.Equal(1, updated.CurrentPlayer)
	s.Equal(1, updated.Turn)
	s.Equal(model.GameStatePlaying, updated.State)
}

func (s *ControllerSuite) TestEndTurnStaleGuardIsNoOp() {
	g := s.newGame()
	s.Require().NoError(s.controller.EndTurn(s.ctx, g.ID, 0))

	// Replayed with the old turn counter
	err := s.controller.EndTurn(s.ctx, g.ID, 0)
	s.Require().NoError(err)

	updated := s.getGame(g.ID)
	s.Equal(1, updated.Turn)
	s.Equal(1, updated.CurrentPlayer)
}

func (s *ControllerSuite) TestEndTurnFinishesWhenStarPoolExhausted() {
	g := s.newGame()
	g.StarPool = 0
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))

	s.Require().NoError(s.controller.EndTurn(s.ctx, g.ID, -1))

	updated := s.getGame(g.ID)
	s.Equal(model.GameStateFinished, updated.State)
}

func (s *ControllerSuite) TestEndTurnFinishesWhenDeckEmpty() {
	g := s.newGame()
	g.Deck.Cards = nil
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))

	s.Require().NoError(s.controller.EndTurn(s.ctx, g.ID, -1))

	s.Equal(model.GameStateFinished, s.getGame(g.ID).State)
}

func (s *ControllerSuite) TestEndTurnAutoDrawsForEmptyHand() {
	g := s.newGame()
	g.Players[1].Hand = model.Hand{}
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))

	s.Require().NoError(s.controller.EndTurn(s.ctx, g.ID, -1))

	updated := s.getGame(g.ID)
	s.Equal(1, updated.Players[1].Hand.Count())
	s.Equal(model.SeatPlayerTwo, updated.LastAutoDrawn)
	s.Equal(25, updated.Deck.Count())
}

func (s *ControllerSuite) TestClearAutoDraw() {
	g := s.newGame()
	g.Players[1].Hand = model.Hand{}
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))
	s.Require().NoError(s.controller.EndTurn(s.ctx, g.ID, -1))

	s.Require().NoError(s.controller.ClearAutoDraw(s.ctx, g.ID))

	s.Empty(s.getGame(g.ID).LastAutoDrawn)
}

func (s *ControllerSuite) TestEndTurnRejectsFinishedGame() {
	g := s.newGame()
	g.State = model.GameStateFinished
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))

	err := s.controller.EndTurn(s.ctx, g.ID, -1)
	s.ErrorIs(err, model.ErrGameFinished)
}

// Winner

func (s *ControllerSuite) TestWinnerOfFinishedGame() {
	g := s.newGame()
	g.State = model.GameStateFinished
	g.Players[0].Stars = 5
	g.Players[1].Stars = 3
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))

	winner, err := s.controller.Winner(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Require().NotNil(winner)
	s.Equal(model.SeatPlayerOne, winner.ID)
}

func (s *ControllerSuite) TestWinnerTieReturnsNil() {
	g := s.newGame()
	g.State = model.GameStateFinished
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))

	winner, err := s.controller.Winner(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Nil(winner)
}

func (s *ControllerSuite) TestWinnerOfUnfinishedGame() {
	g := s.newGame()
	_, err := s.controller.Winner(s.ctx, g.ID)
	s.ErrorIs(err, model.ErrGameNotFinished)
}

// Snapshot / Restore

func (s *ControllerSuite) TestSnapshotRestoreRoundTrip() {
	g := s.newGame()
	s.Require().NoError(s.controller.PlaceCard(s.ctx, g.ID, 42, model.Position{Row: 1, Col: 1}))
	s.Require().NoError(s.controller.EndTurn(s.ctx, g.ID, -1))

	snap, err := s.controller.Snapshot(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(26, snap.DeckCount)

	restored, err := s.controller.Restore(s.ctx, "restored-game", snap)
	s.Require().NoError(err)

	original := s.getGame(g.ID)
	s.Equal(model.GameID("restored-game"), restored.ID)
	s.Equal(original.State, restored.State)
	s.Equal(original.CurrentPlayer, restored.CurrentPlayer)
	s.Equal(original.Turn, restored.Turn)
	s.Equal(original.StarPool, restored.StarPool)
	s.Equal(26, restored.Deck.Count())
	s.Equal(model.CardID(42), restored.Board.CardAt(model.Position{Row: 1, Col: 1}).ID)
	s.Equal(original.Players[0].Hand.Count(), restored.Players[0].Hand.Count())
}

func (s *ControllerSuite) TestRestoreAssignsIDWhenEmpty() {
	g := s.newGame()
	snap, err := s.controller.Snapshot(s.ctx, g.ID)
	s.Require().NoError(err)

	restored, err := s.controller.Restore(s.ctx, "", snap)
	s.Require().NoError(err)
	s.NotEmpty(restored.ID)
	s.NotEqual(g.ID, restored.ID)
}

func (s *ControllerSuite) TestRestoreRejectsInvalidSnapshot() {
	g := s.newGame()
	snap, err := s.controller.Snapshot(s.ctx, g.ID)
	s.Require().NoError(err)
	snap.CurrentPlayer = 7

	_, err = s.controller.Restore(s.ctx, "bad", snap)
	s.ErrorIs(err, model.ErrInvalidSnapshot)
}
