package game

import (
	"context"
	"log/slog"

	"github.com/stargrid/stargrid-go/internal/dependencies/clock"
	"github.com/stargrid/stargrid-go/internal/dependencies/random"
	"github.com/stargrid/stargrid-go/internal/model"
	"github.com/stargrid/stargrid-go/internal/services/combo"
	"github.com/stargrid/stargrid-go/internal/storage"
)

// Controller manages the game state machine and turn flow. All mutating
// operations follow the same shape: load, validate before any mutation,
// mutate, save. Replayed commands are detected and skipped rather than
// double-applied.
type Controller struct {
	storage      storage.Storage
	comboService *combo.Service
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

const (
	gameIDLength   = 12
	gameIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	comboService *combo.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		comboService: comboService,
		clock:        clock,
		random:       random,
		logger:       logger.With(slog.String("component", "game-controller")),
	}
}

// CreateGame initializes a fresh game: shuffled deck, 8 cards dealt to each
// player, full star pool. An empty difficulty makes player2 human-controlled
// (remote play); otherwise player2 is the CPU opponent.
func (c *Controller) CreateGame(ctx context.Context, difficulty model.Difficulty, playerGoesFirst bool) (*model.Game, error) {
	if difficulty != "" && !difficulty.Valid() {
		return nil, model.ErrInvalidDifficulty
	}

	deck := model.NewStandardDeck(model.NewCardSequence())
	c.random.Shuffle(len(deck.Cards), deck.Swap)

	players := [2]*model.Player{
		model.NewPlayer(model.SeatPlayerOne, ""),
		model.NewPlayer(model.SeatPlayerTwo, difficulty),
	}
	for i := 0; i < model.InitialHandSize; i++ {
		for _, p := range players {
			p.DrawToHand(*deck.Draw())
		}
	}

	current := 0
	if !playerGoesFirst {
		current = 1
	}

	now := c.clock.Now()
	g := &model.Game{
		ID:            model.GameID(c.random.String(gameIDLength, gameIDAlphabet)),
		Board:         model.NewBoard(),
		Deck:          deck,
		State:         model.GameStatePlaying,
		Players:       players,
		CurrentPlayer: current,
		StarPool:      model.InitialStarPool,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(g.ID)),
		slog.String("difficulty", string(difficulty)),
		slog.Bool("player_goes_first", playerGoesFirst),
	)

	return g, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// PlaceCard moves a card from the current player's hand onto the board and
// records the position as last-placed. A replay whose card is already at the
// target position is a no-op.
func (c *Controller) PlaceCard(ctx context.Context, gameID model.GameID, cardID model.CardID, pos model.Position) error {
	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if g.IsFinished() {
		return model.ErrGameFinished
	}
	if !pos.Valid() {
		return model.ErrInvalidPosition
	}

	held := g.Current().Hand.Find(cardID)
	if held == nil {
		if placed := g.Board.CardAt(pos); placed != nil && placed.ID == cardID {
			return nil // already applied
		}
		return model.ErrCardNotFound
	}
	if !g.Board.IsEmpty(pos) {
		return model.ErrPositionOccupied
	}

	played, err := g.Current().PlayCard(*held)
	if err != nil {
		return err
	}
	if err := g.Board.Place(*played, pos); err != nil {
		return err
	}
	g.LastPlaced = &pos
	g.UpdatedAt = c.clock.Now()

	return c.storage.SaveGame(ctx, g)
}

// DiscardFromBoard removes the card at a position from play. An empty cell
// is a no-op so the command is safe to replay.
func (c *Controller) DiscardFromBoard(ctx context.Context, gameID model.GameID, pos model.Position) error {
	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if g.IsFinished() {
		return model.ErrGameFinished
	}
	if !pos.Valid() {
		return model.ErrInvalidPosition
	}

	if removed := g.Board.Remove(pos); removed != nil {
		g.DiscardCount++
	}
	g.UpdatedAt = c.clock.Now()

	return c.storage.SaveGame(ctx, g)
}

// DiscardFromHand removes a card from the current player's hand and out of play
func (c *Controller) DiscardFromHand(ctx context.Context, gameID model.GameID, cardID model.CardID) error {
	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if g.IsFinished() {
		return model.ErrGameFinished
	}

	held := g.Current().Hand.Find(cardID)
	if held == nil {
		return model.ErrCardNotFound
	}
	if err := g.Current().Hand.Remove(*held); err != nil {
		return err
	}
	g.DiscardCount++
	g.UpdatedAt = c.clock.Now()

	return c.storage.SaveGame(ctx, g)
}

// DrawAndPlace draws the top deck card and places it at the given position,
// recording it as last-placed. The drawn card is returned.
func (c *Controller) DrawAndPlace(ctx context.Context, gameID model.GameID, pos model.Position) (*model.Card, error) {
	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g.IsFinished() {
		return nil, model.ErrGameFinished
	}
	if !pos.Valid() {
		return nil, model.ErrInvalidPosition
	}
	if !g.Board.IsEmpty(pos) {
		return nil, model.ErrPositionOccupied
	}
	if g.Deck.Peek() == nil {
		return nil, model.ErrDeckEmpty
	}

	card := g.Deck.Draw()
	if err := g.Board.Place(*card, pos); err != nil {
		return nil, err
	}
	g.LastPlaced = &pos
	g.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return nil, err
	}
	return card, nil
}

// ClaimCombo resolves a validated combo claim: the claimed cards leave the
// board for the discard pile, the current player draws replacements until
// the deck runs out, and stars are awarded clamped to the remaining pool.
// It returns false without error on a finished game, and a claim whose
// cards have already left their positions is treated as already resolved.
func (c *Controller) ClaimCombo(ctx context.Context, gameID model.GameID, claim model.Combo) (bool, error) {
	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return false, err
	}
	if g.IsFinished() {
		return false, nil
	}
	if len(claim.Cards) != len(claim.Positions) {
		return false, model.ErrComboLengthMismatch
	}

	// Replay detection: if none of the claimed cards is still at its
	// claimed position, the combo was already resolved.
	remaining := 0
	for i, pos := range claim.Positions {
		if card := g.Board.CardAt(pos); card != nil && card.Same(claim.Cards[i]) {
			remaining++
		}
	}
	if remaining == 0 {
		return true, nil
	}
	if remaining < len(claim.Positions) {
		// Partially resolved claims are stale, never re-applied
		return true, nil
	}

	comboType, ok := c.comboService.CheckCombo(claim.Cards, claim.Positions)
	if !ok {
		return false, model.ErrInvalidCombo
	}
	// Rewards follow the detector's classification, not the caller's label.
	claim.Type = comboType

	for _, pos := range claim.Positions {
		if g.Board.Remove(pos) != nil {
			g.DiscardCount++
		}
	}

	drawn := 0
	for i := 0; i < claim.DrawCount(); i++ {
		card := g.Deck.Draw()
		if card == nil {
			break // deck ran out mid-draw, stop early
		}
		g.Current().DrawToHand(*card)
		drawn++
	}

	awarded := claim.RewardStars()
	if awarded > g.StarPool {
		awarded = g.StarPool
	}
	g.Current().AddStars(awarded)
	g.StarPool -= awarded
	g.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return false, err
	}

	c.logger.Info("combo claimed",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(g.Current().ID)),
		slog.String("combo_type", string(claim.Type)),
		slog.Int("stars_awarded", awarded),
		slog.Int("cards_drawn", drawn),
		slog.Int("star_pool", g.StarPool),
	)

	return true, nil
}

// EndTurn finishes the game if the star pool or deck is exhausted, then
// hands the turn to the other player. If the game continues and the new
// current player's hand is empty, one card is auto-drawn into it and the
// player is recorded for a one-shot notification.
//
// expectedTurn guards against double-invocation: a non-negative value that
// no longer matches the game's turn counter makes the call a no-op.
func (c *Controller) EndTurn(ctx context.Context, gameID model.GameID, expectedTurn int) error {
	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if g.IsFinished() {
		return model.ErrGameFinished
	}
	if expectedTurn >= 0 && expectedTurn != g.Turn {
		return nil // turn already advanced
	}

	if g.FinishDue() {
		g.State = model.GameStateFinished
	}
	g.CurrentPlayer = 1 - g.CurrentPlayer
	g.Turn++

	if !g.IsFinished() {
		next := g.Current()
		if next.Hand.IsEmpty() && g.Deck.Peek() != nil {
			next.DrawToHand(*g.Deck.Draw())
			g.LastAutoDrawn = next.ID
		}
	}
	g.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return err
	}

	if g.IsFinished() {
		c.logger.Info("game finished",
			slog.String("game_id", string(gameID)),
			slog.Int("p1_stars", g.Players[0].Stars),
			slog.Int("p2_stars", g.Players[1].Stars),
			slog.Int("star_pool", g.StarPool),
			slog.Int("deck_remaining", g.Deck.Count()),
		)
	}

	return nil
}

// ClearAutoDraw clears the one-shot auto-draw marker once the presentation
// layer has consumed it
func (c *Controller) ClearAutoDraw(ctx context.Context, gameID model.GameID) error {
	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	g.LastAutoDrawn = ""
	g.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, g)
}

// Winner returns the higher-star player of a finished game, or nil on a tie
func (c *Controller) Winner(ctx context.Context, gameID model.GameID) (*model.Player, error) {
	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return g.Winner()
}

// Snapshot produces the session-boundary representation of a game
func (c *Controller) Snapshot(ctx context.Context, gameID model.GameID) (model.Snapshot, error) {
	g, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return g.ToSnapshot(), nil
}

// Restore rebuilds a game wholesale from a snapshot pushed by a remote
// relay, replacing any stored state under the same ID. An empty ID gets a
// fresh one.
func (c *Controller) Restore(ctx context.Context, gameID model.GameID, snap model.Snapshot) (*model.Game, error) {
	if gameID == "" {
		gameID = model.GameID(c.random.String(gameIDLength, gameIDAlphabet))
	}
	g, err := model.GameFromSnapshot(gameID, snap)
	if err != nil {
		return nil, err
	}
	now := c.clock.Now()
	g.CreatedAt = now
	g.UpdatedAt = now

	if err := c.storage.SaveGame(ctx, g); err != nil {
		return nil, err
	}

	c.logger.Info("game restored from snapshot",
		slog.String("game_id", string(gameID)),
		slog.String("state", string(g.State)),
		slog.Int("deck_count", g.Deck.Count()),
	)

	return g, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, difficulty model.Difficulty, playerGoesFirst bool) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	PlaceCard(ctx context.Context, gameID model.GameID, cardID model.CardID, pos model.Position) error
	DiscardFromBoard(ctx context.Context, gameID model.GameID, pos model.Position) error
	DiscardFromHand(ctx context.Context, gameID model.GameID, cardID model.CardID) error
	DrawAndPlace(ctx context.Context, gameID model.GameID, pos model.Position) (*model.Card, error)
	ClaimCombo(ctx context.Context, gameID model.GameID, claim model.Combo) (bool, error)
	EndTurn(ctx context.Context, gameID model.GameID, expectedTurn int) error
	ClearAutoDraw(ctx context.Context, gameID model.GameID) error
	Winner(ctx context.Context, gameID model.GameID) (*model.Player, error)
	Snapshot(ctx context.Context, gameID model.GameID) (model.Snapshot, error)
	Restore(ctx context.Context, gameID model.GameID, snap model.Snapshot) (*model.Game, error)
}

var _ ControllerInterface = (*Controller)(nil)
