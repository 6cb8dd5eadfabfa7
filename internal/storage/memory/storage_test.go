package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stargrid/stargrid-go/internal/model"
)

func testGame(id model.GameID) *model.Game {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &model.Game{
		ID:        id,
		Board:     model.NewBoard(),
		Deck:      model.NewStandardDeck(model.NewCardSequence()),
		State:     model.GameStatePlaying,
		Players:   [2]*model.Player{model.NewPlayer(model.SeatPlayerOne, ""), model.NewPlayer(model.SeatPlayerTwo, model.DifficultyNormal)},
		StarPool:  model.InitialStarPool,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSaveAndGetGame(t *testing.T) {
	storage := New()
	ctx := context.Background()
	game := testGame("game-1")

	require.NoError(t, storage.SaveGame(ctx, game))

	retrieved, err := storage.GetGame(ctx, "game-1")
	require.NoError(t, err)
	assert.Equal(t, game.ID, retrieved.ID)
	assert.Equal(t, model.GameStatePlaying, retrieved.State)
}

func TestGetGameNotFound(t *testing.T) {
	storage := New()
	_, err := storage.GetGame(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, model.ErrGameNotFound)
}

func TestSaveGameOverwrites(t *testing.T) {
	storage := New()
	ctx := context.Background()
	game := testGame("game-1")
	require.NoError(t, storage.SaveGame(ctx, game))

	game.Turn = 5
	require.NoError(t, storage.SaveGame(ctx, game))

	retrieved, err := storage.GetGame(ctx, "game-1")
	require.NoError(t, err)
	assert.Equal(t, 5, retrieved.Turn)
}

func TestDeleteGame(t *testing.T) {
	storage := New()
	ctx := context.Background()
	require.NoError(t, storage.SaveGame(ctx, testGame("game-1")))

	require.NoError(t, storage.DeleteGame(ctx, "game-1"))

	_, err := storage.GetGame(ctx, "game-1")
	assert.ErrorIs(t, err, model.ErrGameNotFound)
}

func TestDeleteGameMissingIsNoOp(t *testing.T) {
	storage := New()
	assert.NoError(t, storage.DeleteGame(context.Background(), "nonexistent"))
}
