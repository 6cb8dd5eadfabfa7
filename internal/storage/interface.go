package storage

import (
	"context"

	"github.com/stargrid/stargrid-go/internal/model"
)

// Storage defines the interface for game state persistence between commands
type Storage interface {
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
}
