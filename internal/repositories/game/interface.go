package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/fastbreak/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/fastbreak/internal/models"
)

// Repository defines the interface for game data persistence
type Repository interface {
	// SaveGame persists a game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetSeasonGames retrieves every game recorded for a season
	GetSeasonGames(ctx context.Context, input *GetSeasonGamesInput) (*GetSeasonGamesOutput, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}
