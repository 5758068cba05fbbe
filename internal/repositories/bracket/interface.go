package bracket

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/fastbreak/internal/repositories/bracket Repository

import (
	"context"

	"github.com/KirkDiggler/fastbreak/internal/models"
)

// Repository defines the interface for bracket snapshot persistence.
// A season has at most one bracket; saving replaces the snapshot.
type Repository interface {
	// SaveBracket persists the bracket snapshot for its season
	SaveBracket(ctx context.Context, input *SaveBracketInput) error

	// GetBracket retrieves a season's bracket
	GetBracket(ctx context.Context, input *GetBracketInput) (*models.PlayoffBracket, error)

	// DeleteBracket removes a season's bracket
	DeleteBracket(ctx context.Context, input *DeleteBracketInput) error
}
