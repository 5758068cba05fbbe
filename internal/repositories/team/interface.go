package team

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/fastbreak/internal/repositories/team Repository

import (
	"context"

	"github.com/KirkDiggler/fastbreak/internal/models"
)

// Repository defines the interface for team data persistence
type Repository interface {
	// SaveTeam persists a team, roster and rotation plan included
	SaveTeam(ctx context.Context, input *SaveTeamInput) error

	// GetTeam retrieves a team by ID
	GetTeam(ctx context.Context, input *GetTeamInput) (*models.Team, error)

	// ListTeams retrieves every saved team
	ListTeams(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error)

	// DeleteTeam removes a team
	DeleteTeam(ctx context.Context, input *DeleteTeamInput) error
}
