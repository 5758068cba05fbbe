package team

import "github.com/KirkDiggler/fastbreak/internal/models"

type SaveTeamInput struct {
	Team *models.Team
}

type GetTeamInput struct {
	TeamID string
}

type ListTeamsInput struct{}

type ListTeamsOutput struct {
	Teams []*models.Team
}

type DeleteTeamInput struct {
	TeamID string
}
