package game

import "github.com/KirkDiggler/fastbreak/internal/models"

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type GetSeasonGamesInput struct {
	SeasonID string
}

type GetSeasonGamesOutput struct {
	Games []*models.Game
}

type DeleteGameInput struct {
	GameID string
}
