package bracket

import "github.com/KirkDiggler/fastbreak/internal/models"

type SaveBracketInput struct {
	Bracket *models.PlayoffBracket
}

type GetBracketInput struct {
	SeasonID string
}

type DeleteBracketInput struct {
	SeasonID string
}
