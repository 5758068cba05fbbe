package playoffs

import (
	"github.com/KirkDiggler/fastbreak/internal/common/uuid"
	"github.com/KirkDiggler/fastbreak/internal/models"
)

// playoffTeamsPerConference is how many seeds reach the postseason,
// play-in included
const playoffTeamsPerConference = 10

// Config holds configuration for the playoffs service
type Config struct {
	// Service dependencies
	UUIDGenerator uuid.UUID
}

// SeedEntry is one team's place in the conference standings
type SeedEntry struct {
	// TeamID is the seeded team
	TeamID string

	// Seed is the dense rank within the conference, starting at 1
	Seed int

	// Wins is the team's regular-season win count
	Wins int

	// Losses is the team's regular-season loss count
	Losses int

	// WinPct is the team's winning percentage
	WinPct float64
}

// CalculateSeedingInput contains parameters for seeding calculation
type CalculateSeedingInput struct {
	// Teams is every team in the league
	Teams []*models.Team

	// Games is the season's games; unplayed and playoff games are
	// ignored
	Games []*models.Game
}

// CalculateSeedingOutput contains per-conference seed lists
type CalculateSeedingOutput struct {
	// Seeds maps conference to its seed list, ordered by seed
	Seeds map[models.Conference][]*SeedEntry
}

// GenerateBracketInput contains parameters for building a bracket
type GenerateBracketInput struct {
	// SeasonID tags the bracket
	SeasonID string

	// Seeds is the per-conference seeding, typically the output of
	// CalculateSeeding
	Seeds map[models.Conference][]*SeedEntry
}

// GenerateBracketOutput contains the new bracket
type GenerateBracketOutput struct {
	// Bracket starts in the play-in round with four games
	Bracket *models.PlayoffBracket
}

// RecordSeriesResultInput contains parameters for recording a game
type RecordSeriesResultInput struct {
	// Bracket is the snapshot to fold the result into
	Bracket *models.PlayoffBracket

	// Game is a played playoff game carrying its SeriesID
	Game *models.Game
}

// RecordSeriesResultOutput contains the updated snapshot
type RecordSeriesResultOutput struct {
	// Bracket is the new snapshot
	Bracket *models.PlayoffBracket

	// Series is the updated series within the new snapshot
	Series *models.PlayoffSeries
}

// AdvanceRoundInput contains parameters for advancing the bracket
type AdvanceRoundInput struct {
	// Bracket is the snapshot to advance
	Bracket *models.PlayoffBracket
}

// AdvanceRoundOutput contains the advanced snapshot
type AdvanceRoundOutput struct {
	// Bracket has CurrentRound moved forward and the next round's
	// series populated
	Bracket *models.PlayoffBracket
}
