package season

import (
	"github.com/KirkDiggler/fastbreak/internal/common/clock"
	"github.com/KirkDiggler/fastbreak/internal/common/uuid"
	"github.com/KirkDiggler/fastbreak/internal/models"
	bracketRepo "github.com/KirkDiggler/fastbreak/internal/repositories/bracket"
	gameRepo "github.com/KirkDiggler/fastbreak/internal/repositories/game"
	"github.com/KirkDiggler/fastbreak/internal/services/playoffs"
	"github.com/KirkDiggler/fastbreak/internal/services/simulation"
)

// GamesPerTeam is the regular-season slate length
const GamesPerTeam = 82

// Config holds configuration for the season service
type Config struct {
	// Repository dependencies
	GameRepo    gameRepo.Repository
	BracketRepo bracketRepo.Repository

	// Service dependencies
	Simulation simulation.Service
	Playoffs   playoffs.Service

	// Modifiers supplies coaching/playbook multipliers per team.
	// Optional; nil means unmodified simulation.
	Modifiers simulation.ModifierProvider

	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// GenerateScheduleInput contains parameters for schedule generation
type GenerateScheduleInput struct {
	// SeasonID tags every scheduled game
	SeasonID string

	// Teams is the full league
	Teams []*models.Team
}

// GenerateScheduleOutput contains the unplayed slate
type GenerateScheduleOutput struct {
	// Games is the schedule in play order
	Games []*models.Game
}

// PlayRegularSeasonInput contains parameters for season simulation
type PlayRegularSeasonInput struct {
	// SeasonID tags the season
	SeasonID string

	// Teams is the full league
	Teams []*models.Team

	// Games is the slate to play. Nil generates a fresh schedule.
	Games []*models.Game
}

// PlayRegularSeasonOutput contains the played season
type PlayRegularSeasonOutput struct {
	// Games is every game, now played, in schedule order
	Games []*models.Game
}

// RunPlayoffsInput contains parameters for postseason simulation
type RunPlayoffsInput struct {
	// SeasonID tags the bracket
	SeasonID string

	// Teams is the full league
	Teams []*models.Team

	// Games is the completed regular season used for seeding
	Games []*models.Game

	// UserTeamID marks the human-controlled team. Its series are
	// left for manual play; everything else simulates around them.
	// Empty simulates the entire bracket.
	UserTeamID string
}

// RunPlayoffsOutput contains the final bracket state
type RunPlayoffsOutput struct {
	// Bracket is the latest snapshot
	Bracket *models.PlayoffBracket

	// AwaitingUserSeries is true when progression stopped because
	// the user's series still needs games played
	AwaitingUserSeries bool
}
