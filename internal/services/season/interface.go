package season

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/fastbreak/internal/services/season Service

// Service drives a season around the engine: scheduling, simulating
// the 82-game regular season, and running the postseason bracket.
type Service interface {
	// GenerateSchedule builds the regular-season slate for a league
	GenerateSchedule(ctx context.Context, input *GenerateScheduleInput) (*GenerateScheduleOutput, error)

	// PlayRegularSeason simulates every unplayed scheduled game and
	// persists the results
	PlayRegularSeason(ctx context.Context, input *PlayRegularSeasonInput) (*PlayRegularSeasonOutput, error)

	// RunPlayoffs seeds the bracket and simulates it forward. Series
	// involving the user's team are never simulated or advanced past.
	RunPlayoffs(ctx context.Context, input *RunPlayoffsInput) (*RunPlayoffsOutput, error)
}
