package playoffs

import "github.com/KirkDiggler/fastbreak/internal/models"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/fastbreak/internal/services/playoffs Service

// Service defines the interface for seeding and bracket progression.
// Every operation is a pure transformation: brackets are cloned, not
// mutated, so callers can simulate, compare, and commit snapshots.
type Service interface {
	// CalculateSeeding derives dense 1..N per-conference seeds from
	// completed regular-season games. Calling it before the season
	// is fully played is a caller error it does not detect.
	CalculateSeeding(input *CalculateSeedingInput) (*CalculateSeedingOutput, error)

	// GenerateBracket builds the play-in games from seeding
	GenerateBracket(input *GenerateBracketInput) (*GenerateBracketOutput, error)

	// RecordSeriesResult folds a decided game into its series and
	// returns the updated bracket snapshot
	RecordSeriesResult(input *RecordSeriesResultInput) (*RecordSeriesResultOutput, error)

	// IsRoundComplete reports whether every series in the current
	// round is complete
	IsRoundComplete(bracket *models.PlayoffBracket) bool

	// AdvanceRound moves a completed round forward, populating the
	// next round's series. It refuses if the round is not complete.
	AdvanceRound(input *AdvanceRoundInput) (*AdvanceRoundOutput, error)
}
