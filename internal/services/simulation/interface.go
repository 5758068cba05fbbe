package simulation

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/fastbreak/internal/services/simulation Service,ModifierProvider

// Service defines the interface for game simulation
type Service interface {
	// SimulateGame plays a full game between two teams and returns
	// the final score and box score
	SimulateGame(ctx context.Context, input *SimulateGameInput) (*SimulateGameOutput, error)
}

// ModifierProvider supplies coaching and playbook multipliers for a
// team. The engine consumes the numbers; computing them belongs to
// the coaching collaborators.
type ModifierProvider interface {
	// GameModifiers returns the named multipliers for a team, keyed
	// by the Modifier* constants. Missing keys default to 1.0.
	GameModifiers(ctx context.Context, teamID string) (map[string]float64, error)
}
