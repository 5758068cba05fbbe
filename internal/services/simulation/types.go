package simulation

import (
	"github.com/KirkDiggler/fastbreak/internal/common/clock"
	"github.com/KirkDiggler/fastbreak/internal/common/uuid"
	"github.com/KirkDiggler/fastbreak/internal/config"
	"github.com/KirkDiggler/fastbreak/internal/dice"
	"github.com/KirkDiggler/fastbreak/internal/models"
	"github.com/KirkDiggler/fastbreak/internal/services/rotation"
)

// Named modifier keys a ModifierProvider may supply
const (
	// ModifierShooting scales make probabilities
	ModifierShooting = "shooting"

	// ModifierPace scales possession length (higher is faster)
	ModifierPace = "pace"

	// ModifierRebounding scales offensive rebound chances
	ModifierRebounding = "rebounding"

	// ModifierDefense scales the opponent's make probabilities down
	ModifierDefense = "defense"

	// ModifierTurnover scales turnover chances
	ModifierTurnover = "turnover"
)

// Config holds configuration for the simulation service
type Config struct {
	// Coefficients tune every probability in the simulator. Nil
	// falls back to config.Default().
	Coefficients *config.Coefficients

	// Service dependencies
	Rotation      rotation.Service
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// SimulateGameInput contains parameters for simulating one game
type SimulateGameInput struct {
	// SeasonID tags the resulting game record
	SeasonID string

	// HomeTeam is the home side, roster and optional rotation plan
	HomeTeam *models.Team

	// AwayTeam is the visiting side
	AwayTeam *models.Team

	// HomeModifiers are coaching/playbook multipliers for the home
	// side; nil means no adjustments
	HomeModifiers map[string]float64

	// AwayModifiers are multipliers for the away side
	AwayModifiers map[string]float64

	// IsPlayoffGame tags postseason games and raises experience
	IsPlayoffGame bool

	// SeriesID links the game to a playoff series, empty otherwise
	SeriesID string
}

// SimulateGameOutput contains the simulated game
type SimulateGameOutput struct {
	// Game carries the final score and full box score
	Game *models.Game
}
