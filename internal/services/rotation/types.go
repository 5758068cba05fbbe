package rotation

import "github.com/KirkDiggler/fastbreak/internal/models"

// ViolationCode identifies a class of rotation config violation
type ViolationCode string

const (
	// ViolationPlayerNotOnRoster flags a depth chart or minute entry
	// for a player the roster does not contain
	ViolationPlayerNotOnRoster ViolationCode = "player_not_on_roster"

	// ViolationPositionUncovered flags a position with no depth
	// chart entry
	ViolationPositionUncovered ViolationCode = "position_uncovered"

	// ViolationPositionMinutes flags a position whose minutes do not
	// sum to exactly 48
	ViolationPositionMinutes ViolationCode = "position_minutes"

	// ViolationTotalMinutes flags a plan whose minutes do not sum to
	// exactly 240
	ViolationTotalMinutes ViolationCode = "total_minutes"

	// ViolationRotationSize flags a mismatch between RotationSize
	// and the number of players actually in the plan
	ViolationRotationSize ViolationCode = "rotation_size"

	// ViolationBadDepth flags a depth chart entry with depth < 1 or
	// a duplicate depth at a position
	ViolationBadDepth ViolationCode = "bad_depth"

	// ViolationMissingMinutes flags a depth chart player with no
	// minute allocation
	ViolationMissingMinutes ViolationCode = "missing_minutes"
)

// Violation describes one way a rotation config is illegal
type Violation struct {
	// Code classifies the violation
	Code ViolationCode

	// Message is a human-readable description
	Message string

	// PlayerID is set when the violation concerns a specific player
	PlayerID string

	// Position is set when the violation concerns a position
	Position models.Position
}

// ValidateRotationInput contains parameters for validating a rotation
type ValidateRotationInput struct {
	// Config is the rotation plan to check
	Config *models.RotationConfig

	// Roster is the team roster the plan must draw from
	Roster []*models.Player
}

// ValidateRotationOutput contains the result of validation
type ValidateRotationOutput struct {
	// Violations lists every problem found; empty means valid
	Violations []Violation
}

// Valid is true when no violations were found
func (o *ValidateRotationOutput) Valid() bool {
	return len(o.Violations) == 0
}

// GeneratePresetInput contains parameters for generating a preset
type GeneratePresetInput struct {
	// Size is the requested rotation size: 6, 8, 9, or 10
	Size int

	// Roster is the team roster to draw from
	Roster []*models.Player

	// StartingLineup holds the five starters in position order
	StartingLineup [5]string
}

// GeneratePresetOutput contains the generated rotation
type GeneratePresetOutput struct {
	// Config is a valid rotation plan of the requested size
	Config *models.RotationConfig
}
