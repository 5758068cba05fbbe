package simulation

// SimulationError is a custom error type for simulation-related errors
type SimulationError string

// Error implements the error interface
func (e SimulationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        SimulationError = "config cannot be nil"
	ErrNilRotation      SimulationError = "rotation service cannot be nil"
	ErrNilDiceRoller    SimulationError = "dice roller cannot be nil"
	ErrNilClock         SimulationError = "clock cannot be nil"
	ErrNilUUIDGenerator SimulationError = "UUID generator cannot be nil"
	ErrNilInput         SimulationError = "input cannot be nil"
	ErrMissingTeam      SimulationError = "both teams are required"
	ErrInvalidRotation  SimulationError = "rotation config is invalid"
	ErrMissingLineup    SimulationError = "starting lineup references a player not on the roster"
)
