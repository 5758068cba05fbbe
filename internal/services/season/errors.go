package season

// SeasonError is a custom error type for season-related errors
type SeasonError string

// Error implements the error interface
func (e SeasonError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        SeasonError = "config cannot be nil"
	ErrNilGameRepo      SeasonError = "game repository cannot be nil"
	ErrNilBracketRepo   SeasonError = "bracket repository cannot be nil"
	ErrNilSimulation    SeasonError = "simulation service cannot be nil"
	ErrNilPlayoffs      SeasonError = "playoffs service cannot be nil"
	ErrNilClock         SeasonError = "clock cannot be nil"
	ErrNilUUIDGenerator SeasonError = "UUID generator cannot be nil"
	ErrNilInput         SeasonError = "input cannot be nil"
	ErrNoTeams          SeasonError = "at least two teams are required"
	ErrUnknownTeam      SeasonError = "game references a team not in the league"
)
