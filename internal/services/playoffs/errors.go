package playoffs

// PlayoffError is a custom error type for playoff-related errors
type PlayoffError string

// Error implements the error interface
func (e PlayoffError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         PlayoffError = "config cannot be nil"
	ErrNilUUIDGenerator  PlayoffError = "UUID generator cannot be nil"
	ErrNilInput          PlayoffError = "input cannot be nil"
	ErrNilBracket        PlayoffError = "bracket cannot be nil"
	ErrGameNotPlayed     PlayoffError = "game has no result"
	ErrSeriesNotFound    PlayoffError = "series not found in bracket"
	ErrRoundNotComplete  PlayoffError = "current round is not complete"
	ErrBracketComplete   PlayoffError = "bracket is already complete"
	ErrIncompleteSeeding PlayoffError = "conference is missing a required seed"
	ErrUnknownConference PlayoffError = "team has no seed assignment"
)
