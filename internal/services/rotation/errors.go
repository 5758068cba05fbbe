package rotation

// RotationError is a custom error type for rotation-related errors
type RotationError string

// Error implements the error interface
func (e RotationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUnsupportedSize  RotationError = "unsupported rotation size"
	ErrRosterTooSmall   RotationError = "roster has fewer players than the requested rotation size"
	ErrIncompleteLineup RotationError = "starting lineup is missing a player"
	ErrNilInput         RotationError = "input cannot be nil"
)
