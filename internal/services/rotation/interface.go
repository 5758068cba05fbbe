package rotation

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/fastbreak/internal/services/rotation Service

// Service defines the interface for rotation planning. Both
// operations are pure functions of their inputs.
type Service interface {
	// ValidateRotation checks a rotation config against a roster and
	// returns every violation found
	ValidateRotation(input *ValidateRotationInput) *ValidateRotationOutput

	// GeneratePreset builds a legal rotation of the requested size
	// from a ranked roster
	GeneratePreset(input *GeneratePresetInput) (*GeneratePresetOutput, error)
}
