package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.Empty(t, Default().Validate())
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	coeffs := Default()
	coeffs.PossessionSecondsMin = 0
	coeffs.TurnoverRate = 1.3
	coeffs.DifferentialWeight = -1
	coeffs.PlayoffExperienceBonus = 0.5

	violations := coeffs.Validate()
	require.Len(t, violations, 4)
	assert.Contains(t, violations, "possession_seconds_min must be >= 1")
	assert.Contains(t, violations, "turnover_rate must be in (0,1)")
	assert.Contains(t, violations, "differential_weight must be > 0")
	assert.Contains(t, violations, "playoff_experience_bonus must be >= 1")
}

func TestValidateRejectsInvertedPossessionBounds(t *testing.T) {
	coeffs := Default()
	coeffs.PossessionSecondsMin = 20
	coeffs.PossessionSecondsMax = 10

	violations := coeffs.Validate()
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "possession_seconds_max")
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coeffs.yaml")
	err := os.WriteFile(path, []byte("turnover_rate: 0.2\nhome_court_edge: 1.1\n"), 0o644)
	require.NoError(t, err)

	coeffs, err := Load(path)
	require.NoError(t, err)

	// Named knobs change, everything else keeps its default.
	assert.Equal(t, 0.2, coeffs.TurnoverRate)
	assert.Equal(t, 1.1, coeffs.HomeCourtEdge)
	assert.Equal(t, Default().BaseInsidePct, coeffs.BaseInsidePct)
	assert.Equal(t, Default().OvertimeSeconds, coeffs.OvertimeSeconds)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coeffs.yaml")
	err := os.WriteFile(path, []byte("assist_rate: 2.5\n"), 0o644)
	require.NoError(t, err)

	_, err = Load(path)
	assert.ErrorContains(t, err, "assist_rate")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
