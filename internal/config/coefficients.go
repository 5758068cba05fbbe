package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Coefficients are the named tuning knobs of the possession
// simulator. Every probability the simulator uses is derived from
// these rather than from inline constants, so a league can reshape
// its statistical profile from a YAML file.
type Coefficients struct {
	// PossessionSecondsMin is the shortest possession length
	PossessionSecondsMin int `yaml:"possession_seconds_min"`

	// PossessionSecondsMax is the longest possession length
	PossessionSecondsMax int `yaml:"possession_seconds_max"`

	// BaseInsidePct is the make probability of an inside shot before
	// attribute and modifier adjustments
	BaseInsidePct float64 `yaml:"base_inside_pct"`

	// BaseThreePct is the make probability of a three-point attempt
	// before adjustments
	BaseThreePct float64 `yaml:"base_three_pct"`

	// BaseFreeThrowPct is the free throw floor for a zero-rated
	// shooter; shooting rating scales on top of it
	BaseFreeThrowPct float64 `yaml:"base_free_throw_pct"`

	// DifferentialWeight divides the shooter-vs-defense rating gap
	// when adjusting make probability; larger values flatten talent
	DifferentialWeight float64 `yaml:"differential_weight"`

	// ThreeAttemptRate is the base share of shots taken from three
	ThreeAttemptRate float64 `yaml:"three_attempt_rate"`

	// TurnoverRate is the base chance a possession ends in a turnover
	TurnoverRate float64 `yaml:"turnover_rate"`

	// StealShare is the chance a turnover is credited as a steal
	StealShare float64 `yaml:"steal_share"`

	// ShootingFoulRate is the base chance a possession draws a
	// shooting foul and free throws
	ShootingFoulRate float64 `yaml:"shooting_foul_rate"`

	// BlockRate is the base chance a missed inside shot was blocked
	BlockRate float64 `yaml:"block_rate"`

	// OffensiveReboundRate is the base chance the offense keeps a miss
	OffensiveReboundRate float64 `yaml:"offensive_rebound_rate"`

	// AssistRate is the chance a made field goal credits an assist
	AssistRate float64 `yaml:"assist_rate"`

	// HomeCourtEdge multiplies the home side's make probabilities
	HomeCourtEdge float64 `yaml:"home_court_edge"`

	// OvertimeSeconds is the length of an overtime period
	OvertimeSeconds int `yaml:"overtime_seconds"`

	// ExperiencePerMinute converts minutes played to experience
	ExperiencePerMinute float64 `yaml:"experience_per_minute"`

	// PlayoffExperienceBonus multiplies experience in playoff games
	PlayoffExperienceBonus float64 `yaml:"playoff_experience_bonus"`
}

// Default returns the stock coefficient set
func Default() *Coefficients {
	return &Coefficients{
		PossessionSecondsMin:   8,
		PossessionSecondsMax:   24,
		BaseInsidePct:          0.48,
		BaseThreePct:           0.35,
		BaseFreeThrowPct:       0.55,
		DifferentialWeight:     500,
		ThreeAttemptRate:       0.38,
		TurnoverRate:           0.13,
		StealShare:             0.55,
		ShootingFoulRate:       0.11,
		BlockRate:              0.09,
		OffensiveReboundRate:   0.26,
		AssistRate:             0.58,
		HomeCourtEdge:          1.02,
		OvertimeSeconds:        300,
		ExperiencePerMinute:    2.0,
		PlayoffExperienceBonus: 1.5,
	}
}

// Load reads a YAML coefficient file over the defaults, so a file
// only needs to name the knobs it changes
func Load(path string) (*Coefficients, error) {
	coeffs := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coefficients file: %w", err)
	}

	if err := yaml.Unmarshal(data, coeffs); err != nil {
		return nil, fmt.Errorf("failed to parse coefficients file: %w", err)
	}

	if violations := coeffs.Validate(); len(violations) > 0 {
		return nil, fmt.Errorf("invalid coefficients: %v", violations)
	}

	return coeffs, nil
}

// Validate checks semantic constraints and returns every violation
// found, not just the first
func (c *Coefficients) Validate() []string {
	var errs []string

	if c.PossessionSecondsMin < 1 {
		errs = append(errs, "possession_seconds_min must be >= 1")
	}
	if c.PossessionSecondsMax < c.PossessionSecondsMin {
		errs = append(errs, "possession_seconds_max must be >= possession_seconds_min")
	}

	for _, p := range []struct {
		name  string
		value float64
	}{
		{"base_inside_pct", c.BaseInsidePct},
		{"base_three_pct", c.BaseThreePct},
		{"base_free_throw_pct", c.BaseFreeThrowPct},
		{"three_attempt_rate", c.ThreeAttemptRate},
		{"turnover_rate", c.TurnoverRate},
		{"steal_share", c.StealShare},
		{"shooting_foul_rate", c.ShootingFoulRate},
		{"block_rate", c.BlockRate},
		{"offensive_rebound_rate", c.OffensiveReboundRate},
		{"assist_rate", c.AssistRate},
	} {
		if p.value <= 0 || p.value >= 1 {
			errs = append(errs, fmt.Sprintf("%s must be in (0,1)", p.name))
		}
	}

	if c.DifferentialWeight <= 0 {
		errs = append(errs, "differential_weight must be > 0")
	}
	if c.HomeCourtEdge <= 0 {
		errs = append(errs, "home_court_edge must be > 0")
	}
	if c.OvertimeSeconds < 60 {
		errs = append(errs, "overtime_seconds must be >= 60")
	}
	if c.ExperiencePerMinute < 0 {
		errs = append(errs, "experience_per_minute must be >= 0")
	}
	if c.PlayoffExperienceBonus < 1 {
		errs = append(errs, "playoff_experience_bonus must be >= 1")
	}

	return errs
}
