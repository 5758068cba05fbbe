package simulation

import (
	"context"
	"fmt"
	"math"

	"github.com/KirkDiggler/fastbreak/internal/common/clock"
	"github.com/KirkDiggler/fastbreak/internal/common/uuid"
	"github.com/KirkDiggler/fastbreak/internal/config"
	"github.com/KirkDiggler/fastbreak/internal/dice"
	"github.com/KirkDiggler/fastbreak/internal/models"
	"github.com/KirkDiggler/fastbreak/internal/services/rotation"
)

const (
	quarterSeconds = 720
	// substitution windows open at the quarter boundary and at the
	// midpoint of each quarter
	segmentSeconds = 360
)

// service implements the Service interface
type service struct {
	coeffs   *config.Coefficients
	rotation rotation.Service
	roller   dice.Roller
	clock    clock.Clock
	uuider   uuid.UUID
}

// New creates a new simulation service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Rotation == nil {
		return nil, ErrNilRotation
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	coeffs := cfg.Coefficients
	if coeffs == nil {
		coeffs = config.Default()
	}
	if violations := coeffs.Validate(); len(violations) > 0 {
		return nil, fmt.Errorf("invalid coefficients: %v", violations)
	}

	return &service{
		coeffs:   coeffs,
		rotation: cfg.Rotation,
		roller:   cfg.DiceRoller,
		clock:    cfg.Clock,
		uuider:   cfg.UUIDGenerator,
	}, nil
}

// SimulateGame plays a full game between two teams. Rotation configs
// are validated before any randomness is consumed; an invalid plan is
// rejected outright rather than worked around.
func (s *service) SimulateGame(ctx context.Context, input *SimulateGameInput) (*SimulateGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.HomeTeam == nil || input.AwayTeam == nil {
		return nil, ErrMissingTeam
	}

	for _, team := range []*models.Team{input.HomeTeam, input.AwayTeam} {
		if team.Rotation == nil {
			continue
		}
		result := s.rotation.ValidateRotation(&rotation.ValidateRotationInput{
			Config: team.Rotation,
			Roster: team.Roster,
		})
		if !result.Valid() {
			return nil, fmt.Errorf("%w: team %s: %s",
				ErrInvalidRotation, team.Name, result.Violations[0].Message)
		}
	}

	home, err := newTeamState(input.HomeTeam, input.HomeModifiers, true)
	if err != nil {
		return nil, fmt.Errorf("home team: %w", err)
	}
	away, err := newTeamState(input.AwayTeam, input.AwayModifiers, false)
	if err != nil {
		return nil, fmt.Errorf("away team: %w", err)
	}

	// Home opens odd quarters, away opens even ones.
	off, def := home, away
	for q := 0; q < 4; q++ {
		if q%2 == 1 {
			off, def = away, home
		} else {
			off, def = home, away
		}
		for seg := 0; seg < quarterSeconds/segmentSeconds; seg++ {
			off, def = s.runSegment(off, def, home, away, segmentSeconds)
		}
	}

	// Ties never stand: keep playing overtime until someone leads.
	for home.points == away.points {
		off, def = s.runSegment(off, def, home, away, s.coeffs.OvertimeSeconds)
	}

	game := s.buildGame(input, home, away)

	return &SimulateGameOutput{Game: game}, nil
}

// runSegment opens a substitution window, then plays possessions
// until the segment clock runs out. It returns which side has the
// ball going into the next segment.
func (s *service) runSegment(off, def, home, away *teamState, seconds int) (*teamState, *teamState) {
	home.sched.refresh()
	away.sched.refresh()

	remaining := seconds
	for remaining > 0 {
		elapsed := s.possessionSeconds(off)
		if elapsed > remaining {
			elapsed = remaining
		}

		keep := s.playPossession(off, def)

		home.sched.addSeconds(elapsed)
		away.sched.addSeconds(elapsed)
		remaining -= elapsed

		if !keep {
			off, def = def, off
		}
	}
	return off, def
}

// possessionSeconds draws a possession length, shortened by the
// offense's pace modifier
func (s *service) possessionSeconds(off *teamState) int {
	span := s.coeffs.PossessionSecondsMax - s.coeffs.PossessionSecondsMin + 1
	base := s.coeffs.PossessionSecondsMin + s.roller.Intn(span)

	seconds := int(float64(base) / off.modifier(ModifierPace))
	if seconds < s.coeffs.PossessionSecondsMin {
		seconds = s.coeffs.PossessionSecondsMin
	}
	return seconds
}

// buildGame assembles the immutable game record from the final state
func (s *service) buildGame(input *SimulateGameInput, home, away *teamState) *models.Game {
	now := s.clock.Now()

	box := make(map[string]*models.PlayerBoxScore, len(home.box)+len(away.box))
	for _, side := range []*teamState{home, away} {
		for id, secs := range side.sched.played {
			if secs == 0 {
				continue
			}
			p := side.team.PlayerByID(id)
			line := side.line(p)
			line.Minutes = int(math.Round(float64(secs) / 60.0))
			line.ExperienceGained = s.experienceFor(line.Minutes, input.IsPlayoffGame)
			box[id] = line
		}
	}

	homeScore := home.points
	awayScore := away.points

	return &models.Game{
		ID:            s.uuider.NewUUID(),
		SeasonID:      input.SeasonID,
		HomeTeamID:    input.HomeTeam.ID,
		AwayTeamID:    input.AwayTeam.ID,
		HomeScore:     &homeScore,
		AwayScore:     &awayScore,
		Played:        true,
		IsPlayoffGame: input.IsPlayoffGame,
		SeriesID:      input.SeriesID,
		BoxScore:      box,
		CreatedAt:     now,
		PlayedAt:      now,
	}
}

// experienceFor converts minutes played into the development credit
// reported on the box score
func (s *service) experienceFor(minutes int, playoff bool) int {
	exp := float64(minutes) * s.coeffs.ExperiencePerMinute
	if playoff {
		exp *= s.coeffs.PlayoffExperienceBonus
	}
	return int(math.Round(exp))
}
