package playoffs

import (
	"fmt"

	"github.com/KirkDiggler/fastbreak/internal/common/uuid"
	"github.com/KirkDiggler/fastbreak/internal/models"
)

// service implements the Service interface
type service struct {
	uuider uuid.UUID
}

// New creates a new playoffs service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		uuider: cfg.UUIDGenerator,
	}, nil
}

// RecordSeriesResult folds one decided game into its series on a new
// bracket snapshot. When both initial play-in games of a conference
// are decided, the 8-seed game is synthesized on the spot.
func (s *service) RecordSeriesResult(input *RecordSeriesResultInput) (*RecordSeriesResultOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Bracket == nil {
		return nil, ErrNilBracket
	}
	if input.Game == nil || !input.Game.Played {
		return nil, ErrGameNotPlayed
	}

	bracket := input.Bracket.Clone()

	series := bracket.SeriesByID(input.Game.SeriesID)
	if series == nil {
		return nil, fmt.Errorf("%w: %s", ErrSeriesNotFound, input.Game.SeriesID)
	}

	if err := series.RecordResult(input.Game.ID, input.Game.WinnerID()); err != nil {
		return nil, err
	}

	if series.Round == models.RoundPlayIn && series.IsComplete {
		s.maybeSynthesizeEightSeedGame(bracket, series.Conference)
	}

	return &RecordSeriesResultOutput{
		Bracket: bracket,
		Series:  series,
	}, nil
}

// maybeSynthesizeEightSeedGame creates the second play-in game for a
// conference once its 7v8 and 9v10 games are both decided. The 7/8
// loser hosts the 9/10 winner; the winner takes the 8-seed slot.
func (s *service) maybeSynthesizeEightSeedGame(bracket *models.PlayoffBracket, conf models.Conference) {
	var sevenEight, nineTen *models.PlayoffSeries
	for _, g := range bracket.PlayInGames {
		if g.Conference != conf {
			continue
		}
		switch g.PlayInSlot {
		case models.PlayInSlotSevenEight:
			sevenEight = g
		case models.PlayInSlotNineTen:
			nineTen = g
		case models.PlayInSlotEightSeed:
			// already synthesized
			return
		}
	}

	if sevenEight == nil || nineTen == nil || !sevenEight.IsComplete || !nineTen.IsComplete {
		return
	}

	host := sevenEight.LoserID()
	visitor := nineTen.WinnerID

	bracket.PlayInGames = append(bracket.PlayInGames, &models.PlayoffSeries{
		ID:           s.uuider.NewUUID(),
		Round:        models.RoundPlayIn,
		Conference:   conf,
		PlayInSlot:   models.PlayInSlotEightSeed,
		HomeTeamID:   host,
		AwayTeamID:   visitor,
		HomeSeed:     seedOf(bracket, host),
		AwaySeed:     seedOf(bracket, visitor),
		WinsRequired: 1,
	})
}

func seedOf(bracket *models.PlayoffBracket, teamID string) int {
	if sa, ok := bracket.SeedOf(teamID); ok {
		return sa.Seed
	}
	return 0
}
