package season

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/fastbreak/internal/common/clock"
	"github.com/KirkDiggler/fastbreak/internal/common/uuid"
	"github.com/KirkDiggler/fastbreak/internal/models"
	bracketRepo "github.com/KirkDiggler/fastbreak/internal/repositories/bracket"
	gameRepo "github.com/KirkDiggler/fastbreak/internal/repositories/game"
	"github.com/KirkDiggler/fastbreak/internal/services/playoffs"
	"github.com/KirkDiggler/fastbreak/internal/services/simulation"
)

// seriesHomePattern is the 2-2-1-1-1 home-court format: true means
// the better seed hosts that game of the series
var seriesHomePattern = [7]bool{true, true, false, false, true, false, true}

// service implements the Service interface
type service struct {
	gameRepo    gameRepo.Repository
	bracketRepo bracketRepo.Repository
	simulation  simulation.Service
	playoffs    playoffs.Service
	modifiers   simulation.ModifierProvider
	clock       clock.Clock
	uuider      uuid.UUID
}

// New creates a new season service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.BracketRepo == nil {
		return nil, ErrNilBracketRepo
	}
	if cfg.Simulation == nil {
		return nil, ErrNilSimulation
	}
	if cfg.Playoffs == nil {
		return nil, ErrNilPlayoffs
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		gameRepo:    cfg.GameRepo,
		bracketRepo: cfg.BracketRepo,
		simulation:  cfg.Simulation,
		playoffs:    cfg.Playoffs,
		modifiers:   cfg.Modifiers,
		clock:       cfg.Clock,
		uuider:      cfg.UUIDGenerator,
	}, nil
}

// PlayRegularSeason simulates every unplayed game in the slate and
// persists each result as it lands
func (s *service) PlayRegularSeason(ctx context.Context, input *PlayRegularSeasonInput) (*PlayRegularSeasonOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	games := input.Games
	if games == nil {
		scheduled, err := s.GenerateSchedule(ctx, &GenerateScheduleInput{
			SeasonID: input.SeasonID,
			Teams:    input.Teams,
		})
		if err != nil {
			return nil, err
		}
		games = scheduled.Games
	}

	teams := teamIndex(input.Teams)

	played := make([]*models.Game, 0, len(games))
	for _, g := range games {
		if g.Played {
			played = append(played, g)
			continue
		}

		result, err := s.simulateScheduledGame(ctx, teams, g)
		if err != nil {
			return nil, err
		}

		if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: result}); err != nil {
			return nil, fmt.Errorf("failed to persist game %s: %w", result.ID, err)
		}
		played = append(played, result)
	}

	log.Printf("season %s: played %d regular-season games", input.SeasonID, len(played))

	return &PlayRegularSeasonOutput{Games: played}, nil
}

// RunPlayoffs seeds, builds the bracket, and simulates it forward.
// Series involving the user's team are never simulated; if a round
// cannot finish without them the run stops and reports that it is
// waiting on the user.
func (s *service) RunPlayoffs(ctx context.Context, input *RunPlayoffsInput) (*RunPlayoffsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	seeding, err := s.playoffs.CalculateSeeding(&playoffs.CalculateSeedingInput{
		Teams: input.Teams,
		Games: input.Games,
	})
	if err != nil {
		return nil, err
	}

	generated, err := s.playoffs.GenerateBracket(&playoffs.GenerateBracketInput{
		SeasonID: input.SeasonID,
		Seeds:    seeding.Seeds,
	})
	if err != nil {
		return nil, err
	}
	bracket := generated.Bracket

	teams := teamIndex(input.Teams)

	for bracket.CurrentRound != models.RoundComplete {
		for {
			series := s.nextOpenSeries(bracket, input.UserTeamID)
			if series == nil {
				break
			}
			bracket, err = s.playSeriesGame(ctx, teams, bracket, series)
			if err != nil {
				return nil, err
			}
		}

		if !s.playoffs.IsRoundComplete(bracket) {
			// Only the user's series can be holding the round open.
			if err := s.saveBracket(ctx, bracket); err != nil {
				return nil, err
			}
			return &RunPlayoffsOutput{Bracket: bracket, AwaitingUserSeries: true}, nil
		}

		advanced, err := s.playoffs.AdvanceRound(&playoffs.AdvanceRoundInput{Bracket: bracket})
		if err != nil {
			return nil, err
		}
		bracket = advanced.Bracket

		if err := s.saveBracket(ctx, bracket); err != nil {
			return nil, err
		}
		log.Printf("season %s: playoffs advanced to %s", input.SeasonID, bracket.CurrentRound)
	}

	return &RunPlayoffsOutput{Bracket: bracket}, nil
}

// nextOpenSeries finds an incomplete current-round series that does
// not involve the user's team
func (s *service) nextOpenSeries(bracket *models.PlayoffBracket, userTeamID string) *models.PlayoffSeries {
	for _, sr := range bracket.RoundSeries(bracket.CurrentRound) {
		if sr.IsComplete {
			continue
		}
		if userTeamID != "" && (sr.HomeTeamID == userTeamID || sr.AwayTeamID == userTeamID) {
			continue
		}
		return sr
	}
	return nil
}

// playSeriesGame simulates the next game of a series, persists it,
// and folds it into a new bracket snapshot
func (s *service) playSeriesGame(ctx context.Context, teams map[string]*models.Team,
	bracket *models.PlayoffBracket, series *models.PlayoffSeries) (*models.PlayoffBracket, error) {

	gameIndex := series.HomeWins + series.AwayWins
	homeID, awayID := series.HomeTeamID, series.AwayTeamID
	if gameIndex < len(seriesHomePattern) && !seriesHomePattern[gameIndex] {
		homeID, awayID = awayID, homeID
	}

	scheduled := &models.Game{
		SeasonID:      bracket.SeasonID,
		HomeTeamID:    homeID,
		AwayTeamID:    awayID,
		IsPlayoffGame: true,
		SeriesID:      series.ID,
		CreatedAt:     s.clock.Now(),
	}

	result, err := s.simulateScheduledGame(ctx, teams, scheduled)
	if err != nil {
		return nil, err
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: result}); err != nil {
		return nil, fmt.Errorf("failed to persist game %s: %w", result.ID, err)
	}

	recorded, err := s.playoffs.RecordSeriesResult(&playoffs.RecordSeriesResultInput{
		Bracket: bracket,
		Game:    result,
	})
	if err != nil {
		return nil, err
	}
	return recorded.Bracket, nil
}

// simulateScheduledGame resolves teams and modifiers for a scheduled
// game and runs the simulator
func (s *service) simulateScheduledGame(ctx context.Context, teams map[string]*models.Team, g *models.Game) (*models.Game, error) {
	home := teams[g.HomeTeamID]
	away := teams[g.AwayTeamID]
	if home == nil || away == nil {
		return nil, fmt.Errorf("%w: %s vs %s", ErrUnknownTeam, g.HomeTeamID, g.AwayTeamID)
	}

	var homeMods, awayMods map[string]float64
	if s.modifiers != nil {
		var err error
		if homeMods, err = s.modifiers.GameModifiers(ctx, home.ID); err != nil {
			return nil, fmt.Errorf("failed to get modifiers for %s: %w", home.ID, err)
		}
		if awayMods, err = s.modifiers.GameModifiers(ctx, away.ID); err != nil {
			return nil, fmt.Errorf("failed to get modifiers for %s: %w", away.ID, err)
		}
	}

	simulated, err := s.simulation.SimulateGame(ctx, &simulation.SimulateGameInput{
		SeasonID:      g.SeasonID,
		HomeTeam:      home,
		AwayTeam:      away,
		HomeModifiers: homeMods,
		AwayModifiers: awayMods,
		IsPlayoffGame: g.IsPlayoffGame,
		SeriesID:      g.SeriesID,
	})
	if err != nil {
		return nil, err
	}

	result := simulated.Game
	// Scheduled games keep their identity; fresh playoff games keep
	// the simulator's.
	if g.ID != "" {
		result.ID = g.ID
		result.CreatedAt = g.CreatedAt
	}
	return result, nil
}

// saveBracket persists the latest snapshot
func (s *service) saveBracket(ctx context.Context, b *models.PlayoffBracket) error {
	if err := s.bracketRepo.SaveBracket(ctx, &bracketRepo.SaveBracketInput{Bracket: b}); err != nil {
		return fmt.Errorf("failed to persist bracket: %w", err)
	}
	return nil
}

// teamIndex maps teams by ID
func teamIndex(teams []*models.Team) map[string]*models.Team {
	out := make(map[string]*models.Team, len(teams))
	for _, t := range teams {
		out[t.ID] = t
	}
	return out
}
