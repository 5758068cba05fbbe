package season

import (
	"context"
	"fmt"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/fastbreak/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/fastbreak/internal/common/uuid/mocks"
	"github.com/KirkDiggler/fastbreak/internal/models"
	bracketRepo "github.com/KirkDiggler/fastbreak/internal/repositories/bracket"
	bracketRepoMocks "github.com/KirkDiggler/fastbreak/internal/repositories/bracket/mocks"
	gameRepo "github.com/KirkDiggler/fastbreak/internal/repositories/game"
	gameRepoMocks "github.com/KirkDiggler/fastbreak/internal/repositories/game/mocks"
	"github.com/KirkDiggler/fastbreak/internal/services/playoffs"
	"github.com/KirkDiggler/fastbreak/internal/services/simulation"
	simMocks "github.com/KirkDiggler/fastbreak/internal/services/simulation/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SeasonServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockGameRepo    *gameRepoMocks.MockRepository
	mockBracketRepo *bracketRepoMocks.MockRepository
	mockSim         *simMocks.MockService
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	service         *service
	ctx             context.Context

	testTime time.Time
	teams    []*models.Team

	// savedGames records every game handed to the repository
	savedGames []*models.Game
	// simulatedGames records every result the mock simulator produced
	simulatedGames []*models.Game
}

func (s *SeasonServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameRepoMocks.NewMockRepository(s.mockCtrl)
	s.mockBracketRepo = bracketRepoMocks.NewMockRepository(s.mockCtrl)
	s.mockSim = simMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2026, 4, 12, 20, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	counter := 0
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		counter++
		return fmt.Sprintf("id-%04d", counter)
	}).AnyTimes()

	playoffSvc, err := playoffs.New(&playoffs.Config{UUIDGenerator: s.mockUUID})
	s.Require().NoError(err)

	svc, err := New(&Config{
		GameRepo:      s.mockGameRepo,
		BracketRepo:   s.mockBracketRepo,
		Simulation:    s.mockSim,
		Playoffs:      playoffSvc,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc

	s.teams = nil
	for _, conf := range []models.Conference{models.ConferenceEast, models.ConferenceWest} {
		for i := 1; i <= 15; i++ {
			s.teams = append(s.teams, &models.Team{
				ID:         fmt.Sprintf("%s-%02d", conf, i),
				Name:       fmt.Sprintf("%s team %02d", conf, i),
				Conference: conf,
			})
		}
	}

	s.savedGames = nil
	s.simulatedGames = nil
}

func TestSeasonServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SeasonServiceTestSuite))
}

// expectHomeWins wires the mock simulator to hand the home side a
// 100-90 win in every game, and the repository to accept every save
func (s *SeasonServiceTestSuite) expectHomeWins() {
	simCounter := 0
	s.mockSim.EXPECT().SimulateGame(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *simulation.SimulateGameInput) (*simulation.SimulateGameOutput, error) {
			simCounter++
			homeScore, awayScore := 100, 90
			g := &models.Game{
				ID:            fmt.Sprintf("sim-%04d", simCounter),
				SeasonID:      in.SeasonID,
				HomeTeamID:    in.HomeTeam.ID,
				AwayTeamID:    in.AwayTeam.ID,
				HomeScore:     &homeScore,
				AwayScore:     &awayScore,
				Played:        true,
				IsPlayoffGame: in.IsPlayoffGame,
				SeriesID:      in.SeriesID,
				CreatedAt:     s.testTime,
				PlayedAt:      s.testTime,
			}
			s.simulatedGames = append(s.simulatedGames, g)
			return &simulation.SimulateGameOutput{Game: g}, nil
		}).AnyTimes()

	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *gameRepo.SaveGameInput) error {
			s.savedGames = append(s.savedGames, in.Game)
			return nil
		}).AnyTimes()
}

// regularSeasonResults fabricates a played intra-conference round
// robin where the lower-numbered team always wins, giving team N
// exactly 15-N wins in its conference
func (s *SeasonServiceTestSuite) regularSeasonResults() []*models.Game {
	var games []*models.Game
	for _, conf := range []models.Conference{models.ConferenceEast, models.ConferenceWest} {
		for i := 1; i <= 15; i++ {
			for j := i + 1; j <= 15; j++ {
				homeScore, awayScore := 100, 90
				games = append(games, &models.Game{
					ID:         fmt.Sprintf("rs-%s-%02d-%02d", conf, i, j),
					HomeTeamID: fmt.Sprintf("%s-%02d", conf, i),
					AwayTeamID: fmt.Sprintf("%s-%02d", conf, j),
					HomeScore:  &homeScore,
					AwayScore:  &awayScore,
					Played:     true,
				})
			}
		}
	}
	return games
}

func (s *SeasonServiceTestSuite) TestGenerateScheduleGivesEveryTeamEightyTwoGames() {
	out, err := s.service.GenerateSchedule(s.ctx, &GenerateScheduleInput{
		SeasonID: "season-1",
		Teams:    s.teams,
	})
	s.Require().NoError(err)

	// 1230 games: 30 teams x 82 appearances, two teams per game.
	s.Len(out.Games, 30*GamesPerTeam/2)

	appearances := make(map[string]int)
	ids := make(map[string]bool)
	for _, g := range out.Games {
		s.False(g.Played)
		s.Nil(g.HomeScore)
		s.Equal("season-1", g.SeasonID)
		s.Equal(s.testTime, g.CreatedAt)
		s.False(ids[g.ID], "game IDs are unique")
		ids[g.ID] = true
		appearances[g.HomeTeamID]++
		appearances[g.AwayTeamID]++
	}

	s.Len(appearances, 30)
	for id, n := range appearances {
		s.Equal(GamesPerTeam, n, "team %s", id)
	}
}

func (s *SeasonServiceTestSuite) TestGenerateScheduleRejectsTinyLeagues() {
	_, err := s.service.GenerateSchedule(s.ctx, &GenerateScheduleInput{
		SeasonID: "season-1",
		Teams:    s.teams[:1],
	})
	s.ErrorIs(err, ErrNoTeams)

	_, err = s.service.GenerateSchedule(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *SeasonServiceTestSuite) TestPlayRegularSeasonSimulatesAndPersists() {
	s.expectHomeWins()

	homeScore, awayScore := 99, 95
	alreadyPlayed := &models.Game{
		ID:         "done-1",
		SeasonID:   "season-1",
		HomeTeamID: "east-01",
		AwayTeamID: "west-01",
		HomeScore:  &homeScore,
		AwayScore:  &awayScore,
		Played:     true,
	}
	scheduled := &models.Game{
		ID:         "sched-1",
		SeasonID:   "season-1",
		HomeTeamID: "east-02",
		AwayTeamID: "west-02",
		CreatedAt:  s.testTime.Add(-24 * time.Hour),
	}

	out, err := s.service.PlayRegularSeason(s.ctx, &PlayRegularSeasonInput{
		SeasonID: "season-1",
		Teams:    s.teams,
		Games:    []*models.Game{alreadyPlayed, scheduled},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Games, 2)

	s.Same(alreadyPlayed, out.Games[0], "played games pass through untouched")

	result := out.Games[1]
	s.True(result.Played)
	s.Equal("sched-1", result.ID, "scheduled games keep their identity")
	s.Equal(scheduled.CreatedAt, result.CreatedAt)
	s.Equal("east-02", result.HomeTeamID)

	// Only the simulated game was persisted.
	s.Require().Len(s.savedGames, 1)
	s.Equal("sched-1", s.savedGames[0].ID)
}

func (s *SeasonServiceTestSuite) TestPlayRegularSeasonGeneratesScheduleWhenMissing() {
	s.expectHomeWins()

	out, err := s.service.PlayRegularSeason(s.ctx, &PlayRegularSeasonInput{
		SeasonID: "season-1",
		Teams:    s.teams,
	})
	s.Require().NoError(err)

	s.Len(out.Games, 1230)
	s.Len(s.savedGames, 1230)
	for _, g := range out.Games {
		s.True(g.Played)
	}
}

func (s *SeasonServiceTestSuite) TestRunPlayoffsSimulatesWholeBracket() {
	s.expectHomeWins()
	s.mockBracketRepo.EXPECT().SaveBracket(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	out, err := s.service.RunPlayoffs(s.ctx, &RunPlayoffsInput{
		SeasonID: "season-1",
		Teams:    s.teams,
		Games:    s.regularSeasonResults(),
	})
	s.Require().NoError(err)

	s.False(out.AwaitingUserSeries)
	s.Equal(models.RoundComplete, out.Bracket.CurrentRound)
	// With home court deciding every game, the top seed survives the
	// 2-2-1-1-1 format and the East champion takes a game seven.
	s.Equal("east-01", out.Bracket.ChampionID)

	for _, g := range s.savedGames {
		s.True(g.IsPlayoffGame)
		s.NotEmpty(g.SeriesID)
	}
}

func (s *SeasonServiceTestSuite) TestRunPlayoffsSeriesFollowsHomePattern() {
	s.expectHomeWins()
	s.mockBracketRepo.EXPECT().SaveBracket(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	out, err := s.service.RunPlayoffs(s.ctx, &RunPlayoffsInput{
		SeasonID: "season-1",
		Teams:    s.teams,
		Games:    s.regularSeasonResults(),
	})
	s.Require().NoError(err)

	finals := out.Bracket.Finals[0]
	s.Require().Len(finals.GameIDs, 7, "home wins force a game seven")

	hostByGame := make(map[string]string, len(s.savedGames))
	for _, g := range s.savedGames {
		hostByGame[g.ID] = g.HomeTeamID
	}

	wantHosts := []string{
		finals.HomeTeamID, finals.HomeTeamID,
		finals.AwayTeamID, finals.AwayTeamID,
		finals.HomeTeamID,
		finals.AwayTeamID,
		finals.HomeTeamID,
	}
	for i, gameID := range finals.GameIDs {
		s.Equal(wantHosts[i], hostByGame[gameID], "finals game %d host", i+1)
	}
}

func (s *SeasonServiceTestSuite) TestRunPlayoffsWaitsOnUserSeries() {
	userTeam := "east-07"

	simCounter := 0
	s.mockSim.EXPECT().SimulateGame(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *simulation.SimulateGameInput) (*simulation.SimulateGameOutput, error) {
			s.NotEqual(userTeam, in.HomeTeam.ID, "user games are never simulated")
			s.NotEqual(userTeam, in.AwayTeam.ID, "user games are never simulated")
			simCounter++
			homeScore, awayScore := 100, 90
			return &simulation.SimulateGameOutput{Game: &models.Game{
				ID:            fmt.Sprintf("sim-%04d", simCounter),
				SeasonID:      in.SeasonID,
				HomeTeamID:    in.HomeTeam.ID,
				AwayTeamID:    in.AwayTeam.ID,
				HomeScore:     &homeScore,
				AwayScore:     &awayScore,
				Played:        true,
				IsPlayoffGame: in.IsPlayoffGame,
				SeriesID:      in.SeriesID,
			}}, nil
		}).AnyTimes()
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	bracketSaved := false
	s.mockBracketRepo.EXPECT().SaveBracket(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *bracketRepo.SaveBracketInput) error {
			bracketSaved = true
			return nil
		}).AnyTimes()

	out, err := s.service.RunPlayoffs(s.ctx, &RunPlayoffsInput{
		SeasonID:   "season-1",
		Teams:      s.teams,
		Games:      s.regularSeasonResults(),
		UserTeamID: userTeam,
	})
	s.Require().NoError(err)

	s.True(out.AwaitingUserSeries)
	s.True(bracketSaved, "the stalled bracket is persisted for later")
	s.Equal(models.RoundPlayIn, out.Bracket.CurrentRound)

	userSeries := out.Bracket.SeriesForTeam(userTeam)
	s.Require().NotNil(userSeries)
	s.Zero(userSeries.HomeWins, "the user's series is untouched")
	s.Zero(userSeries.AwayWins)
	s.False(userSeries.IsComplete)

	// Everything around the user finished: the West resolved its whole
	// play-in, the East only its 9/10 game.
	s.Len(out.Bracket.PlayInGames, 5)
	for _, sr := range out.Bracket.PlayInGames {
		if sr.Conference == models.ConferenceEast && sr.PlayInSlot == models.PlayInSlotSevenEight {
			continue
		}
		s.True(sr.IsComplete, "series %s/%s", sr.Conference, sr.PlayInSlot)
	}
}

func (s *SeasonServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilGameRepo)
}
