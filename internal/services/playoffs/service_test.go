package playoffs

import (
	"fmt"
	"testing"

	uuidMocks "github.com/KirkDiggler/fastbreak/internal/common/uuid/mocks"
	"github.com/KirkDiggler/fastbreak/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PlayoffsServiceTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockUUID *uuidMocks.MockUUID
	service  *service

	teams []*models.Team
	games []*models.Game
}

func (s *PlayoffsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	counter := 0
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		counter++
		return fmt.Sprintf("series-%03d", counter)
	}).AnyTimes()

	svc, err := New(&Config{UUIDGenerator: s.mockUUID})
	s.Require().NoError(err)
	s.service = svc

	// 15 teams per conference, named so that name order matches the
	// numeric suffix. A full intra-conference round robin where the
	// lower-numbered team always wins gives team N exactly 15-N wins.
	s.teams = nil
	s.games = nil
	for _, conf := range []models.Conference{models.ConferenceEast, models.ConferenceWest} {
		var ids []string
		for i := 1; i <= 15; i++ {
			id := fmt.Sprintf("%s-%02d", conf, i)
			ids = append(ids, id)
			s.teams = append(s.teams, &models.Team{
				ID:         id,
				Name:       fmt.Sprintf("%s team %02d", conf, i),
				Conference: conf,
			})
		}
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				s.games = append(s.games, playedGame(ids[i], ids[j], 100, 90))
			}
		}
	}
}

func TestPlayoffsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlayoffsServiceTestSuite))
}

func playedGame(homeID, awayID string, homeScore, awayScore int) *models.Game {
	return &models.Game{
		ID:         fmt.Sprintf("game-%s-%s", homeID, awayID),
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		HomeScore:  &homeScore,
		AwayScore:  &awayScore,
		Played:     true,
	}
}

func (s *PlayoffsServiceTestSuite) seededBracket() *models.PlayoffBracket {
	seeding, err := s.service.CalculateSeeding(&CalculateSeedingInput{
		Teams: s.teams,
		Games: s.games,
	})
	s.Require().NoError(err)

	out, err := s.service.GenerateBracket(&GenerateBracketInput{
		SeasonID: "season-1",
		Seeds:    seeding.Seeds,
	})
	s.Require().NoError(err)
	return out.Bracket
}

// playInGame finds a play-in series by conference and slot
func (s *PlayoffsServiceTestSuite) playInGame(bracket *models.PlayoffBracket,
	conf models.Conference, slot models.PlayInSlot) *models.PlayoffSeries {
	for _, g := range bracket.PlayInGames {
		if g.Conference == conf && g.PlayInSlot == slot {
			return g
		}
	}
	return nil
}

// recordHomeWin records one home win for a series and returns the
// updated bracket
func (s *PlayoffsServiceTestSuite) recordHomeWin(bracket *models.PlayoffBracket,
	sr *models.PlayoffSeries) *models.PlayoffBracket {
	game := playedGame(sr.HomeTeamID, sr.AwayTeamID, 105, 98)
	game.ID = fmt.Sprintf("g-%s-%d", sr.ID, len(sr.GameIDs)+1)
	game.IsPlayoffGame = true
	game.SeriesID = sr.ID

	out, err := s.service.RecordSeriesResult(&RecordSeriesResultInput{
		Bracket: bracket,
		Game:    game,
	})
	s.Require().NoError(err)
	return out.Bracket
}

// completeCurrentRound sweeps the current round recording home wins
// until every series, synthesized play-in games included, is decided
func (s *PlayoffsServiceTestSuite) completeCurrentRound(bracket *models.PlayoffBracket) *models.PlayoffBracket {
	for !s.service.IsRoundComplete(bracket) {
		for _, sr := range bracket.RoundSeries(bracket.CurrentRound) {
			if sr.IsComplete {
				continue
			}
			bracket = s.recordHomeWin(bracket, sr)
		}
	}
	return bracket
}

func (s *PlayoffsServiceTestSuite) TestCalculateSeedingRanksByWins() {
	out, err := s.service.CalculateSeeding(&CalculateSeedingInput{
		Teams: s.teams,
		Games: s.games,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Seeds, 2)

	for conf, entries := range out.Seeds {
		s.Require().Len(entries, 15)
		for i, e := range entries {
			s.Equal(i+1, e.Seed, "seeds are dense from 1")
			s.Equal(fmt.Sprintf("%s-%02d", conf, i+1), e.TeamID)
			s.Equal(14-i, e.Wins)
			s.Equal(i, e.Losses)
		}
	}
}

func (s *PlayoffsServiceTestSuite) TestCalculateSeedingIgnoresUnplayedAndPlayoffGames() {
	// Results that would catapult the worst team past everyone, except
	// that one is unplayed and the other is a playoff game.
	unplayed := &models.Game{ID: "u1", HomeTeamID: "east-15", AwayTeamID: "east-01"}
	playoff := playedGame("east-15", "east-01", 120, 80)
	playoff.IsPlayoffGame = true
	games := append(append([]*models.Game{}, s.games...), unplayed, playoff)

	out, err := s.service.CalculateSeeding(&CalculateSeedingInput{
		Teams: s.teams,
		Games: games,
	})
	s.Require().NoError(err)

	east := out.Seeds[models.ConferenceEast]
	s.Equal("east-01", east[0].TeamID)
	s.Equal("east-15", east[14].TeamID)
	s.Equal(0, east[14].Wins)
}

func (s *PlayoffsServiceTestSuite) TestCalculateSeedingTieBreaks() {
	teams := []*models.Team{
		{ID: "a", Name: "alewives", Conference: models.ConferenceEast},
		{ID: "b", Name: "barracudas", Conference: models.ConferenceEast},
		{ID: "c", Name: "cuttlefish", Conference: models.ConferenceEast},
		{ID: "d", Name: "dogfish", Conference: models.ConferenceEast},
	}
	// a is 2-0, b and c both win once but with different records, so
	// win percentage splits them. d never plays and ranks last by name.
	games := []*models.Game{
		playedGame("a", "c", 100, 90),
		playedGame("b", "c", 100, 90),
		playedGame("c", "b", 100, 90),
		playedGame("c", "a", 90, 100),
	}

	out, err := s.service.CalculateSeeding(&CalculateSeedingInput{Teams: teams, Games: games})
	s.Require().NoError(err)

	east := out.Seeds[models.ConferenceEast]
	s.Require().Len(east, 4)
	s.Equal("a", east[0].TeamID)
	s.Equal("b", east[1].TeamID)
	s.Equal("c", east[2].TeamID)
	s.Equal("d", east[3].TeamID)
}

func (s *PlayoffsServiceTestSuite) TestGenerateBracketShape() {
	bracket := s.seededBracket()

	s.Equal("season-1", bracket.SeasonID)
	s.Equal(models.RoundPlayIn, bracket.CurrentRound)
	s.Len(bracket.PlayInGames, 4)
	s.Empty(bracket.FirstRound)
	s.Len(bracket.Seeds, 30)

	for _, conf := range []models.Conference{models.ConferenceEast, models.ConferenceWest} {
		sevenEight := s.playInGame(bracket, conf, models.PlayInSlotSevenEight)
		s.Require().NotNil(sevenEight)
		s.Equal(fmt.Sprintf("%s-07", conf), sevenEight.HomeTeamID)
		s.Equal(fmt.Sprintf("%s-08", conf), sevenEight.AwayTeamID)
		s.Equal(1, sevenEight.WinsRequired)

		nineTen := s.playInGame(bracket, conf, models.PlayInSlotNineTen)
		s.Require().NotNil(nineTen)
		s.Equal(fmt.Sprintf("%s-09", conf), nineTen.HomeTeamID)
		s.Equal(fmt.Sprintf("%s-10", conf), nineTen.AwayTeamID)
		s.Equal(1, nineTen.WinsRequired)
	}
}

func (s *PlayoffsServiceTestSuite) TestGenerateBracketRequiresTenSeeds() {
	seeding, err := s.service.CalculateSeeding(&CalculateSeedingInput{
		Teams: s.teams,
		Games: s.games,
	})
	s.Require().NoError(err)

	// Drop the west 10 seed.
	seeding.Seeds[models.ConferenceWest] = seeding.Seeds[models.ConferenceWest][:9]

	_, err = s.service.GenerateBracket(&GenerateBracketInput{
		SeasonID: "season-1",
		Seeds:    seeding.Seeds,
	})
	s.ErrorIs(err, ErrIncompleteSeeding)
}

func (s *PlayoffsServiceTestSuite) TestRecordSeriesResultSynthesizesEightSeedGame() {
	original := s.seededBracket()

	bracket := s.recordHomeWin(original, s.playInGame(original, models.ConferenceEast, models.PlayInSlotSevenEight))
	s.Len(bracket.PlayInGames, 4, "one result does not synthesize anything")

	bracket = s.recordHomeWin(bracket, s.playInGame(bracket, models.ConferenceEast, models.PlayInSlotNineTen))
	s.Require().Len(bracket.PlayInGames, 5)

	eightSeed := s.playInGame(bracket, models.ConferenceEast, models.PlayInSlotEightSeed)
	s.Require().NotNil(eightSeed)
	s.Equal("east-08", eightSeed.HomeTeamID, "the 7/8 loser hosts")
	s.Equal("east-09", eightSeed.AwayTeamID, "the 9/10 winner visits")
	s.Equal(8, eightSeed.HomeSeed)
	s.Equal(9, eightSeed.AwaySeed)
	s.Equal(1, eightSeed.WinsRequired)

	// The input bracket was never touched.
	s.Len(original.PlayInGames, 4)
	s.False(s.playInGame(original, models.ConferenceEast, models.PlayInSlotSevenEight).IsComplete)
}

func (s *PlayoffsServiceTestSuite) TestRecordSeriesResultErrors() {
	bracket := s.seededBracket()

	unplayed := &models.Game{ID: "g1", SeriesID: bracket.PlayInGames[0].ID}
	_, err := s.service.RecordSeriesResult(&RecordSeriesResultInput{Bracket: bracket, Game: unplayed})
	s.ErrorIs(err, ErrGameNotPlayed)

	stray := playedGame("east-07", "east-08", 100, 90)
	stray.SeriesID = "no-such-series"
	_, err = s.service.RecordSeriesResult(&RecordSeriesResultInput{Bracket: bracket, Game: stray})
	s.ErrorIs(err, ErrSeriesNotFound)
}

func (s *PlayoffsServiceTestSuite) TestSeriesCompletesAtFourWinsOnly() {
	bracket := s.seededBracket()

	// Finish the play-in with home wins across the board.
	for _, conf := range []models.Conference{models.ConferenceEast, models.ConferenceWest} {
		bracket = s.recordHomeWin(bracket, s.playInGame(bracket, conf, models.PlayInSlotSevenEight))
		bracket = s.recordHomeWin(bracket, s.playInGame(bracket, conf, models.PlayInSlotNineTen))
		bracket = s.recordHomeWin(bracket, s.playInGame(bracket, conf, models.PlayInSlotEightSeed))
	}

	advanced, err := s.service.AdvanceRound(&AdvanceRoundInput{Bracket: bracket})
	s.Require().NoError(err)
	bracket = advanced.Bracket

	sr := bracket.FirstRound[0]
	for wins := 1; wins <= 3; wins++ {
		bracket = s.recordHomeWin(bracket, sr)
		sr = bracket.SeriesByID(sr.ID)
		s.False(sr.IsComplete, "series is open at %d wins", wins)
		s.Empty(sr.WinnerID)
	}

	bracket = s.recordHomeWin(bracket, sr)
	sr = bracket.SeriesByID(sr.ID)
	s.True(sr.IsComplete)
	s.Equal(sr.HomeTeamID, sr.WinnerID)
	s.Len(sr.GameIDs, 4)
}

func (s *PlayoffsServiceTestSuite) TestAdvanceRoundRefusesIncompleteRound() {
	bracket := s.seededBracket()

	s.False(s.service.IsRoundComplete(bracket))
	_, err := s.service.AdvanceRound(&AdvanceRoundInput{Bracket: bracket})
	s.ErrorIs(err, ErrRoundNotComplete)

	// Deciding the four initial games is still not enough: the
	// synthesized 8-seed games remain open.
	for _, conf := range []models.Conference{models.ConferenceEast, models.ConferenceWest} {
		bracket = s.recordHomeWin(bracket, s.playInGame(bracket, conf, models.PlayInSlotSevenEight))
		bracket = s.recordHomeWin(bracket, s.playInGame(bracket, conf, models.PlayInSlotNineTen))
	}
	s.Len(bracket.PlayInGames, 6)
	s.False(s.service.IsRoundComplete(bracket))

	_, err = s.service.AdvanceRound(&AdvanceRoundInput{Bracket: bracket})
	s.ErrorIs(err, ErrRoundNotComplete)
	s.Equal(models.RoundPlayIn, bracket.CurrentRound, "a refused advance changes nothing")
}

func (s *PlayoffsServiceTestSuite) TestFullBracketRunsToChampion() {
	bracket := s.seededBracket()

	wantRounds := []models.PlayoffRound{
		models.RoundPlayIn,
		models.RoundFirst,
		models.RoundConferenceSemis,
		models.RoundConferenceFinals,
		models.RoundFinals,
	}

	for _, want := range wantRounds {
		s.Require().Equal(want, bracket.CurrentRound)

		bracket = s.completeCurrentRound(bracket)
		s.Require().True(s.service.IsRoundComplete(bracket))
		out, err := s.service.AdvanceRound(&AdvanceRoundInput{Bracket: bracket})
		s.Require().NoError(err)
		bracket = out.Bracket
	}

	s.Equal(models.RoundComplete, bracket.CurrentRound)
	s.Equal("east-01", bracket.ChampionID)

	_, err := s.service.AdvanceRound(&AdvanceRoundInput{Bracket: bracket})
	s.ErrorIs(err, ErrBracketComplete)
}

func (s *PlayoffsServiceTestSuite) TestFirstRoundUsesPlayInResults() {
	bracket := s.seededBracket()

	for _, conf := range []models.Conference{models.ConferenceEast, models.ConferenceWest} {
		bracket = s.recordHomeWin(bracket, s.playInGame(bracket, conf, models.PlayInSlotSevenEight))
		bracket = s.recordHomeWin(bracket, s.playInGame(bracket, conf, models.PlayInSlotNineTen))
		bracket = s.recordHomeWin(bracket, s.playInGame(bracket, conf, models.PlayInSlotEightSeed))
	}

	out, err := s.service.AdvanceRound(&AdvanceRoundInput{Bracket: bracket})
	s.Require().NoError(err)
	bracket = out.Bracket

	s.Equal(models.RoundFirst, bracket.CurrentRound)
	s.Require().Len(bracket.FirstRound, 8)

	// With home wins throughout, the 7 slot goes to the 7 seed and the
	// 8 slot to the 7/8 loser, who hosted the second play-in game.
	matchups := map[string]string{}
	for _, sr := range bracket.FirstRound {
		s.Equal(4, sr.WinsRequired)
		matchups[sr.HomeTeamID] = sr.AwayTeamID
	}
	for _, conf := range []models.Conference{models.ConferenceEast, models.ConferenceWest} {
		s.Equal(fmt.Sprintf("%s-08", conf), matchups[fmt.Sprintf("%s-01", conf)])
		s.Equal(fmt.Sprintf("%s-07", conf), matchups[fmt.Sprintf("%s-02", conf)])
		s.Equal(fmt.Sprintf("%s-06", conf), matchups[fmt.Sprintf("%s-03", conf)])
		s.Equal(fmt.Sprintf("%s-05", conf), matchups[fmt.Sprintf("%s-04", conf)])
	}
}

func (s *PlayoffsServiceTestSuite) TestLaterRoundsPairByIncomingSeed() {
	bracket := s.seededBracket()

	// Home wins through the first round leave seeds 1-4 standing.
	for bracket.CurrentRound != models.RoundConferenceSemis {
		bracket = s.completeCurrentRound(bracket)
		out, err := s.service.AdvanceRound(&AdvanceRoundInput{Bracket: bracket})
		s.Require().NoError(err)
		bracket = out.Bracket
	}

	s.Require().Len(bracket.ConferenceSemis, 4)
	for _, conf := range []models.Conference{models.ConferenceEast, models.ConferenceWest} {
		var pairs [][2]int
		for _, sr := range bracket.ConferenceSemis {
			if sr.Conference == conf {
				pairs = append(pairs, [2]int{sr.HomeSeed, sr.AwaySeed})
			}
		}
		s.ElementsMatch([][2]int{{1, 2}, {3, 4}}, pairs)
	}
}

func (s *PlayoffsServiceTestSuite) TestFinalsHomeCourtTiesGoEast() {
	bracket := s.seededBracket()

	for bracket.CurrentRound != models.RoundFinals {
		bracket = s.completeCurrentRound(bracket)
		out, err := s.service.AdvanceRound(&AdvanceRoundInput{Bracket: bracket})
		s.Require().NoError(err)
		bracket = out.Bracket
	}

	finals := bracket.Finals[0]
	s.Equal("east-01", finals.HomeTeamID, "equal seeds give the east champion home court")
	s.Equal("west-01", finals.AwayTeamID)
}
