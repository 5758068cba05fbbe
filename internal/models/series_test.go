package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBestOfSeven() *PlayoffSeries {
	return &PlayoffSeries{
		ID:           "series-1",
		Round:        RoundFirst,
		Conference:   ConferenceEast,
		HomeTeamID:   "team-a",
		AwayTeamID:   "team-b",
		HomeSeed:     1,
		AwaySeed:     8,
		WinsRequired: 4,
	}
}

func TestSeriesCompletesAtFourWins(t *testing.T) {
	s := newBestOfSeven()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.RecordResult("game", "team-a"))
		assert.False(t, s.IsComplete, "series must not complete before four wins")
		assert.Empty(t, s.WinnerID)
	}

	require.NoError(t, s.RecordResult("game", "team-a"))
	assert.True(t, s.IsComplete)
	assert.Equal(t, "team-a", s.WinnerID)
	assert.Equal(t, "team-b", s.LoserID())
	assert.Equal(t, 1, s.WinnerSeed())
}

func TestSeriesGoesSevenGames(t *testing.T) {
	s := newBestOfSeven()

	// 3-3 through six games
	for i := 0; i < 3; i++ {
		require.NoError(t, s.RecordResult("game", "team-a"))
		require.NoError(t, s.RecordResult("game", "team-b"))
	}
	assert.False(t, s.IsComplete)
	assert.Len(t, s.GameIDs, 6)

	require.NoError(t, s.RecordResult("game-7", "team-b"))
	assert.True(t, s.IsComplete)
	assert.Equal(t, "team-b", s.WinnerID)
	assert.Len(t, s.GameIDs, 7)
}

func TestSeriesRejectsResultsAfterCompletion(t *testing.T) {
	s := newBestOfSeven()
	for i := 0; i < 4; i++ {
		require.NoError(t, s.RecordResult("game", "team-a"))
	}

	err := s.RecordResult("extra", "team-b")
	assert.ErrorIs(t, err, ErrSeriesComplete)
	assert.Equal(t, 4, s.HomeWins)
	assert.Equal(t, 0, s.AwayWins)
}

func TestSeriesRejectsUnknownTeam(t *testing.T) {
	s := newBestOfSeven()

	err := s.RecordResult("game", "team-z")
	assert.ErrorIs(t, err, ErrTeamNotInSeries)
	assert.Empty(t, s.GameIDs)
}

func TestPlayInSeriesCompletesInOneGame(t *testing.T) {
	s := &PlayoffSeries{
		ID:           "play-in-1",
		Round:        RoundPlayIn,
		PlayInSlot:   PlayInSlotSevenEight,
		HomeTeamID:   "team-7",
		AwayTeamID:   "team-8",
		HomeSeed:     7,
		AwaySeed:     8,
		WinsRequired: 1,
	}

	require.NoError(t, s.RecordResult("game", "team-8"))
	assert.True(t, s.IsComplete)
	assert.Equal(t, "team-8", s.WinnerID)
	assert.Equal(t, "team-7", s.LoserID())
}

func TestBracketCloneIsDeep(t *testing.T) {
	b := &PlayoffBracket{
		SeasonID: "season-1",
		Seeds: map[string]SeedAssignment{
			"team-a": {TeamID: "team-a", Seed: 1, Conference: ConferenceEast},
		},
		FirstRound:   []*PlayoffSeries{newBestOfSeven()},
		CurrentRound: RoundFirst,
	}

	clone := b.Clone()
	require.NoError(t, clone.FirstRound[0].RecordResult("game", "team-a"))
	clone.Seeds["team-b"] = SeedAssignment{TeamID: "team-b", Seed: 2, Conference: ConferenceEast}

	assert.Equal(t, 0, b.FirstRound[0].HomeWins, "clone mutation leaked into the original")
	assert.Len(t, b.Seeds, 1)
}
