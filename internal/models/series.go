package models

import "errors"

// PlayoffRound identifies a stage of the postseason
type PlayoffRound string

const (
	// RoundPlayIn is the play-in mini tournament among seeds 7-10
	RoundPlayIn PlayoffRound = "play_in"

	// RoundFirst is the best-of-7 first round
	RoundFirst PlayoffRound = "first_round"

	// RoundConferenceSemis is the conference semifinals
	RoundConferenceSemis PlayoffRound = "conf_semis"

	// RoundConferenceFinals is the conference finals
	RoundConferenceFinals PlayoffRound = "conf_finals"

	// RoundFinals is the championship series
	RoundFinals PlayoffRound = "finals"

	// RoundComplete means the bracket has crowned a champion
	RoundComplete PlayoffRound = "complete"
)

// PlayInSlot identifies which play-in game a series represents
type PlayInSlot string

const (
	// PlayInSlotSevenEight is the 7-seed vs 8-seed game; its winner
	// takes the conference's 7-seed playoff slot
	PlayInSlotSevenEight PlayInSlot = "seven_eight"

	// PlayInSlotNineTen is the 9-seed vs 10-seed game; its loser is
	// eliminated
	PlayInSlotNineTen PlayInSlot = "nine_ten"

	// PlayInSlotEightSeed is the synthesized game between the 7/8
	// loser and the 9/10 winner; its winner takes the 8-seed slot
	PlayInSlotEightSeed PlayInSlot = "eight_seed"
)

// ErrSeriesComplete is returned when a result is recorded against a
// finished series
var ErrSeriesComplete = errors.New("series is already complete")

// ErrTeamNotInSeries is returned when a recorded winner belongs to
// neither side of the series
var ErrTeamNotInSeries = errors.New("team is not part of this series")

// PlayoffSeries is a head-to-head playoff matchup. Regular rounds are
// best-of-7 (WinsRequired 4); play-in games are one-game series
// (WinsRequired 1).
type PlayoffSeries struct {
	// ID is the unique identifier for the series
	ID string

	// Round is the playoff round the series belongs to
	Round PlayoffRound

	// Conference is the conference the series is played in. The
	// finals series spans both and carries an empty conference.
	Conference Conference

	// PlayInSlot identifies the play-in game, empty outside play-in
	PlayInSlot PlayInSlot

	// HomeTeamID is the better-seeded side with home-court advantage
	HomeTeamID string

	// AwayTeamID is the worse-seeded side
	AwayTeamID string

	// HomeSeed is the home side's seed entering the series
	HomeSeed int

	// AwaySeed is the away side's seed entering the series
	AwaySeed int

	// HomeWins counts games won by the home side
	HomeWins int

	// AwayWins counts games won by the away side
	AwayWins int

	// GameIDs lists the series' games in the order they were played
	GameIDs []string

	// WinsRequired is how many wins complete the series
	WinsRequired int

	// IsComplete is true once either side reaches WinsRequired
	IsComplete bool

	// WinnerID is set when the series completes
	WinnerID string
}

// RecordResult folds one decided game into the series, completing it
// the moment either counter reaches WinsRequired
func (s *PlayoffSeries) RecordResult(gameID, winnerTeamID string) error {
	if s.IsComplete {
		return ErrSeriesComplete
	}

	switch winnerTeamID {
	case s.HomeTeamID:
		s.HomeWins++
	case s.AwayTeamID:
		s.AwayWins++
	default:
		return ErrTeamNotInSeries
	}

	s.GameIDs = append(s.GameIDs, gameID)

	if s.HomeWins >= s.WinsRequired {
		s.IsComplete = true
		s.WinnerID = s.HomeTeamID
	} else if s.AwayWins >= s.WinsRequired {
		s.IsComplete = true
		s.WinnerID = s.AwayTeamID
	}

	return nil
}

// LoserID returns the defeated team once the series is complete
func (s *PlayoffSeries) LoserID() string {
	if !s.IsComplete {
		return ""
	}
	if s.WinnerID == s.HomeTeamID {
		return s.AwayTeamID
	}
	return s.HomeTeamID
}

// WinnerSeed returns the seed the winner carried into the series
func (s *PlayoffSeries) WinnerSeed() int {
	if !s.IsComplete {
		return 0
	}
	if s.WinnerID == s.HomeTeamID {
		return s.HomeSeed
	}
	return s.AwaySeed
}

// Clone returns a deep copy of the series
func (s *PlayoffSeries) Clone() *PlayoffSeries {
	if s == nil {
		return nil
	}
	out := *s
	out.GameIDs = make([]string, len(s.GameIDs))
	copy(out.GameIDs, s.GameIDs)
	return &out
}
