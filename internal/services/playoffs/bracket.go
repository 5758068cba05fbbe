package playoffs

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/fastbreak/internal/models"
)

// bracketConferences is the order conferences are laid out in every
// round list
var bracketConferences = []models.Conference{models.ConferenceEast, models.ConferenceWest}

// firstRoundMatchups pairs seeds for the best-of-7 first round
var firstRoundMatchups = [4][2]int{{1, 8}, {2, 7}, {3, 6}, {4, 5}}

// GenerateBracket builds a fresh bracket in the play-in round: the
// 7v8 and 9v10 games for each conference, generated directly from
// seeds. A conference missing any of seeds 1-10 fails loudly rather
// than producing a malformed matchup.
func (s *service) GenerateBracket(input *GenerateBracketInput) (*GenerateBracketOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	bracket := &models.PlayoffBracket{
		SeasonID:     input.SeasonID,
		Seeds:        make(map[string]models.SeedAssignment),
		CurrentRound: models.RoundPlayIn,
	}

	for _, conf := range bracketConferences {
		bySeed := make(map[int]string)
		for _, e := range input.Seeds[conf] {
			bracket.Seeds[e.TeamID] = models.SeedAssignment{
				TeamID:     e.TeamID,
				Seed:       e.Seed,
				Conference: conf,
			}
			bySeed[e.Seed] = e.TeamID
		}

		for seed := 1; seed <= playoffTeamsPerConference; seed++ {
			if bySeed[seed] == "" {
				return nil, fmt.Errorf("%w: %s seed %d", ErrIncompleteSeeding, conf, seed)
			}
		}

		bracket.PlayInGames = append(bracket.PlayInGames,
			s.newSeries(models.RoundPlayIn, conf, models.PlayInSlotSevenEight,
				bySeed[7], 7, bySeed[8], 8, 1),
			s.newSeries(models.RoundPlayIn, conf, models.PlayInSlotNineTen,
				bySeed[9], 9, bySeed[10], 10, 1),
		)
	}

	return &GenerateBracketOutput{Bracket: bracket}, nil
}

// IsRoundComplete reports whether the current round has every series
// decided. The play-in round also requires both synthesized 8-seed
// games to exist, since the round cannot resolve without them.
func (s *service) IsRoundComplete(bracket *models.PlayoffBracket) bool {
	if bracket == nil {
		return false
	}
	if bracket.CurrentRound == models.RoundComplete {
		return true
	}

	series := bracket.RoundSeries(bracket.CurrentRound)

	expected := map[models.PlayoffRound]int{
		models.RoundPlayIn:           6,
		models.RoundFirst:            8,
		models.RoundConferenceSemis:  4,
		models.RoundConferenceFinals: 2,
		models.RoundFinals:           1,
	}[bracket.CurrentRound]

	if len(series) != expected {
		return false
	}
	for _, sr := range series {
		if !sr.IsComplete {
			return false
		}
	}
	return true
}

// AdvanceRound moves a completed round forward on a new snapshot.
// An incomplete round is refused: the input bracket is returned in
// the error path untouched, so callers can retry safely.
func (s *service) AdvanceRound(input *AdvanceRoundInput) (*AdvanceRoundOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Bracket == nil {
		return nil, ErrNilBracket
	}
	if input.Bracket.CurrentRound == models.RoundComplete {
		return nil, ErrBracketComplete
	}
	if !s.IsRoundComplete(input.Bracket) {
		return nil, ErrRoundNotComplete
	}

	bracket := input.Bracket.Clone()

	switch bracket.CurrentRound {
	case models.RoundPlayIn:
		if err := s.populateFirstRound(bracket); err != nil {
			return nil, err
		}
		bracket.CurrentRound = models.RoundFirst

	case models.RoundFirst:
		bracket.ConferenceSemis = s.pairWinners(bracket.FirstRound, models.RoundConferenceSemis)
		bracket.CurrentRound = models.RoundConferenceSemis

	case models.RoundConferenceSemis:
		bracket.ConferenceFinals = s.pairWinners(bracket.ConferenceSemis, models.RoundConferenceFinals)
		bracket.CurrentRound = models.RoundConferenceFinals

	case models.RoundConferenceFinals:
		bracket.Finals = []*models.PlayoffSeries{s.buildFinals(bracket)}
		bracket.CurrentRound = models.RoundFinals

	case models.RoundFinals:
		bracket.ChampionID = bracket.Finals[0].WinnerID
		bracket.CurrentRound = models.RoundComplete
	}

	return &AdvanceRoundOutput{Bracket: bracket}, nil
}

// populateFirstRound resolves the play-in into the two final seeds
// and creates the eight best-of-7 series
func (s *service) populateFirstRound(bracket *models.PlayoffBracket) error {
	for _, conf := range bracketConferences {
		entrants := make(map[int]string)
		for seed := 1; seed <= 6; seed++ {
			id, ok := bracket.TeamBySeed(conf, seed)
			if !ok {
				return fmt.Errorf("%w: %s seed %d", ErrIncompleteSeeding, conf, seed)
			}
			entrants[seed] = id
		}

		for _, g := range bracket.PlayInGames {
			if g.Conference != conf {
				continue
			}
			switch g.PlayInSlot {
			case models.PlayInSlotSevenEight:
				// winner locks up the 7 slot
				entrants[7] = g.WinnerID
			case models.PlayInSlotEightSeed:
				entrants[8] = g.WinnerID
			}
		}

		for _, m := range firstRoundMatchups {
			high, low := m[0], m[1]
			bracket.FirstRound = append(bracket.FirstRound,
				s.newSeries(models.RoundFirst, conf, "",
					entrants[high], high, entrants[low], low, 4))
		}
	}
	return nil
}

// pairWinners builds the next round within each conference: winners
// are ordered by the seed they carried in, and the lowest seed plays
// the next-lowest remaining seed.
func (s *service) pairWinners(prior []*models.PlayoffSeries, round models.PlayoffRound) []*models.PlayoffSeries {
	var next []*models.PlayoffSeries

	for _, conf := range bracketConferences {
		type advancing struct {
			teamID string
			seed   int
		}
		var winners []advancing
		for _, sr := range prior {
			if sr.Conference != conf {
				continue
			}
			winners = append(winners, advancing{teamID: sr.WinnerID, seed: sr.WinnerSeed()})
		}

		sort.Slice(winners, func(i, j int) bool {
			return winners[i].seed < winners[j].seed
		})

		for i := 0; i+1 < len(winners); i += 2 {
			next = append(next, s.newSeries(round, conf, "",
				winners[i].teamID, winners[i].seed,
				winners[i+1].teamID, winners[i+1].seed, 4))
		}
	}

	return next
}

// buildFinals pairs the two conference champions. Home court goes to
// the better seed; on equal seeds the East champion hosts.
func (s *service) buildFinals(bracket *models.PlayoffBracket) *models.PlayoffSeries {
	east := bracket.ConferenceFinals[0]
	west := bracket.ConferenceFinals[1]
	if east.Conference != models.ConferenceEast {
		east, west = west, east
	}

	home, homeSeed := east.WinnerID, east.WinnerSeed()
	away, awaySeed := west.WinnerID, west.WinnerSeed()
	if west.WinnerSeed() < east.WinnerSeed() {
		home, homeSeed = west.WinnerID, west.WinnerSeed()
		away, awaySeed = east.WinnerID, east.WinnerSeed()
	}

	series := s.newSeries(models.RoundFinals, "", "", home, homeSeed, away, awaySeed, 4)
	return series
}

// newSeries builds a series with home court for the better seed
func (s *service) newSeries(round models.PlayoffRound, conf models.Conference, slot models.PlayInSlot,
	highID string, highSeed int, lowID string, lowSeed int, winsRequired int) *models.PlayoffSeries {

	homeID, homeSeed := highID, highSeed
	awayID, awaySeed := lowID, lowSeed
	if lowSeed < highSeed {
		homeID, homeSeed = lowID, lowSeed
		awayID, awaySeed = highID, highSeed
	}

	return &models.PlayoffSeries{
		ID:           s.uuider.NewUUID(),
		Round:        round,
		Conference:   conf,
		PlayInSlot:   slot,
		HomeTeamID:   homeID,
		AwayTeamID:   awayID,
		HomeSeed:     homeSeed,
		AwaySeed:     awaySeed,
		WinsRequired: winsRequired,
	}
}
