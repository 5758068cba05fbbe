package models

// SeedAssignment records a team's playoff seed and conference
type SeedAssignment struct {
	// TeamID is the seeded team
	TeamID string

	// Seed is the team's seed within its conference (1-15)
	Seed int

	// Conference is the team's conference
	Conference Conference
}

// PlayoffBracket is the full postseason state: seeds, play-in games,
// and the four elimination rounds. Brackets are updated by
// replacement: every transition clones the bracket and returns a new
// snapshot, so callers can simulate, compare, and commit.
type PlayoffBracket struct {
	// SeasonID is the season the bracket belongs to
	SeasonID string

	// Seeds maps team ID to its seed assignment
	Seeds map[string]SeedAssignment

	// PlayInGames holds the play-in series: two per conference up
	// front, plus one synthesized 8-seed game per conference once
	// both initial games are decided
	PlayInGames []*PlayoffSeries

	// FirstRound holds the eight first-round series
	FirstRound []*PlayoffSeries

	// ConferenceSemis holds the four conference semifinal series
	ConferenceSemis []*PlayoffSeries

	// ConferenceFinals holds the two conference final series
	ConferenceFinals []*PlayoffSeries

	// Finals holds the championship series
	Finals []*PlayoffSeries

	// CurrentRound is the round currently in progress
	CurrentRound PlayoffRound

	// ChampionID is set once the finals series completes
	ChampionID string
}

// TeamBySeed returns the team holding the given seed in a conference
func (b *PlayoffBracket) TeamBySeed(conf Conference, seed int) (string, bool) {
	for id, sa := range b.Seeds {
		if sa.Conference == conf && sa.Seed == seed {
			return id, true
		}
	}
	return "", false
}

// SeedOf returns a team's seed assignment
func (b *PlayoffBracket) SeedOf(teamID string) (SeedAssignment, bool) {
	sa, ok := b.Seeds[teamID]
	return sa, ok
}

// RoundSeries returns the series list for a round. The play-in list
// includes any synthesized 8-seed games.
func (b *PlayoffBracket) RoundSeries(round PlayoffRound) []*PlayoffSeries {
	switch round {
	case RoundPlayIn:
		return b.PlayInGames
	case RoundFirst:
		return b.FirstRound
	case RoundConferenceSemis:
		return b.ConferenceSemis
	case RoundConferenceFinals:
		return b.ConferenceFinals
	case RoundFinals:
		return b.Finals
	default:
		return nil
	}
}

// SeriesByID finds a series anywhere in the bracket
func (b *PlayoffBracket) SeriesByID(seriesID string) *PlayoffSeries {
	for _, round := range [][]*PlayoffSeries{
		b.PlayInGames, b.FirstRound, b.ConferenceSemis, b.ConferenceFinals, b.Finals,
	} {
		for _, s := range round {
			if s.ID == seriesID {
				return s
			}
		}
	}
	return nil
}

// SeriesForTeam returns the current-round series involving the team,
// or nil if the team is not playing in the current round
func (b *PlayoffBracket) SeriesForTeam(teamID string) *PlayoffSeries {
	for _, s := range b.RoundSeries(b.CurrentRound) {
		if s.HomeTeamID == teamID || s.AwayTeamID == teamID {
			return s
		}
	}
	return nil
}

// Clone returns a deep copy of the bracket
func (b *PlayoffBracket) Clone() *PlayoffBracket {
	if b == nil {
		return nil
	}
	out := &PlayoffBracket{
		SeasonID:     b.SeasonID,
		Seeds:        make(map[string]SeedAssignment, len(b.Seeds)),
		CurrentRound: b.CurrentRound,
		ChampionID:   b.ChampionID,
	}
	for id, sa := range b.Seeds {
		out.Seeds[id] = sa
	}
	out.PlayInGames = cloneSeriesList(b.PlayInGames)
	out.FirstRound = cloneSeriesList(b.FirstRound)
	out.ConferenceSemis = cloneSeriesList(b.ConferenceSemis)
	out.ConferenceFinals = cloneSeriesList(b.ConferenceFinals)
	out.Finals = cloneSeriesList(b.Finals)
	return out
}

func cloneSeriesList(in []*PlayoffSeries) []*PlayoffSeries {
	if in == nil {
		return nil
	}
	out := make([]*PlayoffSeries, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}
