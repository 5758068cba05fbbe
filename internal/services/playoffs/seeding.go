package playoffs

import (
	"sort"

	"github.com/KirkDiggler/fastbreak/internal/models"
)

// CalculateSeeding derives each conference's dense 1..N seeds from
// completed regular-season games. Ordering is wins descending, then
// win percentage descending, then team name ascending — a total
// order, so seeds are never duplicated or skipped.
//
// Precondition: every regular-season game has been played. Seeding a
// partial season silently ranks whatever results exist.
func (s *service) CalculateSeeding(input *CalculateSeedingInput) (*CalculateSeedingOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	records := make(map[string]*models.SeasonRecord, len(input.Teams))
	names := make(map[string]string, len(input.Teams))
	conferences := make(map[string]models.Conference, len(input.Teams))
	for _, t := range input.Teams {
		records[t.ID] = &models.SeasonRecord{TeamID: t.ID}
		names[t.ID] = t.Name
		conferences[t.ID] = t.Conference
	}

	for _, g := range input.Games {
		if !g.Played || g.IsPlayoffGame {
			continue
		}
		winner := g.WinnerID()
		loser := g.LoserID()
		if r, ok := records[winner]; ok {
			r.Wins++
		}
		if r, ok := records[loser]; ok {
			r.Losses++
		}
	}

	seeds := make(map[models.Conference][]*SeedEntry)
	for id, r := range records {
		entry := &SeedEntry{
			TeamID: id,
			Wins:   r.Wins,
			Losses: r.Losses,
			WinPct: r.WinPct(),
		}
		conf := conferences[id]
		seeds[conf] = append(seeds[conf], entry)
	}

	for conf, entries := range seeds {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Wins != entries[j].Wins {
				return entries[i].Wins > entries[j].Wins
			}
			if entries[i].WinPct != entries[j].WinPct {
				return entries[i].WinPct > entries[j].WinPct
			}
			return names[entries[i].TeamID] < names[entries[j].TeamID]
		})
		for i, e := range entries {
			e.Seed = i + 1
		}
		seeds[conf] = entries
	}

	return &CalculateSeedingOutput{Seeds: seeds}, nil
}
