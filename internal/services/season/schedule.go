package season

import (
	"context"

	"github.com/KirkDiggler/fastbreak/internal/models"
)

// fullConferenceSize is the league shape that yields an exact
// 82-game slate per team
const fullConferenceSize = 15

// GenerateSchedule builds the regular-season slate. With two
// conferences of 15, every team gets exactly 82 games: two against
// each inter-conference opponent, four against its ten nearest
// conference rivals, and three against the remaining four. Smaller
// leagues fall back to three games per conference opponent.
func (s *service) GenerateSchedule(ctx context.Context, input *GenerateScheduleInput) (*GenerateScheduleOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if len(input.Teams) < 2 {
		return nil, ErrNoTeams
	}

	now := s.clock.Now()

	byConf := make(map[models.Conference][]*models.Team)
	for _, t := range input.Teams {
		byConf[t.Conference] = append(byConf[t.Conference], t)
	}

	var games []*models.Game

	addPair := func(a, b *models.Team, count int, aStartsHome bool) {
		for k := 0; k < count; k++ {
			home, away := a, b
			if (k%2 == 0) != aStartsHome {
				home, away = b, a
			}
			games = append(games, &models.Game{
				ID:         s.uuider.NewUUID(),
				SeasonID:   input.SeasonID,
				HomeTeamID: home.ID,
				AwayTeamID: away.ID,
				CreatedAt:  now,
			})
		}
	}

	// Intra-conference games.
	for _, teams := range byConf {
		n := len(teams)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				count := 3
				if n == fullConferenceSize {
					d := j - i
					if n-d < d {
						d = n - d
					}
					if d <= 5 {
						count = 4
					}
				}
				addPair(teams[i], teams[j], count, (i+j)%2 == 0)
			}
		}
	}

	// Inter-conference games, two per pairing.
	east := byConf[models.ConferenceEast]
	west := byConf[models.ConferenceWest]
	for i, a := range east {
		for j, b := range west {
			addPair(a, b, 2, (i+j)%2 == 0)
		}
	}

	return &GenerateScheduleOutput{Games: games}, nil
}
