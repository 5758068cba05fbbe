package simulation

import (
	"fmt"

	"github.com/KirkDiggler/fastbreak/internal/models"
)

// rotationSchedule tracks who is on the floor and how each player's
// accumulated time compares to their minute target. Substitutions
// only happen at checkpoints, where refresh is called.
type rotationSchedule struct {
	team *models.Team

	// targets and played are tracked in seconds
	targets map[string]int
	played  map[string]int

	// byPosition lists eligible player IDs per position, depth order
	byPosition map[models.Position][]string

	// onCourt holds the five active players in position order
	onCourt [5]*models.Player
}

// newRotationSchedule builds the schedule from a team's rotation
// plan. A team without a plan rides its starting five all game.
func newRotationSchedule(team *models.Team) (*rotationSchedule, error) {
	s := &rotationSchedule{
		team:       team,
		targets:    make(map[string]int),
		played:     make(map[string]int),
		byPosition: make(map[models.Position][]string),
	}

	if team.Rotation == nil {
		for i, pos := range models.AllPositions {
			id := team.StartingLineup[i]
			if team.PlayerByID(id) == nil {
				return nil, fmt.Errorf("%w: %s", ErrMissingLineup, id)
			}
			s.byPosition[pos] = []string{id}
			s.targets[id] = models.RegulationMinutes * 60
		}
	} else {
		for _, pos := range models.AllPositions {
			for _, e := range team.Rotation.PlayersAtPosition(pos) {
				if team.PlayerByID(e.PlayerID) == nil {
					return nil, fmt.Errorf("%w: %s", ErrMissingLineup, e.PlayerID)
				}
				s.byPosition[pos] = append(s.byPosition[pos], e.PlayerID)
				s.targets[e.PlayerID] = team.Rotation.PlayerMinutes[e.PlayerID] * 60
			}
		}
	}

	s.refresh()
	return s, nil
}

// refresh re-picks the on-court five: at each position, the eligible
// player furthest below their minute target takes the floor. Ties go
// to the shallower depth entry. In overtime every target is spent, so
// the least-over player (the starter, in practice) stays out there.
func (s *rotationSchedule) refresh() {
	for i, pos := range models.AllPositions {
		ids := s.byPosition[pos]
		best := ids[0]
		bestRemaining := s.targets[best] - s.played[best]
		for _, id := range ids[1:] {
			if remaining := s.targets[id] - s.played[id]; remaining > bestRemaining {
				best = id
				bestRemaining = remaining
			}
		}
		s.onCourt[i] = s.team.PlayerByID(best)
	}
}

// addSeconds credits elapsed game time to the five on the floor
func (s *rotationSchedule) addSeconds(sec int) {
	for _, p := range s.onCourt {
		s.played[p.ID] += sec
	}
}

// secondsPlayed returns a player's accumulated floor time
func (s *rotationSchedule) secondsPlayed(id string) int {
	return s.played[id]
}
