package models

// Conference identifies which conference a team plays in
type Conference string

const (
	// ConferenceEast is the Eastern Conference
	ConferenceEast Conference = "east"

	// ConferenceWest is the Western Conference
	ConferenceWest Conference = "west"
)

// MinRosterSize is the smallest legal roster
const MinRosterSize = 13

// MaxRosterSize is the largest legal roster
const MaxRosterSize = 17

// Team represents a franchise with its roster and rotation plan
type Team struct {
	// ID is the unique identifier for the team
	ID string

	// Name is the display name of the team
	Name string

	// Conference is the conference the team belongs to
	Conference Conference

	// Roster contains the team's players (13-17)
	Roster []*Player

	// StartingLineup holds the player IDs of the five starters,
	// indexed in AllPositions order
	StartingLineup [5]string

	// Rotation is the optional minute plan. A team without one rides
	// its starting lineup for the full game.
	Rotation *RotationConfig
}

// PlayerByID returns the roster player with the given ID, or nil
func (t *Team) PlayerByID(id string) *Player {
	for _, p := range t.Roster {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Starters returns the starting five as players, in position order
func (t *Team) Starters() [5]*Player {
	var out [5]*Player
	for i, id := range t.StartingLineup {
		out[i] = t.PlayerByID(id)
	}
	return out
}
