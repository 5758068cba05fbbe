package models

// RegulationMinutes is the length of a game in minutes
const RegulationMinutes = 48

// TotalRotationMinutes is the full allocation across five positions
const TotalRotationMinutes = 5 * RegulationMinutes

// DepthChartEntry assigns a player to a position at a depth rank.
// Depth 1 is the starter at that position.
type DepthChartEntry struct {
	// PlayerID is the player filling the slot
	PlayerID string

	// Position is the slot being filled
	Position Position

	// Depth is the rank at the position, starting at 1
	Depth int
}

// RotationConfig is a team's minute plan: which players play, where,
// and for how long. A valid config allocates exactly 48 minutes per
// position and 240 in total.
type RotationConfig struct {
	// RotationSize is how many players are in the rotation (6-10)
	RotationSize int

	// PlayerMinutes maps player ID to allotted minutes
	PlayerMinutes map[string]int

	// DepthChart orders players by position and depth
	DepthChart []DepthChartEntry
}

// PlayersAtPosition returns the depth chart entries for a position,
// ordered by depth
func (c *RotationConfig) PlayersAtPosition(pos Position) []DepthChartEntry {
	var out []DepthChartEntry
	for _, e := range c.DepthChart {
		if e.Position == pos {
			out = append(out, e)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Depth < out[j-1].Depth; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// MinutesAtPosition sums the minutes of every player slotted at the
// given position
func (c *RotationConfig) MinutesAtPosition(pos Position) int {
	total := 0
	for _, e := range c.DepthChart {
		if e.Position == pos {
			total += c.PlayerMinutes[e.PlayerID]
		}
	}
	return total
}

// TotalMinutes sums every allotted minute in the plan
func (c *RotationConfig) TotalMinutes() int {
	total := 0
	for _, m := range c.PlayerMinutes {
		total += m
	}
	return total
}

// Clone returns a deep copy of the config
func (c *RotationConfig) Clone() *RotationConfig {
	if c == nil {
		return nil
	}
	out := &RotationConfig{
		RotationSize:  c.RotationSize,
		PlayerMinutes: make(map[string]int, len(c.PlayerMinutes)),
		DepthChart:    make([]DepthChartEntry, len(c.DepthChart)),
	}
	for id, m := range c.PlayerMinutes {
		out.PlayerMinutes[id] = m
	}
	copy(out.DepthChart, c.DepthChart)
	return out
}
