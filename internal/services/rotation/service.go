package rotation

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/fastbreak/internal/models"
)

// minuteSplit is the starter/backup minute pair at a backed position
type minuteSplit struct {
	starter int
	backup  int
}

// presetSplits maps rotation size to the per-position minute splits.
// Positions without a backup keep their starter on the floor for the
// full 48, so each position always sums to 48 and the plan to 240.
var presetSplits = map[int]minuteSplit{
	6:  {starter: 36, backup: 12},
	8:  {starter: 34, backup: 14},
	9:  {starter: 34, backup: 14},
	10: {starter: 34, backup: 14},
}

// service implements the Service interface
type service struct{}

// New creates a new rotation service
func New() *service {
	return &service{}
}

// ValidateRotation checks a rotation config against a roster and
// returns every violation found
func (s *service) ValidateRotation(input *ValidateRotationInput) *ValidateRotationOutput {
	out := &ValidateRotationOutput{}

	if input == nil || input.Config == nil {
		out.Violations = append(out.Violations, Violation{
			Code:    ViolationRotationSize,
			Message: "rotation config is missing",
		})
		return out
	}

	cfg := input.Config

	rosterIDs := make(map[string]bool, len(input.Roster))
	for _, p := range input.Roster {
		rosterIDs[p.ID] = true
	}

	// Every player referenced by the plan must be on the roster.
	for id := range cfg.PlayerMinutes {
		if !rosterIDs[id] {
			out.Violations = append(out.Violations, Violation{
				Code:     ViolationPlayerNotOnRoster,
				Message:  fmt.Sprintf("player %s has minutes but is not on the roster", id),
				PlayerID: id,
			})
		}
	}

	chartPlayers := make(map[string]bool)
	depthSeen := make(map[models.Position]map[int]bool)
	for _, e := range cfg.DepthChart {
		chartPlayers[e.PlayerID] = true

		if !rosterIDs[e.PlayerID] {
			out.Violations = append(out.Violations, Violation{
				Code:     ViolationPlayerNotOnRoster,
				Message:  fmt.Sprintf("player %s is in the depth chart but not on the roster", e.PlayerID),
				PlayerID: e.PlayerID,
				Position: e.Position,
			})
		}

		if e.Depth < 1 {
			out.Violations = append(out.Violations, Violation{
				Code:     ViolationBadDepth,
				Message:  fmt.Sprintf("player %s at %s has depth %d; depth starts at 1", e.PlayerID, e.Position, e.Depth),
				PlayerID: e.PlayerID,
				Position: e.Position,
			})
		} else {
			if depthSeen[e.Position] == nil {
				depthSeen[e.Position] = make(map[int]bool)
			}
			if depthSeen[e.Position][e.Depth] {
				out.Violations = append(out.Violations, Violation{
					Code:     ViolationBadDepth,
					Message:  fmt.Sprintf("position %s has two players at depth %d", e.Position, e.Depth),
					PlayerID: e.PlayerID,
					Position: e.Position,
				})
			}
			depthSeen[e.Position][e.Depth] = true
		}

		if _, ok := cfg.PlayerMinutes[e.PlayerID]; !ok {
			out.Violations = append(out.Violations, Violation{
				Code:     ViolationMissingMinutes,
				Message:  fmt.Sprintf("player %s is in the depth chart but has no minutes", e.PlayerID),
				PlayerID: e.PlayerID,
				Position: e.Position,
			})
		}
	}

	// Every position must be covered and allocated exactly 48 minutes.
	for _, pos := range models.AllPositions {
		entries := cfg.PlayersAtPosition(pos)
		if len(entries) == 0 {
			out.Violations = append(out.Violations, Violation{
				Code:     ViolationPositionUncovered,
				Message:  fmt.Sprintf("no player is assigned to %s", pos),
				Position: pos,
			})
			continue
		}

		if mins := cfg.MinutesAtPosition(pos); mins != models.RegulationMinutes {
			out.Violations = append(out.Violations, Violation{
				Code:     ViolationPositionMinutes,
				Message:  fmt.Sprintf("%s is allocated %d minutes; must be exactly %d", pos, mins, models.RegulationMinutes),
				Position: pos,
			})
		}
	}

	if total := cfg.TotalMinutes(); total != models.TotalRotationMinutes {
		out.Violations = append(out.Violations, Violation{
			Code:    ViolationTotalMinutes,
			Message: fmt.Sprintf("plan allocates %d minutes; must be exactly %d", total, models.TotalRotationMinutes),
		})
	}

	if len(chartPlayers) != cfg.RotationSize {
		out.Violations = append(out.Violations, Violation{
			Code:    ViolationRotationSize,
			Message: fmt.Sprintf("rotation size is %d but the depth chart holds %d players", cfg.RotationSize, len(chartPlayers)),
		})
	}

	return out
}

// GeneratePreset builds a legal rotation of the requested size from a
// ranked roster: starters keep their lineup slots, the best remaining
// players fill backup slots, and minutes follow a fixed per-size split
func (s *service) GeneratePreset(input *GeneratePresetInput) (*GeneratePresetOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	split, ok := presetSplits[input.Size]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSize, input.Size)
	}

	if len(input.Roster) < input.Size {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrRosterTooSmall, input.Size, len(input.Roster))
	}

	byID := make(map[string]*models.Player, len(input.Roster))
	for _, p := range input.Roster {
		byID[p.ID] = p
	}

	starters := make(map[string]bool, 5)
	for _, id := range input.StartingLineup {
		if byID[id] == nil {
			return nil, fmt.Errorf("%w: %s", ErrIncompleteLineup, id)
		}
		starters[id] = true
	}

	// Rank the bench by overall rating, ID as the deterministic
	// tie-break.
	var bench []*models.Player
	for _, p := range input.Roster {
		if !starters[p.ID] {
			bench = append(bench, p)
		}
	}
	sort.Slice(bench, func(i, j int) bool {
		if bench[i].Overall() != bench[j].Overall() {
			return bench[i].Overall() > bench[j].Overall()
		}
		return bench[i].ID < bench[j].ID
	})
	bench = bench[:input.Size-5]

	cfg := &models.RotationConfig{
		RotationSize:  input.Size,
		PlayerMinutes: make(map[string]int, input.Size),
	}

	for i, pos := range models.AllPositions {
		cfg.DepthChart = append(cfg.DepthChart, models.DepthChartEntry{
			PlayerID: input.StartingLineup[i],
			Position: pos,
			Depth:    1,
		})
	}

	// Backups prefer their natural position; a taken slot falls
	// through to the first unbacked position in chart order.
	backed := make(map[models.Position]bool, len(bench))
	for _, p := range bench {
		pos := p.Position
		if backed[pos] {
			for _, candidate := range models.AllPositions {
				if !backed[candidate] {
					pos = candidate
					break
				}
			}
		}
		backed[pos] = true
		cfg.DepthChart = append(cfg.DepthChart, models.DepthChartEntry{
			PlayerID: p.ID,
			Position: pos,
			Depth:    2,
		})
	}

	for i, pos := range models.AllPositions {
		if backed[pos] {
			cfg.PlayerMinutes[input.StartingLineup[i]] = split.starter
		} else {
			cfg.PlayerMinutes[input.StartingLineup[i]] = models.RegulationMinutes
		}
	}
	for _, e := range cfg.DepthChart {
		if e.Depth == 2 {
			cfg.PlayerMinutes[e.PlayerID] = split.backup
		}
	}

	return &GeneratePresetOutput{Config: cfg}, nil
}
