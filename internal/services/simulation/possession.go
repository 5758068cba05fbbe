package simulation

import (
	"github.com/KirkDiggler/fastbreak/internal/models"
)

// teamState is one side's live state during a simulation
type teamState struct {
	team   *models.Team
	sched  *rotationSchedule
	mods   map[string]float64
	box    map[string]*models.PlayerBoxScore
	points int
	isHome bool
}

func newTeamState(team *models.Team, mods map[string]float64, isHome bool) (*teamState, error) {
	sched, err := newRotationSchedule(team)
	if err != nil {
		return nil, err
	}
	return &teamState{
		team:   team,
		sched:  sched,
		mods:   mods,
		box:    make(map[string]*models.PlayerBoxScore),
		isHome: isHome,
	}, nil
}

// line returns the player's box score line, creating it on first use
func (t *teamState) line(p *models.Player) *models.PlayerBoxScore {
	if existing, ok := t.box[p.ID]; ok {
		return existing
	}
	created := &models.PlayerBoxScore{PlayerID: p.ID}
	t.box[p.ID] = created
	return created
}

// addPoints is the single path that scores points, keeping the team
// total and the box score in lockstep
func (t *teamState) addPoints(p *models.Player, pts int) {
	t.line(p).Points += pts
	t.points += pts
}

// modifier looks up a coaching/playbook multiplier, defaulting to 1.0
func (t *teamState) modifier(name string) float64 {
	if t.mods == nil {
		return 1.0
	}
	if v, ok := t.mods[name]; ok && v > 0 {
		return v
	}
	return 1.0
}

// avgAttr averages an attribute over the on-court five
func (t *teamState) avgAttr(get func(models.PlayerAttributes) int) int {
	total := 0
	for _, p := range t.sched.onCourt {
		total += get(p.Attributes)
	}
	return total / 5
}

// playPossession resolves one offensive trip for off against def and
// reports whether the offense keeps the ball (offensive rebound)
func (s *service) playPossession(off, def *teamState) bool {
	focal := s.pickFocal(off)
	coef := s.coeffs

	// Turnover check: ball security against the defense's hands.
	defSteals := def.avgAttr(func(a models.PlayerAttributes) int { return a.Steals })
	pTurnover := coef.TurnoverRate * off.modifier(ModifierTurnover)
	pTurnover *= 1 + float64(defSteals-focal.Attributes.BallHandling)/(2*coef.DifferentialWeight)
	if s.roller.Float64() < clampProb(pTurnover, 0.02, 0.40) {
		off.line(focal).Turnovers++
		if s.roller.Float64() < coef.StealShare {
			thief := s.pickWeighted(def, func(a models.PlayerAttributes) int { return a.Steals })
			def.line(thief).Steals++
		}
		return false
	}

	// Shooting foul: two free throws, foul on a random defender.
	if s.roller.Float64() < coef.ShootingFoulRate {
		fouler := def.sched.onCourt[s.roller.Intn(5)]
		def.line(fouler).Fouls++

		ftPct := coef.BaseFreeThrowPct + float64(focal.Attributes.Shooting)/250.0
		line := off.line(focal)
		for i := 0; i < 2; i++ {
			line.FreeThrowsAttempted++
			if s.roller.Float64() < ftPct {
				line.FreeThrowsMade++
				off.addPoints(focal, 1)
			}
		}
		return false
	}

	// Shot selection: natural shooters pull from deep more often.
	attrs := focal.Attributes
	threeBias := float64(attrs.ThreePoint) / float64(attrs.ThreePoint+attrs.Inside+1)
	isThree := s.roller.Float64() < clampProb(coef.ThreeAttemptRate*2*threeBias, 0.05, 0.70)

	base := coef.BaseInsidePct
	skill := attrs.Inside
	if isThree {
		base = coef.BaseThreePct
		skill = attrs.ThreePoint
	}

	defense := def.avgAttr(func(a models.PlayerAttributes) int { return a.Defense })
	pMake := base + float64(skill-defense)/coef.DifferentialWeight
	pMake *= off.modifier(ModifierShooting)
	pMake /= def.modifier(ModifierDefense)
	if off.isHome {
		pMake *= coef.HomeCourtEdge
	}
	pMake = clampProb(pMake, 0.05, 0.95)

	line := off.line(focal)
	line.FieldGoalsAttempted++
	if isThree {
		line.ThreePointersAttempted++
	}

	if s.roller.Float64() < pMake {
		line.FieldGoalsMade++
		if isThree {
			line.ThreePointersMade++
			off.addPoints(focal, 3)
		} else {
			off.addPoints(focal, 2)
		}

		if s.roller.Float64() < coef.AssistRate {
			passer := s.pickWeightedExcluding(off, focal, func(a models.PlayerAttributes) int { return a.Passing })
			if passer != nil {
				off.line(passer).Assists++
			}
		}
		return false
	}

	// Missed shot. Inside misses can be blocked; either way the
	// ball is live on the glass.
	if !isThree {
		defBlocks := def.avgAttr(func(a models.PlayerAttributes) int { return a.Blocks })
		pBlock := coef.BlockRate * (1 + float64(defBlocks-50)/(2*coef.DifferentialWeight))
		if s.roller.Float64() < clampProb(pBlock, 0.01, 0.30) {
			blocker := s.pickWeighted(def, func(a models.PlayerAttributes) int { return a.Blocks })
			def.line(blocker).Blocks++
		}
	}

	offGlass := off.avgAttr(func(a models.PlayerAttributes) int { return a.Rebounding })
	defGlass := def.avgAttr(func(a models.PlayerAttributes) int { return a.Rebounding })
	pOffReb := coef.OffensiveReboundRate * off.modifier(ModifierRebounding)
	pOffReb *= 1 + float64(offGlass-defGlass)/(2*coef.DifferentialWeight)

	if s.roller.Float64() < clampProb(pOffReb, 0.05, 0.50) {
		rebounder := s.pickWeighted(off, func(a models.PlayerAttributes) int { return a.Rebounding })
		off.line(rebounder).Rebounds++
		return true
	}

	rebounder := s.pickWeighted(def, func(a models.PlayerAttributes) int { return a.Rebounding })
	def.line(rebounder).Rebounds++
	return false
}

// pickFocal selects the offensive focal player, weighted by scoring
// and usage attributes
func (s *service) pickFocal(t *teamState) *models.Player {
	return s.pickWeighted(t, func(a models.PlayerAttributes) int {
		return a.Shooting + a.Inside + a.ThreePoint + a.Speed/2
	})
}

// pickWeighted selects one of the on-court five with probability
// proportional to the given attribute weight
func (s *service) pickWeighted(t *teamState, weight func(models.PlayerAttributes) int) *models.Player {
	total := 0
	for _, p := range t.sched.onCourt {
		total += weight(p.Attributes) + 1
	}
	pick := s.roller.Intn(total)
	for _, p := range t.sched.onCourt {
		pick -= weight(p.Attributes) + 1
		if pick < 0 {
			return p
		}
	}
	return t.sched.onCourt[4]
}

// pickWeightedExcluding is pickWeighted over the four teammates of
// the excluded player
func (s *service) pickWeightedExcluding(t *teamState, exclude *models.Player, weight func(models.PlayerAttributes) int) *models.Player {
	total := 0
	for _, p := range t.sched.onCourt {
		if p.ID == exclude.ID {
			continue
		}
		total += weight(p.Attributes) + 1
	}
	if total == 0 {
		return nil
	}
	pick := s.roller.Intn(total)
	for _, p := range t.sched.onCourt {
		if p.ID == exclude.ID {
			continue
		}
		pick -= weight(p.Attributes) + 1
		if pick < 0 {
			return p
		}
	}
	return nil
}

func clampProb(p, lo, hi float64) float64 {
	if p < lo {
		return lo
	}
	if p > hi {
		return hi
	}
	return p
}
