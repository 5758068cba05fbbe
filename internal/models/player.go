package models

// Position identifies one of the five on-court positions
type Position string

const (
	// PositionPointGuard is the primary ball handler
	PositionPointGuard Position = "PG"

	// PositionShootingGuard is the perimeter scoring guard
	PositionShootingGuard Position = "SG"

	// PositionSmallForward is the wing position
	PositionSmallForward Position = "SF"

	// PositionPowerForward is the interior forward position
	PositionPowerForward Position = "PF"

	// PositionCenter anchors the paint
	PositionCenter Position = "C"
)

// AllPositions lists the five positions in depth chart order
var AllPositions = []Position{
	PositionPointGuard,
	PositionShootingGuard,
	PositionSmallForward,
	PositionPowerForward,
	PositionCenter,
}

// PlayerAttributes holds a player's skill ratings on a 0-100 scale
type PlayerAttributes struct {
	// Shooting is overall field goal and free throw touch
	Shooting int

	// ThreePoint is accuracy from behind the arc
	ThreePoint int

	// Inside is finishing and post scoring around the rim
	Inside int

	// Passing is court vision and assist creation
	Passing int

	// BallHandling is dribbling and turnover avoidance
	BallHandling int

	// Rebounding is boxing out and chasing missed shots
	Rebounding int

	// Defense is on-ball and team defensive impact
	Defense int

	// Blocks is shot blocking around the rim
	Blocks int

	// Steals is the ability to force turnovers
	Steals int

	// Speed is pace and transition ability
	Speed int
}

// Clamped returns a copy with every rating bounded to [0,100]
func (a PlayerAttributes) Clamped() PlayerAttributes {
	a.Shooting = clampRating(a.Shooting)
	a.ThreePoint = clampRating(a.ThreePoint)
	a.Inside = clampRating(a.Inside)
	a.Passing = clampRating(a.Passing)
	a.BallHandling = clampRating(a.BallHandling)
	a.Rebounding = clampRating(a.Rebounding)
	a.Defense = clampRating(a.Defense)
	a.Blocks = clampRating(a.Blocks)
	a.Steals = clampRating(a.Steals)
	a.Speed = clampRating(a.Speed)
	return a
}

func clampRating(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Player represents a roster player. Players are read-only during a
// game simulation; development and aging happen elsewhere.
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the display name of the player
	Name string

	// Position is the player's natural position
	Position Position

	// Attributes are the player's skill ratings
	Attributes PlayerAttributes
}

// Overall is the aggregate rating used to rank players for rotation
// presets and focal-player selection
func (p *Player) Overall() int {
	a := p.Attributes
	sum := a.Shooting + a.ThreePoint + a.Inside + a.Passing + a.BallHandling +
		a.Rebounding + a.Defense + a.Blocks + a.Steals + a.Speed
	return sum / 10
}
