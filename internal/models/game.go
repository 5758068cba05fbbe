package models

import (
	"time"
)

// PlayerBoxScore holds one player's statistical line for a game
type PlayerBoxScore struct {
	// PlayerID is the player the line belongs to
	PlayerID string

	// Minutes played, rounded to the nearest minute
	Minutes int

	// Points scored
	Points int

	// Rebounds collected (offensive and defensive combined)
	Rebounds int

	// Assists credited
	Assists int

	// FieldGoalsMade counts all made field goals, threes included
	FieldGoalsMade int

	// FieldGoalsAttempted counts all field goal attempts
	FieldGoalsAttempted int

	// ThreePointersMade counts made shots from behind the arc
	ThreePointersMade int

	// ThreePointersAttempted counts attempts from behind the arc
	ThreePointersAttempted int

	// FreeThrowsMade counts made free throws
	FreeThrowsMade int

	// FreeThrowsAttempted counts free throw attempts
	FreeThrowsAttempted int

	// Steals recorded
	Steals int

	// Blocks recorded
	Blocks int

	// Turnovers committed
	Turnovers int

	// Fouls committed
	Fouls int

	// ExperienceGained is the development credit earned this game.
	// The engine reports it; applying it to ratings happens elsewhere.
	ExperienceGained int
}

// Game represents a single contest between two teams. A game is
// created unplayed and acquires its result through WithResult.
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// SeasonID is the season the game belongs to
	SeasonID string

	// HomeTeamID is the home team
	HomeTeamID string

	// AwayTeamID is the visiting team
	AwayTeamID string

	// HomeScore is nil until the game has been played
	HomeScore *int

	// AwayScore is nil until the game has been played
	AwayScore *int

	// Played marks whether the game has a result
	Played bool

	// IsPlayoffGame marks postseason games
	IsPlayoffGame bool

	// SeriesID links a playoff game to its series, empty otherwise
	SeriesID string

	// BoxScore maps player ID to that player's line
	BoxScore map[string]*PlayerBoxScore

	// CreatedAt is when the game was scheduled
	CreatedAt time.Time

	// PlayedAt is when the game was simulated
	PlayedAt time.Time
}

// WithResult returns a copy of the game carrying the final scores and
// box score. The original game is left untouched.
func (g *Game) WithResult(homeScore, awayScore int, box map[string]*PlayerBoxScore, playedAt time.Time) *Game {
	out := *g
	out.HomeScore = &homeScore
	out.AwayScore = &awayScore
	out.Played = true
	out.PlayedAt = playedAt
	out.BoxScore = make(map[string]*PlayerBoxScore, len(box))
	for id, line := range box {
		lineCopy := *line
		out.BoxScore[id] = &lineCopy
	}
	return &out
}

// WinnerID returns the winning team's ID, or empty if unplayed
func (g *Game) WinnerID() string {
	if !g.Played || g.HomeScore == nil || g.AwayScore == nil {
		return ""
	}
	if *g.HomeScore > *g.AwayScore {
		return g.HomeTeamID
	}
	return g.AwayTeamID
}

// LoserID returns the losing team's ID, or empty if unplayed
func (g *Game) LoserID() string {
	winner := g.WinnerID()
	switch winner {
	case "":
		return ""
	case g.HomeTeamID:
		return g.AwayTeamID
	default:
		return g.HomeTeamID
	}
}
