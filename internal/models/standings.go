package models

// SeasonRecord is a team's regular-season win/loss record
type SeasonRecord struct {
	// TeamID is the team the record belongs to
	TeamID string

	// Wins counts regular-season wins
	Wins int

	// Losses counts regular-season losses
	Losses int
}

// WinPct is the team's winning percentage, 0 when no games are played
func (r SeasonRecord) WinPct() float64 {
	played := r.Wins + r.Losses
	if played == 0 {
		return 0
	}
	return float64(r.Wins) / float64(played)
}
