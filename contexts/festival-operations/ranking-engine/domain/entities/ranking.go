package entities

import "time"

// Ranking is the persisted final score for a team. One row per
// (year, modality, team); recomputation updates in place.
type Ranking struct {
	RankingID  string
	Year       int
	ModalityID string
	TeamID     string
	FinalScore float64
	ComputedAt time.Time
}

// TeamStanding is a ranked row in a grade-level standings list.
type TeamStanding struct {
	Position     int
	TeamID       string
	TeamName     string
	Grade        string
	Participants []string
	FinalScore   float64
}
