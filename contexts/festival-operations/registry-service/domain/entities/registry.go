package entities

import "strings"

// GradeLevel is the competition bracket a team belongs to.
type GradeLevel string

const (
	GradeElementary GradeLevel = "elementary"
	GradeHighSchool GradeLevel = "high_school"
)

// ParseGradeLevel folds case at the boundary; stored values are canonical.
func ParseGradeLevel(raw string) (GradeLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(GradeElementary):
		return GradeElementary, true
	case string(GradeHighSchool):
		return GradeHighSchool, true
	default:
		return "", false
	}
}

// TeamVotingStatus tracks whether a team currently has an open voting
// session. The wire values match the legacy store.
type TeamVotingStatus string

const (
	TeamAwaiting TeamVotingStatus = "aguardando"
	TeamVoting   TeamVotingStatus = "votando"
)

func ParseTeamVotingStatus(raw string) (TeamVotingStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(TeamAwaiting):
		return TeamAwaiting, true
	case string(TeamVoting):
		return TeamVoting, true
	default:
		return "", false
	}
}

// Year is keyed by the calendar year itself.
type Year struct {
	ID int
}

type Modality struct {
	ModalityID string
	Name       string
	Year       int
}

type Criterion struct {
	CriterionID string
	Name        string
	ModalityID  string
}

type Team struct {
	TeamID            string
	Name              string
	Grade             GradeLevel
	PresentationOrder int
	TechnicalSheet    string
	ModalityID        string
	VotingStatus      TeamVotingStatus
}

type Participant struct {
	ParticipantID string
	Name          string
	ClassLabel    string
	TeamID        string
}

// Judge carries a bcrypt hash, never the raw password. Login uniqueness is
// case-insensitive across the whole store.
type Judge struct {
	JudgeID      string
	Name         string
	Login        string
	PasswordHash string
	Year         int
}

// SpecialistAssignment marks a judge as specialist for a modality in a
// year. Existence of the row is the whole assignment; it has no state.
type SpecialistAssignment struct {
	Year       int
	JudgeID    string
	ModalityID string
}
