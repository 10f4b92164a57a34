package ports

import (
	"context"
	"time"

	"festival/contexts/festival-operations/voting-control/domain/entities"
)

// ScoreRepository owns score card persistence. ProvisionSession and
// ClearSession pair the team status flip with the card writes in one
// atomic step; partial provisioning must never become visible.
type ScoreRepository interface {
	GetScore(ctx context.Context, scoreID string) (entities.ScoreCard, error)
	SaveScore(ctx context.Context, score entities.ScoreCard) error
	ListTeamScores(ctx context.Context, teamID string) ([]entities.ScoreCard, error)
	ListJudgeTeamScores(ctx context.Context, teamID string, judgeID string) ([]entities.ScoreCard, error)

	// InsertScores bulk-inserts cards atomically without touching team
	// status. Used by mid-session judge additions.
	InsertScores(ctx context.Context, scores []entities.ScoreCard) error

	// ProvisionSession flips the team to voting and inserts the full
	// card set, all-or-nothing.
	ProvisionSession(ctx context.Context, teamID string, scores []entities.ScoreCard) error

	// ClearSession flips the team back to awaiting and deletes every
	// card for the team, all-or-nothing.
	ClearSession(ctx context.Context, teamID string) error
}

// TeamProjection is the slice of registry team state this module needs.
type TeamProjection struct {
	TeamID         string
	Name           string
	Grade          string
	Year           int
	ModalityID     string
	ModalityName   string
	TechnicalSheet string
	Participants   []string
	Voting         bool
}

type JudgeProjection struct {
	JudgeID string
	Name    string
	Year    int
}

type CriterionProjection struct {
	CriterionID string
	Name        string
	ModalityID  string
}

// RosterDirectory reads registry data owned by the registry module.
type RosterDirectory interface {
	TeamByID(ctx context.Context, teamID string) (TeamProjection, error)
	TeamsInVoting(ctx context.Context, year int) ([]TeamProjection, error)
	JudgesByYear(ctx context.Context, year int) ([]JudgeProjection, error)
	CriteriaByModality(ctx context.Context, modalityID string) ([]CriterionProjection, error)

	// SpecialistJudges returns the judge ids assigned as specialists for
	// the modality in the given year.
	SpecialistJudges(ctx context.Context, year int, modalityID string) (map[string]bool, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
