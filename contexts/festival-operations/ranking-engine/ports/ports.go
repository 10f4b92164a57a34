package ports

import (
	"context"
	"time"

	"festival/contexts/festival-operations/ranking-engine/domain/entities"
)

// SubmittedScore is one committed score card value. Only submitted
// cards reach this module; open, blocked and in-progress cards are
// filtered at the source.
type SubmittedScore struct {
	JudgeID     string
	CriterionID string
	Value       int
}

// ScoreSource reads committed voting output.
type ScoreSource interface {
	SubmittedScores(ctx context.Context, year int, modalityID string, teamID string) ([]SubmittedScore, error)
}

// SpecialistSource resolves the specialist judge set for a modality.
type SpecialistSource interface {
	SpecialistJudgeIDs(ctx context.Context, year int, modalityID string) ([]string, error)
}

type TeamRef struct {
	TeamID       string
	Name         string
	Grade        string
	Participants []string
}

// TeamSource reads the registry teams competing in a modality.
type TeamSource interface {
	TeamsByModality(ctx context.Context, modalityID string) ([]TeamRef, error)
}

// RankingRepository owns Ranking rows. Upsert is keyed by
// (year, modality, team) and must never create a duplicate under
// concurrent recomputation.
type RankingRepository interface {
	UpsertRanking(ctx context.Context, ranking entities.Ranking) error
	ListRankings(ctx context.Context, year int, modalityID string) ([]entities.Ranking, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
