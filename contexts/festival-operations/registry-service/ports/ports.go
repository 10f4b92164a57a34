package ports

import (
	"context"

	"festival/contexts/festival-operations/registry-service/domain/entities"
)

type RegistryRepository interface {
	SaveYear(ctx context.Context, year entities.Year) error
	ListYears(ctx context.Context) ([]entities.Year, error)

	SaveModality(ctx context.Context, modality entities.Modality) error
	GetModality(ctx context.Context, modalityID string) (entities.Modality, error)
	ListModalitiesByYear(ctx context.Context, year int) ([]entities.Modality, error)

	SaveCriterion(ctx context.Context, criterion entities.Criterion) error
	ListCriteriaByModality(ctx context.Context, modalityID string) ([]entities.Criterion, error)

	SaveTeam(ctx context.Context, team entities.Team) error
	GetTeam(ctx context.Context, teamID string) (entities.Team, error)
	ListTeamsByModality(ctx context.Context, modalityID string, grade entities.GradeLevel) ([]entities.Team, error)

	SaveParticipant(ctx context.Context, participant entities.Participant) error
	ListParticipantsByTeam(ctx context.Context, teamID string) ([]entities.Participant, error)

	SaveJudge(ctx context.Context, judge entities.Judge) error
	GetJudge(ctx context.Context, judgeID string) (entities.Judge, error)
	// GetJudgeByLogin matches the login case-insensitively.
	GetJudgeByLogin(ctx context.Context, login string) (entities.Judge, error)
	ListJudgesByYear(ctx context.Context, year int) ([]entities.Judge, error)
	UpdateJudgePassword(ctx context.Context, judgeID string, passwordHash string) error

	SaveSpecialist(ctx context.Context, assignment entities.SpecialistAssignment) error
	DeleteSpecialist(ctx context.Context, assignment entities.SpecialistAssignment) error
	ListSpecialists(ctx context.Context, year int, modalityID string) ([]entities.SpecialistAssignment, error)
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
