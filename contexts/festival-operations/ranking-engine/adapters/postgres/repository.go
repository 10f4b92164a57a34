package postgresadapter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"festival/contexts/festival-operations/ranking-engine/domain/entities"
	domainerrors "festival/contexts/festival-operations/ranking-engine/domain/errors"
	"festival/contexts/festival-operations/ranking-engine/ports"
)

const scoreStatusSubmitted = "ok"

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) SubmittedScores(ctx context.Context, year int, modalityID string, teamID string) ([]ports.SubmittedScore, error) {
	var rows []struct {
		JudgeID     string `gorm:"column:judge_id"`
		CriterionID string `gorm:"column:criterion_id"`
		Value       int    `gorm:"column:value"`
	}
	err := r.db.WithContext(ctx).
		Table("scores").
		Where("year = ? AND modality_id = ? AND team_id = ? AND LOWER(status) = ?",
			year, strings.TrimSpace(modalityID), strings.TrimSpace(teamID), scoreStatusSubmitted).
		Select("judge_id", "criterion_id", "value").
		Find(&rows).Error
	if err != nil {
		return nil, r.storeError("ranking_repo_submitted_scores_failed", err,
			"team_id", strings.TrimSpace(teamID),
		)
	}
	items := make([]ports.SubmittedScore, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.SubmittedScore{
			JudgeID:     row.JudgeID,
			CriterionID: row.CriterionID,
			Value:       row.Value,
		})
	}
	return items, nil
}

func (r *Repository) SpecialistJudgeIDs(ctx context.Context, year int, modalityID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("specialist_assignments").
		Where("year = ? AND modality_id = ?", year, strings.TrimSpace(modalityID)).
		Pluck("judge_id", &ids).Error
	if err != nil {
		return nil, r.storeError("ranking_repo_specialists_failed", err,
			"modality_id", strings.TrimSpace(modalityID),
		)
	}
	return ids, nil
}

func (r *Repository) TeamsByModality(ctx context.Context, modalityID string) ([]ports.TeamRef, error) {
	var rows []struct {
		ID    string `gorm:"column:id"`
		Name  string `gorm:"column:name"`
		Grade string `gorm:"column:grade"`
	}
	err := r.db.WithContext(ctx).
		Table("teams").
		Where("modality_id = ?", strings.TrimSpace(modalityID)).
		Select("id", "name", "grade").
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.storeError("ranking_repo_teams_failed", err,
			"modality_id", strings.TrimSpace(modalityID),
		)
	}
	items := make([]ports.TeamRef, 0, len(rows))
	for _, row := range rows {
		var participants []string
		if err := r.db.WithContext(ctx).
			Table("participants").
			Where("team_id = ?", row.ID).
			Order("name ASC").
			Pluck("name", &participants).Error; err != nil {
			return nil, r.storeError("ranking_repo_team_participants_failed", err, "team_id", row.ID)
		}
		items = append(items, ports.TeamRef{
			TeamID:       row.ID,
			Name:         row.Name,
			Grade:        row.Grade,
			Participants: participants,
		})
	}
	return items, nil
}

// UpsertRanking relies on the (year, modality_id, team_id) unique index
// so concurrent recomputation can never fork duplicate rows.
func (r *Repository) UpsertRanking(ctx context.Context, ranking entities.Ranking) error {
	row := rankingModel{
		ID:         strings.TrimSpace(ranking.RankingID),
		Year:       ranking.Year,
		ModalityID: strings.TrimSpace(ranking.ModalityID),
		TeamID:     strings.TrimSpace(ranking.TeamID),
		FinalScore: ranking.FinalScore,
		ComputedAt: ranking.ComputedAt.UTC(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "year"}, {Name: "modality_id"}, {Name: "team_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"final_score": row.FinalScore,
			"computed_at": row.ComputedAt,
		}),
	}).Create(&row).Error
	if err != nil {
		return r.storeError("ranking_repo_upsert_failed", err,
			"team_id", row.TeamID,
			"modality_id", row.ModalityID,
		)
	}
	return nil
}

func (r *Repository) ListRankings(ctx context.Context, year int, modalityID string) ([]entities.Ranking, error) {
	var rows []rankingModel
	err := r.db.WithContext(ctx).
		Where("year = ? AND modality_id = ?", year, strings.TrimSpace(modalityID)).
		Order("final_score DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.storeError("ranking_repo_list_failed", err,
			"modality_id", strings.TrimSpace(modalityID),
		)
	}
	items := make([]entities.Ranking, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.Ranking{
			RankingID:  row.ID,
			Year:       row.Year,
			ModalityID: row.ModalityID,
			TeamID:     row.TeamID,
			FinalScore: row.FinalScore,
			ComputedAt: row.ComputedAt,
		})
	}
	return items, nil
}

func (r *Repository) storeError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "festival-operations/ranking-engine",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("ranking repository operation failed", fields...)
	return fmt.Errorf("%w: %v", domainerrors.ErrStoreUnavailable, err)
}

type rankingModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	Year       int       `gorm:"column:year"`
	ModalityID string    `gorm:"column:modality_id"`
	TeamID     string    `gorm:"column:team_id"`
	FinalScore float64   `gorm:"column:final_score"`
	ComputedAt time.Time `gorm:"column:computed_at"`
}

func (rankingModel) TableName() string { return "rankings" }

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
