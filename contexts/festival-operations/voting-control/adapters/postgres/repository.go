package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"

	"festival/contexts/festival-operations/voting-control/domain/entities"
	domainerrors "festival/contexts/festival-operations/voting-control/domain/errors"
	"festival/contexts/festival-operations/voting-control/ports"
)

const (
	teamStatusAwaiting = "aguardando"
	teamStatusVoting   = "votando"
)

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

func (r *Repository) GetScore(ctx context.Context, scoreID string) (entities.ScoreCard, error) {
	var row scoreModel
	err := r.db.WithContext(ctx).Where("id = ?", strings.TrimSpace(scoreID)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ScoreCard{}, domainerrors.ErrScoreNotFound
		}
		return entities.ScoreCard{}, r.storeError("voting_repo_get_score_failed", err, "score_id", strings.TrimSpace(scoreID))
	}
	return row.toEntity(), nil
}

func (r *Repository) SaveScore(ctx context.Context, score entities.ScoreCard) error {
	row := scoreModelFromEntity(score)
	result := r.db.WithContext(ctx).
		Model(&scoreModel{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"value":      row.Value,
			"status":     row.Status,
			"updated_at": row.UpdatedAt,
		})
	if result.Error != nil {
		return r.storeError("voting_repo_save_score_failed", result.Error, "score_id", row.ID)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrScoreNotFound
	}
	return nil
}

func (r *Repository) ListTeamScores(ctx context.Context, teamID string) ([]entities.ScoreCard, error) {
	var rows []scoreModel
	if err := r.db.WithContext(ctx).
		Where("team_id = ?", strings.TrimSpace(teamID)).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.storeError("voting_repo_list_team_scores_failed", err, "team_id", strings.TrimSpace(teamID))
	}
	return scoreEntities(rows), nil
}

func (r *Repository) ListJudgeTeamScores(ctx context.Context, teamID string, judgeID string) ([]entities.ScoreCard, error) {
	var rows []scoreModel
	if err := r.db.WithContext(ctx).
		Where("team_id = ? AND judge_id = ?", strings.TrimSpace(teamID), strings.TrimSpace(judgeID)).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.storeError("voting_repo_list_judge_team_scores_failed", err,
			"team_id", strings.TrimSpace(teamID),
			"judge_id", strings.TrimSpace(judgeID),
		)
	}
	return scoreEntities(rows), nil
}

func (r *Repository) InsertScores(ctx context.Context, scores []entities.ScoreCard) error {
	if len(scores) == 0 {
		return nil
	}
	rows := make([]scoreModel, 0, len(scores))
	for _, card := range scores {
		rows = append(rows, scoreModelFromEntity(card))
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return r.storeError("voting_repo_insert_scores_failed", err, "cards", len(rows))
	}
	return nil
}

// ProvisionSession runs the team status flip and the card inserts in a
// single transaction so partial provisioning never becomes visible.
func (r *Repository) ProvisionSession(ctx context.Context, teamID string, scores []entities.ScoreCard) error {
	teamID = strings.TrimSpace(teamID)
	rows := make([]scoreModel, 0, len(scores))
	for _, card := range scores {
		rows = append(rows, scoreModelFromEntity(card))
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		flip := tx.Table("teams").
			Where("id = ?", teamID).
			Update("voting_status", teamStatusVoting)
		if flip.Error != nil {
			return flip.Error
		}
		if flip.RowsAffected == 0 {
			return domainerrors.ErrTeamNotFound
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrTeamNotFound) {
			return err
		}
		return r.storeError("voting_repo_provision_session_failed", err, "team_id", teamID, "cards", len(rows))
	}
	return nil
}

// ClearSession reverts the team to awaiting and deletes its card set in
// one transaction.
func (r *Repository) ClearSession(ctx context.Context, teamID string) error {
	teamID = strings.TrimSpace(teamID)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		flip := tx.Table("teams").
			Where("id = ?", teamID).
			Update("voting_status", teamStatusAwaiting)
		if flip.Error != nil {
			return flip.Error
		}
		if flip.RowsAffected == 0 {
			return domainerrors.ErrTeamNotFound
		}
		return tx.Where("team_id = ?", teamID).Delete(&scoreModel{}).Error
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrTeamNotFound) {
			return err
		}
		return r.storeError("voting_repo_clear_session_failed", err, "team_id", teamID)
	}
	return nil
}

const teamProjectionSelect = "teams.id AS id, teams.name AS name, teams.grade AS grade, " +
	"teams.technical_sheet AS technical_sheet, teams.modality_id AS modality_id, " +
	"teams.voting_status AS voting_status, modalities.name AS modality_name, modalities.year AS year"

func (r *Repository) TeamByID(ctx context.Context, teamID string) (ports.TeamProjection, error) {
	var row teamRow
	err := r.db.WithContext(ctx).
		Table("teams").
		Joins("JOIN modalities ON modalities.id = teams.modality_id").
		Where("teams.id = ?", strings.TrimSpace(teamID)).
		Select(teamProjectionSelect).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.TeamProjection{}, domainerrors.ErrTeamNotFound
		}
		return ports.TeamProjection{}, r.storeError("voting_repo_team_lookup_failed", err, "team_id", strings.TrimSpace(teamID))
	}
	projection := row.toProjection()
	participants, err := r.teamParticipants(ctx, projection.TeamID)
	if err != nil {
		return ports.TeamProjection{}, err
	}
	projection.Participants = participants
	return projection, nil
}

func (r *Repository) TeamsInVoting(ctx context.Context, year int) ([]ports.TeamProjection, error) {
	var rows []teamRow
	err := r.db.WithContext(ctx).
		Table("teams").
		Joins("JOIN modalities ON modalities.id = teams.modality_id").
		Where("teams.voting_status = ? AND modalities.year = ?", teamStatusVoting, year).
		Select(teamProjectionSelect).
		Order("teams.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.storeError("voting_repo_teams_in_voting_failed", err, "year", year)
	}
	items := make([]ports.TeamProjection, 0, len(rows))
	for _, row := range rows {
		projection := row.toProjection()
		participants, err := r.teamParticipants(ctx, projection.TeamID)
		if err != nil {
			return nil, err
		}
		projection.Participants = participants
		items = append(items, projection)
	}
	return items, nil
}

func (r *Repository) teamParticipants(ctx context.Context, teamID string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Table("participants").
		Where("team_id = ?", teamID).
		Order("name ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, r.storeError("voting_repo_team_participants_failed", err, "team_id", teamID)
	}
	return names, nil
}

func (r *Repository) JudgesByYear(ctx context.Context, year int) ([]ports.JudgeProjection, error) {
	var rows []judgeRow
	err := r.db.WithContext(ctx).
		Table("judges").
		Where("year = ?", year).
		Select("id", "name", "year").
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.storeError("voting_repo_judges_by_year_failed", err, "year", year)
	}
	items := make([]ports.JudgeProjection, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.JudgeProjection{JudgeID: row.ID, Name: row.Name, Year: row.Year})
	}
	return items, nil
}

func (r *Repository) CriteriaByModality(ctx context.Context, modalityID string) ([]ports.CriterionProjection, error) {
	var rows []criterionRow
	err := r.db.WithContext(ctx).
		Table("criteria").
		Where("modality_id = ?", strings.TrimSpace(modalityID)).
		Select("id", "name", "modality_id").
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.storeError("voting_repo_criteria_by_modality_failed", err, "modality_id", strings.TrimSpace(modalityID))
	}
	items := make([]ports.CriterionProjection, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.CriterionProjection{CriterionID: row.ID, Name: row.Name, ModalityID: row.ModalityID})
	}
	return items, nil
}

func (r *Repository) SpecialistJudges(ctx context.Context, year int, modalityID string) (map[string]bool, error) {
	var judgeIDs []string
	err := r.db.WithContext(ctx).
		Table("specialist_assignments").
		Where("year = ? AND modality_id = ?", year, strings.TrimSpace(modalityID)).
		Pluck("judge_id", &judgeIDs).Error
	if err != nil {
		return nil, r.storeError("voting_repo_specialist_judges_failed", err,
			"year", year,
			"modality_id", strings.TrimSpace(modalityID),
		)
	}
	items := make(map[string]bool, len(judgeIDs))
	for _, id := range judgeIDs {
		items[id] = true
	}
	return items, nil
}

func (r *Repository) storeError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "festival-operations/voting-control",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("voting repository operation failed", fields...)
	return fmt.Errorf("%w: %v", domainerrors.ErrStoreUnavailable, err)
}

type scoreModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Year        int       `gorm:"column:year"`
	ModalityID  string    `gorm:"column:modality_id"`
	TeamID      string    `gorm:"column:team_id"`
	JudgeID     string    `gorm:"column:judge_id"`
	CriterionID string    `gorm:"column:criterion_id"`
	Value       *int      `gorm:"column:value"`
	Status      string    `gorm:"column:status"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (scoreModel) TableName() string { return "scores" }

func scoreModelFromEntity(card entities.ScoreCard) scoreModel {
	return scoreModel{
		ID:          strings.TrimSpace(card.ScoreID),
		Year:        card.Year,
		ModalityID:  card.ModalityID,
		TeamID:      card.TeamID,
		JudgeID:     card.JudgeID,
		CriterionID: card.CriterionID,
		Value:       card.Value,
		Status:      string(card.Status),
		CreatedAt:   card.CreatedAt.UTC(),
		UpdatedAt:   card.UpdatedAt.UTC(),
	}
}

func (m scoreModel) toEntity() entities.ScoreCard {
	status, ok := entities.ParseScoreStatus(m.Status)
	if !ok {
		status = entities.ScoreStatus(m.Status)
	}
	return entities.ScoreCard{
		ScoreID:     m.ID,
		Year:        m.Year,
		ModalityID:  m.ModalityID,
		TeamID:      m.TeamID,
		JudgeID:     m.JudgeID,
		CriterionID: m.CriterionID,
		Value:       m.Value,
		Status:      status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func scoreEntities(rows []scoreModel) []entities.ScoreCard {
	items := make([]entities.ScoreCard, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

func (row teamRow) toProjection() ports.TeamProjection {
	return ports.TeamProjection{
		TeamID:         row.ID,
		Name:           row.Name,
		Grade:          row.Grade,
		Year:           row.Year,
		ModalityID:     row.ModalityID,
		ModalityName:   row.ModalityName,
		TechnicalSheet: row.TechnicalSheet,
		Voting:         row.VotingStatus == teamStatusVoting,
	}
}

type teamRow struct {
	ID             string `gorm:"column:id"`
	Name           string `gorm:"column:name"`
	Grade          string `gorm:"column:grade"`
	TechnicalSheet string `gorm:"column:technical_sheet"`
	ModalityID     string `gorm:"column:modality_id"`
	ModalityName   string `gorm:"column:modality_name"`
	VotingStatus   string `gorm:"column:voting_status"`
	Year           int    `gorm:"column:year"`
}

type judgeRow struct {
	ID   string `gorm:"column:id"`
	Name string `gorm:"column:name"`
	Year int    `gorm:"column:year"`
}

type criterionRow struct {
	ID         string `gorm:"column:id"`
	Name       string `gorm:"column:name"`
	ModalityID string `gorm:"column:modality_id"`
}
