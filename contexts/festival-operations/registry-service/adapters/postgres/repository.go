package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"festival/contexts/festival-operations/registry-service/domain/entities"
	domainerrors "festival/contexts/festival-operations/registry-service/domain/errors"
	"festival/contexts/festival-operations/registry-service/ports"
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

func (r *Repository) SaveYear(ctx context.Context, year entities.Year) error {
	row := yearModel{ID: year.ID}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateEntry
		}
		return r.storeError("registry_repo_save_year_failed", err, "year", year.ID)
	}
	return nil
}

func (r *Repository) ListYears(ctx context.Context) ([]entities.Year, error) {
	var rows []yearModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, r.storeError("registry_repo_list_years_failed", err)
	}
	items := make([]entities.Year, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.Year{ID: row.ID})
	}
	return items, nil
}

func (r *Repository) SaveModality(ctx context.Context, modality entities.Modality) error {
	row := modalityModel{
		ID:   strings.TrimSpace(modality.ModalityID),
		Name: modality.Name,
		Year: modality.Year,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateEntry
		}
		return r.storeError("registry_repo_save_modality_failed", err, "modality_id", row.ID)
	}
	return nil
}

func (r *Repository) GetModality(ctx context.Context, modalityID string) (entities.Modality, error) {
	var row modalityModel
	err := r.db.WithContext(ctx).Where("id = ?", strings.TrimSpace(modalityID)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Modality{}, domainerrors.ErrModalityNotFound
		}
		return entities.Modality{}, r.storeError("registry_repo_get_modality_failed", err, "modality_id", strings.TrimSpace(modalityID))
	}
	return row.toEntity(), nil
}

func (r *Repository) ListModalitiesByYear(ctx context.Context, year int) ([]entities.Modality, error) {
	var rows []modalityModel
	if err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, r.storeError("registry_repo_list_modalities_failed", err, "year", year)
	}
	items := make([]entities.Modality, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) SaveCriterion(ctx context.Context, criterion entities.Criterion) error {
	row := criterionModel{
		ID:         strings.TrimSpace(criterion.CriterionID),
		Name:       criterion.Name,
		ModalityID: strings.TrimSpace(criterion.ModalityID),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateEntry
		}
		return r.storeError("registry_repo_save_criterion_failed", err, "criterion_id", row.ID)
	}
	return nil
}

func (r *Repository) ListCriteriaByModality(ctx context.Context, modalityID string) ([]entities.Criterion, error) {
	var rows []criterionModel
	if err := r.db.WithContext(ctx).
		Where("modality_id = ?", strings.TrimSpace(modalityID)).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, r.storeError("registry_repo_list_criteria_failed", err, "modality_id", strings.TrimSpace(modalityID))
	}
	items := make([]entities.Criterion, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) SaveTeam(ctx context.Context, team entities.Team) error {
	row := teamModelFromEntity(team)
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":               row.Name,
			"grade":              row.Grade,
			"presentation_order": row.PresentationOrder,
			"technical_sheet":    row.TechnicalSheet,
			"modality_id":        row.ModalityID,
			"voting_status":      row.VotingStatus,
		}),
	}).Create(&row)
	if create.Error != nil {
		if isUniqueViolation(create.Error) {
			return domainerrors.ErrDuplicateEntry
		}
		return r.storeError("registry_repo_save_team_failed", create.Error, "team_id", row.ID)
	}
	return nil
}

func (r *Repository) GetTeam(ctx context.Context, teamID string) (entities.Team, error) {
	var row teamModel
	err := r.db.WithContext(ctx).Where("id = ?", strings.TrimSpace(teamID)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Team{}, domainerrors.ErrTeamNotFound
		}
		return entities.Team{}, r.storeError("registry_repo_get_team_failed", err, "team_id", strings.TrimSpace(teamID))
	}
	return row.toEntity(), nil
}

func (r *Repository) ListTeamsByModality(ctx context.Context, modalityID string, grade entities.GradeLevel) ([]entities.Team, error) {
	tx := r.db.WithContext(ctx).Model(&teamModel{}).
		Where("modality_id = ?", strings.TrimSpace(modalityID))
	if grade != "" {
		tx = tx.Where("grade = ?", string(grade))
	}
	var rows []teamModel
	if err := tx.Order("presentation_order ASC").Find(&rows).Error; err != nil {
		return nil, r.storeError("registry_repo_list_teams_failed", err, "modality_id", strings.TrimSpace(modalityID))
	}
	items := make([]entities.Team, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) SaveParticipant(ctx context.Context, participant entities.Participant) error {
	row := participantModel{
		ID:         strings.TrimSpace(participant.ParticipantID),
		Name:       participant.Name,
		ClassLabel: participant.ClassLabel,
		TeamID:     strings.TrimSpace(participant.TeamID),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.storeError("registry_repo_save_participant_failed", err, "participant_id", row.ID)
	}
	return nil
}

func (r *Repository) ListParticipantsByTeam(ctx context.Context, teamID string) ([]entities.Participant, error) {
	var rows []participantModel
	if err := r.db.WithContext(ctx).
		Where("team_id = ?", strings.TrimSpace(teamID)).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, r.storeError("registry_repo_list_participants_failed", err, "team_id", strings.TrimSpace(teamID))
	}
	items := make([]entities.Participant, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) SaveJudge(ctx context.Context, judge entities.Judge) error {
	row := judgeModel{
		ID:           strings.TrimSpace(judge.JudgeID),
		Name:         judge.Name,
		Login:        judge.Login,
		PasswordHash: judge.PasswordHash,
		Year:         judge.Year,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateEntry
		}
		return r.storeError("registry_repo_save_judge_failed", err, "judge_id", row.ID)
	}
	return nil
}

func (r *Repository) GetJudge(ctx context.Context, judgeID string) (entities.Judge, error) {
	var row judgeModel
	err := r.db.WithContext(ctx).Where("id = ?", strings.TrimSpace(judgeID)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Judge{}, domainerrors.ErrJudgeNotFound
		}
		return entities.Judge{}, r.storeError("registry_repo_get_judge_failed", err, "judge_id", strings.TrimSpace(judgeID))
	}
	return row.toEntity(), nil
}

func (r *Repository) GetJudgeByLogin(ctx context.Context, login string) (entities.Judge, error) {
	var row judgeModel
	err := r.db.WithContext(ctx).
		Where("LOWER(login) = LOWER(?)", strings.TrimSpace(login)).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Judge{}, domainerrors.ErrJudgeNotFound
		}
		return entities.Judge{}, r.storeError("registry_repo_get_judge_by_login_failed", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListJudgesByYear(ctx context.Context, year int) ([]entities.Judge, error) {
	var rows []judgeModel
	if err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, r.storeError("registry_repo_list_judges_failed", err, "year", year)
	}
	items := make([]entities.Judge, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateJudgePassword(ctx context.Context, judgeID string, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&judgeModel{}).
		Where("id = ?", strings.TrimSpace(judgeID)).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return r.storeError("registry_repo_update_judge_password_failed", result.Error, "judge_id", strings.TrimSpace(judgeID))
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrJudgeNotFound
	}
	return nil
}

func (r *Repository) SaveSpecialist(ctx context.Context, assignment entities.SpecialistAssignment) error {
	row := specialistModel{
		Year:       assignment.Year,
		JudgeID:    strings.TrimSpace(assignment.JudgeID),
		ModalityID: strings.TrimSpace(assignment.ModalityID),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateEntry
		}
		return r.storeError("registry_repo_save_specialist_failed", err,
			"judge_id", row.JudgeID,
			"modality_id", row.ModalityID,
		)
	}
	return nil
}

func (r *Repository) DeleteSpecialist(ctx context.Context, assignment entities.SpecialistAssignment) error {
	err := r.db.WithContext(ctx).
		Where("year = ? AND judge_id = ? AND modality_id = ?",
			assignment.Year,
			strings.TrimSpace(assignment.JudgeID),
			strings.TrimSpace(assignment.ModalityID),
		).
		Delete(&specialistModel{}).Error
	if err != nil {
		return r.storeError("registry_repo_delete_specialist_failed", err,
			"judge_id", strings.TrimSpace(assignment.JudgeID),
		)
	}
	return nil
}

func (r *Repository) ListSpecialists(ctx context.Context, year int, modalityID string) ([]entities.SpecialistAssignment, error) {
	var rows []specialistModel
	if err := r.db.WithContext(ctx).
		Where("year = ? AND modality_id = ?", year, strings.TrimSpace(modalityID)).
		Order("judge_id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.storeError("registry_repo_list_specialists_failed", err, "modality_id", strings.TrimSpace(modalityID))
	}
	items := make([]entities.SpecialistAssignment, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.SpecialistAssignment{
			Year:       row.Year,
			JudgeID:    row.JudgeID,
			ModalityID: row.ModalityID,
		})
	}
	return items, nil
}

func (r *Repository) storeError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "festival-operations/registry-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("registry repository operation failed", fields...)
	return fmt.Errorf("%w: %v", domainerrors.ErrStoreUnavailable, err)
}

type yearModel struct {
	ID int `gorm:"column:id;primaryKey"`
}

func (yearModel) TableName() string { return "years" }

type modalityModel struct {
	ID   string `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
	Year int    `gorm:"column:year"`
}

func (modalityModel) TableName() string { return "modalities" }

func (m modalityModel) toEntity() entities.Modality {
	return entities.Modality{ModalityID: m.ID, Name: m.Name, Year: m.Year}
}

type criterionModel struct {
	ID         string `gorm:"column:id;primaryKey"`
	Name       string `gorm:"column:name"`
	ModalityID string `gorm:"column:modality_id"`
}

func (criterionModel) TableName() string { return "criteria" }

func (m criterionModel) toEntity() entities.Criterion {
	return entities.Criterion{CriterionID: m.ID, Name: m.Name, ModalityID: m.ModalityID}
}

type teamModel struct {
	ID                string `gorm:"column:id;primaryKey"`
	Name              string `gorm:"column:name"`
	Grade             string `gorm:"column:grade"`
	PresentationOrder int    `gorm:"column:presentation_order"`
	TechnicalSheet    string `gorm:"column:technical_sheet"`
	ModalityID        string `gorm:"column:modality_id"`
	VotingStatus      string `gorm:"column:voting_status"`
}

func (teamModel) TableName() string { return "teams" }

func teamModelFromEntity(team entities.Team) teamModel {
	return teamModel{
		ID:                strings.TrimSpace(team.TeamID),
		Name:              team.Name,
		Grade:             string(team.Grade),
		PresentationOrder: team.PresentationOrder,
		TechnicalSheet:    team.TechnicalSheet,
		ModalityID:        strings.TrimSpace(team.ModalityID),
		VotingStatus:      string(team.VotingStatus),
	}
}

func (m teamModel) toEntity() entities.Team {
	grade, _ := entities.ParseGradeLevel(m.Grade)
	status, ok := entities.ParseTeamVotingStatus(m.VotingStatus)
	if !ok {
		status = entities.TeamAwaiting
	}
	return entities.Team{
		TeamID:            m.ID,
		Name:              m.Name,
		Grade:             grade,
		PresentationOrder: m.PresentationOrder,
		TechnicalSheet:    m.TechnicalSheet,
		ModalityID:        m.ModalityID,
		VotingStatus:      status,
	}
}

type participantModel struct {
	ID         string `gorm:"column:id;primaryKey"`
	Name       string `gorm:"column:name"`
	ClassLabel string `gorm:"column:class_label"`
	TeamID     string `gorm:"column:team_id"`
}

func (participantModel) TableName() string { return "participants" }

func (m participantModel) toEntity() entities.Participant {
	return entities.Participant{
		ParticipantID: m.ID,
		Name:          m.Name,
		ClassLabel:    m.ClassLabel,
		TeamID:        m.TeamID,
	}
}

type judgeModel struct {
	ID           string `gorm:"column:id;primaryKey"`
	Name         string `gorm:"column:name"`
	Login        string `gorm:"column:login"`
	PasswordHash string `gorm:"column:password_hash"`
	Year         int    `gorm:"column:year"`
}

func (judgeModel) TableName() string { return "judges" }

func (m judgeModel) toEntity() entities.Judge {
	return entities.Judge{
		JudgeID:      m.ID,
		Name:         m.Name,
		Login:        m.Login,
		PasswordHash: m.PasswordHash,
		Year:         m.Year,
	}
}

type specialistModel struct {
	Year       int    `gorm:"column:year;primaryKey"`
	JudgeID    string `gorm:"column:judge_id;primaryKey"`
	ModalityID string `gorm:"column:modality_id;primaryKey"`
}

func (specialistModel) TableName() string { return "specialist_assignments" }

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// UUIDGenerator satisfies the ID port for postgres wiring.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var _ ports.RegistryRepository = (*Repository)(nil)
var _ ports.IDGenerator = UUIDGenerator{}
