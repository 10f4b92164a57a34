package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"festival/contexts/festival-operations/registry-service/domain/entities"
	domainerrors "festival/contexts/festival-operations/registry-service/domain/errors"
	"festival/contexts/festival-operations/registry-service/ports"
)

const minPasswordLength = 4

// Service implements registry writes and judge authentication. Reads are
// thin pass-throughs over the repository; writes validate references and
// uniqueness before touching the store.
type Service struct {
	Repo   ports.RegistryRepository
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s Service) CreateYear(ctx context.Context, id int) (entities.Year, error) {
	if id <= 0 {
		return entities.Year{}, domainerrors.ErrInvalidInput
	}
	year := entities.Year{ID: id}
	if err := s.Repo.SaveYear(ctx, year); err != nil {
		return entities.Year{}, err
	}
	s.logger().Info("year registered",
		"event", "registry_year_created",
		"module", "festival-operations/registry-service",
		"layer", "application",
		"year", id,
	)
	return year, nil
}

func (s Service) ListYears(ctx context.Context) ([]entities.Year, error) {
	return s.Repo.ListYears(ctx)
}

func (s Service) CreateModality(ctx context.Context, name string, year int) (entities.Modality, error) {
	name = strings.TrimSpace(name)
	if name == "" || year <= 0 {
		return entities.Modality{}, domainerrors.ErrInvalidInput
	}
	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Modality{}, err
	}
	modality := entities.Modality{ModalityID: id, Name: name, Year: year}
	if err := s.Repo.SaveModality(ctx, modality); err != nil {
		return entities.Modality{}, err
	}
	s.logger().Info("modality registered",
		"event", "registry_modality_created",
		"module", "festival-operations/registry-service",
		"layer", "application",
		"modality_id", id,
		"year", year,
	)
	return modality, nil
}

func (s Service) ListModalities(ctx context.Context, year int) ([]entities.Modality, error) {
	return s.Repo.ListModalitiesByYear(ctx, year)
}

func (s Service) CreateCriterion(ctx context.Context, name string, modalityID string) (entities.Criterion, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(modalityID) == "" {
		return entities.Criterion{}, domainerrors.ErrInvalidInput
	}
	if _, err := s.Repo.GetModality(ctx, strings.TrimSpace(modalityID)); err != nil {
		return entities.Criterion{}, err
	}
	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Criterion{}, err
	}
	criterion := entities.Criterion{CriterionID: id, Name: name, ModalityID: strings.TrimSpace(modalityID)}
	if err := s.Repo.SaveCriterion(ctx, criterion); err != nil {
		return entities.Criterion{}, err
	}
	return criterion, nil
}

func (s Service) ListCriteria(ctx context.Context, modalityID string) ([]entities.Criterion, error) {
	return s.Repo.ListCriteriaByModality(ctx, strings.TrimSpace(modalityID))
}

type CreateTeamInput struct {
	Name              string
	Grade             string
	PresentationOrder int
	TechnicalSheet    string
	ModalityID        string
}

func (s Service) CreateTeam(ctx context.Context, input CreateTeamInput) (entities.Team, error) {
	name := strings.TrimSpace(input.Name)
	grade, ok := entities.ParseGradeLevel(input.Grade)
	if name == "" || !ok || input.PresentationOrder <= 0 {
		return entities.Team{}, domainerrors.ErrInvalidInput
	}
	if _, err := s.Repo.GetModality(ctx, strings.TrimSpace(input.ModalityID)); err != nil {
		return entities.Team{}, err
	}
	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Team{}, err
	}
	team := entities.Team{
		TeamID:            id,
		Name:              name,
		Grade:             grade,
		PresentationOrder: input.PresentationOrder,
		TechnicalSheet:    strings.TrimSpace(input.TechnicalSheet),
		ModalityID:        strings.TrimSpace(input.ModalityID),
		VotingStatus:      entities.TeamAwaiting,
	}
	if err := s.Repo.SaveTeam(ctx, team); err != nil {
		return entities.Team{}, err
	}
	s.logger().Info("team registered",
		"event", "registry_team_created",
		"module", "festival-operations/registry-service",
		"layer", "application",
		"team_id", id,
		"modality_id", team.ModalityID,
		"grade", string(grade),
	)
	return team, nil
}

func (s Service) ListTeams(ctx context.Context, modalityID string, grade string) ([]entities.Team, error) {
	var level entities.GradeLevel
	if strings.TrimSpace(grade) != "" {
		parsed, ok := entities.ParseGradeLevel(grade)
		if !ok {
			return nil, domainerrors.ErrInvalidInput
		}
		level = parsed
	}
	return s.Repo.ListTeamsByModality(ctx, strings.TrimSpace(modalityID), level)
}

func (s Service) CreateParticipant(ctx context.Context, name string, classLabel string, teamID string) (entities.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(teamID) == "" {
		return entities.Participant{}, domainerrors.ErrInvalidInput
	}
	if _, err := s.Repo.GetTeam(ctx, strings.TrimSpace(teamID)); err != nil {
		return entities.Participant{}, err
	}
	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Participant{}, err
	}
	participant := entities.Participant{
		ParticipantID: id,
		Name:          name,
		ClassLabel:    strings.TrimSpace(classLabel),
		TeamID:        strings.TrimSpace(teamID),
	}
	if err := s.Repo.SaveParticipant(ctx, participant); err != nil {
		return entities.Participant{}, err
	}
	return participant, nil
}

func (s Service) ListParticipants(ctx context.Context, teamID string) ([]entities.Participant, error) {
	return s.Repo.ListParticipantsByTeam(ctx, strings.TrimSpace(teamID))
}

type CreateJudgeInput struct {
	Name     string
	Login    string
	Password string
	Year     int
}

func (s Service) CreateJudge(ctx context.Context, input CreateJudgeInput) (entities.Judge, error) {
	name := strings.TrimSpace(input.Name)
	login := strings.TrimSpace(input.Login)
	if name == "" || login == "" || len(input.Password) < minPasswordLength || input.Year <= 0 {
		return entities.Judge{}, domainerrors.ErrInvalidInput
	}
	if _, err := s.Repo.GetJudgeByLogin(ctx, login); err == nil {
		return entities.Judge{}, domainerrors.ErrDuplicateEntry
	} else if !errors.Is(err, domainerrors.ErrJudgeNotFound) {
		return entities.Judge{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.Judge{}, err
	}
	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Judge{}, err
	}
	judge := entities.Judge{
		JudgeID:      id,
		Name:         name,
		Login:        login,
		PasswordHash: string(hash),
		Year:         input.Year,
	}
	if err := s.Repo.SaveJudge(ctx, judge); err != nil {
		return entities.Judge{}, err
	}
	s.logger().Info("judge registered",
		"event", "registry_judge_created",
		"module", "festival-operations/registry-service",
		"layer", "application",
		"judge_id", id,
		"year", input.Year,
	)
	return judge, nil
}

func (s Service) ListJudges(ctx context.Context, year int) ([]entities.Judge, error) {
	return s.Repo.ListJudgesByYear(ctx, year)
}

// AuthenticateJudge resolves the login case-insensitively and compares the
// bcrypt hash. Lookup misses and hash mismatches collapse into the same
// credentials error so the response does not leak which one failed.
func (s Service) AuthenticateJudge(ctx context.Context, login string, password string) (entities.Judge, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return entities.Judge{}, domainerrors.ErrInvalidCredentials
	}
	judge, err := s.Repo.GetJudgeByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainerrors.ErrJudgeNotFound) {
			return entities.Judge{}, domainerrors.ErrInvalidCredentials
		}
		return entities.Judge{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(judge.PasswordHash), []byte(password)) != nil {
		s.logger().Warn("judge authentication rejected",
			"event", "registry_judge_auth_rejected",
			"module", "festival-operations/registry-service",
			"layer", "application",
			"judge_id", judge.JudgeID,
		)
		return entities.Judge{}, domainerrors.ErrInvalidCredentials
	}
	return judge, nil
}

func (s Service) ChangeJudgePassword(ctx context.Context, judgeID string, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return domainerrors.ErrInvalidInput
	}
	if _, err := s.Repo.GetJudge(ctx, strings.TrimSpace(judgeID)); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Repo.UpdateJudgePassword(ctx, strings.TrimSpace(judgeID), string(hash))
}

func (s Service) AssignSpecialist(ctx context.Context, year int, judgeID string, modalityID string) error {
	if year <= 0 || strings.TrimSpace(judgeID) == "" || strings.TrimSpace(modalityID) == "" {
		return domainerrors.ErrInvalidInput
	}
	if _, err := s.Repo.GetJudge(ctx, strings.TrimSpace(judgeID)); err != nil {
		return err
	}
	if _, err := s.Repo.GetModality(ctx, strings.TrimSpace(modalityID)); err != nil {
		return err
	}
	assignment := entities.SpecialistAssignment{
		Year:       year,
		JudgeID:    strings.TrimSpace(judgeID),
		ModalityID: strings.TrimSpace(modalityID),
	}
	if err := s.Repo.SaveSpecialist(ctx, assignment); err != nil {
		return err
	}
	s.logger().Info("specialist assigned",
		"event", "registry_specialist_assigned",
		"module", "festival-operations/registry-service",
		"layer", "application",
		"judge_id", assignment.JudgeID,
		"modality_id", assignment.ModalityID,
		"year", year,
	)
	return nil
}

func (s Service) RemoveSpecialist(ctx context.Context, year int, judgeID string, modalityID string) error {
	return s.Repo.DeleteSpecialist(ctx, entities.SpecialistAssignment{
		Year:       year,
		JudgeID:    strings.TrimSpace(judgeID),
		ModalityID: strings.TrimSpace(modalityID),
	})
}

func (s Service) ListSpecialists(ctx context.Context, year int, modalityID string) ([]entities.SpecialistAssignment, error) {
	return s.Repo.ListSpecialists(ctx, year, strings.TrimSpace(modalityID))
}
