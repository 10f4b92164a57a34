package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"festival/contexts/festival-operations/registry-service/domain/entities"
	domainerrors "festival/contexts/festival-operations/registry-service/domain/errors"
)

// Store is the in-memory registry used by tests and local wiring. It
// enforces the same uniqueness rules as the postgres schema so conflict
// behavior matches between adapters.
type Store struct {
	mu sync.RWMutex

	years        map[int]entities.Year
	modalities   map[string]entities.Modality
	criteria     map[string]entities.Criterion
	teams        map[string]entities.Team
	participants map[string]entities.Participant
	judges       map[string]entities.Judge
	specialists  map[string]entities.SpecialistAssignment
}

func NewStore() *Store {
	return &Store{
		years:        make(map[int]entities.Year),
		modalities:   make(map[string]entities.Modality),
		criteria:     make(map[string]entities.Criterion),
		teams:        make(map[string]entities.Team),
		participants: make(map[string]entities.Participant),
		judges:       make(map[string]entities.Judge),
		specialists:  make(map[string]entities.SpecialistAssignment),
	}
}

func specialistKey(a entities.SpecialistAssignment) string {
	return fmt.Sprintf("%d|%s|%s", a.Year, a.JudgeID, a.ModalityID)
}

func (s *Store) SaveYear(_ context.Context, year entities.Year) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.years[year.ID]; exists {
		return domainerrors.ErrDuplicateEntry
	}
	s.years[year.ID] = year
	return nil
}

func (s *Store) ListYears(_ context.Context) ([]entities.Year, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Year, 0, len(s.years))
	for _, year := range s.years {
		items = append(items, year)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) SaveModality(_ context.Context, modality entities.Modality) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.modalities {
		if existing.Year == modality.Year && strings.EqualFold(existing.Name, modality.Name) {
			return domainerrors.ErrDuplicateEntry
		}
	}
	s.modalities[modality.ModalityID] = modality
	return nil
}

func (s *Store) GetModality(_ context.Context, modalityID string) (entities.Modality, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	modality, ok := s.modalities[strings.TrimSpace(modalityID)]
	if !ok {
		return entities.Modality{}, domainerrors.ErrModalityNotFound
	}
	return modality, nil
}

func (s *Store) ListModalitiesByYear(_ context.Context, year int) ([]entities.Modality, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Modality, 0)
	for _, modality := range s.modalities {
		if modality.Year == year {
			items = append(items, modality)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *Store) SaveCriterion(_ context.Context, criterion entities.Criterion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.criteria {
		if existing.ModalityID == criterion.ModalityID && strings.EqualFold(existing.Name, criterion.Name) {
			return domainerrors.ErrDuplicateEntry
		}
	}
	s.criteria[criterion.CriterionID] = criterion
	return nil
}

func (s *Store) ListCriteriaByModality(_ context.Context, modalityID string) ([]entities.Criterion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Criterion, 0)
	for _, criterion := range s.criteria {
		if criterion.ModalityID == strings.TrimSpace(modalityID) {
			items = append(items, criterion)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *Store) SaveTeam(_ context.Context, team entities.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.teams {
		if existing.TeamID == team.TeamID {
			continue
		}
		if existing.ModalityID == team.ModalityID && strings.EqualFold(existing.Name, team.Name) {
			return domainerrors.ErrDuplicateEntry
		}
	}
	s.teams[team.TeamID] = team
	return nil
}

func (s *Store) GetTeam(_ context.Context, teamID string) (entities.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	team, ok := s.teams[strings.TrimSpace(teamID)]
	if !ok {
		return entities.Team{}, domainerrors.ErrTeamNotFound
	}
	return team, nil
}

func (s *Store) ListTeamsByModality(_ context.Context, modalityID string, grade entities.GradeLevel) ([]entities.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Team, 0)
	for _, team := range s.teams {
		if team.ModalityID != strings.TrimSpace(modalityID) {
			continue
		}
		if grade != "" && team.Grade != grade {
			continue
		}
		items = append(items, team)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].PresentationOrder < items[j].PresentationOrder
	})
	return items, nil
}

func (s *Store) SaveParticipant(_ context.Context, participant entities.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participants[participant.ParticipantID] = participant
	return nil
}

func (s *Store) ListParticipantsByTeam(_ context.Context, teamID string) ([]entities.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Participant, 0)
	for _, participant := range s.participants {
		if participant.TeamID == strings.TrimSpace(teamID) {
			items = append(items, participant)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *Store) SaveJudge(_ context.Context, judge entities.Judge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.judges {
		if strings.EqualFold(existing.Login, judge.Login) {
			return domainerrors.ErrDuplicateEntry
		}
	}
	s.judges[judge.JudgeID] = judge
	return nil
}

func (s *Store) GetJudge(_ context.Context, judgeID string) (entities.Judge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	judge, ok := s.judges[strings.TrimSpace(judgeID)]
	if !ok {
		return entities.Judge{}, domainerrors.ErrJudgeNotFound
	}
	return judge, nil
}

func (s *Store) GetJudgeByLogin(_ context.Context, login string) (entities.Judge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, judge := range s.judges {
		if strings.EqualFold(judge.Login, strings.TrimSpace(login)) {
			return judge, nil
		}
	}
	return entities.Judge{}, domainerrors.ErrJudgeNotFound
}

func (s *Store) ListJudgesByYear(_ context.Context, year int) ([]entities.Judge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Judge, 0)
	for _, judge := range s.judges {
		if judge.Year == year {
			items = append(items, judge)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *Store) UpdateJudgePassword(_ context.Context, judgeID string, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	judge, ok := s.judges[strings.TrimSpace(judgeID)]
	if !ok {
		return domainerrors.ErrJudgeNotFound
	}
	judge.PasswordHash = passwordHash
	s.judges[judge.JudgeID] = judge
	return nil
}

func (s *Store) SaveSpecialist(_ context.Context, assignment entities.SpecialistAssignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := specialistKey(assignment)
	if _, exists := s.specialists[key]; exists {
		return domainerrors.ErrDuplicateEntry
	}
	s.specialists[key] = assignment
	return nil
}

func (s *Store) DeleteSpecialist(_ context.Context, assignment entities.SpecialistAssignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.specialists, specialistKey(assignment))
	return nil
}

func (s *Store) ListSpecialists(_ context.Context, year int, modalityID string) ([]entities.SpecialistAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.SpecialistAssignment, 0)
	for _, assignment := range s.specialists {
		if assignment.Year == year && assignment.ModalityID == strings.TrimSpace(modalityID) {
			items = append(items, assignment)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].JudgeID < items[j].JudgeID })
	return items, nil
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
