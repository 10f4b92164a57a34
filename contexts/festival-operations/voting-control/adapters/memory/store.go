package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"festival/contexts/festival-operations/voting-control/domain/entities"
	domainerrors "festival/contexts/festival-operations/voting-control/domain/errors"
	"festival/contexts/festival-operations/voting-control/ports"
)

// Store backs tests and local wiring. Registry data arrives through
// projection upserts; in production the postgres adapter reads the
// registry tables directly.
type Store struct {
	mu sync.RWMutex

	scores      map[string]entities.ScoreCard
	teams       map[string]ports.TeamProjection
	judges      map[string]ports.JudgeProjection
	criteria    map[string]ports.CriterionProjection
	specialists map[specialistKey]bool

	now func() time.Time
}

type specialistKey struct {
	year       int
	judgeID    string
	modalityID string
}

func NewStore() *Store {
	return &Store{
		scores:      make(map[string]entities.ScoreCard),
		teams:       make(map[string]ports.TeamProjection),
		judges:      make(map[string]ports.JudgeProjection),
		criteria:    make(map[string]ports.CriterionProjection),
		specialists: make(map[specialistKey]bool),
		now:         time.Now,
	}
}

// SetNow overrides the clock for tests.
func (s *Store) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) UpsertTeamProjection(team ports.TeamProjection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[team.TeamID] = team
}

func (s *Store) UpsertJudgeProjection(judge ports.JudgeProjection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.judges[judge.JudgeID] = judge
}

func (s *Store) UpsertCriterionProjection(criterion ports.CriterionProjection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria[criterion.CriterionID] = criterion
}

func (s *Store) UpsertSpecialist(year int, judgeID string, modalityID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.specialists[specialistKey{year: year, judgeID: judgeID, modalityID: modalityID}] = true
}

func (s *Store) GetScore(_ context.Context, scoreID string) (entities.ScoreCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	card, ok := s.scores[strings.TrimSpace(scoreID)]
	if !ok {
		return entities.ScoreCard{}, domainerrors.ErrScoreNotFound
	}
	return card, nil
}

func (s *Store) SaveScore(_ context.Context, score entities.ScoreCard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.scores[score.ScoreID]; !ok {
		return domainerrors.ErrScoreNotFound
	}
	s.scores[score.ScoreID] = score
	return nil
}

func (s *Store) ListTeamScores(_ context.Context, teamID string) ([]entities.ScoreCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectScores(func(card entities.ScoreCard) bool {
		return card.TeamID == strings.TrimSpace(teamID)
	}), nil
}

func (s *Store) ListJudgeTeamScores(_ context.Context, teamID string, judgeID string) ([]entities.ScoreCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectScores(func(card entities.ScoreCard) bool {
		return card.TeamID == strings.TrimSpace(teamID) && card.JudgeID == strings.TrimSpace(judgeID)
	}), nil
}

func (s *Store) InsertScores(_ context.Context, scores []entities.ScoreCard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, card := range scores {
		if _, exists := s.scores[card.ScoreID]; exists {
			return domainerrors.ErrStoreUnavailable
		}
	}
	for _, card := range scores {
		s.scores[card.ScoreID] = card
	}
	return nil
}

func (s *Store) ProvisionSession(_ context.Context, teamID string, scores []entities.ScoreCard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	team, ok := s.teams[strings.TrimSpace(teamID)]
	if !ok {
		return domainerrors.ErrTeamNotFound
	}
	for _, card := range scores {
		if _, exists := s.scores[card.ScoreID]; exists {
			return domainerrors.ErrStoreUnavailable
		}
	}
	team.Voting = true
	s.teams[team.TeamID] = team
	for _, card := range scores {
		s.scores[card.ScoreID] = card
	}
	return nil
}

func (s *Store) ClearSession(_ context.Context, teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	team, ok := s.teams[strings.TrimSpace(teamID)]
	if !ok {
		return domainerrors.ErrTeamNotFound
	}
	team.Voting = false
	s.teams[team.TeamID] = team
	for id, card := range s.scores {
		if card.TeamID == team.TeamID {
			delete(s.scores, id)
		}
	}
	return nil
}

func (s *Store) TeamByID(_ context.Context, teamID string) (ports.TeamProjection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	team, ok := s.teams[strings.TrimSpace(teamID)]
	if !ok {
		return ports.TeamProjection{}, domainerrors.ErrTeamNotFound
	}
	return team, nil
}

func (s *Store) TeamsInVoting(_ context.Context, year int) ([]ports.TeamProjection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]ports.TeamProjection, 0)
	for _, team := range s.teams {
		if team.Voting && team.Year == year {
			items = append(items, team)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *Store) JudgesByYear(_ context.Context, year int) ([]ports.JudgeProjection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]ports.JudgeProjection, 0)
	for _, judge := range s.judges {
		if judge.Year == year {
			items = append(items, judge)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *Store) CriteriaByModality(_ context.Context, modalityID string) ([]ports.CriterionProjection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]ports.CriterionProjection, 0)
	for _, criterion := range s.criteria {
		if criterion.ModalityID == strings.TrimSpace(modalityID) {
			items = append(items, criterion)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *Store) SpecialistJudges(_ context.Context, year int, modalityID string) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make(map[string]bool)
	for key := range s.specialists {
		if key.year == year && key.modalityID == strings.TrimSpace(modalityID) {
			items[key.judgeID] = true
		}
	}
	return items, nil
}

func (s *Store) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) collectScores(match func(entities.ScoreCard) bool) []entities.ScoreCard {
	items := make([]entities.ScoreCard, 0)
	for _, card := range s.scores {
		if match(card) {
			items = append(items, card)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ScoreID < items[j].ScoreID })
	return items
}
