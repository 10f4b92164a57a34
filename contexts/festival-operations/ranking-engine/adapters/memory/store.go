package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"festival/contexts/festival-operations/ranking-engine/domain/entities"
	"festival/contexts/festival-operations/ranking-engine/ports"
)

type scoreRow struct {
	Year        int
	ModalityID  string
	TeamID      string
	JudgeID     string
	CriterionID string
	Value       int
}

// Store backs tests and local wiring. Voting and registry data arrive
// through seed methods; the upsert keeps one Ranking row per key.
type Store struct {
	mu sync.RWMutex

	scores      []scoreRow
	specialists map[string][]string
	teams       map[string][]ports.TeamRef
	rankings    map[string]entities.Ranking

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		specialists: make(map[string][]string),
		teams:       make(map[string][]ports.TeamRef),
		rankings:    make(map[string]entities.Ranking),
		now:         time.Now,
	}
}

func (s *Store) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SeedSubmittedScore registers one committed card value.
func (s *Store) SeedSubmittedScore(year int, modalityID, teamID, judgeID, criterionID string, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = append(s.scores, scoreRow{
		Year:        year,
		ModalityID:  modalityID,
		TeamID:      teamID,
		JudgeID:     judgeID,
		CriterionID: criterionID,
		Value:       value,
	})
}

func (s *Store) SeedSpecialist(year int, modalityID, judgeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := specialistKey(year, modalityID)
	s.specialists[key] = append(s.specialists[key], judgeID)
}

func (s *Store) SeedTeam(modalityID string, team ports.TeamRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[modalityID] = append(s.teams[modalityID], team)
}

func (s *Store) SubmittedScores(_ context.Context, year int, modalityID string, teamID string) ([]ports.SubmittedScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]ports.SubmittedScore, 0)
	for _, row := range s.scores {
		if row.Year == year && row.ModalityID == strings.TrimSpace(modalityID) && row.TeamID == strings.TrimSpace(teamID) {
			items = append(items, ports.SubmittedScore{
				JudgeID:     row.JudgeID,
				CriterionID: row.CriterionID,
				Value:       row.Value,
			})
		}
	}
	return items, nil
}

func (s *Store) SpecialistJudgeIDs(_ context.Context, year int, modalityID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.specialists[specialistKey(year, strings.TrimSpace(modalityID))]
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

func (s *Store) TeamsByModality(_ context.Context, modalityID string) ([]ports.TeamRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teams := s.teams[strings.TrimSpace(modalityID)]
	out := make([]ports.TeamRef, len(teams))
	copy(out, teams)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) UpsertRanking(_ context.Context, ranking entities.Ranking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := rankingKey(ranking.Year, ranking.ModalityID, ranking.TeamID)
	if existing, ok := s.rankings[key]; ok {
		existing.FinalScore = ranking.FinalScore
		existing.ComputedAt = ranking.ComputedAt
		s.rankings[key] = existing
		return nil
	}
	s.rankings[key] = ranking
	return nil
}

func (s *Store) ListRankings(_ context.Context, year int, modalityID string) ([]entities.Ranking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Ranking, 0)
	for _, ranking := range s.rankings {
		if ranking.Year == year && ranking.ModalityID == strings.TrimSpace(modalityID) {
			items = append(items, ranking)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].TeamID < items[j].TeamID })
	return items, nil
}

// RankingCount reports stored rows for upsert assertions in tests.
func (s *Store) RankingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rankings)
}

func (s *Store) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func specialistKey(year int, modalityID string) string {
	return fmt.Sprintf("%d|%s", year, modalityID)
}

func rankingKey(year int, modalityID, teamID string) string {
	return fmt.Sprintf("%d|%s|%s", year, modalityID, teamID)
}
