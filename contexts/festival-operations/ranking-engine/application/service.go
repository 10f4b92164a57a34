package application

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"festival/contexts/festival-operations/ranking-engine/domain/entities"
	domainerrors "festival/contexts/festival-operations/ranking-engine/domain/errors"
	"festival/contexts/festival-operations/ranking-engine/ports"
)

// Service computes and persists team rankings.
type Service struct {
	Scores      ports.ScoreSource
	Specialists ports.SpecialistSource
	Teams       ports.TeamSource
	Rankings    ports.RankingRepository
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// FinalScore aggregates a team's submitted cards into one value and
// upserts the Ranking row.
//
// Each judge contributes the arithmetic mean of their submitted
// criterion values. General judges are folded into a single consensus
// mean; every specialist's mean is added as its own term. The total is
// divided by one unit for the general bloc plus one unit per
// specialist, so specialists as a group carry weight proportional to
// their count. That weighting is the festival's scoring policy and must
// not be "fixed". A team with no submitted cards scores 0.0; that is a
// valid outcome, not an error.
func (s Service) FinalScore(ctx context.Context, year int, modalityID string, teamID string) (entities.Ranking, error) {
	modalityID = strings.TrimSpace(modalityID)
	teamID = strings.TrimSpace(teamID)
	if year <= 0 || modalityID == "" || teamID == "" {
		return entities.Ranking{}, domainerrors.ErrInvalidInput
	}

	specialistIDs, err := s.Specialists.SpecialistJudgeIDs(ctx, year, modalityID)
	if err != nil {
		return entities.Ranking{}, err
	}
	specialists := make(map[string]bool, len(specialistIDs))
	for _, id := range specialistIDs {
		specialists[id] = true
	}

	scores, err := s.Scores.SubmittedScores(ctx, year, modalityID, teamID)
	if err != nil {
		return entities.Ranking{}, err
	}

	final := aggregate(scores, specialists)

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Ranking{}, err
	}
	ranking := entities.Ranking{
		RankingID:  id,
		Year:       year,
		ModalityID: modalityID,
		TeamID:     teamID,
		FinalScore: final,
		ComputedAt: s.Clock.Now(),
	}
	if err := s.Rankings.UpsertRanking(ctx, ranking); err != nil {
		return entities.Ranking{}, err
	}
	s.logger().Info("final score computed",
		"event", "ranking_final_score_computed",
		"module", "festival-operations/ranking-engine",
		"layer", "application",
		"team_id", teamID,
		"modality_id", modalityID,
		"year", year,
		"final_score", final,
		"submitted_cards", len(scores),
	)
	return ranking, nil
}

func aggregate(scores []ports.SubmittedScore, specialists map[string]bool) float64 {
	if len(scores) == 0 {
		return 0.0
	}

	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, score := range scores {
		sums[score.JudgeID] += score.Value
		counts[score.JudgeID]++
	}

	var (
		generalTotal   float64
		generalCount   int
		specialistSum  float64
		specialistRows int
	)
	for judgeID, sum := range sums {
		mean := float64(sum) / float64(counts[judgeID])
		if specialists[judgeID] {
			specialistSum += mean
			specialistRows++
		} else {
			generalTotal += mean
			generalCount++
		}
	}

	if generalCount == 0 && specialistRows == 0 {
		return 0.0
	}
	meanGeneral := 0.0
	if generalCount > 0 {
		meanGeneral = generalTotal / float64(generalCount)
	}
	return (meanGeneral + specialistSum) / float64(specialistRows+1)
}

// RecomputeModality refreshes the ranking of every team in the
// modality. Safe to run repeatedly; aggregation is idempotent over the
// same card data.
func (s Service) RecomputeModality(ctx context.Context, year int, modalityID string) error {
	teams, err := s.Teams.TeamsByModality(ctx, strings.TrimSpace(modalityID))
	if err != nil {
		return err
	}
	for _, team := range teams {
		if _, err := s.FinalScore(ctx, year, modalityID, team.TeamID); err != nil {
			return err
		}
	}
	return nil
}

// GradeStandings is one grade-level bracket of the standings board.
type GradeStandings struct {
	Grade string
	Teams []entities.TeamStanding
}

// Standings recomputes every team of the modality, then groups the
// rankings by grade and orders each bracket by final score descending.
// Equal scores fall back to team name ascending so the board is
// deterministic.
func (s Service) Standings(ctx context.Context, year int, modalityID string) ([]GradeStandings, error) {
	modalityID = strings.TrimSpace(modalityID)
	if year <= 0 || modalityID == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	if err := s.RecomputeModality(ctx, year, modalityID); err != nil {
		return nil, err
	}
	teams, err := s.Teams.TeamsByModality(ctx, modalityID)
	if err != nil {
		return nil, err
	}
	rankings, err := s.Rankings.ListRankings(ctx, year, modalityID)
	if err != nil {
		return nil, err
	}
	scores := make(map[string]float64, len(rankings))
	for _, ranking := range rankings {
		scores[ranking.TeamID] = ranking.FinalScore
	}

	byGrade := make(map[string][]entities.TeamStanding)
	for _, team := range teams {
		byGrade[team.Grade] = append(byGrade[team.Grade], entities.TeamStanding{
			TeamID:       team.TeamID,
			TeamName:     team.Name,
			Grade:        team.Grade,
			Participants: team.Participants,
			FinalScore:   scores[team.TeamID],
		})
	}

	grades := make([]string, 0, len(byGrade))
	for grade := range byGrade {
		grades = append(grades, grade)
	}
	sort.Strings(grades)

	standings := make([]GradeStandings, 0, len(grades))
	for _, grade := range grades {
		bracket := byGrade[grade]
		sort.Slice(bracket, func(i, j int) bool {
			if bracket[i].FinalScore != bracket[j].FinalScore {
				return bracket[i].FinalScore > bracket[j].FinalScore
			}
			return bracket[i].TeamName < bracket[j].TeamName
		})
		for i := range bracket {
			bracket[i].Position = i + 1
		}
		standings = append(standings, GradeStandings{Grade: grade, Teams: bracket})
	}
	return standings, nil
}
