package queries

import (
	"context"
	"sort"
	"strings"

	"festival/contexts/festival-operations/voting-control/domain/entities"
	domainerrors "festival/contexts/festival-operations/voting-control/domain/errors"
	"festival/contexts/festival-operations/voting-control/ports"
)

// CriterionValue is one judge's card for a criterion as the organizer
// panel shows it.
type CriterionValue struct {
	CriterionID   string
	CriterionName string
	Value         *int
	Status        entities.ScoreStatus
}

// JudgeProgress summarizes one judge's standing within a team session.
type JudgeProgress struct {
	JudgeID    string
	JudgeName  string
	Specialist bool
	Submitted  int
	Pending    int
	Blocked    int
	Values     []CriterionValue
}

type SessionOverview struct {
	TeamID   string
	TeamName string
	Voting   bool
	Judges   []JudgeProgress
}

// OverviewUseCase serves the organizer-facing session dashboard read.
type OverviewUseCase struct {
	Scores ports.ScoreRepository
	Roster ports.RosterDirectory
}

func (uc OverviewUseCase) SessionOverview(ctx context.Context, teamID string) (SessionOverview, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return SessionOverview{}, domainerrors.ErrInvalidInput
	}
	team, err := uc.Roster.TeamByID(ctx, teamID)
	if err != nil {
		return SessionOverview{}, err
	}
	judges, err := uc.Roster.JudgesByYear(ctx, team.Year)
	if err != nil {
		return SessionOverview{}, err
	}
	names := make(map[string]string, len(judges))
	for _, judge := range judges {
		names[judge.JudgeID] = judge.Name
	}
	specialists, err := uc.Roster.SpecialistJudges(ctx, team.Year, team.ModalityID)
	if err != nil {
		return SessionOverview{}, err
	}
	criteria, err := uc.Roster.CriteriaByModality(ctx, team.ModalityID)
	if err != nil {
		return SessionOverview{}, err
	}
	criterionNames := make(map[string]string, len(criteria))
	for _, criterion := range criteria {
		criterionNames[criterion.CriterionID] = criterion.Name
	}

	cards, err := uc.Scores.ListTeamScores(ctx, teamID)
	if err != nil {
		return SessionOverview{}, err
	}
	byJudge := make(map[string]*JudgeProgress)
	for _, card := range cards {
		progress, ok := byJudge[card.JudgeID]
		if !ok {
			progress = &JudgeProgress{
				JudgeID:    card.JudgeID,
				JudgeName:  names[card.JudgeID],
				Specialist: specialists[card.JudgeID],
			}
			byJudge[card.JudgeID] = progress
		}
		switch {
		case card.Status == entities.ScoreSubmitted:
			progress.Submitted++
		case card.Status == entities.ScoreBlocked:
			progress.Blocked++
		case card.Status.Editable():
			progress.Pending++
		}
		progress.Values = append(progress.Values, CriterionValue{
			CriterionID:   card.CriterionID,
			CriterionName: criterionNames[card.CriterionID],
			Value:         card.Value,
			Status:        card.Status,
		})
	}
	for _, progress := range byJudge {
		sort.Slice(progress.Values, func(i, j int) bool {
			return progress.Values[i].CriterionName < progress.Values[j].CriterionName
		})
	}

	overview := SessionOverview{
		TeamID:   team.TeamID,
		TeamName: team.Name,
		Voting:   team.Voting,
		Judges:   make([]JudgeProgress, 0, len(byJudge)),
	}
	for _, progress := range byJudge {
		overview.Judges = append(overview.Judges, *progress)
	}
	sort.Slice(overview.Judges, func(i, j int) bool {
		return overview.Judges[i].JudgeName < overview.Judges[j].JudgeName
	})
	return overview, nil
}
