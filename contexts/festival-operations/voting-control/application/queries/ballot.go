package queries

import (
	"context"
	"sort"
	"strings"

	"festival/contexts/festival-operations/voting-control/domain/entities"
	domainerrors "festival/contexts/festival-operations/voting-control/domain/errors"
	"festival/contexts/festival-operations/voting-control/ports"
)

// BallotTeam is a team a judge can currently act on.
type BallotTeam struct {
	TeamID         string
	Name           string
	Grade          string
	ModalityName   string
	TechnicalSheet string
	Participants   []string
	Pending        int
}

// BallotItem is one criterion line on a judge's ballot. Submitted lines
// carry their value read-only; blocked lines never appear.
type BallotItem struct {
	ScoreID       string
	CriterionID   string
	CriterionName string
	Value         *int
	Status        entities.ScoreStatus
	Editable      bool
}

type Ballot struct {
	TeamID  string
	JudgeID string
	Items   []BallotItem
}

// BallotUseCase serves the judge-facing reads.
type BallotUseCase struct {
	Scores ports.ScoreRepository
	Roster ports.RosterDirectory
}

// VotingTeams lists teams in voting for the year that still hold at
// least one editable card for the judge.
func (uc BallotUseCase) VotingTeams(ctx context.Context, year int, judgeID string) ([]BallotTeam, error) {
	judgeID = strings.TrimSpace(judgeID)
	if judgeID == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	teams, err := uc.Roster.TeamsInVoting(ctx, year)
	if err != nil {
		return nil, err
	}
	items := make([]BallotTeam, 0, len(teams))
	for _, team := range teams {
		cards, err := uc.Scores.ListJudgeTeamScores(ctx, team.TeamID, judgeID)
		if err != nil {
			return nil, err
		}
		pending := 0
		for _, card := range cards {
			if card.Status.Editable() {
				pending++
			}
		}
		if pending == 0 {
			continue
		}
		items = append(items, BallotTeam{
			TeamID:         team.TeamID,
			Name:           team.Name,
			Grade:          team.Grade,
			ModalityName:   team.ModalityName,
			TechnicalSheet: team.TechnicalSheet,
			Participants:   team.Participants,
			Pending:        pending,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// JudgeBallot assembles the judge's card list for one team with
// criterion names resolved. Blocked cards are filtered out.
func (uc BallotUseCase) JudgeBallot(ctx context.Context, teamID string, judgeID string) (Ballot, error) {
	teamID = strings.TrimSpace(teamID)
	judgeID = strings.TrimSpace(judgeID)
	if teamID == "" || judgeID == "" {
		return Ballot{}, domainerrors.ErrInvalidInput
	}
	team, err := uc.Roster.TeamByID(ctx, teamID)
	if err != nil {
		return Ballot{}, err
	}
	criteria, err := uc.Roster.CriteriaByModality(ctx, team.ModalityID)
	if err != nil {
		return Ballot{}, err
	}
	names := make(map[string]string, len(criteria))
	for _, criterion := range criteria {
		names[criterion.CriterionID] = criterion.Name
	}

	cards, err := uc.Scores.ListJudgeTeamScores(ctx, teamID, judgeID)
	if err != nil {
		return Ballot{}, err
	}
	ballot := Ballot{TeamID: teamID, JudgeID: judgeID, Items: make([]BallotItem, 0, len(cards))}
	for _, card := range cards {
		if card.Status == entities.ScoreBlocked {
			continue
		}
		ballot.Items = append(ballot.Items, BallotItem{
			ScoreID:       card.ScoreID,
			CriterionID:   card.CriterionID,
			CriterionName: names[card.CriterionID],
			Value:         card.Value,
			Status:        card.Status,
			Editable:      card.Status.Editable(),
		})
	}
	sort.Slice(ballot.Items, func(i, j int) bool {
		return ballot.Items[i].CriterionName < ballot.Items[j].CriterionName
	})
	return ballot, nil
}
