package commands

import (
	"context"
	"log/slog"
	"strings"

	application "festival/contexts/festival-operations/voting-control/application"
	"festival/contexts/festival-operations/voting-control/domain/entities"
	domainerrors "festival/contexts/festival-operations/voting-control/domain/errors"
	"festival/contexts/festival-operations/voting-control/ports"
)

// SessionUseCase owns the team-level voting lifecycle: opening a session
// provisions one card per (judge, criterion), resetting discards the
// whole card set, and the roster operations adjust a single judge
// mid-session.
type SessionUseCase struct {
	Scores ports.ScoreRepository
	Roster ports.RosterDirectory
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// StartSession provisions cards for the cross product of the year's
// judges and the modality's criteria. The repository applies the status
// flip and the inserts in one atomic step.
func (uc SessionUseCase) StartSession(ctx context.Context, teamID string) error {
	logger := application.ResolveLogger(uc.Logger)
	team, err := uc.Roster.TeamByID(ctx, strings.TrimSpace(teamID))
	if err != nil {
		return err
	}
	if team.Voting {
		return domainerrors.ErrSessionAlreadyOpen
	}

	judges, err := uc.Roster.JudgesByYear(ctx, team.Year)
	if err != nil {
		return err
	}
	criteria, err := uc.Roster.CriteriaByModality(ctx, team.ModalityID)
	if err != nil {
		return err
	}

	now := uc.Clock.Now()
	cards := make([]entities.ScoreCard, 0, len(judges)*len(criteria))
	for _, judge := range judges {
		for _, criterion := range criteria {
			id, err := uc.IDGen.NewID(ctx)
			if err != nil {
				return err
			}
			cards = append(cards, entities.ScoreCard{
				ScoreID:     id,
				Year:        team.Year,
				ModalityID:  team.ModalityID,
				TeamID:      team.TeamID,
				JudgeID:     judge.JudgeID,
				CriterionID: criterion.CriterionID,
				Status:      entities.ScoreOpen,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
	}

	if err := uc.Scores.ProvisionSession(ctx, team.TeamID, cards); err != nil {
		return err
	}
	logger.Info("voting session opened",
		"event", "voting_session_started",
		"module", "festival-operations/voting-control",
		"layer", "application",
		"team_id", team.TeamID,
		"modality_id", team.ModalityID,
		"year", team.Year,
		"cards", len(cards),
	)
	return nil
}

// ResetSession discards every card for the team and returns it to the
// awaiting state. Submitted values are lost; there is no undo.
func (uc SessionUseCase) ResetSession(ctx context.Context, teamID string) error {
	logger := application.ResolveLogger(uc.Logger)
	team, err := uc.Roster.TeamByID(ctx, strings.TrimSpace(teamID))
	if err != nil {
		return err
	}
	if err := uc.Scores.ClearSession(ctx, team.TeamID); err != nil {
		return err
	}
	logger.Info("voting session reset",
		"event", "voting_session_reset",
		"module", "festival-operations/voting-control",
		"layer", "application",
		"team_id", team.TeamID,
	)
	return nil
}

// AddJudge provisions cards for one judge, skipping criteria that
// already have a card for the pair. Repeated calls are idempotent.
func (uc SessionUseCase) AddJudge(ctx context.Context, teamID string, judgeID string) error {
	logger := application.ResolveLogger(uc.Logger)
	team, err := uc.Roster.TeamByID(ctx, strings.TrimSpace(teamID))
	if err != nil {
		return err
	}
	judgeID = strings.TrimSpace(judgeID)
	judges, err := uc.Roster.JudgesByYear(ctx, team.Year)
	if err != nil {
		return err
	}
	known := false
	for _, judge := range judges {
		if judge.JudgeID == judgeID {
			known = true
			break
		}
	}
	if !known {
		return domainerrors.ErrJudgeNotFound
	}

	criteria, err := uc.Roster.CriteriaByModality(ctx, team.ModalityID)
	if err != nil {
		return err
	}
	existing, err := uc.Scores.ListJudgeTeamScores(ctx, team.TeamID, judgeID)
	if err != nil {
		return err
	}
	covered := make(map[string]bool, len(existing))
	for _, card := range existing {
		covered[card.CriterionID] = true
	}

	now := uc.Clock.Now()
	cards := make([]entities.ScoreCard, 0, len(criteria))
	for _, criterion := range criteria {
		if covered[criterion.CriterionID] {
			continue
		}
		id, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return err
		}
		cards = append(cards, entities.ScoreCard{
			ScoreID:     id,
			Year:        team.Year,
			ModalityID:  team.ModalityID,
			TeamID:      team.TeamID,
			JudgeID:     judgeID,
			CriterionID: criterion.CriterionID,
			Status:      entities.ScoreOpen,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	if len(cards) == 0 {
		return nil
	}
	if err := uc.Scores.InsertScores(ctx, cards); err != nil {
		return err
	}
	logger.Info("judge added to session",
		"event", "voting_session_judge_added",
		"module", "festival-operations/voting-control",
		"layer", "application",
		"team_id", team.TeamID,
		"judge_id", judgeID,
		"cards", len(cards),
	)
	return nil
}

// BlockJudge moves the judge's open cards for the team to blocked and
// clears any typed-but-unsubmitted value. Already-blocked and submitted
// cards are untouched.
func (uc SessionUseCase) BlockJudge(ctx context.Context, teamID string, judgeID string) error {
	return uc.toggleJudge(ctx, teamID, judgeID, true)
}

// UnblockJudge moves blocked cards back to open. Values cleared by the
// block are not restored.
func (uc SessionUseCase) UnblockJudge(ctx context.Context, teamID string, judgeID string) error {
	return uc.toggleJudge(ctx, teamID, judgeID, false)
}

func (uc SessionUseCase) toggleJudge(ctx context.Context, teamID string, judgeID string, block bool) error {
	logger := application.ResolveLogger(uc.Logger)
	teamID = strings.TrimSpace(teamID)
	judgeID = strings.TrimSpace(judgeID)
	if teamID == "" || judgeID == "" {
		return domainerrors.ErrInvalidInput
	}
	cards, err := uc.Scores.ListJudgeTeamScores(ctx, teamID, judgeID)
	if err != nil {
		return err
	}
	now := uc.Clock.Now()
	changed := 0
	for _, card := range cards {
		switch {
		case block && card.Status.Editable():
			card.Status = entities.ScoreBlocked
			card.Value = nil
		case !block && card.Status == entities.ScoreBlocked:
			card.Status = entities.ScoreOpen
		case card.Status == entities.ScoreSubmitted,
			block && card.Status == entities.ScoreBlocked,
			!block && card.Status.Editable():
			continue
		default:
			logger.Warn("score card with unrecognized status skipped",
				"event", "voting_toggle_unknown_status",
				"module", "festival-operations/voting-control",
				"layer", "application",
				"score_id", card.ScoreID,
				"status", string(card.Status),
			)
			continue
		}
		card.UpdatedAt = now
		if err := uc.Scores.SaveScore(ctx, card); err != nil {
			return err
		}
		changed++
	}
	logger.Info("judge toggle applied",
		"event", "voting_session_judge_toggled",
		"module", "festival-operations/voting-control",
		"layer", "application",
		"team_id", teamID,
		"judge_id", judgeID,
		"blocked", block,
		"cards", changed,
	)
	return nil
}
