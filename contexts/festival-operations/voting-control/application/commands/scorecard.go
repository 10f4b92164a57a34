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

// ScoreUseCase mutates individual score cards within an open session.
type ScoreUseCase struct {
	Scores ports.ScoreRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

// Submit commits a value on an editable card and moves it to the
// submitted state. The write is atomic per card.
func (uc ScoreUseCase) Submit(ctx context.Context, scoreID string, value int) (entities.ScoreCard, error) {
	logger := application.ResolveLogger(uc.Logger)
	if !entities.ValidScoreValue(value) {
		return entities.ScoreCard{}, domainerrors.ErrInvalidScoreValue
	}
	card, err := uc.Scores.GetScore(ctx, strings.TrimSpace(scoreID))
	if err != nil {
		return entities.ScoreCard{}, err
	}
	if !card.Status.Editable() {
		return entities.ScoreCard{}, domainerrors.ErrScoreNotEditable
	}
	card.Value = &value
	card.Status = entities.ScoreSubmitted
	card.UpdatedAt = uc.Clock.Now()
	if err := uc.Scores.SaveScore(ctx, card); err != nil {
		return entities.ScoreCard{}, err
	}
	logger.Info("score submitted",
		"event", "voting_score_submitted",
		"module", "festival-operations/voting-control",
		"layer", "application",
		"score_id", card.ScoreID,
		"team_id", card.TeamID,
		"judge_id", card.JudgeID,
		"value", value,
	)
	return card, nil
}

// MarkInProgress flags an open card as shown to the judge. Cards already
// in progress pass through unchanged.
func (uc ScoreUseCase) MarkInProgress(ctx context.Context, scoreID string) (entities.ScoreCard, error) {
	card, err := uc.Scores.GetScore(ctx, strings.TrimSpace(scoreID))
	if err != nil {
		return entities.ScoreCard{}, err
	}
	if card.Status == entities.ScoreInProgress {
		return card, nil
	}
	if card.Status != entities.ScoreOpen {
		return entities.ScoreCard{}, domainerrors.ErrScoreNotEditable
	}
	card.Status = entities.ScoreInProgress
	card.UpdatedAt = uc.Clock.Now()
	if err := uc.Scores.SaveScore(ctx, card); err != nil {
		return entities.ScoreCard{}, err
	}
	return card, nil
}

// SubmitBallot commits a judge's whole ballot for a team. Every editable
// card must receive an in-band value before any write is issued; a
// partial ballot is rejected without touching the store.
func (uc ScoreUseCase) SubmitBallot(ctx context.Context, teamID string, judgeID string, values map[string]int) error {
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
	editable := make([]entities.ScoreCard, 0, len(cards))
	for _, card := range cards {
		if card.Status.Editable() {
			editable = append(editable, card)
		}
	}
	if len(editable) == 0 {
		return domainerrors.ErrScoreNotFound
	}
	for _, card := range editable {
		value, present := values[card.ScoreID]
		if !present {
			return domainerrors.ErrIncompleteBallot
		}
		if !entities.ValidScoreValue(value) {
			return domainerrors.ErrInvalidScoreValue
		}
	}

	now := uc.Clock.Now()
	for _, card := range editable {
		value := values[card.ScoreID]
		card.Value = &value
		card.Status = entities.ScoreSubmitted
		card.UpdatedAt = now
		if err := uc.Scores.SaveScore(ctx, card); err != nil {
			return err
		}
	}
	logger.Info("ballot submitted",
		"event", "voting_ballot_submitted",
		"module", "festival-operations/voting-control",
		"layer", "application",
		"team_id", teamID,
		"judge_id", judgeID,
		"cards", len(editable),
	)
	return nil
}
