package votingcontrol_test

import (
	"context"
	"errors"
	"testing"

	votingcontrol "festival/contexts/festival-operations/voting-control"
	domainerrors "festival/contexts/festival-operations/voting-control/domain/errors"
	httptransport "festival/contexts/festival-operations/voting-control/transport/http"
)

func TestSubmitRejectsOutOfBandValues(t *testing.T) {
	module := votingcontrol.NewInMemoryModule(nil)
	seedRoster(module, 1, 1)
	ctx := context.Background()

	if _, err := module.Handler.StartSessionHandler(ctx, "team-1"); err != nil {
		t.Fatalf("start session failed: %v", err)
	}
	cards, _ := module.Store.ListTeamScores(ctx, "team-1")
	scoreID := cards[0].ScoreID

	for _, value := range []int{0, 5, 11, -3} {
		_, err := module.Handler.SubmitScoreHandler(ctx, scoreID, httptransport.SubmitScoreRequest{Value: value})
		if !errors.Is(err, domainerrors.ErrInvalidScoreValue) {
			t.Fatalf("value %d: expected validation error, got %v", value, err)
		}
		card, _ := module.Store.GetScore(ctx, scoreID)
		if !card.Status.Editable() || card.Value != nil {
			t.Fatalf("value %d: rejected submit must leave the card untouched", value)
		}
	}

	if _, err := module.Handler.SubmitScoreHandler(ctx, scoreID, httptransport.SubmitScoreRequest{Value: 6}); err != nil {
		t.Fatalf("boundary value 6 should be accepted: %v", err)
	}

	_, err := module.Handler.SubmitScoreHandler(ctx, scoreID, httptransport.SubmitScoreRequest{Value: 10})
	if !errors.Is(err, domainerrors.ErrScoreNotEditable) {
		t.Fatalf("expected submitted card to reject a second submit, got %v", err)
	}

	_, err = module.Handler.SubmitScoreHandler(ctx, "missing", httptransport.SubmitScoreRequest{Value: 8})
	if !errors.Is(err, domainerrors.ErrScoreNotFound) {
		t.Fatalf("expected not-found for unknown score, got %v", err)
	}
}

func TestSubmitBallotRequiresEveryEditableCard(t *testing.T) {
	module := votingcontrol.NewInMemoryModule(nil)
	seedRoster(module, 1, 3)
	ctx := context.Background()

	if _, err := module.Handler.StartSessionHandler(ctx, "team-1"); err != nil {
		t.Fatalf("start session failed: %v", err)
	}
	cards, _ := module.Store.ListJudgeTeamScores(ctx, "team-1", "judge-a")

	partial := map[string]int{cards[0].ScoreID: 8}
	_, err := module.Handler.SubmitBallotHandler(ctx, "team-1", "judge-a", httptransport.SubmitBallotRequest{Values: partial})
	if !errors.Is(err, domainerrors.ErrIncompleteBallot) {
		t.Fatalf("expected incomplete ballot rejection, got %v", err)
	}
	after, _ := module.Store.ListJudgeTeamScores(ctx, "team-1", "judge-a")
	for _, card := range after {
		if card.Value != nil {
			t.Fatal("partial ballot must not write any card")
		}
	}

	full := map[string]int{}
	for i, card := range cards {
		full[card.ScoreID] = 6 + i
	}
	if _, err := module.Handler.SubmitBallotHandler(ctx, "team-1", "judge-a", httptransport.SubmitBallotRequest{Values: full}); err != nil {
		t.Fatalf("full ballot failed: %v", err)
	}
	submitted, _ := module.Store.ListJudgeTeamScores(ctx, "team-1", "judge-a")
	for _, card := range submitted {
		if card.Status.Editable() || card.Value == nil {
			t.Fatalf("expected every card submitted, card %s is %q", card.ScoreID, card.Status)
		}
	}
}

func TestVotingTeamsListsOnlyPendingWork(t *testing.T) {
	module := votingcontrol.NewInMemoryModule(nil)
	seedRoster(module, 1, 2)
	ctx := context.Background()

	teams, err := module.Handler.VotingTeamsHandler(ctx, 2025, "judge-a")
	if err != nil {
		t.Fatalf("voting teams failed: %v", err)
	}
	if len(teams.Data) != 0 {
		t.Fatalf("expected no voting teams before session start, got %d", len(teams.Data))
	}

	if _, err := module.Handler.StartSessionHandler(ctx, "team-1"); err != nil {
		t.Fatalf("start session failed: %v", err)
	}
	teams, err = module.Handler.VotingTeamsHandler(ctx, 2025, "judge-a")
	if err != nil {
		t.Fatalf("voting teams failed: %v", err)
	}
	if len(teams.Data) != 1 || teams.Data[0].Pending != 2 {
		t.Fatalf("expected one team with 2 pending cards, got %+v", teams.Data)
	}
	if teams.Data[0].ModalityName != "Dance" || len(teams.Data[0].Participants) != 2 {
		t.Fatalf("expected roster detail on the team entry, got %+v", teams.Data[0])
	}

	cards, _ := module.Store.ListJudgeTeamScores(ctx, "team-1", "judge-a")
	values := map[string]int{}
	for _, card := range cards {
		values[card.ScoreID] = 7
	}
	if _, err := module.Handler.SubmitBallotHandler(ctx, "team-1", "judge-a", httptransport.SubmitBallotRequest{Values: values}); err != nil {
		t.Fatalf("ballot submit failed: %v", err)
	}

	teams, err = module.Handler.VotingTeamsHandler(ctx, 2025, "judge-a")
	if err != nil {
		t.Fatalf("voting teams failed: %v", err)
	}
	if len(teams.Data) != 0 {
		t.Fatalf("expected finished judge to see no teams, got %d", len(teams.Data))
	}

	ballot, err := module.Handler.JudgeBallotHandler(ctx, "team-1", "judge-a")
	if err != nil {
		t.Fatalf("ballot read failed: %v", err)
	}
	for _, item := range ballot.Data.Items {
		if item.Editable {
			t.Fatal("submitted items must be read-only on the ballot")
		}
		if item.Value == nil {
			t.Fatal("submitted items must carry their value")
		}
	}
}

func TestSessionOverviewCountsPerJudge(t *testing.T) {
	module := votingcontrol.NewInMemoryModule(nil)
	seedRoster(module, 2, 2)
	module.Store.UpsertSpecialist(2025, "judge-a", "mod-1")
	ctx := context.Background()

	if _, err := module.Handler.StartSessionHandler(ctx, "team-1"); err != nil {
		t.Fatalf("start session failed: %v", err)
	}
	cards, _ := module.Store.ListJudgeTeamScores(ctx, "team-1", "judge-a")
	if _, err := module.Handler.SubmitScoreHandler(ctx, cards[0].ScoreID, httptransport.SubmitScoreRequest{Value: 10}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := module.Handler.BlockJudgeHandler(ctx, "team-1", httptransport.JudgeToggleRequest{JudgeID: "judge-b"}); err != nil {
		t.Fatalf("block failed: %v", err)
	}

	overview, err := module.Handler.SessionOverviewHandler(ctx, "team-1")
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if !overview.Data.Voting {
		t.Fatal("expected overview to report open session")
	}
	if len(overview.Data.Judges) != 2 {
		t.Fatalf("expected 2 judges, got %d", len(overview.Data.Judges))
	}
	for _, judge := range overview.Data.Judges {
		switch judge.JudgeID {
		case "judge-a":
			if judge.Submitted != 1 || judge.Pending != 1 || judge.Blocked != 0 {
				t.Fatalf("unexpected judge-a progress: %+v", judge)
			}
			if !judge.Specialist {
				t.Fatal("expected judge-a flagged as specialist")
			}
			if len(judge.Values) != 2 || judge.Values[0].CriterionName == "" {
				t.Fatalf("expected per-criterion values with names, got %+v", judge.Values)
			}
		case "judge-b":
			if judge.Blocked != 2 || judge.Pending != 0 {
				t.Fatalf("unexpected judge-b progress: %+v", judge)
			}
			if judge.Specialist {
				t.Fatal("expected judge-b not flagged as specialist")
			}
		}
	}
}
