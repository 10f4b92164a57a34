package votingcontrol_test

import (
	"context"
	"errors"
	"testing"

	votingcontrol "festival/contexts/festival-operations/voting-control"
	domainerrors "festival/contexts/festival-operations/voting-control/domain/errors"
	"festival/contexts/festival-operations/voting-control/ports"
	httptransport "festival/contexts/festival-operations/voting-control/transport/http"
)

func seedRoster(module votingcontrol.Module, judges int, criteria int) {
	module.Store.UpsertTeamProjection(ports.TeamProjection{
		TeamID:       "team-1",
		Name:         "Blue Notes",
		Grade:        "high_school",
		Year:         2025,
		ModalityID:   "mod-1",
		ModalityName: "Dance",
		Participants: []string{"Alice", "Bruno"},
	})
	for i := 0; i < judges; i++ {
		module.Store.UpsertJudgeProjection(ports.JudgeProjection{
			JudgeID: "judge-" + string(rune('a'+i)),
			Name:    "Judge " + string(rune('A'+i)),
			Year:    2025,
		})
	}
	for i := 0; i < criteria; i++ {
		module.Store.UpsertCriterionProjection(ports.CriterionProjection{
			CriterionID: "crit-" + string(rune('a'+i)),
			Name:        "Criterion " + string(rune('A'+i)),
			ModalityID:  "mod-1",
		})
	}
}

func TestStartSessionProvisionsCrossProduct(t *testing.T) {
	module := votingcontrol.NewInMemoryModule(nil)
	seedRoster(module, 2, 3)
	ctx := context.Background()

	if _, err := module.Handler.StartSessionHandler(ctx, "team-1"); err != nil {
		t.Fatalf("start session failed: %v", err)
	}

	cards, err := module.Store.ListTeamScores(ctx, "team-1")
	if err != nil {
		t.Fatalf("list team scores failed: %v", err)
	}
	if len(cards) != 6 {
		t.Fatalf("expected 2x3 cards, got %d", len(cards))
	}
	for _, card := range cards {
		if card.Value != nil {
			t.Fatalf("expected unset value on fresh card %s", card.ScoreID)
		}
		if !card.Status.Editable() {
			t.Fatalf("expected fresh card to be editable, got %q", card.Status)
		}
	}

	_, err = module.Handler.StartSessionHandler(ctx, "team-1")
	if !errors.Is(err, domainerrors.ErrSessionAlreadyOpen) {
		t.Fatalf("expected already-open rejection, got %v", err)
	}
}

func TestStartThenResetRoundTrip(t *testing.T) {
	module := votingcontrol.NewInMemoryModule(nil)
	seedRoster(module, 2, 2)
	ctx := context.Background()

	if _, err := module.Handler.StartSessionHandler(ctx, "team-1"); err != nil {
		t.Fatalf("start session failed: %v", err)
	}
	if _, err := module.Handler.ResetSessionHandler(ctx, "team-1"); err != nil {
		t.Fatalf("reset session failed: %v", err)
	}

	team, err := module.Store.TeamByID(ctx, "team-1")
	if err != nil {
		t.Fatalf("team lookup failed: %v", err)
	}
	if team.Voting {
		t.Fatal("expected team back in awaiting state")
	}
	cards, err := module.Store.ListTeamScores(ctx, "team-1")
	if err != nil {
		t.Fatalf("list team scores failed: %v", err)
	}
	if len(cards) != 0 {
		t.Fatalf("expected zero cards after reset, got %d", len(cards))
	}

	// A reset team can host a fresh session.
	if _, err := module.Handler.StartSessionHandler(ctx, "team-1"); err != nil {
		t.Fatalf("restart after reset failed: %v", err)
	}
}

func TestAddJudgeIsIdempotent(t *testing.T) {
	module := votingcontrol.NewInMemoryModule(nil)
	seedRoster(module, 1, 3)
	module.Store.UpsertJudgeProjection(ports.JudgeProjection{JudgeID: "judge-late", Name: "Late Judge", Year: 2025})
	ctx := context.Background()

	if _, err := module.Handler.StartSessionHandler(ctx, "team-1"); err != nil {
		t.Fatalf("start session failed: %v", err)
	}
	before, _ := module.Store.ListTeamScores(ctx, "team-1")

	req := httptransport.AddJudgeRequest{JudgeID: "judge-late"}
	if _, err := module.Handler.AddJudgeHandler(ctx, "team-1", req); err != nil {
		t.Fatalf("first add judge failed: %v", err)
	}
	afterFirst, _ := module.Store.ListTeamScores(ctx, "team-1")
	if len(afterFirst) != len(before)+3 {
		t.Fatalf("expected 3 new cards, got %d total", len(afterFirst))
	}

	if _, err := module.Handler.AddJudgeHandler(ctx, "team-1", req); err != nil {
		t.Fatalf("second add judge failed: %v", err)
	}
	afterSecond, _ := module.Store.ListTeamScores(ctx, "team-1")
	if len(afterSecond) != len(afterFirst) {
		t.Fatalf("expected idempotent add, got %d then %d cards", len(afterFirst), len(afterSecond))
	}

	_, err := module.Handler.AddJudgeHandler(ctx, "team-1", httptransport.AddJudgeRequest{JudgeID: "judge-nobody"})
	if !errors.Is(err, domainerrors.ErrJudgeNotFound) {
		t.Fatalf("expected unknown judge rejection, got %v", err)
	}
}

func TestBlockClearsValueAndUnblockRestoresEditability(t *testing.T) {
	module := votingcontrol.NewInMemoryModule(nil)
	seedRoster(module, 1, 2)
	ctx := context.Background()

	if _, err := module.Handler.StartSessionHandler(ctx, "team-1"); err != nil {
		t.Fatalf("start session failed: %v", err)
	}
	cards, _ := module.Store.ListJudgeTeamScores(ctx, "team-1", "judge-a")
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}

	toggle := httptransport.JudgeToggleRequest{JudgeID: "judge-a"}
	if _, err := module.Handler.BlockJudgeHandler(ctx, "team-1", toggle); err != nil {
		t.Fatalf("block failed: %v", err)
	}
	blocked, _ := module.Store.ListJudgeTeamScores(ctx, "team-1", "judge-a")
	for _, card := range blocked {
		if card.Status.Editable() {
			t.Fatalf("expected blocked card, got %q", card.Status)
		}
		if card.Value != nil {
			t.Fatal("expected blocked card value cleared")
		}
	}

	ballot, err := module.Handler.JudgeBallotHandler(ctx, "team-1", "judge-a")
	if err != nil {
		t.Fatalf("ballot read failed: %v", err)
	}
	if len(ballot.Data.Items) != 0 {
		t.Fatalf("expected blocked cards hidden from ballot, got %d items", len(ballot.Data.Items))
	}

	if _, err := module.Handler.UnblockJudgeHandler(ctx, "team-1", toggle); err != nil {
		t.Fatalf("unblock failed: %v", err)
	}
	unblocked, _ := module.Store.ListJudgeTeamScores(ctx, "team-1", "judge-a")
	for _, card := range unblocked {
		if !card.Status.Editable() {
			t.Fatalf("expected editable card after unblock, got %q", card.Status)
		}
		if card.Value != nil {
			t.Fatal("unblock must not restore a cleared value")
		}
	}
}

func TestSubmittedCardsSurviveBlockToggle(t *testing.T) {
	module := votingcontrol.NewInMemoryModule(nil)
	seedRoster(module, 1, 2)
	ctx := context.Background()

	if _, err := module.Handler.StartSessionHandler(ctx, "team-1"); err != nil {
		t.Fatalf("start session failed: %v", err)
	}
	cards, _ := module.Store.ListJudgeTeamScores(ctx, "team-1", "judge-a")
	submitted, err := module.Handler.SubmitScoreHandler(ctx, cards[0].ScoreID, httptransport.SubmitScoreRequest{Value: 9})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	toggle := httptransport.JudgeToggleRequest{JudgeID: "judge-a"}
	if _, err := module.Handler.BlockJudgeHandler(ctx, "team-1", toggle); err != nil {
		t.Fatalf("block failed: %v", err)
	}
	card, err := module.Store.GetScore(ctx, submitted.Data.ScoreID)
	if err != nil {
		t.Fatalf("score lookup failed: %v", err)
	}
	if card.Value == nil || *card.Value != 9 {
		t.Fatal("expected submitted value untouched by block")
	}
	if card.Status.Editable() {
		t.Fatal("expected submitted card to stay submitted")
	}
}
