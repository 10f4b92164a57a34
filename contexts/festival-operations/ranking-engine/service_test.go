package rankingengine_test

import (
	"context"
	"math"
	"testing"

	rankingengine "festival/contexts/festival-operations/ranking-engine"
	"festival/contexts/festival-operations/ranking-engine/ports"
	httptransport "festival/contexts/festival-operations/ranking-engine/transport/http"
)

const epsilon = 1e-9

func computeRequest(teamID string) httptransport.ComputeFinalScoreRequest {
	return httptransport.ComputeFinalScoreRequest{
		Year:       2025,
		ModalityID: "mod-1",
		TeamID:     teamID,
	}
}

func TestFinalScoreZeroWithoutSubmissions(t *testing.T) {
	module := rankingengine.NewInMemoryModule(nil)
	ctx := context.Background()

	ranking, err := module.Handler.ComputeFinalScoreHandler(ctx, computeRequest("team-1"))
	if err != nil {
		t.Fatalf("final score failed: %v", err)
	}
	if ranking.Data.FinalScore != 0.0 {
		t.Fatalf("expected 0.0 with no submissions, got %v", ranking.Data.FinalScore)
	}
}

func TestFinalScoreOneGeneralOneSpecialist(t *testing.T) {
	module := rankingengine.NewInMemoryModule(nil)
	ctx := context.Background()

	// General judge means 9.0 over [8,10]; specialist means 8.0 over [6,10].
	module.Store.SeedSubmittedScore(2025, "mod-1", "team-1", "judge-gen", "crit-1", 8)
	module.Store.SeedSubmittedScore(2025, "mod-1", "team-1", "judge-gen", "crit-2", 10)
	module.Store.SeedSubmittedScore(2025, "mod-1", "team-1", "judge-spec", "crit-1", 6)
	module.Store.SeedSubmittedScore(2025, "mod-1", "team-1", "judge-spec", "crit-2", 10)
	module.Store.SeedSpecialist(2025, "mod-1", "judge-spec")

	ranking, err := module.Handler.ComputeFinalScoreHandler(ctx, computeRequest("team-1"))
	if err != nil {
		t.Fatalf("final score failed: %v", err)
	}
	if math.Abs(ranking.Data.FinalScore-8.5) > epsilon {
		t.Fatalf("expected (9.0+8.0)/2 = 8.5, got %v", ranking.Data.FinalScore)
	}
}

func TestFinalScoreGeneralJudgesOnly(t *testing.T) {
	module := rankingengine.NewInMemoryModule(nil)
	ctx := context.Background()

	module.Store.SeedSubmittedScore(2025, "mod-1", "team-1", "judge-1", "crit-1", 7)
	module.Store.SeedSubmittedScore(2025, "mod-1", "team-1", "judge-2", "crit-1", 9)

	ranking, err := module.Handler.ComputeFinalScoreHandler(ctx, computeRequest("team-1"))
	if err != nil {
		t.Fatalf("final score failed: %v", err)
	}
	if math.Abs(ranking.Data.FinalScore-8.0) > epsilon {
		t.Fatalf("expected mean of judge means 8.0, got %v", ranking.Data.FinalScore)
	}
}

func TestFinalScoreSpecialistsOnly(t *testing.T) {
	module := rankingengine.NewInMemoryModule(nil)
	ctx := context.Background()

	module.Store.SeedSubmittedScore(2025, "mod-1", "team-1", "judge-1", "crit-1", 6)
	module.Store.SeedSubmittedScore(2025, "mod-1", "team-1", "judge-2", "crit-1", 10)
	module.Store.SeedSpecialist(2025, "mod-1", "judge-1")
	module.Store.SeedSpecialist(2025, "mod-1", "judge-2")

	ranking, err := module.Handler.ComputeFinalScoreHandler(ctx, computeRequest("team-1"))
	if err != nil {
		t.Fatalf("final score failed: %v", err)
	}
	expected := 16.0 / 3.0
	if math.Abs(ranking.Data.FinalScore-expected) > epsilon {
		t.Fatalf("expected (0.0+16.0)/3 = %v, got %v", expected, ranking.Data.FinalScore)
	}
}

func TestRankingUpsertNeverDuplicates(t *testing.T) {
	module := rankingengine.NewInMemoryModule(nil)
	ctx := context.Background()

	module.Store.SeedSubmittedScore(2025, "mod-1", "team-1", "judge-1", "crit-1", 8)

	first, err := module.Handler.ComputeFinalScoreHandler(ctx, computeRequest("team-1"))
	if err != nil {
		t.Fatalf("first compute failed: %v", err)
	}

	module.Store.SeedSubmittedScore(2025, "mod-1", "team-1", "judge-1", "crit-2", 10)
	second, err := module.Handler.ComputeFinalScoreHandler(ctx, computeRequest("team-1"))
	if err != nil {
		t.Fatalf("second compute failed: %v", err)
	}

	if module.Store.RankingCount() != 1 {
		t.Fatalf("expected a single ranking row, got %d", module.Store.RankingCount())
	}
	if math.Abs(second.Data.FinalScore-9.0) > epsilon {
		t.Fatalf("expected recomputed score 9.0, got %v", second.Data.FinalScore)
	}
	if first.Data.FinalScore == second.Data.FinalScore {
		t.Fatal("expected recomputation to change the stored score")
	}
}

func TestStandingsGroupAndTieBreak(t *testing.T) {
	module := rankingengine.NewInMemoryModule(nil)
	ctx := context.Background()

	module.Store.SeedTeam("mod-1", ports.TeamRef{TeamID: "team-a", Name: "Aurora", Grade: "elementary"})
	module.Store.SeedTeam("mod-1", ports.TeamRef{TeamID: "team-b", Name: "Boreal", Grade: "elementary"})
	module.Store.SeedTeam("mod-1", ports.TeamRef{TeamID: "team-c", Name: "Cosmos", Grade: "high_school"})

	// Aurora and Boreal tie on 8.0; Aurora wins the name tie-break.
	module.Store.SeedSubmittedScore(2025, "mod-1", "team-a", "judge-1", "crit-1", 8)
	module.Store.SeedSubmittedScore(2025, "mod-1", "team-b", "judge-1", "crit-1", 8)
	module.Store.SeedSubmittedScore(2025, "mod-1", "team-c", "judge-1", "crit-1", 10)

	if _, err := module.Handler.RecomputeModalityHandler(ctx, 2025, "mod-1"); err != nil {
		t.Fatalf("recompute failed: %v", err)
	}

	standings, err := module.Handler.StandingsHandler(ctx, 2025, "mod-1")
	if err != nil {
		t.Fatalf("standings failed: %v", err)
	}
	if len(standings.Data) != 2 {
		t.Fatalf("expected two grade brackets, got %d", len(standings.Data))
	}

	elementary := standings.Data[0]
	if elementary.Grade != "elementary" {
		t.Fatalf("expected elementary bracket first, got %q", elementary.Grade)
	}
	if len(elementary.Teams) != 2 {
		t.Fatalf("expected 2 elementary teams, got %d", len(elementary.Teams))
	}
	if elementary.Teams[0].TeamName != "Aurora" || elementary.Teams[1].TeamName != "Boreal" {
		t.Fatalf("expected name tie-break Aurora before Boreal, got %q then %q",
			elementary.Teams[0].TeamName, elementary.Teams[1].TeamName)
	}
	if elementary.Teams[0].Position != 1 || elementary.Teams[1].Position != 2 {
		t.Fatal("expected positions assigned within the bracket")
	}

	high := standings.Data[1]
	if high.Teams[0].TeamID != "team-c" || math.Abs(high.Teams[0].FinalScore-10.0) > epsilon {
		t.Fatalf("unexpected high school bracket: %+v", high.Teams)
	}
}
