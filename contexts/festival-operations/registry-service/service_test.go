package registryservice_test

import (
	"context"
	"errors"
	"testing"

	registryservice "festival/contexts/festival-operations/registry-service"
	domainerrors "festival/contexts/festival-operations/registry-service/domain/errors"
	httptransport "festival/contexts/festival-operations/registry-service/transport/http"
)

func TestRegistryYearAndModalityFlow(t *testing.T) {
	module := registryservice.NewInMemoryModule(nil)
	ctx := context.Background()

	if _, err := module.Handler.CreateYearHandler(ctx, httptransport.CreateYearRequest{Year: 2025}); err != nil {
		t.Fatalf("create year failed: %v", err)
	}
	if _, err := module.Handler.CreateYearHandler(ctx, httptransport.CreateYearRequest{Year: 2025}); !errors.Is(err, domainerrors.ErrDuplicateEntry) {
		t.Fatalf("expected duplicate year error, got %v", err)
	}

	modality, err := module.Handler.CreateModalityHandler(ctx, httptransport.CreateModalityRequest{Name: "Dance", Year: 2025})
	if err != nil {
		t.Fatalf("create modality failed: %v", err)
	}
	if modality.Data.ModalityID == "" {
		t.Fatal("expected generated modality id")
	}

	_, err = module.Handler.CreateModalityHandler(ctx, httptransport.CreateModalityRequest{Name: "dance", Year: 2025})
	if !errors.Is(err, domainerrors.ErrDuplicateEntry) {
		t.Fatalf("expected case-insensitive duplicate modality error, got %v", err)
	}

	list, err := module.Handler.ListModalitiesHandler(ctx, 2025)
	if err != nil {
		t.Fatalf("list modalities failed: %v", err)
	}
	if len(list.Data) != 1 {
		t.Fatalf("expected 1 modality, got %d", len(list.Data))
	}
}

func TestRegistryCriterionRequiresModality(t *testing.T) {
	module := registryservice.NewInMemoryModule(nil)
	ctx := context.Background()

	_, err := module.Handler.CreateCriterionHandler(ctx, httptransport.CreateCriterionRequest{
		Name:       "Choreography",
		ModalityID: "missing",
	})
	if !errors.Is(err, domainerrors.ErrModalityNotFound) {
		t.Fatalf("expected modality not found, got %v", err)
	}
}

func TestRegistryTeamCreation(t *testing.T) {
	module := registryservice.NewInMemoryModule(nil)
	ctx := context.Background()

	modality, err := module.Handler.CreateModalityHandler(ctx, httptransport.CreateModalityRequest{Name: "Music", Year: 2025})
	if err != nil {
		t.Fatalf("create modality failed: %v", err)
	}

	team, err := module.Handler.CreateTeamHandler(ctx, httptransport.CreateTeamRequest{
		Name:              "Blue Notes",
		Grade:             "high_school",
		PresentationOrder: 1,
		ModalityID:        modality.Data.ModalityID,
	})
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}
	if team.Data.VotingStatus != "aguardando" {
		t.Fatalf("expected new team awaiting voting, got %q", team.Data.VotingStatus)
	}

	_, err = module.Handler.CreateTeamHandler(ctx, httptransport.CreateTeamRequest{
		Name:              "blue notes",
		Grade:             "high_school",
		PresentationOrder: 2,
		ModalityID:        modality.Data.ModalityID,
	})
	if !errors.Is(err, domainerrors.ErrDuplicateEntry) {
		t.Fatalf("expected duplicate team error, got %v", err)
	}

	_, err = module.Handler.CreateTeamHandler(ctx, httptransport.CreateTeamRequest{
		Name:              "Off Grade",
		Grade:             "kindergarten",
		PresentationOrder: 3,
		ModalityID:        modality.Data.ModalityID,
	})
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid grade rejection, got %v", err)
	}
}

func TestRegistryListTeamsGradeFilter(t *testing.T) {
	module := registryservice.NewInMemoryModule(nil)
	ctx := context.Background()

	modality, err := module.Handler.CreateModalityHandler(ctx, httptransport.CreateModalityRequest{Name: "Theater", Year: 2025})
	if err != nil {
		t.Fatalf("create modality failed: %v", err)
	}

	for i, spec := range []struct {
		name  string
		grade string
	}{
		{"Alpha", "elementary"},
		{"Beta", "high_school"},
		{"Gamma", "elementary"},
	} {
		_, err := module.Handler.CreateTeamHandler(ctx, httptransport.CreateTeamRequest{
			Name:              spec.name,
			Grade:             spec.grade,
			PresentationOrder: i + 1,
			ModalityID:        modality.Data.ModalityID,
		})
		if err != nil {
			t.Fatalf("create team %s failed: %v", spec.name, err)
		}
	}

	filtered, err := module.Handler.ListTeamsHandler(ctx, modality.Data.ModalityID, "elementary")
	if err != nil {
		t.Fatalf("list teams failed: %v", err)
	}
	if len(filtered.Data) != 2 {
		t.Fatalf("expected 2 elementary teams, got %d", len(filtered.Data))
	}
	if filtered.Data[0].PresentationOrder > filtered.Data[1].PresentationOrder {
		t.Fatal("expected teams ordered by presentation order")
	}

	all, err := module.Handler.ListTeamsHandler(ctx, modality.Data.ModalityID, "")
	if err != nil {
		t.Fatalf("list all teams failed: %v", err)
	}
	if len(all.Data) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(all.Data))
	}
}

func TestRegistryJudgeAuthentication(t *testing.T) {
	module := registryservice.NewInMemoryModule(nil)
	ctx := context.Background()

	created, err := module.Handler.CreateJudgeHandler(ctx, httptransport.CreateJudgeRequest{
		Name:     "Ana",
		Login:    "Ana.Judge",
		Password: "s3cret",
		Year:     2025,
	})
	if err != nil {
		t.Fatalf("create judge failed: %v", err)
	}

	judge, err := module.Handler.AuthenticateJudgeHandler(ctx, httptransport.LoginRequest{
		Login:    "ana.judge",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("expected case-insensitive login to succeed: %v", err)
	}
	if judge.JudgeID != created.Data.JudgeID {
		t.Fatalf("authenticated wrong judge: %s", judge.JudgeID)
	}

	_, err = module.Handler.AuthenticateJudgeHandler(ctx, httptransport.LoginRequest{
		Login:    "ana.judge",
		Password: "wrong",
	})
	if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	_, err = module.Handler.AuthenticateJudgeHandler(ctx, httptransport.LoginRequest{
		Login:    "nobody",
		Password: "s3cret",
	})
	if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected unknown login to report invalid credentials, got %v", err)
	}

	_, err = module.Handler.CreateJudgeHandler(ctx, httptransport.CreateJudgeRequest{
		Name:     "Other",
		Login:    "ANA.JUDGE",
		Password: "another",
		Year:     2025,
	})
	if !errors.Is(err, domainerrors.ErrDuplicateEntry) {
		t.Fatalf("expected duplicate login error, got %v", err)
	}
}

func TestRegistryChangeJudgePassword(t *testing.T) {
	module := registryservice.NewInMemoryModule(nil)
	ctx := context.Background()

	created, err := module.Handler.CreateJudgeHandler(ctx, httptransport.CreateJudgeRequest{
		Name:     "Bruno",
		Login:    "bruno",
		Password: "old-pass",
		Year:     2025,
	})
	if err != nil {
		t.Fatalf("create judge failed: %v", err)
	}

	if _, err := module.Handler.ChangeJudgePasswordHandler(ctx, created.Data.JudgeID, httptransport.ChangePasswordRequest{NewPassword: "new-pass"}); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	_, err = module.Handler.AuthenticateJudgeHandler(ctx, httptransport.LoginRequest{Login: "bruno", Password: "old-pass"})
	if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected old password to be rejected, got %v", err)
	}
	if _, err := module.Handler.AuthenticateJudgeHandler(ctx, httptransport.LoginRequest{Login: "bruno", Password: "new-pass"}); err != nil {
		t.Fatalf("expected new password to authenticate: %v", err)
	}
}

func TestRegistrySpecialistAssignment(t *testing.T) {
	module := registryservice.NewInMemoryModule(nil)
	ctx := context.Background()

	modality, err := module.Handler.CreateModalityHandler(ctx, httptransport.CreateModalityRequest{Name: "Poetry", Year: 2025})
	if err != nil {
		t.Fatalf("create modality failed: %v", err)
	}
	judge, err := module.Handler.CreateJudgeHandler(ctx, httptransport.CreateJudgeRequest{
		Name:     "Carla",
		Login:    "carla",
		Password: "festival",
		Year:     2025,
	})
	if err != nil {
		t.Fatalf("create judge failed: %v", err)
	}

	req := httptransport.AssignSpecialistRequest{
		Year:       2025,
		JudgeID:    judge.Data.JudgeID,
		ModalityID: modality.Data.ModalityID,
	}
	if _, err := module.Handler.AssignSpecialistHandler(ctx, req); err != nil {
		t.Fatalf("assign specialist failed: %v", err)
	}
	if _, err := module.Handler.AssignSpecialistHandler(ctx, req); !errors.Is(err, domainerrors.ErrDuplicateEntry) {
		t.Fatalf("expected duplicate assignment error, got %v", err)
	}

	list, err := module.Handler.ListSpecialistsHandler(ctx, 2025, modality.Data.ModalityID)
	if err != nil {
		t.Fatalf("list specialists failed: %v", err)
	}
	if len(list.Data) != 1 {
		t.Fatalf("expected 1 specialist, got %d", len(list.Data))
	}

	if _, err := module.Handler.RemoveSpecialistHandler(ctx, 2025, judge.Data.JudgeID, modality.Data.ModalityID); err != nil {
		t.Fatalf("remove specialist failed: %v", err)
	}
	list, err = module.Handler.ListSpecialistsHandler(ctx, 2025, modality.Data.ModalityID)
	if err != nil {
		t.Fatalf("list specialists after removal failed: %v", err)
	}
	if len(list.Data) != 0 {
		t.Fatalf("expected empty specialist list, got %d", len(list.Data))
	}
}
