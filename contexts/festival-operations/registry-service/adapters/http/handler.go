package httpadapter

import (
	"context"
	"log/slog"

	"festival/contexts/festival-operations/registry-service/application"
	"festival/contexts/festival-operations/registry-service/domain/entities"
	httptransport "festival/contexts/festival-operations/registry-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateYearHandler(ctx context.Context, req httptransport.CreateYearRequest) (httptransport.YearResponse, error) {
	year, err := h.Service.CreateYear(ctx, req.Year)
	if err != nil {
		return httptransport.YearResponse{}, err
	}
	return httptransport.YearResponse{
		Status: "success",
		Data:   httptransport.YearDTO{Year: year.ID},
	}, nil
}

func (h Handler) ListYearsHandler(ctx context.Context) (httptransport.YearListResponse, error) {
	years, err := h.Service.ListYears(ctx)
	if err != nil {
		return httptransport.YearListResponse{}, err
	}
	resp := httptransport.YearListResponse{
		Status: "success",
		Data:   make([]httptransport.YearDTO, 0, len(years)),
	}
	for _, year := range years {
		resp.Data = append(resp.Data, httptransport.YearDTO{Year: year.ID})
	}
	return resp, nil
}

func (h Handler) CreateModalityHandler(ctx context.Context, req httptransport.CreateModalityRequest) (httptransport.ModalityResponse, error) {
	modality, err := h.Service.CreateModality(ctx, req.Name, req.Year)
	if err != nil {
		return httptransport.ModalityResponse{}, err
	}
	return httptransport.ModalityResponse{
		Status: "success",
		Data:   modalityDTO(modality),
	}, nil
}

func (h Handler) ListModalitiesHandler(ctx context.Context, year int) (httptransport.ModalityListResponse, error) {
	modalities, err := h.Service.ListModalities(ctx, year)
	if err != nil {
		return httptransport.ModalityListResponse{}, err
	}
	resp := httptransport.ModalityListResponse{
		Status: "success",
		Data:   make([]httptransport.ModalityDTO, 0, len(modalities)),
	}
	for _, modality := range modalities {
		resp.Data = append(resp.Data, modalityDTO(modality))
	}
	return resp, nil
}

func (h Handler) CreateCriterionHandler(ctx context.Context, req httptransport.CreateCriterionRequest) (httptransport.CriterionResponse, error) {
	criterion, err := h.Service.CreateCriterion(ctx, req.Name, req.ModalityID)
	if err != nil {
		return httptransport.CriterionResponse{}, err
	}
	return httptransport.CriterionResponse{
		Status: "success",
		Data: httptransport.CriterionDTO{
			CriterionID: criterion.CriterionID,
			Name:        criterion.Name,
			ModalityID:  criterion.ModalityID,
		},
	}, nil
}

func (h Handler) ListCriteriaHandler(ctx context.Context, modalityID string) (httptransport.CriterionListResponse, error) {
	criteria, err := h.Service.ListCriteria(ctx, modalityID)
	if err != nil {
		return httptransport.CriterionListResponse{}, err
	}
	resp := httptransport.CriterionListResponse{
		Status: "success",
		Data:   make([]httptransport.CriterionDTO, 0, len(criteria)),
	}
	for _, criterion := range criteria {
		resp.Data = append(resp.Data, httptransport.CriterionDTO{
			CriterionID: criterion.CriterionID,
			Name:        criterion.Name,
			ModalityID:  criterion.ModalityID,
		})
	}
	return resp, nil
}

func (h Handler) CreateTeamHandler(ctx context.Context, req httptransport.CreateTeamRequest) (httptransport.TeamResponse, error) {
	team, err := h.Service.CreateTeam(ctx, application.CreateTeamInput{
		Name:              req.Name,
		Grade:             req.Grade,
		PresentationOrder: req.PresentationOrder,
		TechnicalSheet:    req.TechnicalSheet,
		ModalityID:        req.ModalityID,
	})
	if err != nil {
		return httptransport.TeamResponse{}, err
	}
	return httptransport.TeamResponse{
		Status: "success",
		Data:   teamDTO(team),
	}, nil
}

func (h Handler) ListTeamsHandler(ctx context.Context, modalityID string, grade string) (httptransport.TeamListResponse, error) {
	teams, err := h.Service.ListTeams(ctx, modalityID, grade)
	if err != nil {
		return httptransport.TeamListResponse{}, err
	}
	resp := httptransport.TeamListResponse{
		Status: "success",
		Data:   make([]httptransport.TeamDTO, 0, len(teams)),
	}
	for _, team := range teams {
		resp.Data = append(resp.Data, teamDTO(team))
	}
	return resp, nil
}

func (h Handler) CreateParticipantHandler(ctx context.Context, req httptransport.CreateParticipantRequest) (httptransport.ParticipantResponse, error) {
	participant, err := h.Service.CreateParticipant(ctx, req.Name, req.ClassLabel, req.TeamID)
	if err != nil {
		return httptransport.ParticipantResponse{}, err
	}
	return httptransport.ParticipantResponse{
		Status: "success",
		Data: httptransport.ParticipantDTO{
			ParticipantID: participant.ParticipantID,
			Name:          participant.Name,
			ClassLabel:    participant.ClassLabel,
			TeamID:        participant.TeamID,
		},
	}, nil
}

func (h Handler) ListParticipantsHandler(ctx context.Context, teamID string) (httptransport.ParticipantListResponse, error) {
	participants, err := h.Service.ListParticipants(ctx, teamID)
	if err != nil {
		return httptransport.ParticipantListResponse{}, err
	}
	resp := httptransport.ParticipantListResponse{
		Status: "success",
		Data:   make([]httptransport.ParticipantDTO, 0, len(participants)),
	}
	for _, participant := range participants {
		resp.Data = append(resp.Data, httptransport.ParticipantDTO{
			ParticipantID: participant.ParticipantID,
			Name:          participant.Name,
			ClassLabel:    participant.ClassLabel,
			TeamID:        participant.TeamID,
		})
	}
	return resp, nil
}

func (h Handler) CreateJudgeHandler(ctx context.Context, req httptransport.CreateJudgeRequest) (httptransport.JudgeResponse, error) {
	judge, err := h.Service.CreateJudge(ctx, application.CreateJudgeInput{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
		Year:     req.Year,
	})
	if err != nil {
		return httptransport.JudgeResponse{}, err
	}
	return httptransport.JudgeResponse{
		Status: "success",
		Data:   judgeDTO(judge),
	}, nil
}

func (h Handler) ListJudgesHandler(ctx context.Context, year int) (httptransport.JudgeListResponse, error) {
	judges, err := h.Service.ListJudges(ctx, year)
	if err != nil {
		return httptransport.JudgeListResponse{}, err
	}
	resp := httptransport.JudgeListResponse{
		Status: "success",
		Data:   make([]httptransport.JudgeDTO, 0, len(judges)),
	}
	for _, judge := range judges {
		resp.Data = append(resp.Data, judgeDTO(judge))
	}
	return resp, nil
}

// AuthenticateJudgeHandler returns the judge without a token; token
// minting lives in the http server layer where the signing key is wired.
func (h Handler) AuthenticateJudgeHandler(ctx context.Context, req httptransport.LoginRequest) (entities.Judge, error) {
	return h.Service.AuthenticateJudge(ctx, req.Login, req.Password)
}

func (h Handler) ChangeJudgePasswordHandler(ctx context.Context, judgeID string, req httptransport.ChangePasswordRequest) (httptransport.StatusResponse, error) {
	if err := h.Service.ChangeJudgePassword(ctx, judgeID, req.NewPassword); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) AssignSpecialistHandler(ctx context.Context, req httptransport.AssignSpecialistRequest) (httptransport.StatusResponse, error) {
	if err := h.Service.AssignSpecialist(ctx, req.Year, req.JudgeID, req.ModalityID); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) RemoveSpecialistHandler(ctx context.Context, year int, judgeID string, modalityID string) (httptransport.StatusResponse, error) {
	if err := h.Service.RemoveSpecialist(ctx, year, judgeID, modalityID); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) ListSpecialistsHandler(ctx context.Context, year int, modalityID string) (httptransport.SpecialistListResponse, error) {
	assignments, err := h.Service.ListSpecialists(ctx, year, modalityID)
	if err != nil {
		return httptransport.SpecialistListResponse{}, err
	}
	resp := httptransport.SpecialistListResponse{
		Status: "success",
		Data:   make([]httptransport.SpecialistDTO, 0, len(assignments)),
	}
	for _, assignment := range assignments {
		resp.Data = append(resp.Data, httptransport.SpecialistDTO{
			Year:       assignment.Year,
			JudgeID:    assignment.JudgeID,
			ModalityID: assignment.ModalityID,
		})
	}
	return resp, nil
}

func modalityDTO(modality entities.Modality) httptransport.ModalityDTO {
	return httptransport.ModalityDTO{
		ModalityID: modality.ModalityID,
		Name:       modality.Name,
		Year:       modality.Year,
	}
}

func teamDTO(team entities.Team) httptransport.TeamDTO {
	return httptransport.TeamDTO{
		TeamID:            team.TeamID,
		Name:              team.Name,
		Grade:             string(team.Grade),
		PresentationOrder: team.PresentationOrder,
		TechnicalSheet:    team.TechnicalSheet,
		ModalityID:        team.ModalityID,
		VotingStatus:      string(team.VotingStatus),
	}
}

func judgeDTO(judge entities.Judge) httptransport.JudgeDTO {
	return httptransport.JudgeDTO{
		JudgeID: judge.JudgeID,
		Name:    judge.Name,
		Login:   judge.Login,
		Year:    judge.Year,
	}
}
