package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"festival/contexts/festival-operations/voting-control/application/commands"
	"festival/contexts/festival-operations/voting-control/application/queries"
	"festival/contexts/festival-operations/voting-control/domain/entities"
	httptransport "festival/contexts/festival-operations/voting-control/transport/http"
)

type Handler struct {
	Sessions commands.SessionUseCase
	Scores   commands.ScoreUseCase
	Ballots  queries.BallotUseCase
	Overview queries.OverviewUseCase
	Logger   *slog.Logger
}

func (h Handler) StartSessionHandler(ctx context.Context, teamID string) (httptransport.StatusResponse, error) {
	if err := h.Sessions.StartSession(ctx, teamID); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) ResetSessionHandler(ctx context.Context, teamID string) (httptransport.StatusResponse, error) {
	if err := h.Sessions.ResetSession(ctx, teamID); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) AddJudgeHandler(ctx context.Context, teamID string, req httptransport.AddJudgeRequest) (httptransport.StatusResponse, error) {
	if err := h.Sessions.AddJudge(ctx, teamID, req.JudgeID); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) BlockJudgeHandler(ctx context.Context, teamID string, req httptransport.JudgeToggleRequest) (httptransport.StatusResponse, error) {
	if err := h.Sessions.BlockJudge(ctx, teamID, req.JudgeID); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) UnblockJudgeHandler(ctx context.Context, teamID string, req httptransport.JudgeToggleRequest) (httptransport.StatusResponse, error) {
	if err := h.Sessions.UnblockJudge(ctx, teamID, req.JudgeID); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) SubmitScoreHandler(ctx context.Context, scoreID string, req httptransport.SubmitScoreRequest) (httptransport.ScoreCardResponse, error) {
	card, err := h.Scores.Submit(ctx, scoreID, req.Value)
	if err != nil {
		return httptransport.ScoreCardResponse{}, err
	}
	return httptransport.ScoreCardResponse{
		Status: "success",
		Data:   scoreCardDTO(card),
	}, nil
}

func (h Handler) MarkInProgressHandler(ctx context.Context, scoreID string) (httptransport.ScoreCardResponse, error) {
	card, err := h.Scores.MarkInProgress(ctx, scoreID)
	if err != nil {
		return httptransport.ScoreCardResponse{}, err
	}
	return httptransport.ScoreCardResponse{
		Status: "success",
		Data:   scoreCardDTO(card),
	}, nil
}

func (h Handler) SubmitBallotHandler(ctx context.Context, teamID string, judgeID string, req httptransport.SubmitBallotRequest) (httptransport.StatusResponse, error) {
	if err := h.Scores.SubmitBallot(ctx, teamID, judgeID, req.Values); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) VotingTeamsHandler(ctx context.Context, year int, judgeID string) (httptransport.BallotTeamListResponse, error) {
	teams, err := h.Ballots.VotingTeams(ctx, year, judgeID)
	if err != nil {
		return httptransport.BallotTeamListResponse{}, err
	}
	resp := httptransport.BallotTeamListResponse{
		Status: "success",
		Data:   make([]httptransport.BallotTeamDTO, 0, len(teams)),
	}
	for _, team := range teams {
		participants := team.Participants
		if participants == nil {
			participants = []string{}
		}
		resp.Data = append(resp.Data, httptransport.BallotTeamDTO{
			TeamID:         team.TeamID,
			Name:           team.Name,
			Grade:          team.Grade,
			ModalityName:   team.ModalityName,
			TechnicalSheet: team.TechnicalSheet,
			Participants:   participants,
			Pending:        team.Pending,
		})
	}
	return resp, nil
}

func (h Handler) JudgeBallotHandler(ctx context.Context, teamID string, judgeID string) (httptransport.BallotResponse, error) {
	ballot, err := h.Ballots.JudgeBallot(ctx, teamID, judgeID)
	if err != nil {
		return httptransport.BallotResponse{}, err
	}
	resp := httptransport.BallotResponse{Status: "success"}
	resp.Data.TeamID = ballot.TeamID
	resp.Data.JudgeID = ballot.JudgeID
	resp.Data.Items = make([]httptransport.BallotItemDTO, 0, len(ballot.Items))
	for _, item := range ballot.Items {
		resp.Data.Items = append(resp.Data.Items, httptransport.BallotItemDTO{
			ScoreID:       item.ScoreID,
			CriterionID:   item.CriterionID,
			CriterionName: item.CriterionName,
			Value:         item.Value,
			Status:        string(item.Status),
			Editable:      item.Editable,
		})
	}
	return resp, nil
}

func (h Handler) SessionOverviewHandler(ctx context.Context, teamID string) (httptransport.SessionOverviewResponse, error) {
	overview, err := h.Overview.SessionOverview(ctx, teamID)
	if err != nil {
		return httptransport.SessionOverviewResponse{}, err
	}
	resp := httptransport.SessionOverviewResponse{Status: "success"}
	resp.Data.TeamID = overview.TeamID
	resp.Data.TeamName = overview.TeamName
	resp.Data.Voting = overview.Voting
	resp.Data.Judges = make([]httptransport.JudgeProgressDTO, 0, len(overview.Judges))
	for _, judge := range overview.Judges {
		values := make([]httptransport.CriterionValueDTO, 0, len(judge.Values))
		for _, value := range judge.Values {
			values = append(values, httptransport.CriterionValueDTO{
				CriterionID:   value.CriterionID,
				CriterionName: value.CriterionName,
				Value:         value.Value,
				Status:        string(value.Status),
			})
		}
		resp.Data.Judges = append(resp.Data.Judges, httptransport.JudgeProgressDTO{
			JudgeID:    judge.JudgeID,
			JudgeName:  judge.JudgeName,
			Specialist: judge.Specialist,
			Submitted:  judge.Submitted,
			Pending:    judge.Pending,
			Blocked:    judge.Blocked,
			Values:     values,
		})
	}
	return resp, nil
}

func scoreCardDTO(card entities.ScoreCard) httptransport.ScoreCardDTO {
	dto := httptransport.ScoreCardDTO{
		ScoreID:     card.ScoreID,
		TeamID:      card.TeamID,
		JudgeID:     card.JudgeID,
		CriterionID: card.CriterionID,
		Value:       card.Value,
		Status:      string(card.Status),
	}
	if card.Status == entities.ScoreSubmitted {
		dto.SubmittedAt = card.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}
