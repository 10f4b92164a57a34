package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"festival/contexts/festival-operations/ranking-engine/application"
	httptransport "festival/contexts/festival-operations/ranking-engine/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ComputeFinalScoreHandler(ctx context.Context, req httptransport.ComputeFinalScoreRequest) (httptransport.RankingResponse, error) {
	ranking, err := h.Service.FinalScore(ctx, req.Year, req.ModalityID, req.TeamID)
	if err != nil {
		return httptransport.RankingResponse{}, err
	}
	return httptransport.RankingResponse{
		Status: "success",
		Data: httptransport.RankingDTO{
			RankingID:  ranking.RankingID,
			Year:       ranking.Year,
			ModalityID: ranking.ModalityID,
			TeamID:     ranking.TeamID,
			FinalScore: ranking.FinalScore,
			ComputedAt: ranking.ComputedAt.UTC().Format(time.RFC3339),
		},
	}, nil
}

func (h Handler) RecomputeModalityHandler(ctx context.Context, year int, modalityID string) (httptransport.StatusResponse, error) {
	if err := h.Service.RecomputeModality(ctx, year, modalityID); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) StandingsHandler(ctx context.Context, year int, modalityID string) (httptransport.StandingsResponse, error) {
	standings, err := h.Service.Standings(ctx, year, modalityID)
	if err != nil {
		return httptransport.StandingsResponse{}, err
	}
	resp := httptransport.StandingsResponse{
		Status: "success",
		Data:   make([]httptransport.GradeStandingsDTO, 0, len(standings)),
	}
	for _, bracket := range standings {
		dto := httptransport.GradeStandingsDTO{
			Grade: bracket.Grade,
			Teams: make([]httptransport.TeamStandingDTO, 0, len(bracket.Teams)),
		}
		for _, team := range bracket.Teams {
			participants := team.Participants
			if participants == nil {
				participants = []string{}
			}
			dto.Teams = append(dto.Teams, httptransport.TeamStandingDTO{
				Position:     team.Position,
				TeamID:       team.TeamID,
				TeamName:     team.TeamName,
				Participants: participants,
				FinalScore:   team.FinalScore,
			})
		}
		resp.Data = append(resp.Data, dto)
	}
	return resp, nil
}
