package httpserver

import (
	"errors"
	"net/http"

	votingerrors "festival/contexts/festival-operations/voting-control/domain/errors"
	votinghttp "festival/contexts/festival-operations/voting-control/transport/http"
)

func writeVotingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, votinghttp.ErrorResponse{Code: code, Message: message})
}

func writeVotingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errInvalidJSON):
		writeVotingError(w, http.StatusBadRequest, "invalid_json", err.Error())
	case errors.Is(err, errValidationFailed):
		writeVotingError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, votingerrors.ErrInvalidInput):
		writeVotingError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, votingerrors.ErrInvalidScoreValue):
		writeVotingError(w, http.StatusUnprocessableEntity, "invalid_score_value", err.Error())
	case errors.Is(err, votingerrors.ErrIncompleteBallot):
		writeVotingError(w, http.StatusUnprocessableEntity, "incomplete_ballot", err.Error())
	case errors.Is(err, votingerrors.ErrScoreNotFound),
		errors.Is(err, votingerrors.ErrTeamNotFound),
		errors.Is(err, votingerrors.ErrJudgeNotFound):
		writeVotingError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, votingerrors.ErrScoreNotEditable):
		writeVotingError(w, http.StatusConflict, "score_not_editable", err.Error())
	case errors.Is(err, votingerrors.ErrSessionAlreadyOpen):
		writeVotingError(w, http.StatusConflict, "session_already_open", err.Error())
	case errors.Is(err, votingerrors.ErrStoreUnavailable):
		writeVotingError(w, http.StatusServiceUnavailable, "store_unavailable", "voting store unavailable")
	default:
		writeVotingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	resp, err := s.voting.Handler.StartSessionHandler(r.Context(), r.PathValue("team_id"))
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	resp, err := s.voting.Handler.ResetSessionHandler(r.Context(), r.PathValue("team_id"))
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddJudge(w http.ResponseWriter, r *http.Request) {
	var req votinghttp.AddJudgeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeVotingDomainError(w, err)
		return
	}
	resp, err := s.voting.Handler.AddJudgeHandler(r.Context(), r.PathValue("team_id"), req)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBlockJudge(w http.ResponseWriter, r *http.Request) {
	var req votinghttp.JudgeToggleRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeVotingDomainError(w, err)
		return
	}
	resp, err := s.voting.Handler.BlockJudgeHandler(r.Context(), r.PathValue("team_id"), req)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUnblockJudge(w http.ResponseWriter, r *http.Request) {
	var req votinghttp.JudgeToggleRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeVotingDomainError(w, err)
		return
	}
	resp, err := s.voting.Handler.UnblockJudgeHandler(r.Context(), r.PathValue("team_id"), req)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSessionOverview(w http.ResponseWriter, r *http.Request) {
	resp, err := s.voting.Handler.SessionOverviewHandler(r.Context(), r.PathValue("team_id"))
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBallotTeams(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireJudge(w, r)
	if !ok {
		return
	}
	resp, err := s.voting.Handler.VotingTeamsHandler(r.Context(), claims.Year, claims.JudgeID)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleJudgeBallot(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireJudge(w, r)
	if !ok {
		return
	}
	resp, err := s.voting.Handler.JudgeBallotHandler(r.Context(), r.PathValue("team_id"), claims.JudgeID)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitBallot(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireJudge(w, r)
	if !ok {
		return
	}
	var req votinghttp.SubmitBallotRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeVotingDomainError(w, err)
		return
	}
	resp, err := s.voting.Handler.SubmitBallotHandler(r.Context(), r.PathValue("team_id"), claims.JudgeID, req)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleOpenScore(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireJudge(w, r); !ok {
		return
	}
	resp, err := s.voting.Handler.MarkInProgressHandler(r.Context(), r.PathValue("score_id"))
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireJudge(w, r); !ok {
		return
	}
	var req votinghttp.SubmitScoreRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeVotingDomainError(w, err)
		return
	}
	resp, err := s.voting.Handler.SubmitScoreHandler(r.Context(), r.PathValue("score_id"), req)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
