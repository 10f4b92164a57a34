package httpserver

import (
	"errors"
	"net/http"
	"strings"

	rankingerrors "festival/contexts/festival-operations/ranking-engine/domain/errors"
	rankinghttp "festival/contexts/festival-operations/ranking-engine/transport/http"
)

func writeRankingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, rankinghttp.ErrorResponse{Code: code, Message: message})
}

func writeRankingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errInvalidJSON):
		writeRankingError(w, http.StatusBadRequest, "invalid_json", err.Error())
	case errors.Is(err, errValidationFailed):
		writeRankingError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, rankingerrors.ErrInvalidInput):
		writeRankingError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, rankingerrors.ErrTeamNotFound):
		writeRankingError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, rankingerrors.ErrStoreUnavailable):
		writeRankingError(w, http.StatusServiceUnavailable, "store_unavailable", "ranking store unavailable")
	default:
		writeRankingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleComputeFinalScore(w http.ResponseWriter, r *http.Request) {
	var req rankinghttp.ComputeFinalScoreRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRankingDomainError(w, err)
		return
	}
	resp, err := s.ranking.Handler.ComputeFinalScoreHandler(r.Context(), req)
	if err != nil {
		writeRankingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRecomputeModality(w http.ResponseWriter, r *http.Request) {
	year, ok := queryYear(r)
	if !ok {
		writeRankingError(w, http.StatusBadRequest, "invalid_year", "year query parameter must be an integer")
		return
	}
	modalityID := strings.TrimSpace(r.URL.Query().Get("modality_id"))
	if modalityID == "" {
		writeRankingError(w, http.StatusBadRequest, "invalid_modality", "modality_id query parameter is required")
		return
	}
	resp, err := s.ranking.Handler.RecomputeModalityHandler(r.Context(), year, modalityID)
	if err != nil {
		writeRankingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	year, ok := queryYear(r)
	if !ok {
		writeRankingError(w, http.StatusBadRequest, "invalid_year", "year query parameter must be an integer")
		return
	}
	modalityID := strings.TrimSpace(r.URL.Query().Get("modality_id"))
	if modalityID == "" {
		writeRankingError(w, http.StatusBadRequest, "invalid_modality", "modality_id query parameter is required")
		return
	}
	resp, err := s.ranking.Handler.StandingsHandler(r.Context(), year, modalityID)
	if err != nil {
		writeRankingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
