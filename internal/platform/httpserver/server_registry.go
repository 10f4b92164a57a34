package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	registryerrors "festival/contexts/festival-operations/registry-service/domain/errors"
	registryhttp "festival/contexts/festival-operations/registry-service/transport/http"
)

func writeRegistryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, registryhttp.ErrorResponse{Code: code, Message: message})
}

func writeRegistryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errInvalidJSON):
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", err.Error())
	case errors.Is(err, errValidationFailed):
		writeRegistryError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, registryerrors.ErrInvalidInput):
		writeRegistryError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, registryerrors.ErrInvalidCredentials):
		writeRegistryError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, registryerrors.ErrYearNotFound),
		errors.Is(err, registryerrors.ErrModalityNotFound),
		errors.Is(err, registryerrors.ErrCriterionNotFound),
		errors.Is(err, registryerrors.ErrTeamNotFound),
		errors.Is(err, registryerrors.ErrJudgeNotFound):
		writeRegistryError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, registryerrors.ErrDuplicateEntry):
		writeRegistryError(w, http.StatusConflict, "duplicate_entry", err.Error())
	case errors.Is(err, registryerrors.ErrStoreUnavailable):
		writeRegistryError(w, http.StatusServiceUnavailable, "store_unavailable", "registry store unavailable")
	default:
		writeRegistryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func queryYear(r *http.Request) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("year"))
	if raw == "" {
		return 0, false
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return year, true
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req registryhttp.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	judge, err := s.registry.Handler.AuthenticateJudgeHandler(r.Context(), req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	token, err := s.tokens.Issue(judge.JudgeID, judge.Year)
	if err != nil {
		writeRegistryError(w, http.StatusInternalServerError, "token_issue_failed", "could not issue session token")
		return
	}
	resp := registryhttp.LoginResponse{Status: "success"}
	resp.Data.Token = token
	resp.Data.Judge = registryhttp.JudgeDTO{
		JudgeID: judge.JudgeID,
		Name:    judge.Name,
		Login:   judge.Login,
		Year:    judge.Year,
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateYear(w http.ResponseWriter, r *http.Request) {
	var req registryhttp.CreateYearRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	resp, err := s.registry.Handler.CreateYearHandler(r.Context(), req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListYears(w http.ResponseWriter, r *http.Request) {
	resp, err := s.registry.Handler.ListYearsHandler(r.Context())
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateModality(w http.ResponseWriter, r *http.Request) {
	var req registryhttp.CreateModalityRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	resp, err := s.registry.Handler.CreateModalityHandler(r.Context(), req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListModalities(w http.ResponseWriter, r *http.Request) {
	year, ok := queryYear(r)
	if !ok {
		writeRegistryError(w, http.StatusBadRequest, "invalid_year", "year query parameter must be an integer")
		return
	}
	resp, err := s.registry.Handler.ListModalitiesHandler(r.Context(), year)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateCriterion(w http.ResponseWriter, r *http.Request) {
	var req registryhttp.CreateCriterionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	resp, err := s.registry.Handler.CreateCriterionHandler(r.Context(), req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListCriteria(w http.ResponseWriter, r *http.Request) {
	modalityID := strings.TrimSpace(r.URL.Query().Get("modality_id"))
	if modalityID == "" {
		writeRegistryError(w, http.StatusBadRequest, "invalid_modality", "modality_id query parameter is required")
		return
	}
	resp, err := s.registry.Handler.ListCriteriaHandler(r.Context(), modalityID)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var req registryhttp.CreateTeamRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	resp, err := s.registry.Handler.CreateTeamHandler(r.Context(), req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	modalityID := strings.TrimSpace(r.URL.Query().Get("modality_id"))
	if modalityID == "" {
		writeRegistryError(w, http.StatusBadRequest, "invalid_modality", "modality_id query parameter is required")
		return
	}
	resp, err := s.registry.Handler.ListTeamsHandler(r.Context(), modalityID, r.URL.Query().Get("grade"))
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateParticipant(w http.ResponseWriter, r *http.Request) {
	var req registryhttp.CreateParticipantRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	resp, err := s.registry.Handler.CreateParticipantHandler(r.Context(), req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListParticipants(w http.ResponseWriter, r *http.Request) {
	resp, err := s.registry.Handler.ListParticipantsHandler(r.Context(), r.PathValue("team_id"))
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateJudge(w http.ResponseWriter, r *http.Request) {
	var req registryhttp.CreateJudgeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	resp, err := s.registry.Handler.CreateJudgeHandler(r.Context(), req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListJudges(w http.ResponseWriter, r *http.Request) {
	year, ok := queryYear(r)
	if !ok {
		writeRegistryError(w, http.StatusBadRequest, "invalid_year", "year query parameter must be an integer")
		return
	}
	resp, err := s.registry.Handler.ListJudgesHandler(r.Context(), year)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChangeJudgePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireJudge(w, r)
	if !ok {
		return
	}
	judgeID := r.PathValue("judge_id")
	if claims.JudgeID != judgeID {
		writeRegistryError(w, http.StatusForbidden, "forbidden", "judges may only change their own password")
		return
	}
	var req registryhttp.ChangePasswordRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	resp, err := s.registry.Handler.ChangeJudgePasswordHandler(r.Context(), judgeID, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAssignSpecialist(w http.ResponseWriter, r *http.Request) {
	var req registryhttp.AssignSpecialistRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	resp, err := s.registry.Handler.AssignSpecialistHandler(r.Context(), req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleRemoveSpecialist(w http.ResponseWriter, r *http.Request) {
	year, ok := queryYear(r)
	if !ok {
		writeRegistryError(w, http.StatusBadRequest, "invalid_year", "year query parameter must be an integer")
		return
	}
	judgeID := strings.TrimSpace(r.URL.Query().Get("judge_id"))
	modalityID := strings.TrimSpace(r.URL.Query().Get("modality_id"))
	if judgeID == "" || modalityID == "" {
		writeRegistryError(w, http.StatusBadRequest, "invalid_input", "judge_id and modality_id query parameters are required")
		return
	}
	resp, err := s.registry.Handler.RemoveSpecialistHandler(r.Context(), year, judgeID, modalityID)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListSpecialists(w http.ResponseWriter, r *http.Request) {
	year, ok := queryYear(r)
	if !ok {
		writeRegistryError(w, http.StatusBadRequest, "invalid_year", "year query parameter must be an integer")
		return
	}
	modalityID := strings.TrimSpace(r.URL.Query().Get("modality_id"))
	if modalityID == "" {
		writeRegistryError(w, http.StatusBadRequest, "invalid_modality", "modality_id query parameter is required")
		return
	}
	resp, err := s.registry.Handler.ListSpecialistsHandler(r.Context(), year, modalityID)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
