package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	rankingengine "festival/contexts/festival-operations/ranking-engine"
	registryservice "festival/contexts/festival-operations/registry-service"
	votingcontrol "festival/contexts/festival-operations/voting-control"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "festival/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	registry registryservice.Module
	voting   votingcontrol.Module
	ranking  rankingengine.Module
	tokens   TokenIssuer
}

func New(
	registry registryservice.Module,
	voting votingcontrol.Module,
	ranking rankingengine.Module,
	tokens TokenIssuer,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		registry: registry,
		voting:   voting,
		ranking:  ranking,
		tokens:   tokens,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)

	s.mux.HandleFunc("POST /api/v1/years", s.handleCreateYear)
	s.mux.HandleFunc("GET /api/v1/years", s.handleListYears)
	s.mux.HandleFunc("POST /api/v1/modalities", s.handleCreateModality)
	s.mux.HandleFunc("GET /api/v1/modalities", s.handleListModalities)
	s.mux.HandleFunc("POST /api/v1/criteria", s.handleCreateCriterion)
	s.mux.HandleFunc("GET /api/v1/criteria", s.handleListCriteria)
	s.mux.HandleFunc("POST /api/v1/teams", s.handleCreateTeam)
	s.mux.HandleFunc("GET /api/v1/teams", s.handleListTeams)
	s.mux.HandleFunc("POST /api/v1/participants", s.handleCreateParticipant)
	s.mux.HandleFunc("GET /api/v1/teams/{team_id}/participants", s.handleListParticipants)
	s.mux.HandleFunc("POST /api/v1/judges", s.handleCreateJudge)
	s.mux.HandleFunc("GET /api/v1/judges", s.handleListJudges)
	s.mux.HandleFunc("POST /api/v1/judges/{judge_id}/password", s.handleChangeJudgePassword)
	s.mux.HandleFunc("POST /api/v1/specialists", s.handleAssignSpecialist)
	s.mux.HandleFunc("DELETE /api/v1/specialists", s.handleRemoveSpecialist)
	s.mux.HandleFunc("GET /api/v1/specialists", s.handleListSpecialists)

	s.mux.HandleFunc("POST /api/v1/teams/{team_id}/session/start", s.handleStartSession)
	s.mux.HandleFunc("POST /api/v1/teams/{team_id}/session/reset", s.handleResetSession)
	s.mux.HandleFunc("POST /api/v1/teams/{team_id}/session/judges", s.handleAddJudge)
	s.mux.HandleFunc("POST /api/v1/teams/{team_id}/session/block", s.handleBlockJudge)
	s.mux.HandleFunc("POST /api/v1/teams/{team_id}/session/unblock", s.handleUnblockJudge)
	s.mux.HandleFunc("GET /api/v1/teams/{team_id}/session", s.handleSessionOverview)

	s.mux.HandleFunc("GET /api/v1/ballot/teams", s.handleBallotTeams)
	s.mux.HandleFunc("GET /api/v1/ballot/teams/{team_id}", s.handleJudgeBallot)
	s.mux.HandleFunc("POST /api/v1/ballot/teams/{team_id}", s.handleSubmitBallot)
	s.mux.HandleFunc("POST /api/v1/ballot/scores/{score_id}", s.handleSubmitScore)
	s.mux.HandleFunc("POST /api/v1/ballot/scores/{score_id}/open", s.handleOpenScore)

	s.mux.HandleFunc("POST /api/v1/rankings/compute", s.handleComputeFinalScore)
	s.mux.HandleFunc("POST /api/v1/rankings/recompute", s.handleRecomputeModality)
	s.mux.HandleFunc("GET /api/v1/rankings", s.handleStandings)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
